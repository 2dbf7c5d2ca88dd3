package typeexpr

import (
	"testing"

	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/kev0960/ts-proto/typemap"
)

func strp(s string) *string { return &s }
func typep(t descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto_Type { return &t }
func labelp(l descriptorpb.FieldDescriptorProto_Label) *descriptorpb.FieldDescriptorProto_Label {
	return &l
}

// TestWrapperValueSingleUnion verifies spec.md §8 Example 5: the emitted
// shape for a wrapper-value field is `string | undefined`, not the
// redundant double-optional a naive composition of steps 1 and 3 would
// produce (step 1 already returns the nullable native type; step 3 must
// not wrap it again since the field is structurally MESSAGE-typed).
func TestWrapperValueSingleUnion(t *testing.T) {
	tm := typemap.Build(nil)
	f := &descriptorpb.FieldDescriptorProto{
		Name:     strp("s"),
		Number:   intp(3),
		Type:     typep(descriptorpb.FieldDescriptorProto_TYPE_MESSAGE),
		Label:    labelp(descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL),
		TypeName: strp(".google.protobuf.StringValue"),
	}
	expr, err := Render(tm, f)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if expr.Text != "string | undefined" {
		t.Errorf("Render(wrapper) = %q, want %q", expr.Text, "string | undefined")
	}
}

func TestNestedMessageOptional(t *testing.T) {
	files := []*descriptorpb.FileDescriptorProto{{
		Name:        strp("m.proto"),
		Package:     strp("pkg"),
		MessageType: []*descriptorpb.DescriptorProto{{Name: strp("Inner")}},
	}}
	tm := typemap.Build(files)
	f := &descriptorpb.FieldDescriptorProto{
		Name:     strp("inner"),
		Number:   intp(2),
		Type:     typep(descriptorpb.FieldDescriptorProto_TYPE_MESSAGE),
		Label:    labelp(descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL),
		TypeName: strp(".pkg.Inner"),
	}
	expr, err := Render(tm, f)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if expr.Text != "Inner | undefined" {
		t.Errorf("Render(nested) = %q, want %q", expr.Text, "Inner | undefined")
	}
	if expr.Import == nil || expr.Import.TypeIdent != "Inner" {
		t.Errorf("Render(nested).Import = %+v, want TypeIdent Inner", expr.Import)
	}
}

func TestRepeatedScalar(t *testing.T) {
	tm := typemap.Build(nil)
	f := &descriptorpb.FieldDescriptorProto{
		Name:  strp("xs"),
		Number: intp(1),
		Type:  typep(descriptorpb.FieldDescriptorProto_TYPE_INT32),
		Label: labelp(descriptorpb.FieldDescriptorProto_LABEL_REPEATED),
	}
	expr, err := Render(tm, f)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if expr.Text != "number[]" {
		t.Errorf("Render(repeated int32) = %q, want %q", expr.Text, "number[]")
	}
}

func TestRepeatedNestedMessageParenthesized(t *testing.T) {
	files := []*descriptorpb.FileDescriptorProto{{
		Name:        strp("m.proto"),
		Package:     strp("pkg"),
		MessageType: []*descriptorpb.DescriptorProto{{Name: strp("Inner")}},
	}}
	tm := typemap.Build(files)
	f := &descriptorpb.FieldDescriptorProto{
		Name:     strp("inners"),
		Number:   intp(2),
		Type:     typep(descriptorpb.FieldDescriptorProto_TYPE_MESSAGE),
		Label:    labelp(descriptorpb.FieldDescriptorProto_LABEL_REPEATED),
		TypeName: strp(".pkg.Inner"),
	}
	expr, err := Render(tm, f)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if expr.Text != "(Inner | undefined)[]" {
		t.Errorf("Render(repeated nested) = %q, want %q", expr.Text, "(Inner | undefined)[]")
	}
}

func intp(i int32) *int32 { return &i }
