package classify

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

func TestIsPackable(t *testing.T) {
	tests := []struct {
		typ  descriptorpb.FieldDescriptorProto_Type
		want bool
	}{
		{descriptorpb.FieldDescriptorProto_TYPE_INT32, true},
		{descriptorpb.FieldDescriptorProto_TYPE_ENUM, true},
		{descriptorpb.FieldDescriptorProto_TYPE_STRING, false},
		{descriptorpb.FieldDescriptorProto_TYPE_BYTES, false},
		{descriptorpb.FieldDescriptorProto_TYPE_MESSAGE, false},
	}
	for _, tc := range tests {
		f := &descriptorpb.FieldDescriptorProto{Type: typep(tc.typ)}
		if got := IsPackable(f); got != tc.want {
			t.Errorf("IsPackable(%v) = %v, want %v", tc.typ, got, tc.want)
		}
	}
}

func TestIsPacked(t *testing.T) {
	f := &descriptorpb.FieldDescriptorProto{
		Type:  typep(descriptorpb.FieldDescriptorProto_TYPE_INT32),
		Label: labelp(descriptorpb.FieldDescriptorProto_LABEL_REPEATED),
	}
	if !IsPacked(f) {
		t.Error("repeated int32 should be packed")
	}

	f.Type = typep(descriptorpb.FieldDescriptorProto_TYPE_STRING)
	if IsPacked(f) {
		t.Error("repeated string should not be packed")
	}
}

func TestIsWithinOneof(t *testing.T) {
	var idx int32 = 0
	f := &descriptorpb.FieldDescriptorProto{OneofIndex: &idx}
	if !IsWithinOneof(f) {
		t.Error("expected field with OneofIndex set to be within a oneof")
	}
	if IsWithinOneof(&descriptorpb.FieldDescriptorProto{}) {
		t.Error("expected field without OneofIndex to not be within a oneof")
	}
}

func TestIsWrapperValue(t *testing.T) {
	f := &descriptorpb.FieldDescriptorProto{
		Type:     typep(descriptorpb.FieldDescriptorProto_TYPE_MESSAGE),
		TypeName: strp(".google.protobuf.StringValue"),
	}
	if !IsWrapperValue(f) {
		t.Error("expected StringValue field to be a wrapper value")
	}
}

func TestIsMapField(t *testing.T) {
	files := []*descriptorpb.FileDescriptorProto{{
		Name:    strp("m.proto"),
		Package: strp("pkg"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: strp("M"),
				NestedType: []*descriptorpb.DescriptorProto{
					{
						Name:    strp("EntriesEntry"),
						Options: &descriptorpb.MessageOptions{MapEntry: boolp(true)},
					},
				},
				Field: []*descriptorpb.FieldDescriptorProto{
					{
						Name:     strp("entries"),
						Type:     typep(descriptorpb.FieldDescriptorProto_TYPE_MESSAGE),
						Label:    labelp(descriptorpb.FieldDescriptorProto_LABEL_REPEATED),
						TypeName: strp(".pkg.M.EntriesEntry"),
					},
				},
			},
		},
	}}
	tm := typemap.Build(files)

	f := files[0].MessageType[0].Field[0]
	if !IsMapField(tm, f) {
		t.Error("expected entries field referencing a map-entry message to be classified as a map field")
	}
}

func boolp(b bool) *bool { return &b }
