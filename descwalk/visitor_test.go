package descwalk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/types/descriptorpb"
)

func strp(s string) *string { return &s }

// TestVisitNestedFlattening verifies spec.md P5: nested messages A.B.C
// produce output identifier A_B_C, while the proto-qualified lookup key
// keeps dots and the package prefix.
func TestVisitNestedFlattening(t *testing.T) {
	c := &descriptorpb.DescriptorProto{Name: strp("C")}
	b := &descriptorpb.DescriptorProto{Name: strp("B"), NestedType: []*descriptorpb.DescriptorProto{c}}
	a := &descriptorpb.DescriptorProto{Name: strp("A"), NestedType: []*descriptorpb.DescriptorProto{b}}
	file := &descriptorpb.FileDescriptorProto{
		Package:     strp("pkg"),
		MessageType: []*descriptorpb.DescriptorProto{a},
	}

	type seen struct{ FQ, Ident string }
	var got []seen
	Visit(file, func(fq, ident string, _ *descriptorpb.DescriptorProto) {
		got = append(got, seen{fq, ident})
	}, func(string, string, *descriptorpb.EnumDescriptorProto) {})

	want := []seen{
		{"pkg.A", "A"},
		{"pkg.A.B", "A_B"},
		{"pkg.A.B.C", "A_B_C"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Visit messages mismatch (-want +got):\n%s", diff)
	}
}

func TestVisitNoPackage(t *testing.T) {
	file := &descriptorpb.FileDescriptorProto{
		MessageType: []*descriptorpb.DescriptorProto{{Name: strp("Foo")}},
	}
	var fq string
	Visit(file, func(f, _ string, _ *descriptorpb.DescriptorProto) { fq = f }, func(string, string, *descriptorpb.EnumDescriptorProto) {})
	if fq != "Foo" {
		t.Errorf("fq = %q, want %q", fq, "Foo")
	}
}
