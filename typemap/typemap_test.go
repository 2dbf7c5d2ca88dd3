package typemap

import (
	"testing"

	"google.golang.org/protobuf/types/descriptorpb"
)

func strp(s string) *string { return &s }

func TestBuildAndLookup(t *testing.T) {
	files := []*descriptorpb.FileDescriptorProto{
		{
			Name:    strp("a/b.proto"),
			Package: strp("pkg"),
			MessageType: []*descriptorpb.DescriptorProto{
				{Name: strp("Outer"), NestedType: []*descriptorpb.DescriptorProto{
					{Name: strp("Inner")},
				}},
			},
		},
	}
	tm := Build(files)

	e, err := tm.Lookup("pkg.Outer")
	if err != nil {
		t.Fatalf("Lookup(pkg.Outer) error: %v", err)
	}
	if e.Module != "a_b" || e.TypeIdent != "Outer" {
		t.Errorf("Lookup(pkg.Outer) = %+v, want module a_b ident Outer", e)
	}

	e, err = tm.Lookup(".pkg.Outer.Inner")
	if err != nil {
		t.Fatalf("Lookup(.pkg.Outer.Inner) error: %v", err)
	}
	if e.TypeIdent != "Outer_Inner" {
		t.Errorf("Lookup(.pkg.Outer.Inner).TypeIdent = %q, want Outer_Inner", e.TypeIdent)
	}

	if _, err := tm.Lookup("pkg.Missing"); err == nil {
		t.Error("Lookup(pkg.Missing) expected UnknownType error, got nil")
	}
}

func TestResolveWrapperValue(t *testing.T) {
	tm := Build(nil)

	res, err := tm.Resolve(".google.protobuf.StringValue", false)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if !res.IsNative() || res.Native != "string" {
		t.Errorf("Resolve(StringValue, keepWrapper=false) = %+v, want native string", res)
	}

	if _, err := tm.Resolve(".google.protobuf.StringValue", true); err == nil {
		t.Error("Resolve(StringValue, keepWrapper=true) expected UnknownType since it isn't in any input file, got nil")
	}
}

func TestOutputModule(t *testing.T) {
	tests := []struct{ in, want string }{
		{"foo.proto", "foo"},
		{"a/b/c.proto", "a_b_c"},
	}
	for _, tc := range tests {
		if got := OutputModule(tc.in); got != tc.want {
			t.Errorf("OutputModule(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
