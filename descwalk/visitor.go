package descwalk

import "google.golang.org/protobuf/types/descriptorpb"

// OnMessage is invoked for every message in pre-order. protoFQName is the
// fully-qualified proto name without a leading dot (e.g. "pkg.Outer.Inner"),
// matching the convention FieldDescriptorProto.type_name uses once its
// leading dot is stripped. outIdent is the flattened emitted identifier
// (e.g. "Outer_Inner", spec.md §3 invariant 2).
type OnMessage func(protoFQName, outIdent string, desc *descriptorpb.DescriptorProto)

// OnEnum is the enum counterpart of OnMessage.
type OnEnum func(protoFQName, outIdent string, desc *descriptorpb.EnumDescriptorProto)

// Visit performs the pre-order traversal described in spec.md §4.D: within
// a scope, its enums come first, then each message in declaration order,
// each one immediately followed by its own nested enums and messages before
// the next sibling message is visited. At the file level, top-level messages live under file.message_type
// and enums under file.enum_type; at message level, nested_type/enum_type
// take over. Two full passes are expected of CALLERS (declarations then
// codec, spec.md §4.D point 2) — Visit itself performs a single traversal
// per call and is meant to be invoked twice by generation code, once per
// pass, with different callbacks.
func Visit(file *descriptorpb.FileDescriptorProto, onMessage OnMessage, onEnum OnEnum) {
	pkg := file.GetPackage()

	for _, e := range file.GetEnumType() {
		fq := joinProto(pkg, e.GetName())
		onEnum(fq, CamelCase(e.GetName()), e)
	}
	for _, m := range file.GetMessageType() {
		fq := joinProto(pkg, m.GetName())
		ident := CamelCase(m.GetName())
		onMessage(fq, ident, m)
		visitNested(m, fq, ident+"_", onMessage, onEnum)
	}
}

func visitNested(parent *descriptorpb.DescriptorProto, protoPrefix, outPrefix string, onMessage OnMessage, onEnum OnEnum) {
	for _, e := range parent.GetEnumType() {
		fq := protoPrefix + "." + e.GetName()
		onEnum(fq, outPrefix+CamelCase(e.GetName()), e)
	}
	for _, m := range parent.GetNestedType() {
		fq := protoPrefix + "." + m.GetName()
		ident := outPrefix + CamelCase(m.GetName())
		onMessage(fq, ident, m)
		visitNested(m, fq, ident+"_", onMessage, onEnum)
	}
}

func joinProto(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}
