package codegen

import (
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/kev0960/ts-proto/descwalk"
)

// oneofGroup collects the fields belonging to one OneofDescriptor, in field
// declaration order, keyed by the oneof's index into the message's
// OneofDecl (spec.md §3: FieldDescriptor.oneof_index "indexes into the
// message's OneofDescriptor list").
type oneofGroup struct {
	Name   string
	Fields []*descriptorpb.FieldDescriptorProto
}

func groupOneofs(msg *descriptorpb.DescriptorProto) []oneofGroup {
	groups := make([]oneofGroup, len(msg.GetOneofDecl()))
	for i, o := range msg.GetOneofDecl() {
		groups[i].Name = descwalk.FieldCamelCase(o.GetName())
	}
	for _, f := range msg.GetField() {
		if f.OneofIndex != nil {
			idx := f.GetOneofIndex()
			groups[idx].Fields = append(groups[idx].Fields, f)
		}
	}
	return groups
}
