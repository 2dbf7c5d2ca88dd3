// Package classify implements the Type Classifier (spec.md §4.B): pure
// predicates over a FieldDescriptorProto. Grounded on
// allenday-protobuf3-solidity/generator/type_utils.go's isFieldRepeated/
// isFieldPacked/isPrimitiveNumericType family, generalized to the full
// predicate set spec.md names (oneof membership, wrapper-value detection).
package classify

import (
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/kev0960/ts-proto/typemap"
	"github.com/kev0960/ts-proto/wireformat"
)

// IsMessage is is_message(f) ≡ f.type == MESSAGE.
func IsMessage(f *descriptorpb.FieldDescriptorProto) bool {
	return f.GetType() == descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
}

// IsPrimitive is is_primitive(f) ≡ not is_message(f). Enums count as
// primitive here because, per spec.md §4.B, they travel on the wire as
// varints like any other scalar.
func IsPrimitive(f *descriptorpb.FieldDescriptorProto) bool {
	return !IsMessage(f)
}

// IsRepeated is is_repeated(f) ≡ f.label == REPEATED.
func IsRepeated(f *descriptorpb.FieldDescriptorProto) bool {
	return f.GetLabel() == descriptorpb.FieldDescriptorProto_LABEL_REPEATED
}

// IsWithinOneof is is_within_oneof(f) ≡ f.oneof_index is present.
func IsWithinOneof(f *descriptorpb.FieldDescriptorProto) bool {
	return f.OneofIndex != nil
}

// IsWrapperValue is is_wrapper_value(f) ≡ f.type_name ∈ wrapper value type set.
func IsWrapperValue(f *descriptorpb.FieldDescriptorProto) bool {
	return IsMessage(f) && typemap.IsWrapperValueType(f.GetTypeName())
}

// IsPackable reports whether packedType(field.type) is defined (spec.md §3
// invariant 4): scalar numerics and enums. Strings, bytes and messages are
// never packable.
func IsPackable(f *descriptorpb.FieldDescriptorProto) bool {
	_, ok := wireformat.PackedWireType(f.GetType())
	return ok
}

// IsPacked reports whether a repeated packable field is emitted in packed
// form (spec.md §4.F: "Repeated packable fields are emitted packed;
// repeated non-packable… are emitted unpacked"). Proto3 has no explicit
// [packed=...] option to consult for scalar/enum fields — packed is the
// default wire representation — so this reduces to IsRepeated && IsPackable.
func IsPacked(f *descriptorpb.FieldDescriptorProto) bool {
	return IsRepeated(f) && IsPackable(f)
}

// IsMapField reports whether f is a `map<K,V>` field: a repeated message
// field whose type_name resolves to a synthesized map-entry message.
func IsMapField(tm *typemap.TypeMap, f *descriptorpb.FieldDescriptorProto) bool {
	return IsMessage(f) && IsRepeated(f) && tm.IsMapEntryType(f.GetTypeName())
}
