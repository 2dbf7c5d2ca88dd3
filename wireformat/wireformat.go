// Package wireformat is the scalar/wire-type lookup table spec.md §3
// invariant 4 names: toReaderCall, basicWireType, packedType. Grounded on
// allenday-protobuf3-solidity/generator/type_utils.go's typeToSol switch,
// generalized from a Solidity native-type table to a protobuf-wire-format
// table (wire type number plus the Reader/Writer method name a scalar field
// uses, matching the runtime surface spec.md §6 names).
package wireformat

import "google.golang.org/protobuf/types/descriptorpb"

// Type is a protobuf wire type (GLOSSARY: "a 3-bit protobuf tag suffix").
type Type int

const (
	Varint          Type = 0
	Fixed64         Type = 1
	LengthDelimited Type = 2
	Fixed32         Type = 5
)

// Tag computes (field_number << 3) | wire_type per spec.md §4.F / P4.
func Tag(fieldNumber int32, wt Type) uint32 {
	return uint32(fieldNumber)<<3 | uint32(wt)
}

// BasicWireType implements spec.md §3 invariant 4's basicWireType(type),
// defined exactly for scalar primitives (including enum, which rides a
// varint). ok is false for MESSAGE/GROUP, which have no scalar wire type
// of their own — nested messages are always length-delimited via fork/ldelim.
func BasicWireType(t descriptorpb.FieldDescriptorProto_Type) (wt Type, ok bool) {
	switch t {
	case descriptorpb.FieldDescriptorProto_TYPE_DOUBLE,
		descriptorpb.FieldDescriptorProto_TYPE_FIXED64,
		descriptorpb.FieldDescriptorProto_TYPE_SFIXED64:
		return Fixed64, true
	case descriptorpb.FieldDescriptorProto_TYPE_FLOAT,
		descriptorpb.FieldDescriptorProto_TYPE_FIXED32,
		descriptorpb.FieldDescriptorProto_TYPE_SFIXED32:
		return Fixed32, true
	case descriptorpb.FieldDescriptorProto_TYPE_INT64,
		descriptorpb.FieldDescriptorProto_TYPE_UINT64,
		descriptorpb.FieldDescriptorProto_TYPE_INT32,
		descriptorpb.FieldDescriptorProto_TYPE_UINT32,
		descriptorpb.FieldDescriptorProto_TYPE_SINT32,
		descriptorpb.FieldDescriptorProto_TYPE_SINT64,
		descriptorpb.FieldDescriptorProto_TYPE_BOOL,
		descriptorpb.FieldDescriptorProto_TYPE_ENUM:
		return Varint, true
	case descriptorpb.FieldDescriptorProto_TYPE_STRING,
		descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return LengthDelimited, true
	default:
		return 0, false
	}
}

// ScalarMethod returns the Reader/Writer method name spec.md §6's runtime
// surface exposes for a scalar type, e.g. "int32", "sint64", "bool". Reader
// and Writer share a method name per type (Reader.int32() / Writer.int32()),
// matching the protobuf-js convention the spec's runtime surface is modeled
// on.
func ScalarMethod(t descriptorpb.FieldDescriptorProto_Type) string {
	switch t {
	case descriptorpb.FieldDescriptorProto_TYPE_DOUBLE:
		return "double"
	case descriptorpb.FieldDescriptorProto_TYPE_FLOAT:
		return "float"
	case descriptorpb.FieldDescriptorProto_TYPE_INT64:
		return "int64"
	case descriptorpb.FieldDescriptorProto_TYPE_UINT64:
		return "uint64"
	case descriptorpb.FieldDescriptorProto_TYPE_INT32:
		return "int32"
	case descriptorpb.FieldDescriptorProto_TYPE_FIXED64:
		return "fixed64"
	case descriptorpb.FieldDescriptorProto_TYPE_FIXED32:
		return "fixed32"
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return "bool"
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return "string"
	case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return "bytes"
	case descriptorpb.FieldDescriptorProto_TYPE_UINT32:
		return "uint32"
	case descriptorpb.FieldDescriptorProto_TYPE_SFIXED32:
		return "sfixed32"
	case descriptorpb.FieldDescriptorProto_TYPE_SFIXED64:
		return "sfixed64"
	case descriptorpb.FieldDescriptorProto_TYPE_SINT32:
		return "sint32"
	case descriptorpb.FieldDescriptorProto_TYPE_SINT64:
		return "sint64"
	case descriptorpb.FieldDescriptorProto_TYPE_ENUM:
		return "int32"
	default:
		return ""
	}
}

// Is64Bit reports whether t decodes through longToNumber narrowing
// (spec.md §4.G, §9 "64-bit integer narrowing").
func Is64Bit(t descriptorpb.FieldDescriptorProto_Type) bool {
	switch t {
	case descriptorpb.FieldDescriptorProto_TYPE_INT64,
		descriptorpb.FieldDescriptorProto_TYPE_UINT64,
		descriptorpb.FieldDescriptorProto_TYPE_FIXED64,
		descriptorpb.FieldDescriptorProto_TYPE_SFIXED64,
		descriptorpb.FieldDescriptorProto_TYPE_SINT64:
		return true
	default:
		return false
	}
}

// PackedWireType is packedType(field.type) (spec.md §3 invariant 4): defined
// exactly when t is packable (scalar numeric or enum), never for
// string/bytes/message/group even though those have a BasicWireType of
// their own. classify.IsPackable is the sole consumer of this distinction.
func PackedWireType(t descriptorpb.FieldDescriptorProto_Type) (wt Type, ok bool) {
	switch t {
	case descriptorpb.FieldDescriptorProto_TYPE_STRING,
		descriptorpb.FieldDescriptorProto_TYPE_BYTES,
		descriptorpb.FieldDescriptorProto_TYPE_MESSAGE,
		descriptorpb.FieldDescriptorProto_TYPE_GROUP:
		return 0, false
	default:
		return BasicWireType(t)
	}
}
