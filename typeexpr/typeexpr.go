// Package typeexpr implements the Type-Name Renderer (spec.md §4.C): given
// a TypeMap and a field descriptor, it produces the TypeScript type
// expression for that field's emitted property, applying optionality and
// array-wrapping rules.
//
// Grounded on golang-protobuf's internal_gengo fieldGoType (same shape of
// problem — scalar switch, then message/enum via an import-aware resolver,
// then list/oneof wrapping — ported from Go pointer/slice idiom to
// TypeScript union/array idiom) and on allenday-protobuf3-solidity's
// typeToSol (the scalar-kind switch table).
package typeexpr

import (
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/kev0960/ts-proto/classify"
	"github.com/kev0960/ts-proto/tserrors"
	"github.com/kev0960/ts-proto/typemap"
)

// Expr is a rendered type expression plus the cross-file reference (if any)
// the caller must ensure gets imported.
type Expr struct {
	// Text is the TypeScript type expression, e.g. "string", "Inner | undefined",
	// "number[]".
	Text string
	// Import is non-nil when Text references a message or enum type declared
	// in (possibly) another output module.
	Import *typemap.Entry
}

// Render implements spec.md §4.C points 1-4 for a single field.
func Render(tm *typemap.TypeMap, field *descriptorpb.FieldDescriptorProto) (Expr, error) {
	base, alreadyOptional, imp, err := basicTypeName(tm, field)
	if err != nil {
		return Expr{}, err
	}

	text := base
	switch {
	case classify.IsWithinOneof(field) && !alreadyOptional:
		text = text + " | undefined"
	case !classify.IsWithinOneof(field) && classify.IsMessage(field) && !alreadyOptional:
		text = text + " | undefined"
	}

	if classify.IsRepeated(field) {
		text = arrayOf(text)
	}

	return Expr{Text: text, Import: imp}, nil
}

// arrayOf wraps a type in TypeScript array syntax, parenthesizing union
// expressions so `T | undefined` repeated becomes `(T | undefined)[]`
// rather than the ambiguous `T | undefined[]`.
func arrayOf(t string) string {
	if containsUnion(t) {
		return "(" + t + ")[]"
	}
	return t + "[]"
}

func containsUnion(t string) bool {
	for i := 0; i+2 < len(t); i++ {
		if t[i] == ' ' && t[i+1] == '|' {
			return true
		}
	}
	return false
}

// basicTypeName implements spec.md §4.C point 1. It returns the base type
// text, whether that text is already a nullable union (true only for an
// unwrapped wrapper value type, spec.md §4.A), and the import entry to
// register, if any.
func basicTypeName(tm *typemap.TypeMap, field *descriptorpb.FieldDescriptorProto) (text string, alreadyOptional bool, imp *typemap.Entry, err error) {
	switch field.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_DOUBLE,
		descriptorpb.FieldDescriptorProto_TYPE_FLOAT,
		descriptorpb.FieldDescriptorProto_TYPE_INT32,
		descriptorpb.FieldDescriptorProto_TYPE_INT64,
		descriptorpb.FieldDescriptorProto_TYPE_UINT32,
		descriptorpb.FieldDescriptorProto_TYPE_UINT64,
		descriptorpb.FieldDescriptorProto_TYPE_FIXED32,
		descriptorpb.FieldDescriptorProto_TYPE_FIXED64,
		descriptorpb.FieldDescriptorProto_TYPE_SFIXED32,
		descriptorpb.FieldDescriptorProto_TYPE_SFIXED64,
		descriptorpb.FieldDescriptorProto_TYPE_SINT32,
		descriptorpb.FieldDescriptorProto_TYPE_SINT64:
		return "number", false, nil, nil
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return "boolean", false, nil, nil
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return "string", false, nil, nil
	case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return "Uint8Array", false, nil, nil
	case descriptorpb.FieldDescriptorProto_TYPE_ENUM:
		res, err := tm.Resolve(field.GetTypeName(), true)
		if err != nil {
			return "", false, nil, err
		}
		return res.Entry.TypeIdent, false, &res.Entry, nil
	case descriptorpb.FieldDescriptorProto_TYPE_MESSAGE:
		res, err := tm.Resolve(field.GetTypeName(), false)
		if err != nil {
			return "", false, nil, err
		}
		if res.IsNative() {
			return res.Native + " | undefined", true, nil, nil
		}
		return res.Entry.TypeIdent, false, &res.Entry, nil
	default:
		return "", false, nil, &tserrors.UnhandledFieldShape{
			Message: "",
			Field:   field.GetName(),
			Reason:  "unsupported field type " + field.GetType().String(),
		}
	}
}

// VariantType renders a oneof member's type without the oneof-optionality
// wrap Render applies (SPEC_FULL.md §1.1 oneof=tagged_union mode): once a
// tagged-union case is selected its value is known-present, so the variant
// carries the bare base type rather than `base | undefined`. Proto3
// disallows repeated fields inside a oneof, so no array wrap applies here.
func VariantType(tm *typemap.TypeMap, field *descriptorpb.FieldDescriptorProto) (Expr, error) {
	base, alreadyOptional, imp, err := basicTypeName(tm, field)
	if err != nil {
		return Expr{}, err
	}
	if alreadyOptional {
		base = typemap.WrapperNativeType(field.GetTypeName())
	}
	return Expr{Text: base, Import: imp}, nil
}

// DefaultValue returns the scalar default literal for a field per spec.md
// §4.C's "Default value per scalar type" table. It is undefined (caller
// must not call it) for message-typed fields, whose default is "absent"
// rather than a literal.
func DefaultValue(field *descriptorpb.FieldDescriptorProto) string {
	switch field.GetType() {
	case descriptorpb.FieldDescriptorProto_TYPE_DOUBLE,
		descriptorpb.FieldDescriptorProto_TYPE_FLOAT:
		return "0"
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return "false"
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return `""`
	case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return "new Uint8Array(0)"
	case descriptorpb.FieldDescriptorProto_TYPE_ENUM:
		return "0"
	default:
		return "0"
	}
}
