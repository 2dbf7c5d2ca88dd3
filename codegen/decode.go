// Decoder Emitter (spec.md §4.G): synthesizes decode<Name>(reader, length?)
// -> Message, a tag-dispatch loop over wire tags with prototype-clone
// seeding, repeated packed/unpacked interop, and 64-bit narrowing.
//
// Grounded the same way as the Encoder Emitter: the tag-dispatch switch
// shape follows protoc-gen-go's internal_gengo decode path (reference kept
// in other_examples/963a165f_..._gengo-main.go.go), and the prototype-clone
// pattern is named directly in spec.md §9 ("Prototype-based default
// seeding").
package codegen

import (
	"fmt"

	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/kev0960/ts-proto/classify"
	"github.com/kev0960/ts-proto/descwalk"
	"github.com/kev0960/ts-proto/typemap"
	"github.com/kev0960/ts-proto/wireformat"
)

// EmitDecoder writes decode<Name> for one message.
func EmitDecoder(buf *Buffer, imports *ImportSet, tm *typemap.TypeMap, opts Options, outIdent string, desc *descriptorpb.DescriptorProto) error {
	buf.P("function decode%s(reader: Reader, length?: number): %s {", outIdent, outIdent)
	buf.Indent()
	buf.P("const end = length === undefined ? reader.len : reader.pos + length;")
	buf.P("const message = { ...%s } as %s;", BasePrototypeName(outIdent), outIdent)
	for _, f := range desc.GetField() {
		if classify.IsRepeated(f) {
			buf.P("message.%s = [];", fieldProp(f))
		}
	}
	buf.P0()
	buf.P("while (reader.pos < end) {")
	buf.Indent()
	buf.P("const tag = reader.uint32();")
	buf.P("switch (tag >>> 3) {")
	buf.Indent()

	groups := groupOneofs(desc)
	for _, f := range desc.GetField() {
		buf.P("case %d: {", f.GetNumber())
		buf.Indent()
		accessor := "message." + fieldProp(f)
		if classify.IsWithinOneof(f) && opts.Oneof == OneofTaggedUnion {
			g := &groups[f.GetOneofIndex()]
			accessor = "message." + descwalk.SanitizeFieldName(g.Name)
			if err := emitFieldDecode(buf, imports, tm, f, accessor, true, fieldProp(f)); err != nil {
				return err
			}
		} else {
			if err := emitFieldDecode(buf, imports, tm, f, accessor, false, ""); err != nil {
				return err
			}
		}
		buf.P("break;")
		buf.Unindent()
		buf.P("}")
	}

	buf.P("default:")
	buf.Indent()
	buf.P("reader.skipType(tag & 7);")
	buf.P("break;")
	buf.Unindent()
	buf.Unindent()
	buf.P("}")
	buf.Unindent()
	buf.P("}")
	buf.P0()
	buf.P("return message;")
	buf.Unindent()
	buf.P("}")
	buf.P0()
	return nil
}

// emitFieldDecode emits the read for one field number's case body.
// tagged/caseLabel are set when the destination is a tagged-union
// property rather than an ordinary one (SPEC_FULL.md §1.1 oneof=tagged_union).
func emitFieldDecode(buf *Buffer, imports *ImportSet, tm *typemap.TypeMap, f *descriptorpb.FieldDescriptorProto, accessor string, tagged bool, caseLabel string) error {
	assign := func(value string) {
		if tagged {
			buf.P("%s = { case: %q, value: %s };", accessor, caseLabel, value)
			return
		}
		buf.P("%s = %s;", accessor, value)
	}

	if classify.IsRepeated(f) && !tagged {
		return emitRepeatedDecode(buf, imports, tm, f, accessor)
	}

	switch {
	case classify.IsWrapperValue(f):
		return emitWrapperDecode(buf, f, assign)
	case classify.IsMessage(f):
		res, err := tm.Resolve(f.GetTypeName(), true)
		if err != nil {
			return err
		}
		imports.Add(res.Entry)
		assign(fmt.Sprintf("%s.decode(reader, reader.uint32())", res.Entry.TypeIdent))
		return nil
	default:
		assign(scalarRead(f))
		return nil
	}
}

func scalarRead(f *descriptorpb.FieldDescriptorProto) string {
	method := wireformat.ScalarMethod(f.GetType())
	if wireformat.Is64Bit(f.GetType()) {
		return fmt.Sprintf("longToNumber(reader.%s() as Long)", method)
	}
	return fmt.Sprintf("reader.%s()", method)
}

func emitWrapperDecode(buf *Buffer, f *descriptorpb.FieldDescriptorProto, assign func(string)) error {
	innerType, err := wrapperInnerType(f.GetTypeName())
	if err != nil {
		return err
	}
	method := wireformat.ScalarMethod(innerType)

	buf.P("{")
	buf.Indent()
	buf.P("const wrapperEnd = reader.uint32() + reader.pos;")
	buf.P("let wrapperValue: %s = %s;", typeexprNative(innerType), wrapperZero(innerType))
	buf.P("while (reader.pos < wrapperEnd) {")
	buf.Indent()
	buf.P("const innerTag = reader.uint32();")
	buf.P("if ((innerTag >>> 3) === 1) {")
	buf.Indent()
	buf.P("wrapperValue = reader.%s();", method)
	buf.Unindent()
	buf.P("} else {")
	buf.Indent()
	buf.P("reader.skipType(innerTag & 7);")
	buf.Unindent()
	buf.P("}")
	buf.Unindent()
	buf.P("}")
	assign("wrapperValue")
	buf.Unindent()
	buf.P("}")
	return nil
}

func typeexprNative(t descriptorpb.FieldDescriptorProto_Type) string {
	switch t {
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return "string"
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return "boolean"
	default:
		return "number"
	}
}

func wrapperZero(t descriptorpb.FieldDescriptorProto_Type) string {
	switch t {
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return `""`
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return "false"
	default:
		return "0"
	}
}

func emitRepeatedDecode(buf *Buffer, imports *ImportSet, tm *typemap.TypeMap, f *descriptorpb.FieldDescriptorProto, accessor string) error {
	switch {
	case classify.IsWrapperValue(f):
		return emitWrapperDecode(buf, f, func(value string) {
			buf.P("%s.push(%s);", accessor, value)
		})
	case classify.IsMessage(f):
		res, err := tm.Resolve(f.GetTypeName(), true)
		if err != nil {
			return err
		}
		imports.Add(res.Entry)
		buf.P("%s.push(%s.decode(reader, reader.uint32()));", accessor, res.Entry.TypeIdent)
		return nil
	case classify.IsPacked(f):
		method := wireformat.ScalarMethod(f.GetType())
		read := fmt.Sprintf("reader.%s()", method)
		if wireformat.Is64Bit(f.GetType()) {
			read = fmt.Sprintf("longToNumber(reader.%s() as Long)", method)
		}
		buf.P("if ((tag & 7) === 2) {")
		buf.Indent()
		buf.P("const packedEnd = reader.uint32() + reader.pos;")
		buf.P("while (reader.pos < packedEnd) {")
		buf.Indent()
		buf.P("%s.push(%s);", accessor, read)
		buf.Unindent()
		buf.P("}")
		buf.Unindent()
		buf.P("} else {")
		buf.Indent()
		buf.P("%s.push(%s);", accessor, read)
		buf.Unindent()
		buf.P("}")
		return nil
	default:
		// Repeated string/bytes: not packable, always unpacked (spec.md §4.F
		// "Repeated … non-packable … are emitted unpacked").
		buf.P("%s.push(%s);", accessor, scalarRead(f))
		return nil
	}
}
