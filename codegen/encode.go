// Encoder Emitter (spec.md §4.F): synthesizes encode<Name>(message, writer?)
// -> writer.
//
// Grounded on the encode half of protoc-gen-go's internal_gengo (reference
// kept in other_examples/963a165f_..._gengo-main.go.go: per-field switch
// over FieldDescriptorProto.Type/Label emitting one writer call each) and on
// allenday-protobuf3-solidity/generator/codec_helper_generator.go's
// conditional-write-vs-unconditional-write split between scalar and message
// fields, ported from Solidity ABI encoding to protobuf-js-style
// Writer.fork()/ldelim().
package codegen

import (
	"fmt"

	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/kev0960/ts-proto/classify"
	"github.com/kev0960/ts-proto/descwalk"
	"github.com/kev0960/ts-proto/typemap"
	"github.com/kev0960/ts-proto/typeexpr"
	"github.com/kev0960/ts-proto/tserrors"
	"github.com/kev0960/ts-proto/wireformat"
)

// EmitEncoder writes encode<Name> for one message.
func EmitEncoder(buf *Buffer, imports *ImportSet, tm *typemap.TypeMap, opts Options, outIdent string, desc *descriptorpb.DescriptorProto) error {
	groups := groupOneofs(desc)
	emittedGroup := make(map[int32]bool)

	buf.P("function encode%s(message: %s, writer: Writer = new Writer()): Writer {", outIdent, outIdent)
	buf.Indent()
	for _, f := range desc.GetField() {
		if classify.IsWithinOneof(f) {
			idx := f.GetOneofIndex()
			if opts.Oneof != OneofTaggedUnion {
				if err := emitFieldEncode(buf, imports, tm, opts, f, "message."+fieldProp(f), true); err != nil {
					return err
				}
				continue
			}
			if emittedGroup[idx] {
				continue
			}
			emittedGroup[idx] = true
			if err := emitTaggedUnionEncode(buf, imports, tm, opts, &groups[idx]); err != nil {
				return err
			}
			continue
		}
		if err := emitFieldEncode(buf, imports, tm, opts, f, "message."+fieldProp(f), false); err != nil {
			return err
		}
	}
	buf.P("return writer;")
	buf.Unindent()
	buf.P("}")
	buf.P0()
	return nil
}

func fieldProp(f *descriptorpb.FieldDescriptorProto) string {
	return descwalk.SanitizeFieldName(descwalk.FieldCamelCase(f.GetName()))
}

func emitTaggedUnionEncode(buf *Buffer, imports *ImportSet, tm *typemap.TypeMap, opts Options, g *oneofGroup) error {
	buf.P("switch (message.%s?.case) {", descwalk.SanitizeFieldName(g.Name))
	buf.Indent()
	for _, f := range g.Fields {
		buf.P("case %q: {", fieldProp(f))
		buf.Indent()
		if err := emitFieldEncode(buf, imports, tm, opts, f, "message."+descwalk.SanitizeFieldName(g.Name)+".value", true); err != nil {
			return err
		}
		buf.P("break;")
		buf.Unindent()
		buf.P("}")
	}
	buf.Unindent()
	buf.P("}")
	return nil
}

// emitFieldEncode emits the write for one field reached through accessor.
// guarded forces the nested-message-style presence check regardless of
// field kind, matching spec.md §4.F's "within oneof, single | same
// conditional guard as nested message" rule.
func emitFieldEncode(buf *Buffer, imports *ImportSet, tm *typemap.TypeMap, opts Options, f *descriptorpb.FieldDescriptorProto, accessor string, guarded bool) error {
	if classify.IsRepeated(f) {
		return emitRepeatedEncode(buf, imports, tm, f, accessor)
	}

	switch {
	case classify.IsWrapperValue(f):
		return emitWrapperEncode(buf, f, accessor, true)
	case classify.IsMessage(f):
		return emitNestedEncode(buf, imports, tm, f, accessor, true)
	default:
		return emitScalarEncode(buf, opts, f, accessor, guarded)
	}
}

func emitScalarEncode(buf *Buffer, opts Options, f *descriptorpb.FieldDescriptorProto, accessor string, guarded bool) error {
	wt, ok := wireformat.BasicWireType(f.GetType())
	if !ok {
		return &tserrors.UnhandledFieldShape{Field: f.GetName(), Reason: "no basic wire type"}
	}
	tag := wireformat.Tag(f.GetNumber(), wt)
	method := wireformat.ScalarMethod(f.GetType())
	writeLine := fmt.Sprintf("writer.uint32(%d).%s(%s);", tag, method, accessor)

	if guarded {
		buf.P("if (%s !== undefined) {", accessor)
		buf.Indent()
		buf.P(writeLine)
		buf.Unindent()
		buf.P("}")
		return nil
	}
	if opts.SuppressScalarDefaults {
		if f.GetType() == descriptorpb.FieldDescriptorProto_TYPE_BYTES {
			buf.P("if (%s.length !== 0) {", accessor)
		} else {
			buf.P("if (%s !== %s) {", accessor, typeexpr.DefaultValue(f))
		}
		buf.Indent()
		buf.P(writeLine)
		buf.Unindent()
		buf.P("}")
		return nil
	}
	buf.P(writeLine)
	return nil
}

func emitWrapperEncode(buf *Buffer, f *descriptorpb.FieldDescriptorProto, accessor string, _ bool) error {
	outerTag := wireformat.Tag(f.GetNumber(), wireformat.LengthDelimited)
	innerType, err := wrapperInnerType(f.GetTypeName())
	if err != nil {
		return err
	}
	innerWT, _ := wireformat.BasicWireType(innerType)
	innerTag := wireformat.Tag(1, innerWT)
	method := wireformat.ScalarMethod(innerType)

	buf.P("if (%s !== undefined) {", accessor)
	buf.Indent()
	buf.P("writer.uint32(%d).fork();", outerTag)
	buf.P("writer.uint32(%d).%s(%s);", innerTag, method, accessor)
	buf.P("writer.ldelim();")
	buf.Unindent()
	buf.P("}")
	return nil
}

func emitNestedEncode(buf *Buffer, imports *ImportSet, tm *typemap.TypeMap, f *descriptorpb.FieldDescriptorProto, accessor string, guarded bool) error {
	res, err := tm.Resolve(f.GetTypeName(), true)
	if err != nil {
		return err
	}
	imports.Add(res.Entry)
	tag := wireformat.Tag(f.GetNumber(), wireformat.LengthDelimited)

	if guarded {
		buf.P("if (%s !== undefined) {", accessor)
		buf.Indent()
	}
	buf.P("%s.encode(%s, writer.uint32(%d).fork());", res.Entry.TypeIdent, accessor, tag)
	buf.P("writer.ldelim();")
	if guarded {
		buf.Unindent()
		buf.P("}")
	}
	return nil
}

func emitRepeatedEncode(buf *Buffer, imports *ImportSet, tm *typemap.TypeMap, f *descriptorpb.FieldDescriptorProto, accessor string) error {
	if classify.IsPacked(f) {
		tag := wireformat.Tag(f.GetNumber(), wireformat.LengthDelimited)
		method := wireformat.ScalarMethod(f.GetType())
		buf.P("writer.uint32(%d).fork();", tag)
		buf.P("for (const v of %s) {", accessor)
		buf.Indent()
		buf.P("writer.%s(v);", method)
		buf.Unindent()
		buf.P("}")
		buf.P("writer.ldelim();")
		return nil
	}

	buf.P("for (const v of %s) {", accessor)
	buf.Indent()
	switch {
	case classify.IsWrapperValue(f):
		if err := emitWrapperEncode(buf, f, "v", false); err != nil {
			return err
		}
	case classify.IsMessage(f):
		if err := emitNestedEncode(buf, imports, tm, f, "v", false); err != nil {
			return err
		}
	default:
		wt, ok := wireformat.BasicWireType(f.GetType())
		if !ok {
			return &tserrors.UnhandledFieldShape{Field: f.GetName(), Reason: "no basic wire type"}
		}
		tag := wireformat.Tag(f.GetNumber(), wt)
		method := wireformat.ScalarMethod(f.GetType())
		buf.P("writer.uint32(%d).%s(v);", tag, method)
	}
	buf.Unindent()
	buf.P("}")
	return nil
}

func wrapperInnerType(protoName string) (descriptorpb.FieldDescriptorProto_Type, error) {
	switch protoName {
	case ".google.protobuf.StringValue":
		return descriptorpb.FieldDescriptorProto_TYPE_STRING, nil
	case ".google.protobuf.Int32Value":
		return descriptorpb.FieldDescriptorProto_TYPE_INT32, nil
	case ".google.protobuf.BoolValue":
		return descriptorpb.FieldDescriptorProto_TYPE_BOOL, nil
	default:
		return 0, &tserrors.UnknownType{Name: protoName}
	}
}
