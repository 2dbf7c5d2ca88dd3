// Declaration Emitter (spec.md §4.E): for each enum, an exported
// enumeration; for each message, an exported data-shape declaration and its
// base-prototype default-value object.
//
// Grounded on the declaration half of protoc-gen-go's message/enum
// generation (other_examples' 963a165f_protocolbuffers-protobuf-go
// cmd-protoc-gen-go-internal_gengo-main.go.go: one Go struct/const-block per
// message/enum, emitted before any codec references it) and on
// allenday-protobuf3-solidity/generator/message_generator.go's per-field
// declaration loop, both ported to TypeScript `interface`/`enum` syntax.
package codegen

import (
	"fmt"

	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/kev0960/ts-proto/classify"
	"github.com/kev0960/ts-proto/descwalk"
	"github.com/kev0960/ts-proto/typemap"
	"github.com/kev0960/ts-proto/typeexpr"
)

// EmitEnum implements spec.md §4.E's enum rule.
func EmitEnum(buf *Buffer, outIdent string, desc *descriptorpb.EnumDescriptorProto) {
	buf.P("export enum %s {", outIdent)
	buf.Indent()
	for _, v := range desc.GetValue() {
		buf.P("%s = %d,", descwalk.CamelCase(v.GetName()), v.GetNumber())
	}
	buf.Unindent()
	buf.P("}")
	buf.P0()
}

// EmitMessageInterface implements spec.md §4.E's message rule: one exported
// interface with one property per field (ordinary fields and, under
// OneofWrapped, oneof members alike), or one synthesized discriminated-union
// property per oneof group under OneofTaggedUnion.
func EmitMessageInterface(buf *Buffer, imports *ImportSet, tm *typemap.TypeMap, opts Options, outIdent string, desc *descriptorpb.DescriptorProto) error {
	groups := groupOneofs(desc)
	emittedGroup := make(map[int32]bool)

	buf.P("export interface %s {", outIdent)
	buf.Indent()
	for _, f := range desc.GetField() {
		if classify.IsWithinOneof(f) && opts.Oneof == OneofTaggedUnion {
			idx := f.GetOneofIndex()
			if emittedGroup[idx] {
				continue
			}
			emittedGroup[idx] = true
			if err := emitTaggedUnionProperty(buf, imports, tm, &groups[idx]); err != nil {
				return err
			}
			continue
		}

		expr, err := typeexpr.Render(tm, f)
		if err != nil {
			return err
		}
		if expr.Import != nil {
			imports.Add(*expr.Import)
		}
		buf.P("%s: %s;", descwalk.SanitizeFieldName(descwalk.FieldCamelCase(f.GetName())), expr.Text)
	}
	buf.Unindent()
	buf.P("}")
	buf.P0()
	return nil
}

func emitTaggedUnionProperty(buf *Buffer, imports *ImportSet, tm *typemap.TypeMap, g *oneofGroup) error {
	variants := make([]string, 0, len(g.Fields))
	for _, f := range g.Fields {
		v, err := typeexpr.VariantType(tm, f)
		if err != nil {
			return err
		}
		if v.Import != nil {
			imports.Add(*v.Import)
		}
		variants = append(variants, fmt.Sprintf("{ case: %q; value: %s }", fieldProp(f), v.Text))
	}
	union := variants[0]
	for _, v := range variants[1:] {
		union += " | " + v
	}
	buf.P("%s: (%s) | undefined;", descwalk.SanitizeFieldName(g.Name), union)
	return nil
}

// BasePrototypeName is base<Name> per spec.md §4.E / §4.G.
func BasePrototypeName(outIdent string) string { return "base" + outIdent }

// EmitBasePrototype implements spec.md §4.E's base-prototype rule: the
// non-oneof fields, each at its scalar default (§4.C); messages default
// to absent and so receive no key at all. Repeated fields receive no key
// either; the decoder sets each of them to a fresh empty array.
func EmitBasePrototype(buf *Buffer, outIdent string, desc *descriptorpb.DescriptorProto) {
	buf.P("const %s = {", BasePrototypeName(outIdent))
	buf.Indent()
	for _, f := range desc.GetField() {
		if classify.IsWithinOneof(f) {
			continue
		}
		if classify.IsMessage(f) || classify.IsRepeated(f) {
			continue
		}
		buf.P("%s: %s,", descwalk.SanitizeFieldName(descwalk.FieldCamelCase(f.GetName())), typeexpr.DefaultValue(f))
	}
	buf.Unindent()
	buf.P("};")
	buf.P0()
}
