// Package codegen orchestrates the Declaration, Encoder and Decoder
// Emitters (spec.md §4.E/F/G) over one FileDescriptorProto's two required
// passes (§4.D point 2) and assembles the result into the file shape §6
// names: imports, then declarations, then codecs, then the longToNumber
// helper.
//
// Grounded on allenday-protobuf3-solidity/generator/generator.go's
// Generate() per-file loop (build registry once, then iterate files
// emitting each independently) and on protoc-gen-go's cmd/protoc-gen-go's
// one-CodeGeneratorResponse_File-per-input-file assembly.
package codegen

import (
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/kev0960/ts-proto/classify"
	"github.com/kev0960/ts-proto/descwalk"
	"github.com/kev0960/ts-proto/typemap"
	"github.com/kev0960/ts-proto/tserrors"
)

// File is one generated output: a relative output path and its TS source.
type File struct {
	Name    string
	Content string
}

// GenerateFile implements spec.md §4.D's two-pass generation for a single
// file, given a TypeMap already built over the whole request
// (SPEC_FULL.md §3 "Multi-file batch generation with a shared TypeMap").
func GenerateFile(tm *typemap.TypeMap, opts Options, file *descriptorpb.FileDescriptorProto) (File, error) {
	module := typemap.OutputModule(file.GetName())
	imports := NewImportSet(module)
	body := NewBuffer()

	uses64Bit := false
	var genErr error

	// Declarations pass (spec.md §4.D point 1).
	descwalk.Visit(file,
		func(_, outIdent string, d *descriptorpb.DescriptorProto) {
			if genErr != nil {
				return
			}
			if err := rejectMapFieldsIfNeeded(tm, opts, outIdent, d); err != nil {
				genErr = err
				return
			}
			if err := EmitMessageInterface(body, imports, tm, opts, outIdent, d); err != nil {
				genErr = err
			}
		},
		func(_, outIdent string, e *descriptorpb.EnumDescriptorProto) {
			if genErr != nil {
				return
			}
			EmitEnum(body, outIdent, e)
		},
	)
	if genErr != nil {
		return File{}, genErr
	}

	// Codec pass (spec.md §4.D point 2): base prototypes, then encode/decode.
	descwalk.Visit(file,
		func(_, outIdent string, d *descriptorpb.DescriptorProto) {
			if genErr != nil {
				return
			}
			if messageUses64Bit(d) {
				uses64Bit = true
			}
			EmitBasePrototype(body, outIdent, d)
			if err := EmitEncoder(body, imports, tm, opts, outIdent, d); err != nil {
				genErr = err
				return
			}
			if err := EmitDecoder(body, imports, tm, opts, outIdent, d); err != nil {
				genErr = err
				return
			}
			body.P("export const %s = { encode: encode%s, decode: decode%s };", outIdent, outIdent, outIdent)
			body.P0()
		},
		func(_, _ string, _ *descriptorpb.EnumDescriptorProto) {},
	)
	if genErr != nil {
		return File{}, genErr
	}

	if uses64Bit {
		emitLongToNumber(body)
	}

	var out strings.Builder
	out.WriteString(`import { Writer, Reader } from "protobufjs/minimal";` + "\n")
	if imp := imports.Render(); imp != "" {
		out.WriteString(imp)
	}
	out.WriteString("\n")
	out.WriteString(body.String())

	return File{Name: module + ".ts", Content: out.String()}, nil
}

func rejectMapFieldsIfNeeded(tm *typemap.TypeMap, opts Options, msgOutIdent string, d *descriptorpb.DescriptorProto) error {
	if opts.MapFields == MapFieldsDesugar {
		return nil
	}
	for _, f := range d.GetField() {
		if classify.IsMapField(tm, f) {
			return &tserrors.UnhandledFieldShape{
				Message: msgOutIdent,
				Field:   f.GetName(),
				Reason:  "map fields are rejected (map_fields=reject)",
			}
		}
	}
	return nil
}

func messageUses64Bit(d *descriptorpb.DescriptorProto) bool {
	for _, f := range d.GetField() {
		switch f.GetType() {
		case descriptorpb.FieldDescriptorProto_TYPE_INT64,
			descriptorpb.FieldDescriptorProto_TYPE_UINT64,
			descriptorpb.FieldDescriptorProto_TYPE_FIXED64,
			descriptorpb.FieldDescriptorProto_TYPE_SFIXED64,
			descriptorpb.FieldDescriptorProto_TYPE_SINT64:
			return true
		}
	}
	return false
}

// emitLongToNumber implements spec.md §4.G's longToNumber helper and §9's
// 64-bit narrowing note: generated once per file, range-checks before
// narrowing a protobufjs Long into a JS number.
func emitLongToNumber(buf *Buffer) {
	buf.P("function longToNumber(long: Long): number {")
	buf.Indent()
	buf.P("if (long.greaterThan(Number.MAX_SAFE_INTEGER) || long.lessThan(Number.MIN_SAFE_INTEGER)) {")
	buf.Indent()
	buf.P(`throw new Error("ValueOutOfRange: 64-bit value does not fit in a JS number: " + long.toString());`)
	buf.Unindent()
	buf.P("}")
	buf.P("return long.toNumber();")
	buf.Unindent()
	buf.P("}")
	buf.P0()
}
