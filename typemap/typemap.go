// Package typemap implements the Type Mapping Table (spec.md §4.A): the
// read-only, once-built mapping from a fully-qualified proto type name to
// the output module and type identifier that name resolves to, plus the
// wrapper-value-type unwrap rule.
//
// Grounded on allenday-protobuf3-solidity's Generator.buildGlobalMessageRegistry
// and resolveTypeName/PackageToLibraryName (generalized from a Solidity
// library-qualified name to a TypeScript module+identifier pair), and on
// golang-protobuf/protogen.go's notion of resolving a cross-file reference
// to an import (there: GoImportPath; here: a flattened TS module path).
package typemap

import (
	"strings"

	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/kev0960/ts-proto/descwalk"
	"github.com/kev0960/ts-proto/tserrors"
)

// Entry is the (output_module, output_type_identifier) pair a fully
// qualified proto name resolves to (spec.md §3 TypeMap).
type Entry struct {
	// Module is the flattened, extension-less TS module path of the file
	// declaring the type (spec.md §6 basename rule: "/" replaced by "_").
	Module string
	// TypeIdent is the flattened identifier within that module, e.g.
	// "Foo_Bar" for nested message Foo.Bar (spec.md §3 invariant 2).
	TypeIdent string
}

// Resolution is the result of Resolve: either the native optional scalar
// type of an unwrapped wrapper value type, or a reference to an imported
// type.
type Resolution struct {
	// Native is set (and Entry is zero) when the resolved name was a
	// wrapper value type unwrapped per spec.md §4.A's keep_wrapper=false
	// path. It holds the bare scalar, e.g. "string"; callers union it with
	// "undefined" themselves since that decision belongs to the type-name
	// renderer (spec.md §4.C), not the type map.
	Native string
	// Entry is set (and Native is empty) for every other resolution.
	Entry Entry
}

// IsNative reports whether r is an unwrapped wrapper-value resolution.
func (r Resolution) IsNative() bool { return r.Native != "" }

// wrapperValueTypes is the set from spec.md §4.A, keys without the leading
// dot (lookup's argument convention).
var wrapperValueTypes = map[string]string{
	"google.protobuf.StringValue": "string",
	"google.protobuf.Int32Value":  "number",
	"google.protobuf.BoolValue":   "boolean",
}

// IsWrapperValueType reports membership in the §4.A wrapper value type set.
func IsWrapperValueType(protoName string) bool {
	_, ok := wrapperValueTypes[strings.TrimPrefix(protoName, ".")]
	return ok
}

// WrapperNativeType returns the native optional TypeScript type for a
// wrapper value type (e.g. "string" for StringValue, to be unioned with
// "undefined" by the caller). Panics if protoName is not a wrapper type;
// callers must guard with IsWrapperValueType.
func WrapperNativeType(protoName string) string {
	t, ok := wrapperValueTypes[strings.TrimPrefix(protoName, ".")]
	if !ok {
		panic("typemap: " + protoName + " is not a wrapper value type")
	}
	return t
}

// TypeMap is the read-only table built once per generator invocation
// (spec.md §3 "Lifetimes": "built once and read-only thereafter").
type TypeMap struct {
	entries    map[string]Entry
	mapEntries map[string]bool
}

// Build populates a TypeMap from every file in a protoc CodeGeneratorRequest
// (SPEC_FULL.md §3 "Multi-file batch generation with a shared TypeMap"),
// not just the files being generated, so that types declared in an
// imported-but-not-generated file still resolve.
func Build(files []*descriptorpb.FileDescriptorProto) *TypeMap {
	tm := &TypeMap{entries: make(map[string]Entry), mapEntries: make(map[string]bool)}
	for _, file := range files {
		module := OutputModule(file.GetName())
		descwalk.Visit(file, func(protoFQName, outIdent string, d *descriptorpb.DescriptorProto) {
			tm.entries[protoFQName] = Entry{Module: module, TypeIdent: outIdent}
			if d.GetOptions().GetMapEntry() {
				tm.mapEntries[protoFQName] = true
			}
		}, func(protoFQName, outIdent string, _ *descriptorpb.EnumDescriptorProto) {
			tm.entries[protoFQName] = Entry{Module: module, TypeIdent: outIdent}
		})
	}
	return tm
}

// IsMapEntryType reports whether protoName names a synthesized map-entry
// message (the nested message protoc generates for a `map<K,V>` field).
// SPEC_FULL.md §1.1 map_fields=reject consults this to refuse such fields
// with UnhandledFieldShape.
func (tm *TypeMap) IsMapEntryType(protoName string) bool {
	return tm.mapEntries[strings.TrimPrefix(protoName, ".")]
}

// OutputModule derives the flattened output module path for a .proto file
// name, per spec.md §6: "File basename = input descriptor name with .proto
// removed and / replaced by _".
func OutputModule(protoFileName string) string {
	name := strings.TrimSuffix(protoFileName, ".proto")
	return strings.ReplaceAll(name, "/", "_")
}

// Lookup implements spec.md §4.A's lookup(proto_name) -> (module, type_id).
// protoName may be given with or without its leading dot; a leading dot is
// stripped before the lookup.
func (tm *TypeMap) Lookup(protoName string) (Entry, error) {
	protoName = strings.TrimPrefix(protoName, ".")
	e, ok := tm.entries[protoName]
	if !ok {
		return Entry{}, &tserrors.UnknownType{Name: protoName}
	}
	return e, nil
}

// Resolve implements spec.md §4.A's second operation: resolve(proto_name,
// keep_wrapper) -> TypeExpression. When proto_name names one of the three
// wrapper value types and keep_wrapper is false, it returns the native
// optional scalar instead of an imported type reference.
func (tm *TypeMap) Resolve(protoName string, keepWrapper bool) (Resolution, error) {
	stripped := strings.TrimPrefix(protoName, ".")
	if !keepWrapper && IsWrapperValueType(stripped) {
		return Resolution{Native: WrapperNativeType(stripped)}, nil
	}
	e, err := tm.Lookup(stripped)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Entry: e}, nil
}
