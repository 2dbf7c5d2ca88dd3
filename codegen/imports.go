package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kev0960/ts-proto/typemap"
)

// ImportSet tracks the cross-module type references a single output file
// accumulates while its Declaration/Encoder/Decoder Emitters run, and
// renders them as TypeScript named imports once the file is complete.
//
// Grounded on allenday-protobuf3-solidity/generator/import_manager.go's
// ImportManager (dependency-path tracking + dedup) and on
// protoc-gen-twirp_ts's dependencyResolver.AddImport (one entry per
// imported module, multiple named symbols per entry) — generalized from
// those single-target-language import statements to TypeScript's
// `import { A, B } from "./module"` form.
type ImportSet struct {
	// selfModule is never imported from; a reference into the same output
	// module is a local reference, not a cross-file import.
	selfModule string
	byModule   map[string]map[string]bool
}

// NewImportSet returns an ImportSet for the file being generated from
// selfModule (spec.md §6 "File basename").
func NewImportSet(selfModule string) *ImportSet {
	return &ImportSet{selfModule: selfModule, byModule: make(map[string]map[string]bool)}
}

// Add registers a reference to ident declared in entry.Module. A no-op when
// entry.Module is the file's own module.
func (s *ImportSet) Add(entry typemap.Entry) {
	if entry.Module == "" || entry.Module == s.selfModule {
		return
	}
	set, ok := s.byModule[entry.Module]
	if !ok {
		set = make(map[string]bool)
		s.byModule[entry.Module] = set
	}
	set[entry.TypeIdent] = true
}

// Render produces one `import { ... } from "./module";` line per imported
// module, sorted by module path for deterministic output (spec.md §5:
// "given the same (typeMap, fileDescriptor), output is byte-identical").
func (s *ImportSet) Render() string {
	if len(s.byModule) == 0 {
		return ""
	}
	modules := make([]string, 0, len(s.byModule))
	for m := range s.byModule {
		modules = append(modules, m)
	}
	sort.Strings(modules)

	var b strings.Builder
	for _, m := range modules {
		idents := make([]string, 0, len(s.byModule[m]))
		for id := range s.byModule[m] {
			idents = append(idents, id)
		}
		sort.Strings(idents)
		fmt.Fprintf(&b, "import { %s } from \"./%s\";\n", strings.Join(idents, ", "), relativeImportPath(m))
	}
	return b.String()
}

// relativeImportPath renders a flattened output module as a relative TS
// specifier. It returns the module unchanged: typemap.OutputModule already
// flattened "/" to "_", so every module is a single path segment, and the
// leading "./" is added by Render. Cross-directory relative navigation is out of scope
// (spec.md §1 "Out of scope": command-line plumbing, file I/O, packaging)
// — every generated file is emitted into one flat output directory.
func relativeImportPath(module string) string {
	return module
}
