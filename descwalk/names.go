// Package descwalk implements the Descriptor Visitor (spec.md §4.D): the
// recursive, pre-order traversal of a FileDescriptorProto that produces
// (fully_qualified_proto_name, flattened_output_identifier, descriptor)
// triples for every message and enum, with correct nested-name prefixing
// and flattening (spec.md §3 invariant 2).
//
// The CamelCase conversion below is ported, not reinvented: it is the
// camelCase helper from golang-protobuf/protogen/names.go, the teacher's own
// name-mangling routine for turning a raw descriptor name into an emitted
// identifier. Field names use the same routine with the first rune
// lower-cased, per spec.md §3 invariant 3 ("Field names are camelCased in
// emitted code regardless of snake_case origin").
package descwalk

// CamelCase converts a raw proto identifier (snake_case, or already
// PascalCase) to PascalCase, used for message, enum and enum-value
// identifiers in emitted code.
func CamelCase(s string) string {
	if s == "" {
		return s
	}
	var b []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '.' && i+1 < len(s) && isASCIILower(s[i+1]):
			// Skip over '.' in ".{{lowercase}}".
		case c == '.':
			b = append(b, '_')
		case c == '_' && (i == 0 || s[i-1] == '.'):
			b = append(b, 'X')
		case c == '_' && i+1 < len(s) && isASCIILower(s[i+1]):
			// Skip over '_' in "_{{lowercase}}".
		case isASCIIDigit(c):
			b = append(b, c)
		default:
			if isASCIILower(c) {
				c -= 'a' - 'A'
			}
			b = append(b, c)
			for ; i+1 < len(s) && isASCIILower(s[i+1]); i++ {
				b = append(b, s[i+1])
			}
		}
	}
	return string(b)
}

// FieldCamelCase converts a raw proto field name to the camelCase (lower
// leading rune) form emitted for struct/interface properties (spec.md §3
// invariant 3).
func FieldCamelCase(s string) string {
	pascal := CamelCase(s)
	if pascal == "" {
		return pascal
	}
	return string(toLowerASCII(pascal[0])) + pascal[1:]
}

func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func isASCIILower(c byte) bool { return 'a' <= c && c <= 'z' }
func isASCIIDigit(c byte) bool { return '0' <= c && c <= '9' }

// tsReservedWords are identifiers that collide with TypeScript/JavaScript
// keywords; a camelCased field name that lands on one of these gets an
// underscore suffix so the emitted property stays a legal identifier.
// Modeled on allenday-protobuf3-solidity's sanitizeKeyword, ported from
// Solidity's keyword set to TypeScript's.
var tsReservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "enum": true, "export": true, "extends": true,
	"false": true, "finally": true, "for": true, "function": true, "if": true,
	"import": true, "in": true, "instanceof": true, "new": true, "null": true,
	"return": true, "super": true, "switch": true, "this": true, "throw": true,
	"true": true, "try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true, "implements": true, "interface": true,
	"let": true, "package": true, "private": true, "protected": true,
	"public": true, "static": true, "yield": true, "undefined": true,
}

// SanitizeFieldName escapes a camelCased field name that collides with a
// TypeScript keyword.
func SanitizeFieldName(name string) string {
	if tsReservedWords[name] {
		return name + "_"
	}
	return name
}
