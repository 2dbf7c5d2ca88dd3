// Package tserrors defines the fatal error kinds the generator can report,
// per spec.md §7 (UnknownType, UnhandledFieldShape). ValueOutOfRange is a
// decode-time error that only ever appears in emitted TypeScript, so it has
// no Go-side type here.
package tserrors

import "fmt"

// UnknownType is returned when a field's type_name does not resolve in the
// TypeMap (spec.md §3 invariant 1, §7 kind 1). Fatal for the file being
// generated.
type UnknownType struct {
	Name string
}

func (e *UnknownType) Error() string {
	return fmt.Sprintf("unknown type %q: not present in the type map", e.Name)
}

// UnhandledFieldShape is returned when a field's (type, label) combination
// is not one the generator handles, e.g. a map entry under map_fields=reject
// (spec.md §7 kind 2, §9 "Map fields").
type UnhandledFieldShape struct {
	Message string
	Field   string
	Reason  string
}

func (e *UnhandledFieldShape) Error() string {
	return fmt.Sprintf("unhandled field shape %s.%s: %s", e.Message, e.Field, e.Reason)
}
