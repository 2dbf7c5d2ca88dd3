package codegen

// OneofMode selects how oneof-member fields are represented, resolving
// spec.md §9's Open Question ("Oneof handling") per SPEC_FULL.md §1.1.
type OneofMode int

const (
	// OneofWrapped emits every oneof member as an ordinary optional property,
	// the behavior spec.md §9 describes as the shipped (non-redesigned) core.
	OneofWrapped OneofMode = iota
	// OneofTaggedUnion groups a oneof's members into one discriminated-union
	// property, the redesign spec.md §9 sketches (generateOneOfProperty).
	OneofTaggedUnion
)

// MapFieldMode resolves spec.md §9's Open Question ("Map fields") per
// SPEC_FULL.md §1.1.
type MapFieldMode int

const (
	// MapFieldsReject fails a file containing a map field with
	// UnhandledFieldShape, per spec.md §9 option (a).
	MapFieldsReject MapFieldMode = iota
	// MapFieldsDesugar treats a map field as an ordinary repeated message of
	// its synthesized MapEntry shape, per spec.md §9 option (b).
	MapFieldsDesugar
)

// Options are the plugin parameters SPEC_FULL.md §1.1 defines.
type Options struct {
	Oneof                  OneofMode
	SuppressScalarDefaults bool
	MapFields              MapFieldMode
}

// DefaultOptions matches spec.md's shipped (non-redesigned) behavior.
func DefaultOptions() Options {
	return Options{
		Oneof:                  OneofWrapped,
		SuppressScalarDefaults: false,
		MapFields:              MapFieldsReject,
	}
}
