package tserrors

import "testing"

func TestUnknownTypeError(t *testing.T) {
	err := &UnknownType{Name: "pkg.Missing"}
	want := `unknown type "pkg.Missing": not present in the type map`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUnhandledFieldShapeError(t *testing.T) {
	err := &UnhandledFieldShape{Message: "M", Field: "entries", Reason: "map fields are rejected"}
	want := "unhandled field shape M.entries: map fields are rejected"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
