package descwalk

import "testing"

// Table-driven in the style of golang-protobuf/protoc-gen-go/generator's
// TestCamelCase; cases ported verbatim since the underlying algorithm is
// the same ported routine.
func TestCamelCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"one", "One"},
		{"one_two", "OneTwo"},
		{"_my_field_name_2", "XMyFieldName_2"},
		{"Something_Capped", "Something_Capped"},
		{"my_Name", "My_Name"},
		{"OneTwo", "OneTwo"},
		{"_", "X"},
		{"_a_", "XA_"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := CamelCase(tc.in); got != tc.want {
			t.Errorf("CamelCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFieldCamelCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"email", "email"},
		{"user_id", "userId"},
		{"xs", "xs"},
	}
	for _, tc := range tests {
		if got := FieldCamelCase(tc.in); got != tc.want {
			t.Errorf("FieldCamelCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeFieldName(t *testing.T) {
	if got := SanitizeFieldName("import"); got != "import_" {
		t.Errorf("SanitizeFieldName(import) = %q, want %q", got, "import_")
	}
	if got := SanitizeFieldName("email"); got != "email" {
		t.Errorf("SanitizeFieldName(email) = %q, want %q", got, "email")
	}
}
