package schemas

import "testing"

func TestIsProjectArray(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want bool
	}{
		{"array of objects", `[{"title": "x"}]`, true},
		{"multiple objects", `[{}, {"a": 1}]`, true},
		{"empty array", `[]`, false},
		{"array of scalars", `[1, 2]`, false},
		{"object", `{"projects": []}`, false},
		{"string", `"hello"`, false},
		{"not json", `oops`, false},
		{"empty", ``, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProjectArray(tt.doc); got != tt.want {
				t.Errorf("IsProjectArray(%q) = %v, want %v", tt.doc, got, tt.want)
			}
		})
	}
}

func TestValidateProjectArray(t *testing.T) {
	if err := ValidateProjectArray(`[{"title": "x"}]`); err != nil {
		t.Errorf("valid document rejected: %v", err)
	}
	if err := ValidateProjectArray(`[1]`); err == nil {
		t.Error("array of scalars should be rejected")
	}
	if err := ValidateProjectArray(`not json`); err == nil {
		t.Error("unparseable document should be rejected")
	}
}

// The boolean gate and the descriptive validator must agree on every input.
func TestIsProjectArrayMatchesValidate(t *testing.T) {
	for _, doc := range []string{`[{"a":1}]`, `[]`, `[1]`, `{}`, `garbage`, ``} {
		if IsProjectArray(doc) != (ValidateProjectArray(doc) == nil) {
			t.Errorf("gate and validator disagree on %q", doc)
		}
	}
}
