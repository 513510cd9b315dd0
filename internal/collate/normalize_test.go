package collate

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"Straße", "Strasse"},
		{"café", "cafe"},
		{"Île", "Ile"},
		{"Açores", "Acores"},
		{"œuvre", "oeuvre"},
		{"a·b", "ab"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.out {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestCEquiv(t *testing.T) {
	tests := []struct {
		s, t  string
		equiv bool
	}{
		{"Straße", "STRASSE", true},
		{"café", "CAFE", true},
		{"café", "cafe", true},
		{"naive", "naïve", true},
		{"foo", "bar", false},
	}
	for _, tt := range tests {
		if got := CEquiv(tt.s, tt.t); got != tt.equiv {
			t.Errorf("CEquiv(%q, %q) = %v, want %v", tt.s, tt.t, got, tt.equiv)
		}
	}
}

func TestPromiscuousNormalize(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"The Journal", "te journal"},
		{"Physics-Letters", "pysics letters"},
		{"Khan", "an"},
		{"Hello", "ello"},
	}
	for _, tt := range tests {
		if got := PromiscuousNormalize(tt.in); got != tt.out {
			t.Errorf("PromiscuousNormalize(%q) = %q, want %q", tt.in, got, tt.out)
		}
	}
}

func TestCollapseSpaces(t *testing.T) {
	if got := CollapseSpaces("  a   b\tc\n"); got != "a b c" {
		t.Errorf("CollapseSpaces = %q, want %q", got, "a b c")
	}
}
