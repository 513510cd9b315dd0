package collate

import (
	"reflect"
	"testing"
)

func TestGetCollatingMatchSimple(t *testing.T) {
	tests := []struct {
		s, pattern string
		wantOrig   []string
		ok         bool
	}{
		{"journal", "journ", []string{"j", "o", "u", "r", "n"}, true},
		{"Journal", "journ", []string{"J", "o", "u", "r", "n"}, true},
		{"xyz", "abc", nil, false},
		{"caf", "cafe", nil, false},
	}
	for _, tt := range tests {
		m, ok := GetCollatingMatch(tt.s, tt.pattern)
		if ok != tt.ok {
			t.Errorf("GetCollatingMatch(%q, %q) ok = %v, want %v", tt.s, tt.pattern, ok, tt.ok)
			continue
		}
		if ok && !reflect.DeepEqual(m.Orig, tt.wantOrig) {
			t.Errorf("GetCollatingMatch(%q, %q).Orig = %v, want %v", tt.s, tt.pattern, m.Orig, tt.wantOrig)
		}
	}
}

func TestGetCollatingMatchLigature(t *testing.T) {
	// "œuvre" against pattern "oeuvr" should align the ligature as a single
	// two-byte original chunk against the two-rune pattern "oe".
	m, ok := GetCollatingMatch("œuvre", "oeuvr")
	if !ok {
		t.Fatalf("GetCollatingMatch(%q, %q) failed to match", "œuvre", "oeuvr")
	}
	if m.Orig[0] != "œ" {
		t.Errorf("Orig[0] = %q, want %q", m.Orig[0], "œ")
	}
}

func TestGetCollatingMatchMiddleDot(t *testing.T) {
	// The middle dot normalizes to empty, so it may be skipped on the source
	// side without consuming any pattern rune.
	m, ok := GetCollatingMatch("col·legi", "collegi")
	if !ok {
		t.Fatalf("GetCollatingMatch with middle dot failed to match")
	}
	if got := len(m.Orig); got == 0 {
		t.Errorf("expected a nonempty alignment")
	}
}
