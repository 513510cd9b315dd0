package iso4

import (
	"errors"
	"testing"
)

const sampleLTWA = "word(s)\treplacement\tlanguage(s)\n" +
	"journal\tjourn.\teng,fre\n" +
	"international\tinternat.\tmul\n" +
	"-ing\t-ing.\tmul\n" +
	"bad\n" +
	"x\ty\teng\n"

func TestParseLTWAPatterns(t *testing.T) {
	patterns, err := ParseLTWAPatterns(sampleLTWA)

	var buildErr *BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("expected a *BuildError, got %v", err)
	}
	if len(buildErr.Errors) != 2 {
		t.Fatalf("expected 2 invalid lines, got %d: %v", len(buildErr.Errors), buildErr.Errors)
	}

	if len(patterns) != 3 {
		t.Fatalf("expected 3 valid patterns, got %d", len(patterns))
	}
	if patterns[0].Pattern != "journal" || patterns[0].Replacement != "journ." {
		t.Errorf("patterns[0] = %+v, unexpected", patterns[0])
	}
	if !patterns[2].StartDash {
		t.Errorf("patterns[2] (%q) should have StartDash set", patterns[2].Pattern)
	}
}

func TestParseLTWAPatternsNoErrors(t *testing.T) {
	raw := "word(s)\treplacement\tlanguage(s)\n" + "journal\tjourn.\teng\n"
	patterns, err := ParseLTWAPatterns(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patterns) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(patterns))
	}
}

func TestParseShortWords(t *testing.T) {
	raw := "the\r\na\r\nof\n\n  \nand\n"
	words := ParseShortWords(raw)
	want := []string{"the", "a", "of", "and"}
	if len(words) != len(want) {
		t.Fatalf("ParseShortWords returned %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("words[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestSplitLinesHandlesCRLF(t *testing.T) {
	lines := splitLines("a\r\nb\rc\nd")
	want := []string{"a", "b", "c", "d"}
	if len(lines) != len(want) {
		t.Fatalf("splitLines = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("lines[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}
