package iso4

import (
	"strings"
	"unicode/utf8"
)

// splitLines splits raw dictionary text on any of the line-break sequences
// recognized by Unicode (CRLF, CR, LF, VT, FF, NEL, LS, PS), since LTWA
// dumps circulate with inconsistent line endings depending on export tool.
func splitLines(s string) []string {
	var lines []string
	start := 0
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch r {
		case '\r':
			lines = append(lines, s[start:i])
			if i+size < len(s) {
				if r2, size2 := utf8.DecodeRuneInString(s[i+size:]); r2 == '\n' {
					size += size2
				}
			}
			i += size
			start = i
			continue
		case '\n', '\v', '\f', '', ' ', ' ':
			lines = append(lines, s[start:i])
			i += size
			start = i
			continue
		}
		i += size
	}
	lines = append(lines, s[start:])
	return lines
}

// ParseLTWAPatterns parses a raw LTWA dictionary dump (§6): a header line
// followed by tab-separated records of pattern, replacement, and a
// comma-separated language list. Malformed lines are collected rather than
// aborting the parse, so a caller gets every diagnostic from one pass; see
// BuildError.
func ParseLTWAPatterns(raw string) ([]*Pattern, error) {
	lines := splitLines(raw)
	var patterns []*Pattern
	var bad []*InvalidLTWALine

	for i, line := range lines {
		if i == 0 {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			bad = append(bad, &InvalidLTWALine{Line: line, Reason: "fewer than 3 tab-separated fields"})
			continue
		}
		body, startDash, endDash := parsePatternField(fields[0])
		if utf8.RuneCountInString(body) < 3 {
			bad = append(bad, &InvalidLTWALine{Line: line, Reason: "pattern shorter than 3 runes"})
			continue
		}
		patterns = append(patterns, &Pattern{
			Pattern:     body,
			Replacement: parseReplacementField(fields[1]),
			Languages:   parseLanguagesField(fields[2]),
			StartDash:   startDash,
			EndDash:     endDash,
			Line:        line,
		})
	}

	if len(bad) > 0 {
		return patterns, &BuildError{Errors: bad}
	}
	return patterns, nil
}

// ParseShortWords parses a raw short-word dictionary dump (§6): one word per
// line, blank lines ignored.
func ParseShortWords(raw string) []string {
	var words []string
	for _, line := range splitLines(raw) {
		w := strings.TrimSpace(line)
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	return words
}
