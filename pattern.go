package iso4

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// notAbbreviated is the internal placeholder for the LTWA's "n.a." sentinel
// ("do not abbreviate"). An en-dash is used because it cannot appear in an
// LTWA replacement field otherwise, so it is an unambiguous marker.
const notAbbreviated = "–"

var naForms = map[string]bool{
	"n.a.":  true,
	"n. a.": true,
	"n.a":   true,
}

var parenCommentRe = regexp.MustCompile(`\([^)]*\)`)

// Pattern is one parsed LTWA record: a word or word-fragment and the
// abbreviation ISO-4 assigns to it.
type Pattern struct {
	// Pattern is the NFC-normalized, trimmed, comment-stripped word or
	// fragment, still carrying any leading/trailing '-'.
	Pattern string
	// Replacement is the NFC-normalized abbreviation, or notAbbreviated if
	// the LTWA marked this pattern as not to be abbreviated.
	Replacement string
	// Languages restricts filtering (see LanguageFilter); the pattern itself
	// applies to every language regardless of this set.
	Languages []language.Base
	StartDash bool
	EndDash   bool
	// Line is the original raw LTWA line, used for diagnostics and as the
	// dedup/sort key in PotentialPatterns.
	Line string
}

func parsePatternField(raw string) (body string, startDash, endDash bool) {
	s := norm.NFC.String(raw)
	s = parenCommentRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return s, strings.HasPrefix(s, "-"), strings.HasSuffix(s, "-")
}

func parseReplacementField(raw string) string {
	s := norm.NFC.String(strings.TrimSpace(raw))
	if naForms[strings.ToLower(s)] {
		return notAbbreviated
	}
	return s
}

func parseLanguagesField(raw string) []language.Base {
	var out []language.Base
	for _, f := range strings.Split(raw, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		b, err := language.ParseBase(f)
		if err != nil {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (p *Pattern) hasLanguage(b language.Base) bool {
	for _, l := range p.Languages {
		if l == b {
			return true
		}
	}
	return false
}

// bodyWithoutDashes strips leading/trailing '-' from the pattern body,
// honoring pretendDash (§4.4): trailing strip is conditional on
// EndDash||pretendDash, leading strip on StartDash||pretendDash.
func (p *Pattern) bodyWithoutDashes(pretendDash bool) string {
	s := p.Pattern
	if p.EndDash || pretendDash {
		s = strings.TrimSuffix(s, "-")
	}
	if p.StartDash || pretendDash {
		s = strings.TrimPrefix(s, "-")
	}
	return s
}

// startsWithASCIILetter reports whether the pattern's first non-dash
// character is an ASCII letter. Patterns that fail this test are "bad"
// patterns (§3): unordered, always evaluated regardless of position.
func startsWithASCIILetter(pattern string) bool {
	s := strings.TrimPrefix(pattern, "-")
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// LanguageFilter restricts which patterns a query considers. A nil or empty
// filter, or one containing "*", disables filtering entirely. Otherwise a
// pattern is included iff its language set intersects the filter.
type LanguageFilter []string

func (f LanguageFilter) matches(p *Pattern) bool {
	if len(f) == 0 {
		return true
	}
	for _, s := range f {
		if s == "*" {
			return true
		}
	}
	for _, s := range f {
		b, err := language.ParseBase(s)
		if err != nil {
			continue
		}
		if p.hasLanguage(b) {
			return true
		}
	}
	return false
}
