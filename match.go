package iso4

import (
	"strings"
	"unicode/utf8"

	"github.com/go-ltwa/iso4/internal/collate"
)

// Match is one occurrence of a pattern in a title, located by rune offsets
// into the title's []rune form.
type Match struct {
	Start, End int
	Abbr       string
	Pattern    *Pattern
	// Appendix is the flection consumed after the matched stem: either the
	// fixed-form suffix (e.g. "ies", "'s") or, for end-dash patterns, the
	// freeform run of characters consumed up to the next boundary.
	Appendix string
}

// isAppendixRune reports whether r is one of the characters a fixed
// (non-end-dash) pattern may consume as a trailing flection, per §4.4.
func isAppendixRune(r rune) bool {
	switch r {
	case 'i', 'a', 'e', 's', 'n', '\'', '’':
		return true
	}
	return false
}

// matchAppendix finds the flection following a matched stem. It emulates the
// backtracking regular expression ^([iaesn'’]{0,3})(boundary|EOS): Go's RE2
// engine has no lookahead, so the longest-candidate-first, then-backtrack
// search is done by hand here.
func matchAppendix(rest []rune) (string, bool) {
	maxN := 3
	if len(rest) < maxN {
		maxN = len(rest)
	}
	longest := 0
	for longest < maxN && isAppendixRune(rest[longest]) {
		longest++
	}
	for n := longest; n >= 0; n-- {
		if n == len(rest) {
			return string(rest[:n]), true
		}
		if collate.IsMatchBoundaryRune(rest[n]) {
			return string(rest[:n]), true
		}
	}
	return "", false
}

// matchesForPattern finds every occurrence of pat in title (§4.4). A match
// must start at a word boundary unless pat has a start dash or pretendDash
// is set, in which case it may start mid-word. End-dash patterns (or pretendDash,
// used when probing candidate prefixes) consume every character up to the
// next boundary as their appendix instead of the fixed appendix grammar.
func matchesForPattern(title string, pat *Pattern, pretendDash bool) []Match {
	titleRunes := []rune(title)
	stem := pat.bodyWithoutDashes(pretendDash)
	if stem == "" {
		return nil
	}

	// "n.a." patterns (§6) exist to mark a word as deliberately
	// not-abbreviated; nothing to substitute, so the pattern contributes no
	// matches at all rather than an abbreviation that duplicates the title.
	if pat.Replacement == notAbbreviated {
		return nil
	}

	var matches []Match
	isPrevBoundary := true
	for i := 0; i < len(titleRunes); i++ {
		atBoundary := isPrevBoundary
		isPrevBoundary = collate.IsMatchBoundaryRune(titleRunes[i])
		if !atBoundary && !pat.StartDash && !pretendDash {
			continue
		}

		rest := string(titleRunes[i:])
		cm, ok := collate.GetCollatingMatch(rest, stem)
		if !ok {
			continue
		}
		matchEnd := i + utf8.RuneCountInString(rest[:cm.End])

		if pat.EndDash || pretendDash {
			j := matchEnd
			for j < len(titleRunes) && !collate.IsMatchBoundaryRune(titleRunes[j]) {
				j++
			}
			// The end-dash marker means "replace whatever flection follows",
			// so the consumed appendix extends the match but is not carried
			// into the abbreviation text itself.
			appendix := string(titleRunes[matchEnd:j])
			matches = append(matches, Match{
				Start:    i,
				End:      j,
				Abbr:     assembleAbbreviation(cm, pat.Replacement),
				Pattern:  pat,
				Appendix: appendix,
			})
			continue
		}

		appendix, ok := matchAppendix(titleRunes[matchEnd:])
		if !ok {
			continue
		}
		end := matchEnd + utf8.RuneCountInString(appendix)
		matches = append(matches, Match{
			Start:    i,
			End:      end,
			Abbr:     assembleAbbreviation(cm, pat.Replacement),
			Pattern:  pat,
			Appendix: appendix,
		})
	}
	return matches
}

// assembleAbbreviation builds the surface abbreviation for one match by
// walking the replacement pattern character by character: literal dots
// are emitted as-is, and every other replacement character consumes the
// next collating-equivalent chunk of the original title text, preserving
// its original case and diacritics instead of the dictionary's.
func assembleAbbreviation(m collate.Match, replacement string) string {
	repl := []rune(replacement)
	var sb strings.Builder
	ii := 0
	for j := 0; j < len(repl); j++ {
		if repl[j] == '.' {
			sb.WriteRune('.')
			continue
		}
		one := string(repl[j])
		var two string
		if j+1 < len(repl) {
			two = string(repl[j : j+2])
		}
		for ii < len(m.Pat) {
			if two != "" && collate.CEquiv(m.Pat[ii], two) {
				sb.WriteString(m.Orig[ii])
				ii++
				j++
				break
			}
			if collate.CEquiv(m.Pat[ii], one) {
				sb.WriteString(m.Orig[ii])
				ii++
				break
			}
			ii++
		}
	}
	return sb.String()
}
