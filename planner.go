package iso4

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-ltwa/iso4/internal/collate"
)

var (
	reEllipsis = regexp.MustCompile(`\.\.\.|\x{2026}`)
	// reAcronym is applied twice (see normalizePunctuation) to handle
	// overlapping runs like "U.S.A." - §4.5 step 1's acronym rule.
	reAcronym        = regexp.MustCompile(`((?:^|[A-Z,.&\\/-])\s?[A-Z]),`)
	reSingleCapital  = regexp.MustCompile(`(\s[A-Z]),`)
	reIntraWordDot   = regexp.MustCompile(`([A-Za-z]),([A-Za-z])`)
	reOrdinalNumeric = regexp.MustCompile(`([\s\-:,&#()\\/][0-9]{1,3}),`)
	reHonorific      = regexp.MustCompile(`((?:^|\s)(?:St|Mr|Ms|Mrs|Mx|Dr|Prof|vs)),`)
	reLeadingJ       = regexp.MustCompile(`^J,`)
	reAndSign        = regexp.MustCompile(`([^A-Z0-9])[&+]([^A-Z0-9])`)
	reDependentTitle = regexp.MustCompile(`(?i:\b(?:Series|Part|Section|Pt|Ser))\.?\s+([IVXLCDM]+|[A-Z]|[0-9]+)\b`)
)

// normalizePunctuation applies the ISO-4 punctuation rules (§4.5 step 1):
// ellipses and commas drop out entirely; periods are temporarily re-encoded
// as commas so that only the specific constructs that are supposed to keep
// a period - acronyms, a lone initial, intra-word dots, ordinals/small
// numerics, honorifics, a leading "J," - get one restored, with everything
// else falling out in the final comma sweep.
func normalizePunctuation(s string) string {
	s = reEllipsis.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, ".", ",")

	s = reAcronym.ReplaceAllString(s, "${1}.")
	s = reAcronym.ReplaceAllString(s, "${1}.")
	s = reSingleCapital.ReplaceAllString(s, "${1}.")
	s = reIntraWordDot.ReplaceAllString(s, "${1}.${2}")
	s = reOrdinalNumeric.ReplaceAllString(s, "${1}.")
	s = reHonorific.ReplaceAllString(s, "${1}.")
	s = reLeadingJ.ReplaceAllString(s, "J.")

	s = strings.ReplaceAll(s, ",", "")
	s = reAndSign.ReplaceAllString(s, "$1$2")
	return collate.CollapseSpaces(s)
}

// stripDependentTitleSeparators elides a dependent-title separator word
// (Series, Part, Section, ...) that precedes an enumeration token, keeping
// only the enumeration itself (§4.5 step 2).
func stripDependentTitleSeparators(s string) string {
	return reDependentTitle.ReplaceAllString(s, "$1")
}

type spanTok struct {
	text     string
	boundary bool
}

// tokenizeKeepBoundaries splits s into alternating boundary/non-boundary
// runs under isBoundary, retaining the boundary runs verbatim so the
// caller can drop or rewrite individual word tokens and reassemble the
// string without losing surrounding spacing.
func tokenizeKeepBoundaries(s string, isBoundary func(rune) bool) []spanTok {
	runes := []rune(s)
	var toks []spanTok
	i := 0
	for i < len(runes) {
		b := isBoundary(runes[i])
		j := i + 1
		for j < len(runes) && isBoundary(runes[j]) == b {
			j++
		}
		toks = append(toks, spanTok{text: string(runes[i:j]), boundary: b})
		i = j
	}
	return toks
}

var articleWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"le": true, "la": true, "les": true, "l": true,
	"el": true, "los": true, "las": true,
	"der": true, "die": true, "das": true, "den": true, "dem": true,
	"il": true, "lo": true, "gli": true, "i": true,
	"de": true, "het": true, "een": true,
	"un": true, "una": true, "uno": true,
}

var contractedArticlePrefixes = []string{"dell'", "nell'", "l'", "d'"}

var apostropheNormalizer = strings.NewReplacer("’", "'")

func stripContractedArticle(token string) string {
	normalized := apostropheNormalizer.Replace(token)
	lower := strings.ToLower(normalized)
	for _, prefix := range contractedArticlePrefixes {
		if strings.HasPrefix(lower, prefix) {
			runes := []rune(token)
			n := utf8.RuneCountInString(prefix)
			if n < len(runes) {
				return string(runes[n:])
			}
		}
	}
	return token
}

// stripArticles removes whole-token definite/indefinite articles and
// contracted article prefixes ("l'", "d'", ...) from title tokens (§4.5
// step 3). A whole-token article is removed only when a boundary follows
// it, so a trailing enumeration such as the "A" of "Proceedings A" is kept.
// Tokenization uses the narrower title boundary set so that internal
// apostrophes (Baha'i) and ampersands (A&A) are not mistaken for word
// separators.
func stripArticles(s string) string {
	toks := tokenizeKeepBoundaries(s, collate.IsTitleBoundaryRune)
	var sb strings.Builder
	for i, t := range toks {
		if t.boundary {
			sb.WriteString(t.text)
			continue
		}
		stripped := stripContractedArticle(t.text)
		if stripped != t.text {
			sb.WriteString(stripped)
			continue
		}
		if i+1 < len(toks) && articleWords[strings.ToLower(t.text)] {
			continue
		}
		sb.WriteString(t.text)
	}
	return sb.String()
}

// removeShortWords removes whole-word occurrences of shortWords (case
// insensitive), exempting the title's first and last word so the
// reduction never eats the only content word left (§4.5 step 4).
func removeShortWords(s string, shortWords []string) string {
	if len(shortWords) == 0 {
		return s
	}
	short := map[string]bool{}
	for _, w := range shortWords {
		short[strings.ToLower(w)] = true
	}

	toks := tokenizeKeepBoundaries(s, unicode.IsSpace)
	firstWord, lastWord := -1, -1
	for i, t := range toks {
		if !t.boundary {
			if firstWord == -1 {
				firstWord = i
			}
			lastWord = i
		}
	}

	var sb strings.Builder
	for i, t := range toks {
		if !t.boundary && i != firstWord && i != lastWord && short[strings.ToLower(t.text)] {
			continue
		}
		sb.WriteString(t.text)
	}
	return collate.CollapseSpaces(sb.String())
}

// wordRunCount counts word-character runs separated by boundary characters,
// for the single-word preservation check (§4.5 step 4 / §8) - not just
// whitespace, so a hyphenated or slash-joined title like "Bio-protocol" or
// "F1000-Research" is correctly seen as two words rather than one.
func wordRunCount(s string) int {
	toks := tokenizeKeepBoundaries(s, collate.IsTitleBoundaryRune)
	n := 0
	for _, t := range toks {
		if !t.boundary {
			n++
		}
	}
	return n
}

// priority scores a match for overlap resolution (§4.5 step 6). The
// asymmetric weight of a leading dash (100) against a trailing one (3) is
// exactly as specified; it is not a typo.
func priority(m Match) int {
	p := m.Pattern
	appendixLen := utf8.RuneCountInString(m.Appendix)
	matchedLen := m.End - m.Start
	stemLen := matchedLen - appendixLen
	patLen := utf8.RuneCountInString(p.Pattern)

	score := 0
	if p.StartDash {
		score += 100
	}
	if p.EndDash {
		score += 3
	}
	score += appendixLen
	score -= stemLen
	score -= patLen
	return score
}

type interval struct{ start, end int }

func (iv interval) overlaps(o interval) bool {
	return iv.start < o.end && o.start < iv.end
}

// applyLTWA resolves overlapping matches by ascending priority (lower
// value wins: word-start-anchored patterns beat mid-word ones, longer
// matches/patterns beat shorter, shorter appendices beat longer) and
// applies the survivors to title, highest-start first so earlier offsets
// stay valid, dropping any substitution that would not strictly shorten
// its span (§4.5 steps 6-7).
func applyLTWA(title string, matches []Match) string {
	order := make([]int, len(matches))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		pa, pb := priority(matches[order[a]]), priority(matches[order[b]])
		if pa != pb {
			return pa < pb
		}
		return matches[order[a]].Start < matches[order[b]].Start
	})

	var accepted []interval
	var kept []Match
	for _, idx := range order {
		m := matches[idx]
		iv := interval{m.Start, m.End}
		overlap := false
		for _, a := range accepted {
			if iv.overlaps(a) {
				overlap = true
				break
			}
		}
		if overlap {
			continue
		}
		accepted = append(accepted, iv)
		kept = append(kept, m)
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Start > kept[j].Start })

	titleRunes := []rune(title)
	for _, m := range kept {
		abbrRunes := []rune(m.Abbr)
		if len(abbrRunes) >= m.End-m.Start {
			continue
		}
		next := make([]rune, 0, len(titleRunes)-(m.End-m.Start)+len(abbrRunes))
		next = append(next, titleRunes[:m.Start]...)
		next = append(next, abbrRunes...)
		next = append(next, titleRunes[m.End:]...)
		titleRunes = next
	}
	return string(titleRunes)
}

// MakeAbbreviation computes the ISO-4 abbreviation of title (§4.5). The
// single-word exemption (step 4) is evaluated against a probe copy with
// short words already stripped, before LTWA substitution is attempted —
// not against the final abbreviated text. That ordering is load-bearing:
// reversing it changes which one-word titles are left untouched. LTWA
// matching (step 5) then runs over the short-word-containing text from
// step 3, and short words are removed (step 6) only after substitution, so
// a short word that also happens to be a valid LTWA pattern still gets the
// chance to be abbreviated instead of being deleted before the matcher
// ever sees it.
func (e *Engine) MakeAbbreviation(title string, languages LanguageFilter, patterns []*Pattern) string {
	norm := normalizePunctuation(title)
	norm = stripDependentTitleSeparators(norm)
	norm = stripArticles(norm)
	norm = strings.TrimSpace(collate.CollapseSpaces(norm))

	probe := removeShortWords(norm, e.shortWords)
	if wordRunCount(probe) <= 1 {
		return norm
	}

	var candidates []*Pattern
	if patterns != nil {
		candidates = patterns
	} else {
		candidates = e.PotentialPatterns(norm, false)
	}
	matches := e.Matches(norm, languages, false, candidates)
	abbreviated := applyLTWA(norm, matches)

	result := removeShortWords(abbreviated, e.shortWords)
	return strings.TrimSpace(collate.CollapseSpaces(result))
}
