package iso4

import (
	"sort"

	"github.com/go-ltwa/iso4/internal/collate"
	"github.com/go-ltwa/iso4/internal/trie"
)

// Engine holds a built LTWA dictionary and short-word list. Once returned
// from Build, an Engine is immutable and every method is safe for
// concurrent use without locking (§5).
type Engine struct {
	// dictPatterns holds ordinary dictionary-word patterns, indexed by the
	// promiscuous normalization of their full pattern text; these are only
	// candidates at a new-word boundary.
	dictPatterns *trie.Tree[*Pattern]
	// nonprefixPatterns holds the start-dash (fragment) patterns, indexed
	// the same way, but consulted at every letter position, not just word
	// starts — this is what lets mid-word fragments match.
	nonprefixPatterns *trie.Tree[*Pattern]
	// badPatterns failed startsWithASCIILetter and so can't be indexed by
	// position; every query evaluates them directly.
	badPatterns []*Pattern
	shortWords  []string
	size        int
}

// Build parses raw LTWA and short-word dictionary text (§6) and indexes the
// result. Malformed LTWA lines are collected into a *BuildError rather than
// aborting the parse; if any are found, Build still returns a usable Engine
// built from the valid lines, alongside the error.
func Build(ltwa, shortWords string) (*Engine, error) {
	patterns, err := ParseLTWAPatterns(ltwa)
	words := ParseShortWords(shortWords)

	e := &Engine{
		dictPatterns:      trie.New[*Pattern](),
		nonprefixPatterns: trie.New[*Pattern](),
		shortWords:        words,
		size:              len(patterns),
	}

	for _, p := range patterns {
		key := collate.PromiscuousNormalize(p.Pattern)
		if !startsWithASCIILetter(p.Pattern) {
			e.badPatterns = append(e.badPatterns, p)
			continue
		}
		if p.StartDash {
			e.nonprefixPatterns.Add(key, p)
		} else {
			e.dictPatterns.Add(key, p)
		}
	}

	return e, err
}

// Size returns the number of patterns the engine was built from.
func (e *Engine) Size() int {
	return e.size
}

// PotentialPatterns returns every pattern that could conceivably match
// somewhere in title, without verifying the match (§4.3). The result may
// contain false positives but never a false negative relative to
// MatchingPatterns with the same pretendDash and an unrestricted language
// filter.
func (e *Engine) PotentialPatterns(title string, pretendDash bool) []*Pattern {
	norm := collate.PromiscuousNormalize(title)
	seen := map[string]*Pattern{}

	add := func(p *Pattern) {
		seen[p.Line] = p
	}
	for _, p := range e.badPatterns {
		add(p)
	}

	isWordStart := true
	for i, r := range norm {
		if r == ' ' {
			isWordStart = true
			continue
		}
		for _, p := range e.nonprefixPatterns.Get(norm[i:]) {
			add(p)
		}
		if isWordStart || pretendDash {
			for _, p := range e.dictPatterns.Get(norm[i:]) {
				add(p)
			}
		}
		isWordStart = false
	}

	out := make([]*Pattern, 0, len(seen))
	for _, p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Line < out[j].Line })
	return out
}

// Matches verifies each candidate pattern against title and returns every
// actual occurrence, restricted to languages (§4.4).
func (e *Engine) Matches(title string, languages LanguageFilter, pretendDash bool, patterns []*Pattern) []Match {
	var out []Match
	for _, p := range patterns {
		if !languages.matches(p) {
			continue
		}
		out = append(out, matchesForPattern(title, p, pretendDash)...)
	}
	return out
}

// MatchingPatterns returns the distinct patterns that actually occur in
// title, ordered by the position of their first occurrence.
func (e *Engine) MatchingPatterns(title string, languages LanguageFilter, pretendDash bool) []*Pattern {
	candidates := e.PotentialPatterns(title, pretendDash)
	matches := e.Matches(title, languages, pretendDash, candidates)

	firstStart := map[string]int{}
	byLine := map[string]*Pattern{}
	for _, m := range matches {
		if _, ok := byLine[m.Pattern.Line]; !ok || m.Start < firstStart[m.Pattern.Line] {
			firstStart[m.Pattern.Line] = m.Start
		}
		byLine[m.Pattern.Line] = m.Pattern
	}

	out := make([]*Pattern, 0, len(byLine))
	for _, p := range byLine {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		si, sj := firstStart[out[i].Line], firstStart[out[j].Line]
		if si != sj {
			return si < sj
		}
		return out[i].Line < out[j].Line
	})
	return out
}

// CoveredMatch groups every match sharing the same span, for callers that
// want to inspect which patterns compete for a given stretch of text.
type CoveredMatch struct {
	Start, End int
	Patterns   []*Pattern
}

// MatchingPatternsCovering groups matches by identical (start, end) span,
// a convenience on top of Matches for inspecting overlap/priority
// decisions rather than re-deriving them from MakeAbbreviation's output.
func (e *Engine) MatchingPatternsCovering(title string, languages LanguageFilter, pretendDash bool) []CoveredMatch {
	candidates := e.PotentialPatterns(title, pretendDash)
	matches := e.Matches(title, languages, pretendDash, candidates)

	type key struct{ start, end int }
	groups := map[key][]*Pattern{}
	for _, m := range matches {
		k := key{m.Start, m.End}
		groups[k] = append(groups[k], m.Pattern)
	}

	out := make([]CoveredMatch, 0, len(groups))
	for k, pats := range groups {
		out = append(out, CoveredMatch{Start: k.start, End: k.end, Patterns: pats})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out
}
