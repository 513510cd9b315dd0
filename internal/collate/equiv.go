package collate

import "unicode/utf8"

// Match is the parallel-decomposition result of aligning a pattern as a
// prefix of a source string under collation equivalence (§4.1). Orig[k] and
// Pat[k] are collation-equivalent consecutive substrings of the source and
// pattern, respectively; Orig preserves the source's original casing,
// diacritics, and spacing.
type Match struct {
	Orig []string
	Pat  []string
	// End is the byte offset in the source string where the match ends.
	End int
}

// prefixWidths returns the byte width of the first rune and of the first two
// runes available in s starting at i. A zero width means that many runes are
// not available (end of string).
func prefixWidths(s string, i int) (w1, w2 int) {
	if i >= len(s) {
		return 0, 0
	}
	_, sz1 := utf8.DecodeRuneInString(s[i:])
	w1 = sz1
	if i+sz1 >= len(s) {
		return w1, 0
	}
	_, sz2 := utf8.DecodeRuneInString(s[i+sz1:])
	return w1, sz1 + sz2
}

// GetCollatingMatch attempts to align pattern as a prefix of s. It returns
// the alignment and true on success, or the zero Match and false if some
// position in pattern could not be aligned (§4.1).
//
// The alignment is greedy, trying at each step, in priority order: one
// source rune against one pattern rune; two against two (both sides expand
// to a two-letter sequence); one against two or two against one (a ligature
// on either side); and finally an epsilon on either side, for a rune that
// normalizes to the empty string (e.g. the Catalan middle dot).
func GetCollatingMatch(s, pattern string) (Match, bool) {
	var m Match
	si, ti := 0, 0
	for ti < len(pattern) {
		sw1, sw2 := prefixWidths(s, si)
		tw1, tw2 := prefixWidths(pattern, ti)

		type step struct{ sw, tw int }
		var steps []step
		if sw1 > 0 && tw1 > 0 {
			steps = append(steps, step{sw1, tw1})
		}
		if sw2 > 0 && tw2 > 0 {
			steps = append(steps, step{sw2, tw2})
		}
		if sw1 > 0 && tw2 > 0 {
			steps = append(steps, step{sw1, tw2})
		}
		if sw2 > 0 && tw1 > 0 {
			steps = append(steps, step{sw2, tw1})
		}
		if sw1 > 0 {
			steps = append(steps, step{sw1, 0})
		}
		if tw1 > 0 {
			steps = append(steps, step{0, tw1})
		}

		matched := false
		for _, st := range steps {
			sChunk := s[si : si+st.sw]
			tChunk := pattern[ti : ti+st.tw]
			switch {
			case st.sw > 0 && st.tw > 0:
				if !CEquiv(sChunk, tChunk) {
					continue
				}
			case st.sw > 0: // epsilon on the pattern side
				if Normalize(sChunk) != "" {
					continue
				}
			default: // epsilon on the source side
				if Normalize(tChunk) != "" {
					continue
				}
			}
			m.Orig = append(m.Orig, sChunk)
			m.Pat = append(m.Pat, tChunk)
			si += st.sw
			ti += st.tw
			matched = true
			break
		}
		if !matched {
			return Match{}, false
		}
	}
	m.End = si
	return m, true
}
