// Package collate implements the limited collation-equivalence relation the
// LTWA matcher runs under: diacritic folding, a fixed set of ligature and
// letter rewrites, and the "promiscuous" indexing normalization used only as
// a prefix-tree key. It is deliberately narrower than general Unicode
// collation (golang.org/x/text/collate).
package collate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// charRewrites are the mandatory, case-preserving letter rewrites applied
// before decomposition. Keys and values both carry case so that e.g. 'Đ'
// becomes "D" while 'đ' becomes "d".
var charRewrites = map[rune]string{
	'ß': "ss", 'ẞ': "SS",
	'đ': "d", 'Đ': "D",
	'ð': "d", 'Ð': "D",
	'þ': "th", 'Þ': "TH",
	'ħ': "h", 'Ħ': "H",
	'ł': "l", 'Ł': "L",
	'œ': "oe", 'Œ': "Oe",
	'æ': "ae", 'Æ': "Ae",
	'ı': "i",
	'ø': "o", 'Ø': "O",
}

// strippedRunes are dropped outright: Catalan middle dot, modifier letter
// double prime, and the Unicode replacement character.
var strippedRunes = map[rune]bool{
	'·': true,
	'ʺ': true,
	'�': true,
}

// combiningMarks is the narrow U+0300-U+036F combining-diacritical-marks
// block that normalize strips after decomposition. It is deliberately
// narrower than unicode.Mn: diacritics outside this block (e.g. Hebrew or
// Arabic marks) are left in place, matching the LTWA's Latin-centric design.
var combiningMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036F, Stride: 1}},
}

// rewriter performs the fixed character rewrites of §4.1 ahead of
// decomposition. It holds no state, so a fresh value is safe to embed in a
// new transform.Chain on every call without synchronization.
type rewriter struct{}

func (rewriter) Reset() {}

func (rewriter) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size <= 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				err = transform.ErrShortSrc
				return
			}
			if len(dst)-nDst < 1 {
				err = transform.ErrShortDst
				return
			}
			dst[nDst] = src[nSrc]
			nDst++
			nSrc++
			continue
		}
		rep, rewritten := charRewrites[r]
		switch {
		case strippedRunes[r]:
			rep, rewritten = "", true
		case !rewritten:
			rep = string(r)
		}
		if len(dst)-nDst < len(rep) {
			err = transform.ErrShortDst
			return
		}
		nDst += copy(dst[nDst:], rep)
		nSrc += size
	}
	return
}

// Normalize applies the §4.1 fixed rewrites, NFKD compatibility
// decomposition, and combining-mark removal. Case is preserved throughout;
// lowercasing is the caller's responsibility (see CEquiv).
func Normalize(s string) string {
	t := transform.Chain(rewriter{}, norm.NFKD, runes.Remove(runes.In(combiningMarks)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// PromiscuousNormalize produces the lossier key used only to index the
// prefix trees (§4.1). It is never used for match decisions.
func PromiscuousNormalize(s string) string {
	s = Normalize(s)
	var b strings.Builder
	b.Grow(len(s))
	lastWasBoundary := true // collapse a run of leading boundary runes too
	for _, r := range s {
		r = unicode.ToLower(r)
		if IsMatchBoundaryRune(r) {
			if !lastWasBoundary {
				b.WriteByte(' ')
			}
			lastWasBoundary = true
			continue
		}
		b.WriteRune(r)
		lastWasBoundary = false
	}
	s = CollapseSpaces(b.String())

	var b2 strings.Builder
	b2.Grow(len(s))
	for _, r := range s {
		if r == ' ' || (r >= 'a' && r <= 'z') {
			b2.WriteRune(r)
		}
	}
	s = b2.String()

	s = strings.ReplaceAll(s, "kh", "")
	s = strings.ReplaceAll(s, "h", "")
	return s
}

// CEquiv reports whether s and t are collation-equivalent: equal once both
// are normalized and lowercased.
func CEquiv(s, t string) bool {
	return strings.ToLower(Normalize(s)) == strings.ToLower(Normalize(t))
}

// CollapseSpaces collapses every run of whitespace in s to a single space
// and trims the result.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
