package syllable

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// vowels holds base letters only; accented forms are reduced through NFD.
var vowels = map[rune]struct{}{}

func init() {
	const latin = "aeiouyæøœ"
	const ipa = "ɨʉɯɪʏʊɘɵɤəɛɜɞʌɔɐɶɒɑ"
	const cyrillic = "аеёиоуыэюяєіїў"
	for _, set := range []string{latin, ipa, cyrillic} {
		for _, r := range set {
			vowels[r] = struct{}{}
		}
	}
}

func isVowel(r rune) bool {
	r = unicode.ToLower(r)
	// й decomposes to и plus a breve but is a consonant.
	if r == utf8.RuneError || r == 'й' {
		return false
	}
	if _, ok := vowels[r]; ok {
		return true
	}
	base, _ := utf8.DecodeRuneInString(norm.NFD.String(string(r)))
	_, ok := vowels[base]
	return ok
}

func isConsonant(r rune) bool {
	return r != utf8.RuneError && unicode.IsLetter(r) && !isVowel(r)
}

func firstLetter(s string) rune {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return r
		}
	}
	return utf8.RuneError
}

func lastLetter(s string) rune {
	for len(s) > 0 {
		r, size := utf8.DecodeLastRuneInString(s)
		if unicode.IsLetter(r) {
			return r
		}
		s = s[:len(s)-size]
	}
	return utf8.RuneError
}
