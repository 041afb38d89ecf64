// Package syllable parses lines of a dialect file into syllables and decides
// which syllables may sit next to each other inside a composed name.
//
// A dialect line looks like
//
//	[marker]text [rule ...]
//
// The marker "-" makes the syllable a prefix, "+" makes it a suffix and no
// marker makes it a middle syllable. Rules are separated by whitespace:
//
//	+v  the next syllable must start with a vowel
//	+c  the next syllable must start with a consonant
//	-v  this syllable may only follow one that ends with a vowel
//	-c  this syllable may only follow one that ends with a consonant
//
// Both markers lead the line: a suffix is written "+dor", not "dor+". The
// prefix marker is checked first, so "-+text" is a prefix. Syllable text keeps
// its case; letter classes are decided case-insensitively.
package syllable

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	PrefixMarker = "-"
	SuffixMarker = "+"
)

// Role is the position a syllable may take inside a name.
type Role int

const (
	Middle Role = iota
	Prefix
	Suffix
)

func (r Role) String() string {
	switch r {
	case Prefix:
		return "prefix"
	case Suffix:
		return "suffix"
	default:
		return "middle"
	}
}

// Requirement constrains the letter class on one side of a syllable boundary.
type Requirement int

const (
	Any Requirement = iota
	Vowel
	Consonant
)

func (r Requirement) String() string {
	switch r {
	case Vowel:
		return "vowel"
	case Consonant:
		return "consonant"
	default:
		return "any"
	}
}

// Syllable is one parsed dialect line. The zero value is not a valid syllable.
type Syllable struct {
	raw  string
	text string
	role Role
	next Requirement
	prev Requirement
}

// Parse reads one dialect line. Blank lines fail with ErrEmptyLine and lines
// that are not syllable text followed by known rules fail with ErrMalformed.
func Parse(line string) (Syllable, error) {
	raw := norm.NFC.String(strings.TrimSpace(line))
	if raw == "" {
		return Syllable{}, &ParseError{Line: line, Err: ErrEmptyLine}
	}

	s := Syllable{raw: raw, role: Middle}
	body := raw
	switch {
	case strings.HasPrefix(body, PrefixMarker):
		s.role = Prefix
		body = strings.TrimPrefix(strings.TrimPrefix(body, PrefixMarker), SuffixMarker)
	case strings.HasPrefix(body, SuffixMarker):
		s.role = Suffix
		body = strings.TrimPrefix(body, SuffixMarker)
	}

	fields := strings.Fields(body)
	if len(fields) == 0 {
		return Syllable{}, &ParseError{Line: raw, Reason: "missing syllable text", Err: ErrMalformed}
	}
	if !isText(fields[0]) {
		return Syllable{}, &ParseError{Line: raw, Reason: "invalid syllable text " + fields[0], Err: ErrMalformed}
	}
	s.text = fields[0]

	for _, rule := range fields[1:] {
		var conflict bool
		switch rule {
		case "+v":
			conflict = s.next == Consonant
			s.next = Vowel
		case "+c":
			conflict = s.next == Vowel
			s.next = Consonant
		case "-v":
			conflict = s.prev == Consonant
			s.prev = Vowel
		case "-c":
			conflict = s.prev == Vowel
			s.prev = Consonant
		default:
			return Syllable{}, &ParseError{Line: raw, Reason: "unknown rule " + rule, Err: ErrMalformed}
		}
		if conflict {
			return Syllable{}, &ParseError{Line: raw, Reason: "conflicting rule " + rule, Err: ErrMalformed}
		}
	}

	return s, nil
}

// MustParse is like Parse but panics on error. Intended for tests and literals.
func MustParse(line string) Syllable {
	s, err := Parse(line)
	if err != nil {
		panic(err)
	}
	return s
}

// isText requires syllable text to start with a letter, which may be followed
// by letters, combining marks and apostrophes.
func isText(s string) bool {
	letters := 0
	for i, r := range s {
		switch {
		case i == 0 && !unicode.IsLetter(r):
			return false
		case unicode.IsLetter(r):
			letters++
		case unicode.Is(unicode.Mn, r), r == '\'':
		default:
			return false
		}
	}
	return letters > 0
}

func (s Syllable) Text() string { return s.text }
func (s Syllable) Raw() string  { return s.raw }
func (s Syllable) Role() Role   { return s.role }

func (s Syllable) String() string { return s.text }

func (s Syllable) IsPrefix() bool { return s.role == Prefix }
func (s Syllable) IsSuffix() bool { return s.role == Suffix }
func (s Syllable) IsMiddle() bool { return s.role == Middle }

// NextRequirement is the letter class the following syllable must start with.
func (s Syllable) NextRequirement() Requirement { return s.next }

// PreviousRequirement is the letter class the preceding syllable must end with.
func (s Syllable) PreviousRequirement() Requirement { return s.prev }

func (s Syllable) StartsWithVowel() bool     { return isVowel(firstLetter(s.text)) }
func (s Syllable) StartsWithConsonant() bool { return isConsonant(firstLetter(s.text)) }
func (s Syllable) EndsWithVowel() bool       { return isVowel(lastLetter(s.text)) }
func (s Syllable) EndsWithConsonant() bool   { return isConsonant(lastLetter(s.text)) }

// Incompatible reports whether next may not directly follow s under the
// vowel/consonant flags of both syllables.
func (s Syllable) Incompatible(next Syllable) bool {
	return s.nextIncompatible(next) || s.previousIncompatible(next)
}

// Compatible is the negation of Incompatible.
func (s Syllable) Compatible(next Syllable) bool {
	return !s.Incompatible(next)
}

func (s Syllable) nextIncompatible(next Syllable) bool {
	vnc := s.next == Vowel && next.StartsWithConsonant()
	cnv := s.next == Consonant && next.StartsWithVowel()
	return vnc || cnv
}

func (s Syllable) previousIncompatible(next Syllable) bool {
	vlc := s.EndsWithVowel() && next.prev == Consonant
	clv := s.EndsWithConsonant() && next.prev == Vowel
	return vlc || clv
}
