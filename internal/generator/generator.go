// Package generator composes names from the syllable pools of one dialect.
//
// A Generator reads its dialect once at construction (and again on Refresh)
// and then composes any number of names from memory: a prefix, a run of
// middle syllables and a suffix, each syllable compatible with the one
// before it.
//
// # Determinism
//
// Every random choice is drawn from the Rand passed to New. Given the same
// dialect file and a Rand producing the same sequence, a Generator produces
// the same names in the same order.
//
// # Concurrency
//
// A Generator holds no lock. It is safe for concurrent Compose calls only if
// its Rand is safe for concurrent use and Refresh is not called at the same
// time. Otherwise give every goroutine its own Generator and Rand.
package generator

import (
	"bufio"
	"strings"
	"unicode/utf8"

	"name-pump/internal/syllable"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultMaxAttempts is the number of random draws tried before the pool is
// filtered for compatible syllables.
const DefaultMaxAttempts = 64

// Rand is the random source a Generator samples from. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Four 2s, ten 3s, three 4s and one 5, drawn uniformly.
var syllableCounts = [...]int{2, 2, 2, 2, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3, 4, 4, 4, 5}

// SyllableCounts returns a copy of the weighted syllable-count table.
func SyllableCounts() []int {
	out := make([]int, len(syllableCounts))
	copy(out, syllableCounts[:])
	return out
}

// PickSyllableCount draws a syllable count between 2 and 5.
func PickSyllableCount(rnd Rand) int {
	return syllableCounts[rnd.Intn(len(syllableCounts))]
}

// Generator composes names from one dialect.
type Generator struct {
	src         Source
	rnd         Rand
	rule        syllable.Rule
	maxAttempts int
	lang        language.Tag

	prefixes []syllable.Syllable
	middles  []syllable.Syllable
	suffixes []syllable.Syllable
}

// Option configures a Generator.
type Option func(*Generator)

// WithRule replaces the compatibility rule. Nil is ignored.
func WithRule(r syllable.Rule) Option {
	return func(g *Generator) {
		if r != nil {
			g.rule = r
		}
	}
}

// WithMaxAttempts sets the random draws tried per syllable. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithLanguage sets the language used to capitalise composed names.
func WithLanguage(tag language.Tag) Option {
	return func(g *Generator) {
		g.lang = tag
	}
}

// New creates a Generator and loads src. It returns a *LoadError when src
// cannot be read or holds a malformed line and an *EmptyPoolError when any of
// the three pools is empty.
func New(src Source, rnd Rand, opts ...Option) (*Generator, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if rnd == nil {
		return nil, ErrNilRand
	}

	g := &Generator{
		src:         src,
		rnd:         rnd,
		rule:        syllable.Flags,
		maxAttempts: DefaultMaxAttempts,
		lang:        language.Und,
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.Refresh(); err != nil {
		return nil, err
	}
	return g, nil
}

// Refresh rereads the dialect source and replaces all three pools. On error
// the previous pools are kept.
func (g *Generator) Refresh() error {
	name := g.src.Name()

	f, err := g.src.Open()
	if err != nil {
		return &LoadError{Source: name, Err: err}
	}
	defer f.Close()

	var prefixes, middles, suffixes []syllable.Syllable

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		s, err := syllable.Parse(line)
		if err != nil {
			return &LoadError{Source: name, Line: lineNo, Err: err}
		}

		switch {
		case s.IsPrefix():
			prefixes = append(prefixes, s)
		case s.IsSuffix():
			suffixes = append(suffixes, s)
		default:
			middles = append(middles, s)
		}
	}
	if err := scanner.Err(); err != nil {
		return &LoadError{Source: name, Err: err}
	}

	switch {
	case len(prefixes) == 0:
		return &EmptyPoolError{Source: name, Role: syllable.Prefix}
	case len(middles) == 0:
		return &EmptyPoolError{Source: name, Role: syllable.Middle}
	case len(suffixes) == 0:
		return &EmptyPoolError{Source: name, Role: syllable.Suffix}
	}

	g.prefixes, g.middles, g.suffixes = prefixes, middles, suffixes
	return nil
}

// Compose returns a name with a randomly drawn number of syllables.
func (g *Generator) Compose() (string, error) {
	return g.ComposeN(PickSyllableCount(g.rnd))
}

// ComposeN returns a name of count syllables. A count below 2 yields a single
// prefix syllable.
func (g *Generator) ComposeN(count int) (string, error) {
	parts, err := g.SyllablesN(count)
	if err != nil {
		return "", err
	}
	return g.Render(parts, ""), nil
}

// ComposeTexts is like Syllables but returns the syllable texts.
func (g *Generator) ComposeTexts() ([]string, error) {
	return g.ComposeTextsN(PickSyllableCount(g.rnd))
}

// ComposeTextsN is like SyllablesN but returns the syllable texts.
func (g *Generator) ComposeTextsN(count int) ([]string, error) {
	parts, err := g.SyllablesN(count)
	if err != nil {
		return nil, err
	}
	texts := make([]string, len(parts))
	for i, p := range parts {
		texts[i] = p.Text()
	}
	return texts, nil
}

// Syllables returns the syllables of a name with a randomly drawn length.
func (g *Generator) Syllables() ([]syllable.Syllable, error) {
	return g.SyllablesN(PickSyllableCount(g.rnd))
}

// SyllablesN returns the syllables of a name: a prefix, count-2 middles and
// a suffix. For count below 2 only the prefix is returned.
func (g *Generator) SyllablesN(count int) ([]syllable.Syllable, error) {
	pre := g.prefixes[g.rnd.Intn(len(g.prefixes))]
	if count < 2 {
		return []syllable.Syllable{pre}, nil
	}

	name, err := g.nextSyllables(pre, count-2)
	if err != nil {
		return nil, err
	}

	last, err := g.nextCompatible(name[len(name)-1], g.suffixes, syllable.Suffix)
	if err != nil {
		return nil, err
	}
	return append(name, last), nil
}

// Render joins parts with sep and upper-cases the first letter of the result.
func (g *Generator) Render(parts []syllable.Syllable, sep string) string {
	texts := make([]string, len(parts))
	for i, p := range parts {
		texts[i] = p.Text()
	}
	return capitalize(strings.Join(texts, sep), g.lang)
}

func (g *Generator) nextSyllables(pre syllable.Syllable, count int) ([]syllable.Syllable, error) {
	name := make([]syllable.Syllable, 1, count+2)
	name[0] = pre

	prev := pre
	for i := 0; i < count; i++ {
		next, err := g.nextCompatible(prev, g.middles, syllable.Middle)
		if err != nil {
			return nil, err
		}
		name = append(name, next)
		prev = next
	}
	return name, nil
}

// nextCompatible draws from pool until a syllable may follow prev. After
// maxAttempts misses it draws among the compatible syllables directly, so it
// fails only when the pool holds none.
func (g *Generator) nextCompatible(prev syllable.Syllable, pool []syllable.Syllable, role syllable.Role) (syllable.Syllable, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		candidate := pool[g.rnd.Intn(len(pool))]
		if g.rule.Compatible(prev, candidate) {
			return candidate, nil
		}
	}

	var compatible []syllable.Syllable
	for _, candidate := range pool {
		if g.rule.Compatible(prev, candidate) {
			compatible = append(compatible, candidate)
		}
	}
	if len(compatible) == 0 {
		return syllable.Syllable{}, &IncompatibleError{Previous: prev, Role: role, Pool: len(pool)}
	}
	return compatible[g.rnd.Intn(len(compatible))], nil
}

func capitalize(s string, tag language.Tag) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(tag).String(s[:size]) + s[size:]
}

// Source returns the dialect source the generator reads.
func (g *Generator) Source() Source { return g.src }

func (g *Generator) Prefixes() []syllable.Syllable { return clone(g.prefixes) }
func (g *Generator) Middles() []syllable.Syllable  { return clone(g.middles) }
func (g *Generator) Suffixes() []syllable.Syllable { return clone(g.suffixes) }

func (g *Generator) String() string {
	return "generator (" + g.src.Name() + ")"
}

func clone(in []syllable.Syllable) []syllable.Syllable {
	out := make([]syllable.Syllable, len(in))
	copy(out, in)
	return out
}
