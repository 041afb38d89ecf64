package dialect

import (
	"name-pump/internal/generator"
)

// Pick returns one of dialects, chosen uniformly with rnd.
func Pick(dialects []Dialect, rnd generator.Rand) (Dialect, error) {
	if len(dialects) == 0 {
		return Dialect{}, ErrNoDialects
	}
	if rnd == nil {
		return Dialect{}, generator.ErrNilRand
	}
	return dialects[rnd.Intn(len(dialects))], nil
}

// New builds a generator over d. Names are capitalised for d's script unless
// opts set another language.
func New(d Dialect, rnd generator.Rand, opts ...generator.Option) (*generator.Generator, error) {
	all := append([]generator.Option{generator.WithLanguage(d.Script.Language())}, opts...)
	return generator.New(d.Source(), rnd, all...)
}

// NewByName builds a generator over the bundled dialect called name.
func NewByName(name string, rnd generator.Rand, opts ...generator.Option) (*generator.Generator, error) {
	d, err := GetDialect(name)
	if err != nil {
		return nil, err
	}
	return New(d, rnd, opts...)
}

// Flip builds a generator over a random Latin dialect.
func Flip(rnd generator.Rand, opts ...generator.Option) (*generator.Generator, error) {
	return flip(Latin(), rnd, opts...)
}

// FlipCyrillic builds a generator over a random Cyrillic dialect.
func FlipCyrillic(rnd generator.Rand, opts ...generator.Option) (*generator.Generator, error) {
	return flip(Cyrillic(), rnd, opts...)
}

func flip(dialects []Dialect, rnd generator.Rand, opts ...generator.Option) (*generator.Generator, error) {
	d, err := Pick(dialects, rnd)
	if err != nil {
		return nil, err
	}
	return New(d, rnd, opts...)
}
