package cmd

import (
	"fmt"

	"name-pump/internal/dialect"
	"name-pump/internal/generator"
	"name-pump/internal/sink"
	"name-pump/internal/syllable"
)

// namer composes names for the compose and pump commands. With more than one
// dialect it picks a fresh one for every name.
type namer struct {
	rnd       generator.Rand
	uuid      func() string
	dialects  []dialect.Dialect
	syllables int
	opts      []generator.Option

	cache map[string]*generator.Generator
}

// composed is one name with the dialect and syllables it came from.
type composed struct {
	Dialect string
	Parts   []syllable.Syllable
	gen     *generator.Generator
}

func (c composed) Render(sep string) string {
	return c.gen.Render(c.Parts, sep)
}

func newNamer(rnd generator.Rand, dialects []dialect.Dialect, syllables int, opts ...generator.Option) (*namer, error) {
	if len(dialects) == 0 {
		return nil, dialect.ErrNoDialects
	}
	if syllables < 0 {
		return nil, fmt.Errorf("syllables must not be negative, got %d", syllables)
	}
	return &namer{
		rnd:       rnd,
		dialects:  dialects,
		syllables: syllables,
		opts:      opts,
		cache:     make(map[string]*generator.Generator),
	}, nil
}

func (n *namer) load(d dialect.Dialect) (*generator.Generator, error) {
	if g, ok := n.cache[d.Name]; ok {
		return g, nil
	}
	g, err := dialect.New(d, n.rnd, n.opts...)
	if err != nil {
		return nil, err
	}
	n.cache[d.Name] = g
	return g, nil
}

// Next composes one name. Zero syllables draws the count from the weighted table.
func (n *namer) Next() (composed, error) {
	d := n.dialects[0]
	if len(n.dialects) > 1 {
		var err error
		if d, err = dialect.Pick(n.dialects, n.rnd); err != nil {
			return composed{}, err
		}
	}

	g, err := n.load(d)
	if err != nil {
		return composed{}, err
	}

	var parts []syllable.Syllable
	if n.syllables == 0 {
		parts, err = g.Syllables()
	} else {
		parts, err = g.SyllablesN(n.syllables)
	}
	if err != nil {
		return composed{}, fmt.Errorf("dialect %s: %w", d.Name, err)
	}
	return composed{Dialect: d.Name, Parts: parts, gen: g}, nil
}

// Row adapts Next into a sink producer.
func (n *namer) Row() (sink.Row, error) {
	c, err := n.Next()
	if err != nil {
		return sink.Row{}, err
	}
	id := ""
	if n.uuid != nil {
		id = n.uuid()
	}
	return sink.Row{
		ID:        id,
		Dialect:   c.Dialect,
		Name:      c.Render(""),
		Syllables: len(c.Parts),
	}, nil
}

// selectDialects resolves the --dialect, --dialect-file, --flip and
// --cyrillic flags into the dialects a namer draws from.
func selectDialects(all []dialect.Dialect, name, file string, flip, cyrillic bool) ([]dialect.Dialect, error) {
	switch {
	case file != "":
		d, err := dialect.Open(file)
		if err != nil {
			return nil, err
		}
		return []dialect.Dialect{d}, nil
	case flip:
		want := dialect.Latin
		if cyrillic {
			want = dialect.Cyrillic
		}
		var out []dialect.Dialect
		for _, d := range all {
			if d.Script == want && !d.Experimental {
				out = append(out, d)
			}
		}
		if len(out) == 0 {
			return nil, dialect.ErrNoDialects
		}
		return out, nil
	default:
		d, err := findDialect(all, name)
		if err != nil {
			return nil, err
		}
		return []dialect.Dialect{d}, nil
	}
}
