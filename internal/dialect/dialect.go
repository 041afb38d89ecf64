// Package dialect registers the bundled dialect files and picks among them.
package dialect

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"name-pump/internal/generator"

	"golang.org/x/text/language"
)

//go:embed languages
var languages embed.FS

var (
	ErrUnknownDialect = errors.New("dialect: unknown dialect")
	ErrNoDialects     = errors.New("dialect: no dialects to pick from")
	ErrUnknownScript  = errors.New("dialect: unknown script")
)

// Script is the alphabet a dialect file is written in.
type Script string

const (
	Latin    Script = "latin"
	Cyrillic Script = "cyrillic"
)

// ParseScript accepts "latin" and "cyrillic" in any case. Empty means Latin.
func ParseScript(s string) (Script, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Latin):
		return Latin, nil
	case string(Cyrillic):
		return Cyrillic, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScript, s)
	}
}

// Language returns the tag used to capitalise names written in the script.
func (s Script) Language() language.Tag {
	if s == Cyrillic {
		return language.Russian
	}
	return language.English
}

const (
	Fantasy   = "fantasy"
	Elven     = "elven"
	Goblin    = "goblin"
	Roman     = "roman"
	FantasyRU = "fantasy-ru"
	ElvenRU   = "elven-ru"
	GoblinRU  = "goblin-ru"
	RomanRU   = "roman-ru"
	Curse     = "curse"

	// Default is used when no dialect is configured.
	Default = Fantasy
)

// Dialect names one syllable file.
type Dialect struct {
	Name         string
	Path         string
	Script       Script
	Experimental bool

	external bool
}

var bundled = []Dialect{
	{Name: Fantasy, Path: "languages/fantasy.txt", Script: Latin},
	{Name: Elven, Path: "languages/elven.txt", Script: Latin},
	{Name: Goblin, Path: "languages/goblin.txt", Script: Latin},
	{Name: Roman, Path: "languages/roman.txt", Script: Latin},
	{Name: FantasyRU, Path: "languages/fantasy-ru.txt", Script: Cyrillic},
	{Name: ElvenRU, Path: "languages/elven-ru.txt", Script: Cyrillic},
	{Name: GoblinRU, Path: "languages/goblin-ru.txt", Script: Cyrillic},
	{Name: RomanRU, Path: "languages/roman-ru.txt", Script: Cyrillic},
	{Name: Curse, Path: "languages/experimental/curse.txt", Script: Latin, Experimental: true},
}

// Source returns the generator source reading the dialect file.
func (d Dialect) Source() generator.Source {
	if d.external {
		return generator.File(d.Path)
	}
	return generator.FS(languages, d.Path)
}

// External reports whether the dialect is read from disk rather than the bundle.
func (d Dialect) External() bool {
	return d.external
}

func (d Dialect) String() string {
	return d.Name
}

// GetDialect returns the bundled dialect with the given name.
func GetDialect(name string) (Dialect, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, d := range bundled {
		if d.Name == key {
			return d, nil
		}
	}
	return Dialect{}, fmt.Errorf("%w: %q", ErrUnknownDialect, name)
}

// All returns every bundled dialect, experimental ones included.
func All() []Dialect {
	out := make([]Dialect, len(bundled))
	copy(out, bundled)
	return out
}

// Latin returns the stable Latin-script dialects.
func Latin() []Dialect {
	return filter(func(d Dialect) bool { return d.Script == Latin && !d.Experimental })
}

// Cyrillic returns the stable Cyrillic-script dialects.
func Cyrillic() []Dialect {
	return filter(func(d Dialect) bool { return d.Script == Cyrillic && !d.Experimental })
}

// Names returns the names of all bundled dialects.
func Names() []string {
	names := make([]string, len(bundled))
	for i, d := range bundled {
		names[i] = d.Name
	}
	return names
}

func filter(keep func(Dialect) bool) []Dialect {
	var out []Dialect
	for _, d := range bundled {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}

// FromFile describes an external dialect file. The name is the file name
// without its extension.
func FromFile(path string, script Script) Dialect {
	base := filepath.Base(path)
	return Dialect{
		Name:     strings.TrimSuffix(base, filepath.Ext(base)),
		Path:     path,
		Script:   script,
		external: true,
	}
}

// Open describes the external dialect file at path. The script is Cyrillic
// when the file holds any Cyrillic letter.
func Open(path string) (Dialect, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dialect{}, fmt.Errorf("failed to read dialect %s: %w", path, err)
	}
	script := Latin
	if strings.IndexFunc(string(data), func(r rune) bool { return unicode.Is(unicode.Cyrillic, r) }) >= 0 {
		script = Cyrillic
	}
	return FromFile(path, script), nil
}

// Dir opens every *.txt file in dir as an external dialect, sorted by name.
func Dir(dir string) ([]Dialect, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to list dialects in %s: %w", dir, err)
	}
	sort.Strings(paths)

	var out []Dialect
	for _, p := range paths {
		d, err := Open(p)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
