package dialect_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"unicode"
	"unicode/utf8"

	"name-pump/internal/dialect"
	"name-pump/internal/generator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constRand int

func (c constRand) Intn(n int) int {
	return int(c) % n
}

func TestBundled_Productive(t *testing.T) {
	for _, d := range dialect.All() {
		t.Run(d.Name, func(t *testing.T) {
			g, err := dialect.New(d, rand.New(rand.NewSource(42)))
			require.NoError(t, err)
			assert.NotEmpty(t, g.Prefixes())
			assert.NotEmpty(t, g.Middles())
			assert.NotEmpty(t, g.Suffixes())

			for count := 1; count <= 5; count++ {
				for i := 0; i < 200; i++ {
					name, err := g.ComposeN(count)
					require.NoError(t, err, "count %d", count)
					require.NotEmpty(t, name)

					first, _ := utf8.DecodeRuneInString(name)
					assert.True(t, unicode.IsUpper(first), name)
				}
			}
		})
	}
}

func TestBundled_Script(t *testing.T) {
	for _, d := range dialect.Cyrillic() {
		g, err := dialect.New(d, rand.New(rand.NewSource(1)))
		require.NoError(t, err)
		name, err := g.Compose()
		require.NoError(t, err)

		first, _ := utf8.DecodeRuneInString(name)
		assert.True(t, unicode.Is(unicode.Cyrillic, first), name)
		assert.True(t, unicode.IsUpper(first), name)
	}
}

func TestGetDialect(t *testing.T) {
	d, err := dialect.GetDialect(" Elven ")
	require.NoError(t, err)
	assert.Equal(t, dialect.Elven, d.Name)
	assert.Equal(t, dialect.Latin, d.Script)
	assert.False(t, d.External())

	_, err = dialect.GetDialect("klingon")
	require.ErrorIs(t, err, dialect.ErrUnknownDialect)
}

func TestGroups(t *testing.T) {
	assert.Len(t, dialect.Latin(), 4)
	assert.Len(t, dialect.Cyrillic(), 4)
	assert.Len(t, dialect.All(), 9)
	assert.Contains(t, dialect.Names(), dialect.Curse)

	for _, d := range dialect.Latin() {
		assert.False(t, d.Experimental, d.Name)
	}
}

func TestPick(t *testing.T) {
	_, err := dialect.Pick(nil, constRand(0))
	require.ErrorIs(t, err, dialect.ErrNoDialects)

	_, err = dialect.Pick(dialect.Latin(), nil)
	require.ErrorIs(t, err, generator.ErrNilRand)

	d, err := dialect.Pick(dialect.Latin(), constRand(2))
	require.NoError(t, err)
	assert.Equal(t, dialect.Goblin, d.Name)
}

func TestFlip(t *testing.T) {
	g, err := dialect.Flip(constRand(0))
	require.NoError(t, err)
	assert.Equal(t, dialect.Fantasy, g.Source().Name())

	g, err = dialect.FlipCyrillic(constRand(0))
	require.NoError(t, err)
	assert.Equal(t, dialect.FantasyRU, g.Source().Name())
}

func TestNewByName(t *testing.T) {
	g, err := dialect.NewByName("roman", rand.New(rand.NewSource(7)), generator.WithMaxAttempts(8))
	require.NoError(t, err)
	assert.Equal(t, dialect.Roman, g.Source().Name())

	_, err = dialect.NewByName("", constRand(0))
	require.ErrorIs(t, err, dialect.ErrUnknownDialect)
}

func TestParseScript(t *testing.T) {
	s, err := dialect.ParseScript("")
	require.NoError(t, err)
	assert.Equal(t, dialect.Latin, s)

	s, err = dialect.ParseScript("CYRILLIC")
	require.NoError(t, err)
	assert.Equal(t, dialect.Cyrillic, s)

	_, err = dialect.ParseScript("greek")
	require.ErrorIs(t, err, dialect.ErrUnknownScript)
}

func TestDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orcish.txt"), []byte("-gor\nuk\n+nak\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dwarf-ru.txt"), []byte("-бор\nин\n+дин\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("ignored"), 0o644))

	found, err := dialect.Dir(dir)
	require.NoError(t, err)
	require.Len(t, found, 2)

	assert.Equal(t, "dwarf-ru", found[0].Name)
	assert.Equal(t, dialect.Cyrillic, found[0].Script)
	assert.Equal(t, "orcish", found[1].Name)
	assert.Equal(t, dialect.Latin, found[1].Script)
	assert.True(t, found[1].External())

	g, err := dialect.New(found[1], constRand(0))
	require.NoError(t, err)
	name, err := g.ComposeN(3)
	require.NoError(t, err)
	assert.Equal(t, "Goruknak", name)
}

func TestFromFile_Missing(t *testing.T) {
	d := dialect.FromFile(filepath.Join(t.TempDir(), "void.txt"), dialect.Latin)
	assert.Equal(t, "void", d.Name)

	_, err := dialect.New(d, constRand(0))
	require.Error(t, err)
}
