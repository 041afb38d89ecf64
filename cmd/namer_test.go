package cmd

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"name-pump/internal/dialect"
	"name-pump/internal/generator"
	"name-pump/internal/syllable"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDialect(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestSelectDialects(t *testing.T) {
	all := dialect.All()

	picked, err := selectDialects(all, "Goblin", "", false, false)
	require.NoError(t, err)
	require.Len(t, picked, 1)
	assert.Equal(t, dialect.Goblin, picked[0].Name)

	picked, err = selectDialects(all, "", "", true, false)
	require.NoError(t, err)
	assert.Len(t, picked, 4)
	for _, d := range picked {
		assert.Equal(t, dialect.Latin, d.Script)
	}

	picked, err = selectDialects(all, "", "", true, true)
	require.NoError(t, err)
	assert.Len(t, picked, 4)
	for _, d := range picked {
		assert.Equal(t, dialect.Cyrillic, d.Script)
	}

	_, err = selectDialects(all, "klingon", "", false, false)
	require.ErrorIs(t, err, dialect.ErrUnknownDialect)

	file := writeDialect(t, t.TempDir(), "orcish.txt", "-gor\nuk\n+nak\n")
	picked, err = selectDialects(all, "fantasy", file, true, false)
	require.NoError(t, err)
	require.Len(t, picked, 1)
	assert.Equal(t, "orcish", picked[0].Name)
}

func TestMergeDialects(t *testing.T) {
	replacement := dialect.FromFile("/tmp/fantasy.txt", dialect.Latin)
	merged := mergeDialects(dialect.All(), replacement, dialect.FromFile("/tmp/dwarf.txt", dialect.Latin))

	assert.Len(t, merged, len(dialect.All())+1)
	assert.True(t, merged[0].External())
	assert.Equal(t, "dwarf", merged[len(merged)-1].Name)
}

func TestLoadDialects(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	writeDialect(t, dir, "dwarf.txt", "-thor\nin\n+dur\n")
	extra := writeDialect(t, t.TempDir(), "beast.txt", "-гр\nар\n+ух\n")

	viper.Set("dialect.dir", dir)
	viper.Set("dialects", []map[string]interface{}{
		{"name": "Beast", "path": extra},
	})

	all, err := loadDialects()
	require.NoError(t, err)

	d, err := findDialect(all, "dwarf")
	require.NoError(t, err)
	assert.Equal(t, dialect.Latin, d.Script)

	d, err = findDialect(all, "beast")
	require.NoError(t, err)
	assert.Equal(t, dialect.Cyrillic, d.Script)

	viper.Set("dialects", []map[string]interface{}{{"name": "broken"}})
	_, err = loadDialects()
	require.Error(t, err)
}

func TestNamer_Row(t *testing.T) {
	file := writeDialect(t, t.TempDir(), "orcish.txt", "-gor\nuk\n+nak\n")
	d, err := dialect.Open(file)
	require.NoError(t, err)

	faker := gofakeit.New(11)
	n, err := newNamer(faker.Rand, []dialect.Dialect{d}, 4)
	require.NoError(t, err)
	n.uuid = faker.UUID

	row, err := n.Row()
	require.NoError(t, err)
	assert.Equal(t, "orcish", row.Dialect)
	assert.Equal(t, "Gorukuknak", row.Name)
	assert.Equal(t, 4, row.Syllables)
	assert.Len(t, row.ID, 36)

	c, err := n.Next()
	require.NoError(t, err)
	assert.Equal(t, "Gor·uk·uk·nak", c.Render(splitSeparator))
}

func TestNamer_FlipIsReproducible(t *testing.T) {
	compose := func() []string {
		n, err := newNamer(rand.New(rand.NewSource(99)), dialect.Latin(), 0,
			generator.WithMaxAttempts(16))
		require.NoError(t, err)

		var out []string
		for i := 0; i < 50; i++ {
			c, err := n.Next()
			require.NoError(t, err)
			out = append(out, c.Dialect+":"+c.Render(""))
		}
		return out
	}

	assert.Equal(t, compose(), compose())
}

func TestNewNamer_Invalid(t *testing.T) {
	_, err := newNamer(rand.New(rand.NewSource(1)), nil, 0)
	require.ErrorIs(t, err, dialect.ErrNoDialects)

	_, err = newNamer(rand.New(rand.NewSource(1)), dialect.Latin(), -1)
	require.Error(t, err)
}

func TestGeneratorOptions(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Set("compose.rule", "strict")
	viper.Set("compose.max_attempts", 8)
	opts, err := generatorOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	viper.Set("compose.rule", "loose")
	_, err = generatorOptions()
	require.ErrorIs(t, err, syllable.ErrUnknownRule)
}

func TestGetActiveDBConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	viper.Set("databases", []map[string]interface{}{
		{"name": "local", "driver": "mysql", "dsn": "root:root@tcp(127.0.0.1:3306)/names", "active": false},
		{"name": "pg", "driver": "postgres", "dsn": "postgres://u:p@localhost/names", "active": true},
	})
	config, err := GetActiveDBConfig()
	require.NoError(t, err)
	assert.Equal(t, "pg", config.Name)

	viper.Set("databases", []map[string]interface{}{})
	_, err = GetActiveDBConfig()
	require.Error(t, err)
}
