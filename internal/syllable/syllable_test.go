package syllable_test

import (
	"testing"

	"name-pump/internal/syllable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Roles(t *testing.T) {
	tests := []struct {
		line string
		text string
		role syllable.Role
	}{
		{"-ael", "ael", syllable.Prefix},
		{"+dor", "dor", syllable.Suffix},
		{"tar", "tar", syllable.Middle},
		{"  -Mor +v  \n", "Mor", syllable.Prefix},
		{"-McK", "McK", syllable.Prefix},
		{"-+ion", "ion", syllable.Prefix},
		{"+ов -c", "ов", syllable.Suffix},
		{"Ра", "Ра", syllable.Middle},
		{"d'ar", "d'ar", syllable.Middle},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			s, err := syllable.Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.text, s.Text())
			assert.Equal(t, tt.role, s.Role())

			roles := 0
			for _, ok := range []bool{s.IsPrefix(), s.IsSuffix(), s.IsMiddle()} {
				if ok {
					roles++
				}
			}
			assert.Equal(t, 1, roles, "exactly one role must hold")
		})
	}
}

func TestParse_Rules(t *testing.T) {
	s, err := syllable.Parse("-ab +v -c")
	require.NoError(t, err)
	assert.Equal(t, syllable.Vowel, s.NextRequirement())
	assert.Equal(t, syllable.Consonant, s.PreviousRequirement())
	assert.Equal(t, "-ab +v -c", s.Raw())

	s, err = syllable.Parse("ka")
	require.NoError(t, err)
	assert.Equal(t, syllable.Any, s.NextRequirement())
	assert.Equal(t, syllable.Any, s.PreviousRequirement())
}

func TestParse_Errors(t *testing.T) {
	_, err := syllable.Parse("   ")
	require.ErrorIs(t, err, syllable.ErrEmptyLine)

	for _, line := range []string{"-", "+", "ka +x", "ka +v +c", "ka -v -c", "k4", "-- ka", "-'ka", "'an", "+'dor"} {
		t.Run(line, func(t *testing.T) {
			_, err := syllable.Parse(line)
			require.ErrorIs(t, err, syllable.ErrMalformed)

			var perr *syllable.ParseError
			require.ErrorAs(t, err, &perr)
			assert.NotEmpty(t, perr.Reason)
		})
	}
}

func TestParse_RepeatedRuleIsAllowed(t *testing.T) {
	s, err := syllable.Parse("ka +v +v")
	require.NoError(t, err)
	assert.Equal(t, syllable.Vowel, s.NextRequirement())
}

func TestLetterClasses(t *testing.T) {
	s := syllable.MustParse("ael")
	assert.True(t, s.StartsWithVowel())
	assert.False(t, s.StartsWithConsonant())
	assert.True(t, s.EndsWithConsonant())
	assert.False(t, s.EndsWithVowel())

	assert.True(t, syllable.MustParse("éo").StartsWithVowel())
	assert.True(t, syllable.MustParse("ёж").StartsWithVowel())
	assert.True(t, syllable.MustParse("най").EndsWithConsonant())
	assert.True(t, syllable.MustParse("ya").StartsWithVowel())
	assert.True(t, syllable.MustParse("An").StartsWithVowel())
	assert.True(t, syllable.MustParse("McK").EndsWithConsonant())
	assert.True(t, syllable.MustParse("ОЙ").EndsWithConsonant())
	assert.True(t, syllable.MustParse("d'a").StartsWithConsonant())
}

func TestCompatible_NextRequirement(t *testing.T) {
	needsVowel := syllable.MustParse("-b +v")
	needsConsonant := syllable.MustParse("-a +c")
	an := syllable.MustParse("an")
	tar := syllable.MustParse("tar")

	assert.True(t, needsVowel.Compatible(an))
	assert.False(t, needsVowel.Compatible(tar))
	assert.True(t, needsConsonant.Compatible(tar))
	assert.False(t, needsConsonant.Compatible(an))
}

func TestCompatible_PreviousRequirement(t *testing.T) {
	afterVowel := syllable.MustParse("+ria -v")
	afterConsonant := syllable.MustParse("+ion -c")
	mora := syllable.MustParse("-mora")
	mor := syllable.MustParse("-mor")

	assert.True(t, mora.Compatible(afterVowel))
	assert.False(t, mor.Compatible(afterVowel))
	assert.True(t, mor.Compatible(afterConsonant))
	assert.False(t, mora.Compatible(afterConsonant))
	assert.Equal(t, !mora.Compatible(afterConsonant), mora.Incompatible(afterConsonant))
}

func TestCompatible_IsStable(t *testing.T) {
	a := syllable.MustParse("-el +c")
	b := syllable.MustParse("an")
	first := a.Compatible(b)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, a.Compatible(b))
	}
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "prefix", syllable.Prefix.String())
	assert.Equal(t, "middle", syllable.Middle.String())
	assert.Equal(t, "suffix", syllable.Suffix.String())
}
