package generator_test

import (
	"math"
	"math/rand"
	"testing"

	"name-pump/internal/generator"

	"github.com/stretchr/testify/assert"
)

func TestSyllableCounts_Table(t *testing.T) {
	table := generator.SyllableCounts()
	assert.Len(t, table, 18)

	freq := map[int]int{}
	for _, c := range table {
		freq[c]++
	}
	assert.Equal(t, map[int]int{2: 4, 3: 10, 4: 3, 5: 1}, freq)

	table[0] = 99
	assert.Equal(t, 2, generator.SyllableCounts()[0], "table must be returned as a copy")
}

func TestPickSyllableCount_EveryIndex(t *testing.T) {
	freq := map[int]int{}
	for i := 0; i < 18; i++ {
		freq[generator.PickSyllableCount(constRand(i))]++
	}
	assert.Equal(t, map[int]int{2: 4, 3: 10, 4: 3, 5: 1}, freq)
}

func TestPickSyllableCount_Distribution(t *testing.T) {
	const trials = 180000
	rnd := rand.New(rand.NewSource(2024))

	freq := map[int]int{}
	for i := 0; i < trials; i++ {
		c := generator.PickSyllableCount(rnd)
		if c < 2 || c > 5 {
			t.Fatalf("count %d out of range", c)
		}
		freq[c]++
	}

	want := map[int]float64{2: 4.0 / 18, 3: 10.0 / 18, 4: 3.0 / 18, 5: 1.0 / 18}
	for c, p := range want {
		got := float64(freq[c]) / trials
		// Five standard deviations of a binomial proportion.
		tol := 5 * math.Sqrt(p*(1-p)/trials)
		assert.InDelta(t, p, got, tol, "count %d", c)
	}
}
