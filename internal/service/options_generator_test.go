package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionGenerator_ChoiceCount(t *testing.T) {
	tests := []struct {
		name     string
		choices  int
		poolSize int
		want     int
	}{
		{"pool larger than choices", 12, 40, 12},
		{"pool smaller than choices", 12, 7, 7},
		{"pool of one", 12, 1, 1},
		{"zero choices treated as one", 0, 10, 1},
		{"negative choices treated as one", -3, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewOptionGenerator(rand.New(rand.NewSource(1)), tt.choices)
			assert.Equal(t, tt.want, gen.ChoiceCount(tt.poolSize))
		})
	}
}

func TestOptionGenerator_GenerateOptions(t *testing.T) {
	pool := []string{
		"ad", "al", "at", "ba", "be", "bg", "by", "ch", "cy", "cz",
		"de", "dk", "ee", "es", "fi", "fr", "gb", "gr", "hr", "hu",
	}
	gen := NewOptionGenerator(rand.New(rand.NewSource(3)), DefaultChoices)

	for _, correct := range pool {
		options := gen.GenerateOptions(correct, pool)

		require.Len(t, options, DefaultChoices)
		assert.Contains(t, options, correct)

		seen := make(map[string]int)
		for _, code := range options {
			seen[code]++
			assert.Contains(t, pool, code)
		}
		assert.Len(t, seen, len(options), "options must be unique")
		assert.Equal(t, 1, seen[correct])
	}
}

func TestOptionGenerator_SmallPoolUsesWholePool(t *testing.T) {
	gen := NewOptionGenerator(rand.New(rand.NewSource(5)), DefaultChoices)

	options := gen.GenerateOptions("cu", []string{"cu", "jp"})

	assert.ElementsMatch(t, []string{"cu", "jp"}, options)
}

func TestOptionGenerator_SingleChoice(t *testing.T) {
	gen := NewOptionGenerator(rand.New(rand.NewSource(5)), 1)

	options := gen.GenerateOptions("de", []string{"ch", "de", "ru"})

	assert.Equal(t, []string{"de"}, options)
}
