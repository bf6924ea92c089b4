package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

func TestSeededRandomIsReproducible(t *testing.T) {
	a := NewSeededRandom(7)
	b := NewSeededRandom(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestChance(t *testing.T) {
	assert.True(t, Chance(fixedRandom(0.29), 0.3))
	assert.False(t, Chance(fixedRandom(0.3), 0.3))
	assert.False(t, Chance(fixedRandom(0), 0))
}

func TestRandomRange(t *testing.T) {
	assert.Equal(t, 10.0, RandomRange(fixedRandom(0), 10, 20))
	assert.Equal(t, 15.0, RandomRange(fixedRandom(0.5), 10, 20))
	assert.Equal(t, 10.0, RandomRange(fixedRandom(0.5), 10, 10))
}
