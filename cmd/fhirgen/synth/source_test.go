package synth

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeededSourcesAgree(t *testing.T) {
	a := NewSeededSource(42)
	b := NewSeededSource(42)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Gauss(100, 15), b.Gauss(100, 15))
		assert.Equal(t, a.IntBetween(1, 72), b.IntBetween(1, 72))
		assert.Equal(t, a.Faker.FirstName(), b.Faker.FirstName())
	}
}

func TestSeededSourcesDivergeAcrossSeeds(t *testing.T) {
	a := NewSeededSource(1)
	b := NewSeededSource(2)

	var same int
	for i := 0; i < 20; i++ {
		if a.IntBetween(0, 1_000_000) == b.IntBetween(0, 1_000_000) {
			same++
		}
	}
	assert.Less(t, same, 20)
}

func TestSeededClockIsPinned(t *testing.T) {
	src := NewSeededSource(7)
	assert.True(t, src.Seeded())
	assert.Equal(t, NewSeededSource(99).Now(), src.Now())
	assert.NotEqual(t, time.Time{}, src.Now())
}

func TestPastTimeStaysInWindow(t *testing.T) {
	src := NewSeededSource(3)
	window := 48 * time.Hour
	for i := 0; i < 100; i++ {
		got := src.PastTime(window)
		assert.False(t, got.After(src.Now()))
		assert.False(t, got.Before(src.Now().Add(-window)))
	}
}

func TestGaussRound(t *testing.T) {
	src := NewSeededSource(11)
	v := src.GaussRound(98.6, 0.7, 1)
	assert.InDelta(t, v, 98.6, 10)
	assert.Equal(t, math.Round(v*10)/10, v)
}
