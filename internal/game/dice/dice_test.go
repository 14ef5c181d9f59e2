package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/actorcore/internal/game/dice"
)

// fixedSource returns canned values so Gaussian and Chance can be checked exactly.
type fixedSource struct {
	uniform float64
	normal  float64
}

func (f fixedSource) Intn(n int) int       { return 0 }
func (f fixedSource) Float64() float64     { return f.uniform }
func (f fixedSource) NormFloat64() float64 { return f.normal }

func TestGaussian_ScalesByStdDev(t *testing.T) {
	src := fixedSource{normal: 1.5}
	assert.Equal(t, int64(115), dice.Gaussian(src, 100, 10))
}

func TestGaussian_FloorsAtZero(t *testing.T) {
	src := fixedSource{normal: -10}
	assert.Equal(t, int64(0), dice.Gaussian(src, 5, 1))
}

func TestGaussian_ZeroStdDevReturnsMean(t *testing.T) {
	src := fixedSource{normal: 3}
	assert.Equal(t, int64(42), dice.Gaussian(src, 42, 0))
}

func TestChance_Bounds(t *testing.T) {
	src := fixedSource{uniform: 0.5}
	assert.False(t, dice.Chance(src, 0))
	assert.True(t, dice.Chance(src, 1))
	assert.True(t, dice.Chance(src, 0.6))
	assert.False(t, dice.Chance(src, 0.5))
}

func TestSeededSource_Deterministic(t *testing.T) {
	a := dice.NewSeededSource(7)
	b := dice.NewSeededSource(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.NormFloat64(), b.NormFloat64())
		assert.Equal(t, a.Intn(100), b.Intn(100))
	}
}

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
}

func TestCryptoSource_Float64_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestLoggedSource_LogsDraws(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	src := dice.NewLoggedSource(dice.NewSeededSource(1), zap.New(core))
	src.Intn(10)
	src.Float64()
	src.NormFloat64()
	assert.Equal(t, 3, logs.FilterMessage("dice draw").Len())
}

func TestProperty_Gaussian_NeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		mean := rapid.Float64Range(0, 10000).Draw(rt, "mean")
		src := dice.NewSeededSource(seed)
		if v := dice.Gaussian(src, mean, mean/10); v < 0 {
			rt.Fatalf("negative draw %d", v)
		}
	})
}
