package attribute_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/actorcore/internal/game/attribute"
)

func TestStatAttribute_Value(t *testing.T) {
	s := attribute.StatAttribute{Base: 10, Modifier: 2.5}
	assert.InDelta(t, 12.5, s.Value(), 1e-6)
}

func TestStatAttribute_SubtractBase_FloorsAtZero(t *testing.T) {
	s := attribute.StatAttribute{Base: 3}
	s.SubtractBase(10)
	assert.Equal(t, float32(0), s.Base)
}

func TestParseStat_RoundTrip(t *testing.T) {
	for s := attribute.Stat(0); s < attribute.StatTotal; s++ {
		got, ok := attribute.ParseStat(s.String())
		assert.True(t, ok, s.String())
		assert.Equal(t, s, got)
	}
	_, ok := attribute.ParseStat("luck")
	assert.False(t, ok)
}

func TestElementalProfile_DefaultsToOne(t *testing.T) {
	p := attribute.NewElementalProfile()
	for e := attribute.Element(0); e < attribute.ElementTotal; e++ {
		assert.Equal(t, float32(1.0), p.Modifier(e), e.String())
	}
}

func TestElementalProfile_InvalidElementReadsNeutral(t *testing.T) {
	p := attribute.NewElementalProfile()
	p[attribute.Neutral] = 0.5
	assert.Equal(t, float32(0.5), p.Modifier(attribute.Element(-1)))
	assert.Equal(t, float32(0.5), p.Modifier(attribute.ElementTotal))
}

func TestProperty_SubtractBase_NeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		base := rapid.Float32Range(0, 1000).Draw(rt, "base")
		amount := rapid.Float32Range(0, 2000).Draw(rt, "amount")
		s := attribute.StatAttribute{Base: base}
		s.SubtractBase(amount)
		if s.Base < 0 {
			rt.Fatalf("base went negative: %v", s.Base)
		}
	})
}
