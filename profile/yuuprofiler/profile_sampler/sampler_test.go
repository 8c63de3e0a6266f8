package profile_sampler

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldSample_Threshold(t *testing.T) {
	s := New(Config{GeneralRate: 0.5, ProfileRate: 0.3})

	s.randFloat = func() float64 { return 0.29 }
	assert.True(t, s.ShouldSample(KindProfile))
	assert.True(t, s.ShouldSample(KindGeneral))

	// admission is strict less-than
	s.randFloat = func() float64 { return 0.3 }
	assert.False(t, s.ShouldSample(KindProfile))
	assert.True(t, s.ShouldSample(KindGeneral))

	s.randFloat = func() float64 { return 0.5 }
	assert.False(t, s.ShouldSample(KindGeneral))
}

func TestShouldSample_RateOneNeverDraws(t *testing.T) {
	s := New(Config{GeneralRate: 1, ProfileRate: 1})
	s.randFloat = func() float64 {
		t.Fatal("rate 1 must not draw")
		return 0
	}
	assert.True(t, s.ShouldSample(KindGeneral))
	assert.True(t, s.ShouldSample(KindProfile))
}

func TestShouldSampleError_Override(t *testing.T) {
	s := New(Config{GeneralRate: 0, ProfileRate: 0, AlwaysLogErrors: true})
	assert.True(t, s.ShouldSampleError())
	assert.False(t, s.ShouldSample(KindGeneral))

	s.RefreshConfig(Config{GeneralRate: 0, ProfileRate: 0, AlwaysLogErrors: false})
	s.randFloat = func() float64 { return 0.99 }
	assert.False(t, s.ShouldSampleError())
}

func TestRefreshConfig_TakesEffectImmediately(t *testing.T) {
	s := New(Config{})
	s.randFloat = func() float64 { return 0.99 }
	assert.False(t, s.ShouldSample(KindProfile))

	s.RefreshConfig(Config{ProfileRate: 1})
	assert.True(t, s.ShouldSample(KindProfile))
	assert.Equal(t, Config{ProfileRate: 1}, s.Config())
}

func TestRefreshConfig_InvalidRatePanics(t *testing.T) {
	assert.Panics(t, func() { New(Config{GeneralRate: 1.5}) })
	assert.Panics(t, func() { New(Config{ProfileRate: -0.1}) })
	assert.Panics(t, func() { New(Config{GeneralRate: math.NaN()}) })
}
