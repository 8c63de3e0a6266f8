package profile_sampler

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
)

// Kind selects which configured rate an admission check draws against.
type Kind int

const (
	KindGeneral Kind = iota
	KindProfile
)

// Config is the process-wide sampling configuration. Rates are
// admission probabilities in [0,1]. The configuration is replaced as a
// whole via RefreshConfig, never merged; callers merge before calling.
type Config struct {
	GeneralRate     float64
	ProfileRate     float64
	AlwaysLogErrors bool
}

// Sampler is the probabilistic admission gate in front of profiling and
// structured-log recording. The configuration is read fresh on every
// check, so RefreshConfig takes effect immediately.
type Sampler struct {
	rwlock sync.RWMutex
	config Config

	randFloat func() float64 // uniform draw in [0,1), swapped out in tests
}

func New(config Config) *Sampler {
	s := &Sampler{randFloat: rand.Float64}
	s.RefreshConfig(config)
	return s
}

// RefreshConfig replaces the configuration in full. A rate outside
// [0,1] is a caller contract violation and panics here, at the call
// that received the bad input.
func (s *Sampler) RefreshConfig(config Config) {
	validateRate("GeneralRate", config.GeneralRate)
	validateRate("ProfileRate", config.ProfileRate)
	s.rwlock.Lock()
	s.config = config
	s.rwlock.Unlock()
}

func (s *Sampler) Config() Config {
	s.rwlock.RLock()
	defer s.rwlock.RUnlock()
	return s.config
}

// ShouldSample reports whether an event of the given kind is admitted.
// A rate of 1 admits without a random draw.
func (s *Sampler) ShouldSample(kind Kind) bool {
	s.rwlock.RLock()
	rate := s.config.GeneralRate
	if kind == KindProfile {
		rate = s.config.ProfileRate
	}
	draw := s.randFloat
	s.rwlock.RUnlock()

	if rate >= 1 {
		return true
	}
	return draw() < rate
}

// ShouldSampleError gates error-class events. With AlwaysLogErrors set
// they bypass the configured rate entirely; otherwise they draw against
// the general rate like any other event.
func (s *Sampler) ShouldSampleError() bool {
	s.rwlock.RLock()
	always := s.config.AlwaysLogErrors
	s.rwlock.RUnlock()
	if always {
		return true
	}
	return s.ShouldSample(KindGeneral)
}

func validateRate(name string, rate float64) {
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		panic(fmt.Sprintf("profile_sampler: %s must be within [0,1], got %v", name, rate))
	}
}
