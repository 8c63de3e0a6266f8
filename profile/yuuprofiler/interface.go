package yuuprofiler

import (
	"github.com/Yuzu02/YuuLogger/profile/measure"
	"github.com/Yuzu02/YuuLogger/profile/yuuprofiler/logger"
	"github.com/Yuzu02/YuuLogger/profile/yuuprofiler/profile_sampler"
)

type StartProfileConfig struct {
	Context  string
	Metadata map[string]interface{}
}

type StartProfileOption func(*StartProfileConfig)

// ContextAs labels the profile with a caller context, e.g. the service
// or module name the operation ran in.
func ContextAs(context string) StartProfileOption {
	return func(config *StartProfileConfig) {
		config.Context = context
	}
}

func WithMetadata(metadata map[string]interface{}) StartProfileOption {
	return func(config *StartProfileConfig) {
		config.Metadata = metadata
	}
}

type ProfilerConfig struct {
	Sampling profile_sampler.Config

	// Sampler, when set, is used instead of building one from Sampling.
	// Share one instance between the profiler and a log sink to keep a
	// single process-wide gate.
	Sampler *profile_sampler.Sampler

	Logger logger.Logger

	// Store receives the duration of every directly stopped profile for
	// aggregate statistics. Optional.
	Store *measure.Store
}

type ProfilerOption func(*ProfilerConfig)

func WithLogger(l logger.Logger) ProfilerOption {
	return func(config *ProfilerConfig) {
		config.Logger = l
	}
}

func WithSampling(sampling profile_sampler.Config) ProfilerOption {
	return func(config *ProfilerConfig) {
		config.Sampling = sampling
	}
}

func WithSampler(sampler *profile_sampler.Sampler) ProfilerOption {
	return func(config *ProfilerConfig) {
		config.Sampler = sampler
	}
}

func WithMeasurementStore(store *measure.Store) ProfilerOption {
	return func(config *ProfilerConfig) {
		config.Store = store
	}
}

// Profiler is the hierarchical profile registry. Profiles are
// id-addressed rather than name-addressed: concurrent profiles of the
// same operation name and arbitrarily deep nesting must stay
// individually closeable, and ids are the only namespace that allows
// both.
type Profiler interface {
	// StartProfile opens a top-level profile and returns its id. The
	// empty string means the profile-class sampling gate rejected the
	// call; it is an inert token that StopProfile silently ignores, so
	// callers pass it through unconditionally.
	StartProfile(operationName string, opts ...StartProfileOption) string

	// StartChildProfile opens a profile attached under parentId,
	// inheriting the parent's context. Children bypass sampling and
	// always get a concrete id; an unknown parent degrades to a fresh
	// top-level profile instead of failing.
	StartChildProfile(parentId string, operationName string, opts ...StartProfileOption) string

	// StopProfile finishes the profile, computing duration and resource
	// usage delta, and force-closes any descendants still open. Nil for
	// the empty token or an unknown id.
	StopProfile(id string) *Profile

	// ActiveProfiles returns a copy of the active table. Mutating the
	// returned map does not affect the registry. Mutating an entry's
	// Metadata does, and is the supported way for an interceptor to
	// enrich a profile before stopping it.
	ActiveProfiles() map[string]*Profile

	// SetSamplingConfig replaces the sampling configuration in full,
	// effective on the next admission check.
	SetSamplingConfig(config profile_sampler.Config)
	SamplingConfig() profile_sampler.Config
}
