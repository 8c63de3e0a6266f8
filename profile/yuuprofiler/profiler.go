package yuuprofiler

import (
	"sync"
	"time"

	"github.com/Yuzu02/YuuLogger/profile/measure"
	"github.com/Yuzu02/YuuLogger/profile/yuuprofiler/id_generator"
	"github.com/Yuzu02/YuuLogger/profile/yuuprofiler/logger"
	"github.com/Yuzu02/YuuLogger/profile/yuuprofiler/profile_sampler"
	"github.com/Yuzu02/YuuLogger/profile/yuuprofiler/res_snapshot"
)

var (
	_ Profiler = &profiler{}
)

type profiler struct {
	logger logger.Logger

	idGenerator *id_generator.IdGenerator
	sampler     *profile_sampler.Sampler
	store       *measure.Store

	lock   sync.Mutex
	active map[string]*Profile
}

func newDefaultProfilerConfig() ProfilerConfig {
	return ProfilerConfig{
		Sampling: profile_sampler.Config{
			GeneralRate:     1,
			ProfileRate:     1,
			AlwaysLogErrors: true,
		},
		Logger: &logger.NoopLogger{},
	}
}

func NewProfiler(opts ...ProfilerOption) Profiler {
	config := newDefaultProfilerConfig()
	for _, opt := range opts {
		opt(&config)
	}
	sampler := config.Sampler
	if sampler == nil {
		sampler = profile_sampler.New(config.Sampling)
	}
	return &profiler{
		logger:      config.Logger,
		idGenerator: id_generator.New(),
		sampler:     sampler,
		store:       config.Store,
		active:      map[string]*Profile{},
	}
}

func (p *profiler) StartProfile(operationName string, opts ...StartProfileOption) string {
	// rejected calls allocate nothing; the empty id is the inert token
	if !p.sampler.ShouldSample(profile_sampler.KindProfile) {
		return ""
	}
	prof := p.newProfile(operationName, opts)
	p.lock.Lock()
	p.active[prof.ID] = prof
	p.lock.Unlock()
	return prof.ID
}

func (p *profiler) StartChildProfile(parentId string, operationName string, opts ...StartProfileOption) string {
	prof := p.newProfile(operationName, opts)

	p.lock.Lock()
	parent := p.active[parentId]
	if parent != nil {
		if prof.Context == "" {
			prof.Context = parent.Context
		}
		parent.Children = append(parent.Children, prof)
	}
	p.active[prof.ID] = prof
	p.lock.Unlock()

	if parent == nil {
		p.logger.Warn("[profiler] no active parent profile %q, starting %q as top-level", parentId, operationName)
	}
	return prof.ID
}

func (p *profiler) newProfile(operationName string, opts []StartProfileOption) *Profile {
	config := StartProfileConfig{}
	for _, opt := range opts {
		opt(&config)
	}
	if config.Metadata == nil {
		// interceptors enrich metadata in place, so it must be mutable
		config.Metadata = map[string]interface{}{}
	}
	return &Profile{
		ID:              p.idGenerator.GenId(),
		OperationName:   operationName,
		Context:         config.Context,
		StartTime:       time.Now(),
		Metadata:        config.Metadata,
		openingSnapshot: res_snapshot.Capture(),
	}
}

func (p *profiler) StopProfile(id string) *Profile {
	if id == "" {
		return nil
	}
	end := time.Now()
	endSnapshot := res_snapshot.Capture()

	p.lock.Lock()
	prof, ok := p.active[id]
	if !ok {
		p.lock.Unlock()
		p.logger.Warn("[profiler] no active profile found for id %q", id)
		return nil
	}
	delete(p.active, id)
	prof.EndTime = end
	prof.Duration = end.Sub(prof.StartTime)
	diff := res_snapshot.Diff(endSnapshot, prof.openingSnapshot)
	prof.ResourceDiff = &diff
	p.forceClose(prof, end, endSnapshot)
	p.lock.Unlock()

	if p.store != nil {
		p.store.Observe(prof.OperationName, prof.StartTime, prof.EndTime)
	}
	return prof
}

// forceClose finishes any descendants still open, reusing the stopping
// parent's end time and the snapshot captured at stop, so no child is
// left dangling in the active table once its parent is reported. Caller
// holds p.lock.
func (p *profiler) forceClose(prof *Profile, end time.Time, snapshot res_snapshot.Snapshot) {
	for _, child := range prof.Children {
		if _, open := p.active[child.ID]; !open {
			continue
		}
		delete(p.active, child.ID)
		child.EndTime = end
		child.Duration = end.Sub(child.StartTime)
		diff := res_snapshot.Diff(snapshot, child.openingSnapshot)
		child.ResourceDiff = &diff
		p.forceClose(child, end, snapshot)
	}
}

func (p *profiler) ActiveProfiles() map[string]*Profile {
	p.lock.Lock()
	defer p.lock.Unlock()
	snapshot := make(map[string]*Profile, len(p.active))
	for id, prof := range p.active {
		snapshot[id] = prof
	}
	return snapshot
}

func (p *profiler) SetSamplingConfig(config profile_sampler.Config) {
	p.sampler.RefreshConfig(config)
}

func (p *profiler) SamplingConfig() profile_sampler.Config {
	return p.sampler.Config()
}
