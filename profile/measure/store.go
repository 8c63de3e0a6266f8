package measure

import (
	"sync"
	"time"

	"github.com/Yuzu02/YuuLogger/profile/yuuprofiler/logger"
	"github.com/Yuzu02/YuuLogger/profile/yuuprofiler/res_snapshot"
)

// Measurement is one flat timed operation. Created by Start, finished
// once by Stop; finished measurements stay in the per-name history list
// until the store is cleared.
type Measurement struct {
	OperationName string
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	Finished      bool
	Metadata      map[string]interface{}

	startSnapshot res_snapshot.Snapshot
}

// StartSnapshot returns the resource snapshot captured when the
// measurement was started.
func (m *Measurement) StartSnapshot() res_snapshot.Snapshot {
	return m.startSnapshot
}

// Store is the flat, name-keyed timer. Unlike the profile registry it
// is not hierarchical: the same name may be started while already open,
// and Stop resolves LIFO, so reentrant timings must be strictly nested.
type Store struct {
	lock    sync.Mutex
	history map[string][]*Measurement

	logger logger.Logger
}

type StoreOption func(*Store)

func WithLogger(l logger.Logger) StoreOption {
	return func(s *Store) {
		s.logger = l
	}
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		history: map[string][]*Measurement{},
		logger:  &logger.NoopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start opens a measurement and returns the handle a later Stop
// expects. The handle is the operation name itself: Stop resolves by
// name, not by identity.
func (s *Store) Start(operationName string, metadata map[string]interface{}) string {
	m := &Measurement{
		OperationName: operationName,
		StartTime:     time.Now(),
		Metadata:      metadata,
		startSnapshot: res_snapshot.Capture(),
	}
	s.lock.Lock()
	s.history[operationName] = append(s.history[operationName], m)
	s.lock.Unlock()
	return operationName
}

// Stop finishes the most recently started open measurement under the
// name and returns it. Nil when nothing is open under that name; that
// is a reportable condition (warned here), not a fault.
func (s *Store) Stop(operationName string) *Measurement {
	now := time.Now()
	s.lock.Lock()
	hist := s.history[operationName]
	for i := len(hist) - 1; i >= 0; i-- {
		if m := hist[i]; !m.Finished {
			m.EndTime = now
			m.Duration = now.Sub(m.StartTime)
			m.Finished = true
			s.lock.Unlock()
			return m
		}
	}
	s.lock.Unlock()
	s.logger.Warn("[measure] no open measurement named %q", operationName)
	return nil
}

// Observe appends an already finished measurement. The profile registry
// uses this to feed profile durations into the same statistics pool.
func (s *Store) Observe(operationName string, start, end time.Time) {
	m := &Measurement{
		OperationName: operationName,
		StartTime:     start,
		EndTime:       end,
		Duration:      end.Sub(start),
		Finished:      true,
	}
	s.lock.Lock()
	s.history[operationName] = append(s.history[operationName], m)
	s.lock.Unlock()
}

// Stats aggregates the history of one operation name. Nil when the name
// has no history at all.
func (s *Store) Stats(operationName string) *OperationStats {
	s.lock.Lock()
	hist := append([]*Measurement(nil), s.history[operationName]...)
	s.lock.Unlock()
	return Aggregate(operationName, hist)
}

// Clear drops the history of one operation name.
func (s *Store) Clear(operationName string) {
	s.lock.Lock()
	delete(s.history, operationName)
	s.lock.Unlock()
}

// ClearAll drops every history.
func (s *Store) ClearAll() {
	s.lock.Lock()
	s.history = map[string][]*Measurement{}
	s.lock.Unlock()
}
