package measure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStop_IsLIFO(t *testing.T) {
	s := NewStore()

	s.Start("X", nil)
	time.Sleep(time.Millisecond)
	s.Start("X", nil)

	second := s.Stop("X")
	first := s.Stop("X")
	require.NotNil(t, second)
	require.NotNil(t, first)
	assert.True(t, second.StartTime.After(first.StartTime), "stop must pop the most recently started measurement")
	assert.True(t, second.Finished)
	assert.True(t, first.Finished)

	assert.Nil(t, s.Stop("X"))
}

func TestStop_UnknownNameIsAbsent(t *testing.T) {
	s := NewStore()
	assert.Nil(t, s.Stop("never-started"))
}

func TestStats_Aggregation(t *testing.T) {
	s := NewStore()
	base := time.Now()
	for _, d := range []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 30 * time.Millisecond} {
		s.Observe("Q", base, base.Add(d))
	}

	stats := s.Stats("Q")
	require.NotNil(t, stats)
	assert.Equal(t, "Q", stats.OperationName)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 60*time.Millisecond, stats.TotalDuration)
	assert.Equal(t, 20*time.Millisecond, stats.AverageDuration)
	assert.Equal(t, 10*time.Millisecond, stats.MinDuration)
	assert.Equal(t, 30*time.Millisecond, stats.MaxDuration)
	assert.Equal(t, 30*time.Millisecond, stats.LastDuration)
}

func TestStats_NothingFinishedYet(t *testing.T) {
	s := NewStore()
	s.Start("pending", nil)

	stats := s.Stats("pending")
	require.NotNil(t, stats)
	assert.Equal(t, 0, stats.Count)
	assert.NotEmpty(t, stats.Message)
}

func TestStats_NoHistoryIsAbsent(t *testing.T) {
	s := NewStore()
	assert.Nil(t, s.Stats("never-started"))
}

func TestClear_ByNameAndAll(t *testing.T) {
	s := NewStore()
	s.Start("Q", nil)
	s.Stop("Q")
	s.Start("R", nil)
	s.Stop("R")

	require.NotNil(t, s.Stats("Q"))
	s.Clear("Q")
	assert.Nil(t, s.Stats("Q"))
	assert.NotNil(t, s.Stats("R"))

	s.ClearAll()
	assert.Nil(t, s.Stats("R"))
}

func TestStart_CapturesSnapshotAndMetadata(t *testing.T) {
	s := NewStore()
	handle := s.Start("X", map[string]interface{}{"attempt": 1})
	assert.Equal(t, "X", handle)

	m := s.Stop("X")
	require.NotNil(t, m)
	assert.Equal(t, 1, m.Metadata["attempt"])
	assert.False(t, m.StartSnapshot().Time.IsZero())
	assert.GreaterOrEqual(t, m.Duration, time.Duration(0))
}

func TestAggregate_EmptyHistory(t *testing.T) {
	assert.Nil(t, Aggregate("none", nil))
}
