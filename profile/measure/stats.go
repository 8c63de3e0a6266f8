package measure

import "time"

// OperationStats are aggregate duration statistics over the finished
// measurements of one operation name, accumulated in history (append)
// order.
type OperationStats struct {
	OperationName   string
	Count           int
	TotalDuration   time.Duration
	AverageDuration time.Duration
	MinDuration     time.Duration
	MaxDuration     time.Duration
	LastDuration    time.Duration

	// Message explains a degenerate result, e.g. a history where
	// nothing has finished yet.
	Message string
}

// Aggregate computes statistics over a measurement history. Nil for an
// empty history. A history with entries but nothing finished yields
// Count 0 and an explanatory Message rather than an error.
func Aggregate(operationName string, history []*Measurement) *OperationStats {
	if len(history) == 0 {
		return nil
	}
	stats := &OperationStats{OperationName: operationName}
	for _, m := range history {
		if m == nil || !m.Finished {
			continue
		}
		if stats.Count == 0 || m.Duration < stats.MinDuration {
			stats.MinDuration = m.Duration
		}
		if m.Duration > stats.MaxDuration {
			stats.MaxDuration = m.Duration
		}
		stats.Count++
		stats.TotalDuration += m.Duration
		stats.LastDuration = m.Duration
	}
	if stats.Count == 0 {
		stats.Message = "no finished measurements"
		return stats
	}
	stats.AverageDuration = stats.TotalDuration / time.Duration(stats.Count)
	return stats
}
