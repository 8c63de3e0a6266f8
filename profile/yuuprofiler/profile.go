package yuuprofiler

import (
	"time"

	"github.com/Yuzu02/YuuLogger/profile/yuuprofiler/res_snapshot"
)

// Profile is one hierarchical timed operation. Duration, EndTime and
// ResourceDiff are filled when the profile is stopped (or force-closed
// by its parent's stop). Children are appended in start order and keep
// that order regardless of completion order.
//
// Metadata of a still-active profile may be mutated through
// ActiveProfiles; reports read it only after stop.
type Profile struct {
	ID            string
	OperationName string
	Context       string
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	Metadata      map[string]interface{}
	ResourceDiff  *res_snapshot.Delta
	Children      []*Profile

	openingSnapshot res_snapshot.Snapshot
}

// Finished reports whether the profile has been stopped, directly or by
// its parent's force-close.
func (p *Profile) Finished() bool {
	return !p.EndTime.IsZero()
}
