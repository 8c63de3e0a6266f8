package res_snapshot

import (
	"runtime"
	"time"
)

// MemoryUsage is a process memory breakdown in bytes. Inside a Delta
// the fields are signed differences; a negative value means usage went
// down between the two snapshots (e.g. a GC cycle ran) and is valid.
type MemoryUsage struct {
	Resident  int64
	HeapTotal int64
	HeapUsed  int64
	External  int64
}

// CPUUsage is accumulated process CPU time in microseconds.
type CPUUsage struct {
	UserTime   int64
	SystemTime int64
}

// Snapshot is a point-in-time reading of wall clock, memory and CPU
// usage. Immutable once captured.
type Snapshot struct {
	Time   time.Time
	Memory MemoryUsage
	CPU    CPUUsage
}

// Delta is the field-wise difference between two snapshots.
type Delta struct {
	Duration time.Duration
	Memory   MemoryUsage
	CPU      CPUUsage
}

// Capture reads the current clock, memory and CPU usage of the process.
// It never fails: any field the platform cannot report is left zero.
func Capture() Snapshot {
	ms := runtime.MemStats{}
	runtime.ReadMemStats(&ms)

	s := Snapshot{
		Time: time.Now(),
		Memory: MemoryUsage{
			Resident:  readRss(),
			HeapTotal: int64(ms.HeapSys),
			HeapUsed:  int64(ms.HeapAlloc),
			External:  int64(ms.Sys - ms.HeapSys),
		},
	}
	s.CPU.UserTime, s.CPU.SystemTime = readCPUTimes()
	return s
}

// Diff subtracts start from end field-wise.
func Diff(end, start Snapshot) Delta {
	return Delta{
		Duration: end.Time.Sub(start.Time),
		Memory: MemoryUsage{
			Resident:  end.Memory.Resident - start.Memory.Resident,
			HeapTotal: end.Memory.HeapTotal - start.Memory.HeapTotal,
			HeapUsed:  end.Memory.HeapUsed - start.Memory.HeapUsed,
			External:  end.Memory.External - start.Memory.External,
		},
		CPU: CPUUsage{
			UserTime:   end.CPU.UserTime - start.CPU.UserTime,
			SystemTime: end.CPU.SystemTime - start.CPU.SystemTime,
		},
	}
}
