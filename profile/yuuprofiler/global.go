package yuuprofiler

type registeredProfiler struct {
	profiler     Profiler
	isRegistered bool
}

var (
	globalProfiler registeredProfiler
)

// SetGlobalProfiler installs a process-wide profiler for the
// package-level convenience funcs. Construction stays explicit via
// NewProfiler; the global is ergonomics only.
func SetGlobalProfiler(p Profiler) {
	globalProfiler = registeredProfiler{p, true}
}

func GlobalProfiler() Profiler {
	return globalProfiler.profiler
}

func IsGlobalProfilerRegistered() bool {
	return globalProfiler.isRegistered
}

func StartProfile(operationName string, opts ...StartProfileOption) string {
	return globalProfiler.profiler.StartProfile(operationName, opts...)
}

func StartChildProfile(parentId string, operationName string, opts ...StartProfileOption) string {
	return globalProfiler.profiler.StartChildProfile(parentId, operationName, opts...)
}

func StopProfile(id string) *Profile {
	return globalProfiler.profiler.StopProfile(id)
}

func ActiveProfiles() map[string]*Profile {
	return globalProfiler.profiler.ActiveProfiles()
}
