package yuuprofiler

import "context"

type profileIdContextKey struct{}

var (
	activeProfileIdKey profileIdContextKey
)

// ContextWithProfile returns a context carrying the profile id, so a
// callee can anchor child profiles under the caller's profile without
// threading the id explicitly.
func ContextWithProfile(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, activeProfileIdKey, id)
}

// ProfileIDFromContext returns the profile id carried by ctx, or the
// empty (not-sampled) token when none is present.
func ProfileIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(activeProfileIdKey).(string)
	return id
}
