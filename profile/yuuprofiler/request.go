package yuuprofiler

import (
	"strings"

	"github.com/google/uuid"
)

// Metadata keys under which a request record lands in profile metadata.
const (
	HttpMethod        = "http.method"
	HttpPath          = "http.path"
	HttpHeaders       = "http.headers"
	HttpCorrelationId = "http.correlation_id"
)

// RequestInfo is the uniform request record a transport adapter passes
// into the core. Adapters reduce whatever framework request shape they
// hold to this; the core never branches on framework identity.
type RequestInfo struct {
	Method        string
	Path          string
	Headers       map[string]string
	CorrelationID string
}

// Metadata renders the record as profile metadata.
func (r RequestInfo) Metadata() map[string]interface{} {
	md := map[string]interface{}{
		HttpMethod: r.Method,
		HttpPath:   r.Path,
	}
	if len(r.Headers) != 0 {
		headers := make(map[string]interface{}, len(r.Headers))
		for k, v := range r.Headers {
			headers[k] = v
		}
		md[HttpHeaders] = headers
	}
	if r.CorrelationID != "" {
		md[HttpCorrelationId] = r.CorrelationID
	}
	return md
}

// NewCorrelationID returns a fresh id for correlating a request's log
// records and profiles.
func NewCorrelationID() string {
	randUUID, _ := uuid.NewRandom()
	return strings.Replace(randUUID.String(), "-", "", -1)
}
