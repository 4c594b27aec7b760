package tracing

// Context identifies a request across log lines: the id travels in
// X-Request-Id (generated when absent) and the source names the
// calling surface.
type Context struct {
	RequestID     string
	RequestSource string
}
