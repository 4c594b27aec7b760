package values

// Response statuses.
const (
	Success        = "success"
	Created        = "created"
	Error          = "error"
	BadRequestBody = "bad-request-body"
	Unprocessable  = "unprocessable"
	NotFound       = "not-found"
	Conflict       = "conflict"
	NotAllowed     = "not-allowed"
)

// Request headers.
const (
	HeaderRequestID     = "X-Request-Id"
	HeaderRequestSource = "X-Request-Source"
)

type contextKey string

// ContextTracingKey carries the tracing context through a request.
const ContextTracingKey = contextKey("tracing-context")
