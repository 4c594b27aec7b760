package rest

import (
	"context"
	"net/http"

	"github.com/lucsky/cuid"
	"github.com/oseuis57/web-ecovision/util/tracing"
	"github.com/oseuis57/web-ecovision/util/values"
)

// RequestTracing handles the request tracing context
func RequestTracing(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestSource := r.Header.Get(values.HeaderRequestSource)
		if requestSource == "" {
			requestSource = "unknown"
		}

		requestID := r.Header.Get(values.HeaderRequestID)
		if requestID == "" {
			requestID = cuid.New()
		}

		tracingContext := tracing.Context{
			RequestID:     requestID,
			RequestSource: requestSource,
		}

		ctx = context.WithValue(ctx, values.ContextTracingKey, tracingContext)
		next.ServeHTTP(w, r.WithContext(ctx))
	}

	return http.HandlerFunc(fn)
}

func tracingFromRequest(r *http.Request) tracing.Context {
	tc, _ := r.Context().Value(values.ContextTracingKey).(tracing.Context)
	return tc
}
