package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/vinhson/vinhson-web/internal/platform/httpclient"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"

	// maxIDLength bounds client-supplied IDs before they reach logs and
	// outbound CMS requests.
	maxIDLength = 128
)

type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID returns a new context with the given request ID stored in it.
// It also stores the ID via httpclient.WithRequestID so that CMS queries
// carry the X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey{}, id)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext extracts the request ID from the context.
// Returns an empty string if no request ID is stored.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithCorrelationID returns a new context with the given correlation ID,
// also propagated to outbound CMS queries.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, correlationIDKey{}, id)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext extracts the correlation ID from the context.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// RequestID returns middleware that assigns the request and correlation IDs.
// An incoming X-Request-ID is reused when it is a plausible ID; otherwise a
// random UUID is generated. The correlation ID comes from X-Correlation-ID
// and defaults to the request ID. Both are echoed as response headers.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(headerRequestID)
			if !validID(reqID) {
				reqID = uuid.NewString()
			}
			corrID := r.Header.Get(headerCorrelationID)
			if !validID(corrID) {
				corrID = reqID
			}

			ctx := WithRequestID(r.Context(), reqID)
			ctx = WithCorrelationID(ctx, corrID)
			w.Header().Set(headerRequestID, reqID)
			w.Header().Set(headerCorrelationID, corrID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validID accepts non-empty printable ASCII up to maxIDLength.
func validID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
