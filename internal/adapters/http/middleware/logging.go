package middleware

import (
	"log/slog"
	"net/http"
	"time"

	appctx "github.com/vinhson/vinhson-web/internal/app/context"
	"github.com/vinhson/vinhson-web/internal/platform/logging"
)

// Logging returns middleware that logs request start and completion events.
// It creates a child logger enriched with the request and correlation IDs,
// stores it via logging.WithLogger for downstream use, and logs completion
// with the status code and duration. Server errors complete at error level.
// Query strings are logged with credential parameters masked.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			}
			if q := RedactQuery(r.URL); q != "" {
				attrs = append(attrs, slog.String("query", q))
			}
			child.InfoContext(ctx, "request started", attrs...)

			if child.Enabled(ctx, slog.LevelDebug) {
				headerAttrs := RedactHeaders(r.Header)
				args := make([]any, 0, len(headerAttrs))
				for _, a := range headerAttrs {
					args = append(args, a)
				}
				child.DebugContext(ctx, "request headers", args...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			level := slog.LevelInfo
			if rw.statusCode >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			child.Log(ctx, level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Bool("preview", appctx.IsPreview(r.Context())),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
