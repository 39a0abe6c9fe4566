package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/vinhson/vinhson-web/internal/adapters/http/dto"
)

// ErrorWriter renders err as the response for r.
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// errInternalServer is the generic error rendered when a panic is recovered.
// The panic value and stack trace are logged but never exposed.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that recovers from panics in downstream handlers.
// The panic is logged with the full stack trace and the response is rendered
// by render, so site pages can show their own error page. A nil render
// writes an RFC 9457 problem+json 500. If the response headers have already
// been written, only the log entry is emitted.
func Recovery(logger *slog.Logger, render ErrorWriter) func(http.Handler) http.Handler {
	if render == nil {
		render = dto.WriteErrorResponse
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler { //nolint:errorlint // sentinel panic value, compared as net/http does
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)

				if !rw.headerWritten {
					rw.Header().Set("Cache-Control", "no-store")
					render(rw, r, errInternalServer)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
