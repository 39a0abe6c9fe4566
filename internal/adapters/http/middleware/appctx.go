package middleware

import (
	"net/http"

	appctx "github.com/vinhson/vinhson-web/internal/app/context"
)

// PreviewVerifier validates preview session cookies.
// Satisfied by ports.PreviewService.
type PreviewVerifier interface {
	Verify(value string) bool
	CookieName() string
}

// AppContext returns middleware that scopes each request for content loading.
// It stores a fresh RequestContext, so repeated CMS reads within one render
// (site settings, categories) are fetched once. It also marks the context as
// a preview session when the request carries a valid preview cookie.
// Forged, expired or missing cookies leave the request on published content.
//
// A nil verifier disables preview mode.
func AppContext(verifier PreviewVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if verifier != nil {
				if c, err := r.Cookie(verifier.CookieName()); err == nil && verifier.Verify(c.Value) {
					ctx = appctx.WithPreview(ctx)
				}
			}
			rc := appctx.New(ctx)
			ctx = appctx.WithRequestContext(ctx, rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
