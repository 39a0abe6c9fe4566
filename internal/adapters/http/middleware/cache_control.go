package middleware

import (
	"fmt"
	"net/http"
	"time"

	appctx "github.com/vinhson/vinhson-web/internal/app/context"
)

// Cache-Control values shared with handlers that need to override the
// default on error responses.
const (
	CacheNoStore       = "no-store"
	CachePreview       = "private, no-store"
	headerCacheControl = "Cache-Control"
)

// CacheControl returns middleware that delegates page caching to the hosting
// CDN. Published pages are shared-cacheable for maxAge and may be served
// stale for up to swr while the CDN refetches. Preview sessions are never
// cached. Handlers may replace the header, for example on server errors.
func CacheControl(maxAge, swr time.Duration) func(http.Handler) http.Handler {
	public := fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=%d",
		int(maxAge.Seconds()), int(swr.Seconds()))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if appctx.IsPreview(r.Context()) {
				w.Header().Set(headerCacheControl, CachePreview)
			} else {
				w.Header().Set(headerCacheControl, public)
			}
			next.ServeHTTP(w, r)
		})
	}
}
