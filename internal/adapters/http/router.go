// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vinhson/vinhson-web/internal/adapters/http/handlers"
	"github.com/vinhson/vinhson-web/internal/adapters/http/views/static"
)

// Section segments accepted in either locale, so /vi/blog/x and
// /en/tin-tuc/x resolve like their localized forms.
const (
	blogSegment     = "{section:(?:blog|tin-tuc)}"
	productsSegment = "{section:(?:products|san-pham)}"
)

// Routes holds the handlers mounted by NewRouter.
type Routes struct {
	Site       *handlers.SiteHandler
	Preview    *handlers.PreviewHandler
	Revalidate *handlers.RevalidateHandler
	SEO        *handlers.SEOHandler
	Health     *handlers.HealthHandler

	// Metrics serves GET /metrics when non-nil.
	Metrics http.Handler

	// Pages wraps the HTML page routes only, e.g. with the request timeout
	// and cache headers. May be nil.
	Pages func(http.Handler) http.Handler
}

// NewRouter creates an HTTP handler with all site routes registered.
// Middleware is applied globally in the order given.
func NewRouter(rt Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(rt.Site.NotFound)

	// Health endpoints.
	r.Get("/health/live", rt.Health.Liveness)
	r.Get("/health/ready", rt.Health.Readiness)
	if rt.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", rt.Metrics)
	}

	// CMS-facing endpoints.
	r.Route("/api", func(r chi.Router) {
		r.Get("/preview", rt.Preview.Enter)
		r.Get("/exit-preview", rt.Preview.Exit)
		r.Post("/revalidate", rt.Revalidate.Revalidate)
	})

	// Crawler files and assets.
	r.Get("/robots.txt", rt.SEO.Robots)
	r.Get("/sitemap-index.xml", rt.SEO.SitemapIndex)
	r.Get("/sitemap-0.xml", rt.SEO.Sitemap)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))

	r.Get("/", rt.Site.Root)

	// Localized pages.
	r.Group(func(r chi.Router) {
		if rt.Pages != nil {
			r.Use(rt.Pages)
		}
		r.Get("/{locale}", rt.Site.Home)
		r.Get("/{locale}/"+blogSegment, rt.Site.Blog)
		r.Get("/{locale}/"+blogSegment+"/{slug}", rt.Site.Post)
		r.Get("/{locale}/"+productsSegment, rt.Site.Products)
		r.Get("/{locale}/"+productsSegment+"/{slug}", rt.Site.Product)
		r.Get("/{locale}/{slug}", rt.Site.Page)
	})

	return r
}
