package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"

	"github.com/vinhson/vinhson-web/internal/adapters/http/dto"
	"github.com/vinhson/vinhson-web/internal/adapters/http/seo"
	"github.com/vinhson/vinhson-web/internal/platform/logging"
	"github.com/vinhson/vinhson-web/internal/ports"
)

// SEOHandler serves robots.txt and the XML sitemaps.
type SEOHandler struct {
	svc     ports.SiteService
	baseURL string
}

// NewSEOHandler creates a new SEOHandler. baseURL is the public site origin.
func NewSEOHandler(svc ports.SiteService, baseURL string) *SEOHandler {
	return &SEOHandler{svc: svc, baseURL: strings.TrimRight(baseURL, "/")}
}

// Robots handles GET /robots.txt.
func (h *SEOHandler) Robots(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, seo.Robots(h.baseURL))
}

// SitemapIndex handles GET /sitemap-index.xml.
func (h *SEOHandler) SitemapIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := seo.WriteSitemapIndex(&buf, h.baseURL); err != nil {
		h.fail(w, r, err)
		return
	}
	writeXML(w, &buf)
}

// Sitemap handles GET /sitemap-0.xml. Every published document is listed
// once per locale with its hreflang alternates.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.Sitemap(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := seo.WriteSitemap(&buf, h.baseURL, entries); err != nil {
		h.fail(w, r, err)
		return
	}
	writeXML(w, &buf)
}

func (h *SEOHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to build sitemap",
		slog.String("operation", "sitemap"),
		slog.Any("error", err),
	)
	w.Header().Set("Cache-Control", cacheNoStore)
	dto.WriteErrorResponse(w, r, err)
}

func writeXML(w http.ResponseWriter, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", contentTypeXML)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
