package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vinhson/vinhson-web/internal/adapters/http/dto"
	"github.com/vinhson/vinhson-web/internal/adapters/http/views"
	appctx "github.com/vinhson/vinhson-web/internal/app/context"
	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/platform/i18n"
	"github.com/vinhson/vinhson-web/internal/platform/logging"
	"github.com/vinhson/vinhson-web/internal/ports"
)

// Route parameters shared with the router.
const (
	ParamLocale = "locale"
	ParamSlug   = "slug"
)

// SiteHandler renders the localized HTML pages.
type SiteHandler struct {
	svc       ports.SiteService
	presenter *views.Presenter
	renderer  *views.Renderer
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(svc ports.SiteService, presenter *views.Presenter, renderer *views.Renderer) *SiteHandler {
	return &SiteHandler{svc: svc, presenter: presenter, renderer: renderer}
}

// Root handles GET /. It redirects to the home page of the locale
// negotiated from Accept-Language.
func (h *SiteHandler) Root(w http.ResponseWriter, r *http.Request) {
	l := i18n.Negotiate(r.Header.Get("Accept-Language"))
	http.Redirect(w, r, i18n.Path(l, i18n.SectionHome), http.StatusFound)
}

// Home handles GET /{locale}. ?slide=N selects the initial carousel slide.
func (h *SiteHandler) Home(w http.ResponseWriter, r *http.Request) {
	l, ok := h.locale(w, r)
	if !ok {
		return
	}

	home, err := h.svc.Home(r.Context(), l)
	if err != nil {
		h.fail(w, r, l, "home", "", err)
		return
	}

	req := h.request(r.Context(), l, i18n.Path(l, i18n.SectionHome))
	slide := views.ParseSlide(r.URL.Query().Get("slide"), len(home.Banners))
	h.render(w, r, l, views.PageHome, h.presenter.Home(req, home, slide))
}

// Page handles GET /{locale}/{slug}.
func (h *SiteHandler) Page(w http.ResponseWriter, r *http.Request) {
	l, ok := h.locale(w, r)
	if !ok {
		return
	}
	slug := chi.URLParam(r, ParamSlug)

	pg, err := h.svc.Page(r.Context(), l, slug)
	if err != nil {
		h.fail(w, r, l, "page", slug, err)
		return
	}

	req := h.request(r.Context(), l, "/"+l.String()+"/"+slug)
	h.render(w, r, l, views.PagePage, h.presenter.Page(req, pg))
}

// Blog handles GET /{locale}/{blog|tin-tuc}.
func (h *SiteHandler) Blog(w http.ResponseWriter, r *http.Request) {
	l, ok := h.locale(w, r)
	if !ok {
		return
	}

	posts, err := h.svc.Blog(r.Context(), l)
	if err != nil {
		h.fail(w, r, l, "blog", "", err)
		return
	}

	req := h.request(r.Context(), l, i18n.Path(l, i18n.SectionBlog))
	h.render(w, r, l, views.PageBlog, h.presenter.Blog(req, posts))
}

// Post handles GET /{locale}/{blog|tin-tuc}/{slug}.
func (h *SiteHandler) Post(w http.ResponseWriter, r *http.Request) {
	l, ok := h.locale(w, r)
	if !ok {
		return
	}
	slug := chi.URLParam(r, ParamSlug)

	ps, err := h.svc.Post(r.Context(), l, slug)
	if err != nil {
		h.fail(w, r, l, "post", slug, err)
		return
	}

	req := h.request(r.Context(), l, i18n.Path(l, i18n.SectionBlog, slug))
	h.render(w, r, l, views.PagePost, h.presenter.Post(req, ps))
}

// Products handles GET /{locale}/{products|san-pham}?category=slug.
func (h *SiteHandler) Products(w http.ResponseWriter, r *http.Request) {
	l, ok := h.locale(w, r)
	if !ok {
		return
	}
	category := r.URL.Query().Get("category")

	c, err := h.svc.Products(r.Context(), l, category)
	if err != nil {
		h.fail(w, r, l, "products", category, err)
		return
	}

	req := h.request(r.Context(), l, i18n.Path(l, i18n.SectionProducts))
	h.render(w, r, l, views.PageProducts, h.presenter.Products(req, c))
}

// Product handles GET /{locale}/{products|san-pham}/{slug}.
func (h *SiteHandler) Product(w http.ResponseWriter, r *http.Request) {
	l, ok := h.locale(w, r)
	if !ok {
		return
	}
	slug := chi.URLParam(r, ParamSlug)

	pr, err := h.svc.Product(r.Context(), l, slug)
	if err != nil {
		h.fail(w, r, l, "product", slug, err)
		return
	}

	req := h.request(r.Context(), l, i18n.Path(l, i18n.SectionProducts, slug))
	h.render(w, r, l, views.PageProduct, h.presenter.Product(req, pr))
}

// NotFound renders the localized 404 page for unmatched routes.
func (h *SiteHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderError(w, r, requestLocale(r), http.StatusNotFound)
}

// RenderError renders err as an error page. API and health paths get an
// RFC 9457 problem+json body instead. It is the panic renderer for the
// recovery middleware.
func (h *SiteHandler) RenderError(w http.ResponseWriter, r *http.Request, err error) {
	if isAPIPath(r.URL.Path) {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.renderError(w, r, requestLocale(r), pageStatus(err))
}

// locale reads the {locale} parameter. Unsupported locales render the 404
// page and return false.
func (h *SiteHandler) locale(w http.ResponseWriter, r *http.Request) (domain.Locale, bool) {
	l := domain.Locale(chi.URLParam(r, ParamLocale))
	if !l.IsValid() {
		h.NotFound(w, r)
		return "", false
	}
	return l, true
}

// request builds the per-request view inputs. Settings that cannot be
// loaded fall back to the defaults so the chrome still renders.
func (h *SiteHandler) request(ctx context.Context, l domain.Locale, path string) *views.Request {
	req := &views.Request{
		Locale:  l,
		Path:    path,
		Preview: appctx.IsPreview(ctx),
	}
	s, err := h.svc.Settings(ctx, l)
	if err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "site settings unavailable",
			slog.String("locale", l.String()),
			slog.Any("error", err),
		)
		return req
	}
	req.Settings = s
	return req
}

// render writes a page, falling back to the 500 page when the template fails.
func (h *SiteHandler) render(w http.ResponseWriter, r *http.Request, l domain.Locale, page string, data any) {
	if err := h.renderer.Render(w, http.StatusOK, page, data); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to render page",
			slog.String("page", page),
			slog.Any("error", err),
		)
		h.renderError(w, r, l, http.StatusInternalServerError)
	}
}

// fail renders the error page for a failed content load. Server-side
// failures are logged.
func (h *SiteHandler) fail(w http.ResponseWriter, r *http.Request, l domain.Locale, op, slug string, err error) {
	status := pageStatus(err)
	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to load content",
			slog.String("operation", op),
			slog.String("locale", l.String()),
			slog.String("slug", slug),
			slog.Any("error", err),
		)
	}
	h.renderError(w, r, l, status)
}

func (h *SiteHandler) renderError(w http.ResponseWriter, r *http.Request, l domain.Locale, status int) {
	if status >= http.StatusInternalServerError {
		w.Header().Set("Cache-Control", cacheNoStore)
	}

	req := h.request(r.Context(), l, r.URL.Path)
	if err := h.renderer.Render(w, status, views.PageError, h.presenter.Error(req, status)); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to render error page",
			slog.Int("status", status),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(status), status)
	}
}

// pageStatus maps a content error to the status of its error page. Every
// client-side failure, such as a malformed slug, reads as not found.
func pageStatus(err error) int {
	status := dto.StatusFor(err)
	if status < http.StatusInternalServerError {
		return http.StatusNotFound
	}
	return status
}

func isAPIPath(path string) bool {
	for _, prefix := range []string{"/api/", "/health/"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
