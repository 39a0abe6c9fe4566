package ports

import (
	"context"
	"net/http"
	"time"

	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/domain/banner"
	"github.com/vinhson/vinhson-web/internal/domain/category"
	"github.com/vinhson/vinhson-web/internal/domain/page"
	"github.com/vinhson/vinhson-web/internal/domain/post"
	"github.com/vinhson/vinhson-web/internal/domain/product"
	"github.com/vinhson/vinhson-web/internal/domain/settings"
)

// SiteService defines the service port for assembling page content.
// Implemented by the application layer; called by the site handlers.
// Whether drafts are visible is decided by the preview flag carried in ctx.
type SiteService interface {
	// Settings returns the site settings for the locale, falling back to
	// minimal defaults when none are authored.
	Settings(ctx context.Context, locale domain.Locale) (*settings.SiteSettings, error)

	// Home loads every home page section concurrently.
	Home(ctx context.Context, locale domain.Locale) (*Home, error)

	// Page returns a CMS page by slug.
	// Returns domain.ErrNotFound if it does not exist or is unpublished
	// outside preview mode.
	Page(ctx context.Context, locale domain.Locale, slug string) (*page.Page, error)

	// Blog returns the published posts for the blog index.
	Blog(ctx context.Context, locale domain.Locale) ([]post.Post, error)

	// Post returns a blog post by slug, with the same visibility rules as Page.
	Post(ctx context.Context, locale domain.Locale, slug string) (*post.Post, error)

	// Products returns the catalog, optionally narrowed to the category with
	// the given slug. An unknown category slug yields an empty list.
	Products(ctx context.Context, locale domain.Locale, categorySlug string) (*Catalog, error)

	// Product returns a product by slug, with the same visibility rules as Page.
	Product(ctx context.Context, locale domain.Locale, slug string) (*product.Product, error)

	// Sitemap lists every published, localized URL path with its last
	// modification time when known.
	Sitemap(ctx context.Context) ([]SitemapEntry, error)
}

// Home holds the sections rendered on the home page.
type Home struct {
	Banners     []banner.HeroBanner
	Categories  []category.Category
	Products    []product.Product
	RecentPosts []post.Post
}

// Catalog holds the product index and the category filter state.
type Catalog struct {
	Products   []product.Product
	Categories []category.Category
	Active     *category.Category
}

// SitemapEntry is one document reachable in every locale. Paths maps each
// locale to its site-relative path.
type SitemapEntry struct {
	Paths   map[domain.Locale]string
	LastMod *time.Time
}

// PreviewService defines the service port for preview mode sessions.
type PreviewService interface {
	// Enter validates the shared secret and returns the session cookie and
	// the path to redirect to.
	// Returns domain.ErrUnauthorized if the secret does not match.
	Enter(ctx context.Context, req PreviewRequest) (*http.Cookie, string, error)

	// Exit returns the cookie that clears the preview session.
	Exit(ctx context.Context) *http.Cookie

	// Verify reports whether the cookie value is a valid preview session.
	Verify(value string) bool

	// CookieName returns the name of the session cookie.
	CookieName() string
}

// PreviewRequest carries the query parameters of a preview entry request.
type PreviewRequest struct {
	Secret string
	Slug   string
	Type   string
	Locale string
}

// RevalidationService defines the service port for CMS publish webhooks.
type RevalidationService interface {
	// Acknowledge validates the shared secret and records the notification.
	// Returns domain.ErrUnauthorized if the secret does not match.
	Acknowledge(ctx context.Context, n Revalidation) error
}

// Revalidation is a publish notification sent by the CMS.
type Revalidation struct {
	Secret string
	Type   string
	Slug   string
}
