package ports

import (
	"context"

	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/domain/banner"
	"github.com/vinhson/vinhson-web/internal/domain/category"
	"github.com/vinhson/vinhson-web/internal/domain/page"
	"github.com/vinhson/vinhson-web/internal/domain/post"
	"github.com/vinhson/vinhson-web/internal/domain/product"
	"github.com/vinhson/vinhson-web/internal/domain/settings"
)

// ContentClient defines the client port for read-only CMS queries.
// Implemented by the CMS adapter; called by the application layer.
// Every method is scoped to a single content language. Two instances exist
// at runtime: one reading published content from the CDN and one reading
// drafts for preview mode.
type ContentClient interface {
	// GetPage returns the page with the given slug.
	// Returns domain.ErrNotFound if no page matches.
	GetPage(ctx context.Context, locale domain.Locale, slug string) (*page.Page, error)

	// ListPages returns published pages, newest first. Content is not populated.
	ListPages(ctx context.Context, locale domain.Locale) ([]page.Page, error)

	// GetPost returns the blog post with the given slug.
	// Returns domain.ErrNotFound if no post matches.
	GetPost(ctx context.Context, locale domain.Locale, slug string) (*post.Post, error)

	// ListPosts returns published posts, newest first. Content is not populated.
	ListPosts(ctx context.Context, locale domain.Locale) ([]post.Post, error)

	// RecentPosts returns at most limit published posts, newest first.
	RecentPosts(ctx context.Context, locale domain.Locale, limit int) ([]post.Post, error)

	// GetProduct returns the product with the given slug.
	// Returns domain.ErrNotFound if no product matches.
	GetProduct(ctx context.Context, locale domain.Locale, slug string) (*product.Product, error)

	// ListProducts returns published products, newest first.
	ListProducts(ctx context.Context, locale domain.Locale) ([]product.Product, error)

	// ListProductsByCategory returns published products referencing the
	// category document ID.
	ListProductsByCategory(ctx context.Context, locale domain.Locale, categoryID string) ([]product.Product, error)

	// ListHeroBanners returns active banners ordered by their order field.
	ListHeroBanners(ctx context.Context, locale domain.Locale) ([]banner.HeroBanner, error)

	// ListCategories returns categories ordered by name.
	ListCategories(ctx context.Context, locale domain.Locale) ([]category.Category, error)

	// GetSiteSettings returns the settings singleton for the locale.
	// Returns domain.ErrNotFound if none has been authored.
	GetSiteSettings(ctx context.Context, locale domain.Locale) (*settings.SiteSettings, error)
}

// ImageURLBuilder turns CMS image references into CDN rendition URLs.
// Returns domain.ErrValidation for malformed asset references.
type ImageURLBuilder interface {
	URL(img domain.Image, t domain.ImageTransform) (string, error)
}
