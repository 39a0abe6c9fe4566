package cms

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vinhson/vinhson-web/internal/adapters/clients/cms/document"
	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/domain/banner"
	"github.com/vinhson/vinhson-web/internal/domain/category"
	"github.com/vinhson/vinhson-web/internal/domain/page"
	"github.com/vinhson/vinhson-web/internal/domain/post"
	"github.com/vinhson/vinhson-web/internal/domain/product"
	"github.com/vinhson/vinhson-web/internal/domain/settings"
	"github.com/vinhson/vinhson-web/internal/platform/httpclient"
	"github.com/vinhson/vinhson-web/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ContentClient = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Options selects the dataset and the view of it a Client reads.
type Options struct {
	APIVersion string
	Dataset    string
	// Token authorizes reads of drafts. Leave empty for the CDN client.
	Token string
	// Perspective is PerspectivePublished or PerspectivePreviewDrafts.
	Perspective string
}

// Client is the outbound adapter for the Sanity query API. It implements
// [ports.ContentClient]; every method runs one GROQ query from queries.go
// and translates the projection through the [document] package.
//
// List results are filtered to documents that pass their Validate rules.
// A single invalid document is not found, except under the previewDrafts
// perspective where drafts render as they are.
//
// Two clients run side by side: one against the CDN host with the
// published perspective, and one against the live API host with a token
// and the previewDrafts perspective.
type Client struct {
	req    *Requester
	logger *slog.Logger
}

// NewClient creates a Client that sends queries through the given
// [httpclient.Client], whose base URL must be the project API host
// (for example "https://abc123.apicdn.sanity.io").
func NewClient(client *httpclient.Client, opts Options, logger *slog.Logger) *Client {
	return &Client{
		req:    NewRequester(client, opts, logger),
		logger: logger,
	}
}

// params returns the query parameters shared by every query.
func params(locale domain.Locale) map[string]any {
	return map[string]any{"language": locale.String()}
}

// bySlug returns the parameters of a single-document query.
func bySlug(locale domain.Locale, slug string) map[string]any {
	p := params(locale)
	p["slug"] = slug
	return p
}

// one runs a single-document query and maps a null result to ErrNotFound.
func (c *Client) one(ctx context.Context, what, query string, p map[string]any, out any) error {
	found, err := c.req.Query(ctx, query, p, out)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%s %v: %w", what, p["slug"], domain.ErrNotFound)
	}
	return nil
}

// GetPage fetches a page by slug. Returns [domain.ErrNotFound] when no page
// matches.
func (c *Client) GetPage(ctx context.Context, locale domain.Locale, slug string) (*page.Page, error) {
	var dto document.PageDTO
	if err := c.one(ctx, "page", pageQuery, bySlug(locale, slug), &dto); err != nil {
		return nil, err
	}
	p := document.ToDomainPage(&dto)
	if err := c.checkOne(ctx, "page", slug, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPages fetches published pages, newest first.
func (c *Client) ListPages(ctx context.Context, locale domain.Locale) ([]page.Page, error) {
	var dtos []document.PageDTO
	if _, err := c.req.Query(ctx, allPagesQuery, params(locale), &dtos); err != nil {
		return nil, err
	}
	return keepValid(ctx, c.logger, "page", document.ToDomainPages(dtos)), nil
}

// GetPost fetches a post by slug. Returns [domain.ErrNotFound] when no post
// matches.
func (c *Client) GetPost(ctx context.Context, locale domain.Locale, slug string) (*post.Post, error) {
	var dto document.PostDTO
	if err := c.one(ctx, "post", postQuery, bySlug(locale, slug), &dto); err != nil {
		return nil, err
	}
	p := document.ToDomainPost(&dto)
	if err := c.checkOne(ctx, "post", slug, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPosts fetches published posts, newest first.
func (c *Client) ListPosts(ctx context.Context, locale domain.Locale) ([]post.Post, error) {
	var dtos []document.PostDTO
	if _, err := c.req.Query(ctx, allPostsQuery, params(locale), &dtos); err != nil {
		return nil, err
	}
	return keepValid(ctx, c.logger, "post", document.ToDomainPosts(dtos)), nil
}

// RecentPosts fetches the newest limit published posts. GROQ slices are
// end-exclusive with `...`, so [0...limit] yields limit posts.
func (c *Client) RecentPosts(ctx context.Context, locale domain.Locale, limit int) ([]post.Post, error) {
	var dtos []document.PostDTO
	p := params(locale)
	p["limit"] = limit
	if _, err := c.req.Query(ctx, recentPostsQuery, p, &dtos); err != nil {
		return nil, err
	}
	return keepValid(ctx, c.logger, "post", document.ToDomainPosts(dtos)), nil
}

// GetProduct fetches a product by slug. Returns [domain.ErrNotFound] when
// no product matches.
func (c *Client) GetProduct(ctx context.Context, locale domain.Locale, slug string) (*product.Product, error) {
	var dto document.ProductDTO
	if err := c.one(ctx, "product", productQuery, bySlug(locale, slug), &dto); err != nil {
		return nil, err
	}
	p := document.ToDomainProduct(&dto)
	if err := c.checkOne(ctx, "product", slug, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProducts fetches published products, newest first.
func (c *Client) ListProducts(ctx context.Context, locale domain.Locale) ([]product.Product, error) {
	var dtos []document.ProductDTO
	if _, err := c.req.Query(ctx, allProductsQuery, params(locale), &dtos); err != nil {
		return nil, err
	}
	return keepValid(ctx, c.logger, "product", document.ToDomainProducts(dtos)), nil
}

// ListProductsByCategory fetches published products referencing the
// category document.
func (c *Client) ListProductsByCategory(ctx context.Context, locale domain.Locale, categoryID string) ([]product.Product, error) {
	var dtos []document.ProductDTO
	p := params(locale)
	p["categoryId"] = categoryID
	if _, err := c.req.Query(ctx, productsByCategoryQuery, p, &dtos); err != nil {
		return nil, err
	}
	return keepValid(ctx, c.logger, "product", document.ToDomainProducts(dtos)), nil
}

// ListHeroBanners fetches active banners in display order.
func (c *Client) ListHeroBanners(ctx context.Context, locale domain.Locale) ([]banner.HeroBanner, error) {
	var dtos []document.HeroBannerDTO
	if _, err := c.req.Query(ctx, heroBannersQuery, params(locale), &dtos); err != nil {
		return nil, err
	}
	return keepValid(ctx, c.logger, "heroBanner", document.ToDomainHeroBanners(dtos, locale)), nil
}

// ListCategories fetches categories ordered by name.
func (c *Client) ListCategories(ctx context.Context, locale domain.Locale) ([]category.Category, error) {
	var dtos []document.CategoryDTO
	if _, err := c.req.Query(ctx, categoriesQuery, params(locale), &dtos); err != nil {
		return nil, err
	}
	return keepValid(ctx, c.logger, "category", document.ToDomainCategories(dtos, locale)), nil
}

// GetSiteSettings fetches the settings document for the locale. Returns
// [domain.ErrNotFound] when none has been authored or the authored one is
// incomplete, so callers fall back to the built-in settings.
func (c *Client) GetSiteSettings(ctx context.Context, locale domain.Locale) (*settings.SiteSettings, error) {
	var dto document.SiteSettingsDTO
	found, err := c.req.Query(ctx, siteSettingsQuery, params(locale), &dto)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("site settings %s: %w", locale, domain.ErrNotFound)
	}
	s := document.ToDomainSiteSettings(&dto, locale)
	if err := s.Validate(); err != nil {
		warnInvalid(ctx, c.logger, "siteSettings", &s, err)
		return nil, fmt.Errorf("site settings %s: %v: %w", locale, err, domain.ErrNotFound)
	}
	return &s, nil
}
