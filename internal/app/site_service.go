// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	appctx "github.com/vinhson/vinhson-web/internal/app/context"
	"github.com/vinhson/vinhson-web/internal/app/fanout"
	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/domain/category"
	"github.com/vinhson/vinhson-web/internal/domain/page"
	"github.com/vinhson/vinhson-web/internal/domain/post"
	"github.com/vinhson/vinhson-web/internal/domain/product"
	"github.com/vinhson/vinhson-web/internal/domain/settings"
	"github.com/vinhson/vinhson-web/internal/platform/i18n"
	"github.com/vinhson/vinhson-web/internal/ports"
)

// Compile-time check that SiteService implements ports.SiteService.
var _ ports.SiteService = (*SiteService)(nil)

// sectionWorkers bounds the concurrent CMS queries issued for one page.
const sectionWorkers = 4

// SiteOptions holds the presentation limits applied by SiteService.
type SiteOptions struct {
	// SiteName is used when no settings document exists for a locale.
	SiteName string
	// RecentPosts is the number of posts shown on the home page.
	RecentPosts int
	// HomeProducts is the number of featured products on the home page.
	// Zero shows every product.
	HomeProducts int
}

// SiteService implements ports.SiteService on top of two ContentClients: one
// reading published content and one reading drafts. The preview flag carried
// in ctx selects between them, and outside preview mode documents whose
// status is not published are reported as not found.
type SiteService struct {
	published ports.ContentClient
	preview   ports.ContentClient
	opts      SiteOptions
	logger    *slog.Logger
}

// NewSiteService creates a SiteService. A nil logger discards output.
func NewSiteService(published, preview ports.ContentClient, opts SiteOptions, logger *slog.Logger) *SiteService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SiteService{
		published: published,
		preview:   preview,
		opts:      opts,
		logger:    logger,
	}
}

func (s *SiteService) client(ctx context.Context) ports.ContentClient {
	if appctx.IsPreview(ctx) {
		return s.preview
	}
	return s.published
}

// memoKey scopes request-cache entries by locale and preview mode.
func memoKey(ctx context.Context, kind string, locale domain.Locale) string {
	return fmt.Sprintf("%s:%s:preview=%t", kind, locale, appctx.IsPreview(ctx))
}

// visible hides unpublished documents outside preview mode.
func visible(ctx context.Context, status domain.Status) bool {
	return appctx.IsPreview(ctx) || status.IsPublished()
}

// Settings returns the settings document for the locale. A missing document
// yields settings.Fallback so the layout can still render.
func (s *SiteService) Settings(ctx context.Context, locale domain.Locale) (*settings.SiteSettings, error) {
	return appctx.Memo(ctx, memoKey(ctx, "settings", locale), func(ctx context.Context) (*settings.SiteSettings, error) {
		st, err := s.client(ctx).GetSiteSettings(ctx, locale)
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "site settings not authored, using defaults",
				slog.String("locale", locale.String()),
			)
			return settings.Fallback(locale, s.opts.SiteName), nil
		}
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to fetch site settings",
				slog.String("operation", "Settings"),
				slog.String("locale", locale.String()),
				slog.Any("error", err),
			)
			return nil, err
		}
		return st, nil
	})
}

// Home loads the home page sections concurrently. A failed section is logged
// and left empty; Home only fails when every section failed.
func (s *SiteService) Home(ctx context.Context, locale domain.Locale) (*ports.Home, error) {
	s.logger.InfoContext(ctx, "loading home page", slog.String("locale", locale.String()))

	client := s.client(ctx)
	home := &ports.Home{}
	tasks := []fanout.Task{
		{Name: "banners", Fn: func(ctx context.Context) (err error) {
			home.Banners, err = client.ListHeroBanners(ctx, locale)
			return err
		}},
		{Name: "categories", Fn: func(ctx context.Context) (err error) {
			home.Categories, err = s.categories(ctx, locale)
			return err
		}},
		{Name: "products", Fn: func(ctx context.Context) error {
			products, err := client.ListProducts(ctx, locale)
			if err != nil {
				return err
			}
			if n := s.opts.HomeProducts; n > 0 && len(products) > n {
				products = products[:n]
			}
			home.Products = products
			return nil
		}},
		{Name: "recent_posts", Fn: func(ctx context.Context) (err error) {
			home.RecentPosts, err = client.RecentPosts(ctx, locale, max(s.opts.RecentPosts, 1))
			return err
		}},
	}

	failed := fanout.RunTasks(ctx, sectionWorkers, tasks...)
	if len(failed) == len(tasks) {
		errs := make([]error, 0, len(failed))
		for _, name := range slices.Sorted(maps.Keys(failed)) {
			errs = append(errs, fmt.Errorf("%s: %w", name, failed[name]))
		}
		err := errors.Join(errs...)
		s.logger.ErrorContext(ctx, "failed to load home page",
			slog.String("operation", "Home"),
			slog.String("locale", locale.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	for name, err := range failed {
		s.logger.WarnContext(ctx, "home section unavailable",
			slog.String("section", name),
			slog.String("locale", locale.String()),
			slog.Any("error", err),
		)
	}

	return home, nil
}

// Page returns a CMS page by slug.
func (s *SiteService) Page(ctx context.Context, locale domain.Locale, slug string) (*page.Page, error) {
	s.logger.InfoContext(ctx, "fetching page",
		slog.String("locale", locale.String()),
		slog.String("slug", slug),
	)

	p, err := s.client(ctx).GetPage(ctx, locale, slug)
	if err != nil {
		s.logFetchError(ctx, "Page", locale, slug, err)
		return nil, err
	}
	if !visible(ctx, p.Status) {
		return nil, fmt.Errorf("page %q is %s: %w", slug, p.Status, domain.ErrNotFound)
	}
	return p, nil
}

// Blog returns the posts for the blog index.
func (s *SiteService) Blog(ctx context.Context, locale domain.Locale) ([]post.Post, error) {
	s.logger.InfoContext(ctx, "listing posts", slog.String("locale", locale.String()))

	posts, err := s.client(ctx).ListPosts(ctx, locale)
	if err != nil {
		s.logFetchError(ctx, "Blog", locale, "", err)
		return nil, err
	}
	return posts, nil
}

// Post returns a blog post by slug.
func (s *SiteService) Post(ctx context.Context, locale domain.Locale, slug string) (*post.Post, error) {
	s.logger.InfoContext(ctx, "fetching post",
		slog.String("locale", locale.String()),
		slog.String("slug", slug),
	)

	p, err := s.client(ctx).GetPost(ctx, locale, slug)
	if err != nil {
		s.logFetchError(ctx, "Post", locale, slug, err)
		return nil, err
	}
	if !visible(ctx, p.Status) {
		return nil, fmt.Errorf("post %q is %s: %w", slug, p.Status, domain.ErrNotFound)
	}
	return p, nil
}

// Products returns the catalog. With a category slug the list is narrowed to
// that category; a slug that matches no category yields no products.
func (s *SiteService) Products(ctx context.Context, locale domain.Locale, categorySlug string) (*ports.Catalog, error) {
	s.logger.InfoContext(ctx, "listing products",
		slog.String("locale", locale.String()),
		slog.String("category", categorySlug),
	)

	categories, err := s.categories(ctx, locale)
	if err != nil {
		s.logFetchError(ctx, "Products", locale, categorySlug, err)
		return nil, err
	}

	catalog := &ports.Catalog{Categories: categories}
	client := s.client(ctx)

	switch {
	case categorySlug == "":
		catalog.Products, err = client.ListProducts(ctx, locale)
	default:
		catalog.Active = category.FindBySlug(categories, categorySlug)
		if catalog.Active == nil {
			catalog.Products = []product.Product{}
			return catalog, nil
		}
		catalog.Products, err = client.ListProductsByCategory(ctx, locale, catalog.Active.ID)
	}
	if err != nil {
		s.logFetchError(ctx, "Products", locale, categorySlug, err)
		return nil, err
	}

	return catalog, nil
}

// Product returns a product by slug.
func (s *SiteService) Product(ctx context.Context, locale domain.Locale, slug string) (*product.Product, error) {
	s.logger.InfoContext(ctx, "fetching product",
		slog.String("locale", locale.String()),
		slog.String("slug", slug),
	)

	p, err := s.client(ctx).GetProduct(ctx, locale, slug)
	if err != nil {
		s.logFetchError(ctx, "Product", locale, slug, err)
		return nil, err
	}
	if !visible(ctx, p.Status) {
		return nil, fmt.Errorf("product %q is %s: %w", slug, p.Status, domain.ErrNotFound)
	}
	return p, nil
}

// Sitemap lists the section roots and every published document of both
// locales. Documents are always read from the published client, even in
// preview mode. A document at the same path in both locales appears once.
func (s *SiteService) Sitemap(ctx context.Context) ([]ports.SitemapEntry, error) {
	s.logger.InfoContext(ctx, "building sitemap")

	type docPath struct {
		path    string
		lastMod *time.Time
	}
	type query struct {
		locale domain.Locale
		list   func(ctx context.Context, l domain.Locale) ([]docPath, error)
	}

	lists := []func(ctx context.Context, l domain.Locale) ([]docPath, error){
		func(ctx context.Context, l domain.Locale) ([]docPath, error) {
			pages, err := s.published.ListPages(ctx, l)
			out := make([]docPath, 0, len(pages))
			for _, p := range pages {
				out = append(out, docPath{path: "/" + l.String() + "/" + p.Slug, lastMod: p.PublishedAt})
			}
			return out, err
		},
		func(ctx context.Context, l domain.Locale) ([]docPath, error) {
			posts, err := s.published.ListPosts(ctx, l)
			out := make([]docPath, 0, len(posts))
			for _, p := range posts {
				out = append(out, docPath{path: i18n.Path(l, i18n.SectionBlog, p.Slug), lastMod: p.PublishedAt})
			}
			return out, err
		},
		func(ctx context.Context, l domain.Locale) ([]docPath, error) {
			products, err := s.published.ListProducts(ctx, l)
			out := make([]docPath, 0, len(products))
			for _, p := range products {
				out = append(out, docPath{path: i18n.Path(l, i18n.SectionProducts, p.Slug)})
			}
			return out, err
		},
	}

	var queries []query
	for _, l := range domain.Locales() {
		for _, list := range lists {
			queries = append(queries, query{locale: l, list: list})
		}
	}

	results := fanout.Run(ctx, sectionWorkers, queries, func(ctx context.Context, q query) ([]docPath, error) {
		return q.list(ctx, q.locale)
	})

	paths := []docPath{
		{path: i18n.Path(domain.DefaultLocale, i18n.SectionHome)},
		{path: i18n.Path(domain.DefaultLocale, i18n.SectionProducts)},
		{path: i18n.Path(domain.DefaultLocale, i18n.SectionBlog)},
	}
	for _, r := range results {
		if r.Err != nil {
			s.logger.ErrorContext(ctx, "failed to build sitemap",
				slog.String("operation", "Sitemap"),
				slog.Any("error", r.Err),
			)
			return nil, r.Err
		}
		paths = append(paths, r.Value...)
	}

	seen := make(map[string]int, len(paths))
	entries := make([]ports.SitemapEntry, 0, len(paths))
	for _, d := range paths {
		key := i18n.LocalizePath(d.path, domain.DefaultLocale)
		if i, ok := seen[key]; ok {
			entries[i].LastMod = latest(entries[i].LastMod, d.lastMod)
			continue
		}
		seen[key] = len(entries)

		alternates := make(map[domain.Locale]string, len(domain.Locales()))
		for _, l := range domain.Locales() {
			alternates[l] = i18n.LocalizePath(d.path, l)
		}
		entries = append(entries, ports.SitemapEntry{Paths: alternates, LastMod: d.lastMod})
	}

	return entries, nil
}

// categories is memoized because the home page and the product index both
// render the category list alongside other sections.
func (s *SiteService) categories(ctx context.Context, locale domain.Locale) ([]category.Category, error) {
	return appctx.Memo(ctx, memoKey(ctx, "categories", locale), func(ctx context.Context) ([]category.Category, error) {
		return s.client(ctx).ListCategories(ctx, locale)
	})
}

func (s *SiteService) logFetchError(ctx context.Context, op string, locale domain.Locale, slug string, err error) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) {
		level = slog.LevelInfo
	}
	s.logger.Log(ctx, level, "content fetch failed",
		slog.String("operation", op),
		slog.String("locale", locale.String()),
		slog.String("slug", slug),
		slog.Any("error", err),
	)
}

func latest(a, b *time.Time) *time.Time {
	switch {
	case a == nil:
		return b
	case b == nil || a.After(*b):
		return a
	default:
		return b
	}
}
