package views

import (
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vinhson/vinhson-web/internal/adapters/http/seo"
	"github.com/vinhson/vinhson-web/internal/adapters/http/views/portabletext"
	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/domain/category"
	"github.com/vinhson/vinhson-web/internal/domain/page"
	"github.com/vinhson/vinhson-web/internal/domain/post"
	"github.com/vinhson/vinhson-web/internal/domain/product"
	"github.com/vinhson/vinhson-web/internal/domain/settings"
	"github.com/vinhson/vinhson-web/internal/platform/i18n"
	"github.com/vinhson/vinhson-web/internal/ports"
)

// Card and detail rendition sizes.
const (
	blogCardWidth     = 600
	blogCardHeight    = 400
	productCardWidth  = 400
	productCardHeight = 300
	detailWidth       = 800
	detailHeight      = 600
	ogWidth           = 1200
	ogHeight          = 630
	logoWidth         = 160
	logoHeight        = 48
)

// ExitPreviewPath ends a preview session.
const ExitPreviewPath = "/api/exit-preview"

// Request carries the per-request inputs shared by every view.
type Request struct {
	Locale   domain.Locale
	Path     string
	Preview  bool
	Settings *settings.SiteSettings
}

// PresenterOptions holds the site-wide values views need.
type PresenterOptions struct {
	BaseURL  string
	SiteName string
	// SearchPath enables the WebSite SearchAction, e.g. "/search".
	SearchPath string
}

// Presenter turns domain content into view models.
type Presenter struct {
	renderer *Renderer
	catalog  *i18n.Catalog
	images   ports.ImageURLBuilder
	opts     PresenterOptions
	logger   *slog.Logger
	now      func() time.Time
}

// NewPresenter creates a Presenter. A nil logger discards output.
func NewPresenter(
	renderer *Renderer,
	catalog *i18n.Catalog,
	images ports.ImageURLBuilder,
	opts PresenterOptions,
	logger *slog.Logger,
) *Presenter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	return &Presenter{
		renderer: renderer,
		catalog:  catalog,
		images:   images,
		opts:     opts,
		logger:   logger,
		now:      time.Now,
	}
}

func (p *Presenter) t(req *Request, key string, args ...any) string {
	return p.catalog.T(req.Locale, key, args...)
}

func (p *Presenter) url(path string) string {
	return seo.Canonical(p.opts.BaseURL, path)
}

// meta holds the per-page inputs to the layout.
type meta struct {
	title       string
	description string
	keywords    []string
	image       *domain.Image
	ogType      string
	section     i18n.Section
	noIndex     bool
	jsonLD      []any
}

func (p *Presenter) settings(req *Request) *settings.SiteSettings {
	if req.Settings != nil {
		return req.Settings
	}
	return settings.Fallback(req.Locale, p.opts.SiteName)
}

func (p *Presenter) layout(req *Request, m meta) *Layout {
	s := p.settings(req)
	siteName := s.SiteName
	if siteName == "" {
		siteName = p.opts.SiteName
	}

	title := s.SEO.TitleOr(siteName)
	if m.title != "" {
		title = m.title + " | " + siteName
	}
	description := m.description
	if description == "" {
		description = s.SEO.DescriptionOr(s.SiteDescription)
	}
	keywords := m.keywords
	if len(keywords) == 0 && s.SEO != nil {
		keywords = s.SEO.MetaKeywords
	}
	ogType := m.ogType
	if ogType == "" {
		ogType = "website"
	}
	ogImage := m.image
	if ogImage.IsZero() && s.SEO != nil {
		ogImage = s.SEO.OGImage
	}

	l := &Layout{
		Locale:      req.Locale,
		Title:       title,
		Description: description,
		Keywords:    strings.Join(keywords, ", "),
		Canonical:   p.url(req.Path),
		Alternates:  seo.Alternates(p.opts.BaseURL, req.Path),
		XDefault:    p.url(i18n.LocalizePath(req.Path, domain.DefaultLocale)),
		NoIndex:     m.noIndex,
		OG: OpenGraph{
			Type:        ogType,
			Title:       title,
			Description: description,
			URL:         p.url(req.Path),
			SiteName:    siteName,
			Locale:      strings.ReplaceAll(seo.HrefLang(req.Locale), "-", "_"),
		},
		SiteName:    siteName,
		HomeHref:    i18n.Path(req.Locale, i18n.SectionHome),
		Nav:         p.nav(req, m.section),
		Languages:   p.languages(req),
		Footer:      p.footer(s),
		Preview:     req.Preview,
		ExitPreview: ExitPreviewPath,
		t: func(key string, args ...any) string {
			return p.t(req, key, args...)
		},
	}
	if !ogImage.IsZero() {
		l.OG.Image = p.image(req, ogImage, title, ogWidth, ogHeight, false).Src
	}
	if !s.Logo.IsZero() {
		l.Logo = p.image(req, s.Logo, siteName, logoWidth, logoHeight, true)
	}

	for _, v := range m.jsonLD {
		js, err := seo.Script(v)
		if err != nil {
			p.logger.Error("failed to encode structured data", slog.Any("error", err))
			continue
		}
		l.JSONLD = append(l.JSONLD, js)
	}
	return l
}

func (p *Presenter) nav(req *Request, active i18n.Section) []NavLink {
	items := p.catalog.Nav(req.Locale)
	out := make([]NavLink, 0, len(items))
	for _, it := range items {
		out = append(out, NavLink{Label: it.Label, Href: it.Href, Active: it.Section == active})
	}
	return out
}

func (p *Presenter) languages(req *Request) []LanguageLink {
	out := make([]LanguageLink, 0, len(domain.Locales()))
	for _, l := range domain.Locales() {
		out = append(out, LanguageLink{
			Code:    l.String(),
			Label:   p.catalog.T(l, "language.name"),
			Href:    i18n.LocalizePath(req.Path, l),
			Current: l == req.Locale,
		})
	}
	return out
}

func (p *Presenter) footer(s *settings.SiteSettings) Footer {
	f := Footer{
		Description: s.SiteDescription,
		Email:       s.ContactEmail,
		Phone:       s.ContactPhone,
		Address:     s.Address,
		Year:        p.now().Year(),
	}
	for _, sl := range []SocialLink{
		{Name: "Facebook", URL: s.SocialMedia.Facebook},
		{Name: "Twitter", URL: s.SocialMedia.Twitter},
		{Name: "LinkedIn", URL: s.SocialMedia.LinkedIn},
		{Name: "Instagram", URL: s.SocialMedia.Instagram},
	} {
		if strings.TrimSpace(sl.URL) != "" {
			f.Social = append(f.Social, sl)
		}
	}
	return f
}

func (p *Presenter) richText(req *Request, blocks []domain.Block) template.HTML {
	return portabletext.New(p.imageHTML(req)).Render(blocks)
}

func (p *Presenter) blogCard(req *Request, ps *post.Post) BlogCard {
	return BlogCard{
		Href:    i18n.Path(req.Locale, i18n.SectionBlog, ps.Slug),
		Title:   ps.Title,
		Meta:    postMeta(req.Locale, ps),
		Excerpt: ps.Excerpt,
		Image:   p.image(req, ps.MainImage, ps.Title, blogCardWidth, blogCardHeight, false),
	}
}

// postMeta is the "author • date" byline; either part may be missing.
func postMeta(l domain.Locale, ps *post.Post) string {
	var parts []string
	if ps.Author != "" {
		parts = append(parts, ps.Author)
	}
	if ps.PublishedAt != nil {
		parts = append(parts, i18n.FormatDate(l, *ps.PublishedAt))
	}
	return strings.Join(parts, " • ")
}

func (p *Presenter) price(req *Request, pr *product.Product) string {
	if !pr.HasPrice() {
		return ""
	}
	return i18n.FormatPrice(req.Locale, *pr.Price, product.Currency)
}

func (p *Presenter) productCard(req *Request, pr *product.Product) ProductCard {
	return ProductCard{
		Href:        i18n.Path(req.Locale, i18n.SectionProducts, pr.Slug),
		Name:        pr.Name,
		Price:       p.price(req, pr),
		Description: pr.Description,
		Image:       p.image(req, pr.PrimaryImage(), pr.Name, productCardWidth, productCardHeight, false),
		CTA:         p.t(req, "product.view_details"),
	}
}

// CategoryHref returns the product index filtered by a category.
func CategoryHref(l domain.Locale, slug string) string {
	return i18n.Path(l, i18n.SectionProducts) + "?category=" + url.QueryEscape(slug)
}

func (p *Presenter) categoryCard(req *Request, c *category.Category) CategoryCard {
	return CategoryCard{
		Href:        CategoryHref(req.Locale, c.Slug),
		Name:        c.Name,
		Description: c.Description,
		Image:       p.image(req, c.Image, c.Name, productCardWidth, productCardHeight, false),
	}
}

func (p *Presenter) organization(req *Request) seo.Organization {
	s := p.settings(req)
	var logo string
	if !s.Logo.IsZero() {
		logo = p.image(req, s.Logo, s.SiteName, logoWidth, logoHeight, false).Src
	}
	name := s.SiteName
	if name == "" {
		name = p.opts.SiteName
	}
	return seo.NewOrganization(name, p.opts.BaseURL, logo, s.SocialMedia.Profiles())
}

func (p *Presenter) website(req *Request) seo.WebSite {
	var search string
	if p.opts.SearchPath != "" {
		search = p.url(p.opts.SearchPath)
	}
	name := p.settings(req).SiteName
	if name == "" {
		name = p.opts.SiteName
	}
	return seo.NewWebSite(name, p.opts.BaseURL, search)
}

// Home builds the home page; slide selects the initial carousel slide.
func (p *Presenter) Home(req *Request, home *ports.Home, slide int) *HomeView {
	s := p.settings(req)
	v := &HomeView{
		Layout: p.layout(req, meta{
			section: i18n.SectionHome,
			jsonLD:  []any{p.organization(req), p.website(req)},
		}),
		Carousel:      p.carousel(req, home.Banners, slide),
		CategoryTitle: p.t(req, "home.categories"),
		ProductsHref:  i18n.Path(req.Locale, i18n.SectionProducts),
		BlogHref:      i18n.Path(req.Locale, i18n.SectionBlog),
	}
	if s.CategorySection != nil {
		v.CategoryTitle = s.CategorySection.Title
		v.CategoryDescription = s.CategorySection.Description
	}
	for i := range home.Categories {
		v.Categories = append(v.Categories, p.categoryCard(req, &home.Categories[i]))
	}
	for i := range home.Products {
		v.Products = append(v.Products, p.productCard(req, &home.Products[i]))
	}
	for i := range home.RecentPosts {
		v.Posts = append(v.Posts, p.blogCard(req, &home.RecentPosts[i]))
	}
	return v
}

// Page builds a CMS page. Pages whose slug is a navigation segment mark
// that entry active.
func (p *Presenter) Page(req *Request, pg *page.Page) *PageView {
	section, _ := i18n.SectionOf(pg.Slug)
	var keywords []string
	if pg.SEO != nil {
		keywords = pg.SEO.MetaKeywords
	}
	return &PageView{
		Layout: p.layout(req, meta{
			title:       pg.SEO.TitleOr(pg.Title),
			description: pg.Description(),
			keywords:    keywords,
			image:       ogImageOf(pg.SEO),
			section:     section,
		}),
		Heading: pg.Title,
		Body:    p.richText(req, pg.Content),
	}
}

// Blog builds the blog index.
func (p *Presenter) Blog(req *Request, posts []post.Post) *BlogView {
	heading := p.t(req, "blog.title")
	v := &BlogView{
		Layout:  p.layout(req, meta{title: heading, section: i18n.SectionBlog}),
		Heading: heading,
	}
	for i := range posts {
		v.Posts = append(v.Posts, p.blogCard(req, &posts[i]))
	}
	return v
}

// Post builds a blog post with Article and breadcrumb structured data.
func (p *Presenter) Post(req *Request, ps *post.Post) *PostView {
	canonical := p.url(req.Path)
	blogPath := i18n.Path(req.Locale, i18n.SectionBlog)

	v := &PostView{
		Heading:  ps.Title,
		Meta:     postMeta(req.Locale, ps),
		Excerpt:  ps.Excerpt,
		Body:     p.richText(req, ps.Content),
		BackHref: blogPath,
	}
	var imageURL string
	if !ps.MainImage.IsZero() {
		img := p.image(req, ps.MainImage, ps.Title, detailWidth, detailHeight, true)
		v.Image = &img
		imageURL = img.Src
	}
	for _, c := range ps.Categories {
		v.Categories = append(v.Categories, c.Name)
	}

	var keywords []string
	if ps.SEO != nil {
		keywords = ps.SEO.MetaKeywords
	}
	ogImage := ogImageOf(ps.SEO)
	if ogImage.IsZero() {
		ogImage = ps.MainImage
	}

	v.Layout = p.layout(req, meta{
		title:       ps.SEO.TitleOr(ps.Title),
		description: ps.Description(),
		keywords:    keywords,
		image:       ogImage,
		ogType:      "article",
		section:     i18n.SectionBlog,
		jsonLD: []any{
			seo.NewArticle(ps.Title, ps.Description(), canonical, ps.PublishedAt, ps.Author, imageURL),
			seo.NewBreadcrumbs(
				seo.Crumb{Name: p.t(req, "nav.home"), URL: p.url(i18n.Path(req.Locale, i18n.SectionHome))},
				seo.Crumb{Name: p.t(req, "nav.blog"), URL: p.url(blogPath)},
				seo.Crumb{Name: ps.Title, URL: canonical},
			),
		},
	})
	return v
}

// Products builds the product index with its category filter.
func (p *Presenter) Products(req *Request, c *ports.Catalog) *ProductsView {
	heading := p.t(req, "nav.products")
	if c.Active != nil {
		heading = c.Active.Name
	}

	v := &ProductsView{
		Layout:  p.layout(req, meta{title: heading, section: i18n.SectionProducts}),
		Heading: heading,
		Filters: []FilterLink{{
			Label:  p.t(req, "product.all_categories"),
			Href:   i18n.Path(req.Locale, i18n.SectionProducts),
			Active: c.Active == nil,
		}},
	}
	for i := range c.Categories {
		cat := &c.Categories[i]
		v.Filters = append(v.Filters, FilterLink{
			Label:  cat.Name,
			Href:   CategoryHref(req.Locale, cat.Slug),
			Active: c.Active != nil && c.Active.Slug == cat.Slug,
		})
	}
	for i := range c.Products {
		v.Products = append(v.Products, p.productCard(req, &c.Products[i]))
	}
	return v
}

// Product builds a product page with Product and breadcrumb structured data.
func (p *Presenter) Product(req *Request, pr *product.Product) *ProductView {
	canonical := p.url(req.Path)
	productsPath := i18n.Path(req.Locale, i18n.SectionProducts)
	description := pr.SEO.DescriptionOr(pr.Description)

	v := &ProductView{
		Heading:        pr.Name,
		Price:          p.price(req, pr),
		Description:    pr.Description,
		Specifications: pr.Specifications,
		Features:       pr.Features,
		Body:           p.richText(req, pr.Content),
		BackHref:       productsPath,
	}
	for i := range pr.Images {
		v.Images = append(v.Images, p.image(req, &pr.Images[i], pr.Name, detailWidth, detailHeight, i == 0))
	}
	if pr.Category != nil && pr.Category.Slug != "" {
		v.Category = &FilterLink{Label: pr.Category.Name, Href: CategoryHref(req.Locale, pr.Category.Slug)}
	}

	var imageURL string
	if len(v.Images) > 0 {
		imageURL = v.Images[0].Src
	}
	var keywords []string
	if pr.SEO != nil {
		keywords = pr.SEO.MetaKeywords
	}
	ogImage := ogImageOf(pr.SEO)
	if ogImage.IsZero() {
		ogImage = pr.PrimaryImage()
	}

	v.Layout = p.layout(req, meta{
		title:       pr.SEO.TitleOr(pr.Name),
		description: description,
		keywords:    keywords,
		image:       ogImage,
		ogType:      "product",
		section:     i18n.SectionProducts,
		jsonLD: []any{
			seo.NewProduct(pr.Name, description, canonical, pr.Price, imageURL),
			seo.NewBreadcrumbs(
				seo.Crumb{Name: p.t(req, "nav.home"), URL: p.url(i18n.Path(req.Locale, i18n.SectionHome))},
				seo.Crumb{Name: p.t(req, "nav.products"), URL: p.url(productsPath)},
				seo.Crumb{Name: pr.Name, URL: canonical},
			),
		},
	})
	return v
}

// Error builds the error page for an HTTP status. Client errors read as
// "not found"; 502 and 503 as temporarily unavailable.
func (p *Presenter) Error(req *Request, status int) *ErrorView {
	key := "error.internal"
	switch {
	case status < http.StatusInternalServerError:
		key = "error.not_found"
	case status == http.StatusBadGateway || status == http.StatusServiceUnavailable:
		key = "error.unavailable"
	}

	heading := p.t(req, key)
	return &ErrorView{
		Layout:  p.layout(req, meta{title: heading, noIndex: true}),
		Status:  status,
		Heading: heading,
		Body:    p.t(req, key+"_body"),
	}
}

func ogImageOf(s *domain.SEO) *domain.Image {
	if s == nil {
		return nil
	}
	return s.OGImage
}
