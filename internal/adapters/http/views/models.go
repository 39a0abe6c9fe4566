package views

import (
	"html/template"

	"github.com/vinhson/vinhson-web/internal/adapters/http/seo"
	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/domain/product"
)

// Layout is the page chrome shared by every page: head metadata,
// navigation, language switch, footer and the preview banner. Page views
// embed it, so templates reach its fields and T directly.
type Layout struct {
	Locale      domain.Locale
	Title       string
	Description string
	Keywords    string
	Canonical   string
	Alternates  []seo.Alternate
	XDefault    string
	NoIndex     bool
	OG          OpenGraph
	JSONLD      []template.JS
	SiteName    string
	HomeHref    string
	Logo        Image
	Nav         []NavLink
	Languages   []LanguageLink
	Footer      Footer
	Preview     bool
	ExitPreview string

	t func(key string, args ...any) string
}

// T translates key into the page locale.
func (l *Layout) T(key string, args ...any) string {
	if l.t == nil {
		return key
	}
	return l.t(key, args...)
}

// OpenGraph holds the og:* meta tags.
type OpenGraph struct {
	Type        string
	Title       string
	Description string
	URL         string
	Image       string
	SiteName    string
	Locale      string
}

// NavLink is a navigation menu entry.
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// LanguageLink points at the current page in another locale.
type LanguageLink struct {
	Code    string
	Label   string
	Href    string
	Current bool
}

// Footer holds the contact details and social links.
type Footer struct {
	Description string
	Email       string
	Phone       string
	Address     string
	Social      []SocialLink
	Year        int
}

// SocialLink is a social network profile.
type SocialLink struct {
	Name string
	URL  string
}

// BlogCard previews a post in lists.
type BlogCard struct {
	Href    string
	Title   string
	Meta    string
	Excerpt string
	Image   Image
}

// ProductCard previews a product in lists.
type ProductCard struct {
	Href        string
	Name        string
	Price       string
	Description string
	Image       Image
	CTA         string
}

// CategoryCard links to the catalog filtered by one category.
type CategoryCard struct {
	Href        string
	Name        string
	Description string
	Image       Image
}

// FilterLink is a category filter on the product index.
type FilterLink struct {
	Label  string
	Href   string
	Active bool
}

// HomeView is the home page.
type HomeView struct {
	*Layout
	Carousel            *Carousel
	CategoryTitle       string
	CategoryDescription string
	Categories          []CategoryCard
	Products            []ProductCard
	Posts               []BlogCard
	ProductsHref        string
	BlogHref            string
}

// PageView is a CMS page.
type PageView struct {
	*Layout
	Heading string
	Body    template.HTML
}

// BlogView is the blog index.
type BlogView struct {
	*Layout
	Heading string
	Posts   []BlogCard
}

// PostView is a blog post.
type PostView struct {
	*Layout
	Heading    string
	Meta       string
	Image      *Image
	Excerpt    string
	Body       template.HTML
	Categories []string
	BackHref   string
}

// ProductsView is the product index.
type ProductsView struct {
	*Layout
	Heading  string
	Filters  []FilterLink
	Products []ProductCard
}

// ProductView is a product detail page.
type ProductView struct {
	*Layout
	Heading        string
	Price          string
	Description    string
	Images         []Image
	Category       *FilterLink
	Specifications []product.Specification
	Features       []string
	Body           template.HTML
	BackHref       string
}

// ErrorView is the localized error page.
type ErrorView struct {
	*Layout
	Status  int
	Heading string
	Body    string
}
