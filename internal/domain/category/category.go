// Package category defines the CMS "category" document that groups products.
package category

import "github.com/vinhson/vinhson-web/internal/domain"

// Category groups products on the catalog page.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Language    domain.Locale
	Description string
	Image       *domain.Image
}

// Validate checks the rules the CMS schema enforces on categories.
func (c *Category) Validate() error {
	f := domain.Fields{}
	f.Require("name", c.Name)
	domain.ValidateSlug(f, "slug", c.Slug)
	domain.ValidateLanguage(f, c.Language)
	return f.Err()
}

// Preview returns the studio list preview.
func (c *Category) Preview() domain.DocumentPreview {
	return domain.DocumentPreview{Title: c.Name, Subtitle: c.Language.Upper()}
}

// FindBySlug returns the category with the given slug, or nil.
func FindBySlug(categories []Category, slug string) *Category {
	for i := range categories {
		if categories[i].Slug == slug {
			return &categories[i]
		}
	}
	return nil
}
