// Package product defines the CMS "product" document shown in the catalog.
package product

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vinhson/vinhson-web/internal/domain"
)

// Currency is the ISO 4217 code every catalog price is quoted in.
const Currency = "VND"

// Product is a catalog entry.
type Product struct {
	ID             string
	Name           string
	Slug           string
	Language       domain.Locale
	Description    string
	Images         []domain.Image
	Price          *decimal.Decimal
	Category       *domain.Reference
	Specifications []Specification
	Features       []string
	Content        []domain.Block
	SEO            *domain.SEO
	Status         domain.Status
}

// Specification is a labelled technical attribute.
type Specification struct {
	Label string
	Value string
}

// Validate checks the rules the CMS schema enforces on products.
func (p *Product) Validate() error {
	f := domain.Fields{}
	f.Require("name", p.Name)
	domain.ValidateSlug(f, "slug", p.Slug)
	domain.ValidateLanguage(f, p.Language)
	if p.Price != nil && p.Price.IsNegative() {
		f["price"] = "must not be negative"
	}
	if p.Status != "" && !p.Status.IsValid() {
		f["status"] = fmt.Sprintf("invalid: %q", p.Status)
	}
	return f.Err()
}

// HasPrice reports whether a positive price is set. A zero price is treated
// as "contact us" and never rendered or offered.
func (p *Product) HasPrice() bool {
	return p.Price != nil && p.Price.IsPositive()
}

// PrimaryImage returns the first gallery image, or nil.
func (p *Product) PrimaryImage() *domain.Image {
	if len(p.Images) == 0 {
		return nil
	}
	return &p.Images[0]
}

// Preview returns the studio list preview.
func (p *Product) Preview() domain.DocumentPreview {
	sub := p.Language.Upper()
	if p.HasPrice() {
		sub += fmt.Sprintf(" - %s %s", p.Price.String(), Currency)
	}
	return domain.DocumentPreview{Title: p.Name, Subtitle: sub}
}
