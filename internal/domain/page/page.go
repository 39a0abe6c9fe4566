// Package page defines the CMS "page" document: free-form bilingual content
// addressed by slug (about, services, contact, ...).
package page

import (
	"fmt"
	"strings"
	"time"

	"github.com/vinhson/vinhson-web/internal/domain"
)

// Page is a standalone content page.
type Page struct {
	ID          string
	Title       string
	Slug        string
	Language    domain.Locale
	Content     []domain.Block
	SEO         *domain.SEO
	PublishedAt *time.Time
	Status      domain.Status
}

// Validate checks the rules the CMS schema enforces on pages.
func (p *Page) Validate() error {
	f := domain.Fields{}
	f.Require("title", p.Title)
	domain.ValidateSlug(f, "slug", p.Slug)
	domain.ValidateLanguage(f, p.Language)
	if p.Status != "" && !p.Status.IsValid() {
		f["status"] = fmt.Sprintf("invalid: %q", p.Status)
	}
	return f.Err()
}

// Preview returns the studio list preview: the title over "VI - published".
func (p *Page) Preview() domain.DocumentPreview {
	return domain.DocumentPreview{
		Title:    p.Title,
		Subtitle: fmt.Sprintf("%s - %s", p.Language.Upper(), p.Status),
	}
}

// maxDescriptionRunes bounds the description derived from page content.
const maxDescriptionRunes = 160

// Description returns the meta description: the SEO override when set,
// otherwise the start of the page text cut at a word boundary.
func (p *Page) Description() string {
	if d := p.SEO.DescriptionOr(""); d != "" {
		return d
	}
	text := strings.Join(strings.Fields(domain.PlainText(p.Content)), " ")
	runes := []rune(text)
	if len(runes) <= maxDescriptionRunes {
		return text
	}
	cut := string(runes[:maxDescriptionRunes])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
