// Package post defines the CMS "post" document used by the blog.
package post

import (
	"fmt"
	"time"

	"github.com/vinhson/vinhson-web/internal/domain"
)

// Post is a blog article.
type Post struct {
	ID          string
	Title       string
	Slug        string
	Language    domain.Locale
	Excerpt     string
	MainImage   *domain.Image
	Author      string
	PublishedAt *time.Time
	Content     []domain.Block
	Categories  []domain.Reference
	SEO         *domain.SEO
	Status      domain.Status
}

// Validate checks the rules the CMS schema enforces on posts.
func (p *Post) Validate() error {
	f := domain.Fields{}
	f.Require("title", p.Title)
	domain.ValidateSlug(f, "slug", p.Slug)
	domain.ValidateLanguage(f, p.Language)
	if p.Status != "" && !p.Status.IsValid() {
		f["status"] = fmt.Sprintf("invalid: %q", p.Status)
	}
	return f.Err()
}

// Preview returns the studio list preview.
func (p *Post) Preview() domain.DocumentPreview {
	sub := p.Language.Upper()
	if p.Author != "" {
		sub += " - " + p.Author
	}
	return domain.DocumentPreview{Title: p.Title, Subtitle: sub}
}

// Description returns the text used for meta descriptions: the SEO
// description, then the excerpt.
func (p *Post) Description() string {
	return p.SEO.DescriptionOr(p.Excerpt)
}
