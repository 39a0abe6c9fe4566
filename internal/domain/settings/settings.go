// Package settings defines the per-locale "siteSettings" singleton document.
package settings

import (
	"fmt"
	"strings"

	"github.com/vinhson/vinhson-web/internal/domain"
)

// SiteSettings holds site-wide branding, contact details and default SEO.
type SiteSettings struct {
	Language        domain.Locale
	SiteName        string
	SiteDescription string
	Logo            *domain.Image
	ContactEmail    string
	ContactPhone    string
	Address         string
	SocialMedia     SocialMedia
	CategorySection *CategorySection
	SEO             *domain.SEO
}

// SocialMedia holds profile URLs; empty values are omitted everywhere.
type SocialMedia struct {
	Facebook  string
	Twitter   string
	LinkedIn  string
	Instagram string
}

// Profiles returns the non-empty profile URLs in a stable order.
func (s SocialMedia) Profiles() []string {
	out := make([]string, 0, 4)
	for _, u := range []string{s.Facebook, s.Twitter, s.LinkedIn, s.Instagram} {
		if strings.TrimSpace(u) != "" {
			out = append(out, u)
		}
	}
	return out
}

// CategorySection is the heading block above the home page category grid.
type CategorySection struct {
	Title       string
	Description string
}

// Validate checks the rules the CMS schema enforces on site settings.
func (s *SiteSettings) Validate() error {
	f := domain.Fields{}
	domain.ValidateLanguage(f, s.Language)
	f.Require("siteName", s.SiteName)
	if s.CategorySection != nil {
		f.Require("categorySection.title", s.CategorySection.Title)
		f.Require("categorySection.description", s.CategorySection.Description)
	}
	return f.Err()
}

// Preview returns the studio list preview: "Site Settings - VI" over the site name.
func (s *SiteSettings) Preview() domain.DocumentPreview {
	return domain.DocumentPreview{
		Title:    fmt.Sprintf("Site Settings - %s", s.Language.Upper()),
		Subtitle: s.SiteName,
	}
}

// Fallback returns minimal settings for a locale whose settings document has
// not been authored yet, so pages still render.
func Fallback(l domain.Locale, siteName string) *SiteSettings {
	return &SiteSettings{Language: l, SiteName: siteName}
}
