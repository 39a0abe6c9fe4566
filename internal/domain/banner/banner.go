// Package banner defines the CMS "heroBanner" document rendered as slides in
// the home page carousel.
package banner

import (
	"fmt"

	"github.com/vinhson/vinhson-web/internal/domain"
)

// HeroBanner is one carousel slide.
type HeroBanner struct {
	ID              string
	Title           string
	Language        domain.Locale
	Subtitle        string
	BackgroundImage *domain.Image
	CTAText         string
	CTALink         string
	Order           int
	IsActive        bool
}

// Validate checks the rules the CMS schema enforces on hero banners.
func (b *HeroBanner) Validate() error {
	f := domain.Fields{}
	f.Require("title", b.Title)
	domain.ValidateLanguage(f, b.Language)
	if b.Order < 0 {
		f["order"] = fmt.Sprintf("must be >= 0, got %d", b.Order)
	}
	return f.Err()
}

// HasCTA reports whether the call-to-action button can be rendered; both the
// text and the link are needed.
func (b *HeroBanner) HasCTA() bool {
	return b.CTAText != "" && b.CTALink != ""
}

// Preview returns the studio list preview: "VI - Order: 1 - subtitle".
func (b *HeroBanner) Preview() domain.DocumentPreview {
	return domain.DocumentPreview{
		Title:    b.Title,
		Subtitle: fmt.Sprintf("%s - Order: %d - %s", b.Language.Upper(), b.Order, b.Subtitle),
	}
}
