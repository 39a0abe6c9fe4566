// Package document implements the Anti-Corruption Layer translators for the
// JSON documents returned by GROQ projections. The DTO shapes follow the
// projections in the cms package's queries, not the full CMS schema.
package document

import (
	"time"

	"github.com/shopspring/decimal"
)

// SlugDTO matches the CMS slug object.
type SlugDTO struct {
	Current string `json:"current"`
}

// ReferenceDTO matches a GROQ reference field (`_ref`).
type ReferenceDTO struct {
	Ref string `json:"_ref"`
}

// ImageDTO matches an image field with optional alt text, caption, crop and
// hotspot.
type ImageDTO struct {
	Key     string        `json:"_key,omitempty"`
	Type    string        `json:"_type,omitempty"`
	Asset   *ReferenceDTO `json:"asset"`
	Alt     string        `json:"alt,omitempty"`
	Caption string        `json:"caption,omitempty"`
	Crop    *CropDTO      `json:"crop,omitempty"`
	Hotspot *HotspotDTO   `json:"hotspot,omitempty"`
}

// CropDTO matches the image crop object.
type CropDTO struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// HotspotDTO matches the image hotspot object.
type HotspotDTO struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SEODTO matches the seo object type.
type SEODTO struct {
	MetaTitle       string    `json:"metaTitle"`
	MetaDescription string    `json:"metaDescription"`
	MetaKeywords    []string  `json:"metaKeywords"`
	OGImage         *ImageDTO `json:"ogImage"`
}

// BlockDTO matches one Portable Text array member. Text blocks use Style,
// ListItem, Level, Children and MarkDefs; image members use the embedded
// image fields.
type BlockDTO struct {
	Key      string       `json:"_key"`
	Type     string       `json:"_type"`
	Style    string       `json:"style"`
	ListItem string       `json:"listItem"`
	Level    int          `json:"level"`
	Children []SpanDTO    `json:"children"`
	MarkDefs []MarkDefDTO `json:"markDefs"`

	Asset   *ReferenceDTO `json:"asset"`
	Alt     string        `json:"alt"`
	Caption string        `json:"caption"`
	Crop    *CropDTO      `json:"crop"`
	Hotspot *HotspotDTO   `json:"hotspot"`
}

// SpanDTO matches a Portable Text span.
type SpanDTO struct {
	Key   string   `json:"_key"`
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks"`
}

// MarkDefDTO matches a Portable Text annotation.
type MarkDefDTO struct {
	Key   string `json:"_key"`
	Type  string `json:"_type"`
	Href  string `json:"href"`
	Blank bool   `json:"blank"`
}

// NamedRefDTO matches the dereferenced `->{name, slug}` projection.
type NamedRefDTO struct {
	ID   string  `json:"_id"`
	Name string  `json:"name"`
	Slug SlugDTO `json:"slug"`
}

// PageDTO matches the page projections.
type PageDTO struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Slug        SlugDTO    `json:"slug"`
	Language    string     `json:"language"`
	Content     []BlockDTO `json:"content"`
	SEO         *SEODTO    `json:"seo"`
	PublishedAt *time.Time `json:"publishedAt"`
	Status      string     `json:"status"`
}

// PostDTO matches the post projections.
type PostDTO struct {
	ID          string        `json:"_id"`
	Title       string        `json:"title"`
	Slug        SlugDTO       `json:"slug"`
	Language    string        `json:"language"`
	Excerpt     string        `json:"excerpt"`
	MainImage   *ImageDTO     `json:"mainImage"`
	Author      string        `json:"author"`
	PublishedAt *time.Time    `json:"publishedAt"`
	Content     []BlockDTO    `json:"content"`
	Categories  []NamedRefDTO `json:"categories"`
	SEO         *SEODTO       `json:"seo"`
	Status      string        `json:"status"`
}

// ProductDTO matches the product projections. Price is decoded as a decimal
// so VND amounts never pass through float64.
type ProductDTO struct {
	ID             string             `json:"_id"`
	Name           string             `json:"name"`
	Slug           SlugDTO            `json:"slug"`
	Language       string             `json:"language"`
	Description    string             `json:"description"`
	Images         []ImageDTO         `json:"images"`
	Price          *decimal.Decimal   `json:"price"`
	Category       *NamedRefDTO       `json:"category"`
	Specifications []SpecificationDTO `json:"specifications"`
	Features       []string           `json:"features"`
	Content        []BlockDTO         `json:"content"`
	SEO            *SEODTO            `json:"seo"`
	Status         string             `json:"status"`
}

// SpecificationDTO matches a product specification row.
type SpecificationDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CategoryDTO matches the categories projection.
type CategoryDTO struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Slug        SlugDTO   `json:"slug"`
	Language    string    `json:"language"`
	Description string    `json:"description"`
	Image       *ImageDTO `json:"image"`
}

// HeroBannerDTO matches the hero banners projection. isActive is filtered
// in the query and therefore not projected.
type HeroBannerDTO struct {
	ID              string    `json:"_id"`
	Title           string    `json:"title"`
	Subtitle        string    `json:"subtitle"`
	BackgroundImage *ImageDTO `json:"backgroundImage"`
	CTAText         string    `json:"ctaText"`
	CTALink         string    `json:"ctaLink"`
	Order           int       `json:"order"`
}

// SiteSettingsDTO matches the site settings projection.
type SiteSettingsDTO struct {
	SiteName        string              `json:"siteName"`
	SiteDescription string              `json:"siteDescription"`
	Logo            *ImageDTO           `json:"logo"`
	ContactEmail    string              `json:"contactEmail"`
	ContactPhone    string              `json:"contactPhone"`
	Address         string              `json:"address"`
	SocialMedia     *SocialMediaDTO     `json:"socialMedia"`
	CategorySection *CategorySectionDTO `json:"categorySection"`
	SEO             *SEODTO             `json:"seo"`
}

// SocialMediaDTO matches the siteSettings socialMedia object.
type SocialMediaDTO struct {
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

// CategorySectionDTO matches the siteSettings categorySection object.
type CategorySectionDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
