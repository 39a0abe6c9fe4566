// Package seo builds the search metadata the site publishes: schema.org
// JSON-LD objects, canonical and alternate-language links, robots.txt and
// the XML sitemaps.
package seo

import (
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vinhson/vinhson-web/internal/domain/product"
)

const schemaContext = "https://schema.org"

// Organization describes the company behind the site.
type Organization struct {
	Context string   `json:"@context"`
	Type    string   `json:"@type"`
	Name    string   `json:"name"`
	URL     string   `json:"url"`
	Logo    string   `json:"logo"`
	SameAs  []string `json:"sameAs"`
}

// NewOrganization builds the Organization object. An empty logo defaults to
// {siteURL}/logo.png; profiles are the non-empty social profile URLs.
func NewOrganization(name, siteURL, logo string, profiles []string) Organization {
	if logo == "" {
		logo = siteURL + "/logo.png"
	}
	if profiles == nil {
		profiles = []string{}
	}
	return Organization{
		Context: schemaContext,
		Type:    "Organization",
		Name:    name,
		URL:     siteURL,
		Logo:    logo,
		SameAs:  profiles,
	}
}

// WebSite describes the site, with an optional search entry point.
type WebSite struct {
	Context         string        `json:"@context"`
	Type            string        `json:"@type"`
	Name            string        `json:"name"`
	URL             string        `json:"url"`
	PotentialAction *SearchAction `json:"potentialAction,omitempty"`
}

// SearchAction lets search engines offer a site search box.
type SearchAction struct {
	Type       string     `json:"@type"`
	Target     EntryPoint `json:"target"`
	QueryInput string     `json:"query-input"`
}

// EntryPoint is the URL template of a SearchAction.
type EntryPoint struct {
	Type        string `json:"@type"`
	URLTemplate string `json:"urlTemplate"`
}

// NewWebSite builds the WebSite object. The SearchAction is attached only
// when searchURL is set.
func NewWebSite(name, siteURL, searchURL string) WebSite {
	ws := WebSite{
		Context: schemaContext,
		Type:    "WebSite",
		Name:    name,
		URL:     siteURL,
	}
	if searchURL != "" {
		ws.PotentialAction = &SearchAction{
			Type: "SearchAction",
			Target: EntryPoint{
				Type:        "EntryPoint",
				URLTemplate: searchURL + "?q={search_term_string}",
			},
			QueryInput: "required name=search_term_string",
		}
	}
	return ws
}

// Article describes a blog post.
type Article struct {
	Context       string  `json:"@context"`
	Type          string  `json:"@type"`
	Headline      string  `json:"headline"`
	Description   string  `json:"description"`
	URL           string  `json:"url"`
	DatePublished string  `json:"datePublished,omitempty"`
	Author        *Person `json:"author,omitempty"`
	Image         string  `json:"image,omitempty"`
}

// Person is the author of an Article.
type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// NewArticle builds the Article object for a post.
func NewArticle(title, description, url string, publishedAt *time.Time, author, image string) Article {
	a := Article{
		Context:     schemaContext,
		Type:        "Article",
		Headline:    title,
		Description: description,
		URL:         url,
		Image:       image,
	}
	if publishedAt != nil {
		a.DatePublished = publishedAt.UTC().Format(time.RFC3339)
	}
	if author != "" {
		a.Author = &Person{Type: "Person", Name: author}
	}
	return a
}

// Product describes a catalog item.
type Product struct {
	Context     string `json:"@context"`
	Type        string `json:"@type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Image       string `json:"image,omitempty"`
	Offers      *Offer `json:"offers,omitempty"`
}

// Offer carries the product price.
type Offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
}

// NewProduct builds the Product object. The Offer is attached only for a
// positive price.
func NewProduct(name, description, url string, price *decimal.Decimal, image string) Product {
	p := Product{
		Context:     schemaContext,
		Type:        "Product",
		Name:        name,
		Description: description,
		URL:         url,
		Image:       image,
	}
	if price != nil && price.IsPositive() {
		p.Offers = &Offer{
			Type:          "Offer",
			Price:         price.String(),
			PriceCurrency: product.Currency,
		}
	}
	return p
}

// Crumb is one step of a breadcrumb trail.
type Crumb struct {
	Name string
	URL  string
}

// BreadcrumbList is the navigation trail to a page.
type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// ListItem is one positioned entry of a BreadcrumbList.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// NewBreadcrumbs builds a BreadcrumbList; positions start at 1.
func NewBreadcrumbs(crumbs ...Crumb) BreadcrumbList {
	items := make([]ListItem, 0, len(crumbs))
	for i, c := range crumbs {
		items = append(items, ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     c.Name,
			Item:     c.URL,
		})
	}
	return BreadcrumbList{
		Context:         schemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: items,
	}
}

// Script encodes v for a <script type="application/ld+json"> element.
// encoding/json escapes <, > and &, so the output cannot close the script.
func Script(v any) (template.JS, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding json-ld: %w", err)
	}
	return template.JS(b), nil //nolint:gosec // marshaled JSON with HTML escaping
}
