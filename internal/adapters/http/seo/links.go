package seo

import (
	"strings"

	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/platform/i18n"
)

// hreflangs holds the region-qualified language codes used in sitemaps.
var hreflangs = map[domain.Locale]string{
	domain.LocaleVI: "vi-VN",
	domain.LocaleEN: "en-US",
}

// HrefLang returns the sitemap hreflang code of a locale.
func HrefLang(l domain.Locale) string {
	if h, ok := hreflangs[l]; ok {
		return h
	}
	return l.String()
}

// Alternate is a link to the same page in another language.
type Alternate struct {
	Lang string
	URL  string
}

// Canonical returns the absolute URL of a site path.
func Canonical(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}

// Alternates returns one link per supported locale for the page at path.
// The locale prefix is swapped and a leading section segment is translated,
// so "/vi/san-pham/x" has the English alternate "/en/products/x".
func Alternates(baseURL, path string) []Alternate {
	out := make([]Alternate, 0, len(domain.Locales()))
	for _, l := range domain.Locales() {
		out = append(out, Alternate{
			Lang: l.String(),
			URL:  Canonical(baseURL, i18n.LocalizePath(path, l)),
		})
	}
	return out
}

// Robots returns the robots.txt body pointing crawlers at the sitemap index.
func Robots(baseURL string) string {
	return "# https://www.robotstxt.org/robotstxt.html\n" +
		"User-agent: *\n" +
		"Allow: /\n" +
		"\n" +
		"Sitemap: " + Canonical(baseURL, "/sitemap-index.xml")
}
