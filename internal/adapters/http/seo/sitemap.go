package seo

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/ports"
)

const (
	sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xhtmlNS   = "http://www.w3.org/1999/xhtml"

	// SitemapFile is the single sitemap listed in the index.
	SitemapFile = "/sitemap-0.xml"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string      `xml:"loc"`
	LastMod string      `xml:"lastmod,omitempty"`
	Links   []xhtmlLink `xml:"xhtml:link"`
}

type xhtmlLink struct {
	Rel      string `xml:"rel,attr"`
	HrefLang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

type sitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	XMLNS    string       `xml:"xmlns,attr"`
	Sitemaps []sitemapRef `xml:"sitemap"`
}

type sitemapRef struct {
	Loc string `xml:"loc"`
}

// WriteSitemap writes a sitemap with one <url> per localized path. Every
// url lists all language versions of the document as xhtml:link alternates.
func WriteSitemap(w io.Writer, baseURL string, entries []ports.SitemapEntry) error {
	set := urlSet{XMLNS: sitemapNS, XHTML: xhtmlNS}

	for _, e := range entries {
		var links []xhtmlLink
		for _, l := range domain.Locales() {
			if p, ok := e.Paths[l]; ok {
				links = append(links, xhtmlLink{
					Rel:      "alternate",
					HrefLang: HrefLang(l),
					Href:     Canonical(baseURL, p),
				})
			}
		}

		var lastMod string
		if e.LastMod != nil {
			lastMod = e.LastMod.UTC().Format("2006-01-02T15:04:05.000Z")
		}

		for _, l := range domain.Locales() {
			p, ok := e.Paths[l]
			if !ok {
				continue
			}
			set.URLs = append(set.URLs, sitemapURL{
				Loc:     Canonical(baseURL, p),
				LastMod: lastMod,
				Links:   links,
			})
		}
	}

	return encodeXML(w, set)
}

// WriteSitemapIndex writes the index listing the site's sitemap files.
func WriteSitemapIndex(w io.Writer, baseURL string) error {
	return encodeXML(w, sitemapIndex{
		XMLNS:    sitemapNS,
		Sitemaps: []sitemapRef{{Loc: Canonical(baseURL, SitemapFile)}},
	})
}

func encodeXML(w io.Writer, v any) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing xml header: %w", err)
	}
	if err := xml.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("encoding sitemap: %w", err)
	}
	return nil
}
