package i18n

import (
	"strings"

	"github.com/vinhson/vinhson-web/internal/domain"
)

// Section is a top-level area of the site reachable from the navigation.
type Section string

const (
	SectionHome     Section = "home"
	SectionAbout    Section = "about"
	SectionProducts Section = "products"
	SectionServices Section = "services"
	SectionBlog     Section = "blog"
	SectionContact  Section = "contact"
)

// navSections lists the navigation entries in menu order.
var navSections = []Section{
	SectionHome, SectionAbout, SectionProducts, SectionServices, SectionBlog, SectionContact,
}

// segments maps each section to its URL segment per locale. English uses the
// section name itself.
var segments = map[domain.Locale]map[Section]string{
	domain.LocaleVI: {
		SectionAbout:    "gioi-thieu",
		SectionProducts: "san-pham",
		SectionServices: "dich-vu",
		SectionBlog:     "tin-tuc",
		SectionContact:  "lien-he",
	},
	domain.LocaleEN: {
		SectionAbout:    "about",
		SectionProducts: "products",
		SectionServices: "services",
		SectionBlog:     "blog",
		SectionContact:  "contact",
	},
}

// Segment returns the URL segment of a section in the locale. The home
// section has no segment.
func Segment(l domain.Locale, s Section) string {
	return segments[l][s]
}

// SectionOf resolves a URL segment in any supported locale.
func SectionOf(segment string) (Section, bool) {
	for _, l := range domain.Locales() {
		for s, seg := range segments[l] {
			if seg == segment {
				return s, true
			}
		}
	}
	return "", false
}

// Path builds the site-relative URL of a section in the locale, optionally
// followed by a document slug: Path(vi, SectionProducts, "may-bom") is
// "/vi/san-pham/may-bom".
func Path(l domain.Locale, s Section, slug ...string) string {
	parts := []string{"", l.String()}
	if seg := Segment(l, s); seg != "" {
		parts = append(parts, seg)
	}
	for _, p := range slug {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "/")
}

// StripLocale removes a leading "/vi" or "/en" segment from a path. The
// result always starts with "/" or is empty for the locale root.
func StripLocale(path string) string {
	for _, l := range domain.Locales() {
		prefix := "/" + l.String()
		if path == prefix {
			return ""
		}
		if strings.HasPrefix(path, prefix+"/") {
			return path[len(prefix):]
		}
	}
	return path
}

// LocalizePath rewrites a site path for another locale: the locale prefix is
// replaced and a leading section segment is translated, so
// "/vi/tin-tuc/bai-viet" becomes "/en/blog/bai-viet". Document slugs are
// left as they are.
func LocalizePath(path string, to domain.Locale) string {
	rest := StripLocale(path)
	if rest == "" || rest == "/" {
		return "/" + to.String()
	}

	first, tail, _ := strings.Cut(strings.TrimPrefix(rest, "/"), "/")
	if s, ok := SectionOf(first); ok {
		first = Segment(to, s)
	}

	out := "/" + to.String() + "/" + first
	if tail != "" {
		out += "/" + tail
	}
	return out
}

// NavItem is one navigation menu entry.
type NavItem struct {
	Section Section
	Label   string
	Href    string
}

// Nav returns the translated navigation menu for the locale.
func (c *Catalog) Nav(l domain.Locale) []NavItem {
	p := c.Printer(l)
	items := make([]NavItem, 0, len(navSections))
	for _, s := range navSections {
		items = append(items, NavItem{
			Section: s,
			Label:   p.Sprintf("nav." + string(s)),
			Href:    Path(l, s),
		})
	}
	return items
}
