// Package i18n holds the site's translations, language negotiation, localized
// route segments and locale-aware formatting for dates and prices.
//
// Catalogs are YAML files embedded from locales/, one per supported locale,
// loaded through koanf and compiled into an x/text message catalog:
//
//	cat, err := i18n.Load()
//	p := cat.Printer(domain.LocaleVI)
//	p.Sprintf("nav.home") // "Trang chủ"
package i18n

import (
	"embed"
	"fmt"
	"sort"

	"github.com/knadh/koanf/parsers/yaml"
	kfs "github.com/knadh/koanf/providers/fs"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/vinhson/vinhson-web/internal/domain"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// Tag returns the language tag for a locale. Unsupported locales map to the
// default locale's tag.
func Tag(l domain.Locale) language.Tag {
	switch l {
	case domain.LocaleEN:
		return language.English
	case domain.LocaleVI:
		return language.Vietnamese
	default:
		return Tag(domain.DefaultLocale)
	}
}

// matcher prefers the default locale, so it must be listed first.
var matcher = language.NewMatcher([]language.Tag{language.Vietnamese, language.English})

// Negotiate picks the best supported locale for an Accept-Language header.
// Empty or unparseable headers yield the default locale.
func Negotiate(acceptLanguage string) domain.Locale {
	if acceptLanguage == "" {
		return domain.DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return domain.DefaultLocale
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return domain.DefaultLocale
	}
	return domain.Locales()[idx]
}

// Catalog holds the compiled translations for every supported locale.
type Catalog struct {
	builder *catalog.Builder
	keys    map[domain.Locale][]string
}

// Load reads the embedded locale files.
func Load() (*Catalog, error) {
	c := &Catalog{
		builder: catalog.NewBuilder(catalog.Fallback(Tag(domain.DefaultLocale))),
		keys:    make(map[domain.Locale][]string, len(domain.Locales())),
	}

	for _, l := range domain.Locales() {
		k := koanf.New(".")
		path := fmt.Sprintf("locales/%s.yaml", l)
		if err := k.Load(kfs.Provider(localesFS, path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading catalog %s: %w", path, err)
		}

		keys := k.Keys()
		sort.Strings(keys)
		for _, key := range keys {
			if err := c.builder.SetString(Tag(l), key, k.String(key)); err != nil {
				return nil, fmt.Errorf("catalog %s: key %q: %w", path, key, err)
			}
		}
		c.keys[l] = keys
	}

	if err := c.checkParity(); err != nil {
		return nil, err
	}
	return c, nil
}

// checkParity makes sure every locale translates the same keys, so a missing
// translation fails at startup instead of rendering a raw key.
func (c *Catalog) checkParity() error {
	base := c.keys[domain.DefaultLocale]
	for _, l := range domain.Locales() {
		if l == domain.DefaultLocale {
			continue
		}
		if fmt.Sprint(c.keys[l]) != fmt.Sprint(base) {
			return fmt.Errorf("catalog %s: keys differ from %s", l, domain.DefaultLocale)
		}
	}
	return nil
}

// Printer returns a message printer for the locale.
func (c *Catalog) Printer(l domain.Locale) *message.Printer {
	return message.NewPrinter(Tag(l), message.Catalog(c.builder))
}

// T translates key for the locale, formatting args into the message.
func (c *Catalog) T(l domain.Locale, key string, args ...any) string {
	return c.Printer(l).Sprintf(key, args...)
}
