package domain

import (
	"fmt"
	"strings"
)

// Locale is the content language of a CMS document.
type Locale string

const (
	LocaleVI Locale = "vi"
	LocaleEN Locale = "en"
)

// DefaultLocale is used when a request or document carries no usable language.
const DefaultLocale = LocaleVI

// Locales lists every supported locale in display order.
func Locales() []Locale {
	return []Locale{LocaleVI, LocaleEN}
}

// IsValid returns true if the locale is one of the defined constants.
func (l Locale) IsValid() bool {
	switch l {
	case LocaleVI, LocaleEN:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (l Locale) String() string {
	return string(l)
}

// Upper returns the upper-cased code used in studio previews ("VI", "EN").
func (l Locale) Upper() string {
	return strings.ToUpper(string(l))
}

// ParseLocale converts a raw value into a Locale. Matching is
// case-insensitive; unsupported values return an ErrValidation error.
func ParseLocale(raw string) (Locale, error) {
	l := Locale(strings.ToLower(strings.TrimSpace(raw)))
	if !l.IsValid() {
		return "", fmt.Errorf("unsupported locale %q: %w", raw, ErrValidation)
	}
	return l, nil
}

// LocaleOrDefault parses raw and falls back to DefaultLocale.
func LocaleOrDefault(raw string) Locale {
	l, err := ParseLocale(raw)
	if err != nil {
		return DefaultLocale
	}
	return l
}
