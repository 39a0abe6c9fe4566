package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxSlugLength is the longest slug the CMS generates from a title.
const MaxSlugLength = 96

// ValidateSlug records slug problems for the named field.
func ValidateSlug(f Fields, name, slug string) {
	switch {
	case strings.TrimSpace(slug) == "":
		f[name] = MsgRequired
	case utf8.RuneCountInString(slug) > MaxSlugLength:
		f[name] = fmt.Sprintf("%s (max %d characters)", MsgTooLong, MaxSlugLength)
	}
}

// ValidateLanguage records a problem when the document language is missing or unsupported.
func ValidateLanguage(f Fields, l Locale) {
	switch {
	case l == "":
		f["language"] = MsgRequired
	case !l.IsValid():
		f["language"] = fmt.Sprintf("invalid: %q", l)
	}
}

// Reference is a lightweight pointer to another document, projected with the
// fields list views need.
type Reference struct {
	ID   string
	Name string
	Slug string
}

// DocumentPreview is the title/subtitle pair shown in studio document lists.
type DocumentPreview struct {
	Title    string
	Subtitle string
}
