package domain

// SEO holds per-document search metadata authored in the CMS.
type SEO struct {
	MetaTitle       string
	MetaDescription string
	MetaKeywords    []string
	OGImage         *Image
}

// TitleOr returns the meta title, or fallback when none was authored.
func (s *SEO) TitleOr(fallback string) string {
	if s == nil || s.MetaTitle == "" {
		return fallback
	}
	return s.MetaTitle
}

// DescriptionOr returns the meta description, or fallback when none was authored.
func (s *SEO) DescriptionOr(fallback string) string {
	if s == nil || s.MetaDescription == "" {
		return fallback
	}
	return s.MetaDescription
}
