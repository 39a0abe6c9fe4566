// Package domain contains the shared content types used across document
// sub-packages. Document-specific types live in sub-packages (domain/page,
// domain/post, domain/product, domain/category, domain/banner,
// domain/settings). This root package holds sentinel errors, validation
// helpers, locales, publication status, images, SEO metadata, and the
// rich-text block model shared by every document.
package domain
