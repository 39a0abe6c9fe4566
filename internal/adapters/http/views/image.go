package views

import (
	"html/template"
	"log/slog"

	"github.com/vinhson/vinhson-web/internal/domain"
)

// imageQuality is the JPEG/WebP quality requested for every rendition.
const imageQuality = 85

// Image is an <img> element, or the placeholder shown in its place when the
// source is missing or its URL cannot be built. The placeholder text is also
// carried on rendered images so site.js can swap it in when loading fails.
type Image struct {
	Src         string
	Alt         string
	Width       int
	Height      int
	Loading     string
	Placeholder string
}

// OK reports whether there is a source to load.
func (i Image) OK() bool {
	return i.Src != ""
}

// transform returns the rendition used by site images: fit crop at the
// requested size. The center anchor is only requested for images without
// editor framing, since a crop mode disables crop and hotspot.
func transform(img *domain.Image, width, height int) domain.ImageTransform {
	t := domain.ImageTransform{
		Width:   width,
		Height:  height,
		Quality: imageQuality,
		Fit:     domain.FitCrop,
	}
	if img.Crop == nil && img.Hotspot == nil {
		t.Crop = domain.CropCenter
	}
	return t
}

// image builds the Image for a CMS image. Priority images load eagerly.
func (p *Presenter) image(req *Request, img *domain.Image, alt string, width, height int, priority bool) Image {
	out := Image{
		Alt:         img.AltOr(alt),
		Width:       width,
		Height:      height,
		Loading:     "lazy",
		Placeholder: p.t(req, "image.unavailable"),
	}
	if priority {
		out.Loading = "eager"
	}
	if img.IsZero() {
		return out
	}

	src, err := p.images.URL(*img, transform(img, width, height))
	if err != nil {
		p.logger.Warn("image url not built",
			slog.String("asset", img.AssetRef),
			slog.Any("error", err),
		)
		return out
	}
	out.Src = src
	return out
}

// imageHTML renders an Image through the shared "image" template, for the
// rich-text renderer.
func (p *Presenter) imageHTML(req *Request) func(img *domain.Image, width, height int) template.HTML {
	return func(img *domain.Image, width, height int) template.HTML {
		html, err := p.renderer.Fragment("image", p.image(req, img, "", width, height, false))
		if err != nil {
			p.logger.Error("failed to render image", slog.Any("error", err))
			return ""
		}
		return html
	}
}
