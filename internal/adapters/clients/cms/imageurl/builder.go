// Package imageurl builds image CDN rendition URLs from CMS image fields.
//
// An asset reference such as "image-Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000-jpg"
// maps to
//
//	https://cdn.sanity.io/images/{project}/{dataset}/Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000.jpg
//
// followed by rendition parameters in the order rect, w, h, q, fit, crop.
package imageurl

import (
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/ports"
)

var _ ports.ImageURLBuilder = (*Builder)(nil)

// DefaultBaseURL is the public image CDN.
const DefaultBaseURL = "https://cdn.sanity.io"

var assetRefPattern = regexp.MustCompile(`^image-([a-zA-Z0-9]+)-(\d+)x(\d+)-([a-z0-9]+)$`)

// Builder turns image references into rendition URLs for one project and
// dataset.
type Builder struct {
	baseURL   string
	projectID string
	dataset   string
}

// New creates a Builder. An empty baseURL selects DefaultBaseURL.
func New(baseURL, projectID, dataset string) *Builder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Builder{
		baseURL:   strings.TrimRight(baseURL, "/"),
		projectID: projectID,
		dataset:   dataset,
	}
}

// asset is a parsed asset reference.
type asset struct {
	id     string
	width  int
	height int
	format string
}

func parseAssetRef(ref string) (asset, error) {
	m := assetRefPattern.FindStringSubmatch(ref)
	if m == nil {
		return asset{}, fmt.Errorf("malformed image asset reference %q: %w", ref, domain.ErrValidation)
	}
	w, errW := strconv.Atoi(m[2])
	h, errH := strconv.Atoi(m[3])
	if errW != nil || errH != nil || w == 0 || h == 0 {
		return asset{}, fmt.Errorf("image asset reference %q has invalid dimensions: %w", ref, domain.ErrValidation)
	}
	return asset{id: m[1], width: w, height: h, format: m[4]}, nil
}

// rect is a pixel rectangle in the source image.
type rect struct {
	left, top, width, height int
}

// URL returns the rendition URL for img. A crop mode in t disables the
// crop/hotspot framing; otherwise the editor's crop is applied and, when
// both width and height are requested, the hotspot picks which part of the
// crop fills the target aspect ratio.
func (b *Builder) URL(img domain.Image, t domain.ImageTransform) (string, error) {
	a, err := parseAssetRef(img.AssetRef)
	if err != nil {
		return "", err
	}

	var params []string
	if t.Crop == "" {
		r := fit(a, img.Crop, img.Hotspot, t.Width, t.Height)
		if r.left != 0 || r.top != 0 || r.width != a.width || r.height != a.height {
			params = append(params, fmt.Sprintf("rect=%d,%d,%d,%d", r.left, r.top, r.width, r.height))
		}
	}
	if t.Width > 0 {
		params = append(params, "w="+strconv.Itoa(t.Width))
	}
	if t.Height > 0 {
		params = append(params, "h="+strconv.Itoa(t.Height))
	}
	if t.Quality > 0 {
		params = append(params, "q="+strconv.Itoa(t.Quality))
	}
	if t.Fit != "" {
		params = append(params, "fit="+url.QueryEscape(string(t.Fit)))
	}
	if t.Crop != "" {
		params = append(params, "crop="+url.QueryEscape(string(t.Crop)))
	}

	u := fmt.Sprintf("%s/images/%s/%s/%s-%dx%d.%s",
		b.baseURL, b.projectID, b.dataset, a.id, a.width, a.height, a.format)
	if len(params) > 0 {
		u += "?" + strings.Join(params, "&")
	}
	return u, nil
}

// round matches JavaScript's Math.round, which rounds halves up.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// fit computes the source rectangle for the requested size.
func fit(a asset, c *domain.ImageCrop, h *domain.ImageHotspot, width, height int) rect {
	if c == nil {
		c = &domain.ImageCrop{}
	}
	if h == nil {
		h = &domain.ImageHotspot{X: 0.5, Y: 0.5, Width: 1, Height: 1}
	}
	aw, ah := float64(a.width), float64(a.height)

	cropLeft := round(c.Left * aw)
	cropTop := round(c.Top * ah)
	crop := rect{
		left:   cropLeft,
		top:    cropTop,
		width:  round(aw - c.Right*aw - float64(cropLeft)),
		height: round(ah - c.Bottom*ah - float64(cropTop)),
	}

	if width <= 0 || height <= 0 {
		return crop
	}

	hsLeft := h.X*aw - h.Width*aw/2
	hsRight := h.X*aw + h.Width*aw/2
	hsTop := h.Y*ah - h.Height*ah/2
	hsBottom := h.Y*ah + h.Height*ah/2

	desired := float64(width) / float64(height)
	cropRatio := float64(crop.width) / float64(crop.height)

	if cropRatio > desired {
		// Crop is wider than the target: trim the sides around the hotspot.
		outH := crop.height
		outW := round(float64(outH) * desired)
		top := max(0, crop.top)
		centerX := round((hsRight-hsLeft)/2 + hsLeft)
		left := max(0, round(float64(centerX)-float64(outW)/2))
		if left < crop.left {
			left = crop.left
		} else if left+outW > crop.left+crop.width {
			left = crop.left + crop.width - outW
		}
		return rect{left: left, top: top, width: outW, height: outH}
	}

	// Crop is taller than the target: trim top and bottom.
	outW := crop.width
	outH := round(float64(outW) / desired)
	left := max(0, crop.left)
	centerY := round((hsBottom-hsTop)/2 + hsTop)
	top := max(0, round(float64(centerY)-float64(outH)/2))
	if top < crop.top {
		top = crop.top
	} else if top+outH > crop.top+crop.height {
		top = crop.top + crop.height - outH
	}
	return rect{left: left, top: top, width: outW, height: outH}
}
