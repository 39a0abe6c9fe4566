package domain

// Image references a CMS image asset together with the editor-chosen crop
// and hotspot. Crop edges and hotspot values are fractions of the original
// image dimensions.
type Image struct {
	AssetRef string
	Alt      string
	Caption  string
	Crop     *ImageCrop
	Hotspot  *ImageHotspot
}

// ImageCrop holds the fraction trimmed from each edge.
type ImageCrop struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// ImageHotspot marks the region that must stay visible when cropping.
type ImageHotspot struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// IsZero reports whether the image has no asset to render.
func (i *Image) IsZero() bool {
	return i == nil || i.AssetRef == ""
}

// AltOr returns the alternative text, or fallback when none was authored.
func (i *Image) AltOr(fallback string) string {
	if i == nil || i.Alt == "" {
		return fallback
	}
	return i.Alt
}

// ImageFit controls how the image is resized into the requested box.
type ImageFit string

const (
	FitClip    ImageFit = "clip"
	FitCrop    ImageFit = "crop"
	FitFill    ImageFit = "fill"
	FitFillMax ImageFit = "fillmax"
	FitMax     ImageFit = "max"
	FitScale   ImageFit = "scale"
	FitMin     ImageFit = "min"
)

// ImageCropMode selects the anchor used when fit is crop.
type ImageCropMode string

const (
	CropTop        ImageCropMode = "top"
	CropBottom     ImageCropMode = "bottom"
	CropLeft       ImageCropMode = "left"
	CropRight      ImageCropMode = "right"
	CropCenter     ImageCropMode = "center"
	CropFocalPoint ImageCropMode = "focalpoint"
	CropEntropy    ImageCropMode = "entropy"
)

// ImageTransform describes the rendition requested from the image CDN.
// Zero values are omitted from the generated URL.
type ImageTransform struct {
	Width   int
	Height  int
	Quality int
	Fit     ImageFit
	Crop    ImageCropMode
}
