package views

import (
	"strconv"

	"github.com/vinhson/vinhson-web/internal/domain/banner"
)

// Hero slide rendition size and auto-advance period.
const (
	SlideWidth      = 1920
	SlideHeight     = 600
	SlideIntervalMS = 5000
)

// Carousel is the home page hero slideshow. The server renders the slide
// chosen by ?slide=N; site.js then advances it every SlideIntervalMS.
type Carousel struct {
	Slides     []Slide
	Current    int
	Controls   bool
	IntervalMS int
	PrevHref   string
	NextHref   string
	PrevLabel  string
	NextLabel  string
}

// Slide is one banner of the carousel.
type Slide struct {
	Index    int
	Title    string
	Subtitle string
	Image    Image
	CTAText  string
	CTALink  string
	Active   bool
	DotHref  string
	DotLabel string
}

// WrapIndex maps any integer onto 0..n-1, wrapping in both directions.
// It returns 0 when n is 0.
func WrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

// Next returns the slide after i, wrapping to the first.
func Next(i, n int) int { return WrapIndex(i+1, n) }

// Prev returns the slide before i, wrapping to the last.
func Prev(i, n int) int { return WrapIndex(i-1, n) }

// ParseSlide reads the ?slide query value. Missing or malformed values
// select the first slide; out-of-range values wrap.
func ParseSlide(raw string, n int) int {
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return WrapIndex(i, n)
}

func slideHref(i int) string {
	return "?slide=" + strconv.Itoa(i)
}

// carousel builds the slideshow. It returns nil for zero banners so nothing
// is rendered.
func (p *Presenter) carousel(req *Request, banners []banner.HeroBanner, current int) *Carousel {
	n := len(banners)
	if n == 0 {
		return nil
	}
	current = WrapIndex(current, n)

	c := &Carousel{
		Slides:     make([]Slide, 0, n),
		Current:    current,
		Controls:   n > 1,
		IntervalMS: SlideIntervalMS,
		PrevHref:   slideHref(Prev(current, n)),
		NextHref:   slideHref(Next(current, n)),
		PrevLabel:  p.t(req, "carousel.previous"),
		NextLabel:  p.t(req, "carousel.next"),
	}

	for i := range banners {
		b := &banners[i]
		s := Slide{
			Index:    i,
			Title:    b.Title,
			Subtitle: b.Subtitle,
			Active:   i == current,
			DotHref:  slideHref(i),
			DotLabel: p.t(req, "carousel.goto", i+1),
		}
		if !b.BackgroundImage.IsZero() {
			s.Image = p.image(req, b.BackgroundImage, b.Title, SlideWidth, SlideHeight, i == current)
		}
		if b.HasCTA() {
			s.CTAText = b.CTAText
			s.CTALink = b.CTALink
		}
		c.Slides = append(c.Slides, s)
	}
	return c
}
