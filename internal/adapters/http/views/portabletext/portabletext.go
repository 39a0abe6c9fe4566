// Package portabletext renders CMS rich-text block arrays to HTML.
//
// Text blocks map to headings, paragraphs and blockquotes by style;
// consecutive list items are grouped into <ul>/<ol> elements and nested by
// level. Image blocks are rendered through the caller's ImageFunc. Block
// types the renderer does not know are skipped.
package portabletext

import (
	"html/template"
	"net/url"
	"strings"

	"github.com/vinhson/vinhson-web/internal/domain"
)

// Image block rendition size.
const (
	ImageWidth  = 800
	ImageHeight = 600
)

// ImageFunc renders the <img> element (or its placeholder) for an image
// block at the given size.
type ImageFunc func(img *domain.Image, width, height int) template.HTML

// Renderer converts blocks to HTML.
type Renderer struct {
	image ImageFunc
}

// New creates a Renderer. A nil image func drops image blocks.
func New(image ImageFunc) *Renderer {
	return &Renderer{image: image}
}

var blockTags = map[string]struct{ open, close string }{
	"h1":         {`<h1 class="text-4xl font-bold mb-6 mt-8">`, "</h1>"},
	"h2":         {`<h2 class="text-3xl font-bold mb-4 mt-6">`, "</h2>"},
	"h3":         {`<h3 class="text-2xl font-bold mb-3 mt-5">`, "</h3>"},
	"h4":         {`<h4 class="text-xl font-bold mb-2 mt-4">`, "</h4>"},
	"normal":     {`<p class="mb-4 leading-relaxed">`, "</p>"},
	"blockquote": {`<blockquote class="border-l-4 border-muted pl-4 my-6 italic text-muted-foreground">`, "</blockquote>"},
}

var listTags = map[string]struct{ open, close string }{
	"bullet": {`<ul class="list-disc list-inside mb-4 space-y-2">`, "</ul>"},
	"number": {`<ol class="list-decimal list-inside mb-4 space-y-2">`, "</ol>"},
}

var decorators = map[string]struct{ open, close string }{
	"strong":         {`<strong class="font-bold">`, "</strong>"},
	"em":             {`<em class="italic">`, "</em>"},
	"code":           {`<code class="bg-muted px-2 py-1 rounded text-sm font-mono">`, "</code>"},
	"underline":      {`<span style="text-decoration:underline">`, "</span>"},
	"strike-through": {`<del>`, "</del>"},
}

// Render returns the HTML for blocks, or an empty string when there is
// nothing to render.
func (r *Renderer) Render(blocks []domain.Block) template.HTML {
	if len(blocks) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(`<div class="prose prose-lg max-w-none">`)

	var lists listStack
	for i := range blocks {
		blk := &blocks[i]
		if blk.IsList() {
			lists.item(&b, blk.ListItem, max(blk.Level, 1))
			r.writeSpans(&b, blk)
			continue
		}
		lists.closeAll(&b)

		switch blk.Type {
		case domain.BlockTypeText:
			tag, ok := blockTags[blk.Style]
			if !ok {
				tag = blockTags["normal"]
			}
			b.WriteString(tag.open)
			r.writeSpans(&b, blk)
			b.WriteString(tag.close)
		case domain.BlockTypeImage:
			r.writeImage(&b, blk.Image)
		}
	}
	lists.closeAll(&b)

	b.WriteString("</div>")
	return template.HTML(b.String()) //nolint:gosec // every text node is escaped
}

func (r *Renderer) writeImage(b *strings.Builder, img *domain.Image) {
	if r.image == nil || img.IsZero() {
		return
	}
	b.WriteString(`<div class="my-6">`)
	b.WriteString(string(r.image(img, ImageWidth, ImageHeight)))
	if img.Caption != "" {
		b.WriteString(`<p class="mt-2 text-sm text-muted-foreground text-center">`)
		b.WriteString(template.HTMLEscapeString(img.Caption))
		b.WriteString("</p>")
	}
	b.WriteString("</div>")
}

func (r *Renderer) writeSpans(b *strings.Builder, blk *domain.Block) {
	defs := make(map[string]*domain.MarkDef, len(blk.MarkDefs))
	for i := range blk.MarkDefs {
		defs[blk.MarkDefs[i].Key] = &blk.MarkDefs[i]
	}

	for _, span := range blk.Spans {
		closers := make([]string, 0, len(span.Marks))
		for _, mark := range span.Marks {
			if d, ok := decorators[mark]; ok {
				b.WriteString(d.open)
				closers = append(closers, d.close)
				continue
			}
			if def, ok := defs[mark]; ok && def.Type == "link" {
				if open, ok := linkTag(def); ok {
					b.WriteString(open)
					closers = append(closers, "</a>")
				}
			}
		}

		writeText(b, span.Text)

		for i := len(closers) - 1; i >= 0; i-- {
			b.WriteString(closers[i])
		}
	}
}

// writeText escapes text and keeps authored line breaks.
func writeText(b *strings.Builder, text string) {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteString("<br/>")
		}
		b.WriteString(template.HTMLEscapeString(line))
	}
}

// linkTag returns the opening <a> tag for a link annotation. Links with a
// scheme other than http, https, mailto or tel are dropped.
func linkTag(def *domain.MarkDef) (string, bool) {
	href := strings.TrimSpace(def.Href)
	if !safeHref(href) {
		return "", false
	}

	var b strings.Builder
	b.WriteString(`<a href="`)
	b.WriteString(template.HTMLEscapeString(href))
	b.WriteString(`"`)
	if def.Blank {
		b.WriteString(` target="_blank" rel="noopener noreferrer"`)
	}
	b.WriteString(` class="text-primary hover:underline">`)
	return b.String(), true
}

func safeHref(href string) bool {
	if href == "" {
		return false
	}
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto", "tel":
		return true
	default:
		return false
	}
}

// listStack tracks the open lists while consecutive list items are written.
// Each open list has one open <li> that nested lists are written into.
type listStack []openList

type openList struct {
	kind  string
	level int
}

func (s *listStack) item(b *strings.Builder, kind string, level int) {
	for len(*s) > 0 && s.top().level > level {
		s.pop(b)
	}
	if len(*s) > 0 && s.top().level == level && s.top().kind != kind {
		s.pop(b)
	}

	if len(*s) > 0 && s.top().level == level {
		b.WriteString("</li>")
	} else {
		tag, ok := listTags[kind]
		if !ok {
			tag = listTags["bullet"]
		}
		b.WriteString(tag.open)
		*s = append(*s, openList{kind: kind, level: level})
	}
	b.WriteString(`<li class="ml-4">`)
}

func (s *listStack) top() openList {
	return (*s)[len(*s)-1]
}

func (s *listStack) pop(b *strings.Builder) {
	tag, ok := listTags[s.top().kind]
	if !ok {
		tag = listTags["bullet"]
	}
	b.WriteString("</li>")
	b.WriteString(tag.close)
	*s = (*s)[:len(*s)-1]
}

func (s *listStack) closeAll(b *strings.Builder) {
	for len(*s) > 0 {
		s.pop(b)
	}
}
