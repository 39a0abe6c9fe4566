package portabletext_test

import (
	"fmt"
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vinhson/vinhson-web/internal/adapters/http/views/portabletext"
	"github.com/vinhson/vinhson-web/internal/domain"
)

func text(style, s string, marks ...string) domain.Block {
	return domain.Block{
		Type:  domain.BlockTypeText,
		Style: style,
		Spans: []domain.Span{{Text: s, Marks: marks}},
	}
}

func item(kind string, level int, s string) domain.Block {
	b := text("normal", s)
	b.ListItem = kind
	b.Level = level
	return b
}

func stubImage(img *domain.Image, w, h int) template.HTML {
	return template.HTML(fmt.Sprintf(`<img src="%s" width="%d" height="%d">`, img.AssetRef, w, h)) //nolint:gosec // test stub
}

func render(blocks ...domain.Block) string {
	return string(portabletext.New(stubImage).Render(blocks))
}

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, portabletext.New(stubImage).Render(nil))
	assert.Empty(t, portabletext.New(stubImage).Render([]domain.Block{}))
}

func TestRender_Styles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style string
		want  string
	}{
		{"h1", `<h1 class="text-4xl font-bold mb-6 mt-8">x</h1>`},
		{"h2", `<h2 class="text-3xl font-bold mb-4 mt-6">x</h2>`},
		{"h3", `<h3 class="text-2xl font-bold mb-3 mt-5">x</h3>`},
		{"h4", `<h4 class="text-xl font-bold mb-2 mt-4">x</h4>`},
		{"normal", `<p class="mb-4 leading-relaxed">x</p>`},
		{"blockquote", `<blockquote class="border-l-4 border-muted pl-4 my-6 italic text-muted-foreground">x</blockquote>`},
		{"h6", `<p class="mb-4 leading-relaxed">x</p>`},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, render(text(tt.style, "x")), tt.want)
		})
	}
}

func TestRender_EscapesText(t *testing.T) {
	t.Parallel()

	out := render(text("normal", `<script>alert("x")</script>`))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestRender_LineBreaks(t *testing.T) {
	t.Parallel()

	assert.Contains(t, render(text("normal", "a\nb")), "a<br/>b")
}

func TestRender_Decorators(t *testing.T) {
	t.Parallel()

	out := render(text("normal", "x", "strong", "em"))
	assert.Contains(t, out, `<strong class="font-bold"><em class="italic">x</em></strong>`)

	assert.Contains(t, render(text("normal", "c", "code")), `<code class="bg-muted px-2 py-1 rounded text-sm font-mono">c</code>`)
	assert.Contains(t, render(text("normal", "u", "underline")), `<span style="text-decoration:underline">u</span>`)
	assert.Contains(t, render(text("normal", "s", "strike-through")), `<del>s</del>`)
	assert.Contains(t, render(text("normal", "plain", "unknown")), `>plain<`)
}

func TestRender_Links(t *testing.T) {
	t.Parallel()

	link := func(href string, blank bool) domain.Block {
		b := text("normal", "go", "k1")
		b.MarkDefs = []domain.MarkDef{{Key: "k1", Type: "link", Href: href, Blank: blank}}
		return b
	}

	tests := []struct {
		name    string
		block   domain.Block
		want    string
		notWant string
	}{
		{
			name:  "same tab",
			block: link("https://vinhson.com.vn", false),
			want:  `<a href="https://vinhson.com.vn" class="text-primary hover:underline">go</a>`,
		},
		{
			name:  "new tab",
			block: link("https://example.com", true),
			want:  `<a href="https://example.com" target="_blank" rel="noopener noreferrer" class="text-primary hover:underline">go</a>`,
		},
		{
			name:  "relative",
			block: link("/vi/lien-he", false),
			want:  `href="/vi/lien-he"`,
		},
		{
			name:    "javascript scheme dropped",
			block:   link("javascript:alert(1)", false),
			want:    ">go<",
			notWant: "<a ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := render(tt.block)
			assert.Contains(t, out, tt.want)
			if tt.notWant != "" {
				assert.NotContains(t, out, tt.notWant)
			}
		})
	}
}

func TestRender_Lists(t *testing.T) {
	t.Parallel()

	const (
		ul  = `<ul class="list-disc list-inside mb-4 space-y-2">`
		ol  = `<ol class="list-decimal list-inside mb-4 space-y-2">`
		li  = `<li class="ml-4">`
		par = `<p class="mb-4 leading-relaxed">`
	)

	tests := []struct {
		name   string
		blocks []domain.Block
		want   string
	}{
		{
			name:   "flat bullets grouped",
			blocks: []domain.Block{item("bullet", 1, "a"), item("bullet", 1, "b")},
			want:   ul + li + "a</li>" + li + "b</li></ul>",
		},
		{
			name:   "nested level",
			blocks: []domain.Block{item("bullet", 1, "a"), item("bullet", 2, "a1"), item("bullet", 1, "b")},
			want:   ul + li + "a" + ul + li + "a1</li></ul></li>" + li + "b</li></ul>",
		},
		{
			name:   "kind change starts new list",
			blocks: []domain.Block{item("bullet", 1, "a"), item("number", 1, "one")},
			want:   ul + li + "a</li></ul>" + ol + li + "one</li></ol>",
		},
		{
			name:   "paragraph closes list",
			blocks: []domain.Block{item("number", 1, "one"), text("normal", "p")},
			want:   ol + li + "one</li></ol>" + par + "p</p>",
		},
		{
			name:   "level zero treated as top level",
			blocks: []domain.Block{item("bullet", 0, "a"), item("bullet", 1, "b")},
			want:   ul + li + "a</li>" + li + "b</li></ul>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, render(tt.blocks...), tt.want)
		})
	}
}

func TestRender_Images(t *testing.T) {
	t.Parallel()

	img := domain.Block{
		Type:  domain.BlockTypeImage,
		Image: &domain.Image{AssetRef: "image-abc-10x10-png", Caption: "Nhà máy <1>"},
	}
	out := render(img)
	assert.Contains(t, out, `<img src="image-abc-10x10-png" width="800" height="600">`)
	assert.Contains(t, out, "Nhà máy &lt;1&gt;")

	assert.NotContains(t, render(domain.Block{Type: domain.BlockTypeImage}), "<img")
}

func TestRender_SkipsUnknownTypes(t *testing.T) {
	t.Parallel()

	out := render(domain.Block{Type: "youtube"}, text("normal", "after"))
	assert.Equal(t, 1, strings.Count(out, "<p "))
	assert.Contains(t, out, "after")
}
