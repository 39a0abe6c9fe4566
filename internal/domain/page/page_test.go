package page

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/vinhson/vinhson-web/internal/domain"
)

func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %v", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestPage_Validate(t *testing.T) {
	t.Parallel()

	valid := func() Page {
		return Page{Title: "Giới thiệu", Slug: "gioi-thieu", Language: domain.LocaleVI, Status: domain.StatusPublished}
	}

	tests := []struct {
		name   string
		mutate func(*Page)
		field  string
	}{
		{name: "missing title", mutate: func(p *Page) { p.Title = "" }, field: "title"},
		{name: "missing slug", mutate: func(p *Page) { p.Slug = "" }, field: "slug"},
		{name: "missing language", mutate: func(p *Page) { p.Language = "" }, field: "language"},
		{name: "bad status", mutate: func(p *Page) { p.Status = "archived" }, field: "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := valid()
			tt.mutate(&p)
			requireValidationField(t, p.Validate(), tt.field)
		})
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		p := valid()
		if err := p.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})
}

func TestPage_Preview(t *testing.T) {
	t.Parallel()

	p := Page{Title: "About", Language: domain.LocaleEN}
	got := p.Preview()
	if got.Title != "About" || got.Subtitle != "EN - draft" {
		t.Errorf("Preview() = %+v, want {About EN - draft}", got)
	}
}

func TestPage_Description(t *testing.T) {
	t.Parallel()

	text := func(s string) domain.Block {
		return domain.Block{Type: domain.BlockTypeText, Spans: []domain.Span{{Text: s}}}
	}
	long := strings.Repeat("máy bơm công nghiệp ", 12)

	tests := []struct {
		name string
		page Page
		want string
	}{
		{
			name: "seo override wins",
			page: Page{SEO: &domain.SEO{MetaDescription: "Về Vĩnh Sơn"}, Content: []domain.Block{text("Nội dung")}},
			want: "Về Vĩnh Sơn",
		},
		{
			name: "content text joins blocks on one line",
			page: Page{Content: []domain.Block{
				text("Chúng tôi   cung cấp"),
				{Type: domain.BlockTypeImage, Image: &domain.Image{AssetRef: "image-a-1x1-png"}},
				text("máy bơm."),
			}},
			want: "Chúng tôi cung cấp máy bơm.",
		},
		{
			name: "no content",
			page: Page{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.page.Description(); got != tt.want {
				t.Errorf("Description() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("long content is cut at a word", func(t *testing.T) {
		t.Parallel()
		p := Page{Content: []domain.Block{text(long)}}
		got := p.Description()
		if !strings.HasSuffix(got, "…") {
			t.Fatalf("Description() = %q, want trailing ellipsis", got)
		}
		body := strings.TrimSuffix(got, "…")
		if n := utf8.RuneCountInString(body); n > maxDescriptionRunes {
			t.Errorf("Description() has %d runes before the ellipsis, want <= %d", n, maxDescriptionRunes)
		}
		if !strings.HasPrefix(long, body) || strings.HasSuffix(body, " ") {
			t.Errorf("Description() = %q, want a word-aligned prefix of the content", got)
		}
	})
}
