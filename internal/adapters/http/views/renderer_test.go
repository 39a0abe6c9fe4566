package views_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinhson/vinhson-web/internal/adapters/http/views"
	"github.com/vinhson/vinhson-web/internal/ports"
)

func TestRenderer_Home(t *testing.T) {
	t.Parallel()

	p, r := newPresenter(t, nil)
	req := viRequest("/vi")
	req.Preview = true
	v := p.Home(req, &ports.Home{Banners: banners(2)}, 1)

	rec := httptest.NewRecorder()
	require.NoError(t, r.Render(rec, http.StatusOK, views.PageHome, v))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, `<html lang="vi">`)
	assert.Contains(t, body, `<link rel="canonical" href="https://vinhson.com.vn/vi">`)
	assert.Contains(t, body, `hreflang="en" href="https://vinhson.com.vn/en"`)
	assert.Contains(t, body, `hreflang="x-default" href="https://vinhson.com.vn/vi"`)
	assert.Contains(t, body, `<script type="application/ld+json">{"@context":"https://schema.org","@type":"Organization"`)
	assert.Contains(t, body, "Bạn đang xem bản nháp.")
	assert.Contains(t, body, `href="/api/exit-preview"`)
	assert.Contains(t, body, `data-interval="5000"`)
	assert.Contains(t, body, `data-current="1"`)
}

func TestRenderer_ErrorPageIsNoIndex(t *testing.T) {
	t.Parallel()

	p, r := newPresenter(t, nil)
	rec := httptest.NewRecorder()

	require.NoError(t, r.Render(rec, http.StatusNotFound, views.PageError, p.Error(viRequest("/vi/khong-co"), http.StatusNotFound)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `<meta name="robots" content="noindex">`)
	assert.Contains(t, rec.Body.String(), "Không tìm thấy trang")
}

func TestRenderer_FailureWritesNothing(t *testing.T) {
	t.Parallel()

	_, r := newPresenter(t, nil)

	tests := []struct {
		name string
		page string
		data any
	}{
		{name: "unknown page", page: "missing", data: nil},
		{name: "wrong data", page: views.PageHome, data: struct{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			err := r.Render(rec, http.StatusOK, tt.page, tt.data)
			require.Error(t, err)
			assert.Empty(t, rec.Body.String())
			assert.Empty(t, rec.Header().Get("Content-Type"))
		})
	}
}

func TestRenderer_ImageFragment(t *testing.T) {
	t.Parallel()

	_, r := newPresenter(t, nil)

	html, err := r.Fragment("image", views.Image{Src: "https://cdn/x.jpg", Alt: "X", Width: 10, Height: 5, Loading: "lazy", Placeholder: "none"})
	require.NoError(t, err)
	assert.Contains(t, string(html), `src="https://cdn/x.jpg"`)
	assert.Contains(t, string(html), `data-placeholder="none"`)

	html, err = r.Fragment("image", views.Image{Placeholder: "Không có hình ảnh"})
	require.NoError(t, err)
	assert.Contains(t, string(html), `class="image-placeholder"`)
	assert.Contains(t, string(html), "Không có hình ảnh")
}
