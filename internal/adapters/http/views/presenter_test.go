package views_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vinhson/vinhson-web/internal/adapters/clients/cms/imageurl"
	"github.com/vinhson/vinhson-web/internal/adapters/http/views"
	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/domain/banner"
	"github.com/vinhson/vinhson-web/internal/domain/category"
	"github.com/vinhson/vinhson-web/internal/domain/page"
	"github.com/vinhson/vinhson-web/internal/domain/post"
	"github.com/vinhson/vinhson-web/internal/domain/product"
	"github.com/vinhson/vinhson-web/internal/domain/settings"
	"github.com/vinhson/vinhson-web/internal/platform/i18n"
	"github.com/vinhson/vinhson-web/internal/ports"
	"github.com/vinhson/vinhson-web/mocks"
)

const (
	baseURL  = "https://vinhson.com.vn"
	assetRef = "image-Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000-jpg"
)

func newPresenter(t *testing.T, images ports.ImageURLBuilder) (*views.Presenter, *views.Renderer) {
	t.Helper()

	catalog, err := i18n.Load()
	require.NoError(t, err)
	renderer, err := views.NewRenderer()
	require.NoError(t, err)
	if images == nil {
		images = imageurl.New("", "proj", "production")
	}
	p := views.NewPresenter(renderer, catalog, images, views.PresenterOptions{
		BaseURL:    baseURL + "/",
		SiteName:   "Vĩnh Sơn",
		SearchPath: "/search",
	}, nil)
	return p, renderer
}

func viRequest(path string) *views.Request {
	return &views.Request{
		Locale:   domain.LocaleVI,
		Path:     path,
		Settings: &settings.SiteSettings{Language: domain.LocaleVI, SiteName: "Vĩnh Sơn"},
	}
}

func banners(n int) []banner.HeroBanner {
	out := make([]banner.HeroBanner, 0, n)
	for i := range n {
		out = append(out, banner.HeroBanner{
			Title:           "Banner",
			BackgroundImage: &domain.Image{AssetRef: assetRef},
			CTAText:         "Xem",
			CTALink:         "/vi/san-pham",
			Order:           i,
			IsActive:        true,
		})
	}
	return out
}

func TestHome_Carousel(t *testing.T) {
	t.Parallel()

	p, _ := newPresenter(t, nil)

	t.Run("no banners renders nothing", func(t *testing.T) {
		t.Parallel()
		v := p.Home(viRequest("/vi"), &ports.Home{}, 0)
		assert.Nil(t, v.Carousel)
	})

	t.Run("single banner has no controls", func(t *testing.T) {
		t.Parallel()
		v := p.Home(viRequest("/vi"), &ports.Home{Banners: banners(1)}, 0)
		require.NotNil(t, v.Carousel)
		assert.False(t, v.Carousel.Controls)
	})

	t.Run("initial slide wraps into range", func(t *testing.T) {
		t.Parallel()
		v := p.Home(viRequest("/vi"), &ports.Home{Banners: banners(3)}, 4)
		c := v.Carousel
		require.NotNil(t, c)
		assert.True(t, c.Controls)
		assert.Equal(t, 1, c.Current)
		assert.True(t, c.Slides[1].Active)
		assert.False(t, c.Slides[0].Active)
		assert.Equal(t, "?slide=0", c.PrevHref)
		assert.Equal(t, "?slide=2", c.NextHref)
		assert.Equal(t, views.SlideIntervalMS, c.IntervalMS)
		assert.Equal(t, "Chuyển đến slide 3", c.Slides[2].DotLabel)
	})

	t.Run("background rendition and eager active slide", func(t *testing.T) {
		t.Parallel()
		v := p.Home(viRequest("/vi"), &ports.Home{Banners: banners(2)}, 0)
		img := v.Carousel.Slides[0].Image
		assert.Contains(t, img.Src, "w=1920&h=600")
		assert.Equal(t, "eager", img.Loading)
		assert.Equal(t, "lazy", v.Carousel.Slides[1].Image.Loading)
	})

	t.Run("cta needs text and link", func(t *testing.T) {
		t.Parallel()
		b := banners(1)
		b[0].CTALink = ""
		v := p.Home(viRequest("/vi"), &ports.Home{Banners: b}, 0)
		assert.Empty(t, v.Carousel.Slides[0].CTAText)
		assert.Empty(t, v.Carousel.Slides[0].CTALink)
	})
}

func TestHome_Cards(t *testing.T) {
	t.Parallel()

	p, _ := newPresenter(t, nil)
	published := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)
	price := decimal.NewFromInt(1500000)

	v := p.Home(viRequest("/vi"), &ports.Home{
		Categories: []category.Category{{Name: "Máy bơm", Slug: "may-bom"}},
		Products:   []product.Product{{Name: "Bơm A", Slug: "bom-a", Price: &price}, {Name: "Bơm B", Slug: "bom-b"}},
		RecentPosts: []post.Post{
			{Title: "Tin", Slug: "tin", Author: "Minh", PublishedAt: &published},
			{Title: "Tin 2", Slug: "tin-2"},
		},
	}, 0)

	require.Len(t, v.Categories, 1)
	assert.Equal(t, "/vi/san-pham?category=may-bom", v.Categories[0].Href)
	assert.Equal(t, "Danh mục sản phẩm", v.CategoryTitle)

	require.Len(t, v.Products, 2)
	assert.Equal(t, "/vi/san-pham/bom-a", v.Products[0].Href)
	assert.Equal(t, "1.500.000 VND", v.Products[0].Price)
	assert.Empty(t, v.Products[1].Price)
	assert.Equal(t, "Xem chi tiết", v.Products[0].CTA)
	assert.False(t, v.Products[0].Image.OK())
	assert.Equal(t, "Không có hình ảnh", v.Products[0].Image.Placeholder)

	require.Len(t, v.Posts, 2)
	assert.Equal(t, "/vi/tin-tuc/tin", v.Posts[0].Href)
	assert.Equal(t, "Minh • 15 tháng 1, 2024", v.Posts[0].Meta)
	assert.Empty(t, v.Posts[1].Meta)
}

func TestHome_CategorySectionFromSettings(t *testing.T) {
	t.Parallel()

	p, _ := newPresenter(t, nil)
	req := viRequest("/vi")
	req.Settings.CategorySection = &settings.CategorySection{Title: "Sản phẩm nổi bật", Description: "Mô tả"}

	v := p.Home(req, &ports.Home{}, 0)

	assert.Equal(t, "Sản phẩm nổi bật", v.CategoryTitle)
	assert.Equal(t, "Mô tả", v.CategoryDescription)
}

func TestLayout_LinksAndMetadata(t *testing.T) {
	t.Parallel()

	p, _ := newPresenter(t, nil)
	req := viRequest("/vi/tin-tuc")
	req.Preview = true

	v := p.Blog(req, nil)

	assert.Equal(t, "Tin tức | Vĩnh Sơn", v.Title)
	assert.Equal(t, baseURL+"/vi/tin-tuc", v.Canonical)
	assert.Equal(t, baseURL+"/vi/tin-tuc", v.XDefault)
	require.Len(t, v.Alternates, 2)
	assert.Equal(t, baseURL+"/en/blog", v.Alternates[1].URL)
	assert.Equal(t, "vi_VN", v.OG.Locale)
	assert.True(t, v.Preview)
	assert.Equal(t, views.ExitPreviewPath, v.ExitPreview)

	require.Len(t, v.Languages, 2)
	assert.True(t, v.Languages[0].Current)
	assert.Equal(t, "English", v.Languages[1].Label)
	assert.Equal(t, "/en/blog", v.Languages[1].Href)

	var active []string
	for _, n := range v.Nav {
		if n.Active {
			active = append(active, n.Href)
		}
	}
	assert.Equal(t, []string{"/vi/tin-tuc"}, active)
}

func TestPage_DescriptionFromContent(t *testing.T) {
	t.Parallel()

	p, _ := newPresenter(t, nil)
	req := viRequest("/vi/gioi-thieu")
	req.Settings.SiteDescription = "Mô tả chung"

	v := p.Page(req, &page.Page{
		Title:    "Giới thiệu",
		Slug:     "gioi-thieu",
		Language: domain.LocaleVI,
		Content: []domain.Block{
			{Type: domain.BlockTypeText, Spans: []domain.Span{{Text: "Vĩnh Sơn "}, {Text: "phân phối máy bơm."}}},
		},
	})

	assert.Equal(t, "Vĩnh Sơn phân phối máy bơm.", v.Description)
	assert.Equal(t, v.Description, v.OG.Description)

	empty := p.Page(req, &page.Page{Title: "Trống", Slug: "trong", Language: domain.LocaleVI})
	assert.Equal(t, "Mô tả chung", empty.Description, "site description when the page has no text")
}

func TestLayout_FooterSocialLinks(t *testing.T) {
	t.Parallel()

	p, _ := newPresenter(t, nil)
	req := viRequest("/vi")
	req.Settings.SocialMedia = settings.SocialMedia{Facebook: "https://facebook.com/vs", Instagram: " "}

	v := p.Home(req, &ports.Home{}, 0)

	require.Len(t, v.Footer.Social, 1)
	assert.Equal(t, "Facebook", v.Footer.Social[0].Name)
}

func TestLayout_FallbackSettings(t *testing.T) {
	t.Parallel()

	p, _ := newPresenter(t, nil)
	v := p.Blog(&views.Request{Locale: domain.LocaleEN, Path: "/en/blog"}, nil)

	assert.Equal(t, "Vĩnh Sơn", v.SiteName)
	assert.Equal(t, "Blog | Vĩnh Sơn", v.Title)
}

func TestImage_PlaceholderWhenURLFails(t *testing.T) {
	t.Parallel()

	images := mocks.NewMockImageURLBuilder(t)
	images.EXPECT().URL(mock.Anything, mock.Anything).Return("", errors.New("malformed"))
	p, _ := newPresenter(t, images)

	v := p.Home(viRequest("/vi"), &ports.Home{
		Categories: []category.Category{{Name: "X", Slug: "x", Image: &domain.Image{AssetRef: "bad"}}},
	}, 0)

	require.Len(t, v.Categories, 1)
	assert.False(t, v.Categories[0].Image.OK())
	assert.Equal(t, "X", v.Categories[0].Image.Alt)
}

func TestImage_CropCenterOnlyWithoutFraming(t *testing.T) {
	t.Parallel()

	var got []domain.ImageTransform
	images := mocks.NewMockImageURLBuilder(t)
	images.EXPECT().URL(mock.Anything, mock.Anything).
		RunAndReturn(func(_ domain.Image, tr domain.ImageTransform) (string, error) {
			got = append(got, tr)
			return "https://cdn/x.jpg", nil
		})
	p, _ := newPresenter(t, images)

	p.Home(viRequest("/vi"), &ports.Home{Categories: []category.Category{
		{Name: "plain", Slug: "a", Image: &domain.Image{AssetRef: assetRef}},
		{Name: "framed", Slug: "b", Image: &domain.Image{AssetRef: assetRef, Hotspot: &domain.ImageHotspot{X: 0.3, Y: 0.3, Width: 0.2, Height: 0.2}}},
	}}, 0)

	require.Len(t, got, 2)
	assert.Equal(t, domain.ImageTransform{Width: 400, Height: 300, Quality: 85, Fit: domain.FitCrop, Crop: domain.CropCenter}, got[0])
	assert.Equal(t, domain.ImageTransform{Width: 400, Height: 300, Quality: 85, Fit: domain.FitCrop}, got[1])
}

func TestPost_StructuredData(t *testing.T) {
	t.Parallel()

	p, _ := newPresenter(t, nil)
	published := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

	v := p.Post(viRequest("/vi/tin-tuc/bai-viet"), &post.Post{
		Title:       "Bài viết",
		Slug:        "bai-viet",
		Excerpt:     "Tóm tắt",
		Author:      "Minh",
		PublishedAt: &published,
		MainImage:   &domain.Image{AssetRef: assetRef},
		Categories:  []domain.Reference{{Name: "Kỹ thuật", Slug: "ky-thuat"}},
		Content: []domain.Block{{
			Type:  domain.BlockTypeText,
			Style: "normal",
			Spans: []domain.Span{{Text: "Nội dung"}},
		}},
	})

	assert.Equal(t, "article", v.OG.Type)
	assert.Equal(t, "Tóm tắt", v.Description)
	assert.Equal(t, []string{"Kỹ thuật"}, v.Categories)
	require.NotNil(t, v.Image)
	assert.Contains(t, string(v.Body), "Nội dung")

	require.Len(t, v.JSONLD, 2)
	assert.Contains(t, string(v.JSONLD[0]), `"@type":"Article"`)
	assert.Contains(t, string(v.JSONLD[0]), `"datePublished":"2024-01-15T09:00:00Z"`)
	assert.Contains(t, string(v.JSONLD[1]), `"@type":"BreadcrumbList"`)
	assert.Contains(t, string(v.JSONLD[1]), baseURL+"/vi/tin-tuc/bai-viet")
}

func TestProduct_OfferAndCategory(t *testing.T) {
	t.Parallel()

	p, _ := newPresenter(t, nil)
	price := decimal.NewFromInt(2500000)

	v := p.Product(&views.Request{Locale: domain.LocaleEN, Path: "/en/products/pump"}, &product.Product{
		Name:     "Pump",
		Slug:     "pump",
		Price:    &price,
		Category: &domain.Reference{Name: "Pumps", Slug: "pumps"},
		Images:   []domain.Image{{AssetRef: assetRef}, {AssetRef: assetRef}},
	})

	assert.Equal(t, "2,500,000 VND", v.Price)
	require.NotNil(t, v.Category)
	assert.Equal(t, "/en/products?category=pumps", v.Category.Href)
	require.Len(t, v.Images, 2)
	assert.Equal(t, "eager", v.Images[0].Loading)
	assert.Equal(t, "lazy", v.Images[1].Loading)
	assert.Contains(t, string(v.JSONLD[0]), `"priceCurrency":"VND"`)
}

func TestProducts_Filters(t *testing.T) {
	t.Parallel()

	p, _ := newPresenter(t, nil)
	cats := []category.Category{{Name: "A", Slug: "a"}, {Name: "B", Slug: "b"}}

	v := p.Products(viRequest("/vi/san-pham"), &ports.Catalog{Categories: cats, Active: &cats[1]})

	assert.Equal(t, "B", v.Heading)
	require.Len(t, v.Filters, 3)
	assert.False(t, v.Filters[0].Active)
	assert.True(t, v.Filters[2].Active)
	assert.True(t, strings.HasSuffix(v.Filters[2].Href, "?category=b"))
}

func TestError_Messages(t *testing.T) {
	t.Parallel()

	p, _ := newPresenter(t, nil)

	tests := []struct {
		status int
		want   string
	}{
		{404, "Không tìm thấy trang"},
		{502, "Nội dung tạm thời không khả dụng"},
	}

	for _, tt := range tests {
		v := p.Error(viRequest("/vi"), tt.status)
		assert.Equal(t, tt.want, v.Heading)
		assert.True(t, v.NoIndex)
		assert.Equal(t, tt.status, v.Status)
	}
}
