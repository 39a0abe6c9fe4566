package document

import (
	"github.com/vinhson/vinhson-web/internal/domain"
	"github.com/vinhson/vinhson-web/internal/domain/banner"
	"github.com/vinhson/vinhson-web/internal/domain/category"
	"github.com/vinhson/vinhson-web/internal/domain/page"
	"github.com/vinhson/vinhson-web/internal/domain/post"
	"github.com/vinhson/vinhson-web/internal/domain/product"
	"github.com/vinhson/vinhson-web/internal/domain/settings"
)

// ToDomainImage converts an image field. Returns nil when no asset is set.
func ToDomainImage(dto *ImageDTO) *domain.Image {
	if dto == nil || dto.Asset == nil || dto.Asset.Ref == "" {
		return nil
	}
	return &domain.Image{
		AssetRef: dto.Asset.Ref,
		Alt:      dto.Alt,
		Caption:  dto.Caption,
		Crop:     toDomainCrop(dto.Crop),
		Hotspot:  toDomainHotspot(dto.Hotspot),
	}
}

func toDomainCrop(dto *CropDTO) *domain.ImageCrop {
	if dto == nil {
		return nil
	}
	return &domain.ImageCrop{Top: dto.Top, Bottom: dto.Bottom, Left: dto.Left, Right: dto.Right}
}

func toDomainHotspot(dto *HotspotDTO) *domain.ImageHotspot {
	if dto == nil {
		return nil
	}
	return &domain.ImageHotspot{X: dto.X, Y: dto.Y, Width: dto.Width, Height: dto.Height}
}

// ToDomainSEO converts the seo object. Returns nil when absent.
func ToDomainSEO(dto *SEODTO) *domain.SEO {
	if dto == nil {
		return nil
	}
	return &domain.SEO{
		MetaTitle:       dto.MetaTitle,
		MetaDescription: dto.MetaDescription,
		MetaKeywords:    dto.MetaKeywords,
		OGImage:         ToDomainImage(dto.OGImage),
	}
}

// ToDomainBlocks converts a Portable Text array. Image members without an
// asset are dropped; other unknown members are kept so the renderer can
// decide to skip them.
func ToDomainBlocks(dtos []BlockDTO) []domain.Block {
	if len(dtos) == 0 {
		return nil
	}
	blocks := make([]domain.Block, 0, len(dtos))
	for i := range dtos {
		d := &dtos[i]
		b := domain.Block{
			Key:      d.Key,
			Type:     d.Type,
			Style:    d.Style,
			ListItem: d.ListItem,
			Level:    d.Level,
		}
		switch d.Type {
		case domain.BlockTypeText:
			if b.Style == "" {
				b.Style = "normal"
			}
			if b.ListItem != "" && b.Level == 0 {
				b.Level = 1
			}
			b.Spans = make([]domain.Span, 0, len(d.Children))
			for _, c := range d.Children {
				b.Spans = append(b.Spans, domain.Span{Key: c.Key, Text: c.Text, Marks: c.Marks})
			}
			for _, m := range d.MarkDefs {
				b.MarkDefs = append(b.MarkDefs, domain.MarkDef{Key: m.Key, Type: m.Type, Href: m.Href, Blank: m.Blank})
			}
		case domain.BlockTypeImage:
			b.Image = ToDomainImage(&ImageDTO{
				Asset:   d.Asset,
				Alt:     d.Alt,
				Caption: d.Caption,
				Crop:    d.Crop,
				Hotspot: d.Hotspot,
			})
			if b.Image == nil {
				continue
			}
		}
		blocks = append(blocks, b)
	}
	return blocks
}

func toReference(dto *NamedRefDTO) *domain.Reference {
	if dto == nil {
		return nil
	}
	return &domain.Reference{ID: dto.ID, Name: dto.Name, Slug: dto.Slug.Current}
}

// ToDomainPage converts a page document.
func ToDomainPage(dto *PageDTO) page.Page {
	return page.Page{
		ID:          dto.ID,
		Title:       dto.Title,
		Slug:        dto.Slug.Current,
		Language:    domain.Locale(dto.Language),
		Content:     ToDomainBlocks(dto.Content),
		SEO:         ToDomainSEO(dto.SEO),
		PublishedAt: dto.PublishedAt,
		Status:      domain.Status(dto.Status),
	}
}

// ToDomainPages converts a list of page documents.
func ToDomainPages(dtos []PageDTO) []page.Page {
	pages := make([]page.Page, len(dtos))
	for i := range dtos {
		pages[i] = ToDomainPage(&dtos[i])
	}
	return pages
}

// ToDomainPost converts a post document. List projections leave status out;
// they only ever return published posts, so an empty status reads as
// published there.
func ToDomainPost(dto *PostDTO) post.Post {
	p := post.Post{
		ID:          dto.ID,
		Title:       dto.Title,
		Slug:        dto.Slug.Current,
		Language:    domain.Locale(dto.Language),
		Excerpt:     dto.Excerpt,
		MainImage:   ToDomainImage(dto.MainImage),
		Author:      dto.Author,
		PublishedAt: dto.PublishedAt,
		Content:     ToDomainBlocks(dto.Content),
		SEO:         ToDomainSEO(dto.SEO),
		Status:      domain.Status(dto.Status),
	}
	for i := range dto.Categories {
		p.Categories = append(p.Categories, *toReference(&dto.Categories[i]))
	}
	return p
}

// ToDomainPosts converts a list projection of posts.
func ToDomainPosts(dtos []PostDTO) []post.Post {
	posts := make([]post.Post, len(dtos))
	for i := range dtos {
		posts[i] = ToDomainPost(&dtos[i])
		if posts[i].Status == "" {
			posts[i].Status = domain.StatusPublished
		}
	}
	return posts
}

// ToDomainProduct converts a product document.
func ToDomainProduct(dto *ProductDTO) product.Product {
	p := product.Product{
		ID:          dto.ID,
		Name:        dto.Name,
		Slug:        dto.Slug.Current,
		Language:    domain.Locale(dto.Language),
		Description: dto.Description,
		Price:       dto.Price,
		Category:    toReference(dto.Category),
		Features:    dto.Features,
		Content:     ToDomainBlocks(dto.Content),
		SEO:         ToDomainSEO(dto.SEO),
		Status:      domain.Status(dto.Status),
	}
	for i := range dto.Images {
		if img := ToDomainImage(&dto.Images[i]); img != nil {
			p.Images = append(p.Images, *img)
		}
	}
	for _, s := range dto.Specifications {
		p.Specifications = append(p.Specifications, product.Specification{Label: s.Label, Value: s.Value})
	}
	return p
}

// ToDomainProducts converts a list projection of products. As with posts,
// list results are published by construction.
func ToDomainProducts(dtos []ProductDTO) []product.Product {
	products := make([]product.Product, len(dtos))
	for i := range dtos {
		products[i] = ToDomainProduct(&dtos[i])
		if products[i].Status == "" {
			products[i].Status = domain.StatusPublished
		}
	}
	return products
}

// ToDomainCategories converts the categories projection. The projection has
// no language field, so the queried locale is applied.
func ToDomainCategories(dtos []CategoryDTO, locale domain.Locale) []category.Category {
	categories := make([]category.Category, len(dtos))
	for i, d := range dtos {
		l := domain.Locale(d.Language)
		if l == "" {
			l = locale
		}
		categories[i] = category.Category{
			ID:          d.ID,
			Name:        d.Name,
			Slug:        d.Slug.Current,
			Language:    l,
			Description: d.Description,
			Image:       ToDomainImage(d.Image),
		}
	}
	return categories
}

// ToDomainHeroBanners converts the hero banners projection. Only active
// banners are queried.
func ToDomainHeroBanners(dtos []HeroBannerDTO, locale domain.Locale) []banner.HeroBanner {
	banners := make([]banner.HeroBanner, len(dtos))
	for i, d := range dtos {
		banners[i] = banner.HeroBanner{
			ID:              d.ID,
			Title:           d.Title,
			Language:        locale,
			Subtitle:        d.Subtitle,
			BackgroundImage: ToDomainImage(d.BackgroundImage),
			CTAText:         d.CTAText,
			CTALink:         d.CTALink,
			Order:           d.Order,
			IsActive:        true,
		}
	}
	return banners
}

// ToDomainSiteSettings converts the settings projection for the locale.
func ToDomainSiteSettings(dto *SiteSettingsDTO, locale domain.Locale) settings.SiteSettings {
	s := settings.SiteSettings{
		Language:        locale,
		SiteName:        dto.SiteName,
		SiteDescription: dto.SiteDescription,
		Logo:            ToDomainImage(dto.Logo),
		ContactEmail:    dto.ContactEmail,
		ContactPhone:    dto.ContactPhone,
		Address:         dto.Address,
		SEO:             ToDomainSEO(dto.SEO),
	}
	if dto.SocialMedia != nil {
		s.SocialMedia = settings.SocialMedia{
			Facebook:  dto.SocialMedia.Facebook,
			Twitter:   dto.SocialMedia.Twitter,
			LinkedIn:  dto.SocialMedia.LinkedIn,
			Instagram: dto.SocialMedia.Instagram,
		}
	}
	if dto.CategorySection != nil {
		s.CategorySection = &settings.CategorySection{
			Title:       dto.CategorySection.Title,
			Description: dto.CategorySection.Description,
		}
	}
	return s
}
