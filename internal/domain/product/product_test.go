package product

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vinhson/vinhson-web/internal/domain"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestProduct_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		product Product
		field   string
	}{
		{
			name:    "valid without price",
			product: Product{Name: "Pump", Slug: "pump", Language: domain.LocaleVI},
		},
		{
			name:    "missing name",
			product: Product{Slug: "pump", Language: domain.LocaleVI},
			field:   "name",
		},
		{
			name:    "negative price",
			product: Product{Name: "Pump", Slug: "pump", Language: domain.LocaleVI, Price: decPtr("-1")},
			field:   "price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.product.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Errorf("Fields = %v, missing %q", verr.Fields, tt.field)
			}
		})
	}
}

func TestProduct_HasPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price *decimal.Decimal
		want  bool
	}{
		{name: "nil", price: nil, want: false},
		{name: "zero", price: decPtr("0"), want: false},
		{name: "positive", price: decPtr("1500000"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := Product{Price: tt.price}
			if got := p.HasPrice(); got != tt.want {
				t.Errorf("HasPrice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProduct_PrimaryImageAndPreview(t *testing.T) {
	t.Parallel()

	p := Product{Name: "Pump", Language: domain.LocaleEN, Price: decPtr("250000")}
	if p.PrimaryImage() != nil {
		t.Error("PrimaryImage() != nil with no images")
	}
	p.Images = []domain.Image{{AssetRef: "image-a-1x1-png"}, {AssetRef: "image-b-1x1-png"}}
	if got := p.PrimaryImage().AssetRef; got != "image-a-1x1-png" {
		t.Errorf("PrimaryImage() = %q", got)
	}
	if got := p.Preview().Subtitle; got != "EN - 250000 VND" {
		t.Errorf("Preview().Subtitle = %q", got)
	}
}
