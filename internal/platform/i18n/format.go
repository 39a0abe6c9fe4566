package i18n

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/vinhson/vinhson-web/internal/domain"
)

// Date layouts per locale. "tháng" holds no layout tokens, so the
// Vietnamese form goes through time.Format unescaped.
const (
	dateLayoutEN = "January 2, 2006"
	dateLayoutVI = "2 tháng 1, 2006"
)

// FormatDate renders a long-form date the way browsers do for the locale:
// "15 tháng 1, 2024" in Vietnamese and "January 15, 2024" in English.
func FormatDate(l domain.Locale, t time.Time) string {
	if l == domain.LocaleEN {
		return t.Format(dateLayoutEN)
	}
	return t.Format(dateLayoutVI)
}

// FormatPrice renders a price with the locale's digit grouping followed by
// the currency code: "1.500.000 VND" or "1,500,000 VND". Fractions are
// rounded away since the currency has no minor unit.
func FormatPrice(l domain.Locale, amount decimal.Decimal, currency string) string {
	p := message.NewPrinter(Tag(l))
	return p.Sprintf("%v %s", number.Decimal(amount.Round(0).IntPart()), currency)
}
