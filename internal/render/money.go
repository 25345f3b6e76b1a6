package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ulazimo/kolagen/internal/domain"
)

// Currency suffix shown after every amount.
const Currency = "RSD"

const freeShippingLabel = "Besplatno"

var printer = message.NewPrinter(language.Serbian)

// FormatAmount целое число с разделителем тысяч по-сербски: 13960 -> "13.960"
func FormatAmount(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatRSD "3.490 RSD"
func FormatRSD(n int64) string {
	return FormatAmount(n) + " " + Currency
}

// ShippingLabel текст строки доставки в итогах формы заказа.
// Для пустого выбора показывается стандартная цена доставки.
func ShippingLabel(s domain.PriceSummary, standard int64) string {
	switch {
	case s.Subtotal <= 0:
		return FormatRSD(standard)
	case s.Shipping == 0:
		return freeShippingLabel
	default:
		return FormatRSD(s.Shipping)
	}
}
