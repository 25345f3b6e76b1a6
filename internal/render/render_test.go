package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulazimo/kolagen/internal/domain"
)

func TestFormatRSD(t *testing.T) {
	assert.Equal(t, "3.490 RSD", FormatRSD(3490))
	assert.Equal(t, "13.960 RSD", FormatRSD(13960))
	assert.Equal(t, "290 RSD", FormatRSD(290))
	assert.Equal(t, "0 RSD", FormatRSD(0))
	assert.Equal(t, "1.234.567", FormatAmount(1234567))
}

func TestShippingLabel(t *testing.T) {
	assert.Equal(t, "290 RSD", ShippingLabel(domain.PriceSummary{}, 290))
	assert.Equal(t, "Besplatno", ShippingLabel(domain.PriceSummary{Subtotal: 6980, Shipping: 0}, 290))
	assert.Equal(t, "290 RSD", ShippingLabel(domain.PriceSummary{Subtotal: 3490, Shipping: 290}, 290))
}

func TestOrderText(t *testing.T) {
	lines := []domain.SummaryLine{
		{Name: "Kolagen Marine", Quantity: 2, Total: 8580},
		{Name: "Kolagen Peptidi Pure", Quantity: 0, Total: 0},
		{Name: "Kolagen Beauty+", Quantity: 1, Total: 4990},
	}
	assert.Equal(t, "Kolagen Marine - 2x (8.580 RSD), Kolagen Beauty+ - 1x (4.990 RSD)", OrderText(lines))
	assert.Equal(t, "", OrderText(nil))
}

func TestParseOrderText_RoundTrip(t *testing.T) {
	lines := []domain.SummaryLine{
		{Name: "Kolagen Peptidi Pure", Quantity: 3, Total: 9423},
		{Name: "Kolagen, Special", Quantity: 1, Total: 4990},
	}
	got, err := ParseOrderText(OrderText(lines))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, OrderTextLine{Name: "Kolagen Peptidi Pure", Quantity: 3, LineTotal: 9423}, got[0])
	assert.Equal(t, OrderTextLine{Name: "Kolagen, Special", Quantity: 1, LineTotal: 4990}, got[1])
}

func TestParseOrderText_Errors(t *testing.T) {
	got, err := ParseOrderText("   ")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseOrderText("Kolagen Marine x2")
	assert.Error(t, err)
}
