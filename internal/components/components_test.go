package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/ulazimo/kolagen/internal/domain"
	"github.com/ulazimo/kolagen/internal/service"
)

func renderNode(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestTestimonialsSlider_ShowsCurrentSlide(t *testing.T) {
	html := renderNode(t, TestimonialsSlider(DefaultTestimonials, service.SlideView{Current: 1, Total: 3, ItemsPerSlide: 2, Offset: 768}))
	assert.Contains(t, html, `data-offset="768"`)
	assert.Equal(t, 2, strings.Count(html, `class="testimonial-card"`))
	assert.Contains(t, html, DefaultTestimonials[2].Author)
	assert.NotContains(t, html, DefaultTestimonials[0].Author)
	assert.Equal(t, 1, strings.Count(html, `class="dot active"`))
	assert.Contains(t, html, `action="/testimonials/jump/2"`)
}

func TestSummaryRows(t *testing.T) {
	empty := renderNode(t, SummaryRows(domain.PriceSummary{}, "290 RSD"))
	assert.Contains(t, empty, "Niste izabrali nijedan proizvod")
	assert.NotContains(t, empty, "Popust")

	sum := domain.PriceSummary{
		Lines:    []domain.SummaryLine{{ProductID: domain.ProductPure, Name: "Kolagen Peptidi Pure", Quantity: 3, Total: 9423}},
		Subtotal: 9423, Discount: 1047, Total: 9423,
	}
	html := renderNode(t, SummaryRows(sum, "Besplatno"))
	assert.Contains(t, html, "x3")
	assert.Contains(t, html, "-1.047 RSD")
	assert.Contains(t, html, `<span id="summaryShipping">Besplatno</span>`)
}

func TestNoticeStack(t *testing.T) {
	assert.Nil(t, NoticeStack(nil))
	html := renderNode(t, NoticeStack([]domain.Notice{
		{ID: 1, Kind: domain.NoticeAdded, Text: "Kolagen Marine dodat u korpu"},
		{ID: 2, Kind: domain.NoticeError, Text: "Molimo izaberite bar jedan proizvod"},
	}))
	assert.Contains(t, html, "Kolagen Marine dodat u korpu")
	assert.NotContains(t, html, "Molimo izaberite")
}

func TestHandoffPage_HiddenFields(t *testing.T) {
	html := renderNode(t, HandoffPage(&service.Submission{
		Action: "https://formsubmit.example/orders",
		Fields: map[string]string{"_captcha": "false", "name": "Ana", "shipping": "290 RSD"},
	}))
	assert.Contains(t, html, `<form method="post" action="https://formsubmit.example/orders">`)
	assert.Less(t, strings.Index(html, `name="_captcha"`), strings.Index(html, `name="name"`))
}
