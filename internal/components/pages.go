package components

import (
	"sort"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ulazimo/kolagen/internal/domain"
	"github.com/ulazimo/kolagen/internal/render"
	"github.com/ulazimo/kolagen/internal/service"
)

// LandingData всё, что нужно для главной страницы
type LandingData struct {
	Products   []domain.Product
	Quote      domain.Selection
	QuoteSum   domain.PriceSummary
	Cart       service.CartView
	Form       service.FormView
	Slides     service.SlideView
	Notices    []domain.Notice
	Subscribed bool
}

func LandingPage(d LandingData) g.Node {
	return Layout(
		PageConfig{},
		SuccessBanner(d.Notices),
		Topbar(d.Cart.Count),
		Main(
			Section(
				Class("hero"),
				H1(g.Text("Kolagen Pure")),
				P(g.Text("Hidrolizovani kolagen peptidi za kožu, kosu, nokte i zglobove.")),
				A(Href("#porudzbina"), Class("btn btn-primary"), g.Text("Poručite odmah")),
			),
			ProductGrid(d.Products),
			CartSidebar(d.Cart),
			TestimonialsSlider(DefaultTestimonials, d.Slides),
			OrderFormPanel(d.Products, d.Form, d.Notices),
			QuotePanel(d.Products, d.Quote, d.QuoteSum),
			NewsletterBlock(d.Subscribed),
		),
		NoticeStack(d.Notices),
		PageFooter(),
	)
}

// HandoffPage подтверждение заказа: форма уходит напрямую на внешний сервис
func HandoffPage(sub *service.Submission) g.Node {
	keys := make([]string, 0, len(sub.Fields))
	for k := range sub.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return Layout(
		PageConfig{Title: "Potvrda narudžbine - Kolagen Pure"},
		Main(
			Section(
				Class("order-confirm"),
				H2(g.Text("Proverite narudžbinu")),
				SummaryRows(sub.Summary, sub.Fields["shipping"]),
				Form(
					Method("post"),
					Action(sub.Action),
					g.Group(g.Map(keys, func(k string) g.Node {
						return Input(Type("hidden"), Name(k), Value(sub.Fields[k]))
					})),
					Button(Type("submit"), Class("btn btn-primary"), g.Text("Potvrdi narudžbinu")),
				),
				P(Class("order-confirm-total"), g.Text("Za plaćanje: "+render.FormatRSD(sub.Summary.Total))),
				A(Href("/#porudzbina"), g.Text("Nazad na formu")),
			),
		),
	)
}
