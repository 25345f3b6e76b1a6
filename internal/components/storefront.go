package components

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ulazimo/kolagen/internal/domain"
	"github.com/ulazimo/kolagen/internal/pricing"
	"github.com/ulazimo/kolagen/internal/render"
	"github.com/ulazimo/kolagen/internal/service"
)

func Topbar(cartCount int) g.Node {
	return Header(
		Class("header"),
		Div(
			Class("container header-inner"),
			A(Href("#"), Class("logo"), g.Text("Kolagen Pure")),
			Nav(
				Class("nav-links"),
				A(Href("#proizvodi"), g.Text("Proizvodi")),
				A(Href("#prednosti"), g.Text("Prednosti")),
				A(Href("#utisci"), g.Text("Utisci")),
				A(Href("#porudzbina"), g.Text("Poručite")),
			),
			A(
				Href("#korpa"),
				Class("cart-btn"),
				g.Text("Korpa "),
				Span(Class("cart-count"), g.Text(strconv.Itoa(cartCount))),
			),
		),
	)
}

func ProductGrid(products []domain.Product) g.Node {
	return Section(
		ID("proizvodi"),
		Class("products"),
		H2(g.Text("Naši proizvodi")),
		Div(
			Class("products-grid"),
			g.Group(g.Map(products, productCard)),
		),
	)
}

func productCard(p domain.Product) g.Node {
	return Div(
		Class("product-card"),
		H3(g.Text(p.Name)),
		P(Class("product-price"), g.Text(render.FormatRSD(p.UnitPrice))),
		Form(
			Method("post"),
			Action("/cart/add"),
			Input(Type("hidden"), Name("product"), Value(string(p.ID))),
			Button(Type("submit"), Class("add-to-cart"), Data("product", string(p.ID)), g.Text("Dodaj u korpu")),
		),
	)
}

// CartSidebar боковая корзина: позиции, сумма, кнопка к форме заказа
func CartSidebar(view service.CartView) g.Node {
	return Div(
		ID("korpa"),
		Class("cart-sidebar"),
		Div(Class("cart-header"), H3(g.Text("Vaša korpa"))),
		CartItemsList(view),
		Div(
			Class("cart-footer"),
			Div(
				Class("cart-total-row"),
				Span(g.Text("Ukupno:")),
				Span(ID("cartTotal"), g.Text(view.Total)),
			),
			A(Href("#porudzbina"), ID("checkoutBtn"), Class("btn btn-primary"), g.Text("Nastavi na poručivanje")),
		),
	)
}

func CartItemsList(view service.CartView) g.Node {
	if len(view.Lines) == 0 {
		return Div(ID("cartItems"), P(Class("cart-empty"), g.Text("Vaša korpa je prazna")))
	}
	return Div(
		ID("cartItems"),
		g.Group(g.Map(view.Lines, func(l domain.SummaryLine) g.Node {
			return Div(
				Class("cart-item"),
				Data("id", string(l.ProductID)),
				Div(
					Class("cart-item-details"),
					H4(g.Text(l.Name)),
					P(g.Textf("Količina: %d", l.Quantity)),
					Div(Class("cart-item-price"), g.Text(render.FormatRSD(l.Total))),
				),
				Form(
					Method("post"),
					Action("/cart/remove"),
					Input(Type("hidden"), Name("product"), Value(string(l.ProductID))),
					Button(Type("submit"), Class("cart-item-remove"), Aria("label", "Ukloni"), g.Raw("&times;")),
				),
			)
		})),
	)
}

// OrderFormPanel форма заказа со степперами по каждому товару
func OrderFormPanel(products []domain.Product, view service.FormView, notices []domain.Notice) g.Node {
	return Section(
		ID("porudzbina"),
		Class("order"),
		H2(g.Text("Poručite online")),
		g.Group(g.Map(filterNotices(notices, domain.NoticeError), FormMessage)),
		Div(
			Class("order-products"),
			g.Group(g.Map(products, func(p domain.Product) g.Node {
				return stepperRow(p, view.Quantities[p.ID])
			})),
		),
		Form(
			ID("orderForm"),
			Method("post"),
			Action("/order"),
			customerFields(""),
			Input(Type("hidden"), ID("orderItemsField"), Name("orderItems"), Value(view.OrderText)),
			SummaryRows(view.Summary, view.ShippingLabel),
			Button(Type("submit"), ID("submitOrderBtn"), Class("btn btn-primary"), g.Text("Poruči")),
		),
	)
}

func stepperRow(p domain.Product, qty int) g.Node {
	step := func(delta int, label string) g.Node {
		return Form(
			Method("post"),
			Action("/order/step"),
			Input(Type("hidden"), Name("product"), Value(string(p.ID))),
			Input(Type("hidden"), Name("delta"), Value(strconv.Itoa(delta))),
			Button(Type("submit"), Class(fmt.Sprintf("qty-btn %s", qtyClass(delta))), Data("product", string(p.ID)), g.Text(label)),
		)
	}
	return Div(
		Class("order-product-row"),
		Span(Class("product-name"), g.Text(p.Name)),
		Span(Class("product-price"), g.Text(render.FormatRSD(p.UnitPrice))),
		step(-1, "-"),
		Input(ID("qty-"+string(p.ID)), Type("number"), Min("0"), Max(strconv.Itoa(pricing.MaxQuantity)), Value(strconv.Itoa(qty)), g.Attr("readonly")),
		step(1, "+"),
	)
}

func qtyClass(delta int) string {
	if delta > 0 {
		return "qty-plus"
	}
	return "qty-minus"
}

// customerFields поля покупателя; prefix разводит id, когда форм на странице две
func customerFields(prefix string) g.Node {
	return g.Group([]g.Node{
		textField(prefix, "name", "Ime i prezime", true),
		textField(prefix, "phone", "Telefon", true),
		textField(prefix, "email", "Email", false),
		textField(prefix, "address", "Adresa", true),
		textField(prefix, "city", "Grad", true),
		Label(For(prefix+"note"), g.Text("Napomena")),
		Textarea(ID(prefix+"note"), Name("note")),
	})
}

func textField(prefix, name, label string, required bool) g.Node {
	typ := "text"
	switch name {
	case "email":
		typ = "email"
	case "phone":
		typ = "tel"
	}
	return Div(
		Class("form-group"),
		Label(For(prefix+name), g.Text(label)),
		Input(ID(prefix+name), Name(name), Type(typ), g.If(required, Required())),
	)
}

// SelectedProductsList выбранные в форме товары
func SelectedProductsList(sum domain.PriceSummary) g.Node {
	if sum.Empty() {
		return Div(ID("selectedProducts"), P(Class("no-products"), g.Text("Niste izabrali nijedan proizvod")))
	}
	return Div(
		ID("selectedProducts"),
		g.Group(g.Map(sum.Lines, func(l domain.SummaryLine) g.Node {
			return Div(
				Class("selected-product-item"),
				Span(Class("product-name"), g.Text(l.Name)),
				Span(Class("product-qty"), g.Textf("x%d", l.Quantity)),
				Span(Class("product-price"), g.Text(render.FormatRSD(l.Total))),
			)
		})),
	)
}

// SummaryRows итоги формы заказа: товары, доставка, ukupno
func SummaryRows(sum domain.PriceSummary, shippingLabel string) g.Node {
	return Div(
		Class("order-summary"),
		SelectedProductsList(sum),
		g.If(sum.Discount > 0, Div(
			Class("summary-row summary-discount"),
			Span(g.Text("Popust:")),
			Span(g.Text("-"+render.FormatRSD(sum.Discount))),
		)),
		Div(
			Class("summary-row"),
			Span(g.Text("Dostava:")),
			Span(ID("summaryShipping"), g.Text(shippingLabel)),
		),
		Div(
			Class("summary-row summary-total"),
			Span(g.Text("Ukupno:")),
			Span(ID("summaryTotal"), g.Text(render.FormatRSD(sum.Total))),
		),
	)
}

// QuotePanel выбор одного товара с количеством и отдельная форма заказа
// этого пакета
func QuotePanel(products []domain.Product, sel domain.Selection, sum domain.PriceSummary) g.Node {
	return Section(
		ID("quote"),
		Class("quote-panel"),
		H2(g.Text("Izaberite paket")),
		Form(
			Method("get"),
			Action("/#quote"),
			Select(
				Name("product"),
				g.Group(g.Map(products, func(p domain.Product) g.Node {
					return Option(Value(string(p.ID)), g.If(p.ID == sel.ProductID, Selected()), g.Text(p.Name))
				})),
			),
			Input(Type("number"), Name("quantity"), Min("1"), Max(strconv.Itoa(pricing.MaxQuantity)), Value(strconv.Itoa(sel.Quantity))),
			Button(Type("submit"), g.Text("Izračunaj")),
		),
		P(Class("quote-hint"), g.Textf("Za %d pakovanja popust 10%%", pricing.BulkQuantity)),
		quoteRows(sum),
		g.If(!sum.Empty(), Form(
			ID("quoteOrderForm"),
			Method("post"),
			Action("/order"),
			Input(Type("hidden"), Name("product"), Value(string(sel.ProductID))),
			Input(Type("hidden"), Name("quantity"), Value(strconv.Itoa(sel.Quantity))),
			customerFields("quote-"),
			Button(Type("submit"), Class("btn btn-primary"), g.Text("Poruči paket")),
		)),
	)
}

func quoteRows(sum domain.PriceSummary) g.Node {
	row := func(label, value string) g.Node {
		return Div(Class("summary-row"), Span(g.Text(label)), Span(g.Text(value)))
	}
	return Div(
		Class("quote-summary"),
		g.Group(g.Map(sum.Lines, func(l domain.SummaryLine) g.Node {
			return row(fmt.Sprintf("%s x%d", l.Name, l.Quantity), render.FormatRSD(l.Total))
		})),
		g.If(sum.Discount > 0, row("Popust:", "-"+render.FormatRSD(sum.Discount))),
		row("Dostava:", render.ShippingLabel(sum, pricing.ShippingCost)),
		row("Ukupno:", render.FormatRSD(sum.Total)),
	)
}

// Testimonial отзыв покупателя
type Testimonial struct {
	Author string
	City   string
	Text   string
}

var DefaultTestimonials = []Testimonial{
	{Author: "Marija P.", City: "Beograd", Text: "Posle dva meseca koža mi je vidno zategnutija. Rastvara se bez ukusa."},
	{Author: "Jelena K.", City: "Novi Sad", Text: "Zglobovi me manje bole posle treninga. Dostava je stigla za dva dana."},
	{Author: "Milan S.", City: "Niš", Text: "Koristim Marine svako jutro u kafi. Preporučujem."},
	{Author: "Ana D.", City: "Kragujevac", Text: "Kosa i nokti su mi jači nego ikad. Beauty+ je moj favorit."},
	{Author: "Nikola R.", City: "Subotica", Text: "Konačno kolagen bez dodataka. Uzeo sam tri pakovanja uz popust."},
	{Author: "Ivana M.", City: "Čačak", Text: "Brza isporuka i ljubazna podrška. Naručiću ponovo."},
}

// TestimonialsSlider карточки отзывов с точками навигации
func TestimonialsSlider(items []Testimonial, view service.SlideView) g.Node {
	dots := make([]g.Node, 0, view.Total)
	for i := 0; i < view.Total; i++ {
		cls := "dot"
		if i == view.Current {
			cls = "dot active"
		}
		dots = append(dots, Form(
			Method("post"),
			Action(fmt.Sprintf("/testimonials/jump/%d", i)),
			Button(Type("submit"), Class(cls), Aria("label", fmt.Sprintf("Slajd %d", i+1))),
		))
	}
	first := view.Current * view.ItemsPerSlide
	return Section(
		ID("utisci"),
		Class("testimonials"),
		H2(g.Text("Šta kažu naši kupci")),
		Div(
			Class("testimonials-slider"),
			Div(
				Class("testimonials-track"),
				Data("offset", strconv.Itoa(view.Offset)),
				g.Group(g.Map(visible(items, first, view.ItemsPerSlide), func(t Testimonial) g.Node {
					return Div(
						Class("testimonial-card"),
						BlockQuote(g.Text(t.Text)),
						P(Class("testimonial-author"), Strong(g.Text(t.Author)), g.Text(", "+t.City)),
					)
				})),
			),
		),
		Div(Class("testimonial-dots"), g.Group(dots)),
	)
}

func visible(items []Testimonial, from, n int) []Testimonial {
	if from < 0 || from >= len(items) || n <= 0 {
		return nil
	}
	to := from + n
	if to > len(items) {
		to = len(items)
	}
	return items[from:to]
}

func NewsletterBlock(subscribed bool) g.Node {
	label := "Prijavi se"
	if subscribed {
		label = service.SubscribedLabel
	}
	return Section(
		ID("newsletter"),
		Class("newsletter"),
		H3(g.Text("Budite u toku")),
		P(g.Text("Prijavite se za novosti i posebne ponude.")),
		Form(
			Class("newsletter-form"),
			Method("post"),
			Action("/newsletter"),
			Input(Type("email"), Name("email"), Placeholder("Vaša email adresa"), Required()),
			Button(Type("submit"), g.Text(label)),
		),
	)
}

// NoticeStack всплывающие уведомления о добавлении в корзину
func NoticeStack(notices []domain.Notice) g.Node {
	added := filterNotices(notices, domain.NoticeAdded)
	if len(added) == 0 {
		return nil
	}
	return Div(
		Class("notifications"),
		g.Group(g.Map(added, func(n domain.Notice) g.Node {
			return Div(Class("cart-notification"), Role("status"), Span(g.Text(n.Text)))
		})),
	)
}

func FormMessage(n domain.Notice) g.Node {
	return Div(Class("form-message form-message-"+string(n.Kind)), Role("alert"), g.Text(n.Text))
}

func SuccessBanner(notices []domain.Notice) g.Node {
	ok := filterNotices(notices, domain.NoticeSuccess)
	if len(ok) == 0 {
		return nil
	}
	return Div(
		Class("order-success-banner"),
		Div(
			Class("success-content"),
			Div(
				Strong(g.Text(service.SuccessTitle)),
				P(g.Text(service.SuccessText)),
			),
			A(Href("/"), Class("close-banner"), Aria("label", "Zatvori"), g.Raw("&times;")),
		),
	)
}

func filterNotices(notices []domain.Notice, kind domain.NoticeKind) []domain.Notice {
	var out []domain.Notice
	for _, n := range notices {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

func PageFooter() g.Node {
	return Footer(
		Class("footer"),
		P(g.Textf("Besplatna dostava za porudžbine preko %s.", render.FormatRSD(pricing.FreeShippingThreshold))),
		P(g.Text("© Kolagen Pure")),
	)
}
