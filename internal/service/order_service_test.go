package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ulazimo/kolagen/internal/domain"
	"github.com/ulazimo/kolagen/internal/repository"
	"github.com/ulazimo/kolagen/internal/session"
)

type fixture struct {
	catalog  *repository.MemoryCatalog
	sessions *repository.MemorySessions
	cart     *CartService
	orders   *OrderService
}

func setup(t *testing.T) *fixture {
	t.Helper()
	catalog := repository.NewMemoryCatalog(repository.DefaultProducts)
	sessions := repository.NewMemorySessions(catalog, session.Options{Testimonials: 6}, time.Hour, nil)
	return &fixture{
		catalog:  catalog,
		sessions: sessions,
		cart:     NewCartService(sessions),
		orders: NewOrderService(catalog, OrderConfig{
			FormEndpoint: "https://formsubmit.example/orders",
			SiteURL:      "https://kolagen.example/",
		}, nil),
	}
}

func (f *fixture) session(t *testing.T) *session.Session {
	t.Helper()
	sess, created, err := f.cart.Resolve(context.Background(), "")
	if err != nil || !created {
		t.Fatalf("resolve: created=%v err=%v", created, err)
	}
	t.Cleanup(sess.Close)
	return sess
}

func validCustomer() domain.Customer {
	return domain.Customer{
		Name:    " Marija Petrović ",
		Phone:   "0601234567",
		Email:   "marija@example.com",
		Address: "Knez Mihailova 1",
		City:    "Beograd",
	}
}

func TestQuote(t *testing.T) {
	ctx := context.Background()
	f := setup(t)

	sum, err := f.orders.Quote(ctx, domain.ProductPure, 3)
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if sum.Total != 9423 || sum.Discount != 1047 {
		t.Fatalf("unexpected quote %+v", sum)
	}
	if _, err := f.orders.Quote(ctx, domain.ProductPure, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := f.orders.Quote(ctx, domain.ProductPure, 100); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, err := f.orders.Quote(ctx, "ghost", 1); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestPrepare_FromFormSteppers(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	sess := f.session(t)

	for _, id := range []domain.ProductID{domain.ProductMarine, domain.ProductMarine, domain.ProductBeauty} {
		if _, err := f.cart.FormStep(ctx, sess, id, 1); err != nil {
			t.Fatalf("step: %v", err)
		}
	}

	sub, err := f.orders.Prepare(ctx, sess, OrderRequest{Customer: validCustomer()})
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	want := map[string]string{
		"name":       "Marija Petrović",
		"orderItems": "Kolagen Marine - 2x (8.580 RSD), Kolagen Beauty+ - 1x (4.990 RSD)",
		"shipping":   "Besplatno",
		"total":      "13.570 RSD",
		"_next":      "https://kolagen.example/?success=true",
		"_template":  "table",
		"_captcha":   "false",
		"_subject":   "Nova narudžbina - Kolagen Pure",
	}
	for k, v := range want {
		if sub.Fields[k] != v {
			t.Fatalf("field %s: want %q, got %q", k, v, sub.Fields[k])
		}
	}
	if sub.Action != "https://formsubmit.example/orders" {
		t.Fatalf("unexpected action %q", sub.Action)
	}
	if len(sess.Notices.Active()) != 0 {
		t.Fatalf("successful prepare must not post a message")
	}
}

func TestPrepare_SingleProductSelection(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	sess := f.session(t)

	sub, err := f.orders.Prepare(ctx, sess, OrderRequest{Customer: validCustomer(), Product: domain.ProductPure, Quantity: 3})
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if sub.Summary.Total != 9423 {
		t.Fatalf("unexpected total %d", sub.Summary.Total)
	}
	if sub.Fields["orderItems"] != "Kolagen Peptidi Pure - 3x (9.423 RSD)" {
		t.Fatalf("unexpected order text %q", sub.Fields["orderItems"])
	}
}

func TestPrepare_NoProducts(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	sess := f.session(t)

	_, err := f.orders.Prepare(ctx, sess, OrderRequest{Customer: validCustomer()})
	if !errors.Is(err, ErrNoProducts) {
		t.Fatalf("expected no products, got %v", err)
	}
	active := sess.Notices.Active()
	if len(active) != 1 || active[0].Text != MsgNoProducts || active[0].Kind != domain.NoticeError {
		t.Fatalf("expected form message, got %+v", active)
	}
}

func TestPrepare_MissingFields(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	sess := f.session(t)
	_, _ = f.cart.FormStep(ctx, sess, domain.ProductPure, 1)

	c := validCustomer()
	c.City = "   "
	_, err := f.orders.Prepare(ctx, sess, OrderRequest{Customer: c})
	var fe *FieldError
	if !errors.As(err, &fe) || !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected field error, got %v", err)
	}
	if len(fe.Fields) != 1 || fe.Fields[0] != "city" {
		t.Fatalf("unexpected fields %v", fe.Fields)
	}
	if UserMessage(err) != MsgMissingFields {
		t.Fatalf("unexpected message %q", UserMessage(err))
	}
}

func TestPrepare_InvalidEmail(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	sess := f.session(t)
	_, _ = f.cart.FormStep(ctx, sess, domain.ProductPure, 1)

	c := validCustomer()
	c.Email = "not-an-email"
	_, err := f.orders.Prepare(ctx, sess, OrderRequest{Customer: c})
	if UserMessage(err) != MsgInvalidEmail {
		t.Fatalf("expected email message, got %q (%v)", UserMessage(err), err)
	}
}

func TestPrepare_EmptyEmailAllowed(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	sess := f.session(t)

	c := validCustomer()
	c.Email = ""
	if _, err := f.orders.Prepare(ctx, sess, OrderRequest{Customer: c, Product: domain.ProductBeauty, Quantity: 1}); err != nil {
		t.Fatalf("prepare: %v", err)
	}
}

func TestPrepare_SelectionQuantityRange(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	sess := f.session(t)

	for _, qty := range []int{0, 100} {
		_, err := f.orders.Prepare(ctx, sess, OrderRequest{Customer: validCustomer(), Product: domain.ProductPure, Quantity: qty})
		if !errors.Is(err, ErrInvalidQuantity) || !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("qty %d: expected invalid quantity, got %v", qty, err)
		}
		if UserMessage(err) != MsgQuantity {
			t.Fatalf("qty %d: unexpected message %q", qty, UserMessage(err))
		}
	}

	var msg string
	for _, n := range sess.Notices.Active() {
		if n.Kind == domain.NoticeError {
			msg = n.Text
		}
	}
	if msg != MsgQuantity {
		t.Fatalf("form message %q", msg)
	}
}
