package service

import (
	"context"
	"errors"

	"github.com/ulazimo/kolagen/internal/domain"
	"github.com/ulazimo/kolagen/internal/metrics"
	"github.com/ulazimo/kolagen/internal/pricing"
	"github.com/ulazimo/kolagen/internal/render"
	"github.com/ulazimo/kolagen/internal/repository"
	"github.com/ulazimo/kolagen/internal/session"
)

// CartView корзина в боковой панели
type CartView struct {
	Lines   []domain.SummaryLine `json:"lines"`
	Count   int                  `json:"count"`
	Summary domain.PriceSummary  `json:"summary"`
	Total   string               `json:"total_label"`
}

// FormView состояние формы заказа с количествами по всем товарам
type FormView struct {
	Quantities    map[domain.ProductID]int `json:"quantities"`
	Summary       domain.PriceSummary      `json:"summary"`
	ShippingLabel string                   `json:"shipping_label"`
	TotalLabel    string                   `json:"total_label"`
	OrderText     string                   `json:"order_items"`
}

// CartService операции корзины и степперов формы заказа в рамках сессии
type CartService struct {
	sessions repository.SessionRepository
}

func NewCartService(sessions repository.SessionRepository) *CartService {
	return &CartService{sessions: sessions}
}

// Resolve находит сессию по id или создаёт новую
func (s *CartService) Resolve(ctx context.Context, id string) (*session.Session, bool, error) {
	if id != "" {
		sess, err := s.sessions.Get(ctx, id)
		if err == nil {
			return sess, false, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, false, err
		}
	}
	sess, err := s.sessions.Create(ctx)
	if err != nil {
		return nil, false, err
	}
	return sess, true, nil
}

// Add неизвестный товар и товар на максимуме молча игнорируются: added=false
func (s *CartService) Add(_ context.Context, sess *session.Session, id domain.ProductID) (view CartView, added bool) {
	_ = sess.Do(func(sess *session.Session) error {
		added = sess.Cart.Add(id)
		view = cartView(sess)
		return nil
	})
	if added {
		metrics.CartItemsAdded.WithLabelValues(string(id)).Inc()
	}
	return view, added
}

func (s *CartService) Remove(_ context.Context, sess *session.Session, id domain.ProductID) CartView {
	var view CartView
	_ = sess.Do(func(sess *session.Session) error {
		sess.Cart.Remove(id)
		view = cartView(sess)
		return nil
	})
	return view
}

// Step степпер количества в боковой корзине
func (s *CartService) Step(_ context.Context, sess *session.Session, id domain.ProductID, delta int) (CartView, error) {
	if delta != 1 && delta != -1 {
		return CartView{}, ErrInvalidInput
	}
	var view CartView
	_ = sess.Do(func(sess *session.Session) error {
		sess.Cart.Step(id, delta)
		view = cartView(sess)
		return nil
	})
	return view, nil
}

func (s *CartService) View(_ context.Context, sess *session.Session) CartView {
	var view CartView
	_ = sess.Do(func(sess *session.Session) error {
		view = cartView(sess)
		return nil
	})
	return view
}

// FormStep степпер формы заказа (+1/-1, в пределах 0..99)
func (s *CartService) FormStep(_ context.Context, sess *session.Session, id domain.ProductID, delta int) (FormView, error) {
	if delta != 1 && delta != -1 {
		return FormView{}, ErrInvalidInput
	}
	var view FormView
	_ = sess.Do(func(sess *session.Session) error {
		sess.Form.Step(id, delta)
		view = formView(sess)
		return nil
	})
	return view, nil
}

func (s *CartService) Form(_ context.Context, sess *session.Session) FormView {
	var view FormView
	_ = sess.Do(func(sess *session.Session) error {
		view = formView(sess)
		return nil
	})
	return view
}

func cartView(sess *session.Session) CartView {
	sum := sess.Cart.Summary()
	return CartView{
		Lines:   sum.Lines,
		Count:   sess.Cart.Count(),
		Summary: sum,
		Total:   render.FormatRSD(sum.Subtotal),
	}
}

func formView(sess *session.Session) FormView {
	sum := sess.Form.Summary()
	q := make(map[domain.ProductID]int)
	for _, l := range sess.Form.Lines() {
		q[l.ProductID] = l.Quantity
	}
	return FormView{
		Quantities:    q,
		Summary:       sum,
		ShippingLabel: render.ShippingLabel(sum, pricing.ShippingCost),
		TotalLabel:    render.FormatRSD(sum.Total),
		OrderText:     render.OrderText(sum.Lines),
	}
}
