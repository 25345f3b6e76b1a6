// Package pricing считает итоги заказа: сумму, скидку, доставку.
// Все функции чистые и не зависят от состояния сессии.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/ulazimo/kolagen/internal/domain"
)

const (
	FreeShippingThreshold int64 = 5000
	ShippingCost          int64 = 290
	// BulkQuantity единственное количество, на которое действует скидка
	BulkQuantity = 3
	MaxQuantity  = 99
)

var bulkFactor = decimal.RequireFromString("0.9")

// Catalog источник цен. Неизвестный товар считается отсутствующим.
type Catalog interface {
	Lookup(id domain.ProductID) (domain.Product, bool)
}

// Shipping бесплатная доставка от порога, пустой заказ доставку не платит
func Shipping(subtotal int64) int64 {
	switch {
	case subtotal <= 0:
		return 0
	case subtotal >= FreeShippingThreshold:
		return 0
	default:
		return ShippingCost
	}
}

// BulkDiscount 10% ровно на трёх штуках, округление половины вверх
func BulkDiscount(subtotal int64, quantity int) (discounted, discount int64) {
	if quantity != BulkQuantity {
		return subtotal, 0
	}
	discounted = decimal.NewFromInt(subtotal).Mul(bulkFactor).Round(0).IntPart()
	return discounted, subtotal - discounted
}

// ComputeCart итог корзины из нескольких позиций, без скидки за количество
func ComputeCart(c Catalog, lines []domain.CartLine) domain.PriceSummary {
	var s domain.PriceSummary
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		p, ok := c.Lookup(l.ProductID)
		if !ok {
			continue
		}
		total := p.UnitPrice * int64(l.Quantity)
		s.Lines = append(s.Lines, domain.SummaryLine{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  l.Quantity,
			UnitPrice: p.UnitPrice,
			Total:     total,
		})
		s.Subtotal += total
		s.ItemCount += l.Quantity
	}
	s.Shipping = Shipping(s.Subtotal)
	s.Total = s.Subtotal + s.Shipping
	return s
}

// ComputeSelection итог для одного товара со скидкой за количество
func ComputeSelection(c Catalog, sel domain.Selection) domain.PriceSummary {
	var s domain.PriceSummary
	p, ok := c.Lookup(sel.ProductID)
	if !ok || sel.Quantity <= 0 {
		return s
	}
	subtotal, discount := BulkDiscount(p.UnitPrice*int64(sel.Quantity), sel.Quantity)
	s.Lines = []domain.SummaryLine{{
		ProductID: p.ID,
		Name:      p.Name,
		Quantity:  sel.Quantity,
		UnitPrice: p.UnitPrice,
		Total:     subtotal,
	}}
	s.ItemCount = sel.Quantity
	s.Subtotal = subtotal
	s.Discount = discount
	s.Shipping = Shipping(subtotal)
	s.Total = subtotal + s.Shipping
	return s
}
