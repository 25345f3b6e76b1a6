package cart

import (
	"github.com/ulazimo/kolagen/internal/domain"
	"github.com/ulazimo/kolagen/internal/pricing"
)

// AddHook вызывается после каждого успешного Add
type AddHook func(p domain.Product, line domain.CartLine)

// Cart упорядоченный список позиций одной сессии. Не потокобезопасен:
// владелец (сессия) сериализует вызовы.
type Cart struct {
	catalog pricing.Catalog
	lines   []domain.CartLine
	onAdd   AddHook
}

func New(catalog pricing.Catalog) *Cart {
	return &Cart{catalog: catalog}
}

// NewForm корзина формы заказа: все товары каталога с количеством 0
func NewForm(catalog pricing.Catalog, ids []domain.ProductID) *Cart {
	c := New(catalog)
	for _, id := range ids {
		if _, ok := catalog.Lookup(id); ok {
			c.lines = append(c.lines, domain.CartLine{ProductID: id, Quantity: 0})
		}
	}
	return c
}

func (c *Cart) OnAdd(h AddHook) { c.onAdd = h }

func (c *Cart) index(id domain.ProductID) int {
	for i, l := range c.lines {
		if l.ProductID == id {
			return i
		}
	}
	return -1
}

// Add +1 к существующей позиции или новая позиция с количеством 1.
// false для неизвестного товара и для позиции, уже упёршейся в MaxQuantity.
func (c *Cart) Add(id domain.ProductID) bool {
	p, ok := c.catalog.Lookup(id)
	if !ok {
		return false
	}
	i := c.index(id)
	switch {
	case i < 0:
		c.lines = append(c.lines, domain.CartLine{ProductID: id, Quantity: 1})
		i = len(c.lines) - 1
	case c.lines[i].Quantity >= pricing.MaxQuantity:
		return false
	default:
		c.lines[i].Quantity++
	}
	if c.onAdd != nil {
		c.onAdd(p, c.lines[i])
	}
	return true
}

// Remove удаляет позицию целиком; для отсутствующей ничего не делает
func (c *Cart) Remove(id domain.ProductID) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return true
}

// Step меняет количество на delta в пределах [0, 99]. Позиция с нулём
// остаётся в корзине, но в расчёт не попадает.
func (c *Cart) Step(id domain.ProductID, delta int) (int, bool) {
	if _, ok := c.catalog.Lookup(id); !ok {
		return 0, false
	}
	i := c.index(id)
	if i < 0 {
		if delta <= 0 {
			return 0, true
		}
		c.lines = append(c.lines, domain.CartLine{ProductID: id})
		i = len(c.lines) - 1
	}
	q := c.lines[i].Quantity + delta
	if q < 0 {
		q = 0
	}
	if q > pricing.MaxQuantity {
		q = pricing.MaxQuantity
	}
	c.lines[i].Quantity = q
	return q, true
}

func (c *Cart) Quantity(id domain.ProductID) int {
	if i := c.index(id); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Lines копия позиций, включая нулевые
func (c *Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int { return len(c.lines) }

// Count сумма количеств по всем позициям
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// HasProducts есть ли хоть одна позиция с ненулевым количеством
func (c *Cart) HasProducts() bool { return c.Count() > 0 }

func (c *Cart) Clear() { c.lines = c.lines[:0] }

func (c *Cart) Summary() domain.PriceSummary {
	return pricing.ComputeCart(c.catalog, c.lines)
}
