package repository

import (
	"context"

	"github.com/ulazimo/kolagen/internal/domain"
)

// DefaultProducts ассортимент магазина
var DefaultProducts = []domain.Product{
	{ID: domain.ProductPure, Name: "Kolagen Peptidi Pure", UnitPrice: 3490},
	{ID: domain.ProductMarine, Name: "Kolagen Marine", UnitPrice: 4290},
	{ID: domain.ProductBeauty, Name: "Kolagen Beauty+", UnitPrice: 4990},
}

// MemoryCatalog неизменяемый каталог, заполняется один раз при старте.
// Блокировки не нужны: после конструктора данные только читаются.
type MemoryCatalog struct {
	order []domain.ProductID
	byID  map[domain.ProductID]domain.Product
}

func NewMemoryCatalog(products []domain.Product) *MemoryCatalog {
	c := &MemoryCatalog{byID: make(map[domain.ProductID]domain.Product, len(products))}
	for _, p := range products {
		if _, dup := c.byID[p.ID]; dup {
			continue
		}
		c.order = append(c.order, p.ID)
		c.byID[p.ID] = p
	}
	return c
}

// Ensure interfaces
var _ ProductRepository = (*MemoryCatalog)(nil)

func (c *MemoryCatalog) Lookup(id domain.ProductID) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *MemoryCatalog) GetByID(_ context.Context, id domain.ProductID) (*domain.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	// return copy
	cp := p
	return &cp, nil
}

// List в порядке каталога
func (c *MemoryCatalog) List(_ context.Context, f ProductFilter) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(c.order))
	for _, id := range c.order {
		p := c.byID[id]
		if !containsIgnoreCase(p.Name, f.NameSubstring) {
			continue
		}
		if f.MinPrice != nil && p.UnitPrice < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.UnitPrice > *f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *MemoryCatalog) IDs() []domain.ProductID {
	out := make([]domain.ProductID, len(c.order))
	copy(out, c.order)
	return out
}
