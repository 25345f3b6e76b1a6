package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulazimo/kolagen/internal/domain"
)

type mapCatalog map[domain.ProductID]domain.Product

func (m mapCatalog) Lookup(id domain.ProductID) (domain.Product, bool) {
	p, ok := m[id]
	return p, ok
}

var catalog = mapCatalog{
	domain.ProductPure:   {ID: domain.ProductPure, Name: "Kolagen Peptidi Pure", UnitPrice: 3490},
	domain.ProductMarine: {ID: domain.ProductMarine, Name: "Kolagen Marine", UnitPrice: 4290},
	domain.ProductBeauty: {ID: domain.ProductBeauty, Name: "Kolagen Beauty+", UnitPrice: 4990},
}

func TestAdd_MergesSameProduct(t *testing.T) {
	c := New(catalog)
	require.True(t, c.Add(domain.ProductPure))
	require.True(t, c.Add(domain.ProductPure))

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Quantity(domain.ProductPure))
	assert.Equal(t, 2, c.Count())
	assert.Equal(t, int64(6980), c.Summary().Subtotal)
}

func TestAdd_KeepsInsertionOrder(t *testing.T) {
	c := New(catalog)
	c.Add(domain.ProductBeauty)
	c.Add(domain.ProductPure)
	c.Add(domain.ProductBeauty)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, domain.ProductBeauty, lines[0].ProductID)
	assert.Equal(t, domain.ProductPure, lines[1].ProductID)
}

func TestAdd_UnknownIgnored(t *testing.T) {
	c := New(catalog)
	fired := false
	c.OnAdd(func(domain.Product, domain.CartLine) { fired = true })

	assert.False(t, c.Add("ghost"))
	assert.Zero(t, c.Len())
	assert.False(t, fired)
}

func TestAdd_FiresHook(t *testing.T) {
	c := New(catalog)
	var got []domain.CartLine
	c.OnAdd(func(p domain.Product, l domain.CartLine) {
		assert.Equal(t, "Kolagen Marine", p.Name)
		got = append(got, l)
	})
	c.Add(domain.ProductMarine)
	c.Add(domain.ProductMarine)

	require.Len(t, got, 2)
	assert.Equal(t, 2, got[1].Quantity)
}

func TestAdd_CappedAtMax(t *testing.T) {
	c := New(catalog)
	fired := 0
	c.OnAdd(func(domain.Product, domain.CartLine) { fired++ })
	for i := 0; i < 99; i++ {
		require.True(t, c.Add(domain.ProductPure))
	}

	assert.False(t, c.Add(domain.ProductPure), "add past the cap is rejected")
	assert.Equal(t, 99, c.Quantity(domain.ProductPure))
	assert.Equal(t, 99, fired, "no hook once the cap blocks the increment")
}

func TestRemove(t *testing.T) {
	c := New(catalog)
	c.Add(domain.ProductPure)
	c.Add(domain.ProductMarine)

	assert.True(t, c.Remove(domain.ProductPure))
	assert.False(t, c.Remove(domain.ProductPure))
	assert.False(t, c.Remove(domain.ProductBeauty))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, domain.ProductMarine, c.Lines()[0].ProductID)
}

func TestStep_Clamps(t *testing.T) {
	c := New(catalog)

	q, ok := c.Step(domain.ProductPure, -1)
	assert.True(t, ok)
	assert.Zero(t, q)
	assert.Zero(t, c.Len(), "decrement of an absent line must not create it")

	q, _ = c.Step(domain.ProductPure, 1)
	assert.Equal(t, 1, q)
	q, _ = c.Step(domain.ProductPure, -1)
	assert.Zero(t, q)
	q, _ = c.Step(domain.ProductPure, -1)
	assert.Zero(t, q)
	assert.Equal(t, 1, c.Len(), "zero line stays in place")
	assert.False(t, c.HasProducts())

	q, _ = c.Step(domain.ProductPure, 500)
	assert.Equal(t, 99, q)

	_, ok = c.Step("ghost", 1)
	assert.False(t, ok)
}

func TestNewForm_SeedsZeroLines(t *testing.T) {
	c := NewForm(catalog, []domain.ProductID{domain.ProductPure, "ghost", domain.ProductMarine, domain.ProductBeauty})

	require.Equal(t, 3, c.Len())
	assert.False(t, c.HasProducts())
	assert.True(t, c.Summary().Empty())

	c.Step(domain.ProductMarine, 1)
	c.Step(domain.ProductMarine, 1)
	c.Step(domain.ProductBeauty, 1)
	sum := c.Summary()
	assert.Equal(t, int64(13570), sum.Subtotal)
	assert.Zero(t, sum.Shipping)
	require.Len(t, sum.Lines, 2)
}

func TestLines_ReturnsCopy(t *testing.T) {
	c := New(catalog)
	c.Add(domain.ProductPure)
	lines := c.Lines()
	lines[0].Quantity = 50
	assert.Equal(t, 1, c.Quantity(domain.ProductPure))
}

func TestClear(t *testing.T) {
	c := New(catalog)
	c.Add(domain.ProductPure)
	c.Clear()
	assert.Zero(t, c.Len())
	assert.True(t, c.Summary().Empty())
}
