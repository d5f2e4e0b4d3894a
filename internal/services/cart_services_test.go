package services

import (
	"testing"

	"StorefrontAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coffee() model.Product {
	return model.Product{ID: "p1", Name: "Coffee", Price: 1990, Category: "Food"}
}

func mug() model.Product {
	return model.Product{ID: "p2", Name: "Mug", Price: 500, Category: "Home"}
}

func TestAddItem_NewLineThenIncrement(t *testing.T) {
	carts := NewCartService()

	cart := carts.AddItem("s1", coffee())
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	cart = carts.AddItem("s1", coffee())
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)

	cart = carts.AddItem("s1", mug())
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "p1", cart.Lines[0].ProductID)
	assert.Equal(t, "p2", cart.Lines[1].ProductID)
}

func TestAddItem_LineCountMatchesDistinctProducts(t *testing.T) {
	carts := NewCartService()

	adds := []model.Product{coffee(), mug(), coffee(), coffee(), mug()}
	for _, p := range adds {
		carts.AddItem("s1", p)
	}

	cart := carts.Get("s1")
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
	assert.Equal(t, 2, cart.Lines[1].Quantity)
}

func TestSetQuantity_FloorEffect(t *testing.T) {
	carts := NewCartService()
	carts.AddItem("s1", coffee())
	carts.SetQuantity("s1", "p1", 4)

	for _, q := range []int{0, -1, -100} {
		cart := carts.SetQuantity("s1", "p1", q)
		require.Len(t, cart.Lines, 1, "line must be kept, not removed")
		assert.Equal(t, 4, cart.Lines[0].Quantity)
	}
}

func TestSetQuantity_UnknownProductIsNoop(t *testing.T) {
	carts := NewCartService()
	carts.AddItem("s1", coffee())

	cart := carts.SetQuantity("s1", "nope", 7)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	carts := NewCartService()
	carts.AddItem("s1", coffee())
	carts.AddItem("s1", mug())

	cart := carts.RemoveItem("s1", "p1")
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "p2", cart.Lines[0].ProductID)

	// removing an absent product is a no-op
	cart = carts.RemoveItem("s1", "p1")
	assert.Len(t, cart.Lines, 1)
}

func TestClear(t *testing.T) {
	carts := NewCartService()
	carts.AddItem("s1", coffee())
	carts.AddItem("s1", mug())

	carts.Clear("s1")
	assert.Empty(t, carts.Get("s1").Lines)
	assert.Equal(t, model.Cents(0), carts.Subtotal("s1"))

	// clearing an empty cart is fine
	carts.Clear("s1")
	assert.Empty(t, carts.Get("s1").Lines)
}

func TestSubtotal_Exact(t *testing.T) {
	carts := NewCartService()

	// 19.90 x 3 + 5.00 x 1 = 64.70, exactly
	carts.AddItem("s1", coffee())
	carts.AddItem("s1", coffee())
	carts.AddItem("s1", coffee())
	carts.AddItem("s1", mug())

	subtotal := carts.Subtotal("s1")
	assert.Equal(t, model.Cents(6470), subtotal)
	assert.Equal(t, "64.70", subtotal.String())
}

func TestCarts_AreIsolatedPerSession(t *testing.T) {
	carts := NewCartService()
	carts.AddItem("s1", coffee())
	carts.AddItem("s2", mug())

	assert.Equal(t, "p1", carts.Get("s1").Lines[0].ProductID)
	assert.Equal(t, "p2", carts.Get("s2").Lines[0].ProductID)

	carts.Clear("s1")
	assert.Empty(t, carts.Get("s1").Lines)
	assert.Len(t, carts.Get("s2").Lines, 1)
}
