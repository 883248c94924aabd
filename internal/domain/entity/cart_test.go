package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func earrings() Product {
	return Product{ID: 1, Name: "Elegant Gold Earrings", Category: "Earrings", Price: 45}
}

func lipstick() Product {
	return Product{ID: 5, Name: "Matte Red Lipstick", Category: "Lipstick", Price: 25}
}

func TestCart_AddItem_MergesSameProduct(t *testing.T) {
	var cart Cart
	cart.AddItem(earrings())
	cart.AddItem(earrings())
	cart.AddItem(lipstick())

	assert.Len(t, cart.Lines, 2)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 1, cart.Lines[1].Quantity)
}

func TestCart_AddItem_KeepsFirstAddOrder(t *testing.T) {
	var cart Cart
	cart.AddItem(lipstick())
	cart.AddItem(earrings())
	cart.AddItem(lipstick())

	assert.Equal(t, int64(5), cart.Lines[0].Product.ID)
	assert.Equal(t, int64(1), cart.Lines[1].Product.ID)
}

func TestCart_Total(t *testing.T) {
	var cart Cart
	cart.AddItem(earrings())
	cart.AddItem(earrings())
	cart.AddItem(lipstick())

	// 45*2 + 25*1
	assert.InDelta(t, 115.0, cart.Total(), 1e-9)
	assert.Equal(t, 3, cart.ItemCount())
}

func TestCart_RemoveItem_DropsWholeLine(t *testing.T) {
	var cart Cart
	cart.AddItem(earrings())
	cart.AddItem(earrings())
	cart.AddItem(lipstick())

	cart.RemoveItem(1)

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(5), cart.Lines[0].Product.ID)
	assert.Equal(t, 1, cart.ItemCount())
}

func TestCart_RemoveItem_UnknownIDIsNoOp(t *testing.T) {
	var cart Cart
	cart.AddItem(earrings())

	cart.RemoveItem(999)

	assert.Len(t, cart.Lines, 1)
}

func TestCart_Clear(t *testing.T) {
	var cart Cart
	cart.AddItem(earrings())
	assert.False(t, cart.IsEmpty())

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.Total())
	assert.Zero(t, cart.ItemCount())
}

func TestCart_PriceSnapshotSurvivesCatalogChange(t *testing.T) {
	var cart Cart
	product := earrings()
	cart.AddItem(product)

	product.Price = 999

	assert.InDelta(t, 45.0, cart.Total(), 1e-9)
}
