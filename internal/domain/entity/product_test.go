package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_StockStatus(t *testing.T) {
	tests := []struct {
		name  string
		stock int
		want  StockStatus
	}{
		{"zero stock is out", 0, StockStatusOut},
		{"one unit is low", 1, StockStatusLow},
		{"just below threshold is low", LowStockThreshold - 1, StockStatusLow},
		{"threshold itself is healthy", LowStockThreshold, StockStatusIn},
		{"plenty is healthy", 50, StockStatusIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := Product{Stock: tt.stock}
			assert.Equal(t, tt.want, product.StockStatus())
		})
	}
}

func TestProduct_Matches(t *testing.T) {
	product := Product{Name: "Elegant Gold Earrings", Category: "Earrings"}

	assert.True(t, product.Matches(""))
	assert.True(t, product.Matches("gold"))
	assert.True(t, product.Matches("GOLD"))
	assert.True(t, product.Matches("earr"))
	assert.False(t, product.Matches("lipstick"))
}

func TestStockEmptyPolicy_IsValid(t *testing.T) {
	assert.True(t, StockEmptyUnchanged.IsValid())
	assert.True(t, StockEmptyReject.IsValid())
	assert.False(t, StockEmptyPolicy("maybe").IsValid())
}
