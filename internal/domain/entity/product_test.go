package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSellingPrice(t *testing.T) {
	tests := []struct {
		name          string
		priceAfterTax float64
		margin        float64
		want          float64
	}{
		{"round number", 100, 14, 114},
		{"rounds to two decimals", 9.99, 14, 11.39},
		{"zero margin", 25.5, 0, 25.5},
		{"zero price", 0, 14, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeSellingPrice(tt.priceAfterTax, tt.margin))
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.236))
	assert.Equal(t, -1.24, Round2(-1.236))
	assert.Equal(t, 10.0, Round2(10))
}

func TestEffectiveThreshold(t *testing.T) {
	withOwn := Product{LowStockThreshold: 25}
	assert.Equal(t, 25, withOwn.EffectiveThreshold(10))

	withoutOwn := Product{}
	assert.Equal(t, 10, withoutOwn.EffectiveThreshold(10))
}
