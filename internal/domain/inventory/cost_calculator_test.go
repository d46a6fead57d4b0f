package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jquispe/puntoventa-api/internal/domain/inventory"
)

func TestWeightedAverageCost_PromedioPonderado(t *testing.T) {
	// 10 unidades a 100 + 5 unidades a 130 => (1000 + 650) / 15 = 110
	got := inventory.WeightedAverageCost(10, decimal.NewFromFloat(100), 5, decimal.NewFromFloat(130))
	assert.True(t, got.Equal(decimal.NewFromFloat(110)))
}

func TestWeightedAverageCost_SinStockPrevio(t *testing.T) {
	got := inventory.WeightedAverageCost(0, decimal.Zero, 8, decimal.NewFromFloat(45))
	assert.True(t, got.Equal(decimal.NewFromFloat(45)),
		"sin stock previo el costo promedio es el costo de la entrada")
}

func TestWeightedAverageCost_SumaCero(t *testing.T) {
	got := inventory.WeightedAverageCost(0, decimal.NewFromFloat(100), 0, decimal.NewFromFloat(50))
	assert.True(t, got.IsZero(), "sin unidades no hay promedio que calcular")
}
