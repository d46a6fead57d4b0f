package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (SKU).
// Price y Cost se expresan siempre en la moneda base del negocio; la conversión
// a divisa extranjera ocurre en el carrito al momento de agregar la línea.
// Cost es promedio ponderado y se recalcula en cada recepción de compra.
type Product struct {
	ID        string
	Code      string // SKU único
	Name      string
	Category  string
	Brand     string
	Location  string // ubicación física (estante, almacén)
	Price     decimal.Decimal // precio de venta (moneda base)
	Cost      decimal.Decimal // costo promedio ponderado (moneda base)
	Stock     int64           // existencias actuales
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PurchaseCost devuelve el costo base a usar al agregar el producto a un
// carrito de compra: el costo promedio si existe, o el 70% del precio de venta
// como estimación inicial.
func (p *Product) PurchaseCost() decimal.Decimal {
	if p.Cost.GreaterThan(decimal.Zero) {
		return p.Cost
	}
	return p.Price.Mul(decimal.NewFromFloat(0.7))
}
