package checkout_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jquispe/puntoventa-api/internal/domain"
	"github.com/jquispe/puntoventa-api/internal/domain/checkout"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del carrito: altas con validación de stock, conversión de moneda al
// agregar, ajuste de cantidades, totales con IGV incluido y la asimetría del
// cambio de divisa (solo se convierte al salir de la moneda base).
// ──────────────────────────────────────────────────────────────────────────────

func productoPrueba() *entity.Product {
	return &entity.Product{
		ID:    "p1",
		Code:  "LAP-001",
		Name:  "Laptop HP 15",
		Price: decimal.NewFromFloat(2500),
		Cost:  decimal.NewFromFloat(1800),
		Stock: 5,
	}
}

func TestCart_AddItem_AgregaYAcumula(t *testing.T) {
	c := checkout.NewCart(checkout.KindVenta, "PEN")
	p := productoPrueba()

	require.NoError(t, c.AddItem(p))
	require.NoError(t, c.AddItem(p))

	lines := c.Lines()
	require.Len(t, lines, 1, "agregar dos veces el mismo producto debe acumular en una línea")
	assert.Equal(t, int64(2), lines[0].Quantity)
	assert.True(t, lines[0].UnitPrice.Equal(decimal.NewFromFloat(2500)))
}

func TestCart_AddItem_SinStockEnVenta(t *testing.T) {
	c := checkout.NewCart(checkout.KindVenta, "PEN")
	p := productoPrueba()
	p.Stock = 0

	err := c.AddItem(p)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock,
		"un producto sin stock no debe entrar al carrito de venta")
	assert.True(t, c.IsEmpty())
}

func TestCart_AddItem_IncrementoTopeadoPorStock(t *testing.T) {
	c := checkout.NewCart(checkout.KindVenta, "PEN")
	p := productoPrueba()
	p.Stock = 1

	require.NoError(t, c.AddItem(p))
	err := c.AddItem(p)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(1), c.Lines()[0].Quantity, "la cantidad no debe superar el stock")
}

func TestCart_AddItem_CompraSinTopeYConCosto(t *testing.T) {
	c := checkout.NewCart(checkout.KindCompra, "PEN")
	p := productoPrueba()
	p.Stock = 0 // recibir mercadería no depende del stock actual

	require.NoError(t, c.AddItem(p))
	assert.True(t, c.Lines()[0].UnitPrice.Equal(decimal.NewFromFloat(1800)),
		"las compras deben tomar el costo registrado, no el precio de venta")
}

func TestCart_AddItem_CompraSinCostoUsaFraccionDelPrecio(t *testing.T) {
	c := checkout.NewCart(checkout.KindCompra, "PEN")
	p := productoPrueba()
	p.Cost = decimal.Zero

	require.NoError(t, c.AddItem(p))
	esperado := decimal.NewFromFloat(2500).Mul(decimal.NewFromFloat(0.7))
	assert.True(t, c.Lines()[0].UnitPrice.Equal(esperado),
		"sin costo registrado se estima el 70%% del precio de lista")
}

func TestCart_AddItem_ConvierteAlAgregarEnDivisa(t *testing.T) {
	c := checkout.NewCart(checkout.KindVenta, "PEN")
	require.NoError(t, c.SetExchangeRate(decimal.NewFromFloat(3.5)))
	c.SetCurrency("USD")

	require.NoError(t, c.AddItem(productoPrueba()))

	esperado := decimal.NewFromFloat(2500).Div(decimal.NewFromFloat(3.5))
	assert.True(t, c.Lines()[0].UnitPrice.Equal(esperado),
		"en divisa extranjera el precio se divide por el tipo de cambio al agregar")
}

func TestCart_SetQuantity_ClampYTope(t *testing.T) {
	c := checkout.NewCart(checkout.KindVenta, "PEN")
	p := productoPrueba()
	require.NoError(t, c.AddItem(p))

	require.NoError(t, c.SetQuantity("p1", 0, p.Stock))
	assert.Equal(t, int64(1), c.Lines()[0].Quantity, "cantidades menores a 1 se ajustan a 1")

	err := c.SetQuantity("p1", 6, p.Stock)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(1), c.Lines()[0].Quantity, "un ajuste rechazado no debe tocar la línea")

	require.NoError(t, c.SetQuantity("p1", 5, p.Stock))
	assert.Equal(t, int64(5), c.Lines()[0].Quantity)
}

func TestCart_SetQuantity_ProductoInexistente(t *testing.T) {
	c := checkout.NewCart(checkout.KindVenta, "PEN")
	err := c.SetQuantity("nope", 2, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCart_OverridePrice(t *testing.T) {
	c := checkout.NewCart(checkout.KindVenta, "PEN")
	require.NoError(t, c.AddItem(productoPrueba()))

	require.NoError(t, c.OverridePrice("p1", decimal.NewFromFloat(2200)))
	assert.True(t, c.Lines()[0].UnitPrice.Equal(decimal.NewFromFloat(2200)))

	err := c.OverridePrice("p1", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount, "el precio manual debe ser positivo")
}

func TestCart_RemoveItem(t *testing.T) {
	c := checkout.NewCart(checkout.KindVenta, "PEN")
	require.NoError(t, c.AddItem(productoPrueba()))

	c.RemoveItem("p1")
	assert.True(t, c.IsEmpty())

	c.RemoveItem("p1") // eliminar lo inexistente no debe fallar
}

// ── Moneda y tipo de cambio ───────────────────────────────────────────────────

func TestCart_SetCurrency_ConvierteAlSalirDeLaBase(t *testing.T) {
	c := checkout.NewCart(checkout.KindVenta, "PEN")
	require.NoError(t, c.AddItem(productoPrueba()))
	require.NoError(t, c.SetExchangeRate(decimal.NewFromFloat(4)))

	c.SetCurrency("USD")

	assert.Equal(t, "USD", c.Currency())
	assert.True(t, c.Lines()[0].UnitPrice.Equal(decimal.NewFromFloat(625)),
		"al pasar de PEN a USD las líneas existentes se dividen por el tipo de cambio")
}

func TestCart_SetCurrency_NoReconvierteAlVolver(t *testing.T) {
	c := checkout.NewCart(checkout.KindVenta, "PEN")
	require.NoError(t, c.AddItem(productoPrueba()))
	require.NoError(t, c.SetExchangeRate(decimal.NewFromFloat(4)))

	c.SetCurrency("USD")
	c.SetCurrency("PEN")

	assert.Equal(t, "PEN", c.Currency())
	assert.True(t, c.Lines()[0].UnitPrice.Equal(decimal.NewFromFloat(625)),
		"volver a la moneda base no reconvierte los precios ya divididos")
}

func TestCart_SetExchangeRate_Invalido(t *testing.T) {
	c := checkout.NewCart(checkout.KindVenta, "PEN")
	assert.ErrorIs(t, c.SetExchangeRate(decimal.Zero), domain.ErrInvalidAmount)
	assert.ErrorIs(t, c.SetExchangeRate(decimal.NewFromFloat(-1)), domain.ErrInvalidAmount)
}

// ── Totales e IGV ─────────────────────────────────────────────────────────────

func TestCart_Totals_DesglosaIGVIncluido(t *testing.T) {
	c := checkout.NewCart(checkout.KindVenta, "PEN")
	p := productoPrueba()
	p.Price = decimal.NewFromFloat(118)
	require.NoError(t, c.AddItem(p))

	subtotal, tax, total := c.Totals(entity.DocTicketVenta)

	assert.True(t, total.Equal(decimal.NewFromFloat(118)))
	assert.True(t, subtotal.Round(2).Equal(decimal.NewFromFloat(100)),
		"el subtotal es el total sin IGV: 118 / 1.18 = 100")
	assert.True(t, tax.Round(2).Equal(decimal.NewFromFloat(18)))
}

func TestCart_Totals_NotaEntradaExenta(t *testing.T) {
	c := checkout.NewCart(checkout.KindCompra, "PEN")
	require.NoError(t, c.AddItem(productoPrueba()))

	subtotal, tax, total := c.Totals(entity.DocNotaEntrada)

	assert.True(t, subtotal.Equal(total), "la nota de entrada no discrimina IGV")
	assert.True(t, tax.IsZero())
}

func TestCart_GrandTotal_SumaLineas(t *testing.T) {
	c := checkout.NewCart(checkout.KindVenta, "PEN")
	p1 := productoPrueba()
	p2 := productoPrueba()
	p2.ID, p2.Price = "p2", decimal.NewFromFloat(100)

	require.NoError(t, c.AddItem(p1))
	require.NoError(t, c.AddItem(p2))
	require.NoError(t, c.SetQuantity("p2", 3, 5))

	assert.True(t, c.GrandTotal().Equal(decimal.NewFromFloat(2800)))
}

func TestCart_Clear_ConservaMonedaYTipoCambio(t *testing.T) {
	c := checkout.NewCart(checkout.KindVenta, "PEN")
	require.NoError(t, c.AddItem(productoPrueba()))
	require.NoError(t, c.SetExchangeRate(decimal.NewFromFloat(3.6)))
	c.SetCurrency("USD")

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, "USD", c.Currency())
	assert.True(t, c.ExchangeRate().Equal(decimal.NewFromFloat(3.6)))
}

func TestCart_Restore_RecuperaCotizacion(t *testing.T) {
	c := checkout.NewCart(checkout.KindVenta, "PEN")
	q := &entity.Quotation{
		Currency:     "USD",
		ExchangeRate: decimal.NewFromFloat(3.8),
		Lines: []entity.DocumentLine{
			{ProductID: "p9", Code: "X-9", Name: "Mouse", Quantity: 2, UnitPrice: decimal.NewFromFloat(15)},
		},
	}

	c.Restore(q)

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, "USD", c.Currency())
	assert.True(t, c.GrandTotal().Equal(decimal.NewFromFloat(30)))
}
