// Package checkout implementa el motor de caja: carrito multimoneda,
// asignación de pagos y autorización de cambio de precio. Es lógica pura
// sobre memoria; la persistencia y los efectos (kardex, caja, comprobantes)
// viven en los casos de uso de aplicación.
package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/jquispe/puntoventa-api/internal/domain"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
)

// Kind distingue un carrito de venta de uno de compra. La venta toma el
// precio de lista y limita cantidades al stock disponible; la compra toma el
// costo y no tiene tope (se está recibiendo mercadería).
type Kind string

const (
	KindVenta  Kind = "VENTA"
	KindCompra Kind = "COMPRA"
)

// IGVRate es la tasa de IGV vigente (18%). Los precios del carrito son
// finales (impuesto incluido); el desglose se calcula al emitir el documento.
var IGVRate = decimal.NewFromFloat(0.18)

// Line es una línea viva del carrito. UnitPrice está en la moneda de trabajo
// del carrito y puede sobreescribirse mientras la venta sigue abierta.
type Line struct {
	ProductID string
	Code      string
	Name      string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Total devuelve Quantity × UnitPrice.
func (l Line) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Cart es el conjunto de trabajo de una venta o compra en curso. Mantiene el
// orden de inserción, la moneda de trabajo y el tipo de cambio. Todas las
// líneas están siempre en la misma moneda de trabajo.
type Cart struct {
	kind         Kind
	baseCurrency string
	currency     string
	rate         decimal.Decimal
	lines        []Line
}

// NewCart crea un carrito vacío en la moneda base del negocio.
func NewCart(kind Kind, baseCurrency string) *Cart {
	return &Cart{
		kind:         kind,
		baseCurrency: baseCurrency,
		currency:     baseCurrency,
		rate:         decimal.NewFromFloat(3.75),
	}
}

// Kind devuelve el tipo de carrito.
func (c *Cart) Kind() Kind { return c.kind }

// Currency devuelve la moneda de trabajo actual.
func (c *Cart) Currency() string { return c.currency }

// BaseCurrency devuelve la moneda base del negocio.
func (c *Cart) BaseCurrency() string { return c.baseCurrency }

// ExchangeRate devuelve el tipo de cambio vigente.
func (c *Cart) ExchangeRate() decimal.Decimal { return c.rate }

// IsEmpty indica si el carrito no tiene líneas.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Lines devuelve una copia de las líneas en orden de inserción.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// find devuelve el índice de la línea del producto, o -1.
func (c *Cart) find(productID string) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem agrega una unidad del producto. Si ya existe una línea, incrementa
// la cantidad. En ventas valida contra el stock vivo del producto: sin stock
// no se agrega, y el incremento se rechaza si excedería las existencias.
// El precio unitario se fija al momento de agregar: precio de lista (o costo
// en compras) convertido a la moneda de trabajo si difiere de la base.
func (c *Cart) AddItem(p *entity.Product) error {
	if c.kind == KindVenta && p.Stock <= 0 {
		return domain.ErrInsufficientStock
	}
	if i := c.find(p.ID); i >= 0 {
		if c.kind == KindVenta && c.lines[i].Quantity+1 > p.Stock {
			return domain.ErrInsufficientStock
		}
		c.lines[i].Quantity++
		return nil
	}

	base := p.Price
	if c.kind == KindCompra {
		base = p.PurchaseCost()
	}
	price := base
	if c.currency != c.baseCurrency {
		price = base.Div(c.rate)
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Code:      p.Code,
		Name:      p.Name,
		Quantity:  1,
		UnitPrice: price,
	})
	return nil
}

// SetQuantity fija la cantidad de una línea. Cantidades menores a 1 se
// ajustan a 1. En ventas rechaza cantidades por encima del stock disponible
// (onHand), dejando la línea sin cambios; las compras no tienen tope.
func (c *Cart) SetQuantity(productID string, qty, onHand int64) error {
	i := c.find(productID)
	if i < 0 {
		return domain.ErrNotFound
	}
	if qty < 1 {
		qty = 1
	}
	if c.kind == KindVenta && qty > onHand {
		return domain.ErrInsufficientStock
	}
	c.lines[i].Quantity = qty
	return nil
}

// OverridePrice reemplaza el precio unitario de una línea. El lado de venta
// exige autorización previa (ver OverrideAuthorizer); aquí solo se valida que
// el precio sea positivo.
func (c *Cart) OverridePrice(productID string, price decimal.Decimal) error {
	i := c.find(productID)
	if i < 0 {
		return domain.ErrNotFound
	}
	if !price.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	c.lines[i].UnitPrice = price
	return nil
}

// RemoveItem elimina la línea del producto si existe.
func (c *Cart) RemoveItem(productID string) {
	if i := c.find(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// SetExchangeRate fija el tipo de cambio para conversiones futuras (agregar
// líneas o cambiar de divisa). No reconvierte líneas existentes.
func (c *Cart) SetExchangeRate(rate decimal.Decimal) error {
	if !rate.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	c.rate = rate
	return nil
}

// SetCurrency cambia la moneda de trabajo. Al pasar de la moneda base a una
// divisa extranjera, los precios de las líneas existentes se dividen por el
// tipo de cambio. Al volver a la base NO se reconvierte: la conversión solo
// ocurre hacia adelante (asimetría heredada del mostrador original).
func (c *Cart) SetCurrency(code string) {
	if code == c.currency {
		return
	}
	if c.currency == c.baseCurrency && code != c.baseCurrency {
		for i := range c.lines {
			c.lines[i].UnitPrice = c.lines[i].UnitPrice.Div(c.rate)
		}
	}
	c.currency = code
}

// GrandTotal es la suma de los totales de línea, a precisión completa.
func (c *Cart) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Total())
	}
	return total
}

// Totals desglosa el total según el tipo de documento. Los precios incluyen
// IGV: subtotal = total / 1.18 y el impuesto es la diferencia, salvo para
// documentos exentos (nota de entrada) donde subtotal = total e IGV = 0.
func (c *Cart) Totals(docType entity.DocumentType) (subtotal, tax, total decimal.Decimal) {
	total = c.GrandTotal()
	if docType.TaxExempt() {
		return total, decimal.Zero, total
	}
	subtotal = total.Div(decimal.NewFromInt(1).Add(IGVRate))
	tax = total.Sub(subtotal)
	return subtotal, tax, total
}

// Clear vacía el carrito. La moneda y el tipo de cambio se conservan.
func (c *Cart) Clear() {
	c.lines = nil
}

// FrozenLines devuelve las líneas como copia congelada para un comprobante.
func (c *Cart) FrozenLines() []entity.DocumentLine {
	out := make([]entity.DocumentLine, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, entity.DocumentLine{
			ProductID: l.ProductID,
			Code:      l.Code,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.Total(),
		})
	}
	return out
}

// Restore reemplaza el contenido del carrito con las líneas de una
// cotización recuperada, incluida su moneda y tipo de cambio.
func (c *Cart) Restore(q *entity.Quotation) {
	c.lines = c.lines[:0]
	for _, l := range q.Lines {
		c.lines = append(c.lines, Line{
			ProductID: l.ProductID,
			Code:      l.Code,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}
	if q.Currency != "" {
		c.currency = q.Currency
	}
	if q.ExchangeRate.GreaterThan(decimal.Zero) {
		c.rate = q.ExchangeRate
	}
}
