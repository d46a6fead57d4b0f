package entity

import "github.com/shopspring/decimal"

// DocumentType es el tipo de comprobante emitido. Determina si la operación
// lleva IGV: la nota de entrada es un documento interno de inventario y está
// exenta; todo lo demás incluye el impuesto en el precio.
type DocumentType string

const (
	DocTicketVenta        DocumentType = "TICKET DE VENTA"
	DocBoletaElectronica  DocumentType = "BOLETA ELECTRÓNICA"
	DocFacturaElectronica DocumentType = "FACTURA ELECTRÓNICA"
	DocFacturaCompra      DocumentType = "FACTURA DE COMPRA"
	DocBoletaCompra       DocumentType = "BOLETA DE VENTA"
	DocNotaEntrada        DocumentType = "NOTA DE ENTRADA"
)

// TaxExempt indica si el documento se registra sin desglose de IGV.
func (d DocumentType) TaxExempt() bool {
	return d == DocNotaEntrada
}

// DocumentLine es una línea congelada de un comprobante (venta, compra o
// cotización). Se copia desde el carrito al finalizar y nunca se modifica.
// Se persiste como JSONB dentro del comprobante.
type DocumentLine struct {
	ProductID string          `json:"product_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"` // moneda de trabajo del documento
	LineTotal decimal.Decimal `json:"line_total"` // Quantity × UnitPrice
}
