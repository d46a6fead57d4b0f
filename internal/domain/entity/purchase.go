package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseRecord es el comprobante inmutable de una compra a proveedor.
// Con condición Contado exige pago completo al finalizar; con Credito la
// compra entra a inventario sin efecto en caja.
type PurchaseRecord struct {
	ID           string
	Date         time.Time
	SupplierName string
	DocType      DocumentType
	DocNumber    string
	Currency     string
	ExchangeRate decimal.Decimal
	Condition    PaymentCondition
	CreditDays   int
	Lines        []DocumentLine
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	GrandTotal   decimal.Decimal
	UserName     string
	CreatedAt    time.Time
}
