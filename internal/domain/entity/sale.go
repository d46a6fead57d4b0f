package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord es el comprobante inmutable de una venta finalizada.
// Las líneas son una copia congelada del carrito; el desglose de pagos queda
// agregado por familia de método. Una venta a crédito se registra con
// desglose vacío (el cobro ocurre después, fuera del motor).
type SaleRecord struct {
	ID           string
	Date         time.Time
	ClientName   string
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
	Breakdown    PaymentBreakdown
	UserName     string
	CreatedAt    time.Time
}
