package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReturnLine es una línea devuelta dentro de una nota de crédito.
// Se persiste como JSONB dentro de la nota.
type ReturnLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"` // precio al que se vendió la línea original
}

// RefundEntry es un reembolso individual dentro de una nota de crédito.
type RefundEntry struct {
	Method    PaymentMethod   `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	AccountID string          `json:"account_id,omitempty"`
	Reference string          `json:"reference,omitempty"`
}

// CreditNote revierte total o parcialmente una venta previa: reingresa las
// unidades devueltas al inventario y registra los reembolsos en caja.
// Inmutable una vez emitida; referencia a la venta original por ID.
type CreditNote struct {
	ID             string
	OriginalSaleID string
	Date           time.Time
	ClientName     string
	Lines          []ReturnLine
	TotalRefund    decimal.Decimal
	Refunds        []RefundEntry
	UserName       string
	CreatedAt      time.Time
}
