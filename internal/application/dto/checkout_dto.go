package dto

import "github.com/shopspring/decimal"

// CartItemRequest línea del carrito que envía la caja al finalizar.
type CartItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// PaymentEntryRequest pago parcial: método, monto y cuenta destino si aplica.
type PaymentEntryRequest struct {
	Method    string          `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	AccountID string          `json:"account_id,omitempty"`
	Reference string          `json:"reference,omitempty"` // nro. de operación
}

// FinalizeSaleRequest body para POST /api/sales.
type FinalizeSaleRequest struct {
	ClientName   string                `json:"client_name,omitempty"` // vacío = CLIENTE VARIOS
	DocType      string                `json:"doc_type"`
	Currency     string                `json:"currency"`
	ExchangeRate decimal.Decimal       `json:"exchange_rate"`
	Condition    string                `json:"condition"` // CONTADO | CREDITO
	CreditDays   int                   `json:"credit_days,omitempty"`
	Items        []CartItemRequest     `json:"items"`
	Payments     []PaymentEntryRequest `json:"payments"`
}

// FinalizePurchaseRequest body para POST /api/purchases.
type FinalizePurchaseRequest struct {
	SupplierName string                `json:"supplier_name"`
	DocType      string                `json:"doc_type"`
	Currency     string                `json:"currency"`
	ExchangeRate decimal.Decimal       `json:"exchange_rate"`
	Condition    string                `json:"condition"`
	CreditDays   int                   `json:"credit_days,omitempty"`
	Items        []CartItemRequest     `json:"items"`
	Payments     []PaymentEntryRequest `json:"payments"`
}

// DocumentLineResponse línea congelada de un comprobante.
type DocumentLineResponse struct {
	ProductID string          `json:"product_id"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// BreakdownResponse desglose de cobranza por familia de pago.
type BreakdownResponse struct {
	Cash   decimal.Decimal `json:"cash"`
	Yape   decimal.Decimal `json:"yape"`
	Card   decimal.Decimal `json:"card"`
	Bank   decimal.Decimal `json:"bank"`
	Wallet decimal.Decimal `json:"wallet"`
}

// SaleResponse comprobante de venta emitido.
type SaleResponse struct {
	ID           string                 `json:"id"`
	Date         string                 `json:"date"`
	ClientName   string                 `json:"client_name"`
	DocType      string                 `json:"doc_type"`
	DocNumber    string                 `json:"doc_number"`
	Currency     string                 `json:"currency"`
	ExchangeRate decimal.Decimal        `json:"exchange_rate"`
	Condition    string                 `json:"condition"`
	CreditDays   int                    `json:"credit_days,omitempty"`
	Lines        []DocumentLineResponse `json:"lines"`
	Subtotal     decimal.Decimal        `json:"subtotal"`
	Tax          decimal.Decimal        `json:"tax"`
	GrandTotal   decimal.Decimal        `json:"grand_total"`
	Breakdown    BreakdownResponse      `json:"breakdown"`
	UserName     string                 `json:"user_name"`
}

// PurchaseResponse comprobante de compra registrado.
type PurchaseResponse struct {
	ID           string                 `json:"id"`
	Date         string                 `json:"date"`
	SupplierName string                 `json:"supplier_name"`
	DocType      string                 `json:"doc_type"`
	DocNumber    string                 `json:"doc_number"`
	Currency     string                 `json:"currency"`
	ExchangeRate decimal.Decimal        `json:"exchange_rate"`
	Condition    string                 `json:"condition"`
	Lines        []DocumentLineResponse `json:"lines"`
	Subtotal     decimal.Decimal        `json:"subtotal"`
	Tax          decimal.Decimal        `json:"tax"`
	GrandTotal   decimal.Decimal        `json:"grand_total"`
	UserName     string                 `json:"user_name"`
}

// ReturnLineRequest línea a devolver en una nota de crédito.
type ReturnLineRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CreateCreditNoteRequest body para POST /api/credit-notes.
type CreateCreditNoteRequest struct {
	SaleID  string                `json:"sale_id"`
	Lines   []ReturnLineRequest   `json:"lines"`
	Refunds []PaymentEntryRequest `json:"refunds"`
}

// CreditNoteResponse nota de crédito emitida.
type CreditNoteResponse struct {
	ID             string                 `json:"id"`
	OriginalSaleID string                 `json:"original_sale_id"`
	Date           string                 `json:"date"`
	ClientName     string                 `json:"client_name"`
	Lines          []DocumentLineResponse `json:"lines"`
	TotalRefund    decimal.Decimal        `json:"total_refund"`
	UserName       string                 `json:"user_name"`
}

// SaveQuotationRequest body para POST /api/quotations (snapshot del carrito).
type SaveQuotationRequest struct {
	ClientName   string            `json:"client_name,omitempty"`
	Currency     string            `json:"currency"`
	ExchangeRate decimal.Decimal   `json:"exchange_rate"`
	Items        []CartItemRequest `json:"items"`
}

// QuotationResponse cotización guardada.
type QuotationResponse struct {
	ID           string                 `json:"id"`
	Date         string                 `json:"date"`
	ClientName   string                 `json:"client_name"`
	Currency     string                 `json:"currency"`
	ExchangeRate decimal.Decimal        `json:"exchange_rate"`
	Lines        []DocumentLineResponse `json:"lines"`
	Total        decimal.Decimal        `json:"total"`
	UserName     string                 `json:"user_name"`
}

// UnlockOverrideRequest clave de supervisor para habilitar el cambio de precio.
type UnlockOverrideRequest struct {
	Password string `json:"password"`
}
