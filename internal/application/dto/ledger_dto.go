package dto

import "github.com/shopspring/decimal"

// CreateLedgerMovementRequest body para POST /api/ledger (ingreso o gasto manual).
type CreateLedgerMovementRequest struct {
	Direction string          `json:"direction"` // Ingreso | Egreso
	Method    string          `json:"method"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	AccountID string          `json:"account_id,omitempty"` // vacío = caja física
	Concept   string          `json:"concept"`
	Category  string          `json:"category"`
}

// TransferRequest body para POST /api/ledger/transfers. Mueve fondos entre la
// caja física y una cuenta (o entre cuentas), con conversión opcional.
type TransferRequest struct {
	FromAccountID string          `json:"from_account_id,omitempty"` // vacío = caja física
	ToAccountID   string          `json:"to_account_id,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	FromCurrency  string          `json:"from_currency"`
	ToCurrency    string          `json:"to_currency"`
	ExchangeRate  decimal.Decimal `json:"exchange_rate,omitempty"` // obligatorio si las monedas difieren
	Concept       string          `json:"concept,omitempty"`
}

// LedgerMovementResponse fila del libro de caja y bancos.
type LedgerMovementResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Direction   string          `json:"direction"`
	Method      string          `json:"method"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	AccountID   string          `json:"account_id,omitempty"`
	Concept     string          `json:"concept"`
	Category    string          `json:"category"`
	ReferenceID string          `json:"reference_id,omitempty"`
	UserName    string          `json:"user_name"`
}

// AccountBalanceResponse saldo calculado de una cuenta.
type AccountBalanceResponse struct {
	AccountID string          `json:"account_id,omitempty"`
	Currency  string          `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
}
