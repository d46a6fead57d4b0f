package dto

import "github.com/shopspring/decimal"

// CreateBankAccountRequest body para POST /api/accounts.
type CreateBankAccountRequest struct {
	BankName       string `json:"bank_name"`
	AccountNumber  string `json:"account_number"`
	Alias          string `json:"alias,omitempty"`
	Currency       string `json:"currency"`
	UseInSales     bool   `json:"use_in_sales"`
	UseInPurchases bool   `json:"use_in_purchases"`
}

// BankAccountResponse cuenta bancaria o billetera en respuestas.
type BankAccountResponse struct {
	ID             string `json:"id"`
	BankName       string `json:"bank_name"`
	AccountNumber  string `json:"account_number"`
	Alias          string `json:"alias,omitempty"`
	Currency       string `json:"currency"`
	UseInSales     bool   `json:"use_in_sales"`
	UseInPurchases bool   `json:"use_in_purchases"`
	DisplayName    string `json:"display_name"`
}

// CreateClientRequest body para POST /api/clients.
type CreateClientRequest struct {
	Name       string          `json:"name"`
	Document   string          `json:"document,omitempty"` // DNI o RUC
	Phone      string          `json:"phone,omitempty"`
	Email      string          `json:"email,omitempty"`
	Address    string          `json:"address,omitempty"`
	CreditLine decimal.Decimal `json:"credit_line,omitempty"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Document       string          `json:"document,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	Address        string          `json:"address,omitempty"`
	CreditLine     decimal.Decimal `json:"credit_line"`
	CreditUsed     decimal.Decimal `json:"credit_used"`
	DigitalBalance decimal.Decimal `json:"digital_balance"`
	TotalPurchases decimal.Decimal `json:"total_purchases"`
	PaymentScore   int             `json:"payment_score"`
}

// AdjustWalletRequest body para POST /api/clients/:id/wallet. Delta positivo
// abona saldo a favor; negativo lo consume.
type AdjustWalletRequest struct {
	Delta     decimal.Decimal `json:"delta"`
	Concept   string          `json:"concept,omitempty"`
	Method    string          `json:"method,omitempty"`     // vacío = Efectivo
	AccountID string          `json:"account_id,omitempty"` // solo para métodos bancarios
}

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name        string `json:"name"`
	RUC         string `json:"ruc,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	ContactName string `json:"contact_name,omitempty"`
}

// SupplierResponse proveedor en respuestas.
type SupplierResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	RUC         string `json:"ruc,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	ContactName string `json:"contact_name,omitempty"`
}
