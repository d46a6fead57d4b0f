package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultClientName es la contraparte por defecto de las ventas de mostrador.
const DefaultClientName = "CLIENTE VARIOS"

// Client es un cliente del negocio. DigitalBalance es la billetera interna
// (saldo a favor) que puede usarse como medio de pago; CreditLine/CreditUsed
// controlan las ventas a crédito (la cobranza vive fuera del motor de caja).
type Client struct {
	ID             string
	Name           string
	DNI            string // DNI o RUC
	Phone          string
	Email          string
	Address        string
	District       string
	Province       string
	Department     string
	CreditLine     decimal.Decimal
	CreditUsed     decimal.Decimal
	DigitalBalance decimal.Decimal
	TotalPurchases decimal.Decimal
	PaymentScore   int // 1..5
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Supplier es un proveedor de compras.
type Supplier struct {
	ID          string
	Name        string
	RUC         string
	Phone       string
	Email       string
	Address     string
	ContactName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
