package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dirección de un movimiento de caja/bancos.
type LedgerDirection string

const (
	DirIngreso LedgerDirection = "Ingreso"
	DirEgreso  LedgerDirection = "Egreso"
)

// LedgerCategory clasifica los movimientos de caja. Conjunto cerrado en lugar
// de las etiquetas libres que el mostrador usaba como concepto y categoría a
// la vez.
type LedgerCategory string

const (
	CategoriaVenta         LedgerCategory = "VENTA"
	CategoriaCompra        LedgerCategory = "COMPRA"
	CategoriaDevolucion    LedgerCategory = "DEVOLUCION"
	CategoriaTransferencia LedgerCategory = "TRANSFERENCIA"
	CategoriaBilletera     LedgerCategory = "BILLETERA DIGITAL"
	CategoriaGasto         LedgerCategory = "GASTO"
	CategoriaIngreso       LedgerCategory = "INGRESO"
)

// LedgerMovement es un asiento append-only del libro de caja y bancos.
// AccountID vacío significa caja física (efectivo); con valor, la cuenta
// bancaria o billetera de liquidación.
type LedgerMovement struct {
	ID          string
	Date        time.Time
	Direction   LedgerDirection
	Method      PaymentMethod
	Amount      decimal.Decimal
	Currency    string
	AccountID   string
	Concept     string
	Category    LedgerCategory
	ReferenceID string // comprobante de origen (venta, compra, nota de crédito)
	UserName    string
}
