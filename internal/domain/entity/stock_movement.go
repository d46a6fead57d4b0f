package entity

import "time"

// Dirección de un movimiento de inventario (kardex).
type MovementDirection string

const (
	DirEntrada MovementDirection = "ENTRADA"
	DirSalida  MovementDirection = "SALIDA"
)

// StockMovement es un asiento del kardex: registro append-only de cada cambio
// de existencias. ResultingStock es el stock del producto inmediatamente
// después de aplicar el movimiento, leído del inventario vivo al momento de
// confirmar la transacción.
type StockMovement struct {
	ID             string
	Date           time.Time
	ProductID      string
	ProductName    string
	Direction      MovementDirection
	Quantity       int64 // siempre positivo; el signo lo da Direction
	ResultingStock int64
	Reference      string // comprobante u operación que originó el movimiento
	UserName       string
}
