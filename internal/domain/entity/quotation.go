package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quotation es una instantánea de un carrito no finalizado. Se crea al
// abandonar una venta en curso (o a pedido) y puede recargarse después para
// retomarla; al recargarla se elimina de la lista de pendientes.
type Quotation struct {
	ID           string
	Date         time.Time
	ClientName   string
	Currency     string
	ExchangeRate decimal.Decimal
	Lines        []DocumentLine
	Total        decimal.Decimal
	UserName     string
}
