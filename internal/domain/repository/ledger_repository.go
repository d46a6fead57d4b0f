package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jquispe/puntoventa-api/internal/domain/entity"
)

// LedgerRepository define el puerto de persistencia para los movimientos de
// caja y bancos (DIP).
type LedgerRepository interface {
	Create(movement *entity.LedgerMovement) error
	GetByID(id string) (*entity.LedgerMovement, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.LedgerMovement, error)
	ListByAccount(accountID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerMovement, error)
	// BalanceByAccount devuelve ingresos menos egresos de la cuenta
	// (accountID vacío = caja física).
	BalanceByAccount(accountID, currency string) (decimal.Decimal, error)
}
