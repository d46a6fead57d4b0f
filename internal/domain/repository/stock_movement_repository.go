package repository

import (
	"time"

	"github.com/jquispe/puntoventa-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para el kardex (DIP).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
}
