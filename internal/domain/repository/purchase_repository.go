package repository

import (
	"time"

	"github.com/jquispe/puntoventa-api/internal/domain/entity"
)

// PurchaseRepository define el puerto de persistencia para comprobantes de compra (DIP).
type PurchaseRepository interface {
	Create(purchase *entity.PurchaseRecord) error
	GetByID(id string) (*entity.PurchaseRecord, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.PurchaseRecord, error)
	NextNumber(docType entity.DocumentType) (int64, error)
}
