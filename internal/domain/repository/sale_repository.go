package repository

import (
	"time"

	"github.com/jquispe/puntoventa-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para comprobantes de venta (DIP).
type SaleRepository interface {
	Create(sale *entity.SaleRecord) error
	GetByID(id string) (*entity.SaleRecord, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.SaleRecord, error)
	// NextNumber devuelve el siguiente correlativo para el tipo de documento.
	NextNumber(docType entity.DocumentType) (int64, error)
}
