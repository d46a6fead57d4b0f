package repository

import "github.com/jquispe/puntoventa-api/internal/domain/entity"

// QuotationRepository define el puerto de persistencia para cotizaciones (DIP).
type QuotationRepository interface {
	Create(quotation *entity.Quotation) error
	GetByID(id string) (*entity.Quotation, error)
	List(limit, offset int) ([]*entity.Quotation, error)
	Delete(id string) error
}
