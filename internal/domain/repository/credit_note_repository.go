package repository

import (
	"time"

	"github.com/jquispe/puntoventa-api/internal/domain/entity"
)

// CreditNoteRepository define el puerto de persistencia para notas de crédito (DIP).
type CreditNoteRepository interface {
	Create(note *entity.CreditNote) error
	GetByID(id string) (*entity.CreditNote, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.CreditNote, error)
	// ListBySale devuelve las notas emitidas contra un mismo comprobante, para
	// validar que las devoluciones acumuladas no excedan lo vendido.
	ListBySale(saleID string) ([]*entity.CreditNote, error)
	NextNumber() (int64, error)
}
