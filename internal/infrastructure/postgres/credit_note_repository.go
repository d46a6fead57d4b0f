package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jquispe/puntoventa-api/internal/domain/entity"
	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

var _ repository.CreditNoteRepository = (*CreditNoteRepo)(nil)

// CreditNoteRepo implementación del puerto CreditNoteRepository. Las líneas
// devueltas y los reembolsos se guardan como JSONB, igual que en los
// comprobantes de venta.
type CreditNoteRepo struct {
	q Querier
}

// NewCreditNoteRepository construye el adaptador.
func NewCreditNoteRepository(q Querier) *CreditNoteRepo {
	return &CreditNoteRepo{q: q}
}

const creditNoteColumns = `id, original_sale_id, date, client_name, lines, total_refund,
	refunds, user_name, created_at`

// Create persiste una nota de crédito.
func (r *CreditNoteRepo) Create(note *entity.CreditNote) error {
	lines, err := json.Marshal(note.Lines)
	if err != nil {
		return fmt.Errorf("marshal return lines: %w", err)
	}
	refunds, err := json.Marshal(note.Refunds)
	if err != nil {
		return fmt.Errorf("marshal refunds: %w", err)
	}
	query := `
		INSERT INTO credit_notes (` + creditNoteColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.q.Exec(context.Background(), query,
		note.ID, note.OriginalSaleID, note.Date, note.ClientName,
		lines, note.TotalRefund, refunds, note.UserName, note.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert credit note: %w", err)
	}
	return nil
}

func scanCreditNote(row pgx.Row) (*entity.CreditNote, error) {
	var n entity.CreditNote
	var lines, refunds []byte
	if err := row.Scan(
		&n.ID, &n.OriginalSaleID, &n.Date, &n.ClientName, &lines,
		&n.TotalRefund, &refunds, &n.UserName, &n.CreatedAt,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lines, &n.Lines); err != nil {
		return nil, fmt.Errorf("unmarshal return lines: %w", err)
	}
	if err := json.Unmarshal(refunds, &n.Refunds); err != nil {
		return nil, fmt.Errorf("unmarshal refunds: %w", err)
	}
	return &n, nil
}

// GetByID obtiene una nota por ID.
func (r *CreditNoteRepo) GetByID(id string) (*entity.CreditNote, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+creditNoteColumns+` FROM credit_notes WHERE id = $1`, id)
	note, err := scanCreditNote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credit note: %w", err)
	}
	return note, nil
}

func (r *CreditNoteRepo) collect(rows pgx.Rows) ([]*entity.CreditNote, error) {
	defer rows.Close()
	var notes []*entity.CreditNote
	for rows.Next() {
		note, err := scanCreditNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan credit note: %w", err)
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// List lista notas por rango de fechas, de la más reciente a la más antigua.
func (r *CreditNoteRepo) List(from, to *time.Time, limit, offset int) ([]*entity.CreditNote, error) {
	query := `
		SELECT ` + creditNoteColumns + ` FROM credit_notes
		WHERE ($1::timestamptz IS NULL OR date >= $1)
		  AND ($2::timestamptz IS NULL OR date <= $2)
		ORDER BY date DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list credit notes: %w", err)
	}
	return r.collect(rows)
}

// ListBySale devuelve todas las notas emitidas contra un mismo comprobante.
func (r *CreditNoteRepo) ListBySale(saleID string) ([]*entity.CreditNote, error) {
	query := `
		SELECT ` + creditNoteColumns + ` FROM credit_notes
		WHERE original_sale_id = $1
		ORDER BY date ASC`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list credit notes by sale: %w", err)
	}
	return r.collect(rows)
}

// NextNumber devuelve el siguiente correlativo de notas de crédito.
func (r *CreditNoteRepo) NextNumber() (int64, error) {
	return nextDocNumber(r.q, "NotaCredito")
}
