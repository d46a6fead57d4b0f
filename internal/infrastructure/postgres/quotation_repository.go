package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jquispe/puntoventa-api/internal/domain"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementación del puerto QuotationRepository.
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador.
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

const quotationColumns = `id, date, client_name, currency, exchange_rate, lines, total, user_name`

// Create persiste una cotización.
func (r *QuotationRepo) Create(quotation *entity.Quotation) error {
	lines, err := json.Marshal(quotation.Lines)
	if err != nil {
		return fmt.Errorf("marshal quotation lines: %w", err)
	}
	query := `
		INSERT INTO quotations (` + quotationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		quotation.ID, quotation.Date, quotation.ClientName, quotation.Currency,
		quotation.ExchangeRate, lines, quotation.Total, quotation.UserName,
	)
	if err != nil {
		return fmt.Errorf("insert quotation: %w", err)
	}
	return nil
}

func scanQuotation(row pgx.Row) (*entity.Quotation, error) {
	var q entity.Quotation
	var lines []byte
	if err := row.Scan(
		&q.ID, &q.Date, &q.ClientName, &q.Currency, &q.ExchangeRate,
		&lines, &q.Total, &q.UserName,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(lines, &q.Lines); err != nil {
		return nil, fmt.Errorf("unmarshal quotation lines: %w", err)
	}
	return &q, nil
}

// GetByID obtiene una cotización por ID.
func (r *QuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+quotationColumns+` FROM quotations WHERE id = $1`, id)
	quotation, err := scanQuotation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	return quotation, nil
}

// List lista cotizaciones pendientes, de la más reciente a la más antigua.
func (r *QuotationRepo) List(limit, offset int) ([]*entity.Quotation, error) {
	query := `
		SELECT ` + quotationColumns + ` FROM quotations
		ORDER BY date DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()

	var quotations []*entity.Quotation
	for rows.Next() {
		quotation, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		quotations = append(quotations, quotation)
	}
	return quotations, rows.Err()
}

// Delete elimina una cotización (se consume al recargarla).
func (r *QuotationRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM quotations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete quotation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
