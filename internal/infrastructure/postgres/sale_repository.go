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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository. Las líneas congeladas y
// el desglose de pagos se guardan como JSONB: el comprobante es inmutable y
// nunca se consulta línea a línea.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, date, client_name, doc_type, doc_number, currency, exchange_rate,
	condition, credit_days, lines, subtotal, tax, grand_total, breakdown, user_name, created_at`

// Create persiste un comprobante de venta.
func (r *SaleRepo) Create(sale *entity.SaleRecord) error {
	lines, err := json.Marshal(sale.Lines)
	if err != nil {
		return fmt.Errorf("marshal sale lines: %w", err)
	}
	breakdown, err := json.Marshal(sale.Breakdown)
	if err != nil {
		return fmt.Errorf("marshal breakdown: %w", err)
	}
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = r.q.Exec(context.Background(), query,
		sale.ID, sale.Date, sale.ClientName, string(sale.DocType), sale.DocNumber,
		sale.Currency, sale.ExchangeRate, string(sale.Condition), sale.CreditDays,
		lines, sale.Subtotal, sale.Tax, sale.GrandTotal, breakdown,
		sale.UserName, sale.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert sale: número de documento duplicado: %w", err)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func scanSale(row pgx.Row) (*entity.SaleRecord, error) {
	var s entity.SaleRecord
	var docType, condition string
	var lines, breakdown []byte
	if err := row.Scan(
		&s.ID, &s.Date, &s.ClientName, &docType, &s.DocNumber, &s.Currency,
		&s.ExchangeRate, &condition, &s.CreditDays, &lines, &s.Subtotal, &s.Tax,
		&s.GrandTotal, &breakdown, &s.UserName, &s.CreatedAt,
	); err != nil {
		return nil, err
	}
	s.DocType = entity.DocumentType(docType)
	s.Condition = entity.PaymentCondition(condition)
	if err := json.Unmarshal(lines, &s.Lines); err != nil {
		return nil, fmt.Errorf("unmarshal sale lines: %w", err)
	}
	if err := json.Unmarshal(breakdown, &s.Breakdown); err != nil {
		return nil, fmt.Errorf("unmarshal breakdown: %w", err)
	}
	return &s, nil
}

// GetByID obtiene un comprobante por ID.
func (r *SaleRepo) GetByID(id string) (*entity.SaleRecord, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
	sale, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return sale, nil
}

// List lista comprobantes por rango de fechas, del más reciente al más antiguo.
func (r *SaleRepo) List(from, to *time.Time, limit, offset int) ([]*entity.SaleRecord, error) {
	query := `
		SELECT ` + saleColumns + ` FROM sales
		WHERE ($1::timestamptz IS NULL OR date >= $1)
		  AND ($2::timestamptz IS NULL OR date <= $2)
		ORDER BY date DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.SaleRecord
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}

// NextNumber devuelve el siguiente correlativo para el tipo de documento.
// Usa la tabla doc_counters; dentro de una transacción el UPDATE serializa a
// los emisores concurrentes del mismo tipo.
func (r *SaleRepo) NextNumber(docType entity.DocumentType) (int64, error) {
	return nextDocNumber(r.q, string(docType))
}

// nextDocNumber incrementa y devuelve el correlativo del tipo de documento.
func nextDocNumber(q Querier, docType string) (int64, error) {
	query := `
		INSERT INTO doc_counters (doc_type, value) VALUES ($1, 1)
		ON CONFLICT (doc_type) DO UPDATE SET value = doc_counters.value + 1
		RETURNING value`
	var n int64
	if err := q.QueryRow(context.Background(), query, docType).Scan(&n); err != nil {
		return 0, fmt.Errorf("next doc number: %w", err)
	}
	return n, nil
}
