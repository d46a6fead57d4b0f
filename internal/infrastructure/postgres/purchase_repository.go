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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = `id, date, supplier_name, doc_type, doc_number, currency, exchange_rate,
	condition, credit_days, lines, subtotal, tax, grand_total, user_name, created_at`

// Create persiste un comprobante de compra.
func (r *PurchaseRepo) Create(purchase *entity.PurchaseRecord) error {
	lines, err := json.Marshal(purchase.Lines)
	if err != nil {
		return fmt.Errorf("marshal purchase lines: %w", err)
	}
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = r.q.Exec(context.Background(), query,
		purchase.ID, purchase.Date, purchase.SupplierName, string(purchase.DocType),
		purchase.DocNumber, purchase.Currency, purchase.ExchangeRate,
		string(purchase.Condition), purchase.CreditDays, lines,
		purchase.Subtotal, purchase.Tax, purchase.GrandTotal,
		purchase.UserName, purchase.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert purchase: número de documento duplicado: %w", err)
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

func scanPurchase(row pgx.Row) (*entity.PurchaseRecord, error) {
	var p entity.PurchaseRecord
	var docType, condition string
	var lines []byte
	if err := row.Scan(
		&p.ID, &p.Date, &p.SupplierName, &docType, &p.DocNumber, &p.Currency,
		&p.ExchangeRate, &condition, &p.CreditDays, &lines, &p.Subtotal, &p.Tax,
		&p.GrandTotal, &p.UserName, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	p.DocType = entity.DocumentType(docType)
	p.Condition = entity.PaymentCondition(condition)
	if err := json.Unmarshal(lines, &p.Lines); err != nil {
		return nil, fmt.Errorf("unmarshal purchase lines: %w", err)
	}
	return &p, nil
}

// GetByID obtiene un comprobante por ID.
func (r *PurchaseRepo) GetByID(id string) (*entity.PurchaseRecord, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+purchaseColumns+` FROM purchases WHERE id = $1`, id)
	purchase, err := scanPurchase(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return purchase, nil
}

// List lista comprobantes por rango de fechas, del más reciente al más antiguo.
func (r *PurchaseRepo) List(from, to *time.Time, limit, offset int) ([]*entity.PurchaseRecord, error) {
	query := `
		SELECT ` + purchaseColumns + ` FROM purchases
		WHERE ($1::timestamptz IS NULL OR date >= $1)
		  AND ($2::timestamptz IS NULL OR date <= $2)
		ORDER BY date DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*entity.PurchaseRecord
	for rows.Next() {
		purchase, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		purchases = append(purchases, purchase)
	}
	return purchases, rows.Err()
}

// NextNumber devuelve el siguiente correlativo para el tipo de documento.
func (r *PurchaseRepo) NextNumber(docType entity.DocumentType) (int64, error) {
	return nextDocNumber(r.q, string(docType))
}
