package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jquispe/puntoventa-api/internal/domain/entity"
	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del puerto LedgerRepository (caja y bancos, append-only).
// account_id NULL en la tabla equivale a la caja física ("" en la entidad).
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

const ledgerColumns = `id, date, direction, method, amount, currency, account_id, concept, category, reference_id, user_name`

// Create inserta un asiento de caja.
func (r *LedgerRepo) Create(m *entity.LedgerMovement) error {
	query := `
		INSERT INTO ledger_movements (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, NULLIF($10, ''), $11)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Date, string(m.Direction), string(m.Method), m.Amount, m.Currency,
		m.AccountID, m.Concept, string(m.Category), m.ReferenceID, m.UserName,
	)
	if err != nil {
		return fmt.Errorf("insert ledger movement: %w", err)
	}
	return nil
}

func scanLedgerMovement(row pgx.Row) (*entity.LedgerMovement, error) {
	var m entity.LedgerMovement
	var direction, method, category string
	var accountID, referenceID *string
	if err := row.Scan(
		&m.ID, &m.Date, &direction, &method, &m.Amount, &m.Currency,
		&accountID, &m.Concept, &category, &referenceID, &m.UserName,
	); err != nil {
		return nil, err
	}
	m.Direction = entity.LedgerDirection(direction)
	m.Method = entity.PaymentMethod(method)
	m.Category = entity.LedgerCategory(category)
	if accountID != nil {
		m.AccountID = *accountID
	}
	if referenceID != nil {
		m.ReferenceID = *referenceID
	}
	return &m, nil
}

// GetByID obtiene un asiento por ID.
func (r *LedgerRepo) GetByID(id string) (*entity.LedgerMovement, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+ledgerColumns+` FROM ledger_movements WHERE id = $1`, id)
	m, err := scanLedgerMovement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger movement: %w", err)
	}
	return m, nil
}

func (r *LedgerRepo) list(query string, args ...any) ([]*entity.LedgerMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger movements: %w", err)
	}
	defer rows.Close()

	var movements []*entity.LedgerMovement
	for rows.Next() {
		m, err := scanLedgerMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ledger movement: %w", err)
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

// List lista los asientos por rango de fechas, del más reciente al más antiguo.
func (r *LedgerRepo) List(from, to *time.Time, limit, offset int) ([]*entity.LedgerMovement, error) {
	query := `
		SELECT ` + ledgerColumns + ` FROM ledger_movements
		WHERE ($1::timestamptz IS NULL OR date >= $1)
		  AND ($2::timestamptz IS NULL OR date <= $2)
		ORDER BY date DESC
		LIMIT $3 OFFSET $4`
	return r.list(query, from, to, limit, offset)
}

// ListByAccount lista los asientos de una cuenta (accountID vacío = caja física).
func (r *LedgerRepo) ListByAccount(accountID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerMovement, error) {
	query := `
		SELECT ` + ledgerColumns + ` FROM ledger_movements
		WHERE account_id IS NOT DISTINCT FROM NULLIF($1, '')
		  AND ($2::timestamptz IS NULL OR date >= $2)
		  AND ($3::timestamptz IS NULL OR date <= $3)
		ORDER BY date DESC
		LIMIT $4 OFFSET $5`
	return r.list(query, accountID, from, to, limit, offset)
}

// BalanceByAccount devuelve ingresos menos egresos de la cuenta en la moneda dada.
func (r *LedgerRepo) BalanceByAccount(accountID, currency string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN direction = 'Ingreso' THEN amount ELSE -amount END), 0)
		FROM ledger_movements
		WHERE account_id IS NOT DISTINCT FROM NULLIF($1, '') AND currency = $2`
	var balance decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, accountID, currency).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("balance by account: %w", err)
	}
	return balance, nil
}
