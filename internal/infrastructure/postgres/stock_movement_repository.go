package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jquispe/puntoventa-api/internal/domain/entity"
	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del puerto StockMovementRepository (kardex append-only).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const stockMovementColumns = `id, date, product_id, product_name, direction, quantity, resulting_stock, reference, user_name`

// Create inserta un asiento de kardex. Nunca se actualiza ni elimina.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + stockMovementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Date, m.ProductID, m.ProductName, string(m.Direction),
		m.Quantity, m.ResultingStock, m.Reference, m.UserName,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

func (r *StockMovementRepo) list(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var movements []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var direction string
		if err := rows.Scan(
			&m.ID, &m.Date, &m.ProductID, &m.ProductName, &direction,
			&m.Quantity, &m.ResultingStock, &m.Reference, &m.UserName,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		m.Direction = entity.MovementDirection(direction)
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}

// ListByProduct lista el kardex de un producto, del más reciente al más antiguo.
func (r *StockMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + stockMovementColumns + ` FROM stock_movements
		WHERE product_id = $1
		  AND ($2::timestamptz IS NULL OR date >= $2)
		  AND ($3::timestamptz IS NULL OR date <= $3)
		ORDER BY date DESC
		LIMIT $4 OFFSET $5`
	return r.list(query, productID, from, to, limit, offset)
}

// List lista el kardex completo, del más reciente al más antiguo.
func (r *StockMovementRepo) List(from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + stockMovementColumns + ` FROM stock_movements
		WHERE ($1::timestamptz IS NULL OR date >= $1)
		  AND ($2::timestamptz IS NULL OR date <= $2)
		ORDER BY date DESC
		LIMIT $3 OFFSET $4`
	return r.list(query, from, to, limit, offset)
}
