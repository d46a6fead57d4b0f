package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jquispe/puntoventa-api/internal/domain"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del puerto ClientRepository.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, name, dni, phone, email, address, district, province, department,
	credit_line, credit_used, digital_balance, total_purchases, payment_score,
	created_at, updated_at`

// Create persiste un cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.DNI, client.Phone, client.Email,
		client.Address, client.District, client.Province, client.Department,
		client.CreditLine, client.CreditUsed, client.DigitalBalance,
		client.TotalPurchases, client.PaymentScore,
		client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	if err := row.Scan(
		&c.ID, &c.Name, &c.DNI, &c.Phone, &c.Email, &c.Address, &c.District,
		&c.Province, &c.Department, &c.CreditLine, &c.CreditUsed,
		&c.DigitalBalance, &c.TotalPurchases, &c.PaymentScore,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepo) getBy(field, value string) (*entity.Client, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+clientColumns+` FROM clients WHERE `+field+` = $1`, value)
	client, err := scanClient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return client, nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.getBy("id", id)
}

// GetByName obtiene un cliente por nombre exacto.
func (r *ClientRepo) GetByName(name string) (*entity.Client, error) {
	return r.getBy("name", name)
}

// Update actualiza los datos maestros de un cliente. Los saldos se ajustan
// con AdjustDigitalBalance y AddPurchaseTotal, no por aquí.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients
		SET name = $2, dni = $3, phone = $4, email = $5, address = $6,
		    district = $7, province = $8, department = $9, credit_line = $10,
		    payment_score = $11, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.DNI, client.Phone, client.Email,
		client.Address, client.District, client.Province, client.Department,
		client.CreditLine, client.PaymentScore,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista clientes ordenados por nombre.
func (r *ClientRepo) List(limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + ` FROM clients
		ORDER BY name
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []*entity.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

// AdjustDigitalBalance suma delta (puede ser negativo) al saldo a favor.
func (r *ClientRepo) AdjustDigitalBalance(clientID string, delta decimal.Decimal) error {
	query := `
		UPDATE clients
		SET digital_balance = digital_balance + $2, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, clientID, delta)
	if err != nil {
		return fmt.Errorf("adjust digital balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AddPurchaseTotal acumula el histórico de compras del cliente.
func (r *ClientRepo) AddPurchaseTotal(clientID string, amount decimal.Decimal) error {
	query := `
		UPDATE clients
		SET total_purchases = total_purchases + $2, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, clientID, amount)
	if err != nil {
		return fmt.Errorf("add purchase total: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente.
func (r *ClientRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
