package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jquispe/puntoventa-api/internal/domain"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

var _ repository.BankAccountRepository = (*BankAccountRepo)(nil)

// BankAccountRepo implementación del puerto BankAccountRepository.
type BankAccountRepo struct {
	q Querier
}

// NewBankAccountRepository construye el adaptador.
func NewBankAccountRepository(q Querier) *BankAccountRepo {
	return &BankAccountRepo{q: q}
}

const bankAccountColumns = `id, bank_name, account_number, alias, currency, use_in_sales, use_in_purchases`

// Create persiste una cuenta.
func (r *BankAccountRepo) Create(account *entity.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (` + bankAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.BankName, account.AccountNumber, account.Alias,
		account.Currency, account.UseInSales, account.UseInPurchases,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bank account: %w", err)
	}
	return nil
}

func scanBankAccount(row pgx.Row) (*entity.BankAccount, error) {
	var a entity.BankAccount
	if err := row.Scan(
		&a.ID, &a.BankName, &a.AccountNumber, &a.Alias, &a.Currency,
		&a.UseInSales, &a.UseInPurchases,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByID obtiene una cuenta por ID.
func (r *BankAccountRepo) GetByID(id string) (*entity.BankAccount, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+bankAccountColumns+` FROM bank_accounts WHERE id = $1`, id)
	account, err := scanBankAccount(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank account: %w", err)
	}
	return account, nil
}

// Update actualiza una cuenta.
func (r *BankAccountRepo) Update(account *entity.BankAccount) error {
	query := `
		UPDATE bank_accounts
		SET bank_name = $2, account_number = $3, alias = $4, currency = $5,
		    use_in_sales = $6, use_in_purchases = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		account.ID, account.BankName, account.AccountNumber, account.Alias,
		account.Currency, account.UseInSales, account.UseInPurchases,
	)
	if err != nil {
		return fmt.Errorf("update bank account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BankAccountRepo) collect(rows pgx.Rows) ([]*entity.BankAccount, error) {
	defer rows.Close()
	var accounts []*entity.BankAccount
	for rows.Next() {
		account, err := scanBankAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bank account: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// List lista todas las cuentas.
func (r *BankAccountRepo) List() ([]*entity.BankAccount, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+bankAccountColumns+` FROM bank_accounts ORDER BY bank_name, alias`)
	if err != nil {
		return nil, fmt.Errorf("list bank accounts: %w", err)
	}
	return r.collect(rows)
}

// ListEligible filtra por uso y moneda.
func (r *BankAccountRepo) ListEligible(usage entity.AccountUsage, currency string) ([]*entity.BankAccount, error) {
	flag := "use_in_sales"
	if usage == entity.UsageCompras {
		flag = "use_in_purchases"
	}
	query := `
		SELECT ` + bankAccountColumns + ` FROM bank_accounts
		WHERE ` + flag + ` AND currency = $1
		ORDER BY bank_name, alias`
	rows, err := r.q.Query(context.Background(), query, currency)
	if err != nil {
		return nil, fmt.Errorf("list eligible bank accounts: %w", err)
	}
	return r.collect(rows)
}

// Delete elimina una cuenta.
func (r *BankAccountRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM bank_accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bank account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
