package repository

import "github.com/jquispe/puntoventa-api/internal/domain/entity"

// BankAccountRepository define el puerto de persistencia para cuentas bancarias
// y billeteras digitales (DIP).
type BankAccountRepository interface {
	Create(account *entity.BankAccount) error
	GetByID(id string) (*entity.BankAccount, error)
	Update(account *entity.BankAccount) error
	List() ([]*entity.BankAccount, error)
	// ListEligible filtra por uso (ventas o compras) y moneda.
	ListEligible(usage entity.AccountUsage, currency string) ([]*entity.BankAccount, error)
	Delete(id string) error
}
