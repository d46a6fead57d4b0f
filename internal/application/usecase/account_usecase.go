package usecase

import (
	"github.com/google/uuid"

	"github.com/jquispe/puntoventa-api/internal/application/dto"
	"github.com/jquispe/puntoventa-api/internal/domain"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

// AccountUseCase casos de uso CRUD de cuentas de liquidación (bancos y
// billeteras digitales).
type AccountUseCase struct {
	repo repository.BankAccountRepository
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(repo repository.BankAccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

// Create registra una cuenta.
func (uc *AccountUseCase) Create(in dto.CreateBankAccountRequest) (*dto.BankAccountResponse, error) {
	if in.BankName == "" || in.Currency == "" {
		return nil, domain.ErrInvalidInput
	}
	account := &entity.BankAccount{
		ID:             uuid.New().String(),
		BankName:       in.BankName,
		AccountNumber:  in.AccountNumber,
		Alias:          in.Alias,
		Currency:       in.Currency,
		UseInSales:     in.UseInSales,
		UseInPurchases: in.UseInPurchases,
	}
	if err := uc.repo.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// Update actualiza una cuenta existente.
func (uc *AccountUseCase) Update(id string, in dto.CreateBankAccountRequest) (*dto.BankAccountResponse, error) {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	account.BankName = in.BankName
	account.AccountNumber = in.AccountNumber
	account.Alias = in.Alias
	account.Currency = in.Currency
	account.UseInSales = in.UseInSales
	account.UseInPurchases = in.UseInPurchases
	if err := uc.repo.Update(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// List lista todas las cuentas.
func (uc *AccountUseCase) List() ([]*dto.BankAccountResponse, error) {
	accounts, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toAccountResponses(accounts), nil
}

// ListEligible lista las cuentas habilitadas para un flujo (sales | purchases)
// y moneda; es lo que la caja muestra al elegir cuenta destino de un pago.
func (uc *AccountUseCase) ListEligible(usage, currency string) ([]*dto.BankAccountResponse, error) {
	u := entity.AccountUsage(usage)
	if u != entity.UsageVentas && u != entity.UsageCompras {
		return nil, domain.ErrInvalidInput
	}
	accounts, err := uc.repo.ListEligible(u, currency)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, domain.ErrNoEligibleAccounts
	}
	return toAccountResponses(accounts), nil
}

// Delete elimina una cuenta.
func (uc *AccountUseCase) Delete(id string) error {
	account, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toAccountResponse(a *entity.BankAccount) *dto.BankAccountResponse {
	return &dto.BankAccountResponse{
		ID:             a.ID,
		BankName:       a.BankName,
		AccountNumber:  a.AccountNumber,
		Alias:          a.Alias,
		Currency:       a.Currency,
		UseInSales:     a.UseInSales,
		UseInPurchases: a.UseInPurchases,
		DisplayName:    a.DisplayName(),
	}
}

func toAccountResponses(accounts []*entity.BankAccount) []*dto.BankAccountResponse {
	out := make([]*dto.BankAccountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	return out
}
