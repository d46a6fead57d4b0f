// Package ledger contiene los casos de uso del libro de caja y bancos:
// ingresos y gastos manuales, transferencias entre cuentas y saldos.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jquispe/puntoventa-api/internal/application/dto"
	"github.com/jquispe/puntoventa-api/internal/domain"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

// LedgerUseCase asienta movimientos manuales y transferencias. Las ventas,
// compras y devoluciones asientan desde sus propios casos de uso.
type LedgerUseCase struct {
	txRunner    LedgerTxRunner
	ledgerRepo  repository.LedgerRepository
	accountRepo repository.BankAccountRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(txRunner LedgerTxRunner, ledgerRepo repository.LedgerRepository, accountRepo repository.BankAccountRepository) *LedgerUseCase {
	return &LedgerUseCase{txRunner: txRunner, ledgerRepo: ledgerRepo, accountRepo: accountRepo}
}

// CreateMovement asienta un ingreso o gasto manual (alquiler, servicios,
// aporte de caja). La cuenta, si se indica, debe existir.
func (uc *LedgerUseCase) CreateMovement(userName string, in dto.CreateLedgerMovementRequest) (*dto.LedgerMovementResponse, error) {
	direction := entity.LedgerDirection(in.Direction)
	if direction != entity.DirIngreso && direction != entity.DirEgreso {
		return nil, domain.ErrInvalidInput
	}
	method := entity.PaymentMethod(in.Method)
	if !method.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	if in.Concept == "" {
		return nil, domain.ErrInvalidInput
	}
	category := entity.LedgerCategory(in.Category)
	if category == "" {
		category = entity.CategoriaIngreso
		if direction == entity.DirEgreso {
			category = entity.CategoriaGasto
		}
	}
	if in.AccountID != "" {
		acc, err := uc.accountRepo.GetByID(in.AccountID)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			return nil, domain.ErrNotFound
		}
	}

	m := &entity.LedgerMovement{
		ID:        uuid.New().String(),
		Date:      time.Now(),
		Direction: direction,
		Method:    method,
		Amount:    in.Amount,
		Currency:  in.Currency,
		AccountID: in.AccountID,
		Concept:   in.Concept,
		Category:  category,
		UserName:  userName,
	}
	if err := uc.ledgerRepo.Create(m); err != nil {
		return nil, err
	}
	return movementToResponse(m), nil
}

// Transfer mueve fondos entre la caja física y una cuenta (o entre cuentas):
// un egreso en el origen y un ingreso en el destino, enlazados por un mismo
// ID de referencia. Si las monedas difieren, el monto destino se convierte
// con el tipo de cambio indicado.
func (uc *LedgerUseCase) Transfer(userName string, in dto.TransferRequest) ([]*dto.LedgerMovementResponse, error) {
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	if in.FromAccountID == in.ToAccountID {
		return nil, domain.ErrInvalidInput
	}
	destAmount := in.Amount
	if in.FromCurrency != in.ToCurrency {
		if !in.ExchangeRate.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidAmount
		}
		destAmount = in.Amount.Mul(in.ExchangeRate)
	}
	fromName, err := uc.accountDisplayName(in.FromAccountID)
	if err != nil {
		return nil, err
	}
	toName, err := uc.accountDisplayName(in.ToAccountID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	transferID := uuid.New().String()
	concept := in.Concept
	method := transferMethod(in.FromAccountID, in.ToAccountID)

	egreso := &entity.LedgerMovement{
		ID:          uuid.New().String(),
		Date:        now,
		Direction:   entity.DirEgreso,
		Method:      method,
		Amount:      in.Amount,
		Currency:    in.FromCurrency,
		AccountID:   in.FromAccountID,
		Concept:     orDefault(concept, fmt.Sprintf("TRANSFERENCIA A %s", toName)),
		Category:    entity.CategoriaTransferencia,
		ReferenceID: transferID,
		UserName:    userName,
	}
	ingreso := &entity.LedgerMovement{
		ID:          uuid.New().String(),
		Date:        now,
		Direction:   entity.DirIngreso,
		Method:      method,
		Amount:      destAmount,
		Currency:    in.ToCurrency,
		AccountID:   in.ToAccountID,
		Concept:     orDefault(concept, fmt.Sprintf("TRANSFERENCIA DE %s", fromName)),
		Category:    entity.CategoriaTransferencia,
		ReferenceID: transferID,
		UserName:    userName,
	}
	// Ambos asientos en la misma transacción: una transferencia a medias no
	// puede quedar asentada.
	err = uc.txRunner.RunLedger(context.Background(), func(ledgerRepo repository.LedgerRepository) error {
		if err := ledgerRepo.Create(egreso); err != nil {
			return err
		}
		return ledgerRepo.Create(ingreso)
	})
	if err != nil {
		return nil, err
	}
	return []*dto.LedgerMovementResponse{movementToResponse(egreso), movementToResponse(ingreso)}, nil
}

// accountDisplayName resuelve el nombre a mostrar; vacío es la caja física.
func (uc *LedgerUseCase) accountDisplayName(accountID string) (string, error) {
	if accountID == "" {
		return "CAJA", nil
	}
	acc, err := uc.accountRepo.GetByID(accountID)
	if err != nil {
		return "", err
	}
	if acc == nil {
		return "", domain.ErrNotFound
	}
	return acc.DisplayName(), nil
}

// transferMethod: si algún extremo es la caja física el medio es efectivo;
// entre cuentas, transferencia.
func transferMethod(from, to string) entity.PaymentMethod {
	if from == "" || to == "" {
		return entity.MethodEfectivo
	}
	return entity.MethodTransferencia
}

func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}

// List lista los movimientos de caja por rango de fechas.
func (uc *LedgerUseCase) List(from, to *time.Time, page dto.PageRequest) ([]*dto.LedgerMovementResponse, error) {
	page.DefaultPage()
	movements, err := uc.ledgerRepo.List(from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LedgerMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, movementToResponse(m))
	}
	return out, nil
}

// Balance devuelve el saldo de una cuenta (o de la caja física) en la moneda
// indicada: ingresos menos egresos.
func (uc *LedgerUseCase) Balance(accountID, currency string) (*dto.AccountBalanceResponse, error) {
	if accountID != "" {
		acc, err := uc.accountRepo.GetByID(accountID)
		if err != nil {
			return nil, err
		}
		if acc == nil {
			return nil, domain.ErrNotFound
		}
	}
	balance, err := uc.ledgerRepo.BalanceByAccount(accountID, currency)
	if err != nil {
		return nil, err
	}
	return &dto.AccountBalanceResponse{
		AccountID: accountID,
		Currency:  currency,
		Balance:   balance,
	}, nil
}

func movementToResponse(m *entity.LedgerMovement) *dto.LedgerMovementResponse {
	return &dto.LedgerMovementResponse{
		ID:          m.ID,
		Date:        m.Date.Format("2006-01-02 15:04:05"),
		Direction:   string(m.Direction),
		Method:      string(m.Method),
		Amount:      m.Amount,
		Currency:    m.Currency,
		AccountID:   m.AccountID,
		Concept:     m.Concept,
		Category:    string(m.Category),
		ReferenceID: m.ReferenceID,
		UserName:    m.UserName,
	}
}
