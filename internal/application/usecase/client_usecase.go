package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jquispe/puntoventa-api/internal/application/dto"
	"github.com/jquispe/puntoventa-api/internal/domain"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

// ClientUseCase casos de uso CRUD de clientes y de su billetera interna.
// Cada ajuste de billetera deja su asiento en caja bajo la categoría
// BILLETERA DIGITAL.
type ClientUseCase struct {
	repo         repository.ClientRepository
	ledgerRepo   repository.LedgerRepository
	baseCurrency string
}

// NewClientUseCase construye el caso de uso. La billetera vive en la moneda
// base del negocio.
func NewClientUseCase(repo repository.ClientRepository, ledgerRepo repository.LedgerRepository, baseCurrency string) *ClientUseCase {
	return &ClientUseCase{repo: repo, ledgerRepo: ledgerRepo, baseCurrency: baseCurrency}
}

// Create registra un cliente.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:           uuid.New().String(),
		Name:         in.Name,
		DNI:          in.Document,
		Phone:        in.Phone,
		Email:        in.Email,
		Address:      in.Address,
		CreditLine:   in.CreditLine,
		PaymentScore: 3, // puntaje neutro de arranque
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID obtiene un cliente por ID.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// Update actualiza los datos del cliente. La billetera se mueve solo vía
// AdjustWallet y los casos de uso de caja.
func (uc *ClientUseCase) Update(id string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	client.Name = in.Name
	client.DNI = in.Document
	client.Phone = in.Phone
	client.Email = in.Email
	client.Address = in.Address
	client.CreditLine = in.CreditLine
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista clientes paginados.
func (uc *ClientUseCase) List(page dto.PageRequest) ([]*dto.ClientResponse, error) {
	page.DefaultPage()
	clients, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

// AdjustWallet abona o consume saldo a favor del cliente. No permite dejar la
// billetera en negativo. Un abono asienta un Ingreso en caja y un consumo un
// Egreso, siempre por el monto absoluto del delta.
func (uc *ClientUseCase) AdjustWallet(userName, id string, in dto.AdjustWalletRequest) (*dto.ClientResponse, error) {
	if in.Delta.IsZero() {
		return nil, domain.ErrInvalidAmount
	}
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if client.DigitalBalance.Add(in.Delta).LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}
	if err := uc.repo.AdjustDigitalBalance(id, in.Delta); err != nil {
		return nil, err
	}

	direction := entity.DirIngreso
	if in.Delta.IsNegative() {
		direction = entity.DirEgreso
	}
	method := entity.PaymentMethod(in.Method)
	if method == "" {
		method = entity.MethodEfectivo
	}
	accountID := in.AccountID
	if method == entity.MethodEfectivo {
		accountID = ""
	}
	concept := in.Concept
	if concept == "" {
		concept = "AJUSTE MANUAL"
	}
	if err := uc.ledgerRepo.Create(&entity.LedgerMovement{
		ID:          uuid.New().String(),
		Date:        time.Now(),
		Direction:   direction,
		Method:      method,
		Amount:      in.Delta.Abs(),
		Currency:    uc.baseCurrency,
		AccountID:   accountID,
		Concept:     fmt.Sprintf("BILLETERA CLIENTE: %s - %s", concept, client.Name),
		Category:    entity.CategoriaBilletera,
		ReferenceID: client.ID,
		UserName:    userName,
	}); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete elimina un cliente.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:             c.ID,
		Name:           c.Name,
		Document:       c.DNI,
		Phone:          c.Phone,
		Email:          c.Email,
		Address:        c.Address,
		CreditLine:     c.CreditLine,
		CreditUsed:     c.CreditUsed,
		DigitalBalance: c.DigitalBalance,
		TotalPurchases: c.TotalPurchases,
		PaymentScore:   c.PaymentScore,
	}
}
