package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jquispe/puntoventa-api/internal/application/dto"
	"github.com/jquispe/puntoventa-api/internal/domain"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

// QuotationUseCase guarda instantáneas de carritos no finalizados y las
// recupera después. Recuperar una cotización la elimina de pendientes (pasa a
// ser el carrito vivo de la caja).
type QuotationUseCase struct {
	quotationRepo repository.QuotationRepository
	productRepo   repository.ProductRepository
}

// NewQuotationUseCase construye el caso de uso.
func NewQuotationUseCase(quotationRepo repository.QuotationRepository, productRepo repository.ProductRepository) *QuotationUseCase {
	return &QuotationUseCase{quotationRepo: quotationRepo, productRepo: productRepo}
}

// SaveQuotation congela el carrito en curso como cotización. Un carrito vacío
// no genera cotización.
func (uc *QuotationUseCase) SaveQuotation(ctx context.Context, userName string, in dto.SaveQuotationRequest) (*dto.QuotationResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	clientName := in.ClientName
	if clientName == "" {
		clientName = entity.DefaultClientName
	}

	total := decimal.Zero
	lines := make([]entity.DocumentLine, 0, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 || !item.UnitPrice.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		p, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.ErrNotFound
		}
		lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity))
		lines = append(lines, entity.DocumentLine{
			ProductID: p.ID,
			Code:      p.Code,
			Name:      p.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: lineTotal,
		})
		total = total.Add(lineTotal)
	}

	q := &entity.Quotation{
		ID:           uuid.New().String(),
		Date:         time.Now(),
		ClientName:   clientName,
		Currency:     in.Currency,
		ExchangeRate: in.ExchangeRate,
		Lines:        lines,
		Total:        total,
		UserName:     userName,
	}
	if err := uc.quotationRepo.Create(q); err != nil {
		return nil, err
	}
	return quotationToResponse(q), nil
}

// LoadQuotation recupera una cotización para retomarla en caja y la elimina
// de la lista de pendientes.
func (uc *QuotationUseCase) LoadQuotation(ctx context.Context, id string) (*dto.QuotationResponse, error) {
	q, err := uc.quotationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.quotationRepo.Delete(id); err != nil {
		return nil, err
	}
	return quotationToResponse(q), nil
}

// DiscardQuotation descarta una cotización pendiente sin retomarla.
func (uc *QuotationUseCase) DiscardQuotation(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.quotationRepo.Delete(id)
}

// ListQuotations lista las cotizaciones pendientes.
func (uc *QuotationUseCase) ListQuotations(ctx context.Context, page dto.PageRequest) ([]*dto.QuotationResponse, error) {
	page.DefaultPage()
	quotations, err := uc.quotationRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.QuotationResponse, 0, len(quotations))
	for _, q := range quotations {
		out = append(out, quotationToResponse(q))
	}
	return out, nil
}

func quotationToResponse(q *entity.Quotation) *dto.QuotationResponse {
	return &dto.QuotationResponse{
		ID:           q.ID,
		Date:         q.Date.Format("2006-01-02 15:04:05"),
		ClientName:   q.ClientName,
		Currency:     q.Currency,
		ExchangeRate: q.ExchangeRate,
		Lines:        linesToResponse(q.Lines),
		Total:        q.Total,
		UserName:     q.UserName,
	}
}
