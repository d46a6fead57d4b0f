package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jquispe/puntoventa-api/internal/application/dto"
	"github.com/jquispe/puntoventa-api/internal/domain"
	domcheckout "github.com/jquispe/puntoventa-api/internal/domain/checkout"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
	"github.com/jquispe/puntoventa-api/internal/domain/inventory"
	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

// FinalizePurchaseUseCase registra una compra a proveedor: ingresa la
// mercadería al inventario, recalcula el costo promedio ponderado y, si es al
// contado, asienta los egresos en caja. Todo en una sola transacción.
type FinalizePurchaseUseCase struct {
	txRunner     CheckoutTxRunner
	purchaseRepo repository.PurchaseRepository
	accountRepo  repository.BankAccountRepository
	baseCurrency string
}

// NewFinalizePurchaseUseCase construye el caso de uso. baseCurrency es la
// moneda del negocio, en la que se mantiene el costo de los productos.
func NewFinalizePurchaseUseCase(
	txRunner CheckoutTxRunner,
	purchaseRepo repository.PurchaseRepository,
	accountRepo repository.BankAccountRepository,
	baseCurrency string,
) *FinalizePurchaseUseCase {
	return &FinalizePurchaseUseCase{
		txRunner:     txRunner,
		purchaseRepo: purchaseRepo,
		accountRepo:  accountRepo,
		baseCurrency: baseCurrency,
	}
}

func purchaseDocType(s string) (entity.DocumentType, error) {
	switch d := entity.DocumentType(s); d {
	case entity.DocFacturaCompra, entity.DocBoletaCompra, entity.DocNotaEntrada:
		return d, nil
	}
	return "", domain.ErrInvalidInput
}

// FinalizePurchase registra una compra al contado o a crédito.
//
// Contado: exige pago completo y cuentas habilitadas para compras. Crédito:
// la mercadería entra y el costo se recalcula, pero la caja no se toca (la
// deuda con el proveedor vive fuera del motor). La nota de entrada se emite
// sin desglose de IGV.
func (uc *FinalizePurchaseUseCase) FinalizePurchase(ctx context.Context, userName string, in dto.FinalizePurchaseRequest) (*dto.PurchaseResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if in.SupplierName == "" {
		return nil, domain.ErrInvalidInput
	}
	docType, err := purchaseDocType(in.DocType)
	if err != nil {
		return nil, err
	}
	condition := entity.PaymentCondition(in.Condition)
	if condition == "" {
		condition = entity.CondicionContado
	}
	if condition != entity.CondicionContado && condition != entity.CondicionCredito {
		return nil, domain.ErrInvalidInput
	}

	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 || !item.UnitPrice.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}
	if condition == entity.CondicionContado {
		if err := checkAccounts(uc.accountRepo, in.Payments, entity.UsageCompras, in.Currency); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	purchaseID := uuid.New().String()
	purchase := &entity.PurchaseRecord{
		ID:           purchaseID,
		Date:         now,
		SupplierName: in.SupplierName,
		DocType:      docType,
		Currency:     in.Currency,
		ExchangeRate: in.ExchangeRate,
		Condition:    condition,
		CreditDays:   in.CreditDays,
		UserName:     userName,
		CreatedAt:    now,
	}

	err = uc.txRunner.RunCheckout(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		ledgerRepo repository.LedgerRepository,
		_ repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.CreditNoteRepository,
		_ repository.ClientRepository,
	) error {
		// 1) Carrito de compra: sin tope de stock y con el costo de factura
		// mandando sobre el costo de lista (el ajuste es directo, sin candado
		// de supervisor).
		cart := domcheckout.NewCart(domcheckout.KindCompra, uc.baseCurrency)
		if in.ExchangeRate.GreaterThan(decimal.Zero) {
			if err := cart.SetExchangeRate(in.ExchangeRate); err != nil {
				return err
			}
		}
		cart.SetCurrency(in.Currency)

		products := make(map[string]*entity.Product, len(in.Items))
		for _, item := range in.Items {
			p, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.ErrNotFound
			}
			if err := cart.AddItem(p); err != nil {
				return err
			}
			if err := cart.SetQuantity(p.ID, item.Quantity, p.Stock); err != nil {
				return err
			}
			if err := cart.OverridePrice(p.ID, item.UnitPrice); err != nil {
				return err
			}
			products[p.ID] = p
		}

		total := cart.GrandTotal()
		purchase.Subtotal, purchase.Tax, purchase.GrandTotal = cart.Totals(docType)
		purchase.Lines = cart.FrozenLines()

		// 2) Pago al contado completo dentro de la tolerancia.
		alloc := domcheckout.NewAllocation(total)
		if condition == entity.CondicionContado {
			for _, pay := range in.Payments {
				if _, err := alloc.Add(entity.PaymentMethod(pay.Method), pay.Amount, pay.AccountID, pay.Reference); err != nil {
					return err
				}
			}
			if !alloc.IsComplete() {
				return domain.ErrIncompletePayment
			}
		}

		number, err := purchaseRepo.NextNumber(docType)
		if err != nil {
			return err
		}
		purchase.DocNumber = fmt.Sprintf("%06d", number)

		// 3) Entrada de inventario y costo promedio ponderado por línea. El
		// costo se mantiene en moneda base; compras en divisa se convierten
		// con el tipo de cambio del documento.
		for _, l := range cart.Lines() {
			p := products[l.ProductID]
			costEntrada := l.UnitPrice
			if in.Currency != uc.baseCurrency && in.ExchangeRate.GreaterThan(decimal.Zero) {
				costEntrada = l.UnitPrice.Mul(in.ExchangeRate)
			}
			newCost := inventory.WeightedAverageCost(p.Stock, p.Cost, l.Quantity, costEntrada)
			newStock := p.Stock + l.Quantity
			if err := productRepo.UpdateStock(p.ID, newStock); err != nil {
				return err
			}
			if err := productRepo.UpdateCost(p.ID, newCost); err != nil {
				return err
			}
			if err := movRepo.Create(&entity.StockMovement{
				ID:             uuid.New().String(),
				Date:           now,
				ProductID:      p.ID,
				ProductName:    p.Name,
				Direction:      entity.DirEntrada,
				Quantity:       l.Quantity,
				ResultingStock: newStock,
				Reference:      fmt.Sprintf("COMPRA %s #%s", docType, purchase.DocNumber),
				UserName:       userName,
			}); err != nil {
				return err
			}
		}

		// 4) Egresos de caja (solo al contado).
		if condition == entity.CondicionContado {
			for _, e := range alloc.Entries() {
				if err := ledgerRepo.Create(&entity.LedgerMovement{
					ID:          uuid.New().String(),
					Date:        now,
					Direction:   entity.DirEgreso,
					Method:      e.Method,
					Amount:      e.Amount,
					Currency:    in.Currency,
					AccountID:   e.AccountID,
					Concept:     fmt.Sprintf("COMPRA %s - %s", purchase.DocNumber, in.SupplierName),
					Category:    entity.CategoriaCompra,
					ReferenceID: purchaseID,
					UserName:    userName,
				}); err != nil {
					return err
				}
			}
		}

		return purchaseRepo.Create(purchase)
	})
	if err != nil {
		return nil, err
	}
	return purchaseToResponse(purchase), nil
}

func purchaseToResponse(p *entity.PurchaseRecord) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:           p.ID,
		Date:         p.Date.Format("2006-01-02 15:04:05"),
		SupplierName: p.SupplierName,
		DocType:      string(p.DocType),
		DocNumber:    p.DocNumber,
		Currency:     p.Currency,
		ExchangeRate: p.ExchangeRate,
		Condition:    string(p.Condition),
		Lines:        linesToResponse(p.Lines),
		Subtotal:     p.Subtotal,
		Tax:          p.Tax,
		GrandTotal:   p.GrandTotal,
		UserName:     p.UserName,
	}
}

// GetPurchase obtiene un comprobante de compra por ID.
func (uc *FinalizePurchaseUseCase) GetPurchase(ctx context.Context, id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	return purchaseToResponse(purchase), nil
}

// ListPurchases lista comprobantes de compra por rango de fechas.
func (uc *FinalizePurchaseUseCase) ListPurchases(ctx context.Context, from, to *time.Time, page dto.PageRequest) ([]*dto.PurchaseResponse, error) {
	page.DefaultPage()
	purchases, err := uc.purchaseRepo.List(from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, purchaseToResponse(p))
	}
	return out, nil
}
