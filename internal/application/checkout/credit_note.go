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
	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

// CreditNoteUseCase emite notas de crédito contra ventas previas: reingresa
// las unidades devueltas al inventario, registra los reembolsos y guarda la
// nota, todo en una sola transacción.
type CreditNoteUseCase struct {
	txRunner    CheckoutTxRunner
	saleRepo    repository.SaleRepository
	noteRepo    repository.CreditNoteRepository
	accountRepo repository.BankAccountRepository
}

// NewCreditNoteUseCase construye el caso de uso.
func NewCreditNoteUseCase(
	txRunner CheckoutTxRunner,
	saleRepo repository.SaleRepository,
	noteRepo repository.CreditNoteRepository,
	accountRepo repository.BankAccountRepository,
) *CreditNoteUseCase {
	return &CreditNoteUseCase{txRunner: txRunner, saleRepo: saleRepo, noteRepo: noteRepo, accountRepo: accountRepo}
}

// IssueCreditNote emite una nota de crédito. Cada línea devuelta debe existir
// en la venta original y las devoluciones acumuladas (incluyendo notas
// anteriores contra la misma venta) no pueden exceder lo vendido. El monto a
// reembolsar se calcula con los precios congelados del comprobante; los
// reembolsos declarados deben cubrirlo dentro de la tolerancia.
func (uc *CreditNoteUseCase) IssueCreditNote(ctx context.Context, userName string, in dto.CreateCreditNoteRequest) (*dto.CreditNoteResponse, error) {
	if in.SaleID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}

	sale, err := uc.saleRepo.GetByID(in.SaleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	soldByProduct := make(map[string]entity.DocumentLine, len(sale.Lines))
	for _, l := range sale.Lines {
		soldByProduct[l.ProductID] = l
	}

	// Devoluciones previas contra la misma venta.
	previous, err := uc.noteRepo.ListBySale(in.SaleID)
	if err != nil {
		return nil, err
	}
	returnedByProduct := make(map[string]int64)
	for _, note := range previous {
		for _, l := range note.Lines {
			returnedByProduct[l.ProductID] += l.Quantity
		}
	}

	totalRefund := decimal.Zero
	returnLines := make([]entity.ReturnLine, 0, len(in.Lines))
	for _, r := range in.Lines {
		if r.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		sold, ok := soldByProduct[r.ProductID]
		if !ok {
			return nil, domain.ErrNotFound
		}
		if returnedByProduct[r.ProductID]+r.Quantity > sold.Quantity {
			return nil, domain.ErrReturnExceedsSold
		}
		returnLines = append(returnLines, entity.ReturnLine{
			ProductID: r.ProductID,
			Name:      sold.Name,
			Quantity:  r.Quantity,
			UnitPrice: sold.UnitPrice,
		})
		totalRefund = totalRefund.Add(sold.UnitPrice.Mul(decimal.NewFromInt(r.Quantity)))
	}

	alloc := domcheckout.NewAllocation(totalRefund)
	refunds := make([]entity.RefundEntry, 0, len(in.Refunds))
	for _, r := range in.Refunds {
		if _, err := alloc.Add(entity.PaymentMethod(r.Method), r.Amount, r.AccountID, r.Reference); err != nil {
			return nil, err
		}
		refunds = append(refunds, entity.RefundEntry{
			Method:    entity.PaymentMethod(r.Method),
			Amount:    r.Amount,
			AccountID: r.AccountID,
			Reference: r.Reference,
		})
	}
	if !alloc.IsComplete() {
		return nil, domain.ErrIncompletePayment
	}
	// Las cuentas referidas en reembolsos siguen las mismas reglas que en la
	// venta: deben existir, estar habilitadas para ventas y coincidir en
	// moneda con el comprobante original.
	if err := checkAccounts(uc.accountRepo, in.Refunds, entity.UsageVentas, sale.Currency); err != nil {
		return nil, err
	}

	now := time.Now()
	note := &entity.CreditNote{
		ID:             uuid.New().String(),
		OriginalSaleID: sale.ID,
		Date:           now,
		ClientName:     sale.ClientName,
		Lines:          returnLines,
		TotalRefund:    totalRefund,
		Refunds:        refunds,
		UserName:       userName,
		CreatedAt:      now,
	}

	err = uc.txRunner.RunCheckout(ctx, func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		ledgerRepo repository.LedgerRepository,
		_ repository.SaleRepository,
		_ repository.PurchaseRepository,
		noteRepo repository.CreditNoteRepository,
		clientRepo repository.ClientRepository,
	) error {
		number, err := noteRepo.NextNumber()
		if err != nil {
			return err
		}
		noteNumber := fmt.Sprintf("%06d", number)

		// 1) Reingreso de inventario por línea devuelta.
		for _, l := range note.Lines {
			p, err := productRepo.GetForUpdate(l.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				return domain.ErrNotFound
			}
			newStock := p.Stock + l.Quantity
			if err := productRepo.UpdateStock(p.ID, newStock); err != nil {
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
				Reference:      fmt.Sprintf("NC #%s (DEV. %s #%s)", noteNumber, sale.DocType, sale.DocNumber),
				UserName:       userName,
			}); err != nil {
				return err
			}
		}

		// 2) Reembolsos: el saldo a favor abona a la billetera del cliente;
		// el resto se asienta en caja. El sentido del asiento se mantiene
		// como Ingreso, igual que lo registraba siempre el mostrador.
		for _, r := range note.Refunds {
			if r.Method == entity.MethodSaldoFavor {
				client, err := clientRepo.GetByName(sale.ClientName)
				if err != nil {
					return err
				}
				if client == nil {
					return domain.ErrNotFound
				}
				if err := clientRepo.AdjustDigitalBalance(client.ID, r.Amount); err != nil {
					return err
				}
				continue
			}
			if err := ledgerRepo.Create(&entity.LedgerMovement{
				ID:          uuid.New().String(),
				Date:        now,
				Direction:   entity.DirIngreso,
				Method:      r.Method,
				Amount:      r.Amount,
				Currency:    sale.Currency,
				AccountID:   r.AccountID,
				Concept:     fmt.Sprintf("DEVOLUCION VENTA %s - %s", sale.DocNumber, sale.ClientName),
				Category:    entity.CategoriaDevolucion,
				ReferenceID: note.ID,
				UserName:    userName,
			}); err != nil {
				return err
			}
		}

		return noteRepo.Create(note)
	})
	if err != nil {
		return nil, err
	}
	return noteToResponse(note), nil
}

func noteToResponse(n *entity.CreditNote) *dto.CreditNoteResponse {
	lines := make([]dto.DocumentLineResponse, 0, len(n.Lines))
	for _, l := range n.Lines {
		lines = append(lines, dto.DocumentLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)),
		})
	}
	return &dto.CreditNoteResponse{
		ID:             n.ID,
		OriginalSaleID: n.OriginalSaleID,
		Date:           n.Date.Format("2006-01-02 15:04:05"),
		ClientName:     n.ClientName,
		Lines:          lines,
		TotalRefund:    n.TotalRefund,
		UserName:       n.UserName,
	}
}

// GetCreditNote obtiene una nota de crédito por ID.
func (uc *CreditNoteUseCase) GetCreditNote(ctx context.Context, id string) (*dto.CreditNoteResponse, error) {
	note, err := uc.noteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.ErrNotFound
	}
	return noteToResponse(note), nil
}

// ListCreditNotes lista notas de crédito por rango de fechas.
func (uc *CreditNoteUseCase) ListCreditNotes(ctx context.Context, from, to *time.Time, page dto.PageRequest) ([]*dto.CreditNoteResponse, error) {
	page.DefaultPage()
	notes, err := uc.noteRepo.List(from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CreditNoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, noteToResponse(n))
	}
	return out, nil
}
