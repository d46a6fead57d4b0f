// Package checkout contiene los casos de uso del punto de venta: finalizar
// ventas y compras, emitir notas de crédito y administrar cotizaciones.
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

// FinalizeSaleUseCase cierra una venta: valida la cobranza, descuenta el
// inventario, asienta kardex y caja y emite el comprobante, todo en una sola
// transacción.
type FinalizeSaleUseCase struct {
	txRunner     CheckoutTxRunner
	saleRepo     repository.SaleRepository
	accountRepo  repository.BankAccountRepository
	clientRepo   repository.ClientRepository
	authorizer   *domcheckout.OverrideAuthorizer
	baseCurrency string
}

// NewFinalizeSaleUseCase construye el caso de uso. El autorizador es el mismo
// que desbloquea el endpoint de supervisor: un precio distinto al de lista
// consume esa autorización.
func NewFinalizeSaleUseCase(
	txRunner CheckoutTxRunner,
	saleRepo repository.SaleRepository,
	accountRepo repository.BankAccountRepository,
	clientRepo repository.ClientRepository,
	authorizer *domcheckout.OverrideAuthorizer,
	baseCurrency string,
) *FinalizeSaleUseCase {
	return &FinalizeSaleUseCase{
		txRunner:     txRunner,
		saleRepo:     saleRepo,
		accountRepo:  accountRepo,
		clientRepo:   clientRepo,
		authorizer:   authorizer,
		baseCurrency: baseCurrency,
	}
}

// saleDocTypes comprobantes válidos para el lado de ventas.
func saleDocType(s string) (entity.DocumentType, error) {
	switch d := entity.DocumentType(s); d {
	case entity.DocTicketVenta, entity.DocBoletaElectronica, entity.DocFacturaElectronica:
		return d, nil
	}
	return "", domain.ErrInvalidInput
}

// FinalizeSale finaliza una venta al contado o a crédito.
//
// Contado: exige que los pagos cubran el total dentro de la tolerancia, que
// toda cuenta referida exista, esté habilitada para ventas y coincida en
// moneda. Crédito: no registra pagos ni caja, solo la salida de inventario y
// el comprobante (la cobranza ocurre después).
func (uc *FinalizeSaleUseCase) FinalizeSale(ctx context.Context, userName string, in dto.FinalizeSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	docType, err := saleDocType(in.DocType)
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
	clientName := in.ClientName
	if clientName == "" {
		clientName = entity.DefaultClientName
	}

	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 || !item.UnitPrice.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}
	if condition == entity.CondicionContado {
		if err := uc.validateAccounts(in.Payments, entity.UsageVentas, in.Currency); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	saleID := uuid.New().String()
	sale := &entity.SaleRecord{
		ID:           saleID,
		Date:         now,
		ClientName:   clientName,
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
		saleRepo repository.SaleRepository,
		_ repository.PurchaseRepository,
		_ repository.CreditNoteRepository,
		clientRepo repository.ClientRepository,
	) error {
		// 1) Carrito de venta sobre el stock vivo, con bloqueo de fila: el
		// precio sale del catálogo en la moneda de trabajo y la cantidad se
		// limita a las existencias. Un precio distinto al de lista consume la
		// autorización de supervisor.
		cart := domcheckout.NewCart(domcheckout.KindVenta, uc.baseCurrency)
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
			if err := uc.applyChargedPrice(cart, p.ID, item.UnitPrice); err != nil {
				return err
			}
			products[p.ID] = p
		}

		total := cart.GrandTotal()
		sale.Subtotal, sale.Tax, sale.GrandTotal = cart.Totals(docType)
		sale.Lines = cart.FrozenLines()

		// 2) Cobranza: solo al contado. A crédito el desglose queda en cero.
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
			sale.Breakdown = alloc.Breakdown()
		}

		number, err := saleRepo.NextNumber(docType)
		if err != nil {
			return err
		}
		sale.DocNumber = fmt.Sprintf("%06d", number)
		if condition == entity.CondicionCredito {
			sale.DocNumber = "CR-" + sale.DocNumber
		}

		// 3) Salida de inventario por línea congelada.
		for _, l := range cart.Lines() {
			p := products[l.ProductID]
			newStock := p.Stock - l.Quantity
			if err := productRepo.UpdateStock(p.ID, newStock); err != nil {
				return err
			}
			if err := movRepo.Create(&entity.StockMovement{
				ID:             uuid.New().String(),
				Date:           now,
				ProductID:      p.ID,
				ProductName:    p.Name,
				Direction:      entity.DirSalida,
				Quantity:       l.Quantity,
				ResultingStock: newStock,
				Reference:      fmt.Sprintf("VENTA %s #%s", docType, sale.DocNumber),
				UserName:       userName,
			}); err != nil {
				return err
			}
		}

		// 4) Caja y bancos: un asiento de ingreso por cada pago. El saldo a
		// favor no toca caja, consume la billetera del cliente.
		if condition == entity.CondicionContado {
			for _, e := range alloc.Entries() {
				if e.Method == entity.MethodSaldoFavor {
					if err := uc.consumeWallet(clientRepo, clientName, e.Amount); err != nil {
						return err
					}
					continue
				}
				if err := ledgerRepo.Create(&entity.LedgerMovement{
					ID:          uuid.New().String(),
					Date:        now,
					Direction:   entity.DirIngreso,
					Method:      e.Method,
					Amount:      e.Amount,
					Currency:    in.Currency,
					AccountID:   e.AccountID,
					Concept:     fmt.Sprintf("VENTA %s - %s", sale.DocNumber, clientName),
					Category:    entity.CategoriaVenta,
					ReferenceID: saleID,
					UserName:    userName,
				}); err != nil {
					return err
				}
			}
		}

		// 5) Histórico del cliente (si está registrado).
		if client, err := clientRepo.GetByName(clientName); err == nil && client != nil {
			if err := clientRepo.AddPurchaseTotal(client.ID, total); err != nil {
				return err
			}
		}

		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return saleToResponse(sale), nil
}

// validateAccounts verifica cuentas referidas en pagos: existencia,
// habilitación para el flujo y moneda.
func (uc *FinalizeSaleUseCase) validateAccounts(payments []dto.PaymentEntryRequest, usage entity.AccountUsage, currency string) error {
	return checkAccounts(uc.accountRepo, payments, usage, currency)
}

// checkAccounts validación compartida de cuentas de liquidación referidas en
// pagos o reembolsos.
func checkAccounts(accountRepo repository.BankAccountRepository, payments []dto.PaymentEntryRequest, usage entity.AccountUsage, currency string) error {
	for _, p := range payments {
		if p.AccountID == "" {
			continue
		}
		acc, err := accountRepo.GetByID(p.AccountID)
		if err != nil {
			return err
		}
		if acc == nil {
			return domain.ErrNotFound
		}
		if !acc.EnabledFor(usage) || acc.Currency != currency {
			return domain.ErrNoEligibleAccounts
		}
	}
	return nil
}

// applyChargedPrice aplica sobre la línea el precio cobrado en caja. Si
// difiere del precio de lista es un cambio manual: consume la autorización de
// supervisor vigente y el candado vuelve a cerrarse.
func (uc *FinalizeSaleUseCase) applyChargedPrice(cart *domcheckout.Cart, productID string, charged decimal.Decimal) error {
	for _, l := range cart.Lines() {
		if l.ProductID != productID {
			continue
		}
		if charged.Round(2).Equal(l.UnitPrice.Round(2)) {
			return nil
		}
		if err := uc.authorizer.Consume(); err != nil {
			return err
		}
		return cart.OverridePrice(productID, charged)
	}
	return domain.ErrNotFound
}

// consumeWallet descuenta saldo a favor del cliente. El cliente genérico no
// tiene billetera.
func (uc *FinalizeSaleUseCase) consumeWallet(clientRepo repository.ClientRepository, clientName string, amount decimal.Decimal) error {
	client, err := clientRepo.GetByName(clientName)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	if client.DigitalBalance.LessThan(amount) {
		return domain.ErrInvalidAmount
	}
	return clientRepo.AdjustDigitalBalance(client.ID, amount.Neg())
}

func linesToResponse(lines []entity.DocumentLine) []dto.DocumentLineResponse {
	out := make([]dto.DocumentLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.DocumentLineResponse{
			ProductID: l.ProductID,
			Code:      l.Code,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal,
		})
	}
	return out
}

func saleToResponse(s *entity.SaleRecord) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:           s.ID,
		Date:         s.Date.Format("2006-01-02 15:04:05"),
		ClientName:   s.ClientName,
		DocType:      string(s.DocType),
		DocNumber:    s.DocNumber,
		Currency:     s.Currency,
		ExchangeRate: s.ExchangeRate,
		Condition:    string(s.Condition),
		CreditDays:   s.CreditDays,
		Lines:        linesToResponse(s.Lines),
		Subtotal:     s.Subtotal,
		Tax:          s.Tax,
		GrandTotal:   s.GrandTotal,
		Breakdown: dto.BreakdownResponse{
			Cash:   s.Breakdown.Cash,
			Yape:   s.Breakdown.Yape,
			Card:   s.Breakdown.Card,
			Bank:   s.Breakdown.Bank,
			Wallet: s.Breakdown.Wallet,
		},
		UserName: s.UserName,
	}
}

// GetSale obtiene un comprobante de venta por ID.
func (uc *FinalizeSaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return saleToResponse(sale), nil
}

// ListSales lista comprobantes de venta por rango de fechas.
func (uc *FinalizeSaleUseCase) ListSales(ctx context.Context, from, to *time.Time, page dto.PageRequest) ([]*dto.SaleResponse, error) {
	page.DefaultPage()
	sales, err := uc.saleRepo.List(from, to, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, saleToResponse(s))
	}
	return out, nil
}
