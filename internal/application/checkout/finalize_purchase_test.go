package checkout_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcheckout "github.com/jquispe/puntoventa-api/internal/application/checkout"
	"github.com/jquispe/puntoventa-api/internal/application/dto"
	"github.com/jquispe/puntoventa-api/internal/domain"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
)

type purchaseFixture struct {
	uc       *appcheckout.FinalizePurchaseUseCase
	products *fakeProductRepo
	runner   *fakeTxRunner
}

func newPurchaseFixture(products ...*entity.Product) *purchaseFixture {
	productRepo := newFakeProductRepo(products...)
	accountRepo := newFakeAccountRepo(
		&entity.BankAccount{ID: "acc-compras", BankName: "BBVA", Currency: "PEN", UseInPurchases: true},
	)
	runner := &fakeTxRunner{
		products:  productRepo,
		movements: &fakeMovementRepo{},
		ledger:    &fakeLedgerRepo{},
		sales:     newFakeSaleRepo(),
		purchases: newFakePurchaseRepo(),
		notes:     newFakeNoteRepo(),
		clients:   newFakeClientRepo(),
	}
	return &purchaseFixture{
		uc:       appcheckout.NewFinalizePurchaseUseCase(runner, runner.purchases, accountRepo, "PEN"),
		products: productRepo,
		runner:   runner,
	}
}

func compraRequest(items ...dto.CartItemRequest) dto.FinalizePurchaseRequest {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return dto.FinalizePurchaseRequest{
		SupplierName: "Distribuidora Norte SAC",
		DocType:      string(entity.DocFacturaCompra),
		Currency:     "PEN",
		ExchangeRate: decimal.NewFromFloat(3.75),
		Condition:    string(entity.CondicionContado),
		Items:        items,
		Payments: []dto.PaymentEntryRequest{
			{Method: string(entity.MethodEfectivo), Amount: total},
		},
	}
}

func TestFinalizePurchase_ContadoIngresaYRecalculaCosto(t *testing.T) {
	f := newPurchaseFixture(&entity.Product{
		ID: "p1", Code: "LAP-001", Name: "Laptop HP 15",
		Price: decimal.NewFromFloat(150), Cost: decimal.NewFromFloat(100), Stock: 10,
	})

	// 10 uds a costo 100 + 5 uds a 130 => promedio 110
	resp, err := f.uc.FinalizePurchase(context.Background(), "cajero1", compraRequest(
		dto.CartItemRequest{ProductID: "p1", Quantity: 5, UnitPrice: decimal.NewFromFloat(130)},
	))
	require.NoError(t, err)

	p, _ := f.products.GetByID("p1")
	assert.Equal(t, int64(15), p.Stock)
	assert.True(t, p.Cost.Equal(decimal.NewFromFloat(110)), "costo promedio ponderado")

	require.Len(t, f.runner.movements.movements, 1)
	assert.Equal(t, entity.DirEntrada, f.runner.movements.movements[0].Direction)

	require.Len(t, f.runner.ledger.movements, 1)
	asiento := f.runner.ledger.movements[0]
	assert.Equal(t, entity.DirEgreso, asiento.Direction)
	assert.Equal(t, entity.CategoriaCompra, asiento.Category)
	assert.Equal(t, resp.ID, asiento.ReferenceID)
}

func TestFinalizePurchase_CreditoNoTocaCaja(t *testing.T) {
	f := newPurchaseFixture(&entity.Product{ID: "p1", Name: "Teclado", Price: decimal.NewFromFloat(80), Stock: 0})

	req := compraRequest(dto.CartItemRequest{ProductID: "p1", Quantity: 10, UnitPrice: decimal.NewFromFloat(50)})
	req.Condition = string(entity.CondicionCredito)
	req.CreditDays = 45
	req.Payments = nil

	_, err := f.uc.FinalizePurchase(context.Background(), "cajero1", req)
	require.NoError(t, err)

	assert.Empty(t, f.runner.ledger.movements, "una compra a crédito no genera egresos")
	p, _ := f.products.GetByID("p1")
	assert.Equal(t, int64(10), p.Stock)
	assert.True(t, p.Cost.Equal(decimal.NewFromFloat(50)))
}

func TestFinalizePurchase_NotaEntradaSinIGV(t *testing.T) {
	f := newPurchaseFixture(&entity.Product{ID: "p1", Name: "Teclado", Price: decimal.NewFromFloat(80), Stock: 0})

	req := compraRequest(dto.CartItemRequest{ProductID: "p1", Quantity: 2, UnitPrice: decimal.NewFromFloat(59)})
	req.DocType = string(entity.DocNotaEntrada)

	resp, err := f.uc.FinalizePurchase(context.Background(), "cajero1", req)
	require.NoError(t, err)

	assert.True(t, resp.Tax.IsZero(), "la nota de entrada está exenta de IGV")
	assert.True(t, resp.Subtotal.Equal(resp.GrandTotal))
}

func TestFinalizePurchase_CompraEnDivisaConvierteElCosto(t *testing.T) {
	f := newPurchaseFixture(&entity.Product{ID: "p1", Name: "Teclado", Price: decimal.NewFromFloat(80), Stock: 0})

	req := compraRequest(dto.CartItemRequest{ProductID: "p1", Quantity: 4, UnitPrice: decimal.NewFromFloat(20)})
	req.Currency = "USD"
	req.ExchangeRate = decimal.NewFromFloat(3.5)
	req.Payments[0].Amount = decimal.NewFromFloat(80)

	_, err := f.uc.FinalizePurchase(context.Background(), "cajero1", req)
	require.NoError(t, err)

	p, _ := f.products.GetByID("p1")
	assert.True(t, p.Cost.Equal(decimal.NewFromFloat(70)),
		"el costo se guarda en moneda base: 20 USD × 3.5")
}

func TestFinalizePurchase_ContadoIncompleto(t *testing.T) {
	f := newPurchaseFixture(&entity.Product{ID: "p1", Name: "Teclado", Price: decimal.NewFromFloat(80), Stock: 0})

	req := compraRequest(dto.CartItemRequest{ProductID: "p1", Quantity: 1, UnitPrice: decimal.NewFromFloat(100)})
	req.Payments = []dto.PaymentEntryRequest{
		{Method: string(entity.MethodEfectivo), Amount: decimal.NewFromFloat(50)},
	}

	_, err := f.uc.FinalizePurchase(context.Background(), "cajero1", req)
	assert.ErrorIs(t, err, domain.ErrIncompletePayment)
}

func TestFinalizePurchase_SinProveedor(t *testing.T) {
	f := newPurchaseFixture(&entity.Product{ID: "p1", Name: "Teclado", Price: decimal.NewFromFloat(80), Stock: 0})

	req := compraRequest(dto.CartItemRequest{ProductID: "p1", Quantity: 1, UnitPrice: decimal.NewFromFloat(100)})
	req.SupplierName = ""

	_, err := f.uc.FinalizePurchase(context.Background(), "cajero1", req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
