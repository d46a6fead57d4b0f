package checkout_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcheckout "github.com/jquispe/puntoventa-api/internal/application/checkout"
	"github.com/jquispe/puntoventa-api/internal/application/dto"
	"github.com/jquispe/puntoventa-api/internal/domain"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
)

type noteFixture struct {
	uc       *appcheckout.CreditNoteUseCase
	products *fakeProductRepo
	runner   *fakeTxRunner
	clients  *fakeClientRepo
	accounts *fakeAccountRepo
}

// newNoteFixture siembra una venta de 3 laptops a 118 cada una.
func newNoteFixture() *noteFixture {
	productRepo := newFakeProductRepo(&entity.Product{
		ID: "p1", Code: "LAP-001", Name: "Laptop HP 15",
		Price: decimal.NewFromFloat(118), Stock: 7, // ya descontada la venta
	})
	clientRepo := newFakeClientRepo(&entity.Client{ID: "cli-1", Name: "Maria Gomez"})
	runner := &fakeTxRunner{
		products:  productRepo,
		movements: &fakeMovementRepo{},
		ledger:    &fakeLedgerRepo{},
		sales:     newFakeSaleRepo(),
		purchases: newFakePurchaseRepo(),
		notes:     newFakeNoteRepo(),
		clients:   clientRepo,
	}
	runner.sales.sales["venta-1"] = &entity.SaleRecord{
		ID:         "venta-1",
		Date:       time.Now(),
		ClientName: "Maria Gomez",
		DocType:    entity.DocTicketVenta,
		DocNumber:  "000042",
		Currency:   "PEN",
		Lines: []entity.DocumentLine{
			{ProductID: "p1", Code: "LAP-001", Name: "Laptop HP 15", Quantity: 3,
				UnitPrice: decimal.NewFromFloat(118), LineTotal: decimal.NewFromFloat(354)},
		},
		GrandTotal: decimal.NewFromFloat(354),
	}
	accountRepo := newFakeAccountRepo(
		&entity.BankAccount{ID: "acc-ventas", BankName: "BCP", Currency: "PEN", UseInSales: true},
		&entity.BankAccount{ID: "acc-compras", BankName: "BBVA", Currency: "PEN", UseInPurchases: true},
	)
	return &noteFixture{
		uc:       appcheckout.NewCreditNoteUseCase(runner, runner.sales, runner.notes, accountRepo),
		products: productRepo,
		runner:   runner,
		clients:  clientRepo,
		accounts: accountRepo,
	}
}

func TestIssueCreditNote_DevolucionParcial(t *testing.T) {
	f := newNoteFixture()

	resp, err := f.uc.IssueCreditNote(context.Background(), "cajero1", dto.CreateCreditNoteRequest{
		SaleID: "venta-1",
		Lines:  []dto.ReturnLineRequest{{ProductID: "p1", Quantity: 2}},
		Refunds: []dto.PaymentEntryRequest{
			{Method: string(entity.MethodEfectivo), Amount: decimal.NewFromFloat(236)},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalRefund.Equal(decimal.NewFromFloat(236)),
		"el reembolso usa el precio congelado del comprobante")
	assert.Equal(t, "Maria Gomez", resp.ClientName)

	// Reingreso de inventario
	p, _ := f.products.GetByID("p1")
	assert.Equal(t, int64(9), p.Stock)
	require.Len(t, f.runner.movements.movements, 1)
	assert.Equal(t, entity.DirEntrada, f.runner.movements.movements[0].Direction)

	// El asiento de la devolución mantiene el sentido histórico del mostrador
	require.Len(t, f.runner.ledger.movements, 1)
	asiento := f.runner.ledger.movements[0]
	assert.Equal(t, entity.DirIngreso, asiento.Direction)
	assert.Equal(t, entity.CategoriaDevolucion, asiento.Category)
}

func TestIssueCreditNote_ExcedeLoVendido(t *testing.T) {
	f := newNoteFixture()

	_, err := f.uc.IssueCreditNote(context.Background(), "cajero1", dto.CreateCreditNoteRequest{
		SaleID: "venta-1",
		Lines:  []dto.ReturnLineRequest{{ProductID: "p1", Quantity: 4}},
		Refunds: []dto.PaymentEntryRequest{
			{Method: string(entity.MethodEfectivo), Amount: decimal.NewFromFloat(472)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrReturnExceedsSold)
}

func TestIssueCreditNote_AcumulaNotasPrevias(t *testing.T) {
	f := newNoteFixture()

	// Primera nota: devuelve 2 de 3
	_, err := f.uc.IssueCreditNote(context.Background(), "cajero1", dto.CreateCreditNoteRequest{
		SaleID: "venta-1",
		Lines:  []dto.ReturnLineRequest{{ProductID: "p1", Quantity: 2}},
		Refunds: []dto.PaymentEntryRequest{
			{Method: string(entity.MethodEfectivo), Amount: decimal.NewFromFloat(236)},
		},
	})
	require.NoError(t, err)

	// Segunda nota: devolver 2 más excede las 3 vendidas
	_, err = f.uc.IssueCreditNote(context.Background(), "cajero1", dto.CreateCreditNoteRequest{
		SaleID: "venta-1",
		Lines:  []dto.ReturnLineRequest{{ProductID: "p1", Quantity: 2}},
		Refunds: []dto.PaymentEntryRequest{
			{Method: string(entity.MethodEfectivo), Amount: decimal.NewFromFloat(236)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrReturnExceedsSold,
		"las devoluciones se acumulan entre notas contra la misma venta")

	// Devolver la unidad restante sí procede
	_, err = f.uc.IssueCreditNote(context.Background(), "cajero1", dto.CreateCreditNoteRequest{
		SaleID: "venta-1",
		Lines:  []dto.ReturnLineRequest{{ProductID: "p1", Quantity: 1}},
		Refunds: []dto.PaymentEntryRequest{
			{Method: string(entity.MethodEfectivo), Amount: decimal.NewFromFloat(118)},
		},
	})
	assert.NoError(t, err)
}

func TestIssueCreditNote_ReembolsoInsuficiente(t *testing.T) {
	f := newNoteFixture()

	_, err := f.uc.IssueCreditNote(context.Background(), "cajero1", dto.CreateCreditNoteRequest{
		SaleID: "venta-1",
		Lines:  []dto.ReturnLineRequest{{ProductID: "p1", Quantity: 2}},
		Refunds: []dto.PaymentEntryRequest{
			{Method: string(entity.MethodEfectivo), Amount: decimal.NewFromFloat(100)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrIncompletePayment,
		"los reembolsos deben cubrir el total devuelto")
}

func TestIssueCreditNote_CuentaNoHabilitadaParaVentas(t *testing.T) {
	f := newNoteFixture()

	_, err := f.uc.IssueCreditNote(context.Background(), "cajero1", dto.CreateCreditNoteRequest{
		SaleID: "venta-1",
		Lines:  []dto.ReturnLineRequest{{ProductID: "p1", Quantity: 2}},
		Refunds: []dto.PaymentEntryRequest{
			{Method: string(entity.MethodTransferencia), Amount: decimal.NewFromFloat(236), AccountID: "acc-compras"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNoEligibleAccounts,
		"el reembolso sale por una cuenta habilitada para ventas, igual que el cobro")
	assert.Empty(t, f.runner.notes.notes, "la nota rechazada no se emite")
}

func TestIssueCreditNote_CuentaInexistente(t *testing.T) {
	f := newNoteFixture()

	_, err := f.uc.IssueCreditNote(context.Background(), "cajero1", dto.CreateCreditNoteRequest{
		SaleID: "venta-1",
		Lines:  []dto.ReturnLineRequest{{ProductID: "p1", Quantity: 2}},
		Refunds: []dto.PaymentEntryRequest{
			{Method: string(entity.MethodTransferencia), Amount: decimal.NewFromFloat(236), AccountID: "nope"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIssueCreditNote_SaldoFavorAbonaBilletera(t *testing.T) {
	f := newNoteFixture()

	_, err := f.uc.IssueCreditNote(context.Background(), "cajero1", dto.CreateCreditNoteRequest{
		SaleID: "venta-1",
		Lines:  []dto.ReturnLineRequest{{ProductID: "p1", Quantity: 1}},
		Refunds: []dto.PaymentEntryRequest{
			{Method: string(entity.MethodSaldoFavor), Amount: decimal.NewFromFloat(118)},
		},
	})
	require.NoError(t, err)

	cli, _ := f.clients.GetByID("cli-1")
	assert.True(t, cli.DigitalBalance.Equal(decimal.NewFromFloat(118)),
		"la devolución a saldo favor abona la billetera del cliente")
	assert.Empty(t, f.runner.ledger.movements)
}

func TestIssueCreditNote_VentaInexistente(t *testing.T) {
	f := newNoteFixture()

	_, err := f.uc.IssueCreditNote(context.Background(), "cajero1", dto.CreateCreditNoteRequest{
		SaleID: "nope",
		Lines:  []dto.ReturnLineRequest{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIssueCreditNote_ProductoFueraDeLaVenta(t *testing.T) {
	f := newNoteFixture()

	_, err := f.uc.IssueCreditNote(context.Background(), "cajero1", dto.CreateCreditNoteRequest{
		SaleID: "venta-1",
		Lines:  []dto.ReturnLineRequest{{ProductID: "otro", Quantity: 1}},
		Refunds: []dto.PaymentEntryRequest{
			{Method: string(entity.MethodEfectivo), Amount: decimal.NewFromFloat(10)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"solo se devuelven productos presentes en el comprobante original")
}
