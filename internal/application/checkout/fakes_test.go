package checkout_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	appcheckout "github.com/jquispe/puntoventa-api/internal/application/checkout"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos de persistencia. El runner de transacción
// falso invoca la función directamente: la atomicidad real se prueba contra
// PostgreSQL; aquí interesa la lógica de negocio.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product)
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) UpdateStock(id string, stock int64) error {
	if p, ok := r.products[id]; ok {
		p.Stock = stock
	}
	return nil
}
func (r *fakeProductRepo) UpdateCost(id string, cost decimal.Decimal) error {
	if p, ok := r.products[id]; ok {
		p.Cost = cost
	}
	return nil
}
func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error                            { delete(r.products, id); return nil }

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}
func (r *fakeMovementRepo) ListByProduct(string, *time.Time, *time.Time, int, int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}
func (r *fakeMovementRepo) List(*time.Time, *time.Time, int, int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}

type fakeLedgerRepo struct {
	movements []*entity.LedgerMovement
}

func (r *fakeLedgerRepo) Create(m *entity.LedgerMovement) error {
	r.movements = append(r.movements, m)
	return nil
}
func (r *fakeLedgerRepo) GetByID(id string) (*entity.LedgerMovement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}
func (r *fakeLedgerRepo) List(*time.Time, *time.Time, int, int) ([]*entity.LedgerMovement, error) {
	return r.movements, nil
}
func (r *fakeLedgerRepo) ListByAccount(accountID string, _, _ *time.Time, _, _ int) ([]*entity.LedgerMovement, error) {
	var out []*entity.LedgerMovement
	for _, m := range r.movements {
		if m.AccountID == accountID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (r *fakeLedgerRepo) BalanceByAccount(accountID, currency string) (decimal.Decimal, error) {
	balance := decimal.Zero
	for _, m := range r.movements {
		if m.AccountID != accountID || m.Currency != currency {
			continue
		}
		if m.Direction == entity.DirIngreso {
			balance = balance.Add(m.Amount)
		} else {
			balance = balance.Sub(m.Amount)
		}
	}
	return balance, nil
}

type fakeSaleRepo struct {
	sales  map[string]*entity.SaleRecord
	nextNo int64
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]*entity.SaleRecord)}
}

func (r *fakeSaleRepo) Create(s *entity.SaleRecord) error { r.sales[s.ID] = s; return nil }
func (r *fakeSaleRepo) GetByID(id string) (*entity.SaleRecord, error) {
	return r.sales[id], nil
}
func (r *fakeSaleRepo) List(*time.Time, *time.Time, int, int) ([]*entity.SaleRecord, error) {
	var out []*entity.SaleRecord
	for _, s := range r.sales {
		out = append(out, s)
	}
	return out, nil
}
func (r *fakeSaleRepo) NextNumber(entity.DocumentType) (int64, error) {
	r.nextNo++
	return r.nextNo, nil
}

type fakePurchaseRepo struct {
	purchases map[string]*entity.PurchaseRecord
	nextNo    int64
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{purchases: make(map[string]*entity.PurchaseRecord)}
}

func (r *fakePurchaseRepo) Create(p *entity.PurchaseRecord) error { r.purchases[p.ID] = p; return nil }
func (r *fakePurchaseRepo) GetByID(id string) (*entity.PurchaseRecord, error) {
	return r.purchases[id], nil
}
func (r *fakePurchaseRepo) List(*time.Time, *time.Time, int, int) ([]*entity.PurchaseRecord, error) {
	var out []*entity.PurchaseRecord
	for _, p := range r.purchases {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakePurchaseRepo) NextNumber(entity.DocumentType) (int64, error) {
	r.nextNo++
	return r.nextNo, nil
}

type fakeNoteRepo struct {
	notes  map[string]*entity.CreditNote
	nextNo int64
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[string]*entity.CreditNote)}
}

func (r *fakeNoteRepo) Create(n *entity.CreditNote) error { r.notes[n.ID] = n; return nil }
func (r *fakeNoteRepo) GetByID(id string) (*entity.CreditNote, error) {
	return r.notes[id], nil
}
func (r *fakeNoteRepo) List(*time.Time, *time.Time, int, int) ([]*entity.CreditNote, error) {
	var out []*entity.CreditNote
	for _, n := range r.notes {
		out = append(out, n)
	}
	return out, nil
}
func (r *fakeNoteRepo) ListBySale(saleID string) ([]*entity.CreditNote, error) {
	var out []*entity.CreditNote
	for _, n := range r.notes {
		if n.OriginalSaleID == saleID {
			out = append(out, n)
		}
	}
	return out, nil
}
func (r *fakeNoteRepo) NextNumber() (int64, error) {
	r.nextNo++
	return r.nextNo, nil
}

type fakeClientRepo struct {
	clients map[string]*entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	m := make(map[string]*entity.Client)
	for _, c := range clients {
		m[c.ID] = c
	}
	return &fakeClientRepo{clients: m}
}

func (r *fakeClientRepo) Create(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}
func (r *fakeClientRepo) GetByName(name string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeClientRepo) Update(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *fakeClientRepo) List(int, int) ([]*entity.Client, error) { return nil, nil }
func (r *fakeClientRepo) AdjustDigitalBalance(id string, delta decimal.Decimal) error {
	if c, ok := r.clients[id]; ok {
		c.DigitalBalance = c.DigitalBalance.Add(delta)
	}
	return nil
}
func (r *fakeClientRepo) AddPurchaseTotal(id string, amount decimal.Decimal) error {
	if c, ok := r.clients[id]; ok {
		c.TotalPurchases = c.TotalPurchases.Add(amount)
	}
	return nil
}
func (r *fakeClientRepo) Delete(id string) error { delete(r.clients, id); return nil }

type fakeAccountRepo struct {
	accounts map[string]*entity.BankAccount
}

func newFakeAccountRepo(accounts ...*entity.BankAccount) *fakeAccountRepo {
	m := make(map[string]*entity.BankAccount)
	for _, a := range accounts {
		m[a.ID] = a
	}
	return &fakeAccountRepo{accounts: m}
}

func (r *fakeAccountRepo) Create(a *entity.BankAccount) error { r.accounts[a.ID] = a; return nil }
func (r *fakeAccountRepo) GetByID(id string) (*entity.BankAccount, error) {
	return r.accounts[id], nil
}
func (r *fakeAccountRepo) Update(a *entity.BankAccount) error { r.accounts[a.ID] = a; return nil }
func (r *fakeAccountRepo) List() ([]*entity.BankAccount, error) {
	var out []*entity.BankAccount
	for _, a := range r.accounts {
		out = append(out, a)
	}
	return out, nil
}
func (r *fakeAccountRepo) ListEligible(usage entity.AccountUsage, currency string) ([]*entity.BankAccount, error) {
	var out []*entity.BankAccount
	for _, a := range r.accounts {
		if a.EnabledFor(usage) && a.Currency == currency {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAccountRepo) Delete(id string) error { delete(r.accounts, id); return nil }

type fakeQuotationRepo struct {
	quotations map[string]*entity.Quotation
}

func newFakeQuotationRepo() *fakeQuotationRepo {
	return &fakeQuotationRepo{quotations: make(map[string]*entity.Quotation)}
}

func (r *fakeQuotationRepo) Create(q *entity.Quotation) error { r.quotations[q.ID] = q; return nil }
func (r *fakeQuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	return r.quotations[id], nil
}
func (r *fakeQuotationRepo) List(int, int) ([]*entity.Quotation, error) {
	var out []*entity.Quotation
	for _, q := range r.quotations {
		out = append(out, q)
	}
	return out, nil
}
func (r *fakeQuotationRepo) Delete(id string) error { delete(r.quotations, id); return nil }

// fakeTxRunner invoca la función con los repos en memoria, sin transacción.
type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
	ledger    *fakeLedgerRepo
	sales     *fakeSaleRepo
	purchases *fakePurchaseRepo
	notes     *fakeNoteRepo
	clients   *fakeClientRepo
}

var _ appcheckout.CheckoutTxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) RunCheckout(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	ledgerRepo repository.LedgerRepository,
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	noteRepo repository.CreditNoteRepository,
	clientRepo repository.ClientRepository,
) error) error {
	return fn(r.products, r.movements, r.ledger, r.sales, r.purchases, r.notes, r.clients)
}
