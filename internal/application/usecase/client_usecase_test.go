package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jquispe/puntoventa-api/internal/application/dto"
	"github.com/jquispe/puntoventa-api/internal/application/usecase"
	"github.com/jquispe/puntoventa-api/internal/domain"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
)

type memClientRepo struct {
	clients map[string]*entity.Client
}

func (r *memClientRepo) Create(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *memClientRepo) GetByID(id string) (*entity.Client, error) {
	return r.clients[id], nil
}
func (r *memClientRepo) GetByName(name string) (*entity.Client, error) {
	for _, c := range r.clients {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memClientRepo) Update(c *entity.Client) error { r.clients[c.ID] = c; return nil }
func (r *memClientRepo) List(int, int) ([]*entity.Client, error) { return nil, nil }
func (r *memClientRepo) AdjustDigitalBalance(id string, delta decimal.Decimal) error {
	if c, ok := r.clients[id]; ok {
		c.DigitalBalance = c.DigitalBalance.Add(delta)
	}
	return nil
}
func (r *memClientRepo) AddPurchaseTotal(id string, amount decimal.Decimal) error {
	if c, ok := r.clients[id]; ok {
		c.TotalPurchases = c.TotalPurchases.Add(amount)
	}
	return nil
}
func (r *memClientRepo) Delete(id string) error { delete(r.clients, id); return nil }

type memWalletLedger struct {
	movements []*entity.LedgerMovement
}

func (r *memWalletLedger) Create(m *entity.LedgerMovement) error {
	r.movements = append(r.movements, m)
	return nil
}
func (r *memWalletLedger) GetByID(string) (*entity.LedgerMovement, error) { return nil, nil }
func (r *memWalletLedger) List(*time.Time, *time.Time, int, int) ([]*entity.LedgerMovement, error) {
	return r.movements, nil
}
func (r *memWalletLedger) ListByAccount(string, *time.Time, *time.Time, int, int) ([]*entity.LedgerMovement, error) {
	return r.movements, nil
}
func (r *memWalletLedger) BalanceByAccount(string, string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func newClientFixture() (*usecase.ClientUseCase, *memClientRepo, *memWalletLedger) {
	repo := &memClientRepo{clients: map[string]*entity.Client{
		"cli-1": {ID: "cli-1", Name: "Maria Gomez", DigitalBalance: decimal.NewFromFloat(50)},
	}}
	ledger := &memWalletLedger{}
	return usecase.NewClientUseCase(repo, ledger, "PEN"), repo, ledger
}

func TestAdjustWallet_AbonoAsientaIngreso(t *testing.T) {
	uc, repo, ledger := newClientFixture()

	resp, err := uc.AdjustWallet("cajero1", "cli-1", dto.AdjustWalletRequest{
		Delta:   decimal.NewFromFloat(100),
		Concept: "ADELANTO PEDIDO",
	})
	require.NoError(t, err)
	assert.True(t, resp.DigitalBalance.Equal(decimal.NewFromFloat(150)))

	// El abono queda registrado en caja bajo la categoría de billetera.
	require.Len(t, ledger.movements, 1)
	asiento := ledger.movements[0]
	assert.Equal(t, entity.DirIngreso, asiento.Direction)
	assert.Equal(t, entity.CategoriaBilletera, asiento.Category)
	assert.Equal(t, entity.MethodEfectivo, asiento.Method, "sin método explícito se asume efectivo")
	assert.True(t, asiento.Amount.Equal(decimal.NewFromFloat(100)))
	assert.Equal(t, "PEN", asiento.Currency)
	assert.Equal(t, "cli-1", asiento.ReferenceID)
	assert.Contains(t, asiento.Concept, "BILLETERA CLIENTE")
	assert.Contains(t, asiento.Concept, "ADELANTO PEDIDO")
	assert.Contains(t, asiento.Concept, "Maria Gomez")

	cli, _ := repo.GetByID("cli-1")
	assert.True(t, cli.DigitalBalance.Equal(decimal.NewFromFloat(150)))
}

func TestAdjustWallet_ConsumoAsientaEgreso(t *testing.T) {
	uc, _, ledger := newClientFixture()

	resp, err := uc.AdjustWallet("cajero1", "cli-1", dto.AdjustWalletRequest{
		Delta: decimal.NewFromFloat(-30),
	})
	require.NoError(t, err)
	assert.True(t, resp.DigitalBalance.Equal(decimal.NewFromFloat(20)))

	require.Len(t, ledger.movements, 1)
	asiento := ledger.movements[0]
	assert.Equal(t, entity.DirEgreso, asiento.Direction)
	assert.True(t, asiento.Amount.Equal(decimal.NewFromFloat(30)), "el asiento va en valor absoluto")
	assert.Contains(t, asiento.Concept, "AJUSTE MANUAL", "concepto por defecto")
}

func TestAdjustWallet_MetodoBancarioConservaCuenta(t *testing.T) {
	uc, _, ledger := newClientFixture()

	_, err := uc.AdjustWallet("cajero1", "cli-1", dto.AdjustWalletRequest{
		Delta:     decimal.NewFromFloat(100),
		Method:    string(entity.MethodTransferencia),
		AccountID: "acc-1",
	})
	require.NoError(t, err)

	require.Len(t, ledger.movements, 1)
	assert.Equal(t, "acc-1", ledger.movements[0].AccountID)
}

func TestAdjustWallet_EfectivoIgnoraCuenta(t *testing.T) {
	uc, _, ledger := newClientFixture()

	_, err := uc.AdjustWallet("cajero1", "cli-1", dto.AdjustWalletRequest{
		Delta:     decimal.NewFromFloat(100),
		Method:    string(entity.MethodEfectivo),
		AccountID: "acc-1",
	})
	require.NoError(t, err)

	require.Len(t, ledger.movements, 1)
	assert.Equal(t, "", ledger.movements[0].AccountID, "el efectivo vive en la caja física")
}

func TestAdjustWallet_DeltaCero(t *testing.T) {
	uc, _, ledger := newClientFixture()

	_, err := uc.AdjustWallet("cajero1", "cli-1", dto.AdjustWalletRequest{Delta: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.Empty(t, ledger.movements)
}

func TestAdjustWallet_NoDejaBilleteraNegativa(t *testing.T) {
	uc, repo, ledger := newClientFixture()

	_, err := uc.AdjustWallet("cajero1", "cli-1", dto.AdjustWalletRequest{
		Delta: decimal.NewFromFloat(-80),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount, "la billetera solo tiene 50")
	assert.Empty(t, ledger.movements)

	cli, _ := repo.GetByID("cli-1")
	assert.True(t, cli.DigitalBalance.Equal(decimal.NewFromFloat(50)))
}

func TestAdjustWallet_ClienteInexistente(t *testing.T) {
	uc, _, _ := newClientFixture()

	_, err := uc.AdjustWallet("cajero1", "nope", dto.AdjustWalletRequest{
		Delta: decimal.NewFromFloat(10),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
