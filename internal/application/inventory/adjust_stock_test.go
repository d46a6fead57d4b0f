package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jquispe/puntoventa-api/internal/application/dto"
	"github.com/jquispe/puntoventa-api/internal/domain"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return f.products[id], nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeProductRepo) UpdateStock(id string, newStock int64) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = newStock
	return nil
}
func (f *fakeProductRepo) UpdateCost(id string, cost decimal.Decimal) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Cost = cost
	return nil
}
func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Delete(id string) error                            { delete(f.products, id); return nil }

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (f *fakeMovementRepo) Create(m *entity.StockMovement) error {
	f.movements = append(f.movements, m)
	return nil
}
func (f *fakeMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range f.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (f *fakeMovementRepo) List(from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return f.movements, nil
}

type fakeTxRunner struct {
	products *fakeProductRepo
	movs     *fakeMovementRepo
}

func (f *fakeTxRunner) RunInventory(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	return fn(f.products, f.movs)
}

func newFixture() (*AdjustStockUseCase, *fakeProductRepo, *fakeMovementRepo) {
	products := &fakeProductRepo{products: map[string]*entity.Product{
		"prod-1": {
			ID:    "prod-1",
			Code:  "LAP-001",
			Name:  "Laptop HP 15",
			Price: decimal.NewFromInt(2500),
			Stock: 10,
		},
	}}
	movs := &fakeMovementRepo{}
	uc := NewAdjustStockUseCase(&fakeTxRunner{products: products, movs: movs}, movs)
	return uc, products, movs
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Adjust
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_EntradaSumaStock(t *testing.T) {
	uc, products, movs := newFixture()

	out, err := uc.Adjust(context.Background(), "Pedro", dto.AdjustStockRequest{
		ProductID: "prod-1",
		Direction: "ENTRADA",
		Quantity:  5,
		Reason:    "CONTEO FISICO",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(15), products.products["prod-1"].Stock,
		"la entrada debe sumar al stock vivo")
	assert.Equal(t, int64(15), out.ResultingStock)
	require.Len(t, movs.movements, 1)
	assert.Equal(t, "CONTEO FISICO", movs.movements[0].Reference,
		"el motivo debe quedar como referencia del asiento")
	assert.Equal(t, "Pedro", movs.movements[0].UserName)
}

func TestAdjust_SalidaRestaStock(t *testing.T) {
	uc, products, _ := newFixture()

	out, err := uc.Adjust(context.Background(), "Pedro", dto.AdjustStockRequest{
		ProductID: "prod-1",
		Direction: "SALIDA",
		Quantity:  4,
		Reason:    "MERMA",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6), products.products["prod-1"].Stock)
	assert.Equal(t, int64(6), out.ResultingStock)
}

func TestAdjust_SalidaNoPuedeDejarStockNegativo(t *testing.T) {
	uc, products, movs := newFixture()

	_, err := uc.Adjust(context.Background(), "Pedro", dto.AdjustStockRequest{
		ProductID: "prod-1",
		Direction: "SALIDA",
		Quantity:  11,
		Reason:    "MERMA",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(10), products.products["prod-1"].Stock,
		"un ajuste rechazado no debe tocar el stock")
	assert.Empty(t, movs.movements, "un ajuste rechazado no debe asentar kardex")
}

func TestAdjust_ValidaEntrada(t *testing.T) {
	uc, _, _ := newFixture()
	ctx := context.Background()

	_, err := uc.Adjust(ctx, "Pedro", dto.AdjustStockRequest{
		ProductID: "", Direction: "ENTRADA", Quantity: 1, Reason: "X",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "product_id vacío debe rechazarse")

	_, err = uc.Adjust(ctx, "Pedro", dto.AdjustStockRequest{
		ProductID: "prod-1", Direction: "LATERAL", Quantity: 1, Reason: "X",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "dirección desconocida debe rechazarse")

	_, err = uc.Adjust(ctx, "Pedro", dto.AdjustStockRequest{
		ProductID: "prod-1", Direction: "ENTRADA", Quantity: 0, Reason: "X",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero debe rechazarse")

	_, err = uc.Adjust(ctx, "Pedro", dto.AdjustStockRequest{
		ProductID: "prod-1", Direction: "ENTRADA", Quantity: 1, Reason: "",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el motivo es obligatorio")
}

func TestAdjust_ProductoInexistente(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Adjust(context.Background(), "Pedro", dto.AdjustStockRequest{
		ProductID: "prod-999", Direction: "ENTRADA", Quantity: 1, Reason: "X",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByProduct_FiltraPorProducto(t *testing.T) {
	uc, _, movs := newFixture()
	movs.movements = []*entity.StockMovement{
		{ID: "m1", ProductID: "prod-1"},
		{ID: "m2", ProductID: "prod-2"},
		{ID: "m3", ProductID: "prod-1"},
	}

	out, err := uc.ListByProduct("prod-1", nil, nil, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out, 2, "solo deben volver los asientos del producto")
}
