package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appcheckout "github.com/jquispe/puntoventa-api/internal/application/checkout"
	appinventory "github.com/jquispe/puntoventa-api/internal/application/inventory"
	appledger "github.com/jquispe/puntoventa-api/internal/application/ledger"
	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

var _ appcheckout.CheckoutTxRunner = (*TxRunner)(nil)
var _ appinventory.InventoryTxRunner = (*TxRunner)(nil)
var _ appledger.LedgerTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCheckout inicia una transacción con todos los repos que participan en un
// cierre de caja (venta, compra o nota de crédito) y hace Commit o Rollback.
func (r *TxRunner) RunCheckout(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	ledgerRepo repository.LedgerRepository,
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
	noteRepo repository.CreditNoteRepository,
	clientRepo repository.ClientRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewProductRepository(tx),
		NewStockMovementRepository(tx),
		NewLedgerRepository(tx),
		NewSaleRepository(tx),
		NewPurchaseRepository(tx),
		NewCreditNoteRepository(tx),
		NewClientRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunInventory inicia una transacción para ajustes de inventario.
func (r *TxRunner) RunInventory(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProductRepository(tx), NewStockMovementRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunLedger inicia una transacción para asientos de caja emparejados
// (transferencias).
func (r *TxRunner) RunLedger(ctx context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewLedgerRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
