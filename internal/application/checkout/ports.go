package checkout

import (
	"context"

	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

// CheckoutTxRunner ejecuta una función dentro de una transacción que incluye
// los repositorios de inventario, caja y comprobantes. Finalizar una venta,
// una compra o una nota de crédito descuenta stock, asienta kardex y caja y
// guarda el comprobante de forma atómica: si cualquier paso falla, rollback.
type CheckoutTxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
		ledgerRepo repository.LedgerRepository,
		saleRepo repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
		noteRepo repository.CreditNoteRepository,
		clientRepo repository.ClientRepository,
	) error) error
}
