package inventory

import (
	"context"

	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

// InventoryTxRunner ejecuta una función dentro de una transacción con los
// repositorios de producto y kardex: un ajuste actualiza el stock vivo y deja
// su asiento en el mismo commit.
type InventoryTxRunner interface {
	RunInventory(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}
