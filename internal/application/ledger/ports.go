package ledger

import (
	"context"

	"github.com/jquispe/puntoventa-api/internal/domain/repository"
)

// LedgerTxRunner ejecuta una función dentro de una transacción con el
// repositorio de caja: los dos asientos de una transferencia entran en el
// mismo commit o en ninguno.
type LedgerTxRunner interface {
	RunLedger(ctx context.Context, fn func(ledgerRepo repository.LedgerRepository) error) error
}
