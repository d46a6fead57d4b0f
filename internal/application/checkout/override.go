package checkout

import (
	domcheckout "github.com/jquispe/puntoventa-api/internal/domain/checkout"
)

// OverrideUseCase expone el candado de cambio de precio: el endpoint de
// supervisor lo desbloquea y el cierre de venta consume la autorización al
// aplicar un precio fuera de lista.
type OverrideUseCase struct {
	authorizer *domcheckout.OverrideAuthorizer
}

// NewOverrideUseCase construye el caso de uso sobre el mismo autorizador que
// usa el cierre de venta.
func NewOverrideUseCase(authorizer *domcheckout.OverrideAuthorizer) *OverrideUseCase {
	return &OverrideUseCase{authorizer: authorizer}
}

// Unlock valida la clave de supervisor y deja el candado abierto para un
// único cambio de precio.
func (uc *OverrideUseCase) Unlock(password string) error {
	return uc.authorizer.Unlock(password)
}

// Lock descarta la autorización pendiente (cancelación del diálogo en caja).
func (uc *OverrideUseCase) Lock() {
	uc.authorizer.Lock()
}
