package checkout

import (
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/jquispe/puntoventa-api/internal/domain"
)

// OverrideAuthorizer protege el cambio manual de precio en ventas. Arranca
// bloqueado; se desbloquea con la clave de supervisor y vuelve a bloquearse
// después de aplicar un solo cambio. Una misma instancia se comparte entre el
// endpoint de supervisor y el cierre de venta.
type OverrideAuthorizer struct {
	mu           sync.Mutex
	passwordHash string
	unlocked     bool
}

// NewOverrideAuthorizer crea el autorizador con el hash bcrypt de la clave
// de supervisor.
func NewOverrideAuthorizer(passwordHash string) *OverrideAuthorizer {
	return &OverrideAuthorizer{passwordHash: passwordHash}
}

// Unlocked indica si hay una autorización pendiente de uso.
func (o *OverrideAuthorizer) Unlocked() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.unlocked
}

// Unlock valida la clave de supervisor y habilita un único cambio de precio.
func (o *OverrideAuthorizer) Unlock(password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(o.passwordHash), []byte(password)); err != nil {
		return domain.ErrUnauthorizedOverride
	}
	o.mu.Lock()
	o.unlocked = true
	o.mu.Unlock()
	return nil
}

// Consume gasta la autorización vigente. Devuelve error si no hay ninguna;
// tras consumirse el autorizador queda bloqueado de nuevo.
func (o *OverrideAuthorizer) Consume() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.unlocked {
		return domain.ErrOverrideLocked
	}
	o.unlocked = false
	return nil
}

// Lock descarta cualquier autorización pendiente (cancelación del diálogo).
func (o *OverrideAuthorizer) Lock() {
	o.mu.Lock()
	o.unlocked = false
	o.mu.Unlock()
}
