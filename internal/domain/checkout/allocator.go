package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/jquispe/puntoventa-api/internal/domain"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
)

// Tolerance es el margen de redondeo aceptado al comparar lo cobrado contra
// el total del documento (centavos perdidos en conversiones).
var Tolerance = decimal.NewFromFloat(0.05)

// Entry es un pago parcial asignado a la venta: método, monto y la cuenta
// destino cuando el método la exige.
type Entry struct {
	ID        string
	Method    entity.PaymentMethod
	Amount    decimal.Decimal
	AccountID string
	Reference string
}

// Allocation reparte el total de un documento entre uno o más pagos. Lleva
// la cuenta de lo cobrado y decide cuándo la cobranza está completa dentro
// de la tolerancia.
type Allocation struct {
	target  decimal.Decimal
	entries []Entry
	nextID  int64
}

// NewAllocation crea una asignación para el total indicado.
func NewAllocation(target decimal.Decimal) *Allocation {
	return &Allocation{target: target}
}

// Target devuelve el total a cubrir.
func (a *Allocation) Target() decimal.Decimal { return a.target }

// Entries devuelve una copia de los pagos registrados, en orden.
func (a *Allocation) Entries() []Entry {
	out := make([]Entry, len(a.entries))
	copy(out, a.entries)
	return out
}

// Add registra un pago parcial. El monto debe ser positivo, el método válido
// y, para métodos bancarios o de billetera, la cuenta destino es obligatoria.
func (a *Allocation) Add(method entity.PaymentMethod, amount decimal.Decimal, accountID, reference string) (Entry, error) {
	if !method.Valid() {
		return Entry{}, domain.ErrInvalidInput
	}
	if !amount.GreaterThan(decimal.Zero) {
		return Entry{}, domain.ErrInvalidAmount
	}
	if method.RequiresAccount() && accountID == "" {
		return Entry{}, domain.ErrMissingAccount
	}
	a.nextID++
	e := Entry{
		ID:        decimal.NewFromInt(a.nextID).String(),
		Method:    method,
		Amount:    amount,
		AccountID: accountID,
		Reference: reference,
	}
	a.entries = append(a.entries, e)
	return e, nil
}

// Remove elimina un pago por su identificador.
func (a *Allocation) Remove(id string) {
	for i := range a.entries {
		if a.entries[i].ID == id {
			a.entries = append(a.entries[:i], a.entries[i+1:]...)
			return
		}
	}
}

// TotalCollected es la suma de los montos registrados.
func (a *Allocation) TotalCollected() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range a.entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// Remaining es lo que falta cobrar, nunca negativo (los vueltos no se
// descuentan aquí).
func (a *Allocation) Remaining() decimal.Decimal {
	rem := a.target.Sub(a.TotalCollected())
	if rem.IsNegative() {
		return decimal.Zero
	}
	return rem
}

// IsComplete indica si lo cobrado cubre el total dentro de la tolerancia.
func (a *Allocation) IsComplete() bool {
	return a.TotalCollected().GreaterThanOrEqual(a.target.Sub(Tolerance))
}

// Breakdown agrupa lo cobrado por familia de método de pago.
func (a *Allocation) Breakdown() entity.PaymentBreakdown {
	var b entity.PaymentBreakdown
	for _, e := range a.entries {
		b.Add(e.Method, e.Amount)
	}
	return b
}
