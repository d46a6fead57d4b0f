package checkout_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jquispe/puntoventa-api/internal/domain"
	"github.com/jquispe/puntoventa-api/internal/domain/checkout"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la asignación de pagos: validación de método/monto/cuenta, suma de
// cobrado, restante nunca negativo y el umbral de tolerancia de 0.05.
// ──────────────────────────────────────────────────────────────────────────────

func TestAllocation_Add_Valido(t *testing.T) {
	a := checkout.NewAllocation(decimal.NewFromFloat(100))

	e, err := a.Add(entity.MethodEfectivo, decimal.NewFromFloat(60), "", "")
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.True(t, a.TotalCollected().Equal(decimal.NewFromFloat(60)))
	assert.True(t, a.Remaining().Equal(decimal.NewFromFloat(40)))
}

func TestAllocation_Add_MontoInvalido(t *testing.T) {
	a := checkout.NewAllocation(decimal.NewFromFloat(100))

	_, err := a.Add(entity.MethodEfectivo, decimal.Zero, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = a.Add(entity.MethodEfectivo, decimal.NewFromFloat(-5), "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount, "los montos negativos no se aceptan")
}

func TestAllocation_Add_MetodoDesconocido(t *testing.T) {
	a := checkout.NewAllocation(decimal.NewFromFloat(100))
	_, err := a.Add(entity.PaymentMethod("Cheque"), decimal.NewFromFloat(10), "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAllocation_Add_CuentaObligatoria(t *testing.T) {
	a := checkout.NewAllocation(decimal.NewFromFloat(100))

	_, err := a.Add(entity.MethodTransferencia, decimal.NewFromFloat(50), "", "")
	assert.ErrorIs(t, err, domain.ErrMissingAccount,
		"una transferencia sin cuenta destino no tiene dónde registrarse")

	_, err = a.Add(entity.MethodTransferencia, decimal.NewFromFloat(50), "acc-1", "OP-123")
	assert.NoError(t, err)

	// Efectivo y saldo a favor no pasan por cuenta bancaria
	_, err = a.Add(entity.MethodEfectivo, decimal.NewFromFloat(10), "", "")
	assert.NoError(t, err)
	_, err = a.Add(entity.MethodSaldoFavor, decimal.NewFromFloat(10), "", "")
	assert.NoError(t, err)
}

func TestAllocation_Remove(t *testing.T) {
	a := checkout.NewAllocation(decimal.NewFromFloat(100))
	e1, _ := a.Add(entity.MethodEfectivo, decimal.NewFromFloat(40), "", "")
	_, _ = a.Add(entity.MethodYape, decimal.NewFromFloat(60), "acc-1", "")

	a.Remove(e1.ID)

	require.Len(t, a.Entries(), 1)
	assert.True(t, a.TotalCollected().Equal(decimal.NewFromFloat(60)))

	a.Remove("inexistente") // no debe fallar
}

func TestAllocation_Remaining_NuncaNegativo(t *testing.T) {
	a := checkout.NewAllocation(decimal.NewFromFloat(50))
	_, _ = a.Add(entity.MethodEfectivo, decimal.NewFromFloat(100), "", "")

	assert.True(t, a.Remaining().IsZero(),
		"un sobrepago (vuelto) no debe producir un restante negativo")
}

// ── Tolerancia ────────────────────────────────────────────────────────────────

func TestAllocation_IsComplete_DentroDeTolerancia(t *testing.T) {
	a := checkout.NewAllocation(decimal.NewFromFloat(100))
	_, _ = a.Add(entity.MethodEfectivo, decimal.NewFromFloat(99.96), "", "")

	assert.True(t, a.IsComplete(),
		"una diferencia de 0.04 está dentro de la tolerancia de redondeo")
}

func TestAllocation_IsComplete_FueraDeTolerancia(t *testing.T) {
	a := checkout.NewAllocation(decimal.NewFromFloat(100))
	_, _ = a.Add(entity.MethodEfectivo, decimal.NewFromFloat(99.90), "", "")

	assert.False(t, a.IsComplete(), "faltando 0.10 la cobranza sigue incompleta")
}

func TestAllocation_IsComplete_ExactoYSobrepago(t *testing.T) {
	a := checkout.NewAllocation(decimal.NewFromFloat(100))
	_, _ = a.Add(entity.MethodEfectivo, decimal.NewFromFloat(100), "", "")
	assert.True(t, a.IsComplete())

	b := checkout.NewAllocation(decimal.NewFromFloat(100))
	_, _ = b.Add(entity.MethodEfectivo, decimal.NewFromFloat(120), "", "")
	assert.True(t, b.IsComplete())
}

// ── Desglose por familia ──────────────────────────────────────────────────────

func TestAllocation_Breakdown_AgrupaPorFamilia(t *testing.T) {
	a := checkout.NewAllocation(decimal.NewFromFloat(500))
	_, _ = a.Add(entity.MethodEfectivo, decimal.NewFromFloat(100), "", "")
	_, _ = a.Add(entity.MethodYape, decimal.NewFromFloat(50), "acc-1", "")
	_, _ = a.Add(entity.MethodPlin, decimal.NewFromFloat(30), "acc-1", "")
	_, _ = a.Add(entity.MethodTarjeta, decimal.NewFromFloat(120), "acc-2", "")
	_, _ = a.Add(entity.MethodTransferencia, decimal.NewFromFloat(150), "acc-3", "")
	_, _ = a.Add(entity.MethodSaldoFavor, decimal.NewFromFloat(50), "", "")

	b := a.Breakdown()

	assert.True(t, b.Cash.Equal(decimal.NewFromFloat(100)))
	assert.True(t, b.Yape.Equal(decimal.NewFromFloat(80)), "Yape y Plin comparten familia")
	assert.True(t, b.Card.Equal(decimal.NewFromFloat(120)))
	assert.True(t, b.Bank.Equal(decimal.NewFromFloat(150)))
	assert.True(t, b.Wallet.Equal(decimal.NewFromFloat(50)))
}
