package entity

import "github.com/shopspring/decimal"

// PaymentMethod es el conjunto cerrado de medios de pago aceptados.
// Reemplaza las cadenas libres del mostrador ('Efectivo', 'Yape', ...) por un
// enum con matching exhaustivo.
type PaymentMethod string

const (
	MethodEfectivo      PaymentMethod = "Efectivo"
	MethodYape          PaymentMethod = "Yape"
	MethodPlin          PaymentMethod = "Plin"
	MethodYapePlin      PaymentMethod = "Yape/Plin"
	MethodTarjeta       PaymentMethod = "Tarjeta"
	MethodDeposito      PaymentMethod = "Deposito"
	MethodTransferencia PaymentMethod = "Transferencia"
	MethodSaldoFavor    PaymentMethod = "Saldo Favor"
)

// Valid indica si el método pertenece al conjunto cerrado.
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodEfectivo, MethodYape, MethodPlin, MethodYapePlin,
		MethodTarjeta, MethodDeposito, MethodTransferencia, MethodSaldoFavor:
		return true
	}
	return false
}

// RequiresAccount indica si el método liquida contra una cuenta bancaria o
// billetera configurada. Efectivo va a la caja física y Saldo Favor consume
// la billetera del cliente; todo lo demás exige cuenta de destino.
func (m PaymentMethod) RequiresAccount() bool {
	return m != MethodEfectivo && m != MethodSaldoFavor
}

// PaymentFamily agrupa los métodos para el desglose del comprobante.
type PaymentFamily string

const (
	FamilyCash   PaymentFamily = "cash"
	FamilyYape   PaymentFamily = "yape"
	FamilyCard   PaymentFamily = "card"
	FamilyBank   PaymentFamily = "bank"
	FamilyWallet PaymentFamily = "wallet"
)

// Family devuelve la familia del método para efectos del desglose.
func (m PaymentMethod) Family() PaymentFamily {
	switch m {
	case MethodEfectivo:
		return FamilyCash
	case MethodYape, MethodPlin, MethodYapePlin:
		return FamilyYape
	case MethodTarjeta:
		return FamilyCard
	case MethodSaldoFavor:
		return FamilyWallet
	default:
		return FamilyBank
	}
}

// PaymentBreakdown es el total cobrado agrupado por familia de método.
type PaymentBreakdown struct {
	Cash   decimal.Decimal `json:"cash"`
	Yape   decimal.Decimal `json:"yape"`
	Card   decimal.Decimal `json:"card"`
	Bank   decimal.Decimal `json:"bank"`
	Wallet decimal.Decimal `json:"wallet"`
}

// Add acumula un monto en la familia correspondiente.
func (b *PaymentBreakdown) Add(m PaymentMethod, amount decimal.Decimal) {
	switch m.Family() {
	case FamilyCash:
		b.Cash = b.Cash.Add(amount)
	case FamilyYape:
		b.Yape = b.Yape.Add(amount)
	case FamilyCard:
		b.Card = b.Card.Add(amount)
	case FamilyWallet:
		b.Wallet = b.Wallet.Add(amount)
	default:
		b.Bank = b.Bank.Add(amount)
	}
}

// PaymentCondition distingue operaciones al contado de operaciones a crédito.
type PaymentCondition string

const (
	CondicionContado PaymentCondition = "Contado"
	CondicionCredito PaymentCondition = "Credito"
)
