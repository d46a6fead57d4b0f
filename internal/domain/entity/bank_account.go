package entity

// AccountUsage indica en qué flujo puede liquidar una cuenta.
type AccountUsage string

const (
	UsageVentas  AccountUsage = "sales"
	UsageCompras AccountUsage = "purchases"
)

// BankAccount es una cuenta de liquidación (banco o billetera digital) a la
// que se atribuyen los pagos no-efectivo. Los flags habilitan la cuenta para
// cobrar ventas y/o pagar compras; Currency restringe su uso a operaciones en
// esa moneda.
type BankAccount struct {
	ID             string
	BankName       string
	AccountNumber  string
	Alias          string
	Currency       string
	UseInSales     bool
	UseInPurchases bool
}

// DisplayName devuelve el alias si existe, o el nombre del banco.
func (a *BankAccount) DisplayName() string {
	if a.Alias != "" {
		return a.Alias
	}
	return a.BankName
}

// EnabledFor indica si la cuenta puede usarse en el flujo dado.
func (a *BankAccount) EnabledFor(usage AccountUsage) bool {
	if usage == UsageCompras {
		return a.UseInPurchases
	}
	return a.UseInSales
}
