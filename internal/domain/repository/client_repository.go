package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jquispe/puntoventa-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para clientes (DIP).
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByName(name string) (*entity.Client, error)
	Update(client *entity.Client) error
	List(limit, offset int) ([]*entity.Client, error)
	// AdjustDigitalBalance suma (o resta, con delta negativo) saldo a favor.
	AdjustDigitalBalance(clientID string, delta decimal.Decimal) error
	// AddPurchaseTotal acumula el histórico de compras del cliente.
	AddPurchaseTotal(clientID string, amount decimal.Decimal) error
	Delete(id string) error
}

// SupplierRepository define el puerto de persistencia para proveedores (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error
}
