package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Category string          `json:"category,omitempty"`
	Brand    string          `json:"brand,omitempty"`
	Location string          `json:"location,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"cost,omitempty"`
	Stock    int64           `json:"stock,omitempty"` // stock inicial; genera movimiento INVENTARIO INICIAL
}

// UpdateProductRequest body para PUT /api/products/:id.
type UpdateProductRequest struct {
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Category string          `json:"category,omitempty"`
	Brand    string          `json:"brand,omitempty"`
	Location string          `json:"location,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"cost,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID       string          `json:"id"`
	Code     string          `json:"code"`
	Name     string          `json:"name"`
	Category string          `json:"category,omitempty"`
	Brand    string          `json:"brand,omitempty"`
	Location string          `json:"location,omitempty"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"cost"`
	Stock    int64           `json:"stock"`
}

// AdjustStockRequest body para POST /api/inventory/adjustments.
// Direction: ENTRADA | SALIDA.
type AdjustStockRequest struct {
	ProductID string `json:"product_id"`
	Direction string `json:"direction"`
	Quantity  int64  `json:"quantity"`
	Reason    string `json:"reason"`
}

// StockMovementResponse fila de kardex.
type StockMovementResponse struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	ProductID      string `json:"product_id"`
	ProductName    string `json:"product_name"`
	Direction      string `json:"direction"`
	Quantity       int64  `json:"quantity"`
	ResultingStock int64  `json:"resulting_stock"`
	Reference      string `json:"reference"`
	UserName       string `json:"user_name"`
}
