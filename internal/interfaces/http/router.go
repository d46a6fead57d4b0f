package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jquispe/puntoventa-api/internal/application/auth"
	appcheckout "github.com/jquispe/puntoventa-api/internal/application/checkout"
	appinventory "github.com/jquispe/puntoventa-api/internal/application/inventory"
	appledger "github.com/jquispe/puntoventa-api/internal/application/ledger"
	"github.com/jquispe/puntoventa-api/internal/application/usecase"
	"github.com/jquispe/puntoventa-api/internal/domain/entity"
	"github.com/jquispe/puntoventa-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	FinalizeSale     *appcheckout.FinalizeSaleUseCase
	FinalizePurchase *appcheckout.FinalizePurchaseUseCase
	CreditNotes      *appcheckout.CreditNoteUseCase
	Quotations       *appcheckout.QuotationUseCase
	Override         *appcheckout.OverrideUseCase
	AdjustStock      *appinventory.AdjustStockUseCase
	Ledger           *appledger.LedgerUseCase
	ProductUC        *usecase.ProductUseCase
	AccountUC        *usecase.AccountUseCase
	ClientUC         *usecase.ClientUseCase
	SupplierUC       *usecase.SupplierUseCase
	AuthUC           *auth.AuthUseCase
	SaleLookup       saleLookup
	Receipts         *pdf.ReceiptGenerator
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Ventas
	sales := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.FinalizeSale, deps.SaleLookup, deps.Receipts)
	sales.Post("/", salesHandler.Finalize)
	sales.Get("/", salesHandler.List)
	sales.Get("/:id", salesHandler.GetByID)
	sales.Get("/:id/receipt", salesHandler.Receipt)

	// Compras
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.FinalizePurchase)
	purchases.Post("/", purchaseHandler.Finalize)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)

	// Notas de crédito
	notes := protected.Group("/credit-notes")
	noteHandler := NewCreditNoteHandler(deps.CreditNotes)
	notes.Post("/", noteHandler.Issue)
	notes.Get("/", noteHandler.List)
	notes.Get("/:id", noteHandler.GetByID)

	// Cotizaciones
	quotations := protected.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.Quotations)
	quotations.Post("/", quotationHandler.Save)
	quotations.Get("/", quotationHandler.List)
	quotations.Post("/:id/load", quotationHandler.Load)
	quotations.Delete("/:id", quotationHandler.Delete)

	// Autorización de supervisor para editar precios
	overrideHandler := NewOverrideHandler(deps.Override)
	protected.Post("/checkout/override", overrideHandler.Unlock)

	// Inventario
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustStock)
	invGroup.Post("/adjustments", inventoryHandler.Adjust)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/products/:id/kardex", inventoryHandler.Kardex)

	// Caja y bancos
	ledgerGroup := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.Ledger)
	ledgerGroup.Post("/movements", ledgerHandler.Create)
	ledgerGroup.Get("/movements", ledgerHandler.List)
	ledgerGroup.Post("/transfers", ledgerHandler.Transfer)
	ledgerGroup.Get("/balance", ledgerHandler.Balance)

	// Catálogo de productos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRoles(entity.RoleAdmin), productHandler.Delete)

	// Cuentas de liquidación (solo admin modifica)
	accounts := protected.Group("/accounts")
	accountHandler := NewAccountHandler(deps.AccountUC)
	accounts.Post("/", RequireRoles(entity.RoleAdmin), accountHandler.Create)
	accounts.Get("/", accountHandler.List)
	accounts.Get("/eligible", accountHandler.ListEligible)
	accounts.Put("/:id", RequireRoles(entity.RoleAdmin), accountHandler.Update)
	accounts.Delete("/:id", RequireRoles(entity.RoleAdmin), accountHandler.Delete)

	// Clientes
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Post("/:id/wallet", RequireRoles(entity.RoleAdmin, entity.RoleCajero), clientHandler.AdjustWallet)
	clients.Delete("/:id", RequireRoles(entity.RoleAdmin), clientHandler.Delete)

	// Proveedores
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", RequireRoles(entity.RoleAdmin), supplierHandler.Delete)
}
