package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jquispe/puntoventa-api/internal/application/auth"
	appcheckout "github.com/jquispe/puntoventa-api/internal/application/checkout"
	appinventory "github.com/jquispe/puntoventa-api/internal/application/inventory"
	appledger "github.com/jquispe/puntoventa-api/internal/application/ledger"
	"github.com/jquispe/puntoventa-api/internal/application/usecase"
	domcheckout "github.com/jquispe/puntoventa-api/internal/domain/checkout"
	infrapdf "github.com/jquispe/puntoventa-api/internal/infrastructure/pdf"
	"github.com/jquispe/puntoventa-api/internal/infrastructure/postgres"
	httpRouter "github.com/jquispe/puntoventa-api/internal/interfaces/http"
	"github.com/jquispe/puntoventa-api/pkg/config"
	"github.com/jquispe/puntoventa-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	noteRepo := postgres.NewCreditNoteRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	accountRepo := postgres.NewBankAccountRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Candado de supervisor compartido: el endpoint de desbloqueo y el cierre
	// de venta operan sobre la misma instancia.
	overrideAuth := domcheckout.NewOverrideAuthorizer(cfg.POS.OverridePasswordHash)

	finalizeSaleUC := appcheckout.NewFinalizeSaleUseCase(txRunner, saleRepo, accountRepo, clientRepo, overrideAuth, cfg.POS.BaseCurrency)
	finalizePurchaseUC := appcheckout.NewFinalizePurchaseUseCase(txRunner, purchaseRepo, accountRepo, cfg.POS.BaseCurrency)
	creditNoteUC := appcheckout.NewCreditNoteUseCase(txRunner, saleRepo, noteRepo, accountRepo)
	quotationUC := appcheckout.NewQuotationUseCase(quotationRepo, productRepo)
	overrideUC := appcheckout.NewOverrideUseCase(overrideAuth)
	adjustStockUC := appinventory.NewAdjustStockUseCase(txRunner, movementRepo)
	ledgerUC := appledger.NewLedgerUseCase(txRunner, ledgerRepo, accountRepo)
	productUC := usecase.NewProductUseCase(productRepo, movementRepo)
	accountUC := usecase.NewAccountUseCase(accountRepo)
	clientUC := usecase.NewClientUseCase(clientRepo, ledgerRepo, cfg.POS.BaseCurrency)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// PDF: ticket/boleta/factura imprimible del comprobante emitido
	receipts := infrapdf.NewReceiptGenerator(cfg.App.Name, cfg.POS.ReceiptDir)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PuntoVenta API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		FinalizeSale:     finalizeSaleUC,
		FinalizePurchase: finalizePurchaseUC,
		CreditNotes:      creditNoteUC,
		Quotations:       quotationUC,
		Override:         overrideUC,
		AdjustStock:      adjustStockUC,
		Ledger:           ledgerUC,
		ProductUC:        productUC,
		AccountUC:        accountUC,
		ClientUC:         clientUC,
		SupplierUC:       supplierUC,
		AuthUC:           authUC,
		SaleLookup:       saleRepo,
		Receipts:         receipts,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
