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

	"github.com/jhoicas/cambio-api/internal/application/auth"
	"github.com/jhoicas/cambio-api/internal/application/balance"
	appbilling "github.com/jhoicas/cambio-api/internal/application/billing"
	"github.com/jhoicas/cambio-api/internal/application/directory"
	appfx "github.com/jhoicas/cambio-api/internal/application/fx"
	"github.com/jhoicas/cambio-api/internal/application/ledger"
	"github.com/jhoicas/cambio-api/internal/application/orders"
	"github.com/jhoicas/cambio-api/internal/domain/repository"
	"github.com/jhoicas/cambio-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/cambio-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cambio-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/cambio-api/internal/interfaces/http"
	"github.com/jhoicas/cambio-api/pkg/config"
	"github.com/jhoicas/cambio-api/pkg/logger"
)

// stores agrupa los puertos de persistencia resueltos según STORE_DRIVER.
type stores struct {
	users        repository.UserRepository
	orders       repository.OrderRepository
	transactions repository.TransactionRepository
	orderRunner  orders.TxRunner
	ledgerRunner ledger.TxRunner
	closeFn      func()
}

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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	st, err := buildStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer st.closeFn()

	fxUC := appfx.NewQuoteUseCase(st.users, appfx.Config{
		RateCNYBRL:        cfg.FX.RateCNYBRL,
		DefaultFeePercent: cfg.FX.DefaultFeePercent,
	})
	ordersUC := orders.NewUseCase(st.orderRunner, st.orders, fxUC)
	ledgerUC := ledger.NewUseCase(st.ledgerRunner, st.transactions)
	balanceRec := balance.NewReconciler(st.ledgerRunner)
	directoryUC := directory.NewUseCase(st.users, cfg.FX.DefaultFeePercent)
	authUC := auth.NewUseCase(st.users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// PDF: representación gráfica de la cotización vigente del pedido
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	receiptUC := appbilling.NewReceiptUseCase(st.orders, st.users, fxUC, pdfGenerator)

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
		Title:    "Cambio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		FXUC:        fxUC,
		OrdersUC:    ordersUC,
		ReceiptUC:   receiptUC,
		LedgerUC:    ledgerUC,
		BalanceRec:  balanceRec,
		DirectoryUC: directoryUC,
		JWTSecret:   cfg.JWT.Secret,
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

// buildStores arma repositorios y runners según el driver configurado. El
// driver memory guarda todo en proceso y siembra datos demo en
// development; postgres es el modo servidor.
func buildStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		runner := postgres.NewTxRunner(pool)
		return &stores{
			users:        postgres.NewUserRepository(pool),
			orders:       postgres.NewOrderRepository(pool),
			transactions: postgres.NewTransactionRepository(pool),
			orderRunner:  runner,
			ledgerRunner: runner,
			closeFn:      pool.Close,
		}, nil
	default:
		store := memory.NewStore()
		if cfg.App.Env == "development" {
			if err := memory.Seed(ctx, store); err != nil {
				return nil, err
			}
			log.Info().Msg("datos demo sembrados en el store en memoria")
		}
		runner := memory.NewTxRunner(store)
		return &stores{
			users:        memory.NewUserRepository(store),
			orders:       memory.NewOrderRepository(store),
			transactions: memory.NewTransactionRepository(store),
			orderRunner:  runner,
			ledgerRunner: runner,
			closeFn:      func() {},
		}, nil
	}
}
