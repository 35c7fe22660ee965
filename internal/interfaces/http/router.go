package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cambio-api/internal/application/auth"
	"github.com/jhoicas/cambio-api/internal/application/balance"
	"github.com/jhoicas/cambio-api/internal/application/billing"
	"github.com/jhoicas/cambio-api/internal/application/directory"
	"github.com/jhoicas/cambio-api/internal/application/fx"
	"github.com/jhoicas/cambio-api/internal/application/ledger"
	"github.com/jhoicas/cambio-api/internal/application/orders"
	"github.com/jhoicas/cambio-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	FXUC        *fx.QuoteUseCase
	OrdersUC    *orders.UseCase
	ReceiptUC   *billing.ReceiptUseCase
	LedgerUC    *ledger.UseCase
	BalanceRec  *balance.Reconciler
	DirectoryUC *directory.UseCase
	JWTSecret   string
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

	// Cotización (cualquier usuario autenticado)
	fxGroup := protected.Group("/fx")
	fxHandler := NewFXHandler(deps.FXUC)
	fxGroup.Get("/quote", fxHandler.Quote)
	fxGroup.Get("/rate", fxHandler.Rate)

	// Pedidos
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrdersUC, deps.ReceiptUC)
	ordersGroup.Post("/", RequireRole(entity.RoleClient), orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Post("/:id/ship", RequireRole(entity.RoleSupplier), orderHandler.Ship)
	ordersGroup.Post("/:id/dispute", RequireRole(entity.RoleClient, entity.RoleSupplier), orderHandler.Dispute)
	ordersGroup.Get("/:id/receipt", orderHandler.Receipt)

	// Retiros y balance (proveedor)
	withdrawals := protected.Group("/withdrawals", RequireRole(entity.RoleSupplier))
	withdrawalHandler := NewWithdrawalHandler(deps.LedgerUC)
	withdrawals.Post("/", withdrawalHandler.Request)
	withdrawals.Get("/", withdrawalHandler.List)

	balanceHandler := NewBalanceHandler(deps.BalanceRec)
	protected.Get("/balance", RequireRole(entity.RoleSupplier), balanceHandler.Get)

	// Administración
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.DirectoryUC, deps.OrdersUC, deps.LedgerUC)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Post("/suppliers/:id/approve", adminHandler.ApproveSupplier)
	admin.Put("/clients/:id/fee", adminHandler.SetClientFee)
	admin.Post("/orders/:id/finalize", adminHandler.FinalizeOrder)
	admin.Post("/withdrawals/:id/approve", adminHandler.ApproveWithdrawal)
	admin.Post("/withdrawals/:id/reject", adminHandler.RejectWithdrawal)
}
