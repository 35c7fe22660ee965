package orders_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cambio-api/internal/application/dto"
	appfx "github.com/jhoicas/cambio-api/internal/application/fx"
	"github.com/jhoicas/cambio-api/internal/application/orders"
	"github.com/jhoicas/cambio-api/internal/domain"
	"github.com/jhoicas/cambio-api/internal/domain/entity"
	"github.com/jhoicas/cambio-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testSupplierCode = "654321"

type orderEnv struct {
	uc         *orders.UseCase
	store      *memory.Store
	clientID   string
	supplierID string
}

// newOrderEnv arma un caso de uso de pedidos sobre el store en memoria con
// un cliente y un proveedor ya registrados.
func newOrderEnv(t *testing.T) *orderEnv {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	users := memory.NewUserRepository(store)

	now := time.Now()
	client := &entity.User{
		ID:        uuid.New().String(),
		Name:      "Cliente Test",
		Email:     "cliente@example.com",
		Role:      entity.RoleClient,
		CreatedAt: now,
		UpdatedAt: now,
	}
	supplier := &entity.User{
		ID:           uuid.New().String(),
		Name:         "Proveedor Test",
		Email:        "proveedor@example.com",
		Role:         entity.RoleSupplier,
		SupplierCode: testSupplierCode,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, users.Create(ctx, client))
	require.NoError(t, users.Create(ctx, supplier))

	quoter := appfx.NewQuoteUseCase(users, appfx.Config{
		RateCNYBRL:        decimal.RequireFromString("0.75"),
		DefaultFeePercent: decimal.NewFromInt(5),
	})
	uc := orders.NewUseCase(memory.NewTxRunner(store), memory.NewOrderRepository(store), quoter)
	return &orderEnv{uc: uc, store: store, clientID: client.ID, supplierID: supplier.ID}
}

func (e *orderEnv) createOrder(t *testing.T) *dto.OrderResponse {
	t.Helper()
	out, err := e.uc.Create(context.Background(), e.clientID, dto.CreateOrderRequest{
		SupplierCode: testSupplierCode,
		Description:  "Lote de mercadería",
		ValueYuan:    decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	return out
}

func (e *orderEnv) shipOrder(t *testing.T, orderID string) *dto.OrderResponse {
	t.Helper()
	out, err := e.uc.MarkShipped(context.Background(), e.supplierID, orderID, dto.ShipOrderRequest{
		TrackingCode:   "SF123456789",
		ShippingPhotos: []string{"https://cdn.example.com/foto1.jpg"},
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_PedidoNacePendiente(t *testing.T) {
	env := newOrderEnv(t)
	out := env.createOrder(t)

	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.Equal(t, env.clientID, out.ClientID)
	assert.Equal(t, env.supplierID, out.SupplierID, "el código público debe resolverse al ID interno")
	assert.True(t, out.ValueYuan.Equal(decimal.NewFromInt(1000)))
	assert.Empty(t, out.TrackingCode)
}

func TestCreate_CodigoProveedorDesconocido(t *testing.T) {
	env := newOrderEnv(t)
	_, err := env.uc.Create(context.Background(), env.clientID, dto.CreateOrderRequest{
		SupplierCode: "000000",
		Description:  "algo",
		ValueYuan:    decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}

func TestCreate_EntradaInvalida(t *testing.T) {
	env := newOrderEnv(t)
	ctx := context.Background()

	_, err := env.uc.Create(ctx, env.clientID, dto.CreateOrderRequest{
		SupplierCode: testSupplierCode,
		Description:  "   ",
		ValueYuan:    decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "descripción vacía")

	_, err = env.uc.Create(ctx, env.clientID, dto.CreateOrderRequest{
		SupplierCode: testSupplierCode,
		Description:  "algo",
		ValueYuan:    decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto cero")

	_, err = env.uc.Create(ctx, env.clientID, dto.CreateOrderRequest{
		SupplierCode: testSupplierCode,
		Description:  "algo",
		ValueYuan:    decimal.NewFromInt(-5),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "monto negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// MarkShipped
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkShipped_TransicionPendingASent(t *testing.T) {
	env := newOrderEnv(t)
	created := env.createOrder(t)

	out := env.shipOrder(t, created.ID)
	assert.Equal(t, entity.OrderStatusSent, out.Status)
	assert.Equal(t, "SF123456789", out.TrackingCode)
	assert.Len(t, out.ShippingPhotos, 1)
}

func TestMarkShipped_TrackingYFotosObligatorios(t *testing.T) {
	env := newOrderEnv(t)
	created := env.createOrder(t)
	ctx := context.Background()

	_, err := env.uc.MarkShipped(ctx, env.supplierID, created.ID, dto.ShipOrderRequest{
		TrackingCode: "SF1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin fotos no se escribe nada")

	_, err = env.uc.MarkShipped(ctx, env.supplierID, created.ID, dto.ShipOrderRequest{
		ShippingPhotos: []string{"foto.jpg"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin tracking no se escribe nada")

	// El pedido sigue intacto tras los intentos fallidos.
	got, err := env.uc.GetByID(ctx, env.supplierID, entity.RoleSupplier, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, got.Status)
	assert.Empty(t, got.TrackingCode)
}

func TestMarkShipped_SoloElProveedorDelPedido(t *testing.T) {
	env := newOrderEnv(t)
	created := env.createOrder(t)

	_, err := env.uc.MarkShipped(context.Background(), "otro-proveedor", created.ID, dto.ShipOrderRequest{
		TrackingCode:   "SF1",
		ShippingPhotos: []string{"foto.jpg"},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMarkShipped_DesdeSentFalla(t *testing.T) {
	env := newOrderEnv(t)
	created := env.createOrder(t)
	env.shipOrder(t, created.ID)

	_, err := env.uc.MarkShipped(context.Background(), env.supplierID, created.ID, dto.ShipOrderRequest{
		TrackingCode:   "SF2",
		ShippingPhotos: []string{"otra.jpg"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// RaiseDispute y Finalize
// ──────────────────────────────────────────────────────────────────────────────

func TestRaiseDispute_DesdeSentPorElCliente(t *testing.T) {
	env := newOrderEnv(t)
	created := env.createOrder(t)
	env.shipOrder(t, created.ID)

	out, err := env.uc.RaiseDispute(context.Background(), env.clientID, created.ID, "no llegó el paquete")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDispute, out.Status)
	assert.Equal(t, "no llegó el paquete", out.DisputeReason)
	assert.Equal(t, "SF123456789", out.TrackingCode, "la disputa no borra los datos de envío")
}

func TestRaiseDispute_DesdeFinalizedPorElProveedor(t *testing.T) {
	env := newOrderEnv(t)
	created := env.createOrder(t)
	env.shipOrder(t, created.ID)
	_, err := env.uc.Finalize(context.Background(), created.ID)
	require.NoError(t, err)

	out, err := env.uc.RaiseDispute(context.Background(), env.supplierID, created.ID, "cliente no pagó")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDispute, out.Status)
}

func TestRaiseDispute_DesdePendingFalla(t *testing.T) {
	env := newOrderEnv(t)
	created := env.createOrder(t)

	_, err := env.uc.RaiseDispute(context.Background(), env.clientID, created.ID, "motivo")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestRaiseDispute_TerceroNoPuede(t *testing.T) {
	env := newOrderEnv(t)
	created := env.createOrder(t)
	env.shipOrder(t, created.ID)

	_, err := env.uc.RaiseDispute(context.Background(), "intruso", created.ID, "motivo")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRaiseDispute_MotivoObligatorio(t *testing.T) {
	env := newOrderEnv(t)
	created := env.createOrder(t)
	env.shipOrder(t, created.ID)

	_, err := env.uc.RaiseDispute(context.Background(), env.clientID, created.ID, "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFinalize_SoloDesdeSent(t *testing.T) {
	env := newOrderEnv(t)
	created := env.createOrder(t)
	ctx := context.Background()

	_, err := env.uc.Finalize(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "PENDING no finaliza directo")

	env.shipOrder(t, created.ID)
	out, err := env.uc.Finalize(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusFinalized, out.Status)

	_, err = env.uc.Finalize(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "FINALIZED es terminal para finalize")
}

func TestFinalize_PedidoInexistente(t *testing.T) {
	env := newOrderEnv(t)
	_, err := env.uc.Finalize(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetByID_ControlDeAcceso(t *testing.T) {
	env := newOrderEnv(t)
	created := env.createOrder(t)
	ctx := context.Background()

	_, err := env.uc.GetByID(ctx, env.clientID, entity.RoleClient, created.ID)
	assert.NoError(t, err, "el cliente ve su pedido")

	_, err = env.uc.GetByID(ctx, env.supplierID, entity.RoleSupplier, created.ID)
	assert.NoError(t, err, "el proveedor ve su pedido")

	_, err = env.uc.GetByID(ctx, "admin-id", entity.RoleAdmin, created.ID)
	assert.NoError(t, err, "un admin ve cualquier pedido")

	_, err = env.uc.GetByID(ctx, "intruso", entity.RoleClient, created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestList_PorClienteYPorProveedor(t *testing.T) {
	env := newOrderEnv(t)
	env.createOrder(t)
	env.createOrder(t)

	ctx := context.Background()
	byClient, err := env.uc.ListByClient(ctx, env.clientID)
	require.NoError(t, err)
	assert.Len(t, byClient, 2)

	bySupplier, err := env.uc.ListBySupplier(ctx, env.supplierID)
	require.NoError(t, err)
	assert.Len(t, bySupplier, 2)

	empty, err := env.uc.ListByClient(ctx, "sin-pedidos")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
