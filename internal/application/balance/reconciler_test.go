package balance_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cambio-api/internal/application/balance"
	"github.com/jhoicas/cambio-api/internal/domain/entity"
	"github.com/jhoicas/cambio-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func order(status string, value int64, createdAt time.Time) *entity.Order {
	return &entity.Order{
		ID:        uuid.New().String(),
		ValueYuan: decimal.NewFromInt(value),
		Status:    status,
		CreatedAt: createdAt,
	}
}

func withdrawal(status string, amount int64) *entity.Transaction {
	return &entity.Transaction{
		ID:         uuid.New().String(),
		AmountYuan: decimal.NewFromInt(amount),
		Kind:       entity.TransactionKindWithdrawal,
		Status:     status,
		Date:       time.Now(),
	}
}

func eq(t *testing.T, expected int64, got decimal.Decimal, msg string) {
	t.Helper()
	assert.True(t, got.Equal(decimal.NewFromInt(expected)), "%s: esperado %d, obtenido %s", msg, expected, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Summarize — cifras derivadas
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_EscrowYGanado(t *testing.T) {
	now := time.Now()
	orders := []*entity.Order{
		order(entity.OrderStatusPending, 100, now),
		order(entity.OrderStatusPending, 200, now),
		order(entity.OrderStatusSent, 300, now),
		order(entity.OrderStatusDispute, 400, now),
		order(entity.OrderStatusFinalized, 1000, now),
	}

	bal := balance.Summarize(orders, nil, now)

	assert.Equal(t, 2, bal.PendingOrders, "solo PENDING cuenta como pedido pendiente")
	eq(t, 600, bal.HeldInEscrow, "PENDING + SENT + DISPUTE retienen fondos")
	eq(t, 1000, bal.TotalEarned, "solo FINALIZED suma a lo ganado")
	eq(t, 1000, bal.Available, "sin retiros, disponible = ganado")
}

func TestSummarize_RetirosComprometidos(t *testing.T) {
	now := time.Now()
	orders := []*entity.Order{order(entity.OrderStatusFinalized, 1000, now)}
	txs := []*entity.Transaction{
		withdrawal(entity.TransactionStatusPending, 300),
		withdrawal(entity.TransactionStatusApproved, 200),
		withdrawal(entity.TransactionStatusRejected, 9999),
	}

	bal := balance.Summarize(orders, txs, now)

	eq(t, 500, bal.TotalCommitted, "PENDING y APPROVED comprometen; REJECTED no")
	eq(t, 500, bal.Available, "disponible = ganado - comprometido")
}

func TestSummarize_IngresosNoComprometen(t *testing.T) {
	now := time.Now()
	txs := []*entity.Transaction{{
		ID:         uuid.New().String(),
		AmountYuan: decimal.NewFromInt(700),
		Kind:       entity.TransactionKindIncome,
		Status:     entity.TransactionStatusApproved,
		Date:       now,
	}}

	bal := balance.Summarize(nil, txs, now)
	eq(t, 0, bal.TotalCommitted, "solo los retiros comprometen fondos")
}

func TestSummarize_DisponibleNuncaNegativo(t *testing.T) {
	now := time.Now()
	orders := []*entity.Order{order(entity.OrderStatusFinalized, 100, now)}
	txs := []*entity.Transaction{withdrawal(entity.TransactionStatusApproved, 500)}

	bal := balance.Summarize(orders, txs, now)
	eq(t, 100, bal.TotalEarned, "lo ganado se reporta sin recorte")
	eq(t, 500, bal.TotalCommitted, "lo comprometido se reporta sin recorte")
	eq(t, 0, bal.Available, "el disponible se recorta a cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Summarize — ventanas temporales
// ──────────────────────────────────────────────────────────────────────────────

// ReceivedToday corta por día calendario UTC; ReceivedWeek usa una ventana
// móvil de 7x24h. Un pedido de ayer a las 23:59 UTC cuenta en la semana pero
// no en el día, aunque hayan pasado minutos.
func TestSummarize_DiaCalendarioVersusSemanaMovil(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 30, 0, 0, time.UTC)

	orders := []*entity.Order{
		order(entity.OrderStatusPending, 100, now.Add(-10*time.Minute)),     // hoy
		order(entity.OrderStatusPending, 200, now.Add(-45*time.Minute)),     // ayer 23:45 UTC
		order(entity.OrderStatusPending, 400, now.Add(-6*24*time.Hour)),     // dentro de la semana
		order(entity.OrderStatusPending, 800, now.Add(-8*24*time.Hour)),     // fuera de la semana
		order(entity.OrderStatusFinalized, 1600, now.Add(-30*24*time.Hour)), // histórico
	}

	bal := balance.Summarize(orders, nil, now)

	eq(t, 100, bal.ReceivedToday, "solo el pedido del día calendario UTC")
	eq(t, 700, bal.ReceivedWeek, "la semana móvil incluye el de ayer y el de hace 6 días")
}

func TestSummarize_TodaContabilizaCualquierEstado(t *testing.T) {
	now := time.Now()
	orders := []*entity.Order{
		order(entity.OrderStatusPending, 100, now),
		order(entity.OrderStatusSent, 200, now),
		order(entity.OrderStatusFinalized, 400, now),
		order(entity.OrderStatusDispute, 800, now),
	}

	bal := balance.Summarize(orders, nil, now)
	eq(t, 1500, bal.ReceivedToday, "las ventanas miden pedidos creados, no fondos liberados")
	eq(t, 1500, bal.ReceivedWeek, "ídem para la semana")
}

// ──────────────────────────────────────────────────────────────────────────────
// Compute — snapshot consistente vía runner
// ──────────────────────────────────────────────────────────────────────────────

func TestCompute_SoloElProveedorIndicado(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	ordersRepo := memory.NewOrderRepository(store)
	supplierID := uuid.New().String()

	require.NoError(t, ordersRepo.Create(ctx, &entity.Order{
		ID:         uuid.New().String(),
		SupplierID: supplierID,
		ValueYuan:  decimal.NewFromInt(500),
		Status:     entity.OrderStatusFinalized,
		CreatedAt:  time.Now(),
	}))
	require.NoError(t, ordersRepo.Create(ctx, &entity.Order{
		ID:         uuid.New().String(),
		SupplierID: uuid.New().String(),
		ValueYuan:  decimal.NewFromInt(9999),
		Status:     entity.OrderStatusFinalized,
		CreatedAt:  time.Now(),
	}))

	rec := balance.NewReconciler(memory.NewTxRunner(store))
	bal, err := rec.Compute(ctx, supplierID, time.Now())
	require.NoError(t, err)
	eq(t, 500, bal.TotalEarned, "los pedidos de otros proveedores no cuentan")
}
