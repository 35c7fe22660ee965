// Package balance deriva la posición financiera de un proveedor a partir de
// Orders + Transactions. No existe saldo materializado: cada cifra se
// recalcula en cada llamada sobre un snapshot consistente de ambas
// colecciones.
package balance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cambio-api/internal/application/dto"
	"github.com/jhoicas/cambio-api/internal/domain/entity"
	"github.com/jhoicas/cambio-api/internal/domain/repository"
)

// Reconciler calcula el balance de un proveedor bajo un snapshot del ledger.
type Reconciler struct {
	runner TxRunner
}

// NewReconciler construye el reconciliador con el runner transaccional.
func NewReconciler(runner TxRunner) *Reconciler {
	return &Reconciler{runner: runner}
}

// Compute calcula el balance del proveedor al instante now. Las dos lecturas
// (pedidos y transacciones) ocurren dentro del mismo RunLedger, así que una
// aprobación de retiro nunca es visible a medias respecto de la finalización
// del pedido que la respalda.
func (r *Reconciler) Compute(ctx context.Context, supplierID string, now time.Time) (*dto.SupplierBalance, error) {
	var bal *dto.SupplierBalance
	err := r.runner.RunLedger(ctx, supplierID, func(
		orderRepo repository.OrderRepository,
		txRepo repository.TransactionRepository,
	) error {
		orders, err := orderRepo.ListBySupplier(ctx, supplierID)
		if err != nil {
			return err
		}
		txs, err := txRepo.ListBySupplier(ctx, supplierID)
		if err != nil {
			return err
		}
		bal = Summarize(orders, txs, now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bal, nil
}

// Summarize deriva las cifras a partir de un snapshot ya leído. Es pura; la
// usan Compute y la verificación de saldo del ledger (dentro de la misma
// transacción que crea el retiro).
//
// ReceivedToday corta por día calendario UTC de creación del pedido;
// ReceivedWeek usa una ventana móvil de 7x24h. Ambas miden pedidos creados,
// no fondos liberados. La asimetría es deliberada.
func Summarize(orders []*entity.Order, txs []*entity.Transaction, now time.Time) *dto.SupplierBalance {
	bal := &dto.SupplierBalance{
		HeldInEscrow:   decimal.Zero,
		TotalEarned:    decimal.Zero,
		TotalCommitted: decimal.Zero,
		Available:      decimal.Zero,
		ReceivedToday:  decimal.Zero,
		ReceivedWeek:   decimal.Zero,
	}

	nowUTC := now.UTC()
	weekAgo := now.Add(-7 * 24 * time.Hour)

	for _, o := range orders {
		switch o.Status {
		case entity.OrderStatusPending:
			bal.PendingOrders++
			bal.HeldInEscrow = bal.HeldInEscrow.Add(o.ValueYuan)
		case entity.OrderStatusSent, entity.OrderStatusDispute:
			bal.HeldInEscrow = bal.HeldInEscrow.Add(o.ValueYuan)
		case entity.OrderStatusFinalized:
			bal.TotalEarned = bal.TotalEarned.Add(o.ValueYuan)
		}

		createdUTC := o.CreatedAt.UTC()
		if sameDay(createdUTC, nowUTC) {
			bal.ReceivedToday = bal.ReceivedToday.Add(o.ValueYuan)
		}
		if o.CreatedAt.After(weekAgo) {
			bal.ReceivedWeek = bal.ReceivedWeek.Add(o.ValueYuan)
		}
	}

	for _, t := range txs {
		if t.Kind != entity.TransactionKindWithdrawal {
			continue
		}
		// Un retiro PENDING ya compromete fondos; solo REJECTED los libera.
		if t.Status == entity.TransactionStatusPending || t.Status == entity.TransactionStatusApproved {
			bal.TotalCommitted = bal.TotalCommitted.Add(t.AmountYuan)
		}
	}

	available := bal.TotalEarned.Sub(bal.TotalCommitted)
	if available.IsNegative() {
		// Bajo operaciones legales no ocurre (el retiro valida saldo); se
		// reporta cero en vez de un saldo negativo.
		available = decimal.Zero
	}
	bal.Available = available
	return bal
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
