// Package ledger implementa el flujo de retiros del proveedor: solicitud
// contra saldo disponible y resolución (aprobar/rechazar) por un admin.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cambio-api/internal/application/balance"
	"github.com/jhoicas/cambio-api/internal/application/dto"
	"github.com/jhoicas/cambio-api/internal/domain"
	"github.com/jhoicas/cambio-api/internal/domain/entity"
	"github.com/jhoicas/cambio-api/internal/domain/repository"
)

// UseCase aplica reglas de negocio del ledger de transacciones.
type UseCase struct {
	runner       TxRunner
	transactions repository.TransactionRepository
}

// NewUseCase construye el caso de uso con el runner atómico y el puerto de
// lectura de transacciones.
func NewUseCase(runner TxRunner, transactions repository.TransactionRepository) *UseCase {
	return &UseCase{runner: runner, transactions: transactions}
}

// RequestWithdrawal crea un retiro PENDING del proveedor. La verificación
// `amount <= disponible` corre dentro de la misma transacción que inserta la
// fila: dos solicitudes concurrentes nunca pueden comprometer el mismo saldo.
func (uc *UseCase) RequestWithdrawal(ctx context.Context, supplierID string, amount decimal.Decimal) (*dto.TransactionResponse, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var created *entity.Transaction
	err := uc.runner.RunLedger(ctx, supplierID, func(
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
		bal := balance.Summarize(orders, txs, time.Now())
		if amount.GreaterThan(bal.Available) {
			return domain.ErrInsufficientBalance
		}

		created = &entity.Transaction{
			ID:         uuid.New().String(),
			SupplierID: supplierID,
			AmountYuan: amount,
			Kind:       entity.TransactionKindWithdrawal,
			Status:     entity.TransactionStatusPending,
			Date:       time.Now(),
		}
		return txRepo.Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(created), nil
}

// Approve marca un retiro PENDING como APPROVED. Es el único registro de que
// el pago se ejecutó; el sistema no mueve dinero por sí mismo.
func (uc *UseCase) Approve(ctx context.Context, transactionID string) (*dto.TransactionResponse, error) {
	return uc.resolve(ctx, transactionID, entity.TransactionStatusApproved)
}

// Reject marca un retiro PENDING como REJECTED y libera el saldo comprometido.
func (uc *UseCase) Reject(ctx context.Context, transactionID string) (*dto.TransactionResponse, error) {
	return uc.resolve(ctx, transactionID, entity.TransactionStatusRejected)
}

// resolve aplica la transición PENDING -> APPROVED|REJECTED exactamente una
// vez. La lectura con lock de fila garantiza un único ganador entre
// resoluciones concurrentes; la segunda observa el estado nuevo y falla.
func (uc *UseCase) resolve(ctx context.Context, transactionID, newStatus string) (*dto.TransactionResponse, error) {
	var resolved *entity.Transaction
	err := uc.runner.RunLedger(ctx, "", func(
		_ repository.OrderRepository,
		txRepo repository.TransactionRepository,
	) error {
		t, err := txRepo.GetByIDForUpdate(ctx, transactionID)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		if t.Status != entity.TransactionStatusPending {
			return domain.ErrInvalidTransition
		}
		t.Status = newStatus
		if err := txRepo.Update(ctx, t); err != nil {
			return err
		}
		resolved = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(resolved), nil
}

// ListBySupplier lista las transacciones de un proveedor.
func (uc *UseCase) ListBySupplier(ctx context.Context, supplierID string) ([]*dto.TransactionResponse, error) {
	txs, err := uc.transactions.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, toTransactionResponse(t))
	}
	return out, nil
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:         t.ID,
		SupplierID: t.SupplierID,
		AmountYuan: t.AmountYuan,
		Kind:       t.Kind,
		Status:     t.Status,
		Date:       t.Date,
	}
}
