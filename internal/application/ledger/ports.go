package ledger

import (
	"context"

	"github.com/jhoicas/cambio-api/internal/domain/repository"
)

// TxRunner ejecuta fn de forma atómica sobre pedidos y transacciones.
// Con supplierID no vacío la implementación serializa contra otras
// operaciones del mismo proveedor, de modo que la verificación de saldo y la
// creación del retiro sean una sola unidad.
type TxRunner interface {
	RunLedger(ctx context.Context, supplierID string, fn func(
		orderRepo repository.OrderRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
