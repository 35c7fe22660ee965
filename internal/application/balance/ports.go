package balance

import (
	"context"

	"github.com/jhoicas/cambio-api/internal/domain/repository"
)

// TxRunner ejecuta fn con vistas read-consistent de pedidos y transacciones.
// Un supplierID no vacío serializa contra otras operaciones del mismo
// proveedor (la implementación Postgres bloquea la fila del usuario; la de
// memoria toma el lock global del store).
type TxRunner interface {
	RunLedger(ctx context.Context, supplierID string, fn func(
		orderRepo repository.OrderRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
