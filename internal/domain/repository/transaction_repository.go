package repository

import (
	"context"

	"github.com/jhoicas/cambio-api/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para Transaction.
// Las transacciones nunca se borran; solo cambia Status, exactamente una vez.
type TransactionRepository interface {
	Create(ctx context.Context, tx *entity.Transaction) error
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)
	// GetByIDForUpdate bloquea la fila; aprobar y rechazar deben leer con
	// este método para que solo una resolución concurrente gane.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Transaction, error)
	Update(ctx context.Context, tx *entity.Transaction) error
	ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Transaction, error)
}
