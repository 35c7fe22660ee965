package repository

import (
	"context"

	"github.com/jhoicas/cambio-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order.
// Los pedidos nunca se borran; solo se crean y se actualizan campos puntuales.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// GetByIDForUpdate lee el pedido bloqueando la fila para la transacción
	// en curso. Las transiciones de estado deben leer con este método para
	// que dos transiciones concurrentes sobre el mismo pedido se serialicen.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	ListByClient(ctx context.Context, clientID string) ([]*entity.Order, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Order, error)
}
