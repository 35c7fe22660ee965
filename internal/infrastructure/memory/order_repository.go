package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/cambio-api/internal/domain"
	"github.com/jhoicas/cambio-api/internal/domain/entity"
	"github.com/jhoicas/cambio-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre el store en memoria.
type OrderRepo struct {
	s       *Store
	guarded bool
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(s *Store) *OrderRepo {
	return &OrderRepo{s: s, guarded: true}
}

// Create persiste un nuevo pedido.
func (r *OrderRepo) Create(_ context.Context, order *entity.Order) error {
	if r.guarded {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if _, ok := r.s.orders[order.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.orders[order.ID] = cloneOrder(order)
	return nil
}

// GetByID obtiene un pedido por ID; (nil, nil) si no existe.
func (r *OrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	if r.guarded {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	return cloneOrder(r.s.orders[id]), nil
}

// GetByIDForUpdate en memoria equivale a GetByID: la serialización por fila
// la da el lock exclusivo del store que sostiene el TxRunner.
func (r *OrderRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.GetByID(ctx, id)
}

// Update reemplaza el pedido.
func (r *OrderRepo) Update(_ context.Context, order *entity.Order) error {
	if r.guarded {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	if _, ok := r.s.orders[order.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.orders[order.ID] = cloneOrder(order)
	return nil
}

// ListByClient lista los pedidos de un cliente, más recientes primero.
func (r *OrderRepo) ListByClient(_ context.Context, clientID string) ([]*entity.Order, error) {
	return r.list(func(o *entity.Order) bool { return o.ClientID == clientID })
}

// ListBySupplier lista los pedidos de un proveedor, más recientes primero.
func (r *OrderRepo) ListBySupplier(_ context.Context, supplierID string) ([]*entity.Order, error) {
	return r.list(func(o *entity.Order) bool { return o.SupplierID == supplierID })
}

func (r *OrderRepo) list(match func(*entity.Order) bool) ([]*entity.Order, error) {
	if r.guarded {
		r.s.mu.RLock()
		defer r.s.mu.RUnlock()
	}
	var out []*entity.Order
	for _, o := range r.s.orders {
		if match(o) {
			out = append(out, cloneOrder(o))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
