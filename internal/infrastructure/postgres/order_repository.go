package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/cambio-api/internal/domain"
	"github.com/jhoicas/cambio-api/internal/domain/entity"
	"github.com/jhoicas/cambio-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, client_id, supplier_id, description, value_yuan, status, created_at, tracking_code, shipping_photos, dispute_reason`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	db DB
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(db DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create persiste un nuevo pedido.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		order.ID, order.ClientID, order.SupplierID, order.Description, order.ValueYuan,
		order.Status, order.CreatedAt, order.TrackingCode, order.ShippingPhotos, order.DisputeReason,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID; (nil, nil) si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
}

// GetByIDForUpdate lee el pedido bloqueando la fila hasta el fin de la
// transacción; la segunda transición concurrente espera y observa el estado
// ya mutado.
func (r *OrderRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.getOne(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *OrderRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Order, error) {
	var o entity.Order
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&o.ID, &o.ClientID, &o.SupplierID, &o.Description, &o.ValueYuan,
		&o.Status, &o.CreatedAt, &o.TrackingCode, &o.ShippingPhotos, &o.DisputeReason,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// Update escribe los campos mutables del pedido. ClientID, SupplierID,
// ValueYuan y CreatedAt son inmutables y quedan fuera del SET.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	query := `
		UPDATE orders SET status = $2, tracking_code = $3, shipping_photos = $4, dispute_reason = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		order.ID, order.Status, order.TrackingCode, order.ShippingPhotos, order.DisputeReason,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// ListByClient lista los pedidos de un cliente, más recientes primero.
func (r *OrderRepo) ListByClient(ctx context.Context, clientID string) ([]*entity.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE client_id = $1 ORDER BY created_at DESC`, clientID)
}

// ListBySupplier lista los pedidos de un proveedor, más recientes primero.
func (r *OrderRepo) ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE supplier_id = $1 ORDER BY created_at DESC`, supplierID)
}

func (r *OrderRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.ClientID, &o.SupplierID, &o.Description, &o.ValueYuan,
			&o.Status, &o.CreatedAt, &o.TrackingCode, &o.ShippingPhotos, &o.DisputeReason,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
