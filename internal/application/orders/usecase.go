// Package orders implementa la máquina de estados del ciclo de vida de un
// pedido: PENDING -> SENT -> FINALIZED, con rama a DISPUTE desde SENT o
// FINALIZED. Cada operación muta solo los campos que le corresponden.
package orders

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cambio-api/internal/application/dto"
	"github.com/jhoicas/cambio-api/internal/domain"
	"github.com/jhoicas/cambio-api/internal/domain/entity"
	"github.com/jhoicas/cambio-api/internal/domain/repository"
)

// UseCase aplica reglas de negocio para pedidos.
type UseCase struct {
	runner TxRunner
	orders repository.OrderRepository
	quoter Quoter
}

// NewUseCase construye el caso de uso de pedidos.
func NewUseCase(runner TxRunner, orders repository.OrderRepository, quoter Quoter) *UseCase {
	return &UseCase{runner: runner, orders: orders, quoter: quoter}
}

// Create crea un pedido PENDING de un cliente hacia el proveedor dueño del
// código público indicado. No se exige que el proveedor esté aprobado para
// recibir pedidos; la aprobación solo controla su visibilidad como
// destinatario.
func (uc *UseCase) Create(ctx context.Context, clientID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if strings.TrimSpace(in.Description) == "" || in.ValueYuan.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	// Misma ruta de cotización que la UI: valida monto/tasa/tarifa vigentes.
	if _, err := uc.quoter.QuoteForClient(ctx, clientID, in.ValueYuan); err != nil {
		return nil, err
	}

	var created *entity.Order
	err := uc.runner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		userRepo repository.UserRepository,
	) error {
		supplier, err := userRepo.GetSupplierByCode(ctx, strings.TrimSpace(in.SupplierCode))
		if err != nil {
			return err
		}
		if supplier == nil {
			return domain.ErrSupplierNotFound
		}
		created = &entity.Order{
			ID:          uuid.New().String(),
			ClientID:    clientID,
			SupplierID:  supplier.ID,
			Description: strings.TrimSpace(in.Description),
			ValueYuan:   in.ValueYuan,
			Status:      entity.OrderStatusPending,
			CreatedAt:   time.Now(),
		}
		return orderRepo.Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(created), nil
}

// MarkShipped transición PENDING -> SENT por el proveedor dueño del pedido.
// Tracking y fotos se escriben juntos o no se escribe nada.
func (uc *UseCase) MarkShipped(ctx context.Context, supplierID, orderID string, in dto.ShipOrderRequest) (*dto.OrderResponse, error) {
	if strings.TrimSpace(in.TrackingCode) == "" || len(in.ShippingPhotos) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.transition(ctx, orderID, func(o *entity.Order) error {
		if o.SupplierID != supplierID {
			return domain.ErrForbidden
		}
		if o.Status != entity.OrderStatusPending {
			return domain.ErrInvalidTransition
		}
		o.Status = entity.OrderStatusSent
		o.TrackingCode = strings.TrimSpace(in.TrackingCode)
		o.ShippingPhotos = in.ShippingPhotos
		return nil
	})
}

// RaiseDispute transición SENT|FINALIZED -> DISPUTE por el cliente o el
// proveedor del pedido. No borra los datos de envío ya registrados.
func (uc *UseCase) RaiseDispute(ctx context.Context, actorID, orderID, reason string) (*dto.OrderResponse, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.transition(ctx, orderID, func(o *entity.Order) error {
		if actorID != o.ClientID && actorID != o.SupplierID {
			return domain.ErrForbidden
		}
		if o.Status != entity.OrderStatusSent && o.Status != entity.OrderStatusFinalized {
			return domain.ErrInvalidTransition
		}
		o.Status = entity.OrderStatusDispute
		o.DisputeReason = strings.TrimSpace(reason)
		return nil
	})
}

// Finalize transición SENT -> FINALIZED (flujo administrativo). Es la única
// transición que hace contar el valor del pedido en el saldo disponible del
// proveedor.
func (uc *UseCase) Finalize(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	return uc.transition(ctx, orderID, func(o *entity.Order) error {
		if o.Status != entity.OrderStatusSent {
			return domain.ErrInvalidTransition
		}
		o.Status = entity.OrderStatusFinalized
		return nil
	})
}

// transition lee el pedido con lock de fila, aplica mutate y persiste. Si
// mutate falla no se escribe nada y el estado queda intacto.
func (uc *UseCase) transition(ctx context.Context, orderID string, mutate func(*entity.Order) error) (*dto.OrderResponse, error) {
	var updated *entity.Order
	err := uc.runner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		_ repository.UserRepository,
	) error {
		o, err := orderRepo.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if o == nil {
			return domain.ErrNotFound
		}
		if err := mutate(o); err != nil {
			return err
		}
		if err := orderRepo.Update(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(updated), nil
}

// GetByID devuelve un pedido; solo el cliente, el proveedor o un admin
// pueden verlo.
func (uc *UseCase) GetByID(ctx context.Context, actorID, role, orderID string) (*dto.OrderResponse, error) {
	o, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if role != entity.RoleAdmin && actorID != o.ClientID && actorID != o.SupplierID {
		return nil, domain.ErrForbidden
	}
	return toOrderResponse(o), nil
}

// ListByClient lista los pedidos creados por un cliente.
func (uc *UseCase) ListByClient(ctx context.Context, clientID string) ([]*dto.OrderResponse, error) {
	list, err := uc.orders.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListBySupplier lista los pedidos dirigidos a un proveedor.
func (uc *UseCase) ListBySupplier(ctx context.Context, supplierID string) ([]*dto.OrderResponse, error) {
	list, err := uc.orders.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

func toOrderResponses(list []*entity.Order) []*dto.OrderResponse {
	out := make([]*dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:             o.ID,
		ClientID:       o.ClientID,
		SupplierID:     o.SupplierID,
		Description:    o.Description,
		ValueYuan:      o.ValueYuan,
		Status:         o.Status,
		CreatedAt:      o.CreatedAt,
		TrackingCode:   o.TrackingCode,
		ShippingPhotos: o.ShippingPhotos,
		DisputeReason:  o.DisputeReason,
	}
}
