// Package directory resuelve identidades y mantiene los flags que el core
// lee: aprobación del proveedor y override de tarifa del cliente.
package directory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cambio-api/internal/application/dto"
	"github.com/jhoicas/cambio-api/internal/domain"
	"github.com/jhoicas/cambio-api/internal/domain/entity"
	"github.com/jhoicas/cambio-api/internal/domain/repository"
)

// UseCase directorio de usuarios y acciones de admin sobre sus flags.
type UseCase struct {
	users      repository.UserRepository
	defaultFee decimal.Decimal
}

// NewUseCase construye el directorio con la tarifa por defecto del proceso.
func NewUseCase(users repository.UserRepository, defaultFee decimal.Decimal) *UseCase {
	return &UseCase{users: users, defaultFee: defaultFee}
}

// ResolveSupplierByCode traduce el código público de 6 dígitos a la identidad
// interna del proveedor.
func (uc *UseCase) ResolveSupplierByCode(ctx context.Context, code string) (string, error) {
	u, err := uc.users.GetSupplierByCode(ctx, code)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", domain.ErrSupplierNotFound
	}
	return u.ID, nil
}

// IsSupplierApproved indica si el proveedor fue aprobado por un admin.
func (uc *UseCase) IsSupplierApproved(ctx context.Context, supplierID string) (bool, error) {
	u, err := uc.users.GetByID(ctx, supplierID)
	if err != nil {
		return false, err
	}
	if u == nil || u.Role != entity.RoleSupplier {
		return false, domain.ErrUserNotFound
	}
	return u.IsApproved, nil
}

// ClientFeePercent devuelve el override de tarifa del cliente, o la tarifa
// por defecto si no tiene.
func (uc *UseCase) ClientFeePercent(ctx context.Context, clientID string) (decimal.Decimal, error) {
	u, err := uc.users.GetByID(ctx, clientID)
	if err != nil {
		return decimal.Zero, err
	}
	if u == nil {
		return decimal.Zero, domain.ErrUserNotFound
	}
	if u.FeePercentage != nil {
		return *u.FeePercentage, nil
	}
	return uc.defaultFee, nil
}

// ApproveSupplier marca al proveedor como aprobado (acción de admin).
func (uc *UseCase) ApproveSupplier(ctx context.Context, supplierID string) (*dto.UserResponse, error) {
	u, err := uc.users.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if u.Role != entity.RoleSupplier {
		return nil, domain.ErrInvalidInput
	}
	u.IsApproved = true
	u.UpdatedAt = time.Now()
	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// SetClientFee fija el override de tarifa de un cliente (acción de admin).
func (uc *UseCase) SetClientFee(ctx context.Context, clientID string, fee decimal.Decimal) (*dto.UserResponse, error) {
	if fee.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	u, err := uc.users.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	if u.Role != entity.RoleClient {
		return nil, domain.ErrInvalidInput
	}
	u.FeePercentage = &fee
	u.UpdatedAt = time.Now()
	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// ListUsers lista usuarios con paginación (dashboard de admin).
func (uc *UseCase) ListUsers(ctx context.Context, page dto.PageRequest) ([]*dto.UserResponse, error) {
	page.DefaultPage()
	list, err := uc.users.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		Phone:         u.Phone,
		CPF:           u.CPF,
		FeePercentage: u.FeePercentage,
		SupplierCode:  u.SupplierCode,
		AlipayQRURL:   u.AlipayQRURL,
		IsApproved:    u.IsApproved,
		CreatedAt:     u.CreatedAt,
	}
}
