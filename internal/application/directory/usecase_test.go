package directory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cambio-api/internal/application/directory"
	"github.com/jhoicas/cambio-api/internal/application/dto"
	"github.com/jhoicas/cambio-api/internal/domain"
	"github.com/jhoicas/cambio-api/internal/domain/entity"
	"github.com/jhoicas/cambio-api/internal/infrastructure/memory"
)

type directoryEnv struct {
	uc         *directory.UseCase
	clientID   string
	supplierID string
}

func newDirectoryEnv(t *testing.T) *directoryEnv {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	users := memory.NewUserRepository(store)

	now := time.Now()
	client := &entity.User{
		ID:        uuid.New().String(),
		Email:     "cliente@example.com",
		Role:      entity.RoleClient,
		CreatedAt: now,
		UpdatedAt: now,
	}
	supplier := &entity.User{
		ID:           uuid.New().String(),
		Email:        "proveedor@example.com",
		Role:         entity.RoleSupplier,
		SupplierCode: "123456",
		CreatedAt:    now.Add(time.Second),
		UpdatedAt:    now.Add(time.Second),
	}
	require.NoError(t, users.Create(ctx, client))
	require.NoError(t, users.Create(ctx, supplier))

	return &directoryEnv{
		uc:         directory.NewUseCase(users, decimal.NewFromInt(5)),
		clientID:   client.ID,
		supplierID: supplier.ID,
	}
}

func TestResolveSupplierByCode(t *testing.T) {
	env := newDirectoryEnv(t)
	ctx := context.Background()

	id, err := env.uc.ResolveSupplierByCode(ctx, "123456")
	require.NoError(t, err)
	assert.Equal(t, env.supplierID, id)

	_, err = env.uc.ResolveSupplierByCode(ctx, "999999")
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}

func TestApproveSupplier(t *testing.T) {
	env := newDirectoryEnv(t)
	ctx := context.Background()

	approved, err := env.uc.IsSupplierApproved(ctx, env.supplierID)
	require.NoError(t, err)
	assert.False(t, approved, "el proveedor nace sin aprobar")

	out, err := env.uc.ApproveSupplier(ctx, env.supplierID)
	require.NoError(t, err)
	assert.True(t, out.IsApproved)

	approved, err = env.uc.IsSupplierApproved(ctx, env.supplierID)
	require.NoError(t, err)
	assert.True(t, approved)

	// Aprobar a un cliente no tiene sentido.
	_, err = env.uc.ApproveSupplier(ctx, env.clientID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClientFeePercent_OverrideYDefault(t *testing.T) {
	env := newDirectoryEnv(t)
	ctx := context.Background()

	fee, err := env.uc.ClientFeePercent(ctx, env.clientID)
	require.NoError(t, err)
	assert.True(t, fee.Equal(decimal.NewFromInt(5)), "sin override aplica la tarifa por defecto")

	_, err = env.uc.SetClientFee(ctx, env.clientID, decimal.RequireFromString("2.5"))
	require.NoError(t, err)

	fee, err = env.uc.ClientFeePercent(ctx, env.clientID)
	require.NoError(t, err)
	assert.True(t, fee.Equal(decimal.RequireFromString("2.5")))
}

func TestSetClientFee_Validaciones(t *testing.T) {
	env := newDirectoryEnv(t)
	ctx := context.Background()

	_, err := env.uc.SetClientFee(ctx, env.clientID, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "tarifa negativa")

	_, err = env.uc.SetClientFee(ctx, env.supplierID, decimal.NewFromInt(3))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el override es solo para clientes")

	// Tarifa cero es válida (cliente exento).
	out, err := env.uc.SetClientFee(ctx, env.clientID, decimal.Zero)
	require.NoError(t, err)
	require.NotNil(t, out.FeePercentage)
	assert.True(t, out.FeePercentage.IsZero())
}

func TestListUsers_Paginado(t *testing.T) {
	env := newDirectoryEnv(t)
	ctx := context.Background()

	all, err := env.uc.ListUsers(ctx, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	first, err := env.uc.ListUsers(ctx, dto.PageRequest{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := env.uc.ListUsers(ctx, dto.PageRequest{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.NotEqual(t, first[0].ID, second[0].ID)
}
