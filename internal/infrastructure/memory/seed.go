package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cambio-api/internal/domain/entity"
)

// Seed carga los usuarios de demostración (admin,
// proveedor aprobado y cliente con tarifa propia). Solo para desarrollo.
func Seed(ctx context.Context, s *Store) error {
	users := NewUserRepository(s)

	hash, err := bcrypt.GenerateFromPassword([]byte("123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	fee := decimal.NewFromInt(5)

	seed := []*entity.User{
		{
			ID:           uuid.New().String(),
			Name:         "Master Admin",
			Email:        "admin@test.com",
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New().String(),
			Name:         "Wei Supplier",
			Email:        "fornecedor@test.com",
			PasswordHash: string(hash),
			Role:         entity.RoleSupplier,
			Phone:        "123456789",
			SupplierCode: "888888",
			IsApproved:   true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:            uuid.New().String(),
			Name:          "João Silva",
			Email:         "cliente@test.com",
			PasswordHash:  string(hash),
			Role:          entity.RoleClient,
			Phone:         "987654321",
			CPF:           "123.456.789-00",
			FeePercentage: &fee,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}
	for _, u := range seed {
		if err := users.Create(ctx, u); err != nil {
			return err
		}
	}
	return nil
}
