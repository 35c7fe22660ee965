package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/cambio-api/internal/application/dto"
	"github.com/jhoicas/cambio-api/internal/domain"
	"github.com/jhoicas/cambio-api/internal/domain/entity"
	"github.com/jhoicas/cambio-api/internal/domain/repository"
	"github.com/jhoicas/cambio-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro y login. No hay sesión
// global: el resto del sistema recibe la identidad vía claims del token.
type UseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{users: users, jwtCfg: jwtCfg}
}

// Register crea un cliente o proveedor. A un proveedor se le genera un código
// público de 6 dígitos (crypto/rand, único entre proveedores) y nace sin
// aprobar; el cliente usa la tarifa por defecto hasta que un admin le fije un
// override.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleClient
	}
	if role != entity.RoleClient && role != entity.RoleSupplier {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        strings.TrimSpace(in.Phone),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	switch role {
	case entity.RoleClient:
		user.CPF = strings.TrimSpace(in.CPF)
	case entity.RoleSupplier:
		code, err := uc.newSupplierCode(ctx)
		if err != nil {
			return nil, err
		}
		user.SupplierCode = code
		user.AlipayQRURL = strings.TrimSpace(in.AlipayQRURL)
		user.IsApproved = false
	}

	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT con el rol y retorna token + usuario.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// newSupplierCode genera un código de 6 dígitos que no esté en uso. El código
// es independiente del ID interno y puede regenerarse sin afectar pedidos ni
// transacciones.
func (uc *UseCase) newSupplierCode(ctx context.Context) (string, error) {
	for i := 0; i < 10; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(900000))
		if err != nil {
			return "", err
		}
		code := fmt.Sprintf("%06d", n.Int64()+100000)
		taken, err := uc.users.GetSupplierByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if taken == nil {
			return code, nil
		}
	}
	return "", domain.ErrDuplicate
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
