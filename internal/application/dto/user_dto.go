package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterRequest alta de usuario (cliente o proveedor).
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"` // CLIENT o SUPPLIER; ADMIN solo por seed
	Phone       string `json:"phone"`
	CPF         string `json:"cpf"`
	AlipayQRURL string `json:"alipay_qr_url"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse representación pública de un usuario (sin hash de password).
type UserResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Role          string           `json:"role"`
	Phone         string           `json:"phone,omitempty"`
	CPF           string           `json:"cpf,omitempty"`
	FeePercentage *decimal.Decimal `json:"fee_percentage,omitempty"`
	SupplierCode  string           `json:"supplier_code,omitempty"`
	AlipayQRURL   string           `json:"alipay_qr_url,omitempty"`
	IsApproved    bool             `json:"is_approved"`
	CreatedAt     time.Time        `json:"created_at"`
}

// SetClientFeeRequest override de tarifa por cliente (admin).
type SetClientFeeRequest struct {
	FeePercentage decimal.Decimal `json:"fee_percentage"`
}
