package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Roles válidos para User. Se serializan tal cual en el JWT y en la API.
const (
	RoleClient   = "CLIENT"
	RoleSupplier = "SUPPLIER"
	RoleAdmin    = "ADMIN"
)

// User representa un usuario del marketplace.
//
// Identidad de dos niveles para proveedores: ID es la identidad interna que
// referencian Orders y Transactions; SupplierCode es el código público de 6
// dígitos que el cliente escribe al crear un pedido. El código se genera con
// crypto/rand y puede regenerarse sin tocar el ID interno.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // CLIENT, SUPPLIER, ADMIN
	Phone        string

	// Solo clientes
	CPF           string
	FeePercentage *decimal.Decimal // override por cliente; nil = tarifa por defecto

	// Solo proveedores
	SupplierCode string // código público de 6 dígitos, único entre proveedores
	AlipayQRURL  string
	IsApproved   bool // los proveedores nacen sin aprobar

	CreatedAt time.Time
	UpdatedAt time.Time
}
