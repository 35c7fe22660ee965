package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del ledger.
const (
	TransactionKindWithdrawal = "WITHDRAWAL"
	TransactionKindIncome     = "INCOME"
)

// Estados de una transacción. PENDING pasa a APPROVED o REJECTED exactamente
// una vez; después la fila es inmutable y nunca se borra.
const (
	TransactionStatusPending  = "PENDING"
	TransactionStatusApproved = "APPROVED"
	TransactionStatusRejected = "REJECTED"
)

// Transaction representa un movimiento del ledger de un proveedor.
// Solo se crean retiros (WITHDRAWAL) vía la operación de solicitud; el
// ingreso por pedidos finalizados se deriva directamente de los Orders.
type Transaction struct {
	ID         string
	SupplierID string // User.ID interno del proveedor
	AmountYuan decimal.Decimal
	Kind       string
	Status     string
	Date       time.Time
}
