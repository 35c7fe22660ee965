package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawalRequest solicitud de retiro de un proveedor contra su saldo
// disponible.
type WithdrawalRequest struct {
	AmountYuan decimal.Decimal `json:"amount_yuan"`
}

// TransactionResponse representación de una transacción del ledger.
type TransactionResponse struct {
	ID         string          `json:"id"`
	SupplierID string          `json:"supplier_id"`
	AmountYuan decimal.Decimal `json:"amount_yuan"`
	Kind       string          `json:"kind"`
	Status     string          `json:"status"`
	Date       time.Time       `json:"date"`
}
