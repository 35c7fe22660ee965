package dto

import "github.com/shopspring/decimal"

// SupplierBalance posición financiera de un proveedor, derivada en cada
// lectura de Orders + Transactions (nunca se cachea).
//
// ReceivedToday usa el día calendario UTC de creación del pedido;
// ReceivedWeek usa una ventana móvil de 7x24h. La asimetría viene del
// comportamiento esperado por los consumidores y se conserva a propósito.
type SupplierBalance struct {
	PendingOrders  int             `json:"pending_orders"`
	HeldInEscrow   decimal.Decimal `json:"held_in_escrow"`
	TotalEarned    decimal.Decimal `json:"total_earned"`
	TotalCommitted decimal.Decimal `json:"total_committed"`
	Available      decimal.Decimal `json:"available"`
	ReceivedToday  decimal.Decimal `json:"received_today"`
	ReceivedWeek   decimal.Decimal `json:"received_week"`
}
