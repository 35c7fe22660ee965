package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido.
//
//	PENDING ──▶ SENT ──▶ FINALIZED
//	              │           │
//	              └──▶ DISPUTE ◀┘
//
// DISPUTE y FINALIZED son terminales para el core; la resolución de una
// disputa es una acción administrativa externa.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusSent      = "SENT"
	OrderStatusFinalized = "FINALIZED"
	OrderStatusDispute   = "DISPUTE"
)

// Order representa un pedido de compra de un cliente a un proveedor.
//
// ValueYuan es inmutable tras la creación y es el único monto persistido: la
// conversión a reales se recalcula siempre con la tasa y tarifa vigentes al
// momento de cotizar, nunca se congela en el pedido.
type Order struct {
	ID          string
	ClientID    string // User.ID del cliente
	SupplierID  string // User.ID interno del proveedor, no el código público
	Description string
	ValueYuan   decimal.Decimal
	Status      string
	CreatedAt   time.Time

	// Datos de envío, escritos juntos al pasar a SENT (todo o nada)
	TrackingCode   string
	ShippingPhotos []string // URLs de las fotos del paquete

	// Escrito al pasar a DISPUTE
	DisputeReason string
}
