package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest creación de pedido por un cliente. El proveedor se
// indica por su código público de 6 dígitos, no por su ID interno.
type CreateOrderRequest struct {
	SupplierCode string          `json:"supplier_code"`
	Description  string          `json:"description"`
	ValueYuan    decimal.Decimal `json:"value_yuan"`
}

// ShipOrderRequest datos de envío; ambos campos son obligatorios y se
// persisten juntos o no se persiste ninguno.
type ShipOrderRequest struct {
	TrackingCode   string   `json:"tracking_code"`
	ShippingPhotos []string `json:"shipping_photos"`
}

// DisputeOrderRequest apertura de disputa sobre un pedido enviado o finalizado.
type DisputeOrderRequest struct {
	Reason string `json:"reason"`
}

// OrderResponse representación de un pedido en la API.
type OrderResponse struct {
	ID             string          `json:"id"`
	ClientID       string          `json:"client_id"`
	SupplierID     string          `json:"supplier_id"`
	Description    string          `json:"description"`
	ValueYuan      decimal.Decimal `json:"value_yuan"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	TrackingCode   string          `json:"tracking_code,omitempty"`
	ShippingPhotos []string        `json:"shipping_photos,omitempty"`
	DisputeReason  string          `json:"dispute_reason,omitempty"`
}
