package orders

import (
	"context"

	"github.com/jhoicas/cambio-api/internal/application/dto"
	"github.com/jhoicas/cambio-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// TxRunner ejecuta fn de forma atómica sobre pedidos y usuarios. Las
// transiciones de estado leen el pedido con lock de fila dentro de fn, así
// dos transiciones concurrentes sobre el mismo pedido se resuelven con un
// único ganador.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		userRepo repository.UserRepository,
	) error) error
}

// Quoter cotiza un monto para un cliente con la tasa y tarifa vigentes. Se
// usa la misma ruta de cotización que muestra la UI para validar la creación
// del pedido; el resultado nunca se persiste en el pedido.
type Quoter interface {
	QuoteForClient(ctx context.Context, clientID string, amountYuan decimal.Decimal) (*dto.QuoteResponse, error)
}
