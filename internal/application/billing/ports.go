package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cambio-api/internal/application/dto"
	"github.com/jhoicas/cambio-api/internal/domain/entity"
)

// ReceiptPDFGenerator genera el comprobante PDF de un pedido con su
// cotización vigente. Lo implementa infrastructure/pdf.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, order *entity.Order, client, supplier *entity.User, quote *dto.QuoteResponse) ([]byte, error)
}

// Quoter cotiza el monto del pedido con la tasa y tarifa vigentes del
// cliente. El comprobante siempre refleja la cotización actual, no la del
// momento de creación del pedido.
type Quoter interface {
	QuoteForClient(ctx context.Context, clientID string, amountYuan decimal.Decimal) (*dto.QuoteResponse, error)
}
