// Package billing genera el comprobante del pedido (representación gráfica
// de la cotización vigente). La cotización se recalcula al momento de emitir
// el PDF; nunca se congela en el pedido.
package billing

import (
	"context"

	"github.com/jhoicas/cambio-api/internal/domain"
	"github.com/jhoicas/cambio-api/internal/domain/entity"
	"github.com/jhoicas/cambio-api/internal/domain/repository"
)

// ReceiptUseCase emite el comprobante PDF de un pedido.
type ReceiptUseCase struct {
	orders repository.OrderRepository
	users  repository.UserRepository
	quoter Quoter
	pdfGen ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso del comprobante.
func NewReceiptUseCase(orders repository.OrderRepository, users repository.UserRepository, quoter Quoter, pdfGen ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{orders: orders, users: users, quoter: quoter, pdfGen: pdfGen}
}

// GetReceipt genera el PDF del pedido. Solo el cliente, el proveedor o un
// admin pueden pedirlo.
func (uc *ReceiptUseCase) GetReceipt(ctx context.Context, actorID, role, orderID string) ([]byte, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if role != entity.RoleAdmin && actorID != order.ClientID && actorID != order.SupplierID {
		return nil, domain.ErrForbidden
	}

	client, err := uc.users.GetByID(ctx, order.ClientID)
	if err != nil {
		return nil, err
	}
	supplier, err := uc.users.GetByID(ctx, order.SupplierID)
	if err != nil {
		return nil, err
	}
	if client == nil || supplier == nil {
		return nil, domain.ErrUserNotFound
	}

	quote, err := uc.quoter.QuoteForClient(ctx, order.ClientID, order.ValueYuan)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateReceiptPDF(ctx, order, client, supplier, quote)
}
