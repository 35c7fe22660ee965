package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cambio-api/internal/application/directory"
	"github.com/jhoicas/cambio-api/internal/application/dto"
	"github.com/jhoicas/cambio-api/internal/application/ledger"
	"github.com/jhoicas/cambio-api/internal/application/orders"
)

// AdminHandler agrupa las acciones administrativas: directorio de usuarios,
// finalización de pedidos y resolución de retiros.
type AdminHandler struct {
	directoryUC *directory.UseCase
	ordersUC    *orders.UseCase
	ledgerUC    *ledger.UseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(directoryUC *directory.UseCase, ordersUC *orders.UseCase, ledgerUC *ledger.UseCase) *AdminHandler {
	return &AdminHandler{directoryUC: directoryUC, ordersUC: ordersUC, ledgerUC: ledgerUC}
}

// ListUsers godoc
// @Summary      Listar usuarios (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite (default 20)"
// @Param        offset  query  int  false  "Offset"
// @Success      200  {array}  dto.UserResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.directoryUC.ListUsers(c.Context(), page)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ApproveSupplier godoc
// @Summary      Aprobar proveedor (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del proveedor"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/suppliers/{id}/approve [post]
func (h *AdminHandler) ApproveSupplier(c *fiber.Ctx) error {
	out, err := h.directoryUC.ApproveSupplier(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// SetClientFee godoc
// @Summary      Fijar override de tarifa de un cliente (admin)
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del cliente"
// @Param        body  body  dto.SetClientFeeRequest  true  "Tarifa en porcentaje"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/clients/{id}/fee [put]
func (h *AdminHandler) SetClientFee(c *fiber.Ctx) error {
	var in dto.SetClientFeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.directoryUC.SetClientFee(c.Context(), c.Params("id"), in.FeePercentage)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// FinalizeOrder godoc
// @Summary      Finalizar un pedido enviado (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/orders/{id}/finalize [post]
func (h *AdminHandler) FinalizeOrder(c *fiber.Ctx) error {
	out, err := h.ordersUC.Finalize(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ApproveWithdrawal godoc
// @Summary      Aprobar un retiro pendiente (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/withdrawals/{id}/approve [post]
func (h *AdminHandler) ApproveWithdrawal(c *fiber.Ctx) error {
	out, err := h.ledgerUC.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// RejectWithdrawal godoc
// @Summary      Rechazar un retiro pendiente (admin)
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.TransactionResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/withdrawals/{id}/reject [post]
func (h *AdminHandler) RejectWithdrawal(c *fiber.Ctx) error {
	out, err := h.ledgerUC.Reject(c.Context(), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
