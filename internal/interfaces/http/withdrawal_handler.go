package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cambio-api/internal/application/dto"
	"github.com/jhoicas/cambio-api/internal/application/ledger"
)

// WithdrawalHandler maneja las solicitudes de retiro del proveedor (protegido).
type WithdrawalHandler struct {
	uc *ledger.UseCase
}

// NewWithdrawalHandler construye el handler.
func NewWithdrawalHandler(uc *ledger.UseCase) *WithdrawalHandler {
	return &WithdrawalHandler{uc: uc}
}

// Request godoc
// @Summary      Solicitar retiro contra el saldo disponible (proveedor)
// @Tags         withdrawals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WithdrawalRequest  true  "Monto en CNY"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/withdrawals [post]
func (h *WithdrawalHandler) Request(c *fiber.Ctx) error {
	var in dto.WithdrawalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RequestWithdrawal(c.Context(), GetUserID(c), in.AmountYuan)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar transacciones del proveedor autenticado
// @Tags         withdrawals
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/withdrawals [get]
func (h *WithdrawalHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListBySupplier(c.Context(), GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
