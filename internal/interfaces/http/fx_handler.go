package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cambio-api/internal/application/dto"
	"github.com/jhoicas/cambio-api/internal/application/fx"
)

// FXHandler maneja la cotización CNY -> BRL (protegido).
type FXHandler struct {
	uc *fx.QuoteUseCase
}

// NewFXHandler construye el handler.
func NewFXHandler(uc *fx.QuoteUseCase) *FXHandler {
	return &FXHandler{uc: uc}
}

// Quote godoc
// @Summary      Cotizar un monto en yuanes con la tarifa del cliente
// @Tags         fx
// @Security     Bearer
// @Produce      json
// @Param        amount  query  string  true  "Monto en CNY"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/fx/quote [get]
func (h *FXHandler) Quote(c *fiber.Ctx) error {
	raw := c.Query("amount")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount es requerido"})
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "amount inválido"})
	}
	out, err := h.uc.QuoteForClient(c.Context(), GetUserID(c), amount)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Rate godoc
// @Summary      Tasa de cambio vigente CNY -> BRL
// @Tags         fx
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/fx/rate [get]
func (h *FXHandler) Rate(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"rate_cny_brl": h.uc.Rate()})
}
