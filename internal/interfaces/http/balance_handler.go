package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cambio-api/internal/application/balance"
)

// BalanceHandler expone el balance derivado del proveedor (protegido).
type BalanceHandler struct {
	reconciler *balance.Reconciler
}

// NewBalanceHandler construye el handler.
func NewBalanceHandler(reconciler *balance.Reconciler) *BalanceHandler {
	return &BalanceHandler{reconciler: reconciler}
}

// Get godoc
// @Summary      Balance del proveedor autenticado
// @Tags         balance
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SupplierBalance
// @Router       /api/balance [get]
func (h *BalanceHandler) Get(c *fiber.Ctx) error {
	out, err := h.reconciler.Compute(c.Context(), GetUserID(c), time.Now())
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
