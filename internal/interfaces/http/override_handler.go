package http

import (
	"github.com/gofiber/fiber/v2"

	appcheckout "github.com/jquispe/puntoventa-api/internal/application/checkout"
	"github.com/jquispe/puntoventa-api/internal/application/dto"
)

// OverrideHandler valida la clave de supervisor para habilitar la edición de
// precios en caja.
type OverrideHandler struct {
	uc *appcheckout.OverrideUseCase
}

// NewOverrideHandler construye el handler.
func NewOverrideHandler(uc *appcheckout.OverrideUseCase) *OverrideHandler {
	return &OverrideHandler{uc: uc}
}

// Unlock godoc
// @Summary      Autorizar edición de precio con clave de supervisor
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UnlockOverrideRequest  true  "Clave de supervisor"
// @Success      204
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/checkout/override [post]
func (h *OverrideHandler) Unlock(c *fiber.Ctx) error {
	var in dto.UnlockOverrideRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Unlock(in.Password); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
