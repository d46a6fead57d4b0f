package http

import (
	"github.com/gofiber/fiber/v2"

	appcheckout "github.com/jquispe/puntoventa-api/internal/application/checkout"
	"github.com/jquispe/puntoventa-api/internal/application/dto"
)

// CreditNoteHandler maneja la emisión y consulta de notas de crédito.
type CreditNoteHandler struct {
	uc *appcheckout.CreditNoteUseCase
}

// NewCreditNoteHandler construye el handler.
func NewCreditNoteHandler(uc *appcheckout.CreditNoteUseCase) *CreditNoteHandler {
	return &CreditNoteHandler{uc: uc}
}

// Issue godoc
// @Summary      Emitir nota de crédito (devolución)
// @Tags         credit-notes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCreditNoteRequest  true  "Líneas devueltas y reembolsos"
// @Success      201   {object}  dto.CreditNoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/credit-notes [post]
func (h *CreditNoteHandler) Issue(c *fiber.Ctx) error {
	var in dto.CreateCreditNoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.IssueCreditNote(c.Context(), GetUserName(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener nota de crédito
// @Tags         credit-notes
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la nota"
// @Success      200  {object}  dto.CreditNoteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/credit-notes/{id} [get]
func (h *CreditNoteHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetCreditNote(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "nota no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar notas de crédito
// @Tags         credit-notes
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "Desde (RFC3339 o YYYY-MM-DD)"
// @Param        to      query  string  false  "Hasta (RFC3339 o YYYY-MM-DD)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {array}  dto.CreditNoteResponse
// @Router       /api/credit-notes [get]
func (h *CreditNoteHandler) List(c *fiber.Ctx) error {
	from, to, err := dateRangeFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
	}
	out, err := h.uc.ListCreditNotes(c.Context(), from, to, pageFromQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
