package http

import (
	"github.com/gofiber/fiber/v2"

	appledger "github.com/jquispe/puntoventa-api/internal/application/ledger"
	"github.com/jquispe/puntoventa-api/internal/application/dto"
)

// LedgerHandler maneja el libro de caja y bancos.
type LedgerHandler struct {
	uc *appledger.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *appledger.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar movimiento manual de caja
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLedgerMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.LedgerMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ledger/movements [post]
func (h *LedgerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLedgerMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateMovement(GetUserName(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Transfer godoc
// @Summary      Transferir entre caja y cuentas
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "Transferencia"
// @Success      201   {array}  dto.LedgerMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ledger/transfers [post]
func (h *LedgerHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Transfer(GetUserName(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos de caja
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "Desde (RFC3339 o YYYY-MM-DD)"
// @Param        to      query  string  false  "Hasta (RFC3339 o YYYY-MM-DD)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {array}  dto.LedgerMovementResponse
// @Router       /api/ledger/movements [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	from, to, err := dateRangeFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rango de fechas inválido"})
	}
	out, err := h.uc.List(from, to, pageFromQuery(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Balance godoc
// @Summary      Saldo de caja o de una cuenta
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        account_id  query  string  false  "ID de cuenta (vacío = caja física)"
// @Param        currency    query  string  true   "Moneda"
// @Success      200         {object}  dto.AccountBalanceResponse
// @Router       /api/ledger/balance [get]
func (h *LedgerHandler) Balance(c *fiber.Ctx) error {
	currency := c.Query("currency")
	if currency == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "currency es requerido"})
	}
	out, err := h.uc.Balance(c.Query("account_id"), currency)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}
