package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jquispe/puntoventa-api/internal/application/dto"
	"github.com/jquispe/puntoventa-api/internal/domain"
)

// fail traduce un error de dominio a la respuesta HTTP correspondiente.
// Los errores no reconocidos se devuelven como 500.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrMissingAccount):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrIncompletePayment),
		errors.Is(err, domain.ErrNoEligibleAccounts),
		errors.Is(err, domain.ErrReturnExceedsSold),
		errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUnauthorizedOverride):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrOverrideLocked):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// pageFromQuery lee limit/offset del query string con defaults y tope.
func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	if page.Limit > 100 {
		page.Limit = 100
	}
	page.DefaultPage()
	return page
}

// dateRangeFromQuery lee from/to del query string. Acepta RFC3339 o fecha
// simple (2006-01-02); "to" en fecha simple cubre el día completo.
func dateRangeFromQuery(c *fiber.Ctx) (from, to *time.Time, err error) {
	parse := func(raw string, endOfDay bool) (*time.Time, error) {
		if raw == "" {
			return nil, nil
		}
		if t, perr := time.Parse(time.RFC3339, raw); perr == nil {
			return &t, nil
		}
		t, perr := time.ParseInLocation("2006-01-02", raw, time.Local)
		if perr != nil {
			return nil, perr
		}
		if endOfDay {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t, nil
	}
	if from, err = parse(c.Query("from"), false); err != nil {
		return nil, nil, err
	}
	if to, err = parse(c.Query("to"), true); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}
