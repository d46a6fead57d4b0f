package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
)

// Errores del motor de caja (ventas, compras y notas de crédito).
var (
	ErrEmptyCart            = errors.New("el carrito está vacío")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrInvalidAmount        = errors.New("monto inválido")
	ErrMissingAccount       = errors.New("debe seleccionar la cuenta de destino para este medio de pago")
	ErrNoEligibleAccounts   = errors.New("no hay cuentas habilitadas para esta moneda y operación")
	ErrIncompletePayment    = errors.New("falta completar el pago")
	ErrUnauthorizedOverride = errors.New("contraseña de administrador incorrecta")
	ErrOverrideLocked       = errors.New("la edición de precio requiere autorización previa")
	ErrReturnExceedsSold    = errors.New("la cantidad devuelta excede la cantidad vendida")
)
