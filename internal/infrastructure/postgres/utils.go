package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de unique_violation.
const uniqueViolationCode = "23505"

// isUniqueViolation detecta choques de constraint único para traducirlos al
// error de dominio que corresponda (código de producto duplicado, email ya
// registrado, correlativo repetido).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return strings.Contains(err.Error(), uniqueViolationCode)
}
