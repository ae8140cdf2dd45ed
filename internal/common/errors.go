package common

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound       = errors.New("requested resource not found")
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrBadRequest     = errors.New("bad request")
	ErrValidation     = errors.New("validation failed")
	ErrDuplicate      = errors.New("resource already exists")
	ErrStateConflict  = errors.New("operation not allowed in current state")
	ErrInternalServer = errors.New("internal server error")
)

// HTTPStatusFromError maps domain errors to HTTP status codes.
// Duplicates and state conflicts are 400 here, matching the wire contract:
// a cross-owner or missing record is always 404, never 403.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrDuplicate) || errors.Is(err, ErrStateConflict) {
		return http.StatusBadRequest
	}

	// Unique violations that slipped past the repository layer.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
