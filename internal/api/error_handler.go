package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
)

// messageResponse is the envelope for client errors.
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse is the envelope for server errors.
type errorResponse struct {
	Error string `json:"error"`
}

type errorMapping struct {
	target  error
	status  int
	message string // empty: use err.Error()
}

// knownErrors maps domain errors to HTTP statuses. Order matters only where a
// wrapped chain could match several entries.
var knownErrors = []errorMapping{
	{domain.ErrTokenMissing, http.StatusUnauthorized, "token not provided"},
	{domain.ErrUnauthenticated, http.StatusUnauthorized, "authentication required"},
	{domain.ErrTokenMalformed, http.StatusBadRequest, "invalid token"},
	{domain.ErrTokenExpired, http.StatusBadRequest, "invalid token"},
	{domain.ErrForbidden, http.StatusForbidden, "access denied"},
	{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
	{domain.ErrProductNotFound, http.StatusNotFound, "product not found"},
	{domain.ErrInvalidCredentials, http.StatusBadRequest, "invalid credentials"},
	{domain.ErrEmailTaken, http.StatusBadRequest, "email already registered"},
	{domain.ErrUsernameTaken, http.StatusBadRequest, "username already registered"},
	{domain.ErrPasswordMismatch, http.StatusBadRequest, "passwords do not match"},
	{domain.ErrPasswordTooShort, http.StatusBadRequest, "password must be at least 6 characters"},
	{domain.ErrPasswordTooLong, http.StatusBadRequest, "password must be at most 72 bytes"},
	{domain.ErrMissingFields, http.StatusBadRequest, "missing required fields"},
	{domain.ErrInvalidRole, http.StatusBadRequest, "invalid role"},
	{domain.ErrInvalidID, http.StatusBadRequest, "invalid id"},
	{domain.ErrValidation, http.StatusBadRequest, ""},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors without leaking details to the client.
//   - Renders {"message": ...} for 4xx and {"error": ...} for 5xx.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if code >= http.StatusInternalServerError {
			_ = c.JSON(code, errorResponse{Error: msg})
			return
		}
		_ = c.JSON(code, messageResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	for _, m := range knownErrors {
		if errors.Is(err, m.target) {
			if m.message == "" {
				return m.status, err.Error()
			}
			return m.status, m.message
		}
	}

	// Echo's own errors (bind failures, unknown routes, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
