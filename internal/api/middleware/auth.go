package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/meugerenciamento/gerenciamento-api/internal/api/metrics"
	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
	"github.com/meugerenciamento/gerenciamento-api/internal/core/ports"
)

const bearerPrefix = "Bearer "

// claimsKey is private so only this package can store or read verified claims.
const claimsKey = "gerenciamento.claims"

// Auth verifies the session token carried in the Authorization header and
// stores the resulting claims on the request context. The "Bearer " prefix is
// optional. A missing token yields domain.ErrTokenMissing; any verification
// failure is returned as-is for the error handler to map.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), bearerPrefix))
			if raw == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return domain.ErrTokenMissing
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues(verifyResult(err)).Inc()
				return err
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(claimsKey, claims)
			return next(c)
		}
	}
}

func verifyResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenMissing):
		return "missing"
	default:
		return "malformed"
	}
}

// ClaimsFrom returns the claims stored by Auth.
func ClaimsFrom(c echo.Context) (domain.Claims, bool) {
	claims, ok := c.Get(claimsKey).(domain.Claims)
	return claims, ok
}

// WithClaims adapts a handler that needs the caller's identity. Requests that
// did not pass through Auth are rejected with domain.ErrUnauthenticated.
func WithClaims(h func(c echo.Context, claims domain.Claims) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := ClaimsFrom(c)
		if !ok {
			return domain.ErrUnauthenticated
		}
		return h(c, claims)
	}
}
