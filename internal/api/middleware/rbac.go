package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/meugerenciamento/gerenciamento-api/internal/api/metrics"
	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
)

// RequireRole admits requests whose verified claims carry one of allowedRoles.
// It must be chained after Auth.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[claims.Role]; !ok {
				metrics.AccessDeniedTotal.WithLabelValues(claims.Role).Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
