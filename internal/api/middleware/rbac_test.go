package middleware

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
)

func TestRequireRole_Allows(t *testing.T) {
	c, rec := newContext("")
	c.Set(claimsKey, domain.Claims{UserID: "a1", Role: domain.RoleAdmin})

	called := false
	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_Forbids(t *testing.T) {
	c, _ := newContext("")
	c.Set(claimsKey, domain.Claims{UserID: "u1", Role: domain.RoleUser})

	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRequireRole_WithoutAuth(t *testing.T) {
	c, _ := newContext("")

	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthThenRequireRole(t *testing.T) {
	tokens := &stubTokens{claims: domain.Claims{UserID: "u1", Role: domain.RoleUser}}
	c, _ := newContext("Bearer t")

	handler := Auth(tokens)(RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatal("non-admin reached admin handler")
		return nil
	}))

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
