package ports

import (
	"context"

	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenService issues and verifies signed session tokens.
type TokenService interface {
	Issue(userID, role string) (string, error)
	// Verify returns domain.ErrTokenMissing, domain.ErrTokenMalformed or
	// domain.ErrTokenExpired when the token cannot be trusted.
	Verify(token string) (domain.Claims, error)
}

// RegisterInput carries the registration form.
type RegisterInput struct {
	Name            string
	Email           string
	Phone           string
	Username        string
	Password        string
	ConfirmPassword string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}
