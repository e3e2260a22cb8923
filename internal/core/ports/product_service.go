package ports

import (
	"context"

	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
)

// CreateProductInput carries a new product. All fields are mandatory.
type CreateProductInput struct {
	Name     string
	Category string
	Price    float64
	Stock    int
}

// ProductService defines catalog use cases. Mutations take the acting admin's
// ID for the audit trail.
type ProductService interface {
	Create(ctx context.Context, actorID string, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, actorID, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, actorID, id string) error
}
