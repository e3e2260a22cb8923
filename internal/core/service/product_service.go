package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/meugerenciamento/gerenciamento-api/internal/api/metrics"
	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
	"github.com/meugerenciamento/gerenciamento-api/internal/core/ports"
)

type ProductService struct {
	repo   ports.ProductRepository
	counts ports.CountCache
	audit  ports.AuditRecorder
	logger zerolog.Logger
}

// NewProductService wires the catalog use cases. counts and audit may be nil.
func NewProductService(repo ports.ProductRepository, counts ports.CountCache, audit ports.AuditRecorder, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, counts: counts, audit: audit, logger: logger}
}

// Create validates and stores a new product.
func (s *ProductService) Create(ctx context.Context, actorID string, input ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:     strings.TrimSpace(input.Name),
		Category: strings.TrimSpace(input.Category),
		Price:    input.Price,
		Stock:    input.Stock,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	invalidateCounts(ctx, s.counts, s.logger)
	metrics.ProductMutationsTotal.WithLabelValues("create").Inc()
	record(s.audit, domain.AuditEntry{
		ActorID:   actorID,
		Action:    domain.ActionProductCreate,
		TargetID:  created.ID,
		Timestamp: time.Now().UTC(),
	})
	s.logger.Info().Str("actor_id", actorID).Str("product_id", created.ID).Msg("product created")
	return created, nil
}

// Get returns a single product.
func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns the whole catalog.
func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update. An empty patch returns the product unchanged.
func (s *ProductService) Update(ctx context.Context, actorID, id string, patch domain.ProductPatch) (*domain.Product, error) {
	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		patch.Name = &trimmed
	}
	if patch.Category != nil {
		trimmed := strings.TrimSpace(*patch.Category)
		patch.Category = &trimmed
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	if patch.Empty() {
		return s.repo.FindByID(ctx, id)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	metrics.ProductMutationsTotal.WithLabelValues("update").Inc()
	record(s.audit, domain.AuditEntry{
		ActorID:   actorID,
		Action:    domain.ActionProductUpdate,
		TargetID:  id,
		Timestamp: time.Now().UTC(),
	})
	return updated, nil
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, actorID, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	invalidateCounts(ctx, s.counts, s.logger)
	metrics.ProductMutationsTotal.WithLabelValues("delete").Inc()
	record(s.audit, domain.AuditEntry{
		ActorID:   actorID,
		Action:    domain.ActionProductDelete,
		TargetID:  id,
		Timestamp: time.Now().UTC(),
	})
	s.logger.Info().Str("actor_id", actorID).Str("product_id", id).Msg("product deleted")
	return nil
}
