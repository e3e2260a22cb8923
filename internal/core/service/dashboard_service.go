package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/meugerenciamento/gerenciamento-api/internal/api/metrics"
	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
	"github.com/meugerenciamento/gerenciamento-api/internal/core/ports"
)

// DashboardService reports collection sizes, read through an optional cache.
type DashboardService struct {
	products ports.ProductRepository
	users    ports.UserRepository
	cache    ports.CountCache
	log      zerolog.Logger
}

func NewDashboardService(products ports.ProductRepository, users ports.UserRepository, cache ports.CountCache, log zerolog.Logger) *DashboardService {
	return &DashboardService{products: products, users: users, cache: cache, log: log}
}

// Stats returns the product and user counts.
func (s *DashboardService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	var (
		gen       int64
		cacheable bool
	)
	if s.cache != nil {
		stats, ok, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			metrics.DashboardCacheTotal.WithLabelValues("error").Inc()
			s.log.Warn().Err(err).Msg("dashboard cache read failed, counting directly")
		case ok:
			metrics.DashboardCacheTotal.WithLabelValues("hit").Inc()
			return stats, nil
		default:
			metrics.DashboardCacheTotal.WithLabelValues("miss").Inc()
		}

		// The generation is read before counting so a write landing while
		// the counts are computed keeps them out of the cache.
		if gen, err = s.cache.Generation(ctx); err != nil {
			s.log.Warn().Err(err).Msg("dashboard cache generation read failed")
		} else {
			cacheable = true
		}
	}

	productCount, err := s.products.Count(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("count products: %w", err)
	}
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("count users: %w", err)
	}

	stats := domain.DashboardStats{ProductCount: productCount, UserCount: userCount}
	if cacheable {
		if err := s.cache.Set(ctx, stats, gen); err != nil {
			s.log.Warn().Err(err).Msg("dashboard cache write failed")
		}
	}
	return stats, nil
}
