package ports

import (
	"context"

	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
)

// CountCache stores the last computed dashboard counts.
type CountCache interface {
	// Get returns ok=false on a miss.
	Get(ctx context.Context) (stats domain.DashboardStats, ok bool, err error)
	// Generation returns a token that changes on every Invalidate. Read it
	// before counting and pass it to Set.
	Generation(ctx context.Context) (int64, error)
	// Set stores stats unless an Invalidate happened after gen was read.
	Set(ctx context.Context, stats domain.DashboardStats, gen int64) error
	Invalidate(ctx context.Context) error
}

type DashboardService interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
}
