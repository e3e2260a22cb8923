package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
	"github.com/meugerenciamento/gerenciamento-api/internal/core/ports"
)

// invalidateCounts drops the cached dashboard counts after a write that changes
// a collection size. Cache failures are logged and otherwise ignored.
func invalidateCounts(ctx context.Context, counts ports.CountCache, log zerolog.Logger) {
	if counts == nil {
		return
	}
	if err := counts.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate dashboard counts")
	}
}

// record hands an audit entry to the recorder, if one is configured.
func record(rec ports.AuditRecorder, entry domain.AuditEntry) {
	if rec == nil {
		return
	}
	rec.Record(entry)
}
