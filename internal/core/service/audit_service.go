package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/meugerenciamento/gerenciamento-api/internal/api/metrics"
	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
	"github.com/meugerenciamento/gerenciamento-api/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService implementation.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Write persists a single audit entry.
func (s *auditService) Write(ctx context.Context, entry domain.AuditEntry) error {
	if entry.ActorID == "" || entry.Action == "" {
		return fmt.Errorf("write audit entry: %w: actor and action are required", domain.ErrValidation)
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	if err := s.repo.Insert(ctx, &entry); err != nil {
		return fmt.Errorf("write audit entry: %w", err)
	}

	metrics.AuditEntriesWrittenTotal.WithLabelValues(entry.Action).Inc()
	s.log.Debug().
		Str("actor_id", entry.ActorID).
		Str("action", entry.Action).
		Str("target_id", entry.TargetID).
		Msg("audit entry written")
	return nil
}
