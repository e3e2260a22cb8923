package ports

import (
	"context"

	"github.com/meugerenciamento/gerenciamento-api/internal/core/domain"
)

// AuditRepository persists audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditService writes a single audit entry.
type AuditService interface {
	Write(ctx context.Context, entry domain.AuditEntry) error
}

// AuditRecorder accepts audit entries without blocking the caller.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}
