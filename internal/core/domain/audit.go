package domain

import "time"

// Audit actions recorded for administrative mutations.
const (
	ActionProductCreate = "product.create"
	ActionProductUpdate = "product.update"
	ActionProductDelete = "product.delete"
	ActionUserDelete    = "user.delete"
	ActionUserRole      = "user.role_change"
)

// AuditEntry records an administrative action performed by an identity.
type AuditEntry struct {
	ActorID   string
	Action    string
	TargetID  string
	Detail    string // optional
	Timestamp time.Time
}
