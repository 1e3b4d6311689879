package repositories

import (
	"context"

	"investgrow.backend/internal/domain/entities"
)

// AuditLogRepository defines read access to the audit trail. This service
// has no audit-log write path.
type AuditLogRepository interface {
	ListRecent(ctx context.Context, limit int) ([]*entities.AuditLog, error)
}
