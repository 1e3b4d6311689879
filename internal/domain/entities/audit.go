package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// AuditLog is a read-only trail entry surfaced on the admin console. This
// service exposes no write path for it.
type AuditLog struct {
	ID         uuid.UUID   `json:"id"`
	UserID     null.String `json:"userId,omitempty"`
	Action     string      `json:"action"`
	EntityType null.String `json:"entityType,omitempty"`
	EntityID   null.String `json:"entityId,omitempty"`
	Metadata   null.String `json:"metadata,omitempty"`
	IPAddress  null.String `json:"ipAddress,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`

	// Joined from users for admin display.
	UserName  null.String `json:"userName,omitempty"`
	UserEmail null.String `json:"userEmail,omitempty"`
}
