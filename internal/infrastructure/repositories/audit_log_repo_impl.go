package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"investgrow.backend/internal/domain/entities"
	"investgrow.backend/internal/infrastructure/models"
)

// AuditLogRepository implements read access to the audit trail
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// ListRecent returns the newest entries with the acting user's display
// fields resolved.
func (r *AuditLogRepository) ListRecent(ctx context.Context, limit int) ([]*entities.AuditLog, error) {
	var logModels []models.AuditLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logModels).Error
	if err != nil {
		return nil, err
	}
	if len(logModels) == 0 {
		return []*entities.AuditLog{}, nil
	}

	userIDs := make([]uuid.UUID, 0, len(logModels))
	for i := range logModels {
		if logModels[i].UserID != nil {
			userIDs = append(userIDs, *logModels[i].UserID)
		}
	}

	usersByID := make(map[uuid.UUID]*models.User)
	if len(userIDs) > 0 {
		var userModels []models.User
		if err := r.db.WithContext(ctx).Where("id IN ?", userIDs).Find(&userModels).Error; err != nil {
			return nil, err
		}
		for i := range userModels {
			usersByID[userModels[i].ID] = &userModels[i]
		}
	}

	logs := make([]*entities.AuditLog, 0, len(logModels))
	for i := range logModels {
		m := &logModels[i]
		e := &entities.AuditLog{
			ID:         m.ID,
			Action:     m.Action,
			EntityType: null.StringFromPtr(m.EntityType),
			EntityID:   null.StringFromPtr(m.EntityID),
			Metadata:   null.StringFromPtr(m.Metadata),
			IPAddress:  null.StringFromPtr(m.IPAddress),
			CreatedAt:  m.CreatedAt,
		}
		if m.UserID != nil {
			e.UserID = null.StringFrom(m.UserID.String())
			if u, ok := usersByID[*m.UserID]; ok {
				name := u.FirstName
				if u.LastName != nil && *u.LastName != "" {
					name += " " + *u.LastName
				}
				e.UserName = null.StringFrom(name)
				e.UserEmail = null.StringFrom(u.Email)
			}
		}
		logs = append(logs, e)
	}
	return logs, nil
}
