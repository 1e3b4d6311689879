package models

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
	Action     string     `gorm:"type:varchar(100);not null"`
	EntityType *string    `gorm:"type:varchar(100)"`
	EntityID   *string    `gorm:"type:varchar(100)"`
	Metadata   *string    `gorm:"type:text"`
	IPAddress  *string    `gorm:"type:varchar(50)"`
	CreatedAt  time.Time
}
