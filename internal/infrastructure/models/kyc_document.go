package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KycDocument struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index"`
	DocumentType       string    `gorm:"type:varchar(30);not null"`
	DocumentNumber     string    `gorm:"type:varchar(50);not null"`
	StorageKey         string    `gorm:"type:varchar(500);not null"`
	VerificationStatus string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}
