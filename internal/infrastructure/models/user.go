package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email           string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Phone           string     `gorm:"type:varchar(20);uniqueIndex;not null"`
	PasswordHash    string     `gorm:"type:varchar(255);not null"`
	FirstName       string     `gorm:"type:varchar(100);not null"`
	LastName        *string    `gorm:"type:varchar(100)"`
	DateOfBirth     *time.Time `gorm:"type:date"`
	PanNumber       *string    `gorm:"type:varchar(20)"`
	Role            string     `gorm:"type:varchar(20);not null;default:'USER'"`
	KycStatus       string     `gorm:"type:varchar(20);not null;default:'NOT_SUBMITTED'"`
	IsEmailVerified bool       `gorm:"not null;default:false"`
	IsPhoneVerified bool       `gorm:"not null;default:false"`
	IsActive        bool       `gorm:"not null;default:true"`
	ProfileImageURL *string    `gorm:"type:varchar(500)"`
	LastLoginAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}
