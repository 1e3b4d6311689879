package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactMessage struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	FullName  string     `gorm:"type:varchar(200);not null"`
	Email     string     `gorm:"type:varchar(255);not null"`
	Phone     *string    `gorm:"type:varchar(20)"`
	Subject   string     `gorm:"type:varchar(300);not null"`
	Message   string     `gorm:"type:text;not null"`
	Status    string     `gorm:"type:varchar(20);not null;default:'NEW'"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
