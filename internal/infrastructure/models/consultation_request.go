package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultationRequest struct {
	ID                        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID                    *uuid.UUID `gorm:"type:uuid;index"`
	FullName                  string     `gorm:"type:varchar(200);not null"`
	Email                     string     `gorm:"type:varchar(255);not null"`
	Phone                     string     `gorm:"type:varchar(20);not null"`
	Message                   *string    `gorm:"type:text"`
	PreferredDate             *time.Time `gorm:"type:date"`
	PreferredTime             *string    `gorm:"type:varchar(50)"`
	InvestmentGoal            *string    `gorm:"type:varchar(200)"`
	MonthlyInvestmentCapacity *string    `gorm:"type:varchar(100)"`
	Status                    string     `gorm:"type:varchar(20);not null;default:'PENDING'"`
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
	DeletedAt                 gorm.DeletedAt `gorm:"index"`
}
