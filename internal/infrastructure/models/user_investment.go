package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserInvestment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanID         uuid.UUID `gorm:"type:uuid;not null;index"`
	InvestmentType string    `gorm:"type:varchar(20);not null"`
	SipAmount      *float64  `gorm:"type:decimal(15,2)"`
	SipDate        *int
	SipFrequency   *string   `gorm:"type:varchar(20)"`
	LumpSumAmount  *float64  `gorm:"type:decimal(15,2)"`
	StartDate      time.Time `gorm:"not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	TotalInvested  float64   `gorm:"type:decimal(15,2);not null;default:0"`
	CurrentValue   float64   `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`

	Plan *InvestmentPlan `gorm:"foreignKey:PlanID"`
}
