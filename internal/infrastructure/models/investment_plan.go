package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvestmentPlan struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlanCode            string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	PlanName            string    `gorm:"type:varchar(200);not null"`
	Description         *string   `gorm:"type:text"`
	InvestmentType      string    `gorm:"type:varchar(20);not null"`
	RiskLevel           string    `gorm:"type:varchar(20);not null"`
	MinInvestmentAmount float64   `gorm:"type:decimal(15,2);not null"`
	ExpectedReturns     *string   `gorm:"type:varchar(50)"`
	IsActive            bool      `gorm:"not null;default:true"`
	DisplayOrder        int       `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}
