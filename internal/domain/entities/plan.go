package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// RiskLevel represents an investment plan's risk classification
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelModerate RiskLevel = "MODERATE"
	RiskLevelHigh     RiskLevel = "HIGH"
)

// InvestmentType represents how money enters a plan
type InvestmentType string

const (
	InvestmentTypeSIP     InvestmentType = "SIP"
	InvestmentTypeLumpSum InvestmentType = "LUMPSUM"
	// InvestmentTypeBoth marks plans that accept either mode.
	InvestmentTypeBoth InvestmentType = "BOTH"
)

// InvestmentPlan represents a catalog entry administrators define
type InvestmentPlan struct {
	ID                  uuid.UUID      `json:"id"`
	PlanCode            string         `json:"planCode"`
	PlanName            string         `json:"planName"`
	Description         null.String    `json:"description,omitempty"`
	InvestmentType      InvestmentType `json:"investmentType"`
	RiskLevel           RiskLevel      `json:"riskLevel"`
	MinInvestmentAmount float64        `json:"minInvestmentAmount"`
	ExpectedReturns     null.String    `json:"expectedReturns,omitempty"`
	IsActive            bool           `json:"isActive"`
	DisplayOrder        int            `json:"displayOrder"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

// CreatePlanInput represents input for creating a plan
type CreatePlanInput struct {
	PlanCode            string  `json:"planCode" binding:"required,min=2,max=50"`
	PlanName            string  `json:"planName" binding:"required,min=2,max=200"`
	Description         string  `json:"description" binding:"omitempty,max=2000"`
	InvestmentType      string  `json:"investmentType" binding:"required,oneof=SIP LUMPSUM BOTH"`
	RiskLevel           string  `json:"riskLevel" binding:"required,oneof=LOW MODERATE HIGH"`
	MinInvestmentAmount float64 `json:"minInvestmentAmount" binding:"required,gt=0"`
	ExpectedReturns     string  `json:"expectedReturns" binding:"omitempty,max=50"`
	DisplayOrder        int     `json:"displayOrder" binding:"omitempty,gte=0"`
}

// UpdatePlanInput represents input for partial plan updates
type UpdatePlanInput struct {
	PlanName            *string  `json:"planName" binding:"omitempty,min=2,max=200"`
	Description         *string  `json:"description" binding:"omitempty,max=2000"`
	InvestmentType      *string  `json:"investmentType" binding:"omitempty,oneof=SIP LUMPSUM BOTH"`
	RiskLevel           *string  `json:"riskLevel" binding:"omitempty,oneof=LOW MODERATE HIGH"`
	MinInvestmentAmount *float64 `json:"minInvestmentAmount" binding:"omitempty,gt=0"`
	ExpectedReturns     *string  `json:"expectedReturns" binding:"omitempty,max=50"`
	IsActive            *bool    `json:"isActive"`
	DisplayOrder        *int     `json:"displayOrder" binding:"omitempty,gte=0"`
}

// PlanFilter holds optional listing filters. Amount bounds filter on the
// plan's minimum investment amount.
type PlanFilter struct {
	RiskLevel      string   `form:"riskLevel" binding:"omitempty,oneof=LOW MODERATE HIGH"`
	InvestmentType string   `form:"investmentType" binding:"omitempty,oneof=SIP LUMPSUM BOTH"`
	MinAmount      *float64 `form:"minAmount" binding:"omitempty,gte=0"`
	MaxAmount      *float64 `form:"maxAmount" binding:"omitempty,gte=0"`
}
