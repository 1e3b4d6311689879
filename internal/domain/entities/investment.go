package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// InvestmentStatus represents the lifecycle state of a user investment
type InvestmentStatus string

const (
	InvestmentStatusActive    InvestmentStatus = "ACTIVE"
	InvestmentStatusCompleted InvestmentStatus = "COMPLETED"
	InvestmentStatusCancelled InvestmentStatus = "CANCELLED"
)

// SIPFrequency represents how often a SIP installment recurs
type SIPFrequency string

const (
	SIPFrequencyMonthly   SIPFrequency = "MONTHLY"
	SIPFrequencyQuarterly SIPFrequency = "QUARTERLY"
)

// UserInvestment represents a user's position in a plan. Exactly one of
// the SIP fields or LumpSumAmount is populated, consistent with
// InvestmentType.
type UserInvestment struct {
	ID             uuid.UUID        `json:"id"`
	UserID         uuid.UUID        `json:"userId"`
	PlanID         uuid.UUID        `json:"planId"`
	Plan           *InvestmentPlan  `json:"plan,omitempty"`
	InvestmentType InvestmentType   `json:"investmentType"`
	SIPAmount      null.Float64     `json:"sipAmount,omitempty"`
	SIPDate        null.Int         `json:"sipDate,omitempty"`
	SIPFrequency   null.String      `json:"sipFrequency,omitempty"`
	LumpSumAmount  null.Float64     `json:"lumpSumAmount,omitempty"`
	StartDate      time.Time        `json:"startDate"`
	Status         InvestmentStatus `json:"status"`
	TotalInvested  float64          `json:"totalInvested"`
	CurrentValue   float64          `json:"currentValue"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// Returns is the absolute gain or loss, derived at read time.
func (i *UserInvestment) Returns() float64 {
	return i.CurrentValue - i.TotalInvested
}

// ReturnsPercentage is the relative gain or loss; zero when nothing has
// been invested yet.
func (i *UserInvestment) ReturnsPercentage() float64 {
	if i.TotalInvested <= 0 {
		return 0
	}
	return i.Returns() / i.TotalInvested * 100
}

// InvestmentView is a UserInvestment annotated with its derived fields for
// API responses.
type InvestmentView struct {
	*UserInvestment
	Returns           float64 `json:"returns"`
	ReturnsPercentage float64 `json:"returnsPercentage"`
}

// NewInvestmentView annotates an investment with its derived return fields.
func NewInvestmentView(inv *UserInvestment) *InvestmentView {
	return &InvestmentView{
		UserInvestment:    inv,
		Returns:           inv.Returns(),
		ReturnsPercentage: inv.ReturnsPercentage(),
	}
}

// InvestmentWithUser pairs an investment with its owner's display fields
// for admin listings.
type InvestmentWithUser struct {
	UserInvestment
	UserFirstName string      `json:"-"`
	UserLastName  null.String `json:"-"`
}

// UserName returns the owner's display name.
func (i *InvestmentWithUser) UserName() string {
	if i.UserLastName.Valid && i.UserLastName.String != "" {
		return i.UserFirstName + " " + i.UserLastName.String
	}
	return i.UserFirstName
}

// CreateInvestmentInput represents input for creating an investment
type CreateInvestmentInput struct {
	PlanID         string   `json:"planId" binding:"required,uuid"`
	InvestmentType string   `json:"investmentType" binding:"required,oneof=SIP LUMPSUM"`
	SIPAmount      *float64 `json:"sipAmount" binding:"omitempty,gt=0"`
	SIPDate        *int     `json:"sipDate" binding:"omitempty,min=1,max=28"`
	SIPFrequency   *string  `json:"sipFrequency" binding:"omitempty,oneof=MONTHLY QUARTERLY"`
	LumpSumAmount  *float64 `json:"lumpSumAmount" binding:"omitempty,gt=0"`
	StartDate      string   `json:"startDate" binding:"required"`
}
