package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ConsultationStatus represents the admin-managed state of a request
type ConsultationStatus string

const (
	ConsultationPending   ConsultationStatus = "PENDING"
	ConsultationContacted ConsultationStatus = "CONTACTED"
	ConsultationCompleted ConsultationStatus = "COMPLETED"
	ConsultationCancelled ConsultationStatus = "CANCELLED"
)

// MessageStatus represents the state of a contact message
type MessageStatus string

const (
	MessageNew       MessageStatus = "NEW"
	MessageRead      MessageStatus = "READ"
	MessageResponded MessageStatus = "RESPONDED"
)

// ConsultationRequest is a lead-capture record, optionally linked to an
// authenticated user.
type ConsultationRequest struct {
	ID                        uuid.UUID          `json:"id"`
	UserID                    null.String        `json:"userId,omitempty"`
	FullName                  string             `json:"fullName"`
	Email                     string             `json:"email"`
	Phone                     string             `json:"phone"`
	Message                   null.String        `json:"message,omitempty"`
	PreferredDate             *time.Time         `json:"preferredDate,omitempty"`
	PreferredTime             null.String        `json:"preferredTime,omitempty"`
	InvestmentGoal            null.String        `json:"investmentGoal,omitempty"`
	MonthlyInvestmentCapacity null.String        `json:"monthlyInvestmentCapacity,omitempty"`
	Status                    ConsultationStatus `json:"status"`
	CreatedAt                 time.Time          `json:"createdAt"`
}

// ContactMessage is a one-shot contact form submission.
type ContactMessage struct {
	ID        uuid.UUID     `json:"id"`
	UserID    null.String   `json:"userId,omitempty"`
	FullName  string        `json:"fullName"`
	Email     string        `json:"email"`
	Phone     null.String   `json:"phone,omitempty"`
	Subject   string        `json:"subject"`
	Message   string        `json:"message"`
	Status    MessageStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// CreateConsultationInput represents input for a consultation request
type CreateConsultationInput struct {
	FullName                  string `json:"fullName" binding:"required,min=1,max=200"`
	Email                     string `json:"email" binding:"required,email"`
	Phone                     string `json:"phone" binding:"required,min=10,max=15"`
	Message                   string `json:"message" binding:"omitempty,max=2000"`
	PreferredDate             string `json:"preferredDate" binding:"omitempty,datetime=2006-01-02"`
	PreferredTime             string `json:"preferredTime" binding:"omitempty,max=50"`
	InvestmentGoal            string `json:"investmentGoal" binding:"omitempty,max=200"`
	MonthlyInvestmentCapacity string `json:"monthlyInvestmentCapacity" binding:"omitempty,max=100"`
}

// CreateContactMessageInput represents input for a contact message
type CreateContactMessageInput struct {
	FullName string `json:"fullName" binding:"required,min=1,max=200"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"omitempty,min=10,max=15"`
	Subject  string `json:"subject" binding:"required,min=1,max=300"`
	Message  string `json:"message" binding:"required,min=1,max=5000"`
}

// UpdateConsultationStatusInput is the admin status transition payload.
type UpdateConsultationStatusInput struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONTACTED COMPLETED CANCELLED"`
}

// ConsultationFilter holds admin listing filters.
type ConsultationFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=PENDING CONTACTED COMPLETED CANCELLED"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}
