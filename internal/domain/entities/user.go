package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
)

// KYCStatus represents a user's aggregate KYC verification status
type KYCStatus string

const (
	KYCNotSubmitted KYCStatus = "NOT_SUBMITTED"
	KYCPending      KYCStatus = "PENDING"
	KYCVerified     KYCStatus = "VERIFIED"
	KYCRejected     KYCStatus = "REJECTED"
)

// User represents a user entity
type User struct {
	ID              uuid.UUID   `json:"id"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	PasswordHash    string      `json:"-"`
	FirstName       string      `json:"firstName"`
	LastName        null.String `json:"lastName,omitempty"`
	DateOfBirth     *time.Time  `json:"dateOfBirth,omitempty"`
	PANNumber       null.String `json:"panNumber,omitempty"`
	Role            UserRole    `json:"role"`
	KYCStatus       KYCStatus   `json:"kycStatus"`
	IsEmailVerified bool        `json:"isEmailVerified"`
	IsPhoneVerified bool        `json:"isPhoneVerified"`
	IsActive        bool        `json:"isActive"`
	ProfileImageURL null.String `json:"profileImageUrl,omitempty"`
	LastLoginAt     *time.Time  `json:"lastLoginAt,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// FullName returns the display name used in admin listings.
func (u *User) FullName() string {
	if u.LastName.Valid && u.LastName.String != "" {
		return u.FirstName + " " + u.LastName.String
	}
	return u.FirstName
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required,e164,startswith=+91,len=13"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"firstName" binding:"required,min=1,max=100"`
	LastName    string `json:"lastName" binding:"omitempty,max=100"`
	DateOfBirth string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// UpdateProfileInput represents input for partial profile updates. Only
// supplied fields are applied.
type UpdateProfileInput struct {
	FirstName       *string `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName        *string `json:"lastName" binding:"omitempty,max=100"`
	Phone           *string `json:"phone" binding:"omitempty,e164,startswith=+91,len=13"`
	DateOfBirth     *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	ProfileImageURL *string `json:"profileImageUrl" binding:"omitempty,url"`
}

// ChangePasswordInput represents input for changing the user's password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}
