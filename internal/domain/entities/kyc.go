package entities

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType represents an accepted KYC document type
type DocumentType string

const (
	DocumentTypePAN            DocumentType = "PAN"
	DocumentTypeAadhaar        DocumentType = "AADHAAR"
	DocumentTypePassport       DocumentType = "PASSPORT"
	DocumentTypeDrivingLicense DocumentType = "DRIVING_LICENSE"
)

// VerificationStatus represents per-document review state
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationRejected VerificationStatus = "REJECTED"
)

// KycDocument represents an uploaded verification artifact. StorageKey is
// the object-store key, never a public URL.
type KycDocument struct {
	ID                 uuid.UUID          `json:"id"`
	UserID             uuid.UUID          `json:"userId"`
	DocumentType       DocumentType       `json:"documentType"`
	DocumentNumber     string             `json:"documentNumber"`
	StorageKey         string             `json:"-"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	CreatedAt          time.Time          `json:"uploadedAt"`

	// DocumentURL is a time-limited presigned download URL filled in at
	// read time; it is never persisted.
	DocumentURL string `json:"documentUrl,omitempty"`
}

// UploadDocumentInput holds the multipart metadata accompanying a KYC file.
type UploadDocumentInput struct {
	DocumentType   string `form:"documentType" binding:"required,oneof=PAN AADHAAR PASSPORT DRIVING_LICENSE"`
	DocumentNumber string `form:"documentNumber" binding:"required,min=4,max=50"`
}

// KycStatusResponse aggregates a user's KYC state.
type KycStatusResponse struct {
	OverallStatus KYCStatus      `json:"overallStatus"`
	Documents     []*KycDocument `json:"documents"`
}
