package repositories

import (
	"context"

	"github.com/google/uuid"
	"investgrow.backend/internal/domain/entities"
)

// KycRepository defines KYC document data operations
type KycRepository interface {
	Create(ctx context.Context, doc *entities.KycDocument) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.KycDocument, error)
	// HasActiveDocument reports whether the user already has a PENDING or
	// VERIFIED document of the given type.
	HasActiveDocument(ctx context.Context, userID uuid.UUID, docType entities.DocumentType) (bool, error)
}
