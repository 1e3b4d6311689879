package repositories

import (
	"context"

	"github.com/google/uuid"
	"investgrow.backend/internal/domain/entities"
)

// ConsultationRepository defines consultation request data operations
type ConsultationRepository interface {
	Create(ctx context.Context, req *entities.ConsultationRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.ConsultationRequest, error)
	// ListByUser returns the user's own requests, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.ConsultationRequest, error)
	// List returns a page of requests for the admin console plus the total
	// count matching the filter.
	List(ctx context.Context, filter *entities.ConsultationFilter) ([]*entities.ConsultationRequest, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ConsultationStatus) error
}

// ContactMessageRepository defines contact message data operations
type ContactMessageRepository interface {
	Create(ctx context.Context, msg *entities.ContactMessage) error
}
