package repositories

import (
	"context"

	"github.com/google/uuid"
	"investgrow.backend/internal/domain/entities"
)

// InvestmentRepository defines user investment data operations
type InvestmentRepository interface {
	Create(ctx context.Context, investment *entities.UserInvestment) error
	// GetByID returns the investment with its plan preloaded.
	GetByID(ctx context.Context, id uuid.UUID) (*entities.UserInvestment, error)
	// ListByUser returns the user's investments with plans preloaded,
	// newest-created first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.UserInvestment, error)
	Count(ctx context.Context) (int64, error)
	// SumTotalInvested sums total_invested across investments in the given
	// status.
	SumTotalInvested(ctx context.Context, status entities.InvestmentStatus) (float64, error)
	// ListRecent returns the newest investments joined with plan and owner
	// display fields for the admin console.
	ListRecent(ctx context.Context, limit int) ([]*entities.InvestmentWithUser, error)
}
