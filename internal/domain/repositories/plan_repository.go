package repositories

import (
	"context"

	"github.com/google/uuid"
	"investgrow.backend/internal/domain/entities"
)

// PlanRepository defines investment plan catalog operations
type PlanRepository interface {
	Create(ctx context.Context, plan *entities.InvestmentPlan) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.InvestmentPlan, error)
	GetByCode(ctx context.Context, planCode string) (*entities.InvestmentPlan, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	// ListActive returns active plans matching the filter, ordered by
	// display order ascending.
	ListActive(ctx context.Context, filter *entities.PlanFilter) ([]*entities.InvestmentPlan, error)
}
