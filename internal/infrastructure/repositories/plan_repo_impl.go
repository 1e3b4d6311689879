package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"investgrow.backend/internal/domain/entities"
	domainerrors "investgrow.backend/internal/domain/errors"
	"investgrow.backend/internal/infrastructure/models"
	"investgrow.backend/pkg/utils"
)

// PlanRepository implements investment plan catalog operations
type PlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Create inserts a new plan
func (r *PlanRepository) Create(ctx context.Context, plan *entities.InvestmentPlan) error {
	if plan.ID == uuid.Nil {
		plan.ID = utils.GenerateUUIDv7()
	}
	m := &models.InvestmentPlan{
		ID:                  plan.ID,
		PlanCode:            plan.PlanCode,
		PlanName:            plan.PlanName,
		Description:         plan.Description.Ptr(),
		InvestmentType:      string(plan.InvestmentType),
		RiskLevel:           string(plan.RiskLevel),
		MinInvestmentAmount: plan.MinInvestmentAmount,
		ExpectedReturns:     plan.ExpectedReturns.Ptr(),
		IsActive:            plan.IsActive,
		DisplayOrder:        plan.DisplayOrder,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	plan.CreatedAt = m.CreatedAt
	plan.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a plan by ID
func (r *PlanRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.InvestmentPlan, error) {
	var m models.InvestmentPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return planToEntity(&m), nil
}

// GetByCode gets a plan by its unique plan code
func (r *PlanRepository) GetByCode(ctx context.Context, planCode string) (*entities.InvestmentPlan, error) {
	var m models.InvestmentPlan
	if err := r.db.WithContext(ctx).Where("plan_code = ?", planCode).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return planToEntity(&m), nil
}

// Update applies partial updates to the given columns
func (r *PlanRepository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).Model(&models.InvestmentPlan{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ListActive returns active plans matching the filter, ordered by display
// order ascending.
func (r *PlanRepository) ListActive(ctx context.Context, filter *entities.PlanFilter) ([]*entities.InvestmentPlan, error) {
	query := r.db.WithContext(ctx).Where("is_active = ?", true).Order("display_order ASC")

	if filter != nil {
		if filter.RiskLevel != "" {
			query = query.Where("risk_level = ?", filter.RiskLevel)
		}
		if filter.InvestmentType != "" {
			query = query.Where("investment_type = ?", filter.InvestmentType)
		}
		if filter.MinAmount != nil {
			query = query.Where("min_investment_amount >= ?", *filter.MinAmount)
		}
		if filter.MaxAmount != nil {
			query = query.Where("min_investment_amount <= ?", *filter.MaxAmount)
		}
	}

	var planModels []models.InvestmentPlan
	if err := query.Find(&planModels).Error; err != nil {
		return nil, err
	}

	plans := make([]*entities.InvestmentPlan, 0, len(planModels))
	for i := range planModels {
		plans = append(plans, planToEntity(&planModels[i]))
	}
	return plans, nil
}

func planToEntity(m *models.InvestmentPlan) *entities.InvestmentPlan {
	return &entities.InvestmentPlan{
		ID:                  m.ID,
		PlanCode:            m.PlanCode,
		PlanName:            m.PlanName,
		Description:         null.StringFromPtr(m.Description),
		InvestmentType:      entities.InvestmentType(m.InvestmentType),
		RiskLevel:           entities.RiskLevel(m.RiskLevel),
		MinInvestmentAmount: m.MinInvestmentAmount,
		ExpectedReturns:     null.StringFromPtr(m.ExpectedReturns),
		IsActive:            m.IsActive,
		DisplayOrder:        m.DisplayOrder,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
