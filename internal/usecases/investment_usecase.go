package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"investgrow.backend/internal/domain/entities"
	domainerrors "investgrow.backend/internal/domain/errors"
	"investgrow.backend/internal/domain/repositories"
)

// InvestmentUsecase handles the plan catalog and user investments
type InvestmentUsecase struct {
	planRepo       repositories.PlanRepository
	investmentRepo repositories.InvestmentRepository
}

// NewInvestmentUsecase creates a new investment usecase
func NewInvestmentUsecase(planRepo repositories.PlanRepository, investmentRepo repositories.InvestmentRepository) *InvestmentUsecase {
	return &InvestmentUsecase{
		planRepo:       planRepo,
		investmentRepo: investmentRepo,
	}
}

// CreatePlan adds a catalog entry. Plan codes are unique.
func (u *InvestmentUsecase) CreatePlan(ctx context.Context, input *entities.CreatePlanInput) (*entities.InvestmentPlan, error) {
	existing, err := u.planRepo.GetByCode(ctx, input.PlanCode)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("Plan code already exists")
	}

	plan := &entities.InvestmentPlan{
		PlanCode:            input.PlanCode,
		PlanName:            input.PlanName,
		InvestmentType:      entities.InvestmentType(input.InvestmentType),
		RiskLevel:           entities.RiskLevel(input.RiskLevel),
		MinInvestmentAmount: input.MinInvestmentAmount,
		IsActive:            true,
		DisplayOrder:        input.DisplayOrder,
	}
	if input.Description != "" {
		plan.Description = null.StringFrom(input.Description)
	}
	if input.ExpectedReturns != "" {
		plan.ExpectedReturns = null.StringFrom(input.ExpectedReturns)
	}

	if err := u.planRepo.Create(ctx, plan); err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyExists) {
			return nil, domainerrors.Conflict("Plan code already exists")
		}
		return nil, err
	}
	return plan, nil
}

// GetPlans lists active plans matching the filter
func (u *InvestmentUsecase) GetPlans(ctx context.Context, filter *entities.PlanFilter) ([]*entities.InvestmentPlan, error) {
	return u.planRepo.ListActive(ctx, filter)
}

// GetPlanByID returns a single plan
func (u *InvestmentUsecase) GetPlanByID(ctx context.Context, id uuid.UUID) (*entities.InvestmentPlan, error) {
	plan, err := u.planRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Plan not found")
		}
		return nil, err
	}
	return plan, nil
}

// UpdatePlan applies a partial update. Plan code is immutable.
func (u *InvestmentUsecase) UpdatePlan(ctx context.Context, id uuid.UUID, input *entities.UpdatePlanInput) (*entities.InvestmentPlan, error) {
	if _, err := u.GetPlanByID(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.PlanName != nil {
		updates["plan_name"] = *input.PlanName
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.InvestmentType != nil {
		updates["investment_type"] = *input.InvestmentType
	}
	if input.RiskLevel != nil {
		updates["risk_level"] = *input.RiskLevel
	}
	if input.MinInvestmentAmount != nil {
		updates["min_investment_amount"] = *input.MinInvestmentAmount
	}
	if input.ExpectedReturns != nil {
		updates["expected_returns"] = *input.ExpectedReturns
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if input.DisplayOrder != nil {
		updates["display_order"] = *input.DisplayOrder
	}

	if len(updates) > 0 {
		if err := u.planRepo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return u.planRepo.GetByID(ctx, id)
}

// CreateInvestment opens a position in a plan. The plan must be active,
// the amount must meet the plan minimum, and the mode-specific fields
// must be present.
func (u *InvestmentUsecase) CreateInvestment(ctx context.Context, userID uuid.UUID, input *entities.CreateInvestmentInput) (*entities.InvestmentView, error) {
	planID, err := uuid.Parse(input.PlanID)
	if err != nil {
		return nil, domainerrors.BadRequest("Invalid plan id")
	}

	plan, err := u.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Plan not found")
		}
		return nil, err
	}
	if !plan.IsActive {
		return nil, domainerrors.BadRequest("Plan is not active")
	}

	invType := entities.InvestmentType(input.InvestmentType)
	if plan.InvestmentType != entities.InvestmentTypeBoth && plan.InvestmentType != invType {
		return nil, domainerrors.BadRequest(fmt.Sprintf("Plan does not accept %s investments", invType))
	}

	startDate, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		return nil, domainerrors.BadRequest("Invalid start date")
	}

	// TotalInvested and CurrentValue stay zero until a payment is
	// captured; opening a position does not mean funds were received.
	investment := &entities.UserInvestment{
		UserID:         userID,
		PlanID:         plan.ID,
		InvestmentType: invType,
		StartDate:      startDate,
		Status:         entities.InvestmentStatusActive,
	}

	switch invType {
	case entities.InvestmentTypeSIP:
		if input.SIPAmount == nil || input.SIPDate == nil {
			return nil, domainerrors.BadRequest("SIP amount and SIP date are required")
		}
		if *input.SIPAmount < plan.MinInvestmentAmount {
			return nil, domainerrors.BadRequest(fmt.Sprintf("Minimum SIP amount is %g", plan.MinInvestmentAmount))
		}
		investment.SIPAmount = null.Float64From(*input.SIPAmount)
		investment.SIPDate = null.IntFrom(*input.SIPDate)
		frequency := string(entities.SIPFrequencyMonthly)
		if input.SIPFrequency != nil {
			frequency = *input.SIPFrequency
		}
		investment.SIPFrequency = null.StringFrom(frequency)
	case entities.InvestmentTypeLumpSum:
		if input.LumpSumAmount == nil {
			return nil, domainerrors.BadRequest("Lumpsum amount is required")
		}
		if *input.LumpSumAmount < plan.MinInvestmentAmount {
			return nil, domainerrors.BadRequest(fmt.Sprintf("Minimum Lumpsum amount is %g", plan.MinInvestmentAmount))
		}
		investment.LumpSumAmount = null.Float64From(*input.LumpSumAmount)
	default:
		return nil, domainerrors.BadRequest("Invalid investment type")
	}

	if err := u.investmentRepo.Create(ctx, investment); err != nil {
		return nil, err
	}
	investment.Plan = plan

	return entities.NewInvestmentView(investment), nil
}

// GetUserInvestments lists the user's own investments, newest first.
func (u *InvestmentUsecase) GetUserInvestments(ctx context.Context, userID uuid.UUID) ([]*entities.InvestmentView, error) {
	investments, err := u.investmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*entities.InvestmentView, 0, len(investments))
	for _, inv := range investments {
		views = append(views, entities.NewInvestmentView(inv))
	}
	return views, nil
}

// GetInvestmentByID returns one investment. Non-owners get 403 regardless
// of whether the row exists.
func (u *InvestmentUsecase) GetInvestmentByID(ctx context.Context, userID, id uuid.UUID) (*entities.InvestmentView, error) {
	investment, err := u.investmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Investment not found")
		}
		return nil, err
	}
	if investment.UserID != userID {
		return nil, domainerrors.Forbidden("Access denied")
	}
	return entities.NewInvestmentView(investment), nil
}
