package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"investgrow.backend/internal/domain/entities"
	domainerrors "investgrow.backend/internal/domain/errors"
	"investgrow.backend/internal/infrastructure/models"
	"investgrow.backend/pkg/utils"
)

// InvestmentRepository implements user investment data operations
type InvestmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// Create inserts a new investment
func (r *InvestmentRepository) Create(ctx context.Context, investment *entities.UserInvestment) error {
	if investment.ID == uuid.Nil {
		investment.ID = utils.GenerateUUIDv7()
	}
	m := &models.UserInvestment{
		ID:             investment.ID,
		UserID:         investment.UserID,
		PlanID:         investment.PlanID,
		InvestmentType: string(investment.InvestmentType),
		SipAmount:      investment.SIPAmount.Ptr(),
		SipDate:        investment.SIPDate.Ptr(),
		SipFrequency:   investment.SIPFrequency.Ptr(),
		LumpSumAmount:  investment.LumpSumAmount.Ptr(),
		StartDate:      investment.StartDate,
		Status:         string(investment.Status),
		TotalInvested:  investment.TotalInvested,
		CurrentValue:   investment.CurrentValue,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	investment.CreatedAt = m.CreatedAt
	investment.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets an investment with its plan preloaded
func (r *InvestmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.UserInvestment, error) {
	var m models.UserInvestment
	if err := r.db.WithContext(ctx).Preload("Plan").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return investmentToEntity(&m), nil
}

// ListByUser returns the user's investments with plans, newest first
func (r *InvestmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.UserInvestment, error) {
	var investmentModels []models.UserInvestment
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&investmentModels).Error
	if err != nil {
		return nil, err
	}

	investments := make([]*entities.UserInvestment, 0, len(investmentModels))
	for i := range investmentModels {
		investments = append(investments, investmentToEntity(&investmentModels[i]))
	}
	return investments, nil
}

// Count counts all investments
func (r *InvestmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserInvestment{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumTotalInvested sums total_invested across investments in the given
// status.
func (r *InvestmentRepository) SumTotalInvested(ctx context.Context, status entities.InvestmentStatus) (float64, error) {
	var sum *float64
	err := r.db.WithContext(ctx).
		Model(&models.UserInvestment{}).
		Select("SUM(total_invested)").
		Where("status = ?", string(status)).
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}

// ListRecent returns the newest investments with plan preloaded and the
// owner's display fields resolved in one batch query.
func (r *InvestmentRepository) ListRecent(ctx context.Context, limit int) ([]*entities.InvestmentWithUser, error) {
	var investmentModels []models.UserInvestment
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Order("created_at DESC").
		Limit(limit).
		Find(&investmentModels).Error
	if err != nil {
		return nil, err
	}
	if len(investmentModels) == 0 {
		return []*entities.InvestmentWithUser{}, nil
	}

	userIDs := make([]uuid.UUID, 0, len(investmentModels))
	for i := range investmentModels {
		userIDs = append(userIDs, investmentModels[i].UserID)
	}

	var userModels []models.User
	if err := r.db.WithContext(ctx).Where("id IN ?", userIDs).Find(&userModels).Error; err != nil {
		return nil, err
	}
	usersByID := make(map[uuid.UUID]*models.User, len(userModels))
	for i := range userModels {
		usersByID[userModels[i].ID] = &userModels[i]
	}

	items := make([]*entities.InvestmentWithUser, 0, len(investmentModels))
	for i := range investmentModels {
		item := &entities.InvestmentWithUser{
			UserInvestment: *investmentToEntity(&investmentModels[i]),
		}
		if u, ok := usersByID[investmentModels[i].UserID]; ok {
			item.UserFirstName = u.FirstName
			item.UserLastName = null.StringFromPtr(u.LastName)
		}
		items = append(items, item)
	}
	return items, nil
}

func investmentToEntity(m *models.UserInvestment) *entities.UserInvestment {
	e := &entities.UserInvestment{
		ID:             m.ID,
		UserID:         m.UserID,
		PlanID:         m.PlanID,
		InvestmentType: entities.InvestmentType(m.InvestmentType),
		SIPAmount:      null.Float64FromPtr(m.SipAmount),
		SIPDate:        null.IntFromPtr(m.SipDate),
		SIPFrequency:   null.StringFromPtr(m.SipFrequency),
		LumpSumAmount:  null.Float64FromPtr(m.LumpSumAmount),
		StartDate:      m.StartDate,
		Status:         entities.InvestmentStatus(m.Status),
		TotalInvested:  m.TotalInvested,
		CurrentValue:   m.CurrentValue,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.Plan != nil {
		e.Plan = planToEntity(m.Plan)
	}
	return e
}
