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

// ConsultationRepository implements consultation request data operations
type ConsultationRepository struct {
	db *gorm.DB
}

// NewConsultationRepository creates a new consultation repository
func NewConsultationRepository(db *gorm.DB) *ConsultationRepository {
	return &ConsultationRepository{db: db}
}

// Create inserts a new consultation request
func (r *ConsultationRepository) Create(ctx context.Context, req *entities.ConsultationRequest) error {
	if req.ID == uuid.Nil {
		req.ID = utils.GenerateUUIDv7()
	}
	m := &models.ConsultationRequest{
		ID:                        req.ID,
		UserID:                    uuidPtrFromNullString(req.UserID),
		FullName:                  req.FullName,
		Email:                     req.Email,
		Phone:                     req.Phone,
		Message:                   req.Message.Ptr(),
		PreferredDate:             req.PreferredDate,
		PreferredTime:             req.PreferredTime.Ptr(),
		InvestmentGoal:            req.InvestmentGoal.Ptr(),
		MonthlyInvestmentCapacity: req.MonthlyInvestmentCapacity.Ptr(),
		Status:                    string(req.Status),
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	req.CreatedAt = m.CreatedAt
	return nil
}

// GetByID gets a consultation request by ID
func (r *ConsultationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ConsultationRequest, error) {
	var m models.ConsultationRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return consultationToEntity(&m), nil
}

// ListByUser returns the user's own requests, newest first
func (r *ConsultationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.ConsultationRequest, error) {
	var reqModels []models.ConsultationRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reqModels).Error
	if err != nil {
		return nil, err
	}

	reqs := make([]*entities.ConsultationRequest, 0, len(reqModels))
	for i := range reqModels {
		reqs = append(reqs, consultationToEntity(&reqModels[i]))
	}
	return reqs, nil
}

// List returns a page of requests plus the total count matching the filter
func (r *ConsultationRepository) List(ctx context.Context, filter *entities.ConsultationFilter) ([]*entities.ConsultationRequest, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ConsultationRequest{})
	if filter != nil && filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params := utils.GetPaginationParams(filter.Page, filter.Limit)
	var reqModels []models.ConsultationRequest
	err := query.
		Order("created_at DESC").
		Offset(params.CalculateOffset()).
		Limit(params.Limit).
		Find(&reqModels).Error
	if err != nil {
		return nil, 0, err
	}

	reqs := make([]*entities.ConsultationRequest, 0, len(reqModels))
	for i := range reqModels {
		reqs = append(reqs, consultationToEntity(&reqModels[i]))
	}
	return reqs, total, nil
}

// UpdateStatus transitions a consultation request's status
func (r *ConsultationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ConsultationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.ConsultationRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func consultationToEntity(m *models.ConsultationRequest) *entities.ConsultationRequest {
	return &entities.ConsultationRequest{
		ID:                        m.ID,
		UserID:                    nullStringFromUUIDPtr(m.UserID),
		FullName:                  m.FullName,
		Email:                     m.Email,
		Phone:                     m.Phone,
		Message:                   null.StringFromPtr(m.Message),
		PreferredDate:             m.PreferredDate,
		PreferredTime:             null.StringFromPtr(m.PreferredTime),
		InvestmentGoal:            null.StringFromPtr(m.InvestmentGoal),
		MonthlyInvestmentCapacity: null.StringFromPtr(m.MonthlyInvestmentCapacity),
		Status:                    entities.ConsultationStatus(m.Status),
		CreatedAt:                 m.CreatedAt,
	}
}

// ContactMessageRepository implements contact message data operations
type ContactMessageRepository struct {
	db *gorm.DB
}

// NewContactMessageRepository creates a new contact message repository
func NewContactMessageRepository(db *gorm.DB) *ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

// Create inserts a new contact message
func (r *ContactMessageRepository) Create(ctx context.Context, msg *entities.ContactMessage) error {
	if msg.ID == uuid.Nil {
		msg.ID = utils.GenerateUUIDv7()
	}
	m := &models.ContactMessage{
		ID:       msg.ID,
		UserID:   uuidPtrFromNullString(msg.UserID),
		FullName: msg.FullName,
		Email:    msg.Email,
		Phone:    msg.Phone.Ptr(),
		Subject:  msg.Subject,
		Message:  msg.Message,
		Status:   string(msg.Status),
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	msg.CreatedAt = m.CreatedAt
	return nil
}

func uuidPtrFromNullString(s null.String) *uuid.UUID {
	if !s.Valid || s.String == "" {
		return nil
	}
	id, err := uuid.Parse(s.String)
	if err != nil {
		return nil
	}
	return &id
}

func nullStringFromUUIDPtr(id *uuid.UUID) null.String {
	if id == nil {
		return null.String{}
	}
	return null.StringFrom(id.String())
}
