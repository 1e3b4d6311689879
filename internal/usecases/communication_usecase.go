package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"investgrow.backend/internal/domain/entities"
	domainerrors "investgrow.backend/internal/domain/errors"
	"investgrow.backend/internal/domain/repositories"
	"investgrow.backend/pkg/utils"
)

// CommunicationUsecase handles consultation requests and contact messages
type CommunicationUsecase struct {
	consultationRepo repositories.ConsultationRepository
	messageRepo      repositories.ContactMessageRepository
}

// NewCommunicationUsecase creates a new communication usecase
func NewCommunicationUsecase(consultationRepo repositories.ConsultationRepository, messageRepo repositories.ContactMessageRepository) *CommunicationUsecase {
	return &CommunicationUsecase{
		consultationRepo: consultationRepo,
		messageRepo:      messageRepo,
	}
}

// CreateConsultation records a consultation request. userID is nil for
// anonymous submissions.
func (u *CommunicationUsecase) CreateConsultation(ctx context.Context, userID *uuid.UUID, input *entities.CreateConsultationInput) (*entities.ConsultationRequest, error) {
	req := &entities.ConsultationRequest{
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		Status:   entities.ConsultationPending,
	}
	if userID != nil {
		req.UserID = null.StringFrom(userID.String())
	}
	if input.Message != "" {
		req.Message = null.StringFrom(input.Message)
	}
	if input.PreferredDate != "" {
		date, err := time.Parse("2006-01-02", input.PreferredDate)
		if err != nil {
			return nil, domainerrors.BadRequest("Invalid preferred date")
		}
		req.PreferredDate = &date
	}
	if input.PreferredTime != "" {
		req.PreferredTime = null.StringFrom(input.PreferredTime)
	}
	if input.InvestmentGoal != "" {
		req.InvestmentGoal = null.StringFrom(input.InvestmentGoal)
	}
	if input.MonthlyInvestmentCapacity != "" {
		req.MonthlyInvestmentCapacity = null.StringFrom(input.MonthlyInvestmentCapacity)
	}

	if err := u.consultationRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// GetUserConsultations lists the caller's own requests, newest first.
func (u *CommunicationUsecase) GetUserConsultations(ctx context.Context, userID uuid.UUID) ([]*entities.ConsultationRequest, error) {
	return u.consultationRepo.ListByUser(ctx, userID)
}

// ListConsultations pages through all requests for the admin console.
func (u *CommunicationUsecase) ListConsultations(ctx context.Context, filter *entities.ConsultationFilter) ([]*entities.ConsultationRequest, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(filter.Page, filter.Limit)
	filter.Page = params.Page
	filter.Limit = params.Limit

	items, total, err := u.consultationRepo.List(ctx, filter)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return items, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// UpdateConsultationStatus moves a request through its admin workflow.
func (u *CommunicationUsecase) UpdateConsultationStatus(ctx context.Context, id uuid.UUID, input *entities.UpdateConsultationStatusInput) (*entities.ConsultationRequest, error) {
	if _, err := u.consultationRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Consultation request not found")
		}
		return nil, err
	}

	status := entities.ConsultationStatus(input.Status)
	if err := u.consultationRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return u.consultationRepo.GetByID(ctx, id)
}

// CreateContactMessage records a contact form submission.
func (u *CommunicationUsecase) CreateContactMessage(ctx context.Context, userID *uuid.UUID, input *entities.CreateContactMessageInput) (*entities.ContactMessage, error) {
	msg := &entities.ContactMessage{
		FullName: input.FullName,
		Email:    input.Email,
		Subject:  input.Subject,
		Message:  input.Message,
		Status:   entities.MessageNew,
	}
	if userID != nil {
		msg.UserID = null.StringFrom(userID.String())
	}
	if input.Phone != "" {
		msg.Phone = null.StringFrom(input.Phone)
	}

	if err := u.messageRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
