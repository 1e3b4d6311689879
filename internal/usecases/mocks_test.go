package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"investgrow.backend/internal/domain/entities"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepo) GetByPhone(ctx context.Context, phone string) (*entities.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmailOrPhone(ctx context.Context, email, phone string) (*entities.User, error) {
	args := m.Called(ctx, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepo) ListRecent(ctx context.Context, limit int) ([]*entities.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

type MockPlanRepo struct {
	mock.Mock
}

func (m *MockPlanRepo) Create(ctx context.Context, plan *entities.InvestmentPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockPlanRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.InvestmentPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InvestmentPlan), args.Error(1)
}

func (m *MockPlanRepo) GetByCode(ctx context.Context, planCode string) (*entities.InvestmentPlan, error) {
	args := m.Called(ctx, planCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InvestmentPlan), args.Error(1)
}

func (m *MockPlanRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	args := m.Called(ctx, id, updates)
	return args.Error(0)
}

func (m *MockPlanRepo) ListActive(ctx context.Context, filter *entities.PlanFilter) ([]*entities.InvestmentPlan, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.InvestmentPlan), args.Error(1)
}

type MockInvestmentRepo struct {
	mock.Mock
}

func (m *MockInvestmentRepo) Create(ctx context.Context, investment *entities.UserInvestment) error {
	args := m.Called(ctx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.UserInvestment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserInvestment), args.Error(1)
}

func (m *MockInvestmentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.UserInvestment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UserInvestment), args.Error(1)
}

func (m *MockInvestmentRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvestmentRepo) SumTotalInvested(ctx context.Context, status entities.InvestmentStatus) (float64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockInvestmentRepo) ListRecent(ctx context.Context, limit int) ([]*entities.InvestmentWithUser, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.InvestmentWithUser), args.Error(1)
}

type MockKycRepo struct {
	mock.Mock
}

func (m *MockKycRepo) Create(ctx context.Context, doc *entities.KycDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockKycRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.KycDocument, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.KycDocument), args.Error(1)
}

func (m *MockKycRepo) HasActiveDocument(ctx context.Context, userID uuid.UUID, docType entities.DocumentType) (bool, error) {
	args := m.Called(ctx, userID, docType)
	return args.Bool(0), args.Error(1)
}

type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) Upload(ctx context.Context, key, contentType string, data []byte) error {
	args := m.Called(ctx, key, contentType, data)
	return args.Error(0)
}

func (m *MockDocumentStore) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockDocumentStore) PresignURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}

type MockConsultationRepo struct {
	mock.Mock
}

func (m *MockConsultationRepo) Create(ctx context.Context, req *entities.ConsultationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockConsultationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.ConsultationRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ConsultationRequest), args.Error(1)
}

func (m *MockConsultationRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.ConsultationRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ConsultationRequest), args.Error(1)
}

func (m *MockConsultationRepo) List(ctx context.Context, filter *entities.ConsultationFilter) ([]*entities.ConsultationRequest, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.ConsultationRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockConsultationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ConsultationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type MockContactMessageRepo struct {
	mock.Mock
}

func (m *MockContactMessageRepo) Create(ctx context.Context, msg *entities.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockBlogRepo struct {
	mock.Mock
}

func (m *MockBlogRepo) ListPublished(ctx context.Context, filter *entities.PostFilter) ([]*entities.BlogPost, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.BlogPost), args.Get(1).(int64), args.Error(2)
}

func (m *MockBlogRepo) GetPublishedBySlug(ctx context.Context, slug string) (*entities.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BlogPost), args.Error(1)
}

type MockAuditLogRepo struct {
	mock.Mock
}

func (m *MockAuditLogRepo) ListRecent(ctx context.Context, limit int) ([]*entities.AuditLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.AuditLog), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, userID, sessionID string, expiration time.Duration) error {
	args := m.Called(ctx, userID, sessionID, expiration)
	return args.Error(0)
}

func (m *MockSessionStore) Validate(ctx context.Context, userID, sessionID string) (bool, error) {
	args := m.Called(ctx, userID, sessionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
