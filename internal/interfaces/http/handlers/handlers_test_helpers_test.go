package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"investgrow.backend/internal/domain/entities"
	domainerrors "investgrow.backend/internal/domain/errors"
	"investgrow.backend/internal/interfaces/http/middleware"
)

var errStubUnused = errors.New("stub not configured")

type userRepoStub struct {
	createFn           func(ctx context.Context, user *entities.User) error
	getByIDFn          func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	getByEmailFn       func(ctx context.Context, email string) (*entities.User, error)
	getByPhoneFn       func(ctx context.Context, phone string) (*entities.User, error)
	getByEmailOrPhone  func(ctx context.Context, email, phone string) (*entities.User, error)
	updateProfileFn    func(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	updatePasswordFn   func(ctx context.Context, id uuid.UUID, passwordHash string) error
	updateLastLoginFn  func(ctx context.Context, id uuid.UUID, at time.Time) error
	countFn            func(ctx context.Context) (int64, error)
	listRecentFn       func(ctx context.Context, limit int) ([]*entities.User, error)
}

func (s userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn == nil {
		return errStubUnused
	}
	return s.createFn(ctx, user)
}
func (s userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	if s.getByIDFn == nil {
		return nil, errStubUnused
	}
	return s.getByIDFn(ctx, id)
}
func (s userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn == nil {
		return nil, errStubUnused
	}
	return s.getByEmailFn(ctx, email)
}
func (s userRepoStub) GetByPhone(ctx context.Context, phone string) (*entities.User, error) {
	if s.getByPhoneFn == nil {
		return nil, errStubUnused
	}
	return s.getByPhoneFn(ctx, phone)
}
func (s userRepoStub) GetByEmailOrPhone(ctx context.Context, email, phone string) (*entities.User, error) {
	if s.getByEmailOrPhone == nil {
		return nil, errStubUnused
	}
	return s.getByEmailOrPhone(ctx, email, phone)
}
func (s userRepoStub) UpdateProfile(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if s.updateProfileFn == nil {
		return errStubUnused
	}
	return s.updateProfileFn(ctx, id, updates)
}
func (s userRepoStub) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	if s.updatePasswordFn == nil {
		return errStubUnused
	}
	return s.updatePasswordFn(ctx, id, passwordHash)
}
func (s userRepoStub) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if s.updateLastLoginFn == nil {
		return nil
	}
	return s.updateLastLoginFn(ctx, id, at)
}
func (s userRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn == nil {
		return 0, errStubUnused
	}
	return s.countFn(ctx)
}
func (s userRepoStub) ListRecent(ctx context.Context, limit int) ([]*entities.User, error) {
	if s.listRecentFn == nil {
		return nil, errStubUnused
	}
	return s.listRecentFn(ctx, limit)
}

type sessionStoreStub struct {
	createFn   func(ctx context.Context, userID, sessionID string, expiration time.Duration) error
	validateFn func(ctx context.Context, userID, sessionID string) (bool, error)
	deleteFn   func(ctx context.Context, userID string) error
}

func (s sessionStoreStub) Create(ctx context.Context, userID, sessionID string, expiration time.Duration) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, userID, sessionID, expiration)
}
func (s sessionStoreStub) Validate(ctx context.Context, userID, sessionID string) (bool, error) {
	if s.validateFn == nil {
		return true, nil
	}
	return s.validateFn(ctx, userID, sessionID)
}
func (s sessionStoreStub) Delete(ctx context.Context, userID string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, userID)
}

type planRepoStub struct {
	createFn    func(ctx context.Context, plan *entities.InvestmentPlan) error
	getByIDFn   func(ctx context.Context, id uuid.UUID) (*entities.InvestmentPlan, error)
	getByCodeFn func(ctx context.Context, planCode string) (*entities.InvestmentPlan, error)
	updateFn    func(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	listFn      func(ctx context.Context, filter *entities.PlanFilter) ([]*entities.InvestmentPlan, error)
}

func (s planRepoStub) Create(ctx context.Context, plan *entities.InvestmentPlan) error {
	if s.createFn == nil {
		return errStubUnused
	}
	return s.createFn(ctx, plan)
}
func (s planRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.InvestmentPlan, error) {
	if s.getByIDFn == nil {
		return nil, errStubUnused
	}
	return s.getByIDFn(ctx, id)
}
func (s planRepoStub) GetByCode(ctx context.Context, planCode string) (*entities.InvestmentPlan, error) {
	if s.getByCodeFn == nil {
		return nil, domainerrors.ErrNotFound
	}
	return s.getByCodeFn(ctx, planCode)
}
func (s planRepoStub) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if s.updateFn == nil {
		return errStubUnused
	}
	return s.updateFn(ctx, id, updates)
}
func (s planRepoStub) ListActive(ctx context.Context, filter *entities.PlanFilter) ([]*entities.InvestmentPlan, error) {
	if s.listFn == nil {
		return nil, errStubUnused
	}
	return s.listFn(ctx, filter)
}

type investmentRepoStub struct {
	createFn     func(ctx context.Context, investment *entities.UserInvestment) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*entities.UserInvestment, error)
	listByUserFn func(ctx context.Context, userID uuid.UUID) ([]*entities.UserInvestment, error)
	countFn      func(ctx context.Context) (int64, error)
	sumFn        func(ctx context.Context, status entities.InvestmentStatus) (float64, error)
	listRecentFn func(ctx context.Context, limit int) ([]*entities.InvestmentWithUser, error)
}

func (s investmentRepoStub) Create(ctx context.Context, investment *entities.UserInvestment) error {
	if s.createFn == nil {
		return errStubUnused
	}
	return s.createFn(ctx, investment)
}
func (s investmentRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.UserInvestment, error) {
	if s.getByIDFn == nil {
		return nil, errStubUnused
	}
	return s.getByIDFn(ctx, id)
}
func (s investmentRepoStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.UserInvestment, error) {
	if s.listByUserFn == nil {
		return nil, errStubUnused
	}
	return s.listByUserFn(ctx, userID)
}
func (s investmentRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn == nil {
		return 0, errStubUnused
	}
	return s.countFn(ctx)
}
func (s investmentRepoStub) SumTotalInvested(ctx context.Context, status entities.InvestmentStatus) (float64, error) {
	if s.sumFn == nil {
		return 0, errStubUnused
	}
	return s.sumFn(ctx, status)
}
func (s investmentRepoStub) ListRecent(ctx context.Context, limit int) ([]*entities.InvestmentWithUser, error) {
	if s.listRecentFn == nil {
		return nil, errStubUnused
	}
	return s.listRecentFn(ctx, limit)
}

type kycRepoStub struct {
	createFn     func(ctx context.Context, doc *entities.KycDocument) error
	listByUserFn func(ctx context.Context, userID uuid.UUID) ([]*entities.KycDocument, error)
	hasActiveFn  func(ctx context.Context, userID uuid.UUID, docType entities.DocumentType) (bool, error)
}

func (s kycRepoStub) Create(ctx context.Context, doc *entities.KycDocument) error {
	if s.createFn == nil {
		return errStubUnused
	}
	return s.createFn(ctx, doc)
}
func (s kycRepoStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.KycDocument, error) {
	if s.listByUserFn == nil {
		return nil, errStubUnused
	}
	return s.listByUserFn(ctx, userID)
}
func (s kycRepoStub) HasActiveDocument(ctx context.Context, userID uuid.UUID, docType entities.DocumentType) (bool, error) {
	if s.hasActiveFn == nil {
		return false, nil
	}
	return s.hasActiveFn(ctx, userID, docType)
}

type documentStoreStub struct {
	uploadFn  func(ctx context.Context, key, contentType string, data []byte) error
	deleteFn  func(ctx context.Context, key string) error
	presignFn func(ctx context.Context, key string, ttl time.Duration) (string, error)
}

func (s documentStoreStub) Upload(ctx context.Context, key, contentType string, data []byte) error {
	if s.uploadFn == nil {
		return nil
	}
	return s.uploadFn(ctx, key, contentType, data)
}
func (s documentStoreStub) Delete(ctx context.Context, key string) error {
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(ctx, key)
}
func (s documentStoreStub) PresignURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if s.presignFn == nil {
		return "https://example.com/" + key, nil
	}
	return s.presignFn(ctx, key, ttl)
}

type consultationRepoStub struct {
	createFn       func(ctx context.Context, req *entities.ConsultationRequest) error
	getByIDFn      func(ctx context.Context, id uuid.UUID) (*entities.ConsultationRequest, error)
	listByUserFn   func(ctx context.Context, userID uuid.UUID) ([]*entities.ConsultationRequest, error)
	listFn         func(ctx context.Context, filter *entities.ConsultationFilter) ([]*entities.ConsultationRequest, int64, error)
	updateStatusFn func(ctx context.Context, id uuid.UUID, status entities.ConsultationStatus) error
}

func (s consultationRepoStub) Create(ctx context.Context, req *entities.ConsultationRequest) error {
	if s.createFn == nil {
		return errStubUnused
	}
	return s.createFn(ctx, req)
}
func (s consultationRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.ConsultationRequest, error) {
	if s.getByIDFn == nil {
		return nil, errStubUnused
	}
	return s.getByIDFn(ctx, id)
}
func (s consultationRepoStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.ConsultationRequest, error) {
	if s.listByUserFn == nil {
		return nil, errStubUnused
	}
	return s.listByUserFn(ctx, userID)
}
func (s consultationRepoStub) List(ctx context.Context, filter *entities.ConsultationFilter) ([]*entities.ConsultationRequest, int64, error) {
	if s.listFn == nil {
		return nil, 0, errStubUnused
	}
	return s.listFn(ctx, filter)
}
func (s consultationRepoStub) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.ConsultationStatus) error {
	if s.updateStatusFn == nil {
		return errStubUnused
	}
	return s.updateStatusFn(ctx, id, status)
}

type contactMessageRepoStub struct {
	createFn func(ctx context.Context, msg *entities.ContactMessage) error
}

func (s contactMessageRepoStub) Create(ctx context.Context, msg *entities.ContactMessage) error {
	if s.createFn == nil {
		return errStubUnused
	}
	return s.createFn(ctx, msg)
}

type blogRepoStub struct {
	listFn      func(ctx context.Context, filter *entities.PostFilter) ([]*entities.BlogPost, int64, error)
	getBySlugFn func(ctx context.Context, slug string) (*entities.BlogPost, error)
}

func (s blogRepoStub) ListPublished(ctx context.Context, filter *entities.PostFilter) ([]*entities.BlogPost, int64, error) {
	if s.listFn == nil {
		return nil, 0, errStubUnused
	}
	return s.listFn(ctx, filter)
}
func (s blogRepoStub) GetPublishedBySlug(ctx context.Context, slug string) (*entities.BlogPost, error) {
	if s.getBySlugFn == nil {
		return nil, errStubUnused
	}
	return s.getBySlugFn(ctx, slug)
}

type auditLogRepoStub struct {
	listRecentFn func(ctx context.Context, limit int) ([]*entities.AuditLog, error)
}

func (s auditLogRepoStub) ListRecent(ctx context.Context, limit int) ([]*entities.AuditLog, error) {
	if s.listRecentFn == nil {
		return nil, errStubUnused
	}
	return s.listRecentFn(ctx, limit)
}

// asUser injects an authenticated identity the way AuthMiddleware does.
func asUser(userID uuid.UUID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserRoleKey, role)
		c.Next()
	}
}
