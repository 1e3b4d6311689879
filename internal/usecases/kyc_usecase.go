package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"investgrow.backend/internal/domain/entities"
	domainerrors "investgrow.backend/internal/domain/errors"
	"investgrow.backend/internal/domain/repositories"
	"investgrow.backend/pkg/logger"
)

// presignTTL bounds how long a KYC document download link stays valid.
const presignTTL = 15 * time.Minute

// KycUsecase handles document upload and status aggregation
type KycUsecase struct {
	kycRepo  repositories.KycRepository
	userRepo repositories.UserRepository
	store    repositories.DocumentStore
	now      func() time.Time
}

// NewKycUsecase creates a new KYC usecase
func NewKycUsecase(kycRepo repositories.KycRepository, userRepo repositories.UserRepository, store repositories.DocumentStore) *KycUsecase {
	return &KycUsecase{
		kycRepo:  kycRepo,
		userRepo: userRepo,
		store:    store,
		now:      time.Now,
	}
}

// UploadDocument stores the file and records the document as PENDING. The
// object is uploaded before the row is inserted; if the insert fails the
// object is deleted on a best-effort basis.
func (u *KycUsecase) UploadDocument(ctx context.Context, userID uuid.UUID, input *entities.UploadDocumentInput, contentType, ext string, data []byte) (*entities.KycDocument, error) {
	docType := entities.DocumentType(input.DocumentType)

	exists, err := u.kycRepo.HasActiveDocument(ctx, userID, docType)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainerrors.Conflict("Document of this type already exists and is pending or verified")
	}

	key := fmt.Sprintf("%s/%s_%d.%s", userID, docType, u.now().UnixMilli(), ext)
	if err := u.store.Upload(ctx, key, contentType, data); err != nil {
		return nil, err
	}

	doc := &entities.KycDocument{
		UserID:             userID,
		DocumentType:       docType,
		DocumentNumber:     input.DocumentNumber,
		StorageKey:         key,
		VerificationStatus: entities.VerificationPending,
	}
	if err := u.kycRepo.Create(ctx, doc); err != nil {
		if delErr := u.store.Delete(ctx, key); delErr != nil {
			logger.Error(ctx, "failed to clean up orphaned document object", zap.Error(delErr))
		}
		return nil, err
	}

	// First submission moves the aggregate status to PENDING.
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.KYCStatus == entities.KYCNotSubmitted || user.KYCStatus == entities.KYCRejected {
		if err := u.userRepo.UpdateProfile(ctx, userID, map[string]interface{}{"kyc_status": string(entities.KYCPending)}); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// GetStatus aggregates the user's KYC state and attaches time-limited
// download URLs to each document.
func (u *KycUsecase) GetStatus(ctx context.Context, userID uuid.UUID) (*entities.KycStatusResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	docs, err := u.kycRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		url, err := u.store.PresignURL(ctx, doc.StorageKey, presignTTL)
		if err != nil {
			// A broken link should not hide the status itself.
			logger.Error(ctx, "failed to presign document url", zap.Error(err))
			continue
		}
		doc.DocumentURL = url
	}

	return &entities.KycStatusResponse{
		OverallStatus: user.KYCStatus,
		Documents:     docs,
	}, nil
}
