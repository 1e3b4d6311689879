package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"investgrow.backend/internal/domain/entities"
	domainerrors "investgrow.backend/internal/domain/errors"
	"investgrow.backend/pkg/utils"
)

func panUploadInput() *entities.UploadDocumentInput {
	return &entities.UploadDocumentInput{
		DocumentType:   "PAN",
		DocumentNumber: "ABCDE1234F",
	}
}

func TestKycUsecase_UploadDocument_Success(t *testing.T) {
	kycRepo := new(MockKycRepo)
	userRepo := new(MockUserRepo)
	store := new(MockDocumentStore)
	uc := NewKycUsecase(kycRepo, userRepo, store)

	userID := utils.GenerateUUIDv7()
	data := []byte("fake-image-bytes")

	kycRepo.On("HasActiveDocument", mock.Anything, userID, entities.DocumentTypePAN).Return(false, nil)
	store.On("Upload", mock.Anything, mock.AnythingOfType("string"), "image/jpeg", data).Return(nil)
	kycRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.KycDocument")).Return(nil)
	userRepo.On("GetByID", mock.Anything, userID).
		Return(&entities.User{ID: userID, KYCStatus: entities.KYCNotSubmitted}, nil)
	userRepo.On("UpdateProfile", mock.Anything, userID, map[string]interface{}{"kyc_status": "PENDING"}).Return(nil)

	doc, err := uc.UploadDocument(context.Background(), userID, panUploadInput(), "image/jpeg", "jpg", data)
	require.NoError(t, err)
	assert.Equal(t, entities.VerificationPending, doc.VerificationStatus)
	assert.True(t, strings.HasPrefix(doc.StorageKey, userID.String()+"/PAN_"))
	assert.True(t, strings.HasSuffix(doc.StorageKey, ".jpg"))
	userRepo.AssertExpectations(t)
}

func TestKycUsecase_UploadDocument_DuplicateActiveDocument(t *testing.T) {
	kycRepo := new(MockKycRepo)
	store := new(MockDocumentStore)
	uc := NewKycUsecase(kycRepo, new(MockUserRepo), store)

	userID := utils.GenerateUUIDv7()
	kycRepo.On("HasActiveDocument", mock.Anything, userID, entities.DocumentTypePAN).Return(true, nil)

	_, err := uc.UploadDocument(context.Background(), userID, panUploadInput(), "image/jpeg", "jpg", []byte("x"))
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Code)
	assert.Equal(t, "Document of this type already exists and is pending or verified", appErr.Message)
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestKycUsecase_UploadDocument_InsertFailureCleansUpObject(t *testing.T) {
	kycRepo := new(MockKycRepo)
	store := new(MockDocumentStore)
	uc := NewKycUsecase(kycRepo, new(MockUserRepo), store)

	userID := utils.GenerateUUIDv7()
	insertErr := errors.New("db down")

	kycRepo.On("HasActiveDocument", mock.Anything, userID, entities.DocumentTypePAN).Return(false, nil)
	store.On("Upload", mock.Anything, mock.AnythingOfType("string"), "application/pdf", mock.Anything).Return(nil)
	kycRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.KycDocument")).Return(insertErr)
	store.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	_, err := uc.UploadDocument(context.Background(), userID, panUploadInput(), "application/pdf", "pdf", []byte("x"))
	require.ErrorIs(t, err, insertErr)
	store.AssertCalled(t, "Delete", mock.Anything, mock.AnythingOfType("string"))
}

func TestKycUsecase_UploadDocument_VerifiedUserKeepsStatus(t *testing.T) {
	kycRepo := new(MockKycRepo)
	userRepo := new(MockUserRepo)
	store := new(MockDocumentStore)
	uc := NewKycUsecase(kycRepo, userRepo, store)

	userID := utils.GenerateUUIDv7()

	kycRepo.On("HasActiveDocument", mock.Anything, userID, entities.DocumentTypeAadhaar).Return(false, nil)
	store.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	kycRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	userRepo.On("GetByID", mock.Anything, userID).
		Return(&entities.User{ID: userID, KYCStatus: entities.KYCVerified}, nil)

	input := &entities.UploadDocumentInput{DocumentType: "AADHAAR", DocumentNumber: "123412341234"}
	_, err := uc.UploadDocument(context.Background(), userID, input, "image/png", "png", []byte("x"))
	require.NoError(t, err)
	userRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestKycUsecase_GetStatus_AttachesPresignedURLs(t *testing.T) {
	kycRepo := new(MockKycRepo)
	userRepo := new(MockUserRepo)
	store := new(MockDocumentStore)
	uc := NewKycUsecase(kycRepo, userRepo, store)

	userID := utils.GenerateUUIDv7()
	docs := []*entities.KycDocument{
		{UserID: userID, DocumentType: entities.DocumentTypePAN, StorageKey: userID.String() + "/PAN_1.jpg"},
	}

	userRepo.On("GetByID", mock.Anything, userID).
		Return(&entities.User{ID: userID, KYCStatus: entities.KYCPending}, nil)
	kycRepo.On("ListByUser", mock.Anything, userID).Return(docs, nil)
	store.On("PresignURL", mock.Anything, docs[0].StorageKey, presignTTL).
		Return("https://bucket.example/signed", nil)

	status, err := uc.GetStatus(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, entities.KYCPending, status.OverallStatus)
	require.Len(t, status.Documents, 1)
	assert.Equal(t, "https://bucket.example/signed", status.Documents[0].DocumentURL)
}

func TestKycUsecase_GetStatus_PresignFailureDoesNotFail(t *testing.T) {
	kycRepo := new(MockKycRepo)
	userRepo := new(MockUserRepo)
	store := new(MockDocumentStore)
	uc := NewKycUsecase(kycRepo, userRepo, store)

	userID := utils.GenerateUUIDv7()
	docs := []*entities.KycDocument{
		{UserID: userID, DocumentType: entities.DocumentTypePAN, StorageKey: "k"},
	}

	userRepo.On("GetByID", mock.Anything, userID).
		Return(&entities.User{ID: userID, KYCStatus: entities.KYCPending}, nil)
	kycRepo.On("ListByUser", mock.Anything, userID).Return(docs, nil)
	store.On("PresignURL", mock.Anything, "k", presignTTL).Return("", errors.New("s3 unreachable"))

	status, err := uc.GetStatus(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, status.Documents[0].DocumentURL)
}
