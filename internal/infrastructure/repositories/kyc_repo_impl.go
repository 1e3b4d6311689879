package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"investgrow.backend/internal/domain/entities"
	"investgrow.backend/internal/infrastructure/models"
	"investgrow.backend/pkg/utils"
)

// KycRepository implements KYC document data operations
type KycRepository struct {
	db *gorm.DB
}

// NewKycRepository creates a new KYC repository
func NewKycRepository(db *gorm.DB) *KycRepository {
	return &KycRepository{db: db}
}

// Create inserts a new document row
func (r *KycRepository) Create(ctx context.Context, doc *entities.KycDocument) error {
	if doc.ID == uuid.Nil {
		doc.ID = utils.GenerateUUIDv7()
	}
	m := &models.KycDocument{
		ID:                 doc.ID,
		UserID:             doc.UserID,
		DocumentType:       string(doc.DocumentType),
		DocumentNumber:     doc.DocumentNumber,
		StorageKey:         doc.StorageKey,
		VerificationStatus: string(doc.VerificationStatus),
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	doc.CreatedAt = m.CreatedAt
	return nil
}

// ListByUser returns all of a user's documents, newest first
func (r *KycRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.KycDocument, error) {
	var docModels []models.KycDocument
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&docModels).Error
	if err != nil {
		return nil, err
	}

	docs := make([]*entities.KycDocument, 0, len(docModels))
	for i := range docModels {
		docs = append(docs, kycDocToEntity(&docModels[i]))
	}
	return docs, nil
}

// HasActiveDocument reports whether the user already has a PENDING or
// VERIFIED document of the given type.
func (r *KycRepository) HasActiveDocument(ctx context.Context, userID uuid.UUID, docType entities.DocumentType) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.KycDocument{}).
		Where("user_id = ? AND document_type = ? AND verification_status IN ?",
			userID, string(docType), []string{string(entities.VerificationPending), string(entities.VerificationVerified)}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func kycDocToEntity(m *models.KycDocument) *entities.KycDocument {
	return &entities.KycDocument{
		ID:                 m.ID,
		UserID:             m.UserID,
		DocumentType:       entities.DocumentType(m.DocumentType),
		DocumentNumber:     m.DocumentNumber,
		StorageKey:         m.StorageKey,
		VerificationStatus: entities.VerificationStatus(m.VerificationStatus),
		CreatedAt:          m.CreatedAt,
	}
}
