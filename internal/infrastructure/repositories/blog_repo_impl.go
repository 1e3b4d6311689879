package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"investgrow.backend/internal/domain/entities"
	domainerrors "investgrow.backend/internal/domain/errors"
	"investgrow.backend/internal/infrastructure/models"
	"investgrow.backend/pkg/utils"
)

// BlogRepository implements blog post data operations
type BlogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

// ListPublished returns a page of PUBLISHED posts plus the total count.
// Search matches title or content case-insensitively.
func (r *BlogRepository) ListPublished(ctx context.Context, filter *entities.PostFilter) ([]*entities.BlogPost, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("status = ?", string(entities.PostPublished))

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params := utils.GetPaginationParams(filter.Page, filter.Limit)
	var postModels []models.BlogPost
	err := query.
		Order("published_at DESC").
		Offset(params.CalculateOffset()).
		Limit(params.Limit).
		Find(&postModels).Error
	if err != nil {
		return nil, 0, err
	}

	posts := make([]*entities.BlogPost, 0, len(postModels))
	for i := range postModels {
		posts = append(posts, blogPostToEntity(&postModels[i]))
	}
	return posts, total, nil
}

// GetPublishedBySlug returns the post only when it exists and is PUBLISHED
func (r *BlogRepository) GetPublishedBySlug(ctx context.Context, slug string) (*entities.BlogPost, error) {
	var m models.BlogPost
	err := r.db.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, string(entities.PostPublished)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return blogPostToEntity(&m), nil
}

func blogPostToEntity(m *models.BlogPost) *entities.BlogPost {
	return &entities.BlogPost{
		ID:               m.ID,
		Title:            m.Title,
		Slug:             m.Slug,
		Excerpt:          null.StringFromPtr(m.Excerpt),
		Content:          m.Content,
		FeaturedImageURL: null.StringFromPtr(m.FeaturedImageURL),
		Category:         null.StringFromPtr(m.Category),
		Tags:             null.StringFromPtr(m.Tags),
		ReadTimeMinutes:  m.ReadTimeMinutes,
		Status:           entities.PostStatus(m.Status),
		ViewsCount:       m.ViewsCount,
		PublishedAt:      m.PublishedAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}
