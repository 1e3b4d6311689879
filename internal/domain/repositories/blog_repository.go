package repositories

import (
	"context"

	"investgrow.backend/internal/domain/entities"
)

// BlogRepository defines blog post data operations
type BlogRepository interface {
	// ListPublished returns a page of PUBLISHED posts matching the filter
	// plus the total count. Search matches title or content
	// case-insensitively.
	ListPublished(ctx context.Context, filter *entities.PostFilter) ([]*entities.BlogPost, int64, error)
	// GetPublishedBySlug returns the post only when it exists and is
	// PUBLISHED.
	GetPublishedBySlug(ctx context.Context, slug string) (*entities.BlogPost, error)
}
