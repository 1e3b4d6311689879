package usecases

import (
	"context"
	"errors"

	"investgrow.backend/internal/domain/entities"
	domainerrors "investgrow.backend/internal/domain/errors"
	"investgrow.backend/internal/domain/repositories"
	"investgrow.backend/pkg/utils"
)

// BlogUsecase serves published content
type BlogUsecase struct {
	blogRepo repositories.BlogRepository
}

// NewBlogUsecase creates a new blog usecase
func NewBlogUsecase(blogRepo repositories.BlogRepository) *BlogUsecase {
	return &BlogUsecase{blogRepo: blogRepo}
}

// GetPosts lists published posts as summaries, newest published first.
func (u *BlogUsecase) GetPosts(ctx context.Context, filter *entities.PostFilter) ([]*entities.BlogPostSummary, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(filter.Page, filter.Limit)
	filter.Page = params.Page
	filter.Limit = params.Limit

	posts, total, err := u.blogRepo.ListPublished(ctx, filter)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	summaries := make([]*entities.BlogPostSummary, 0, len(posts))
	for _, post := range posts {
		summaries = append(summaries, post.Summary())
	}
	return summaries, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// GetPostBySlug returns the full post. Draft and missing slugs are
// indistinguishable to callers.
func (u *BlogUsecase) GetPostBySlug(ctx context.Context, slug string) (*entities.BlogPost, error) {
	post, err := u.blogRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("Post not found")
		}
		return nil, err
	}
	return post, nil
}
