package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// PostStatus represents blog post publication state
type PostStatus string

const (
	PostDraft     PostStatus = "DRAFT"
	PostPublished PostStatus = "PUBLISHED"
)

// BlogPost is a content entity. Only PUBLISHED posts are externally
// visible.
type BlogPost struct {
	ID               uuid.UUID   `json:"id"`
	Title            string      `json:"title"`
	Slug             string      `json:"slug"`
	Excerpt          null.String `json:"excerpt,omitempty"`
	Content          string      `json:"content"`
	FeaturedImageURL null.String `json:"featuredImageUrl,omitempty"`
	Category         null.String `json:"category,omitempty"`
	Tags             null.String `json:"tags,omitempty"`
	ReadTimeMinutes  int         `json:"readTimeMinutes"`
	Status           PostStatus  `json:"status"`
	ViewsCount       int64       `json:"viewsCount"`
	PublishedAt      *time.Time  `json:"publishedAt,omitempty"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

// BlogPostSummary is the restricted listing projection; it excludes the
// full body.
type BlogPostSummary struct {
	ID               uuid.UUID   `json:"id"`
	Title            string      `json:"title"`
	Slug             string      `json:"slug"`
	Excerpt          null.String `json:"excerpt,omitempty"`
	FeaturedImageURL null.String `json:"featuredImageUrl,omitempty"`
	Category         null.String `json:"category,omitempty"`
	Tags             null.String `json:"tags,omitempty"`
	ReadTimeMinutes  int         `json:"readTimeMinutes"`
	ViewsCount       int64       `json:"viewsCount"`
	PublishedAt      *time.Time  `json:"publishedAt,omitempty"`
}

// Summary returns the listing projection of the post.
func (p *BlogPost) Summary() *BlogPostSummary {
	return &BlogPostSummary{
		ID:               p.ID,
		Title:            p.Title,
		Slug:             p.Slug,
		Excerpt:          p.Excerpt,
		FeaturedImageURL: p.FeaturedImageURL,
		Category:         p.Category,
		Tags:             p.Tags,
		ReadTimeMinutes:  p.ReadTimeMinutes,
		ViewsCount:       p.ViewsCount,
		PublishedAt:      p.PublishedAt,
	}
}

// PostFilter holds blog listing filters. Search matches title or content
// case-insensitively.
type PostFilter struct {
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
	Category string `form:"category"`
	Search   string `form:"search"`
}
