package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"investgrow.backend/internal/domain/entities"
	domainerrors "investgrow.backend/internal/domain/errors"
	"investgrow.backend/internal/interfaces/http/response"
	"investgrow.backend/internal/usecases"
)

// BlogHandler handles public blog endpoints
type BlogHandler struct {
	blogUsecase *usecases.BlogUsecase
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogUsecase *usecases.BlogUsecase) *BlogHandler {
	return &BlogHandler{blogUsecase: blogUsecase}
}

// GetPosts lists published posts
// GET /api/v1/blog/posts
func (h *BlogHandler) GetPosts(c *gin.Context) {
	var filter entities.PostFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	posts, meta, err := h.blogUsecase.GetPosts(c.Request.Context(), &filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"posts":      posts,
		"pagination": meta,
	})
}

// GetPostBySlug returns the full post
// GET /api/v1/blog/posts/:slug
func (h *BlogHandler) GetPostBySlug(c *gin.Context) {
	post, err := h.blogUsecase.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}
