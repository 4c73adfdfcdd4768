package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"counselling-site/internal/service"
)

// BlogHandler holds dependencies for the admin blog generation endpoint.
type BlogHandler struct {
	logger  *zap.Logger
	blogSvc *service.BlogService
}

// NewBlogHandler creates a BlogHandler with its dependencies.
func NewBlogHandler(logger *zap.Logger, blogSvc *service.BlogService) *BlogHandler {
	return &BlogHandler{
		logger:  logger,
		blogSvc: blogSvc,
	}
}

// GenerateBlog handles POST /blog-generation.
func (h *BlogHandler) GenerateBlog(c *gin.Context) {
	var req struct {
		SeedIdea string `json:"seedIdea"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid blog request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a seed idea for the blog post"})
		return
	}

	post, err := h.blogSvc.Generate(c.Request.Context(), req.SeedIdea)
	if err != nil {
		if errors.Is(err, service.ErrEmptySeedIdea) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a seed idea for the blog post"})
			return
		}
		h.logger.Error("blog generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate blog content"})
		return
	}

	c.JSON(http.StatusOK, post)
}
