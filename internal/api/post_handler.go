package api

import (
	"errors"
	"net/http"

	"github.com/ai-blog-api/internal/models"
	"github.com/ai-blog-api/internal/service"
	"github.com/ai-blog-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PostHandler handles blog post endpoints
type PostHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(services *service.Services, log zerolog.Logger) *PostHandler {
	return &PostHandler{
		services: services,
		log:      log.With().Str("handler", "post").Logger(),
	}
}

// ListPosts handles GET /api/posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	ctx := c.Request.Context()

	posts, err := h.services.Post.List(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list posts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch posts"})
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost handles GET /api/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	post, err := h.services.Post.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		h.log.Error().Err(err).Str("post_id", id).Msg("Failed to fetch post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost handles POST /api/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}

	post, err := h.services.Post.Create(ctx, req.Topic)
	if err != nil {
		if errors.Is(err, service.ErrTopicRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
			return
		}
		h.log.Error().Err(err).Str("topic", req.Topic).Msg("Failed to create post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// DeletePost handles DELETE /api/posts/:id.
// Deleting an id that does not exist still returns 204.
func (h *PostHandler) DeletePost(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.services.Post.Delete(ctx, id); err != nil {
		h.log.Error().Err(err).Str("post_id", id).Msg("Failed to delete post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete post"})
		return
	}

	c.Status(http.StatusNoContent)
}
