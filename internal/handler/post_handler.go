package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openvoice/openvoice-backend/internal/common"
	"github.com/openvoice/openvoice-backend/internal/domain"
	"github.com/openvoice/openvoice-backend/internal/middleware"
	"github.com/openvoice/openvoice-backend/internal/service"
)

// PostHandler handles post HTTP requests
type PostHandler struct {
	service service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// CreatePost handles POST /posts
// @Summary Publish a post from the composer
// @Tags post
// @Accept json
// @Produce json
// @Success 201 {object} common.APIResponse{data=domain.Post}
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)
	if viewerID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "Sign in required", nil)
		return
	}

	var req domain.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	post, err := h.service.CreatePost(c.Request.Context(), &req, viewerID)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidInput):
			common.ErrorResponse(c, http.StatusBadRequest, "Write something first", err)
			return
		case errors.Is(err, common.ErrBlockedLink):
			common.ErrorResponse(c, http.StatusBadRequest, "Blocked link in content", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create post", err)
		return
	}

	c.JSON(http.StatusCreated, common.APIResponse{Data: post})
}

// GetPost handles GET /posts/:id
// @Summary Fetch a single post
// @Tags post
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} common.APIResponse{data=domain.Post}
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID, err := domain.ParsePostID(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID", err)
		return
	}

	post, err := h.service.GetPost(c.Request.Context(), postID)
	if err != nil {
		common.ErrorResponse(c, http.StatusNotFound, "Post not found", err)
		return
	}

	common.SuccessResponse(c, post, nil)
}

// ListByAuthor handles GET /profiles/:id/posts
// @Summary A member's posts, newest first
// @Tags post
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} common.APIResponse{data=[]domain.PostResponse}
// @Router /profiles/{id}/posts [get]
func (h *PostHandler) ListByAuthor(c *gin.Context) {
	posts, err := h.service.ListByAuthor(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load posts", err)
		return
	}

	common.SuccessResponse(c, posts, nil)
}

// DeletePost handles DELETE /posts/:id
// @Summary Delete a post (owner only)
// @Tags post
// @Produce json
// @Param id path string true "Post ID"
// @Success 204
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)
	if viewerID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "Sign in required", nil)
		return
	}

	postID, err := domain.ParsePostID(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID", err)
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), postID, viewerID); err != nil {
		switch {
		case errors.Is(err, common.ErrPostNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Post not found", err)
		case errors.Is(err, common.ErrForbidden):
			common.ErrorResponse(c, http.StatusForbidden, "Only the owner can delete this post", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete post", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
