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

// EngagementHandler handles engagement HTTP requests
type EngagementHandler struct {
	service service.EngagementService
}

// NewEngagementHandler creates a new EngagementHandler
func NewEngagementHandler(service service.EngagementService) *EngagementHandler {
	return &EngagementHandler{service: service}
}

type toggleRequest struct {
	Current domain.EngagementState `json:"current"`
}

type quoteRequest struct {
	Quote   string                 `json:"quote"`
	Current domain.EngagementState `json:"current"`
}

// GetEngagement handles GET /posts/:id/engagement
// @Summary Load a post's engagement counts and the viewer's flags
// @Tags engagement
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} common.APIResponse{data=domain.EngagementState}
// @Router /posts/{id}/engagement [get]
func (h *EngagementHandler) GetEngagement(c *gin.Context) {
	postID, err := domain.ParsePostID(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID", err)
		return
	}

	viewerID := middleware.GetViewerID(c)
	state, err := h.service.Load(c.Request.Context(), postID, viewerID)
	if err != nil {
		if errors.Is(err, common.ErrPostNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Post not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load engagement", err)
		return
	}

	common.SuccessResponse(c, state, nil)
}

// ToggleEngagement handles POST /posts/:id/engagement/:kind
// @Summary Toggle a like/save/repost edge for the signed-in viewer
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param kind path string true "like | save | repost"
// @Success 200 {object} common.APIResponse{data=domain.EngagementState}
// @Router /posts/{id}/engagement/{kind} [post]
func (h *EngagementHandler) ToggleEngagement(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)
	if viewerID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "Sign in to interact", nil)
		return
	}

	postID, err := domain.ParsePostID(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID", err)
		return
	}

	kind := domain.EngagementKind(c.Param("kind"))
	if !kind.Valid() {
		common.ErrorResponse(c, http.StatusBadRequest, "Unknown engagement kind", nil)
		return
	}

	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	state, err := h.service.Toggle(c.Request.Context(), kind, postID, viewerID, req.Current)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrEngagementBusy):
			common.ErrorResponse(c, http.StatusConflict, "Toggle already in flight", err)
		case errors.Is(err, common.ErrSignInRequired):
			common.ErrorResponse(c, http.StatusUnauthorized, "Sign in to interact", err)
		default:
			common.ErrorResponse(c, http.StatusBadGateway, "Could not complete action", err)
		}
		return
	}

	common.SuccessResponse(c, state, nil)
}

// SubmitQuoteRepost handles POST /posts/:id/quote
// @Summary Quote-repost a post (upserts the viewer's repost edge)
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} common.APIResponse{data=domain.EngagementState}
// @Router /posts/{id}/quote [post]
func (h *EngagementHandler) SubmitQuoteRepost(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)
	if viewerID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "Sign in to interact", nil)
		return
	}

	postID, err := domain.ParsePostID(c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid post ID", err)
		return
	}

	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	state, err := h.service.SubmitQuoteRepost(c.Request.Context(), postID, viewerID, req.Quote, req.Current)
	if err != nil {
		if errors.Is(err, common.ErrEmptyQuote) {
			common.ErrorResponse(c, http.StatusBadRequest, "Write a comment to quote", err)
			return
		}
		common.ErrorResponse(c, http.StatusBadGateway, "Could not quote-repost", err)
		return
	}

	common.SuccessResponse(c, state, nil)
}
