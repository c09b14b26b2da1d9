package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openvoice/openvoice-backend/internal/common"
	"github.com/openvoice/openvoice-backend/internal/middleware"
	"github.com/openvoice/openvoice-backend/internal/service"
)

// FollowHandler handles follow HTTP requests
type FollowHandler struct {
	service service.FollowService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(service service.FollowService) *FollowHandler {
	return &FollowHandler{service: service}
}

// Follow handles POST /profiles/:id/follow
// @Summary Follow a member
// @Tags follow
// @Produce json
// @Param id path string true "Profile ID"
// @Success 204
// @Router /profiles/{id}/follow [post]
func (h *FollowHandler) Follow(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)
	if viewerID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "Sign in required", nil)
		return
	}

	if err := h.service.Follow(c.Request.Context(), viewerID, c.Param("id")); err != nil {
		if errors.Is(err, common.ErrSelfFollow) {
			common.ErrorResponse(c, http.StatusBadRequest, "Cannot follow yourself", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to follow", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Unfollow handles DELETE /profiles/:id/follow
// @Summary Unfollow a member
// @Tags follow
// @Produce json
// @Param id path string true "Profile ID"
// @Success 204
// @Router /profiles/{id}/follow [delete]
func (h *FollowHandler) Unfollow(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)
	if viewerID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "Sign in required", nil)
		return
	}

	if err := h.service.Unfollow(c.Request.Context(), viewerID, c.Param("id")); err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to unfollow", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetStats handles GET /profiles/:id/follow-stats
// @Summary Follower/following counts and the viewer's relation
// @Tags follow
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} common.APIResponse{data=domain.FollowStats}
// @Router /profiles/{id}/follow-stats [get]
func (h *FollowHandler) GetStats(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)

	stats, err := h.service.Stats(c.Request.Context(), c.Param("id"), viewerID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load follow stats", err)
		return
	}

	common.SuccessResponse(c, stats, nil)
}
