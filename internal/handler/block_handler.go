package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openvoice/openvoice-backend/internal/common"
	"github.com/openvoice/openvoice-backend/internal/middleware"
	"github.com/openvoice/openvoice-backend/internal/service"
)

// BlockHandler handles block HTTP requests
type BlockHandler struct {
	service service.BlockService
}

// NewBlockHandler creates a new BlockHandler
func NewBlockHandler(service service.BlockService) *BlockHandler {
	return &BlockHandler{service: service}
}

// Block handles POST /profiles/:id/block
// @Summary Block a member
// @Tags block
// @Produce json
// @Param id path string true "Profile ID"
// @Success 204
// @Router /profiles/{id}/block [post]
func (h *BlockHandler) Block(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)
	if viewerID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "Sign in required", nil)
		return
	}

	if err := h.service.Block(c.Request.Context(), viewerID, c.Param("id")); err != nil {
		if errors.Is(err, common.ErrSelfBlock) {
			common.ErrorResponse(c, http.StatusBadRequest, "Cannot block yourself", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to block", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Unblock handles DELETE /profiles/:id/block
// @Summary Unblock a member
// @Tags block
// @Produce json
// @Param id path string true "Profile ID"
// @Success 204
// @Router /profiles/{id}/block [delete]
func (h *BlockHandler) Unblock(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)
	if viewerID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "Sign in required", nil)
		return
	}

	if err := h.service.Unblock(c.Request.Context(), viewerID, c.Param("id")); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Block record not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to unblock", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListBlocked handles GET /blocks
// @Summary The viewer's block list
// @Tags block
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.BlockResponse}
// @Router /blocks [get]
func (h *BlockHandler) ListBlocked(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)
	if viewerID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "Sign in required", nil)
		return
	}

	blocks, err := h.service.ListBlocked(c.Request.Context(), viewerID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load block list", err)
		return
	}

	common.SuccessResponse(c, blocks, nil)
}
