package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openvoice/openvoice-backend/internal/common"
	"github.com/openvoice/openvoice-backend/internal/middleware"
	"github.com/openvoice/openvoice-backend/internal/service"
)

// AuthHandler exposes the current-viewer lookup. Token issuance belongs to
// the identity provider; this service only verifies.
type AuthHandler struct {
	profiles service.ProfileService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(profiles service.ProfileService) *AuthHandler {
	return &AuthHandler{profiles: profiles}
}

// GetCurrentUser handles GET /auth/me
// @Summary The verified viewer identity and profile
// @Tags auth
// @Produce json
// @Success 200 {object} common.APIResponse{data=domain.Profile}
// @Router /auth/me [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)
	if viewerID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "Sign in required", nil)
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), viewerID)
	if err != nil {
		common.ErrorResponse(c, http.StatusNotFound, "Profile not found", err)
		return
	}

	common.SuccessResponse(c, profile, nil)
}
