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

// ProfileHandler handles profile HTTP requests
type ProfileHandler struct {
	service service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(service service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetProfile handles GET /profiles/:id
// @Summary Fetch a profile by identity ID
// @Tags profile
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} common.APIResponse{data=domain.Profile}
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.service.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		common.ErrorResponse(c, http.StatusNotFound, "Profile not found", err)
		return
	}

	common.SuccessResponse(c, profile, nil)
}

// GetProfileByUsername handles GET /profiles/username/:username
// @Summary Fetch a profile by username
// @Tags profile
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} common.APIResponse{data=domain.Profile}
// @Router /profiles/username/{username} [get]
func (h *ProfileHandler) GetProfileByUsername(c *gin.Context) {
	profile, err := h.service.GetProfileByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		common.ErrorResponse(c, http.StatusNotFound, "Profile not found", err)
		return
	}

	common.SuccessResponse(c, profile, nil)
}

// UpdateMyProfile handles PUT /profiles/me
// @Summary Update the signed-in viewer's profile
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} common.APIResponse{data=domain.Profile}
// @Router /profiles/me [put]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)
	if viewerID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "Sign in required", nil)
		return
	}

	var req domain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), viewerID, viewerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidInput):
			common.ErrorResponse(c, http.StatusBadRequest, "Nothing to update", err)
		case errors.Is(err, common.ErrProfileNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Profile not found", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update profile", err)
		}
		return
	}

	common.SuccessResponse(c, profile, nil)
}
