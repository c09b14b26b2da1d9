package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openvoice/openvoice-backend/internal/common"
	"github.com/openvoice/openvoice-backend/internal/middleware"
	"github.com/openvoice/openvoice-backend/internal/service"
	"github.com/openvoice/openvoice-backend/pkg/ginutil"
)

// FeedHandler handles feed HTTP requests
type FeedHandler struct {
	service service.FeedService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(service service.FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

// GetHomeFeed handles GET /feeds/home
// @Summary Home feed, newest posts first
// @Tags feed
// @Produce json
// @Param limit query int false "Max posts (default 50)"
// @Success 200 {object} common.APIResponse{data=[]domain.PostResponse}
// @Router /feeds/home [get]
func (h *FeedHandler) GetHomeFeed(c *gin.Context) {
	limit := ginutil.QueryInt(c, "limit", 0)

	posts, err := h.service.HomeFeed(c.Request.Context(), limit)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load feed", err)
		return
	}

	common.SuccessResponse(c, posts, nil)
}

// GetTopicFeed handles GET /feeds/topic
// @Summary Topic feed: matching posts first, then news items
// @Tags feed
// @Produce json
// @Param topic query string false "Topic to filter by"
// @Success 200 {object} common.APIResponse{data=[]domain.FeedEntry}
// @Router /feeds/topic [get]
func (h *FeedHandler) GetTopicFeed(c *gin.Context) {
	topic := c.Query("topic")

	entries, err := h.service.TopicFeed(c.Request.Context(), topic)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load topic feed", err)
		return
	}

	common.SuccessResponse(c, entries, &common.Meta{Topic: topic})
}

// GetSavedFeed handles GET /feeds/saved
// @Summary The viewer's saved posts, newest first
// @Tags feed
// @Produce json
// @Success 200 {object} common.APIResponse{data=[]domain.PostResponse}
// @Router /feeds/saved [get]
func (h *FeedHandler) GetSavedFeed(c *gin.Context) {
	viewerID := middleware.GetViewerID(c)
	if viewerID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "Sign in required", nil)
		return
	}

	posts, err := h.service.SavedFeed(c.Request.Context(), viewerID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load saved posts", err)
		return
	}

	common.SuccessResponse(c, posts, nil)
}
