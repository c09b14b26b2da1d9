package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openvoice/openvoice-backend/internal/common"
	"github.com/openvoice/openvoice-backend/internal/service"
	"github.com/openvoice/openvoice-backend/pkg/ginutil"
)

// TrendingHandler handles trending topic HTTP requests
type TrendingHandler struct {
	service service.TrendingService
}

// NewTrendingHandler creates a new TrendingHandler
func NewTrendingHandler(service service.TrendingService) *TrendingHandler {
	return &TrendingHandler{service: service}
}

// GetTopics handles GET /trending/topics
// @Summary Most mentioned hashtags, best first
// @Tags trending
// @Produce json
// @Param limit query int false "Max topics (default 10)"
// @Success 200 {object} common.APIResponse{data=[]cache.TopicCount}
// @Router /trending/topics [get]
func (h *TrendingHandler) GetTopics(c *gin.Context) {
	limit := ginutil.QueryInt(c, "limit", 10)
	if limit <= 0 {
		limit = 10
	}

	topics, err := h.service.TopTopics(c.Request.Context(), limit)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load trending topics", err)
		return
	}

	common.SuccessResponse(c, topics, nil)
}
