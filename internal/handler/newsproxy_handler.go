package handler

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openvoice/openvoice-backend/pkg/logger"
)

// NewsProxyHandler forwards news searches to the upstream provider while
// keeping the API key server-side. One route, no caching, no retries:
// every call is a fresh upstream request.
type NewsProxyHandler struct {
	upstreamURL string
	apiKey      string
	client      *http.Client
}

// NewNewsProxyHandler creates a new NewsProxyHandler
func NewNewsProxyHandler(upstreamURL, apiKey string) *NewsProxyHandler {
	return &NewsProxyHandler{
		upstreamURL: upstreamURL,
		apiKey:      apiKey,
		client:      &http.Client{Timeout: 15 * time.Second},
	}
}

// GetNews handles GET /news
// @Summary Proxy a news search to the upstream provider
// @Tags news
// @Produce json
// @Param query query string false "Search string"
// @Success 200 {object} map[string]interface{}
// @Router /news [get]
func (h *NewsProxyHandler) GetNews(c *gin.Context) {
	// A missing key must fail loudly, never return silently empty results
	if h.apiKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "News API key not configured"})
		return
	}

	params := url.Values{}
	params.Set("apikey", h.apiKey)
	params.Set("language", "en")
	params.Set("category", "top")
	params.Set("size", "20")
	if query := c.Query("query"); query != "" {
		params.Set("q", query)
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet,
		h.upstreamURL+"?"+params.Encode(), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		logger.GetLogger().Error().Err(err).Msg("news upstream unreachable")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(resp.StatusCode, gin.H{"error": "Failed to fetch news"})
		return
	}

	// Pass the upstream payload through unmodified
	c.DataFromReader(http.StatusOK, resp.ContentLength, "application/json", resp.Body, nil)
}
