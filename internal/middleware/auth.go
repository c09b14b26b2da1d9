package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/openvoice/openvoice-backend/internal/common"
	"github.com/openvoice/openvoice-backend/pkg/jwt"
)

// JWTAuth requires a valid viewer token
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifyBearer(c, jwtManager)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, 401, "Token expired", err)
			} else {
				common.ErrorResponse(c, 401, "Invalid or missing token", err)
			}
			c.Abort()
			return
		}

		c.Set("viewerID", claims.ViewerID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// OptionalJWTAuth extracts the viewer when a valid token is present but
// lets anonymous requests through. Per-viewer engagement flags simply stay
// false without an identity.
func OptionalJWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifyBearer(c, jwtManager)
		if err == nil {
			c.Set("viewerID", claims.ViewerID)
			c.Set("username", claims.Username)
		}
		c.Next()
	}
}

func verifyBearer(c *gin.Context, jwtManager *jwt.Manager) (*jwt.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, common.ErrUnauthorized
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, common.ErrInvalidToken
	}

	return jwtManager.VerifyToken(parts[1])
}

// GetViewerID extracts the viewer identity from context
func GetViewerID(c *gin.Context) string {
	viewerID, exists := c.Get("viewerID")
	if !exists {
		return ""
	}
	if str, ok := viewerID.(string); ok {
		return str
	}
	return ""
}

// GetUsername extracts the viewer's username from context
func GetUsername(c *gin.Context) string {
	username, exists := c.Get("username")
	if !exists {
		return ""
	}
	if str, ok := username.(string); ok {
		return str
	}
	return ""
}
