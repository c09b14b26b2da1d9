package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/openvoice/openvoice-backend/internal/handler"
	"github.com/openvoice/openvoice-backend/internal/middleware"
	"github.com/openvoice/openvoice-backend/pkg/jwt"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	postHandler *handler.PostHandler,
	engagementHandler *handler.EngagementHandler,
	feedHandler *handler.FeedHandler,
	profileHandler *handler.ProfileHandler,
	followHandler *handler.FollowHandler,
	blockHandler *handler.BlockHandler,
	trendingHandler *handler.TrendingHandler,
	authHandler *handler.AuthHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api/v1")

	// Current viewer
	auth := api.Group("/auth")
	auth.GET("/me", middleware.JWTAuth(jwtManager), authHandler.GetCurrentUser)

	// Posts and engagement
	posts := api.Group("/posts")
	{
		posts.POST("", middleware.JWTAuth(jwtManager), postHandler.CreatePost)
		posts.GET("/:id", postHandler.GetPost)
		posts.DELETE("/:id", middleware.JWTAuth(jwtManager), postHandler.DeletePost)

		posts.GET("/:id/engagement", middleware.OptionalJWTAuth(jwtManager), engagementHandler.GetEngagement)
		posts.POST("/:id/engagement/:kind", middleware.JWTAuth(jwtManager), engagementHandler.ToggleEngagement)
		posts.POST("/:id/quote", middleware.JWTAuth(jwtManager), engagementHandler.SubmitQuoteRepost)
	}

	// Feeds
	feeds := api.Group("/feeds")
	{
		feeds.GET("/home", feedHandler.GetHomeFeed)
		feeds.GET("/topic", feedHandler.GetTopicFeed)
		feeds.GET("/saved", middleware.JWTAuth(jwtManager), feedHandler.GetSavedFeed)
	}

	// Profiles, follows, blocks
	profiles := api.Group("/profiles")
	{
		profiles.GET("/username/:username", profileHandler.GetProfileByUsername)
		profiles.PUT("/me", middleware.JWTAuth(jwtManager), profileHandler.UpdateMyProfile)
		profiles.GET("/:id", profileHandler.GetProfile)
		profiles.GET("/:id/posts", postHandler.ListByAuthor)
		profiles.GET("/:id/follow-stats", middleware.OptionalJWTAuth(jwtManager), followHandler.GetStats)
		profiles.POST("/:id/follow", middleware.JWTAuth(jwtManager), followHandler.Follow)
		profiles.DELETE("/:id/follow", middleware.JWTAuth(jwtManager), followHandler.Unfollow)
		profiles.POST("/:id/block", middleware.JWTAuth(jwtManager), blockHandler.Block)
		profiles.DELETE("/:id/block", middleware.JWTAuth(jwtManager), blockHandler.Unblock)
	}

	api.GET("/blocks", middleware.JWTAuth(jwtManager), blockHandler.ListBlocked)

	// Trending
	trending := api.Group("/trending")
	trending.GET("/topics", trendingHandler.GetTopics)
}
