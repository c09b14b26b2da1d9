// OpenVoice API server: posts, engagement, feeds, profiles, follows,
// blocks and trending topics.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	_ "github.com/openvoice/openvoice-backend/docs"
	"github.com/openvoice/openvoice-backend/internal/config"
	"github.com/openvoice/openvoice-backend/internal/domain"
	"github.com/openvoice/openvoice-backend/internal/handler"
	"github.com/openvoice/openvoice-backend/internal/middleware"
	"github.com/openvoice/openvoice-backend/internal/repository"
	"github.com/openvoice/openvoice-backend/internal/routes"
	"github.com/openvoice/openvoice-backend/internal/service"
	pkgcache "github.com/openvoice/openvoice-backend/pkg/cache"
	"github.com/openvoice/openvoice-backend/pkg/jwt"
	pkglogger "github.com/openvoice/openvoice-backend/pkg/logger"
	"github.com/openvoice/openvoice-backend/pkg/news"
	pkgredis "github.com/openvoice/openvoice-backend/pkg/redis"
)

// @title OpenVoice API
// @version 1.0
// @description Social feed backend: posts, engagement edges, merged news feeds.
// @BasePath /api/v1
func main() {
	config.LoadDotEnv()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	pkglogger.InitStructured(cfg.Env)
	log := pkglogger.GetLogger()

	// Database
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := db.AutoMigrate(
		&domain.Profile{},
		&domain.Post{},
		&domain.Like{},
		&domain.Save{},
		&domain.Repost{},
		&domain.Follow{},
		&domain.BlockedUser{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Redis is optional: trending counters and the profile cache degrade
	// gracefully without it
	var cacheSvc pkgcache.Service
	redisClient, err := pkgredis.NewClient(cfg.Redis.Host, cfg.Redis.Port,
		cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, continuing without cache")
		cacheSvc = pkgcache.NewService(nil)
	} else {
		cacheSvc = pkgcache.NewService(redisClient)
	}

	jwtManager := jwt.NewManager(cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	newsClient := news.NewClient(cfg.News.GatewayURL, 10*time.Second)

	// Repositories
	postRepo := repository.NewPostRepository(db)
	engagementRepo := repository.NewEngagementRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	followRepo := repository.NewFollowRepository(db)
	blockRepo := repository.NewBlockRepository(db)

	// Services
	trendingSvc := service.NewTrendingService(cacheSvc)
	postSvc := service.NewPostService(postRepo, trendingSvc)
	engagementSvc := service.NewEngagementService(engagementRepo)
	feedSvc := service.NewFeedService(postRepo, engagementRepo, newsClient)
	profileSvc := service.NewProfileService(profileRepo, cacheSvc)
	followSvc := service.NewFollowService(followRepo)
	blockSvc := service.NewBlockService(blockRepo)

	// Handlers
	postHandler := handler.NewPostHandler(postSvc)
	engagementHandler := handler.NewEngagementHandler(engagementSvc)
	feedHandler := handler.NewFeedHandler(feedSvc)
	profileHandler := handler.NewProfileHandler(profileSvc)
	followHandler := handler.NewFollowHandler(followSvc)
	blockHandler := handler.NewBlockHandler(blockSvc)
	trendingHandler := handler.NewTrendingHandler(trendingSvc)
	authHandler := handler.NewAuthHandler(profileSvc)

	if cfg.Env != "development" && cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowOrigins != "" {
		corsConfig.AllowOrigins = splitAndTrim(cfg.CORS.AllowOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Setup(router,
		postHandler, engagementHandler, feedHandler, profileHandler,
		followHandler, blockHandler, trendingHandler, authHandler,
		jwtManager)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting api server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
