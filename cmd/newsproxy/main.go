// News proxy: a single pass-through route that keeps the upstream API key
// out of the client.
package main

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/openvoice/openvoice-backend/internal/config"
	"github.com/openvoice/openvoice-backend/internal/handler"
	"github.com/openvoice/openvoice-backend/internal/middleware"
	pkglogger "github.com/openvoice/openvoice-backend/pkg/logger"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	pkglogger.InitStructured(cfg.Env)
	log := pkglogger.GetLogger()

	if cfg.News.APIKey == "" {
		log.Warn().Msg("NEWS_API_KEY is not set; /news will answer 503")
	}

	if cfg.Env != "development" && cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(middleware.RequestLogger())

	newsHandler := handler.NewNewsProxyHandler(cfg.News.UpstreamURL, cfg.News.APIKey)
	router.GET("/news", newsHandler.GetNews)

	addr := fmt.Sprintf(":%d", cfg.News.ProxyPort)
	log.Info().Str("addr", addr).Msg("starting news proxy")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
