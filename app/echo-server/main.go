package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appmetrics "myFitAdvisor/app/echo-server/metrics"
	"myFitAdvisor/app/echo-server/router"
	"myFitAdvisor/business/fit"
	"myFitAdvisor/business/history"
	"myFitAdvisor/business/sizechart"
	"myFitAdvisor/internal/middleware"
	psqlRepo "myFitAdvisor/internal/repository/postgres"
	redisRepo "myFitAdvisor/internal/repository/redis"
	"myFitAdvisor/internal/rest"
	"myFitAdvisor/pkg/config"
	"myFitAdvisor/pkg/database"
	redisdb "myFitAdvisor/pkg/database/redis"
	"myFitAdvisor/pkg/logger"
	"myFitAdvisor/pkg/metrics"
	"myFitAdvisor/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting FitAdvisor", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Init metrics
	metrics.Init()
	appmetrics.Init()

	// Size chart snapshot
	chartService := sizechart.NewService(cfg.Charts.Path)
	if err := chartService.Load(context.Background()); err != nil {
		logger.Fatal("Failed to load size charts", "error", err)
	}

	// Init repo
	feedbackRepo := psqlRepo.NewFeedbackRepository(db)
	auditRepo := psqlRepo.NewPredictionLogRepository(db)

	// Optional redis cache in front of the feedback store
	var feedbackCache history.FeedbackCache
	if cfg.Redis.Enabled {
		redisClient, err := redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Error("Redis unavailable, feedback cache disabled", "error", err)
		} else {
			feedbackCache = redisRepo.NewFeedbackCache(redisClient)
			defer func() {
				if err := redisdb.CloseRedisClient(redisClient); err != nil {
					logger.Error("Failed to close redis client", "error", err)
				}
			}()
		}
	}

	// Init service
	historyService := history.NewHistoryService(feedbackRepo, feedbackCache)

	engineCfg := fit.DefaultConfig()
	engineCfg.FallbackCategory = cfg.Charts.FallbackCategory
	fitService := fit.NewFitService(chartService, historyService, auditRepo, engineCfg)

	// Init handler
	fitHandler := rest.NewFitHandler(fitService)
	feedbackHandler := rest.NewFeedbackHandler(historyService)
	chartAdminHandler := rest.NewChartAdminHandler(chartService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetFitRoutes(api, fitHandler, feedbackHandler)
	router.SetChartAdminRoutes(api, chartAdminHandler)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
