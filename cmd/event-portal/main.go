package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/usm-portal/event-portal-api/api/swagger"
	"github.com/usm-portal/event-portal-api/internal/handler"
	"github.com/usm-portal/event-portal-api/internal/middleware"
	"github.com/usm-portal/event-portal-api/internal/models"
	"github.com/usm-portal/event-portal-api/internal/repository"
	"github.com/usm-portal/event-portal-api/internal/service"
	"github.com/usm-portal/event-portal-api/pkg/cache"
	"github.com/usm-portal/event-portal-api/pkg/config"
	"github.com/usm-portal/event-portal-api/pkg/logger"
	corsmiddleware "github.com/usm-portal/event-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/usm-portal/event-portal-api/pkg/middleware/requestid"
)

// @title Event Portal API
// @version 0.1.0
// @description University event portal: catalog, proposals, moderation and notifications
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, continuing without cache", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(client, logr)
			defer client.Close() //nolint:errcheck
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cfg.Cache.Enabled && cacheRepo != nil)

	now := time.Now()
	eventRepo := repository.NewEventRepository(repository.SeedEvents(now))
	var notificationSeed []models.Notification
	if cfg.Notifications.Seed {
		notificationSeed = repository.SeedNotifications(now)
	}
	notificationRepo := repository.NewNotificationRepository(notificationSeed)
	registrationRepo := repository.NewRegistrationRepository()
	changeRequestRepo := repository.NewChangeRequestRepository()

	validate := service.NewValidator()

	notificationSvc := service.NewNotificationService(notificationRepo, logr)
	eventSvc := service.NewEventService(eventRepo, cacheSvc, logr)
	proposalSvc := service.NewProposalService(eventRepo, notificationSvc, validate, logr)
	moderationSvc := service.NewModerationService(eventRepo, notificationSvc, cacheSvc, logr)
	registrationSvc := service.NewRegistrationService(eventRepo, registrationRepo, validate, logr)
	changeRequestSvc := service.NewChangeRequestService(eventRepo, changeRequestRepo, notificationSvc, validate, logr)
	exportSvc := service.NewExportService(eventRepo, cfg.Exports.Enabled, logr)

	eventHandler := handler.NewEventHandler(eventSvc)
	proposalHandler := handler.NewProposalHandler(proposalSvc)
	registrationHandler := handler.NewRegistrationHandler(registrationSvc)
	changeRequestHandler := handler.NewChangeRequestHandler(changeRequestSvc)
	moderationHandler := handler.NewModerationHandler(moderationSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.WithResponseMeta())
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	events := api.Group("/events")
	events.GET("", eventHandler.List)
	events.POST("/proposals", proposalHandler.Create)
	events.GET("/:id", eventHandler.Get)
	events.POST("/:id/registrations", registrationHandler.Create)
	events.POST("/:id/change-requests", changeRequestHandler.Create)
	events.GET("/:id/change-requests/current-value", changeRequestHandler.CurrentValue)

	admin := api.Group("/admin/events")
	admin.GET("", moderationHandler.List)
	admin.GET("/export", exportHandler.Export)
	admin.POST("/:id/review", moderationHandler.Review)

	notifications := api.Group("/notifications")
	notifications.GET("", notificationHandler.Feed)
	notifications.POST("/read-all", notificationHandler.MarkAllRead)
	notifications.POST("/:id/read", notificationHandler.MarkRead)
	notifications.DELETE("/:id", notificationHandler.Delete)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
