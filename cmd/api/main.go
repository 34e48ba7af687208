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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mchandler/agency-site-api/internal/api"
	"github.com/mchandler/agency-site-api/internal/cache"
	"github.com/mchandler/agency-site-api/internal/config"
	"github.com/mchandler/agency-site-api/internal/middleware"
	"github.com/mchandler/agency-site-api/internal/repository/composite"
	"github.com/mchandler/agency-site-api/internal/service"
	"github.com/mchandler/agency-site-api/internal/service/blob"
	"github.com/mchandler/agency-site-api/internal/service/pubsub"
	"github.com/mchandler/agency-site-api/internal/service/queue"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}
	if err := cfg.RequireTenantSlug(); err != nil {
		appLogger.Warnf("%v; all content routes will return 404", err)
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	appLogger.Info("Database connections established - writer and reader connected")

	// Initialize OpenSearch
	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	contentCache := cache.NewRedisCache(redisClient)
	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)

	// Initialize S3
	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to connect to S3", err)
	}
	resumeStore := blob.NewS3Store(s3Client, s3Config)

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)

	// Initialize services
	tenantService := service.NewTenantService(repo, appLogger)
	locationService := service.NewLocationService(repo, contentCache, cfg.ContentCacheTTL, appLogger)
	contentService := service.NewContentService(repo, contentCache, cfg.ContentCacheTTL, appLogger)
	pageService := service.NewPageService(repo, contentService, appLogger)
	submissionService := service.NewSubmissionService(repo, sqsService, resumeStore, appLogger)
	searchService := service.NewSearchService(repo, sqsService, appLogger)

	// Initialize middleware
	tenantMiddleware := middleware.NewTenantMiddleware(cfg, tenantService, appLogger)
	locationGate := middleware.NewLocationGateMiddleware(locationService)
	operatorMiddleware := middleware.NewOperatorMiddleware(cfg)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)

	// Initialize server
	server := api.NewServer(
		pageService,
		locationService,
		contentService,
		submissionService,
		searchService,
		tenantMiddleware,
		locationGate,
		operatorMiddleware,
		rateLimitMiddleware,
		appLogger,
		redisPubSub,
	)

	// Wire up WebSocket broadcaster
	submissionService.SetBroadcaster(server.GetWebSocketHandler())

	// Start WebSocket hub
	server.StartWebSocketHub()

	// Initialize router
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Setup API routes
	apiGroup := router.Group("/api/v1")
	server.SetupRoutes(apiGroup)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
