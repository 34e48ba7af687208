package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mchandler/agency-site-api/internal/config"
	"github.com/mchandler/agency-site-api/internal/repository/composite"
	"github.com/mchandler/agency-site-api/internal/service"
	"github.com/mchandler/agency-site-api/internal/service/queue"
	"github.com/mchandler/agency-site-api/internal/worker"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	// Initialize OpenSearch
	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	appLogger.Info("OpenSearch connection established for index worker")

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	appLogger.Info("SQS connection established for index worker")

	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)
	searchService := service.NewSearchService(repo, sqsService, appLogger)

	indexWorker := worker.NewIndexWorker(
		sqsService,
		searchService,
		appLogger,
		1,             // worker goroutines
		5*time.Second, // Poll every 5 seconds
	)

	indexWorker.Start()
	appLogger.Info("Index worker started")

	// Wait for interrupt signal to gracefully shutdown the worker
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down worker...")
	indexWorker.Stop()
	appLogger.Info("Worker stopped")
	appLogger.Sync()
}
