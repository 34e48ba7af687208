package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mchandler/agency-site-api/internal/config"
	"github.com/mchandler/agency-site-api/internal/repository/postgres"
	"github.com/mchandler/agency-site-api/internal/service/blob"
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

	// Initialize S3
	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to connect to S3", err)
	}
	exportStore := blob.NewS3Store(s3Client, s3Config)

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	repo := postgres.NewPostgresRepository(dbConnections)

	exportWorker := worker.NewExportWorker(
		sqsService,
		repo,
		exportStore,
		appLogger,
		5*time.Second, // Poll every 5 seconds
	)

	exportWorker.Start()
	appLogger.Info("Export worker started")

	// Wait for interrupt signal to gracefully shutdown the worker
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down worker...")
	exportWorker.Stop()
	appLogger.Info("Worker stopped")
	appLogger.Sync()
}
