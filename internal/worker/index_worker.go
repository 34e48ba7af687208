package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mchandler/agency-site-api/internal/service"
	"github.com/mchandler/agency-site-api/internal/service/queue"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

// IndexWorker consumes reindex messages and rebuilds the tenant's search
// index from the published content in Postgres.
type IndexWorker struct {
	sqsService    *queue.SQSService
	searchService *service.SearchService
	logger        *logger.Logger
	workerCount   int
	pollInterval  time.Duration
	maxMessages   int32
	waitTime      int32
	shutdownChan  chan struct{}
	waitGroup     sync.WaitGroup
}

func NewIndexWorker(
	sqsService *queue.SQSService,
	searchService *service.SearchService,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *IndexWorker {
	return &IndexWorker{
		sqsService:    sqsService,
		searchService: searchService,
		logger:        logger,
		workerCount:   workerCount,
		pollInterval:  pollInterval,
		maxMessages:   10, // Process up to 10 messages at a time
		waitTime:      20, // Long polling: wait up to 20 seconds for messages
		shutdownChan:  make(chan struct{}),
	}
}

func (w *IndexWorker) Start() {
	w.logger.Info("Starting index workers...")

	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *IndexWorker) Stop() {
	w.logger.Info("Stopping index workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All index workers stopped")
}

func (w *IndexWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Worker %d shutting down", workerID)
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Worker %d failed to process messages: %v", workerID, err)
			}
		}
	}
}

func (w *IndexWorker) processMessages(ctx context.Context) error {
	queueURL := w.sqsService.IndexQueueURL()

	messages, err := w.sqsService.ReceiveMessages(ctx, queueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessage(ctx, msg.Message); err != nil {
			w.logger.Errorf("Failed to process message: %v", err)
			continue
		}

		// Only delete the message if processing was successful
		if err := w.sqsService.DeleteMessage(ctx, queueURL, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

func (w *IndexWorker) processMessage(ctx context.Context, msg queue.Message) error {
	w.logger.Infof("Processing message of type %s for tenant %s", msg.Type, msg.TenantID)

	switch msg.Type {
	case queue.MessageTypeReindex:
		return w.searchService.Reindex(ctx, msg.TenantID)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
