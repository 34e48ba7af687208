package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mchandler/agency-site-api/internal/domain"
	"github.com/mchandler/agency-site-api/internal/repository"
	"github.com/mchandler/agency-site-api/internal/service/blob"
	"github.com/mchandler/agency-site-api/internal/service/queue"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

// submissionExport is the file shape written to the export bucket.
type submissionExport struct {
	TenantID     string                     `json:"tenant_id"`
	From         time.Time                  `json:"from"`
	To           time.Time                  `json:"to"`
	GeneratedAt  time.Time                  `json:"generated_at"`
	Contacts     []domain.ContactSubmission `json:"contacts"`
	Applications []domain.JobApplication    `json:"applications"`
}

// ExportWorker consumes export messages and writes the tenant's submissions
// for the requested window to the export bucket as a JSON file.
type ExportWorker struct {
	sqsService   *queue.SQSService
	repo         repository.PostgresRepository
	exportStore  blob.ExportStore
	logger       *logger.Logger
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewExportWorker(
	sqsService *queue.SQSService,
	repo repository.PostgresRepository,
	exportStore blob.ExportStore,
	logger *logger.Logger,
	pollInterval time.Duration,
) *ExportWorker {
	return &ExportWorker{
		sqsService:   sqsService,
		repo:         repo,
		exportStore:  exportStore,
		logger:       logger,
		pollInterval: pollInterval,
		maxMessages:  10,
		waitTime:     20,
		shutdownChan: make(chan struct{}),
	}
}

func (w *ExportWorker) Start() {
	w.logger.Info("Starting export worker...")

	w.waitGroup.Add(1)
	go w.run()
}

func (w *ExportWorker) Stop() {
	w.logger.Info("Stopping export worker...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("Export worker stopped")
}

func (w *ExportWorker) run() {
	defer w.waitGroup.Done()

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			return
		case <-ticker.C:
			if err := w.processMessages(context.Background()); err != nil {
				w.logger.Errorf("Export worker failed to process messages: %v", err)
			}
		}
	}
}

func (w *ExportWorker) processMessages(ctx context.Context) error {
	queueURL := w.sqsService.ExportQueueURL()

	messages, err := w.sqsService.ReceiveMessages(ctx, queueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessage(ctx, msg.Message); err != nil {
			w.logger.Errorf("Failed to process message: %v", err)
			continue
		}

		if err := w.sqsService.DeleteMessage(ctx, queueURL, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

func (w *ExportWorker) processMessage(ctx context.Context, msg queue.Message) error {
	if msg.Type != queue.MessageTypeExport {
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}

	w.logger.Infof("Exporting submissions for tenant %s from %s to %s",
		msg.TenantID, msg.From.Format(time.RFC3339), msg.To.Format(time.RFC3339))

	contacts, err := w.repo.Submission().ListContactsBetween(ctx, msg.TenantID, msg.From, msg.To)
	if err != nil {
		return fmt.Errorf("failed to list contact submissions: %w", err)
	}

	applications, err := w.repo.Submission().ListApplicationsBetween(ctx, msg.TenantID, msg.From, msg.To)
	if err != nil {
		return fmt.Errorf("failed to list job applications: %w", err)
	}

	export := submissionExport{
		TenantID:     msg.TenantID,
		From:         msg.From,
		To:           msg.To,
		GeneratedAt:  time.Now(),
		Contacts:     contacts,
		Applications: applications,
	}

	body, err := json.Marshal(export)
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}

	name := fmt.Sprintf("submissions-%s-%s.json",
		msg.From.Format("20060102"), msg.To.Format("20060102"))

	key, err := w.exportStore.PutExport(ctx, msg.TenantID, name, body)
	if err != nil {
		return fmt.Errorf("failed to store export: %w", err)
	}

	w.logger.Infof("Export written to %s (%d contacts, %d applications)",
		key, len(contacts), len(applications))
	return nil
}
