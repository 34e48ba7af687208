package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/mchandler/agency-site-api/internal/api/dto"
	"github.com/mchandler/agency-site-api/internal/domain"
	"github.com/mchandler/agency-site-api/internal/repository"
	"github.com/mchandler/agency-site-api/internal/service/blob"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

//go:generate mockery --name SQSService --output ../mocks
type SQSService interface {
	SendSubmissionNotification(ctx context.Context, tenantID, submissionID string, kind domain.SubmissionKind) error
	SendReindexMessage(ctx context.Context, tenantID string) error
	SendExportMessage(ctx context.Context, tenantID string, from, to time.Time) error
}

const defaultExportWindow = 30 * 24 * time.Hour

// SubmissionBroadcaster pushes accepted submissions to the operator stream.
type SubmissionBroadcaster interface {
	BroadcastSubmission(event *dto.SubmissionEvent)
}

// SubmissionService persists visitor form submissions. The database insert
// is the only step allowed to fail the request; notification and broadcast
// are fire-and-forget.
type SubmissionService struct {
	repo        repository.Repository
	sqsService  SQSService
	blobStore   blob.Store
	broadcaster SubmissionBroadcaster
	logger      *logger.Logger
}

func NewSubmissionService(repo repository.Repository, sqsService SQSService, blobStore blob.Store, logger *logger.Logger) *SubmissionService {
	return &SubmissionService{
		repo:       repo,
		sqsService: sqsService,
		blobStore:  blobStore,
		logger:     logger,
	}
}

// SetBroadcaster wires the websocket hub after construction; the hub needs
// the server which needs this service.
func (s *SubmissionService) SetBroadcaster(b SubmissionBroadcaster) {
	s.broadcaster = b
}

func (s *SubmissionService) SubmitContact(ctx context.Context, tenant *domain.Tenant, location *domain.Location, req *dto.ContactRequest) (*dto.SubmissionAccepted, error) {
	submission := &domain.ContactSubmission{
		TenantID:    tenant.ID,
		LocationID:  locationIDOf(location),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		SubmittedAt: time.Now(),
	}

	if err := s.repo.Submission().CreateContact(ctx, submission); err != nil {
		return nil, fmt.Errorf("failed to store contact submission: %w", err)
	}

	s.notify(ctx, tenant.ID, submission.ID, domain.SubmissionKindContact)
	s.broadcast(dto.FromContactSubmission(submission))

	return &dto.SubmissionAccepted{ID: submission.ID, Status: "accepted"}, nil
}

// SubmitApplication stores a job application, uploading the resume first so
// the row never references a blob that failed to land.
func (s *SubmissionService) SubmitApplication(ctx context.Context, tenant *domain.Tenant, location *domain.Location, posting *domain.JobPosting, req *dto.ApplicationRequest, resume io.Reader, filename, contentType string) (*dto.SubmissionAccepted, error) {
	var resumeKey string
	if resume != nil {
		key, err := s.blobStore.PutResume(ctx, tenant.ID, filename, contentType, resume)
		if err != nil {
			return nil, fmt.Errorf("failed to store resume: %w", err)
		}
		resumeKey = key
	}

	application := &domain.JobApplication{
		TenantID:     tenant.ID,
		LocationID:   locationIDOf(location),
		JobPostingID: posting.ID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		CoverLetter:  req.CoverLetter,
		ResumeKey:    resumeKey,
		SubmittedAt:  time.Now(),
	}

	if err := s.repo.Submission().CreateApplication(ctx, application); err != nil {
		return nil, fmt.Errorf("failed to store job application: %w", err)
	}

	s.notify(ctx, tenant.ID, application.ID, domain.SubmissionKindApplication)
	s.broadcast(dto.FromJobApplication(application))

	return &dto.SubmissionAccepted{ID: application.ID, Status: "accepted"}, nil
}

// ScheduleExport enqueues a submissions export for the export worker. A zero
// window end defaults to now, a zero start to thirty days before the end.
func (s *SubmissionService) ScheduleExport(ctx context.Context, tenantID string, from, to time.Time) error {
	if s.sqsService == nil {
		return fmt.Errorf("export queue is not configured")
	}

	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.Add(-defaultExportWindow)
	}
	if !from.Before(to) {
		return fmt.Errorf("export window is empty")
	}

	return s.sqsService.SendExportMessage(ctx, tenantID, from, to)
}

func (s *SubmissionService) notify(ctx context.Context, tenantID, submissionID string, kind domain.SubmissionKind) {
	if s.sqsService == nil {
		return
	}
	if err := s.sqsService.SendSubmissionNotification(ctx, tenantID, submissionID, kind); err != nil {
		s.logger.Error("Failed to queue submission notification", err,
			zap.String("submission_id", submissionID),
			zap.String("kind", string(kind)))
	}
}

func (s *SubmissionService) broadcast(event *dto.SubmissionEvent) {
	if s.broadcaster != nil {
		s.broadcaster.BroadcastSubmission(event)
	}
}
