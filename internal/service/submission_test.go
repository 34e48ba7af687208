package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mchandler/agency-site-api/internal/api/dto"
	"github.com/mchandler/agency-site-api/internal/domain"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

type SubmissionServiceTestSuite struct {
	suite.Suite
	mockRepo        *MockRepository
	mockSubmissions *MockSubmissionRepository
	mockSQS         *MockSQSService
	mockBlob        *MockBlobStore
	mockBroadcaster *MockBroadcaster
	service         *SubmissionService
}

func (s *SubmissionServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockRepository)
	s.mockSubmissions = new(MockSubmissionRepository)
	s.mockSQS = new(MockSQSService)
	s.mockBlob = new(MockBlobStore)
	s.mockBroadcaster = new(MockBroadcaster)

	s.mockRepo.On("Submission").Return(s.mockSubmissions)

	s.service = NewSubmissionService(s.mockRepo, s.mockSQS, s.mockBlob, logger.NewNop())
	s.service.SetBroadcaster(s.mockBroadcaster)
}

func TestSubmissionService(t *testing.T) {
	suite.Run(t, new(SubmissionServiceTestSuite))
}

func (s *SubmissionServiceTestSuite) tenant() *domain.Tenant {
	return &domain.Tenant{ID: "tenant1", AgencyName: "Lakeside Insurance"}
}

func (s *SubmissionServiceTestSuite) TestSubmitContact_Success() {
	// Arrange
	ctx := context.Background()
	req := &dto.ContactRequest{
		Name:    "Pat Doe",
		Email:   "pat@example.com",
		Message: "Need a quote",
	}

	s.mockSubmissions.On("CreateContact", ctx, mock.AnythingOfType("*domain.ContactSubmission")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.ContactSubmission).ID = "sub1"
		}).
		Return(nil)
	s.mockSQS.On("SendSubmissionNotification", ctx, "tenant1", "sub1", domain.SubmissionKindContact).Return(nil)
	s.mockBroadcaster.On("BroadcastSubmission", mock.AnythingOfType("*dto.SubmissionEvent")).Return()

	// Act
	accepted, err := s.service.SubmitContact(ctx, s.tenant(), nil, req)

	// Assert
	s.NoError(err)
	s.Equal("sub1", accepted.ID)
	s.Equal("accepted", accepted.Status)
	s.mockSQS.AssertExpectations(s.T())
	s.mockBroadcaster.AssertExpectations(s.T())
}

func (s *SubmissionServiceTestSuite) TestSubmitContact_NotificationFailureDoesNotFailRequest() {
	// Arrange
	ctx := context.Background()
	req := &dto.ContactRequest{Name: "Pat Doe", Email: "pat@example.com", Message: "Hi"}

	s.mockSubmissions.On("CreateContact", ctx, mock.AnythingOfType("*domain.ContactSubmission")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.ContactSubmission).ID = "sub1"
		}).
		Return(nil)
	s.mockSQS.On("SendSubmissionNotification", ctx, "tenant1", "sub1", domain.SubmissionKindContact).
		Return(errors.New("queue unavailable"))
	s.mockBroadcaster.On("BroadcastSubmission", mock.AnythingOfType("*dto.SubmissionEvent")).Return()

	// Act
	accepted, err := s.service.SubmitContact(ctx, s.tenant(), nil, req)

	// Assert
	s.NoError(err)
	s.Equal("accepted", accepted.Status)
}

func (s *SubmissionServiceTestSuite) TestSubmitContact_StoreFailure() {
	// Arrange
	ctx := context.Background()
	req := &dto.ContactRequest{Name: "Pat Doe", Email: "pat@example.com", Message: "Hi"}

	s.mockSubmissions.On("CreateContact", ctx, mock.AnythingOfType("*domain.ContactSubmission")).
		Return(errors.New("connection refused"))

	// Act
	accepted, err := s.service.SubmitContact(ctx, s.tenant(), nil, req)

	// Assert
	s.Nil(accepted)
	s.Error(err)
	s.mockSQS.AssertNotCalled(s.T(), "SendSubmissionNotification", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *SubmissionServiceTestSuite) TestSubmitApplication_UploadsResumeFirst() {
	// Arrange
	ctx := context.Background()
	posting := &domain.JobPosting{ID: "job1", Slug: "agent"}
	req := &dto.ApplicationRequest{Name: "Pat Doe", Email: "pat@example.com"}
	resume := strings.NewReader("resume bytes")

	s.mockBlob.On("PutResume", ctx, "tenant1", "resume.pdf", "application/pdf", resume).
		Return("tenant1/abc123.pdf", nil)
	s.mockSubmissions.On("CreateApplication", ctx, mock.AnythingOfType("*domain.JobApplication")).
		Run(func(args mock.Arguments) {
			application := args.Get(1).(*domain.JobApplication)
			s.Equal("tenant1/abc123.pdf", application.ResumeKey)
			s.Equal("job1", application.JobPostingID)
			application.ID = "app1"
		}).
		Return(nil)
	s.mockSQS.On("SendSubmissionNotification", ctx, "tenant1", "app1", domain.SubmissionKindApplication).Return(nil)
	s.mockBroadcaster.On("BroadcastSubmission", mock.AnythingOfType("*dto.SubmissionEvent")).Return()

	// Act
	accepted, err := s.service.SubmitApplication(ctx, s.tenant(), nil, posting, req, resume, "resume.pdf", "application/pdf")

	// Assert
	s.NoError(err)
	s.Equal("app1", accepted.ID)
	s.mockBlob.AssertExpectations(s.T())
}

func (s *SubmissionServiceTestSuite) TestSubmitApplication_ResumeUploadFailureRejects() {
	// Arrange
	ctx := context.Background()
	posting := &domain.JobPosting{ID: "job1"}
	req := &dto.ApplicationRequest{Name: "Pat Doe", Email: "pat@example.com"}
	resume := strings.NewReader("resume bytes")

	s.mockBlob.On("PutResume", ctx, "tenant1", "resume.pdf", "application/pdf", resume).
		Return("", errors.New("bucket unavailable"))

	// Act
	accepted, err := s.service.SubmitApplication(ctx, s.tenant(), nil, posting, req, resume, "resume.pdf", "application/pdf")

	// Assert
	s.Nil(accepted)
	s.Error(err)
	s.mockSubmissions.AssertNotCalled(s.T(), "CreateApplication", mock.Anything, mock.Anything)
}

func (s *SubmissionServiceTestSuite) TestSubmitApplication_NoResume() {
	// Arrange
	ctx := context.Background()
	posting := &domain.JobPosting{ID: "job1"}
	req := &dto.ApplicationRequest{Name: "Pat Doe", Email: "pat@example.com"}

	s.mockSubmissions.On("CreateApplication", ctx, mock.AnythingOfType("*domain.JobApplication")).
		Run(func(args mock.Arguments) {
			application := args.Get(1).(*domain.JobApplication)
			s.Empty(application.ResumeKey)
			application.ID = "app1"
		}).
		Return(nil)
	s.mockSQS.On("SendSubmissionNotification", ctx, "tenant1", "app1", domain.SubmissionKindApplication).Return(nil)
	s.mockBroadcaster.On("BroadcastSubmission", mock.AnythingOfType("*dto.SubmissionEvent")).Return()

	// Act
	accepted, err := s.service.SubmitApplication(ctx, s.tenant(), nil, posting, req, nil, "", "")

	// Assert
	s.NoError(err)
	s.Equal("app1", accepted.ID)
	s.mockBlob.AssertNotCalled(s.T(), "PutResume", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *SubmissionServiceTestSuite) TestScheduleExport_ExplicitWindow() {
	// Arrange
	ctx := context.Background()
	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	s.mockSQS.On("SendExportMessage", ctx, "tenant1", from, to).Return(nil)

	// Act
	err := s.service.ScheduleExport(ctx, "tenant1", from, to)

	// Assert
	s.NoError(err)
	s.mockSQS.AssertExpectations(s.T())
}

func (s *SubmissionServiceTestSuite) TestScheduleExport_DefaultsToPastThirtyDays() {
	// Arrange
	ctx := context.Background()
	s.mockSQS.On("SendExportMessage", ctx, "tenant1",
		mock.MatchedBy(func(from time.Time) bool { return !from.IsZero() }),
		mock.MatchedBy(func(to time.Time) bool { return time.Since(to) < time.Minute }),
	).Run(func(args mock.Arguments) {
		from := args.Get(2).(time.Time)
		to := args.Get(3).(time.Time)
		s.Equal(30*24*time.Hour, to.Sub(from))
	}).Return(nil)

	// Act
	err := s.service.ScheduleExport(ctx, "tenant1", time.Time{}, time.Time{})

	// Assert
	s.NoError(err)
	s.mockSQS.AssertExpectations(s.T())
}

func (s *SubmissionServiceTestSuite) TestScheduleExport_EmptyWindowRejected() {
	// Arrange
	ctx := context.Background()
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	// Act
	err := s.service.ScheduleExport(ctx, "tenant1", from, to)

	// Assert
	s.Error(err)
	s.mockSQS.AssertNotCalled(s.T(), "SendExportMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
