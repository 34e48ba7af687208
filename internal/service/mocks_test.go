package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/mchandler/agency-site-api/internal/api/dto"
	"github.com/mchandler/agency-site-api/internal/domain"
	"github.com/mchandler/agency-site-api/internal/repository"
)

// Hand-rolled mock.Mock doubles over the repository interfaces.

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Tenant() repository.TenantRepository {
	return m.Called().Get(0).(repository.TenantRepository)
}

func (m *MockRepository) Location() repository.LocationRepository {
	return m.Called().Get(0).(repository.LocationRepository)
}

func (m *MockRepository) PolicyPage() repository.PolicyPageRepository {
	return m.Called().Get(0).(repository.PolicyPageRepository)
}

func (m *MockRepository) Glossary() repository.GlossaryRepository {
	return m.Called().Get(0).(repository.GlossaryRepository)
}

func (m *MockRepository) PageMeta() repository.PageMetaRepository {
	return m.Called().Get(0).(repository.PageMetaRepository)
}

func (m *MockRepository) Blog() repository.BlogRepository {
	return m.Called().Get(0).(repository.BlogRepository)
}

func (m *MockRepository) Job() repository.JobRepository {
	return m.Called().Get(0).(repository.JobRepository)
}

func (m *MockRepository) BusinessInfo() repository.BusinessInfoRepository {
	return m.Called().Get(0).(repository.BusinessInfoRepository)
}

func (m *MockRepository) Submission() repository.SubmissionRepository {
	return m.Called().Get(0).(repository.SubmissionRepository)
}

func (m *MockRepository) Search() repository.SearchRepository {
	return m.Called().Get(0).(repository.SearchRepository)
}

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) GetActiveBySlug(ctx context.Context, tenantID, slug string) (*domain.Location, error) {
	args := m.Called(ctx, tenantID, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

func (m *MockLocationRepository) ListActive(ctx context.Context, tenantID string) ([]domain.Location, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *MockLocationRepository) CountActive(ctx context.Context, tenantID string) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

type MockPolicyPageRepository struct {
	mock.Mock
}

func (m *MockPolicyPageRepository) FindPublished(ctx context.Context, tenantID, slug string, locationID *string) (*domain.PolicyPage, error) {
	args := m.Called(ctx, tenantID, slug, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PolicyPage), args.Error(1)
}

func (m *MockPolicyPageRepository) ListPublishedVisibleTo(ctx context.Context, tenantID string, locationID *string) ([]domain.PolicyPage, error) {
	args := m.Called(ctx, tenantID, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PolicyPage), args.Error(1)
}

func (m *MockPolicyPageRepository) ListPublished(ctx context.Context, tenantID string) ([]domain.PolicyPage, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PolicyPage), args.Error(1)
}

type MockGlossaryRepository struct {
	mock.Mock
}

func (m *MockGlossaryRepository) FindPublished(ctx context.Context, tenantID, slug string, locationID *string) (*domain.GlossaryTerm, error) {
	args := m.Called(ctx, tenantID, slug, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GlossaryTerm), args.Error(1)
}

func (m *MockGlossaryRepository) ListPublishedVisibleTo(ctx context.Context, tenantID string, locationID *string) ([]domain.GlossaryTerm, error) {
	args := m.Called(ctx, tenantID, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GlossaryTerm), args.Error(1)
}

func (m *MockGlossaryRepository) ListPublished(ctx context.Context, tenantID string) ([]domain.GlossaryTerm, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GlossaryTerm), args.Error(1)
}

type MockPageMetaRepository struct {
	mock.Mock
}

func (m *MockPageMetaRepository) FindPublished(ctx context.Context, tenantID, slug string, locationID *string) (*domain.PageMeta, error) {
	args := m.Called(ctx, tenantID, slug, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PageMeta), args.Error(1)
}

type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) FindPublished(ctx context.Context, tenantID, slug string, locationID *string) (*domain.BlogPost, error) {
	args := m.Called(ctx, tenantID, slug, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) ListPublished(ctx context.Context, tenantID string) ([]domain.BlogPost, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogPost), args.Error(1)
}

type MockJobRepository struct {
	mock.Mock
}

func (m *MockJobRepository) FindPublished(ctx context.Context, tenantID, slug string, locationID *string) (*domain.JobPosting, error) {
	args := m.Called(ctx, tenantID, slug, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobRepository) ListPublishedVisibleTo(ctx context.Context, tenantID string, locationID *string) ([]domain.JobPosting, error) {
	args := m.Called(ctx, tenantID, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

type MockBusinessInfoRepository struct {
	mock.Mock
}

func (m *MockBusinessInfoRepository) GetByTenant(ctx context.Context, tenantID string) (*domain.BusinessInfo, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BusinessInfo), args.Error(1)
}

type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) CreateContact(ctx context.Context, submission *domain.ContactSubmission) error {
	return m.Called(ctx, submission).Error(0)
}

func (m *MockSubmissionRepository) CreateApplication(ctx context.Context, application *domain.JobApplication) error {
	return m.Called(ctx, application).Error(0)
}

func (m *MockSubmissionRepository) ListContactsBetween(ctx context.Context, tenantID string, from, to time.Time) ([]domain.ContactSubmission, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContactSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) ListApplicationsBetween(ctx context.Context, tenantID string, from, to time.Time) ([]domain.JobApplication, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

type MockSearchRepository struct {
	mock.Mock
}

func (m *MockSearchRepository) EnsureIndex(ctx context.Context, tenantID string) error {
	return m.Called(ctx, tenantID).Error(0)
}

func (m *MockSearchRepository) DeleteIndex(ctx context.Context, tenantID string) error {
	return m.Called(ctx, tenantID).Error(0)
}

func (m *MockSearchRepository) BulkIndex(ctx context.Context, docs []domain.SearchDocument) error {
	return m.Called(ctx, docs).Error(0)
}

func (m *MockSearchRepository) Search(ctx context.Context, tenantID, query string, size int) ([]domain.SearchDocument, error) {
	args := m.Called(ctx, tenantID, query, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SearchDocument), args.Error(1)
}

type MockSQSService struct {
	mock.Mock
}

func (m *MockSQSService) SendSubmissionNotification(ctx context.Context, tenantID, submissionID string, kind domain.SubmissionKind) error {
	return m.Called(ctx, tenantID, submissionID, kind).Error(0)
}

func (m *MockSQSService) SendReindexMessage(ctx context.Context, tenantID string) error {
	return m.Called(ctx, tenantID).Error(0)
}

func (m *MockSQSService) SendExportMessage(ctx context.Context, tenantID string, from, to time.Time) error {
	return m.Called(ctx, tenantID, from, to).Error(0)
}

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) PutResume(ctx context.Context, tenantID, filename, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, tenantID, filename, contentType, body)
	return args.String(0), args.Error(1)
}

type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) BroadcastSubmission(event *dto.SubmissionEvent) {
	m.Called(event)
}
