package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mchandler/agency-site-api/internal/domain"
)

type SubmissionRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewSubmissionRepository(writerDB, readerDB *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *SubmissionRepository) CreateContact(ctx context.Context, submission *domain.ContactSubmission) error {
	if submission.ID == "" {
		submission.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(submission).Error
}

func (r *SubmissionRepository) CreateApplication(ctx context.Context, application *domain.JobApplication) error {
	if application.ID == "" {
		application.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(application).Error
}

func (r *SubmissionRepository) ListContactsBetween(ctx context.Context, tenantID string, from, to time.Time) ([]domain.ContactSubmission, error) {
	var submissions []domain.ContactSubmission
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND submitted_at >= ? AND submitted_at < ?", tenantID, from, to).
		Order("submitted_at ASC").
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *SubmissionRepository) ListApplicationsBetween(ctx context.Context, tenantID string, from, to time.Time) ([]domain.JobApplication, error) {
	var applications []domain.JobApplication
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND submitted_at >= ? AND submitted_at < ?", tenantID, from, to).
		Order("submitted_at ASC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}
