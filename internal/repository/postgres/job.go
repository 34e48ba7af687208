package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mchandler/agency-site-api/internal/domain"
)

type JobRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewJobRepository(writerDB, readerDB *gorm.DB) *JobRepository {
	return &JobRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *JobRepository) FindPublished(ctx context.Context, tenantID, slug string, locationID *string) (*domain.JobPosting, error) {
	var posting domain.JobPosting
	err := publishedSlugScope(r.readerDB.WithContext(ctx), tenantID, slug, locationID).
		Order("created_at DESC").
		First(&posting).Error
	if err != nil {
		return nil, err
	}
	return &posting, nil
}

func (r *JobRepository) ListPublishedVisibleTo(ctx context.Context, tenantID string, locationID *string) ([]domain.JobPosting, error) {
	var postings []domain.JobPosting
	err := visibleScope(r.readerDB.WithContext(ctx).Model(&domain.JobPosting{}), tenantID, locationID).
		Order("title ASC, created_at DESC").
		Find(&postings).Error
	if err != nil {
		return nil, err
	}
	return postings, nil
}
