package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mchandler/agency-site-api/internal/domain"
)

type LocationRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewLocationRepository(writerDB, readerDB *gorm.DB) *LocationRepository {
	return &LocationRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *LocationRepository) GetActiveBySlug(ctx context.Context, tenantID, slug string) (*domain.Location, error) {
	var location domain.Location
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND slug = ? AND active = ?", tenantID, slug, true).
		First(&location).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepository) ListActive(ctx context.Context, tenantID string) ([]domain.Location, error) {
	var locations []domain.Location
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND active = ?", tenantID, true).
		Order("slug ASC").
		Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *LocationRepository) CountActive(ctx context.Context, tenantID string) (int64, error) {
	var count int64
	err := r.readerDB.WithContext(ctx).
		Model(&domain.Location{}).
		Where("tenant_id = ? AND active = ?", tenantID, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
