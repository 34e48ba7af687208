package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mchandler/agency-site-api/internal/domain"
)

type BusinessInfoRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewBusinessInfoRepository(writerDB, readerDB *gorm.DB) *BusinessInfoRepository {
	return &BusinessInfoRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *BusinessInfoRepository) GetByTenant(ctx context.Context, tenantID string) (*domain.BusinessInfo, error) {
	var info domain.BusinessInfo
	if err := r.readerDB.WithContext(ctx).First(&info, "tenant_id = ?", tenantID).Error; err != nil {
		return nil, err
	}
	return &info, nil
}
