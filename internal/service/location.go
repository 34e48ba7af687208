package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mchandler/agency-site-api/internal/cache"
	"github.com/mchandler/agency-site-api/internal/domain"
	"github.com/mchandler/agency-site-api/internal/repository"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

// LocationService resolves URL slugs to locations and owns the
// single/multi-location mode decision. A tenant with more than one active
// location is in multi-location mode; only then are location-scoped routes
// reachable.
type LocationService struct {
	repo     repository.Repository
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *logger.Logger
}

func NewLocationService(repo repository.Repository, c cache.Cache, cacheTTL time.Duration, logger *logger.Logger) *LocationService {
	return &LocationService{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// IsMultiLocation reports whether the tenant exposes location-scoped routes.
// A store failure fails closed: the gate treats the tenant as
// single-location and the affected requests 404.
func (s *LocationService) IsMultiLocation(ctx context.Context, tenantID string) bool {
	if s.cache != nil {
		if b, ok, err := s.cache.Get(ctx, cache.LocationCountKey(tenantID)); err == nil && ok {
			if count, err := strconv.ParseInt(string(b), 10, 64); err == nil {
				return count > 1
			}
		}
	}

	count, err := s.repo.Location().CountActive(ctx, tenantID)
	if err != nil {
		s.logger.Error("Failed to count active locations", err, zap.String("tenant_id", tenantID))
		return false
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cache.LocationCountKey(tenantID), []byte(strconv.FormatInt(count, 10)), s.cacheTTL); err != nil {
			s.logger.Warnf("Failed to cache location count for tenant %s: %v", tenantID, err)
		}
	}

	return count > 1
}

// ResolveLocation maps a URL slug to an active location. Single-location
// tenants never resolve location slugs, even when a matching row exists.
func (s *LocationService) ResolveLocation(ctx context.Context, tenantID, slug string) (*domain.Location, error) {
	if !s.IsMultiLocation(ctx, tenantID) {
		return nil, ErrLocationNotFound
	}

	location, err := s.repo.Location().GetActiveBySlug(ctx, tenantID, slug)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("Location lookup failed", err,
				zap.String("tenant_id", tenantID), zap.String("slug", slug))
		}
		return nil, ErrLocationNotFound
	}
	return location, nil
}

// ListActive returns the active locations used for static path enumeration.
// A store failure is coerced to an empty list.
func (s *LocationService) ListActive(ctx context.Context, tenantID string) []domain.Location {
	locations, err := s.repo.Location().ListActive(ctx, tenantID)
	if err != nil {
		s.logger.Error("Failed to list active locations", err, zap.String("tenant_id", tenantID))
		return []domain.Location{}
	}
	return locations
}
