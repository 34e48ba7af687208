package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/mchandler/agency-site-api/internal/domain"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockRepository
	mockTenant *MockTenantRepository
	service    *TenantService
}

func (s *TenantServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockRepository)
	s.mockTenant = new(MockTenantRepository)

	s.mockRepo.On("Tenant").Return(s.mockTenant)

	s.service = NewTenantService(s.mockRepo, logger.NewNop())
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

func (s *TenantServiceTestSuite) TestResolveBySlug_Success() {
	// Arrange
	ctx := context.Background()
	tenant := &domain.Tenant{ID: "tenant1", Slug: "lakeside", AgencyName: "Lakeside Insurance"}

	s.mockTenant.On("GetBySlug", ctx, "lakeside").Return(tenant, nil)

	// Act
	resolved, err := s.service.ResolveBySlug(ctx, "lakeside")

	// Assert
	s.NoError(err)
	s.Equal("tenant1", resolved.ID)
}

func (s *TenantServiceTestSuite) TestResolveBySlug_CachesTheRow() {
	// Arrange
	ctx := context.Background()
	tenant := &domain.Tenant{ID: "tenant1", Slug: "lakeside"}

	s.mockTenant.On("GetBySlug", ctx, "lakeside").Return(tenant, nil).Once()

	// Act
	_, err1 := s.service.ResolveBySlug(ctx, "lakeside")
	_, err2 := s.service.ResolveBySlug(ctx, "lakeside")

	// Assert
	s.NoError(err1)
	s.NoError(err2)
	s.mockTenant.AssertNumberOfCalls(s.T(), "GetBySlug", 1)
}

func (s *TenantServiceTestSuite) TestResolveBySlug_UnknownSlug() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetBySlug", ctx, "nope").Return(nil, gorm.ErrRecordNotFound)

	// Act
	resolved, err := s.service.ResolveBySlug(ctx, "nope")

	// Assert
	s.Nil(resolved)
	s.ErrorIs(err, ErrTenantNotConfigured)
}

func (s *TenantServiceTestSuite) TestResolveBySlug_StoreErrorCoerced() {
	// Arrange
	ctx := context.Background()
	s.mockTenant.On("GetBySlug", ctx, "lakeside").Return(nil, errors.New("connection refused"))

	// Act
	resolved, err := s.service.ResolveBySlug(ctx, "lakeside")

	// Assert
	s.Nil(resolved)
	s.ErrorIs(err, ErrTenantNotConfigured)
}
