package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/mchandler/agency-site-api/internal/domain"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

type ContentServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockRepository
	mockPolicy *MockPolicyPageRepository
	service    *ContentService
}

func (s *ContentServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockRepository)
	s.mockPolicy = new(MockPolicyPageRepository)

	s.mockRepo.On("PolicyPage").Return(s.mockPolicy)

	s.service = NewContentService(s.mockRepo, nil, time.Minute, logger.NewNop())
}

func TestContentService(t *testing.T) {
	suite.Run(t, new(ContentServiceTestSuite))
}

func strPtr(s string) *string {
	return &s
}

func (s *ContentServiceTestSuite) TestResolvePolicy_OverrideWins() {
	// Arrange
	ctx := context.Background()
	locationID := strPtr("loc1")
	override := &domain.PolicyPage{
		ID:         "page2",
		Slug:       "home-insurance",
		LocationID: locationID,
		Title:      "Home Insurance in Austin",
	}

	s.mockPolicy.On("FindPublished", ctx, "tenant1", "home-insurance", locationID).
		Return(override, nil)

	// Act
	page, err := s.service.ResolvePolicy(ctx, "tenant1", "home-insurance", locationID)

	// Assert
	s.NoError(err)
	s.Equal("page2", page.ID)
	// The global tier is never consulted when an override exists
	s.mockPolicy.AssertNumberOfCalls(s.T(), "FindPublished", 1)
}

func (s *ContentServiceTestSuite) TestResolvePolicy_FallsBackToGlobal() {
	// Arrange
	ctx := context.Background()
	locationID := strPtr("loc1")
	global := &domain.PolicyPage{
		ID:   "page1",
		Slug: "home-insurance",
	}

	s.mockPolicy.On("FindPublished", ctx, "tenant1", "home-insurance", locationID).
		Return(nil, gorm.ErrRecordNotFound)
	s.mockPolicy.On("FindPublished", ctx, "tenant1", "home-insurance", (*string)(nil)).
		Return(global, nil)

	// Act
	page, err := s.service.ResolvePolicy(ctx, "tenant1", "home-insurance", locationID)

	// Assert
	s.NoError(err)
	s.Equal("page1", page.ID)
	s.mockPolicy.AssertExpectations(s.T())
}

func (s *ContentServiceTestSuite) TestResolvePolicy_GlobalTierOnlyWithoutLocation() {
	// Arrange
	ctx := context.Background()
	global := &domain.PolicyPage{ID: "page1", Slug: "home-insurance"}

	s.mockPolicy.On("FindPublished", ctx, "tenant1", "home-insurance", (*string)(nil)).
		Return(global, nil)

	// Act
	page, err := s.service.ResolvePolicy(ctx, "tenant1", "home-insurance", nil)

	// Assert
	s.NoError(err)
	s.Equal("page1", page.ID)
	s.mockPolicy.AssertNumberOfCalls(s.T(), "FindPublished", 1)
}

func (s *ContentServiceTestSuite) TestResolvePolicy_NotFoundInEitherTier() {
	// Arrange
	ctx := context.Background()
	locationID := strPtr("loc1")

	s.mockPolicy.On("FindPublished", ctx, "tenant1", "boat-insurance", locationID).
		Return(nil, gorm.ErrRecordNotFound)
	s.mockPolicy.On("FindPublished", ctx, "tenant1", "boat-insurance", (*string)(nil)).
		Return(nil, gorm.ErrRecordNotFound)

	// Act
	page, err := s.service.ResolvePolicy(ctx, "tenant1", "boat-insurance", locationID)

	// Assert
	s.Nil(page)
	s.ErrorIs(err, ErrContentNotFound)
}

func (s *ContentServiceTestSuite) TestResolvePolicy_StoreErrorCoercedToNotFound() {
	// Arrange
	ctx := context.Background()

	s.mockPolicy.On("FindPublished", ctx, "tenant1", "home-insurance", (*string)(nil)).
		Return(nil, errors.New("connection refused"))

	// Act
	page, err := s.service.ResolvePolicy(ctx, "tenant1", "home-insurance", nil)

	// Assert
	s.Nil(page)
	s.ErrorIs(err, ErrContentNotFound)
}

func (s *ContentServiceTestSuite) TestResolvePolicy_OverrideTierStoreErrorStillFallsBack() {
	// Arrange
	ctx := context.Background()
	locationID := strPtr("loc1")
	global := &domain.PolicyPage{ID: "page1", Slug: "home-insurance"}

	s.mockPolicy.On("FindPublished", ctx, "tenant1", "home-insurance", locationID).
		Return(nil, errors.New("connection refused"))
	s.mockPolicy.On("FindPublished", ctx, "tenant1", "home-insurance", (*string)(nil)).
		Return(global, nil)

	// Act
	page, err := s.service.ResolvePolicy(ctx, "tenant1", "home-insurance", locationID)

	// Assert
	s.NoError(err)
	s.Equal("page1", page.ID)
}

func (s *ContentServiceTestSuite) TestVisiblePolicies_OverrideShadowsGlobal() {
	// Arrange
	ctx := context.Background()
	locationID := strPtr("loc1")
	rows := []domain.PolicyPage{
		{ID: "auto-global", Slug: "auto-insurance"},
		{ID: "home-override", Slug: "home-insurance", LocationID: locationID},
		{ID: "home-global", Slug: "home-insurance"},
	}

	s.mockPolicy.On("ListPublishedVisibleTo", ctx, "tenant1", locationID).
		Return(rows, nil)

	// Act
	visible := s.service.VisiblePolicies(ctx, "tenant1", locationID)

	// Assert
	s.Len(visible, 2)
	ids := map[string]bool{}
	for _, p := range visible {
		ids[p.ID] = true
	}
	s.True(ids["auto-global"])
	s.True(ids["home-override"])
	s.False(ids["home-global"])
}

func (s *ContentServiceTestSuite) TestVisiblePolicies_NewestRowWinsWithinTier() {
	// Arrange rows arrive ordered newest-first within a slug
	ctx := context.Background()
	rows := []domain.PolicyPage{
		{ID: "home-newer", Slug: "home-insurance"},
		{ID: "home-older", Slug: "home-insurance"},
	}

	s.mockPolicy.On("ListPublishedVisibleTo", ctx, "tenant1", (*string)(nil)).
		Return(rows, nil)

	// Act
	visible := s.service.VisiblePolicies(ctx, "tenant1", nil)

	// Assert
	s.Len(visible, 1)
	s.Equal("home-newer", visible[0].ID)
}

func (s *ContentServiceTestSuite) TestVisiblePolicies_StoreErrorYieldsEmptyList() {
	// Arrange
	ctx := context.Background()

	s.mockPolicy.On("ListPublishedVisibleTo", ctx, "tenant1", (*string)(nil)).
		Return(nil, errors.New("connection refused"))

	// Act
	visible := s.service.VisiblePolicies(ctx, "tenant1", nil)

	// Assert
	s.NotNil(visible)
	s.Empty(visible)
}

func (s *ContentServiceTestSuite) TestAggregatedFAQs_FlattensAndTags() {
	// Arrange: two globals and one override shadowing a third slug
	ctx := context.Background()
	locationID := strPtr("loc1")
	rows := []domain.PolicyPage{
		{ID: "auto", Slug: "auto-insurance", Title: "Auto", FAQs: domain.FAQList{
			{Question: "Q1", Answer: "A1"},
			{Question: "Q2", Answer: "A2"},
		}},
		{ID: "flood", Slug: "flood-insurance", Title: "Flood", FAQs: domain.FAQList{
			{Question: "Q3", Answer: "A3"},
		}},
		{ID: "home-override", Slug: "home-insurance", Title: "Home (Austin)", LocationID: locationID, FAQs: domain.FAQList{
			{Question: "Q4", Answer: "A4"},
		}},
		{ID: "home-global", Slug: "home-insurance", Title: "Home", FAQs: domain.FAQList{
			{Question: "Q5", Answer: "A5"},
			{Question: "Q6", Answer: "A6"},
		}},
	}

	s.mockPolicy.On("ListPublishedVisibleTo", ctx, "tenant1", locationID).
		Return(rows, nil)

	// Act
	faqs := s.service.AggregatedFAQs(ctx, "tenant1", locationID)

	// Assert: 2 + 1 + 1 (override shadows the global home page's FAQs)
	s.Len(faqs, 4)
	for _, faq := range faqs {
		s.NotEmpty(faq.PolicyID)
		s.NotEmpty(faq.PolicySlug)
	}
	var homeAnswers []string
	for _, faq := range faqs {
		if faq.PolicySlug == "home-insurance" {
			homeAnswers = append(homeAnswers, faq.Answer)
			s.Equal("home-override", faq.PolicyID)
		}
	}
	s.Equal([]string{"A4"}, homeAnswers)
}

func (s *ContentServiceTestSuite) TestAggregatedFAQs_StoreErrorYieldsEmptyList() {
	// Arrange
	ctx := context.Background()

	s.mockPolicy.On("ListPublishedVisibleTo", ctx, "tenant1", (*string)(nil)).
		Return(nil, errors.New("connection refused"))

	// Act
	faqs := s.service.AggregatedFAQs(ctx, "tenant1", nil)

	// Assert
	s.NotNil(faqs)
	s.Empty(faqs)
}
