package postgres

import (
	"testing"

	"github.com/stretchr/testify/suite"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mchandler/agency-site-api/internal/domain"
)

// Scope tests build statements in DryRun mode and assert on the generated
// SQL; no database is involved.
type QueryScopeTestSuite struct {
	suite.Suite
	db *gorm.DB
}

func (s *QueryScopeTestSuite) SetupTest() {
	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=dryrun dbname=dryrun",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)
	s.db = db
}

func TestQueryScopes(t *testing.T) {
	suite.Run(t, new(QueryScopeTestSuite))
}

func (s *QueryScopeTestSuite) TestPublishedSlugScope_GlobalTier() {
	// Act
	tx := publishedSlugScope(s.db.Model(&domain.PolicyPage{}), "tenant1", "home", nil).
		Find(&[]domain.PolicyPage{})

	// Assert
	sql := tx.Statement.SQL.String()
	s.Contains(sql, "published = $")
	s.Contains(sql, "location_id IS NULL")
	s.NotContains(sql, "location_id = $")
	s.Contains(tx.Statement.Vars, true)
}

func (s *QueryScopeTestSuite) TestPublishedSlugScope_OverrideTier() {
	// Arrange
	locationID := "loc1"

	// Act
	tx := publishedSlugScope(s.db.Model(&domain.PolicyPage{}), "tenant1", "home", &locationID).
		Find(&[]domain.PolicyPage{})

	// Assert
	sql := tx.Statement.SQL.String()
	s.Contains(sql, "published = $")
	s.Contains(sql, "location_id = $")
	s.NotContains(sql, "location_id IS NULL")
	s.Contains(tx.Statement.Vars, true)
	s.Contains(tx.Statement.Vars, "loc1")
}

// A lookup in one tier must never surface an unpublished row, so the
// published predicate has to survive composition with the repositories'
// ordering and limit.
func (s *QueryScopeTestSuite) TestPublishedSlugScope_SurvivesNewestFirstLookup() {
	// Act
	tx := publishedSlugScope(s.db.Model(&domain.PolicyPage{}), "tenant1", "home", nil).
		Order("created_at DESC").
		First(&domain.PolicyPage{})

	// Assert
	sql := tx.Statement.SQL.String()
	s.Contains(sql, "published = $")
	s.Contains(sql, "created_at DESC")
}

func (s *QueryScopeTestSuite) TestVisibleScope_WithLocation() {
	// Arrange
	locationID := "loc1"

	// Act
	tx := visibleScope(s.db.Model(&domain.GlossaryTerm{}), "tenant1", &locationID).
		Find(&[]domain.GlossaryTerm{})

	// Assert
	sql := tx.Statement.SQL.String()
	s.Contains(sql, "published = $")
	s.Contains(sql, "(location_id = $")
	s.Contains(sql, "OR location_id IS NULL)")
	s.Contains(tx.Statement.Vars, true)
}

func (s *QueryScopeTestSuite) TestVisibleScope_GlobalOnly() {
	// Act
	tx := visibleScope(s.db.Model(&domain.GlossaryTerm{}), "tenant1", nil).
		Find(&[]domain.GlossaryTerm{})

	// Assert
	sql := tx.Statement.SQL.String()
	s.Contains(sql, "published = $")
	s.Contains(sql, "location_id IS NULL")
	s.NotContains(sql, "location_id = $")
}
