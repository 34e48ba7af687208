package postgres

import (
	"gorm.io/gorm"
)

// publishedSlugScope narrows a query to published rows of one (tenant, slug)
// pair in a single precedence tier. A nil locationID selects the global tier.
func publishedSlugScope(db *gorm.DB, tenantID, slug string, locationID *string) *gorm.DB {
	db = db.Where("tenant_id = ? AND slug = ? AND published = ?", tenantID, slug, true)
	if locationID == nil {
		return db.Where("location_id IS NULL")
	}
	return db.Where("location_id = ?", *locationID)
}

// visibleScope narrows a query to published rows in either tier visible to a
// location: its own overrides plus the tenant-wide globals. With a nil
// locationID only globals are visible.
func visibleScope(db *gorm.DB, tenantID string, locationID *string) *gorm.DB {
	db = db.Where("tenant_id = ? AND published = ?", tenantID, true)
	if locationID == nil {
		return db.Where("location_id IS NULL")
	}
	return db.Where("(location_id = ? OR location_id IS NULL)", *locationID)
}
