package cache

import (
	"fmt"
)

func ContentKey(contentType, tenantID, slug, locationTier string) string {
	return fmt.Sprintf("content:%s:%s:%s:%s", contentType, tenantID, slug, locationTier)
}

func LocationCountKey(tenantID string) string {
	return fmt.Sprintf("locations:count:%s", tenantID)
}

func LocationListKey(tenantID string) string {
	return fmt.Sprintf("locations:list:%s", tenantID)
}
