package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mchandler/agency-site-api/internal/api/dto"
	"github.com/mchandler/agency-site-api/internal/service"
)

type LocationGateMiddleware struct {
	locationService *service.LocationService
}

func NewLocationGateMiddleware(locationService *service.LocationService) *LocationGateMiddleware {
	return &LocationGateMiddleware{
		locationService: locationService,
	}
}

// RequireMultiLocation guards the /locations routes. Single-location
// tenants do not expose per-location URLs at all, so the whole subtree
// 404s before any slug is looked at.
func (m *LocationGateMiddleware) RequireMultiLocation() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant, ok := TenantFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.Error{Error: "Not found"})
			return
		}

		if !m.locationService.IsMultiLocation(c.Request.Context(), tenant.ID) {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.Error{Error: "Not found"})
			return
		}

		c.Next()
	}
}
