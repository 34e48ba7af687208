package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mchandler/agency-site-api/internal/api/dto"
	"github.com/mchandler/agency-site-api/internal/config"
	"github.com/mchandler/agency-site-api/internal/domain"
	"github.com/mchandler/agency-site-api/internal/service"
	"github.com/mchandler/agency-site-api/internal/utils"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

const tenantContextKey = "tenant"

type TenantMiddleware struct {
	config        *config.Config
	tenantService *service.TenantService
	logger        *logger.Logger
}

func NewTenantMiddleware(config *config.Config, tenantService *service.TenantService, logger *logger.Logger) *TenantMiddleware {
	return &TenantMiddleware{
		config:        config,
		tenantService: tenantService,
		logger:        logger,
	}
}

// ResolveTenant loads the tenant configured for this deployment and stores
// it on the request. A missing or unknown slug means every content route
// 404s; the deployment serves nothing rather than something wrong.
func (m *TenantMiddleware) ResolveTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.config.TenantSlug == "" {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.Error{Error: "Not found"})
			return
		}

		tenant, err := m.tenantService.ResolveBySlug(c.Request.Context(), m.config.TenantSlug)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, dto.Error{Error: "Not found"})
			return
		}

		c.Set(tenantContextKey, tenant)
		c.Request = c.Request.WithContext(utils.WithTenantID(c.Request.Context(), tenant.ID))
		c.Next()
	}
}

// SetTenant stores a tenant on the request the way ResolveTenant does.
// Used by handler tests that bypass the middleware chain.
func SetTenant(c *gin.Context, tenant *domain.Tenant) {
	c.Set(tenantContextKey, tenant)
	c.Request = c.Request.WithContext(utils.WithTenantID(c.Request.Context(), tenant.ID))
}

// TenantFromContext returns the tenant resolved by ResolveTenant.
func TenantFromContext(c *gin.Context) (*domain.Tenant, bool) {
	value, exists := c.Get(tenantContextKey)
	if !exists {
		return nil, false
	}
	tenant, ok := value.(*domain.Tenant)
	return tenant, ok
}
