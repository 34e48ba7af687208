package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mchandler/agency-site-api/internal/api/dto"
	"github.com/mchandler/agency-site-api/internal/domain"
	"github.com/mchandler/agency-site-api/internal/middleware"
	"github.com/mchandler/agency-site-api/internal/service"
)

// PageHandler serves the read-only page models. Every route is anonymous;
// resolution failures of any kind surface as a uniform 404.
type PageHandler struct {
	BaseHandler
	pageService     *service.PageService
	locationService *service.LocationService
}

func NewPageHandler(pageService *service.PageService, locationService *service.LocationService) *PageHandler {
	return &PageHandler{
		pageService:     pageService,
		locationService: locationService,
	}
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.Error{Error: "Not found"})
}

// resolveScope extracts the tenant set by the middleware and, when the
// route carries a location slug, resolves it. location stays nil on
// location-free routes.
func (h *PageHandler) resolveScope(c *gin.Context) (*domain.Tenant, *domain.Location, bool) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		notFound(c)
		return nil, nil, false
	}

	slug := c.Param("locationSlug")
	if slug == "" {
		return tenant, nil, true
	}

	location, err := h.locationService.ResolveLocation(h.RequestCtx(c), tenant.ID, slug)
	if err != nil {
		notFound(c)
		return nil, nil, false
	}
	return tenant, location, true
}

// ListLocations returns the active locations, used by the static site
// generator to enumerate location paths.
func (h *PageHandler) ListLocations(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		notFound(c)
		return
	}
	locations := h.locationService.ListActive(h.RequestCtx(c), tenant.ID)
	c.JSON(http.StatusOK, dto.FromLocations(locations))
}

func (h *PageHandler) LocationLanding(c *gin.Context) {
	tenant, location, ok := h.resolveScope(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.pageService.LocationLanding(h.RequestCtx(c), tenant, location))
}

func (h *PageHandler) PolicyPage(c *gin.Context) {
	tenant, location, ok := h.resolveScope(c)
	if !ok {
		return
	}

	page, err := h.pageService.PolicyPage(h.RequestCtx(c), tenant, location, c.Param("policySlug"))
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			notFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Failed to load page"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *PageHandler) FAQPage(c *gin.Context) {
	tenant, location, ok := h.resolveScope(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.pageService.FAQPage(h.RequestCtx(c), tenant, location))
}

func (h *PageHandler) GlossaryIndex(c *gin.Context) {
	tenant, location, ok := h.resolveScope(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.pageService.GlossaryIndex(h.RequestCtx(c), tenant, location))
}

func (h *PageHandler) GlossaryTerm(c *gin.Context) {
	tenant, location, ok := h.resolveScope(c)
	if !ok {
		return
	}

	term, err := h.pageService.GlossaryTerm(h.RequestCtx(c), tenant, location, c.Param("termSlug"))
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, term)
}

func (h *PageHandler) BlogIndex(c *gin.Context) {
	tenant, _, ok := h.resolveScope(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.pageService.BlogIndex(h.RequestCtx(c), tenant))
}

func (h *PageHandler) BlogPost(c *gin.Context) {
	tenant, _, ok := h.resolveScope(c)
	if !ok {
		return
	}

	post, err := h.pageService.BlogPost(h.RequestCtx(c), tenant, c.Param("postSlug"))
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PageHandler) JobPage(c *gin.Context) {
	tenant, location, ok := h.resolveScope(c)
	if !ok {
		return
	}

	job, err := h.pageService.JobPage(h.RequestCtx(c), tenant, location, c.Param("jobSlug"))
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *PageHandler) CareersPage(c *gin.Context) {
	tenant, location, ok := h.resolveScope(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.pageService.CareersPage(h.RequestCtx(c), tenant, location))
}
