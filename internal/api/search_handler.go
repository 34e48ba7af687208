package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mchandler/agency-site-api/internal/api/dto"
	"github.com/mchandler/agency-site-api/internal/middleware"
	"github.com/mchandler/agency-site-api/internal/service"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

type SearchHandler struct {
	BaseHandler
	searchService *service.SearchService
	logger        *logger.Logger
}

func NewSearchHandler(searchService *service.SearchService, logger *logger.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

func (h *SearchHandler) Search(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		notFound(c)
		return
	}

	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusOK, []dto.SearchResult{})
		return
	}

	size, _ := strconv.Atoi(c.Query("size"))
	c.JSON(http.StatusOK, h.searchService.Search(h.RequestCtx(c), tenant.ID, query, size))
}

// Reindex enqueues a full index rebuild for the tenant. Operator only.
func (h *SearchHandler) Reindex(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		notFound(c)
		return
	}

	if err := h.searchService.ScheduleReindex(h.RequestCtx(c), tenant.ID); err != nil {
		h.logger.Error("Failed to schedule reindex", err)
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Failed to schedule reindex"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "scheduled"})
}
