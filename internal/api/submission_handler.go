package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mchandler/agency-site-api/internal/api/dto"
	"github.com/mchandler/agency-site-api/internal/domain"
	"github.com/mchandler/agency-site-api/internal/middleware"
	"github.com/mchandler/agency-site-api/internal/service"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

const maxResumeSize = 5 * 1024 * 1024 // 5MB

// SubmissionHandler accepts visitor form posts. Both endpoints return 202
// the moment the row lands; notification delivery is asynchronous.
type SubmissionHandler struct {
	BaseHandler
	submissionService *service.SubmissionService
	locationService   *service.LocationService
	contentService    *service.ContentService
	logger            *logger.Logger
}

func NewSubmissionHandler(submissionService *service.SubmissionService, locationService *service.LocationService, contentService *service.ContentService, logger *logger.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		locationService:   locationService,
		contentService:    contentService,
		logger:            logger,
	}
}

// resolveOptionalLocation maps a submitted location slug to a location. An
// unknown or out-of-mode slug does not reject the submission; the row is
// simply stored without a location.
func (h *SubmissionHandler) resolveOptionalLocation(c *gin.Context, tenantID, slug string) *domain.Location {
	if slug == "" {
		return nil
	}
	location, err := h.locationService.ResolveLocation(h.RequestCtx(c), tenantID, slug)
	if err != nil {
		return nil
	}
	return location
}

func (h *SubmissionHandler) SubmitContact(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		notFound(c)
		return
	}

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	location := h.resolveOptionalLocation(c, tenant.ID, req.LocationSlug)

	accepted, err := h.submissionService.SubmitContact(h.RequestCtx(c), tenant, location, &req)
	if err != nil {
		h.logger.Error("Failed to accept contact submission", err)
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Failed to accept submission"})
		return
	}

	c.JSON(http.StatusAccepted, accepted)
}

// ExportSubmissions enqueues a submissions export for the export worker.
// Operator only. The window bounds are optional RFC 3339 query parameters;
// omitted bounds default to the past thirty days.
func (h *SubmissionHandler) ExportSubmissions(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		notFound(c)
		return
	}

	var from, to time.Time
	var err error
	if raw := c.Query("from"); raw != "" {
		if from, err = time.Parse(time.RFC3339, raw); err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid 'from' timestamp"})
			return
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err = time.Parse(time.RFC3339, raw); err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid 'to' timestamp"})
			return
		}
	}
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Export window is empty"})
		return
	}

	if err := h.submissionService.ScheduleExport(h.RequestCtx(c), tenant.ID, from, to); err != nil {
		h.logger.Error("Failed to schedule export", err)
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Failed to schedule export"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "scheduled"})
}

func (h *SubmissionHandler) SubmitApplication(c *gin.Context) {
	tenant, ok := middleware.TenantFromContext(c)
	if !ok {
		notFound(c)
		return
	}

	posting, err := h.contentService.ResolveJob(h.RequestCtx(c), tenant.ID, c.Param("jobSlug"), nil)
	if err != nil {
		notFound(c)
		return
	}

	var req dto.ApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	location := h.resolveOptionalLocation(c, tenant.ID, req.LocationSlug)

	fileHeader, err := c.FormFile("resume")
	if err != nil && err != http.ErrMissingFile {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid resume upload"})
		return
	}

	var accepted *dto.SubmissionAccepted
	if fileHeader != nil {
		if fileHeader.Size > maxResumeSize {
			c.JSON(http.StatusRequestEntityTooLarge, dto.Error{Error: "Resume exceeds the 5MB limit"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid resume upload"})
			return
		}
		defer file.Close()

		accepted, err = h.submissionService.SubmitApplication(h.RequestCtx(c), tenant, location, posting, &req,
			file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
		if err != nil {
			h.logger.Error("Failed to accept job application", err)
			c.JSON(http.StatusInternalServerError, dto.Error{Error: "Failed to accept application"})
			return
		}
	} else {
		accepted, err = h.submissionService.SubmitApplication(h.RequestCtx(c), tenant, location, posting, &req, nil, "", "")
		if err != nil {
			h.logger.Error("Failed to accept job application", err)
			c.JSON(http.StatusInternalServerError, dto.Error{Error: "Failed to accept application"})
			return
		}
	}

	c.JSON(http.StatusAccepted, accepted)
}
