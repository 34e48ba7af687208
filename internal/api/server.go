package api

import (
	"github.com/gin-gonic/gin"

	"github.com/mchandler/agency-site-api/internal/middleware"
	"github.com/mchandler/agency-site-api/internal/service"
	"github.com/mchandler/agency-site-api/internal/service/pubsub"
	"github.com/mchandler/agency-site-api/pkg/logger"
)

type Server struct {
	page         *PageHandler
	submission   *SubmissionHandler
	search       *SearchHandler
	websocket    *WebSocketHandler
	tenant       *middleware.TenantMiddleware
	locationGate *middleware.LocationGateMiddleware
	operator     *middleware.OperatorMiddleware
	rateLimit    *middleware.RateLimitMiddleware
}

func NewServer(
	pageService *service.PageService,
	locationService *service.LocationService,
	contentService *service.ContentService,
	submissionService *service.SubmissionService,
	searchService *service.SearchService,
	tenant *middleware.TenantMiddleware,
	locationGate *middleware.LocationGateMiddleware,
	operator *middleware.OperatorMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
) *Server {
	return &Server{
		page:         NewPageHandler(pageService, locationService),
		submission:   NewSubmissionHandler(submissionService, locationService, contentService, logger),
		search:       NewSearchHandler(searchService, logger),
		websocket:    NewWebSocketHandler(logger, pubsub),
		tenant:       tenant,
		locationGate: locationGate,
		operator:     operator,
		rateLimit:    rateLimit,
	}
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.rateLimit.IPRateLimit())
	api.Use(s.tenant.ResolveTenant())

	{
		locations := api.Group("/locations", s.locationGate.RequireMultiLocation())
		{
			locations.GET("", s.page.ListLocations)
			locations.GET("/:locationSlug", s.page.LocationLanding)
			locations.GET("/:locationSlug/policies/:policySlug", s.page.PolicyPage)
			locations.GET("/:locationSlug/faqs", s.page.FAQPage)
			locations.GET("/:locationSlug/glossary", s.page.GlossaryIndex)
			locations.GET("/:locationSlug/glossary/:termSlug", s.page.GlossaryTerm)
		}

		api.GET("/policies/:policySlug", s.page.PolicyPage)
		api.GET("/faqs", s.page.FAQPage)
		api.GET("/glossary", s.page.GlossaryIndex)
		api.GET("/glossary/:termSlug", s.page.GlossaryTerm)
		api.GET("/blog", s.page.BlogIndex)
		api.GET("/blog/:postSlug", s.page.BlogPost)
		api.GET("/careers", s.page.CareersPage)
		api.GET("/careers/:jobSlug", s.page.JobPage)
		api.GET("/search", s.search.Search)

		forms := api.Group("", s.rateLimit.SubmissionRateLimit())
		{
			forms.POST("/contact", s.submission.SubmitContact)
			forms.POST("/careers/:jobSlug/apply", s.submission.SubmitApplication)
		}

		ops := api.Group("", s.operator.OperatorAuth())
		{
			ops.GET("/submissions/stream", s.websocket.HandleWebSocket)
			ops.POST("/admin/reindex", s.search.Reindex)
			ops.POST("/admin/export", s.submission.ExportSubmissions)
		}
	}
}

// StartWebSocketHub starts the hub that fans submissions out to operator
// clients.
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// GetWebSocketHandler returns the hub for wiring up broadcasting
func (s *Server) GetWebSocketHandler() *WebSocketHandler {
	return s.websocket
}
