package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sangkips/bizdesk-api/internal/config"
	domainRepo "github.com/sangkips/bizdesk-api/internal/domain/repository"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/handler"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/middleware"
	"github.com/sangkips/bizdesk-api/pkg/apperror"
	"github.com/sangkips/bizdesk-api/pkg/identity"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Client      *handler.ClientHandler
	Quote       *handler.QuoteHandler
	Invoice     *handler.InvoiceHandler
	Project     *handler.ProjectHandler
	File        *handler.FileHandler
	Billing     *handler.BillingHandler
	AI          *handler.AIHandler
	ErrorReport *handler.ErrorReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	Verifier        identity.Verifier
	IdempotencyRepo domainRepo.IdempotencyRepository
	RateLimiter     *middleware.CallerRateLimiter
	// Metrics receives the HTTP collectors and is served on /metrics.
	Metrics *prometheus.Registry
	// Uploads serves stored objects under /uploads when set.
	Uploads http.FileSystem
}

func init() {
	// Request bodies are validated against fixed schemas.
	binding.EnableDecoderDisallowUnknownFields = true
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	metrics := deps.Metrics
	if metrics == nil {
		metrics = prometheus.NewRegistry()
	}

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.MetricsMiddleware(middleware.NewHTTPMetrics(metrics)))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.NoMethod(func(c *gin.Context) {
		response.Error(c, apperror.ErrMethodNotAllowed)
	})
	router.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.NewNotFoundError("Route"))
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics, promhttp.HandlerOpts{})))

	if deps.Uploads != nil {
		router.StaticFS("/uploads", deps.Uploads)
	}

	api := router.Group("/api")
	{
		// Public routes (no authentication required)
		registerPublicRoutes(api, h)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(deps.Verifier))

		rateLimiter := deps.RateLimiter
		if rateLimiter == nil {
			rateLimiter = NewRateLimiter(deps.Cfg.RateLimit)
		}
		protected.Use(rateLimiter.Middleware())

		if deps.IdempotencyRepo != nil {
			protected.Use(middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}))
		}

		registerProtectedRoutes(protected, h)
	}

	return router
}

// NewRateLimiter turns "N requests per D seconds" into a per-caller token
// bucket with a burst of N.
func NewRateLimiter(cfg config.RateLimitConfig) *middleware.CallerRateLimiter {
	rl := middleware.DefaultRateLimiterConfig()
	if cfg.Requests > 0 && cfg.Duration > 0 {
		rl.RequestsPerSecond = float64(cfg.Requests) / float64(cfg.Duration)
		rl.BurstSize = cfg.Requests
	}
	rl.CleanupInterval = 5 * time.Minute
	rl.EntryTTL = 10 * time.Minute
	return middleware.NewCallerRateLimiter(rl)
}

func registerPublicRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.POST("/errors", h.ErrorReport.Report)
	// Stripe authenticates with its signature header instead of a bearer token.
	rg.POST("/billing/webhook", h.Billing.Webhook)
}

func registerProtectedRoutes(rg *gin.RouterGroup, h *Handlers) {
	clients := rg.Group("/klanten")
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.GET("/:id", h.Client.Get)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", h.Client.Delete)
	}

	quotes := rg.Group("/offertes")
	{
		quotes.GET("", h.Quote.List)
		quotes.POST("", h.Quote.Create)
		quotes.GET("/:id", h.Quote.Get)
		quotes.PUT("/:id", h.Quote.Update)
		quotes.DELETE("/:id", h.Quote.Delete)
		quotes.POST("/:id/status", h.Quote.ChangeStatus)
	}

	invoices := rg.Group("/facturen")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.DELETE("/:id", h.Invoice.Delete)
	}

	projects := rg.Group("/projecten")
	{
		projects.GET("", h.Project.List)
		projects.POST("", h.Project.Create)
		projects.GET("/:id", h.Project.Get)
		projects.PUT("/:id", h.Project.Update)
		projects.DELETE("/:id", h.Project.Delete)
	}

	files := rg.Group("/files")
	{
		files.GET("", h.File.List)
		files.POST("/upload", h.File.Upload)
		files.GET("/:id", h.File.Get)
		files.DELETE("/:id", h.File.Delete)
	}

	billing := rg.Group("/billing")
	{
		billing.POST("/checkout", h.Billing.Checkout)
		billing.POST("/portal", h.Billing.Portal)
		billing.POST("/cancel", h.Billing.Cancel)
		billing.GET("/subscription", h.Billing.Subscription)
	}

	ai := rg.Group("/ai")
	{
		ai.POST("/offerte-analyse", h.AI.AnalyzeQuote)
		ai.POST("/feedback", h.AI.Feedback)
	}
}
