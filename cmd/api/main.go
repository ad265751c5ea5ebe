package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sangkips/bizdesk-api/internal/application/service"
	"github.com/sangkips/bizdesk-api/internal/config"
	"github.com/sangkips/bizdesk-api/internal/domain/gateway"
	domainRepo "github.com/sangkips/bizdesk-api/internal/domain/repository"
	"github.com/sangkips/bizdesk-api/internal/infrastructure/ai"
	"github.com/sangkips/bizdesk-api/internal/infrastructure/database"
	"github.com/sangkips/bizdesk-api/internal/infrastructure/payment"
	"github.com/sangkips/bizdesk-api/internal/infrastructure/repository"
	"github.com/sangkips/bizdesk-api/internal/infrastructure/storage"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/handler"
	"github.com/sangkips/bizdesk-api/internal/presentation/http/routes"
	"github.com/sangkips/bizdesk-api/pkg/identity"
	"github.com/sangkips/bizdesk-api/pkg/logger"
	"go.uber.org/zap"
)

const idempotencyPurgeInterval = time.Hour

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(logger.Config{
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Env,
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := database.Open(&cfg.Database, cfg.App.Debug, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get database handle", zap.Error(err))
	}
	defer sqlDB.Close()

	// Run auto-migrations
	if err := database.AutoMigrate(db, log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// External adapters are built once and shared by every request
	verifier, err := newVerifier(ctx, cfg.Identity)
	if err != nil {
		log.Fatal("failed to initialize identity verifier", zap.Error(err))
	}

	objects, err := newObjectStore(cfg.Storage)
	if err != nil {
		log.Fatal("failed to initialize storage", zap.Error(err))
	}

	provider, err := newPaymentProvider(cfg.Billing)
	if err != nil {
		log.Fatal("failed to initialize payment provider", zap.Error(err))
	}

	advisor, closeAdvisor, err := newQuoteAdvisor(ctx, cfg.AI)
	if err != nil {
		log.Fatal("failed to initialize AI advisor", zap.Error(err))
	}
	defer closeAdvisor()

	log.Info("adapters ready",
		zap.String("identity", cfg.Identity.Provider),
		zap.String("storage", objects.Mode()),
		zap.String("billing", provider.Mode()),
		zap.String("ai", advisor.Mode()),
	)

	// Initialize repositories
	clock := service.Clock(time.Now)
	stores := repository.NewStores(db, time.Now)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	clientService := service.NewClientService(stores.Clients)
	quoteService := service.NewQuoteService(stores.Quotes, clock)
	invoiceService := service.NewInvoiceService(stores.Invoices, clock)
	projectService := service.NewProjectService(stores.Projects)
	fileService := service.NewFileService(stores.Files, objects, cfg.Storage.UploadMaxSize, log)
	billingService := service.NewBillingService(
		subscriptionRepo,
		provider,
		payment.NewWebhookVerifier(cfg.Billing.WebhookSecret, cfg.Billing.WebhookTolerance),
		service.BillingOptions{
			Plans:           cfg.Billing.Plans,
			SuccessURL:      cfg.Billing.SuccessURL,
			CancelURL:       cfg.Billing.CancelURL,
			PortalReturnURL: cfg.Billing.PortalReturnURL,
		},
		clock,
		log,
	)
	aiService := service.NewAIService(stores.Quotes, stores.AIFeedback, advisor)

	// Initialize handlers
	handlers := &routes.Handlers{
		Client:      handler.NewClientHandler(clientService),
		Quote:       handler.NewQuoteHandler(quoteService),
		Invoice:     handler.NewInvoiceHandler(invoiceService),
		Project:     handler.NewProjectHandler(projectService),
		File:        handler.NewFileHandler(fileService),
		Billing:     handler.NewBillingHandler(billingService),
		AI:          handler.NewAIHandler(aiService),
		ErrorReport: handler.NewErrorReportHandler(),
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	rateLimiter := routes.NewRateLimiter(cfg.RateLimit)
	defer rateLimiter.Close()

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		Verifier:        verifier,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
		Metrics:         registry,
		Uploads:         objects.FileSystem(),
	})

	go purgeIdempotencyKeys(ctx, idempotencyRepo, log)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.App.ReadTimeout,
		WriteTimeout:      cfg.App.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

func newVerifier(ctx context.Context, cfg config.IdentityConfig) (identity.Verifier, error) {
	if cfg.Provider == "google" {
		verifier, err := identity.NewGoogleVerifier(ctx, cfg.GoogleAudience)
		if err != nil {
			return nil, err
		}
		return verifier, nil
	}
	return identity.NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiry), nil
}

func newObjectStore(cfg config.StorageConfig) (*storage.ObjectStore, error) {
	if cfg.Mode == config.ModeStub {
		return storage.NewMemoryStore(cfg.PublicBaseURL), nil
	}
	return storage.NewDiskStore(cfg.Path, cfg.PublicBaseURL)
}

func newPaymentProvider(cfg config.BillingConfig) (gateway.PaymentProvider, error) {
	if cfg.Mode == config.ModeStub {
		return payment.NewStubProvider(), nil
	}
	provider, err := payment.NewStripeProvider(cfg.StripeSecretKey)
	if err != nil {
		return nil, err
	}
	return provider, nil
}

// newQuoteAdvisor also returns the function that releases the advisor
func newQuoteAdvisor(ctx context.Context, cfg config.AIConfig) (gateway.QuoteAdvisor, func(), error) {
	if cfg.Mode == config.ModeStub {
		return ai.NewStubAdvisor(), func() {}, nil
	}
	advisor, err := ai.NewGeminiAdvisor(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, nil, err
	}
	return advisor, advisor.Close, nil
}

// purgeIdempotencyKeys drops expired keys until ctx is done
func purgeIdempotencyKeys(ctx context.Context, repo domainRepo.IdempotencyRepository, log *zap.Logger) {
	ticker := time.NewTicker(idempotencyPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := repo.DeleteExpired(ctx); err != nil {
				log.Warn("failed to purge idempotency keys", zap.Error(err))
			}
		}
	}
}
