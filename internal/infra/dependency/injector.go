// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/hotel-ops/backend/config"
	"github.com/hotel-ops/backend/internal/application/adapter"
	"github.com/hotel-ops/backend/internal/application/usecase/export"
	"github.com/hotel-ops/backend/internal/application/usecase/report"
	"github.com/hotel-ops/backend/internal/domain/valueobject"
	"github.com/hotel-ops/backend/internal/infra/server/router"
	"github.com/hotel-ops/backend/internal/integration/document"
	"github.com/hotel-ops/backend/internal/integration/email"
	"github.com/hotel-ops/backend/internal/integration/entrypoint/controller"
	"github.com/hotel-ops/backend/internal/integration/entrypoint/middleware"
	"github.com/hotel-ops/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	movementRepo := persistence.NewMovementRepository(db)
	shiftRepo := persistence.NewShiftRepository(db)
	reportRunRepo := persistence.NewReportRunRepository(db)

	// Create renderers
	htmlRenderer, err := document.NewHTMLRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create HTML renderer: %w", err)
	}
	renderers := map[valueobject.ReportFormat]adapter.DocumentRenderer{
		valueobject.FormatDocument: document.NewPDFRenderer(),
		valueobject.FormatPrint:    htmlRenderer,
	}

	// Create report mailer (optional)
	var mailer adapter.ReportMailer
	if cfg.Email.ResendAPIKey != "" {
		mailer = email.NewResendReportMailer(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	// Create use cases
	generateUseCase := report.NewGenerateShiftReportUseCase(
		movementRepo,
		shiftRepo,
		reportRunRepo,
		cfg.Report.TaxRate,
		cfg.Report.ServiceFeeRate,
		cfg.Report.HotelName,
	)
	exportUseCase := export.NewExportReportUseCase(renderers, mailer, cfg.Report.BaseName)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			if redisClient == nil {
				return false
			}
			ctx, cancel := contextWithTimeout()
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)
	reportController := controller.NewReportController(generateUseCase, exportUseCase)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var reportRateLimiter *middleware.RateLimiter
	if redisClient != nil {
		if cfg.Server.Environment == "test" {
			reportRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
		} else {
			reportRateLimiter = middleware.NewRateLimiter(redisClient)
		}
	}
	operatorIdentity := middleware.NewOperatorIdentity(cfg.JWT.Secret)

	r := router.NewRouter(healthController, reportController, reportRateLimiter, operatorIdentity)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}, nil
}

func contextWithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 2*time.Second)
}
