package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	entitlementUsecases "mirrorly/internal/application/entitlement/usecases"
	paymentUsecases "mirrorly/internal/application/payment/usecases"
	"mirrorly/internal/domain/subscription"
	"mirrorly/internal/infrastructure/config"
	"mirrorly/internal/infrastructure/gateway"
	"mirrorly/internal/infrastructure/repository"
	"mirrorly/internal/interfaces/http/handlers"
	"mirrorly/internal/interfaces/http/middleware"
	"mirrorly/internal/shared/db"
	"mirrorly/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	healthHandler  *handlers.HealthHandler
	webhookHandler *handlers.WebhookHandler
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(database *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(database)
	configRepo := repository.NewMirrorConfigRepository(database)
	paymentRepo := repository.NewPaymentRepository(database)

	txManager := db.NewTransactionManager(database)
	verifier := gateway.NewMidtransVerifier(&cfg.Gateway, log)
	tierResolver := subscription.NewDefaultTierResolver()
	policies := subscription.DefaultPolicyTable()

	reconcileUC := entitlementUsecases.NewReconcileEntitlementsUseCase(
		configRepo, policies, txManager, log)
	notificationUC := paymentUsecases.NewHandleGatewayNotificationUseCase(
		verifier,
		paymentRepo,
		userRepo,
		tierResolver,
		reconcileUC,
		txManager,
		cfg.Billing.TierDurationDays,
		log,
	)

	return &Router{
		engine:         engine,
		healthHandler:  handlers.NewHealthHandler(),
		webhookHandler: handlers.NewWebhookHandler(notificationUC, log),
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(log logger.Interface) {
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.Recovery())

	r.engine.GET("/health", r.healthHandler.HealthCheck)

	webhooks := r.engine.Group("/webhooks")
	{
		webhooks.POST("/payment/:pathSecret", r.webhookHandler.HandlePaymentNotification)
	}
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
