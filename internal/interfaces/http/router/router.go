package router

import (
	"github.com/crediario/backend/internal/infrastructure/auth"
	"github.com/crediario/backend/internal/infrastructure/config"
	"github.com/crediario/backend/internal/interfaces/http/handler"
	"github.com/crediario/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers bundles everything the router mounts
type Handlers struct {
	Auth            *handler.AuthHandler
	Customer        *handler.CustomerHandler
	Contract        *handler.ContractHandler
	Installment     *handler.InstallmentHandler
	Order           *handler.OrderHandler
	Report          *handler.ReportHandler
	Portal          *handler.PortalHandler
	PaymentCallback *handler.PaymentCallbackHandler
	Health          *handler.HealthHandler
}

// New builds the gin engine with all middleware and routes mounted
func New(cfg *config.Config, log *zap.Logger, jwtService *auth.JWTService, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	registerValidations()

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))

	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	engine.GET("/health", h.Health.Live)
	engine.GET("/health/ready", h.Health.Ready)

	v1 := engine.Group("/api/v1")

	// public routes
	v1.POST("/auth/login", h.Auth.AdminLogin)
	v1.POST("/auth/customer-login", h.Auth.CustomerLogin)
	v1.POST("/payments/callback", h.PaymentCallback.Handle)

	// back office, admin tokens only
	admin := v1.Group("")
	admin.Use(middleware.Authenticate(jwtService), middleware.RequireAdmin())
	{
		admin.POST("/customers", h.Customer.Create)
		admin.GET("/customers", h.Customer.List)
		admin.GET("/customers/:id", h.Customer.Get)
		admin.PATCH("/customers/:id", h.Customer.Update)
		admin.DELETE("/customers/:id", h.Customer.Delete)
		admin.GET("/customers/:id/contracts", h.Contract.ListByCustomer)

		admin.POST("/contracts", h.Contract.Create)
		admin.GET("/contracts", h.Contract.List)
		admin.GET("/contracts/:id", h.Contract.Get)
		admin.DELETE("/contracts/:id", h.Contract.Delete)
		admin.GET("/contracts/:id/installments", h.Installment.ListByContract)

		admin.POST("/installments/:id/pay", h.Installment.MarkPaid)
		admin.PATCH("/installments/:id", h.Installment.Edit)
		admin.DELETE("/installments/:id", h.Installment.Delete)

		admin.POST("/orders", h.Order.Create)
		admin.GET("/orders", h.Order.List)
		admin.POST("/orders/:id/decide", h.Order.Decide)
		admin.DELETE("/orders/:id", h.Order.Delete)

		admin.GET("/reports/dashboard", h.Report.Dashboard)
		admin.GET("/reports/received", h.Report.Received)
		admin.GET("/reports/deals", h.Report.Deals)
	}

	// customer portal, customer tokens only
	portal := v1.Group("/portal")
	portal.Use(middleware.Authenticate(jwtService), middleware.RequireCustomer())
	{
		portal.GET("/overview", h.Portal.Overview)
		portal.GET("/installments", h.Portal.Installments)
		portal.GET("/orders", h.Portal.Orders)
		portal.POST("/orders", h.Portal.CreateOrder)
	}

	return engine
}
