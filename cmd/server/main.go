package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appbilling "github.com/crediario/backend/internal/application/billing"
	apporders "github.com/crediario/backend/internal/application/orders"
	apppartner "github.com/crediario/backend/internal/application/partner"
	"github.com/crediario/backend/internal/infrastructure/auth"
	"github.com/crediario/backend/internal/infrastructure/cache"
	"github.com/crediario/backend/internal/infrastructure/config"
	"github.com/crediario/backend/internal/infrastructure/event"
	"github.com/crediario/backend/internal/infrastructure/logger"
	"github.com/crediario/backend/internal/infrastructure/payment"
	"github.com/crediario/backend/internal/infrastructure/persistence"
	"github.com/crediario/backend/internal/interfaces/http/handler"
	"github.com/crediario/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting crediario backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	contractRepo := persistence.NewGormContractRepository(db.DB)
	installmentRepo := persistence.NewGormInstallmentRepository(db.DB)
	orderRepo := persistence.NewGormOrderRequestRepository(db.DB)

	// Event bus with the audit trail subscribed to everything
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewAuditLogHandler(log))

	// Application services
	customerService := apppartner.NewCustomerService(customerRepo, eventBus)
	contractService := appbilling.NewContractService(contractRepo, customerRepo, eventBus)
	ledgerService := appbilling.NewLedgerService(installmentRepo, eventBus)
	reportService := appbilling.NewReportService(contractRepo, installmentRepo, orderRepo)
	portalService := appbilling.NewPortalService(customerRepo, contractRepo, installmentRepo)
	orderService := apporders.NewOrderService(orderRepo, customerRepo, eventBus)

	// Payment gateway webhook verification and callback processing
	gateway, err := payment.NewPixWebhookAdapter(cfg.Gateway)
	if err != nil {
		log.Fatal("Failed to initialize payment gateway", zap.Error(err))
	}
	idempotencyStore := cache.NewIdempotencyStore(cfg.Redis, log)
	callbackService := appbilling.NewPaymentCallbackService(gateway, ledgerService, idempotencyStore, log)

	// Auth
	jwtService := auth.NewJWTService(cfg.JWT)
	adminAuth := auth.NewAdminAuthenticator(cfg.Admin)

	engine := router.New(cfg, log, jwtService, router.Handlers{
		Auth:            handler.NewAuthHandler(jwtService, adminAuth, customerService),
		Customer:        handler.NewCustomerHandler(customerService),
		Contract:        handler.NewContractHandler(contractService, cfg.Admin.DeleteCode),
		Installment:     handler.NewInstallmentHandler(ledgerService),
		Order:           handler.NewOrderHandler(orderService),
		Report:          handler.NewReportHandler(reportService),
		Portal:          handler.NewPortalHandler(portalService, orderService),
		PaymentCallback: handler.NewPaymentCallbackHandler(callbackService),
		Health:          handler.NewHealthHandler(db, version),
	})

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
