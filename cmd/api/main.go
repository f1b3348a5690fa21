package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/av954416-web/javadrive/internal/audit"
	"github.com/av954416-web/javadrive/internal/config"
	dbpkg "github.com/av954416-web/javadrive/internal/db"
	"github.com/av954416-web/javadrive/internal/infra/lock"
	"github.com/av954416-web/javadrive/internal/infra/payment"
	"github.com/av954416-web/javadrive/internal/infra/storage"
	"github.com/av954416-web/javadrive/internal/logger"
	"github.com/av954416-web/javadrive/internal/routes"
	"github.com/av954416-web/javadrive/internal/validators"
)

func main() {

	cfg := config.Load()

	log := logger.New(cfg)
	defer func() { _ = log.Sync() }()

	db := dbpkg.NewDB(cfg, log)

	if err := validators.Register(); err != nil {
		log.Fatal("failed to register validators", zap.Error(err))
	}

	// --------------------------------------------------
	// Optional collaborators
	// --------------------------------------------------
	var locker lock.Locker = lock.Noop{}
	if cfg.RedisURL != "" {
		client, err := lock.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal("invalid REDIS_URL", zap.Error(err))
		}
		defer client.Close()
		locker = lock.NewRedisLocker(client, cfg.BookingLockTTL, log)
	} else {
		log.Info("REDIS_URL not set, booking lock relies on the database only")
	}

	var gateway payment.Gateway = payment.Disabled{}
	if cfg.MercadoPagoAccessToken != "" {
		mp, err := payment.NewMercadoPago(cfg.MercadoPagoAccessToken, cfg.MercadoPagoNotificationURL)
		if err != nil {
			log.Fatal("failed to configure mercado pago", zap.Error(err))
		}
		gateway = mp
	}

	deps := routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      log,
		AuditLog: audit.New(db),
		Locker:   locker,
		Gateway:  gateway,
	}
	if cfg.S3.Enabled() {
		deps.Images = storage.NewImageStore(cfg.S3)
	}

	deps.Audit = audit.NewDispatcher(deps.AuditLog, log)
	defer deps.Audit.Close()

	// --------------------------------------------------
	// HTTP
	// --------------------------------------------------
	if !cfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(logger.Gin(log), gin.Recovery())

	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
