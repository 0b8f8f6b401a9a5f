// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"intake-gateway/internal/brand"
	httpapi "intake-gateway/internal/http"
	intakehandler "intake-gateway/internal/intake/handler"
	intakeservice "intake-gateway/internal/intake/service"
	paymenthandler "intake-gateway/internal/payment/handler"
	paymentservice "intake-gateway/internal/payment/service"
	"intake-gateway/internal/platform/config"
	"intake-gateway/internal/platform/httpserver"
	"intake-gateway/internal/platform/logger"
	"intake-gateway/internal/platform/metrics"
	"intake-gateway/internal/platform/ratelimit"
	platformredis "intake-gateway/internal/platform/redis"
	"intake-gateway/internal/pricing"
	"intake-gateway/internal/relay"
	"intake-gateway/internal/upload"
	wizardhandler "intake-gateway/internal/wizard/handler"
	wizardservice "intake-gateway/internal/wizard/service"
	wizardstore "intake-gateway/internal/wizard/store"
)

func main() {
	// .env is a local-development convenience; absence is normal in prod.
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()
	brands := brand.NewRegistry()

	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}

	var drafts wizardstore.DraftStore
	if redisClient != nil {
		drafts = wizardstore.NewRedisStore(redisClient, cfg.DraftTTL)
		log.Info("wizard drafts persisted in redis")
	} else {
		drafts = wizardstore.NewMemoryStore(cfg.DraftTTL)
		log.Info("wizard drafts held in memory", "ttl", cfg.DraftTTL)
	}

	cases := relay.NewCaseNotifier(cfg, log, m)

	var retainer relay.RetainerSender = relay.NoopRetainerSender{}
	if cfg.ResendAPIKey != "" {
		retainer = relay.NewResendClient(cfg.ResendAPIKey, &http.Client{Timeout: cfg.RelayTimeout})
	} else {
		log.Warn("no resend api key configured; retainer emails disabled")
	}

	var citations relay.CitationStorage
	if cfg.CitationUploadWebhookURL != "" {
		citations = relay.NewStorageClient(cfg.CitationUploadWebhookURL, &http.Client{Timeout: cfg.RelayTimeout})
	} else {
		log.Warn("no citation upload webhook configured; uploads will be rejected")
	}

	checkout := paymentservice.NewStripeClient(cfg.StripeSecretKey, cfg.StripeTimeout)
	if checkout == nil {
		log.Warn("no stripe secret key configured; checkout initiation disabled")
	}
	verifier := paymentservice.NewEventVerifier(cfg.StripeWebhookSecret)

	paymentSvc := paymentservice.New(checkout, brands, cases, retainer, log, m)
	intakeSvc := intakeservice.New(brands, cases, log, m)
	wizardSvc := wizardservice.New(drafts, log)

	var limiter *ratelimit.Limiter
	if cfg.RateLimitPerMinute > 0 {
		limiter = ratelimit.New(cfg.RateLimitPerMinute, time.Minute)
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:  log,
		Metrics: m,
		Brands:  brands,
		Redis:   redisClient,
		Limiter: limiter,
		Pricing: pricing.NewHandler(),
		Wizard:  wizardhandler.New(wizardSvc, brands, log),
		Payment: paymenthandler.New(paymentSvc, verifier, log),
		Intake:  intakehandler.New(intakeSvc, log),
		Upload:  upload.New(citations, log, m),
	})

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting intake-gateway", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
}
