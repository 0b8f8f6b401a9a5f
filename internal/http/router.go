// Package httpapi assembles the full route tree: brand routing in front,
// platform middleware, then the funnel's API handlers.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"intake-gateway/internal/brand"
	intakehandler "intake-gateway/internal/intake/handler"
	paymenthandler "intake-gateway/internal/payment/handler"
	"intake-gateway/internal/platform/metrics"
	"intake-gateway/internal/platform/middleware"
	"intake-gateway/internal/platform/ratelimit"
	platformredis "intake-gateway/internal/platform/redis"
	"intake-gateway/internal/pricing"
	"intake-gateway/internal/upload"
	wizardhandler "intake-gateway/internal/wizard/handler"
	"intake-gateway/pkg/platform/httputil"
)

// Deps collects everything the router mounts. main builds one of these.
type Deps struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Brands  *brand.Registry
	// Redis is nil when drafts are held in memory; health reporting degrades
	// gracefully.
	Redis *platformredis.Client
	// Limiter is nil when throttling is disabled.
	Limiter *ratelimit.Limiter

	Pricing *pricing.Handler
	Wizard  *wizardhandler.Handler
	Payment *paymenthandler.Handler
	Intake  *intakehandler.Handler
	Upload  *upload.Handler
}

// NewRouter wires the middleware chain and mounts every handler. The brand
// middleware runs before logging so log lines carry the resolved brand's
// rewritten path.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID)
	r.Use(brand.Middleware(d.Brands))
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Latency(d.Metrics))
	r.Use(ratelimit.Middleware(d.Limiter))

	d.Pricing.Register(r)
	d.Wizard.Register(r)
	d.Payment.Register(r)
	d.Intake.Register(r)
	d.Upload.Register(r)

	r.Get("/healthz", d.health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (d Deps) health(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if d.Redis != nil {
		if err := d.Redis.Health(r.Context()); err != nil {
			status["status"] = "degraded"
			status["redis"] = "unreachable"
			httputil.WriteJSON(w, http.StatusServiceUnavailable, status)
			return
		}
		status["redis"] = "ok"
	}
	httputil.WriteJSON(w, http.StatusOK, status)
}
