// Package handler exposes payment initiation and the Stripe webhook.
package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"intake-gateway/internal/payment/models"
	"intake-gateway/internal/payment/service"
	dErrors "intake-gateway/pkg/domain-errors"
	"intake-gateway/pkg/platform/httputil"
)

// Stripe caps event payloads well under this; anything bigger is junk.
const maxWebhookBody = 1 << 16

type Handler struct {
	service  *service.Service
	verifier service.EventVerifier
	logger   *slog.Logger
}

func New(svc *service.Service, verifier service.EventVerifier, logger *slog.Logger) *Handler {
	return &Handler{service: svc, verifier: verifier, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/api/payments/checkout", h.createCheckout)
	r.Post("/api/payments/webhook", h.webhook)
}

func (h *Handler) createCheckout(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	resp, err := h.service.CreateCheckout(r.Context(), &req)
	if err != nil {
		if dErrors.CodeOf(err) != dErrors.CodeValidation {
			h.logger.Error("checkout initiation failed", "error", err)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "unreadable webhook payload"))
		return
	}

	// Demo mode: without a signing secret there is nothing to verify
	// against, and without a processor client there is nothing to relay
	// for. Ack so Stripe stops retrying, but process nothing.
	if h.verifier == nil || !h.service.Configured() {
		h.logger.Warn("webhook received in demo mode, skipping processing")
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"received": true, "verified": false})
		return
	}

	event, err := h.verifier.Verify(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		h.logger.Warn("webhook signature verification failed", "error", err)
		httputil.WriteError(w, dErrors.New(dErrors.CodeSignature, "webhook signature verification failed"))
		return
	}

	// Always 200 after verification: relays are best-effort and a Stripe
	// retry would double-process the event.
	h.service.ProcessEvent(r.Context(), event)
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"received": true})
}
