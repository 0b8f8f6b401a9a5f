// Package handler exposes the intake wizard over HTTP. Sessions are created
// with POST /api/wizard and driven with per-session action routes.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"intake-gateway/internal/brand"
	"intake-gateway/internal/wizard"
	"intake-gateway/internal/wizard/service"
	dErrors "intake-gateway/pkg/domain-errors"
	"intake-gateway/pkg/platform/httputil"
	"intake-gateway/pkg/requestcontext"
)

type Handler struct {
	service *service.Service
	brands  *brand.Registry
	logger  *slog.Logger
}

func New(svc *service.Service, brands *brand.Registry, logger *slog.Logger) *Handler {
	return &Handler{service: svc, brands: brands, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/api/wizard", h.start)
	r.Get("/api/wizard/{id}", h.resume)
	r.Post("/api/wizard/{id}/advance", h.advance)
	r.Post("/api/wizard/{id}/back", h.back)
	r.Post("/api/wizard/{id}/reset", h.reset)
}

func (h *Handler) start(w http.ResponseWriter, r *http.Request) {
	brandKey := requestcontext.BrandKey(r.Context())
	if brandKey == "" {
		brandKey = h.brands.Primary().Key
	}
	state, err := h.service.Start(r.Context(), brandKey)
	if err != nil {
		h.logger.Error("failed to start wizard session", "error", err)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, state)
}

func (h *Handler) resume(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Resume(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, state)
}

func (h *Handler) advance(w http.ResponseWriter, r *http.Request) {
	var in wizard.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	state, err := h.service.Advance(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, state)
}

func (h *Handler) back(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Back(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, state)
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.Reset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, state)
}
