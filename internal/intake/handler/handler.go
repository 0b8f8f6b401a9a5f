// Package handler exposes the direct intake endpoints used by the standalone
// traffic and DUI forms. Responses keep the funnel's {success, message, error}
// shape because the marketing pages render the message verbatim.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"intake-gateway/internal/intake/models"
	"intake-gateway/internal/intake/service"
	dErrors "intake-gateway/pkg/domain-errors"
	"intake-gateway/pkg/platform/httputil"
)

// IntakeResponse is the funnel-facing submission result. Failures carry the
// human-readable reason in both message and error: the marketing pages read
// message, API clients look for an error key.
type IntakeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	CaseID  string `json:"caseId,omitempty"`
}

const (
	trafficAcceptedMsg = "Your case has been submitted. We'll review your citation and be in touch within one business day."
	duiAcceptedMsg     = "Your consultation request has been received. An attorney will contact you within 24 hours."
)

type Handler struct {
	service *service.Service
	logger  *slog.Logger
}

func New(svc *service.Service, logger *slog.Logger) *Handler {
	return &Handler{service: svc, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/api/intake", h.submitTraffic)
	r.Post("/api/dui-intake", h.submitDUI)
}

func (h *Handler) submitTraffic(w http.ResponseWriter, r *http.Request) {
	var req models.TrafficIntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeFailure(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	caseID, err := h.service.SubmitTraffic(r.Context(), &req)
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, IntakeResponse{
		Success: true,
		Message: trafficAcceptedMsg,
		CaseID:  caseID,
	})
}

func (h *Handler) submitDUI(w http.ResponseWriter, r *http.Request) {
	var req models.DUIIntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeFailure(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	caseID, err := h.service.SubmitDUI(r.Context(), &req)
	if err != nil {
		h.writeFailure(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, IntakeResponse{
		Success: true,
		Message: duiAcceptedMsg,
		CaseID:  caseID,
	})
}

func (h *Handler) writeFailure(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	if code == dErrors.CodeInternal {
		h.logger.Error("intake submission failed", "error", err)
	}

	msg := "Something went wrong. Please try again or call us directly."
	var de *dErrors.Error
	if code != dErrors.CodeInternal && errors.As(err, &de) && de.Message != "" {
		msg = de.Message
	}
	httputil.WriteJSON(w, dErrors.ToHTTPStatus(code), IntakeResponse{Success: false, Message: msg, Error: msg})
}
