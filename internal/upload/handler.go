// Package upload relays citation photos to the external document store.
// Unlike the case-sheet relays this one is not best-effort: the wizard needs
// the returned file ID before it can continue, so failures surface.
package upload

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"intake-gateway/internal/platform/metrics"
	"intake-gateway/internal/relay"
	dErrors "intake-gateway/pkg/domain-errors"
	"intake-gateway/pkg/platform/httputil"
	"intake-gateway/pkg/requestcontext"
)

// Request carries the image and enough case context to label the stored file.
type Request struct {
	// ImageData is the base64 payload, with or without a data-URL prefix.
	ImageData      string `json:"imageData"`
	FileName       string `json:"fileName"`
	ClientName     string `json:"clientName"`
	CourtName      string `json:"courtName"`
	CitationNumber string `json:"citationNumber"`
	Source         string `json:"source"`
}

// Response returns the storage reference the wizard keeps in memory.
type Response struct {
	Success bool   `json:"success"`
	FileID  string `json:"fileId"`
}

type Handler struct {
	storage relay.CitationStorage
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func New(storage relay.CitationStorage, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{storage: storage, logger: logger, metrics: m}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/api/upload-citation", h.uploadCitation)
}

func (h *Handler) uploadCitation(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if req.ImageData == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "no image data provided"))
		return
	}
	if h.storage == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotConfigured, "image upload is not configured"))
		return
	}

	now := requestcontext.Now(r.Context())
	fileName := req.FileName
	if fileName == "" {
		fileName = fmt.Sprintf("citation_%d.jpg", now.UnixMilli())
	}

	fileID, err := h.storage.Upload(r.Context(), &relay.UploadPayload{
		ImageData:      req.ImageData,
		FileName:       fileName,
		ClientName:     req.ClientName,
		CourtName:      req.CourtName,
		CitationNumber: req.CitationNumber,
		Source:         req.Source,
		UploadedAt:     now.Format(time.RFC3339),
	})
	if err != nil {
		h.metrics.RelayFailures.WithLabelValues("storage").Inc()
		h.logger.Error("citation upload failed", "error", err, "file_name", fileName)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store citation image"))
		return
	}

	h.metrics.CitationUploads.Inc()
	httputil.WriteJSON(w, http.StatusOK, Response{Success: true, FileID: fileID})
}
