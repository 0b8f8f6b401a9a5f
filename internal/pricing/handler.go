package pricing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	dErrors "intake-gateway/pkg/domain-errors"
	"intake-gateway/pkg/platform/httputil"
	"intake-gateway/pkg/requestcontext"
)

// Handler serves quotes and the option lists the funnel's dropdowns render.
type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/quote", h.quote)
	r.Get("/api/quote/options", h.options)
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	court := r.URL.Query().Get("court")
	if court == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "court query parameter is required"))
		return
	}
	violation := r.URL.Query().Get("violation")

	table := ForBrand(requestcontext.BrandKey(r.Context()))
	httputil.WriteJSON(w, http.StatusOK, table.Calculate(court, violation))
}

type optionsResponse struct {
	Courts     []string `json:"courts"`
	Violations []string `json:"violations"`
}

func (h *Handler) options(w http.ResponseWriter, r *http.Request) {
	table := ForBrand(requestcontext.BrandKey(r.Context()))
	httputil.WriteJSON(w, http.StatusOK, optionsResponse{
		Courts:     table.Courts(),
		Violations: ViolationTypes(),
	})
}
