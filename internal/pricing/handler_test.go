package pricing_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"intake-gateway/internal/brand"
	"intake-gateway/internal/pricing"
	"intake-gateway/pkg/testutil"
)

func newQuoteRouter(t *testing.T) chi.Router {
	t.Helper()
	r := chi.NewRouter()
	pricing.NewHandler().Register(r)
	return r
}

func TestQuoteEndpoint(t *testing.T) {
	r := newQuoteRouter(t)

	req := testutil.NewRequest(t, http.MethodGet, "/api/quote?court=Tacoma+Municipal+Court&violation=Speeding+16-20+over")
	rr := testutil.DoRequest(r, req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var quote pricing.Quote
	testutil.DecodeJSON(t, rr, &quote)
	assert.Equal(t, 179, quote.BasePrice)
	assert.Equal(t, 25, quote.ViolationModifier)
	assert.Equal(t, 204, quote.TotalPrice)
}

func TestQuoteEndpointBrandTable(t *testing.T) {
	r := newQuoteRouter(t)

	req := testutil.NewRequest(t, http.MethodGet, "/api/quote?court=Tacoma+Municipal+Court")
	req = testutil.WithBrand(req, brand.KeyRivercrest)
	rr := testutil.DoRequest(r, req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var quote pricing.Quote
	testutil.DecodeJSON(t, rr, &quote)
	assert.Equal(t, 189, quote.BasePrice, "rivercrest rates differ from pierce")
}

func TestQuoteEndpointRequiresCourt(t *testing.T) {
	r := newQuoteRouter(t)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/api/quote"))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestQuoteOptions(t *testing.T) {
	r := newQuoteRouter(t)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/api/quote/options"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var opts struct {
		Courts     []string `json:"courts"`
		Violations []string `json:"violations"`
	}
	testutil.DecodeJSON(t, rr, &opts)
	assert.Contains(t, opts.Courts, "Tacoma Municipal Court")
	assert.Contains(t, opts.Violations, "Red light camera")
	assert.NotEmpty(t, opts.Courts)
}
