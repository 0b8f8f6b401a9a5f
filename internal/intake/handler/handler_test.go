package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intake-gateway/internal/brand"
	"intake-gateway/internal/intake/handler"
	"intake-gateway/internal/intake/models"
	"intake-gateway/internal/intake/service"
	"intake-gateway/internal/platform/metrics"
	"intake-gateway/internal/relay"
	"intake-gateway/pkg/testutil"
)

var testMetrics = metrics.New()

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(brand.NewRegistry(), relay.NoopSink{}, logger, testMetrics)
	h := handler.New(svc, logger)
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestSubmitTrafficIntake(t *testing.T) {
	r := newTestRouter(t)

	body := models.TrafficIntakeRequest{
		Contact: models.ContactData{
			FirstName: "Dana",
			LastName:  "Whitfield",
			Email:     "dana@example.com",
			Phone:     "2535550123",
		},
		Citation: models.CitationData{CourtName: "Tacoma Municipal Court"},
		Price:    179,
		Source:   "PIERCE_DEFENSE_WEBSITE",
	}

	rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/api/intake", body))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp handler.IntakeResponse
	testutil.DecodeJSON(t, rr, &resp)
	assert.True(t, resp.Success)
	assert.Regexp(t, `^PDL-\d+$`, resp.CaseID)
	assert.NotEmpty(t, resp.Message)
}

func TestSubmitTrafficIntakeMissingEmail(t *testing.T) {
	r := newTestRouter(t)

	body := models.TrafficIntakeRequest{
		Contact:  models.ContactData{FirstName: "Dana", LastName: "Whitfield", Phone: "2535550123"},
		Citation: models.CitationData{CourtName: "Tacoma Municipal Court"},
	}

	rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/api/intake", body))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	var resp handler.IntakeResponse
	testutil.DecodeJSON(t, rr, &resp)
	require.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
	assert.Equal(t, resp.Message, resp.Error, "failures expose the reason under an error key")
	assert.Empty(t, resp.CaseID)
}

func TestSubmitTrafficIntakeMissingCourt(t *testing.T) {
	r := newTestRouter(t)

	body := models.TrafficIntakeRequest{
		Contact: models.ContactData{
			FirstName: "Dana", LastName: "Whitfield",
			Email: "dana@example.com", Phone: "2535550123",
		},
	}

	rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/api/intake", body))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestSubmitTrafficIntakeMalformedBody(t *testing.T) {
	r := newTestRouter(t)

	rr := testutil.DoRequest(r, testutil.NewRequestWithBody(t, http.MethodPost, "/api/intake", "{not json"))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestSubmitDUIIntake(t *testing.T) {
	r := newTestRouter(t)

	body := models.DUIIntakeRequest{
		Contact: models.ContactData{
			FirstName: "Miguel", LastName: "Torres",
			Email: "miguel@example.com", Phone: "(253) 555-0199",
		},
		Arrest: models.ArrestData{ArrestDate: "2025-05-20"},
		Source: "PIERCE_DEFENSE_DUI",
	}

	rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/api/dui-intake", body))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp handler.IntakeResponse
	testutil.DecodeJSON(t, rr, &resp)
	assert.True(t, resp.Success)
	assert.Regexp(t, `^DUI-\d+$`, resp.CaseID)
}

func TestSubmitDUIIntakeWithoutPhone(t *testing.T) {
	r := newTestRouter(t)

	body := models.DUIIntakeRequest{
		Contact: models.ContactData{
			FirstName: "Miguel", LastName: "Torres", Email: "miguel@example.com",
		},
	}

	rr := testutil.DoRequest(r, testutil.NewJSONRequest(t, http.MethodPost, "/api/dui-intake", body))
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	var resp handler.IntakeResponse
	testutil.DecodeJSON(t, rr, &resp)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "phone")
}
