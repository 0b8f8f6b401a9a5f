package service

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intake-gateway/internal/brand"
	"intake-gateway/internal/intake/models"
	"intake-gateway/internal/platform/metrics"
	dErrors "intake-gateway/pkg/domain-errors"
	"intake-gateway/pkg/requestcontext"
)

var (
	testMetrics = metrics.New()
	testNow     = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	caseIDRe    = regexp.MustCompile(`^[A-Z]+-\d+$`)
)

type recordingSink struct {
	traffic []*models.CaseRecord
	dui     []*models.DUIRecord
}

func (r *recordingSink) SubmitTraffic(_ context.Context, rec *models.CaseRecord) error {
	r.traffic = append(r.traffic, rec)
	return nil
}

func (r *recordingSink) SubmitDUI(_ context.Context, rec *models.DUIRecord) error {
	r.dui = append(r.dui, rec)
	return nil
}

func newTestService(sink *recordingSink) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := New(brand.NewRegistry(), sink, logger, testMetrics)
	svc.now = func() time.Time { return testNow }
	return svc
}

func validTrafficRequest() *models.TrafficIntakeRequest {
	return &models.TrafficIntakeRequest{
		Contact: models.ContactData{
			FirstName: "Dana",
			LastName:  "Whitfield",
			Email:     "dana@example.com",
			Phone:     "2535550123",
		},
		Citation: models.CitationData{
			CourtName:     "Tacoma Municipal Court",
			ViolationType: "Speeding 16-20 over",
		},
		Price:  204,
		Source: "PIERCE_DEFENSE_WEBSITE",
	}
}

func validDUIRequest() *models.DUIIntakeRequest {
	return &models.DUIIntakeRequest{
		Contact: models.ContactData{
			FirstName: "Miguel",
			LastName:  "Torres",
			Email:     "miguel@example.com",
			Phone:     "(253) 555-0199",
		},
		Arrest: models.ArrestData{
			ArrestDate:     "2025-05-20",
			ArrestLocation: "Tacoma, WA",
		},
		Source: "PIERCE_DEFENSE_DUI",
	}
}

func TestSubmitTraffic(t *testing.T) {
	sink := &recordingSink{}
	svc := newTestService(sink)

	id, err := svc.SubmitTraffic(context.Background(), validTrafficRequest())
	require.NoError(t, err)
	assert.Regexp(t, caseIDRe, id)
	assert.Equal(t, "PDL-1748779200000", id, "epoch-millisecond case IDs")

	require.Len(t, sink.traffic, 1)
	rec := sink.traffic[0]
	assert.Equal(t, "PIERCE_DEFENSE_WEBSITE", rec.Source)
	assert.Equal(t, models.CaseStatusNewIntake, rec.CaseStatus)
	assert.Equal(t, 204.0, rec.AmountPaid)
}

func TestSubmitTrafficValidation(t *testing.T) {
	sink := &recordingSink{}
	svc := newTestService(sink)

	req := validTrafficRequest()
	req.Contact.Email = ""

	_, err := svc.SubmitTraffic(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeValidation, dErrors.CodeOf(err))
	assert.Empty(t, sink.traffic)
}

func TestSubmitTrafficDerivesSourceFromBrand(t *testing.T) {
	sink := &recordingSink{}
	svc := newTestService(sink)

	req := validTrafficRequest()
	req.Source = ""
	ctx := requestcontext.WithBrandKey(context.Background(), brand.KeyRivercrest)

	_, err := svc.SubmitTraffic(ctx, req)
	require.NoError(t, err)
	require.Len(t, sink.traffic, 1)
	assert.Equal(t, "SEATTLE_DEFENSE_WEBSITE", sink.traffic[0].Source)
}

func TestSubmitDUI(t *testing.T) {
	sink := &recordingSink{}
	svc := newTestService(sink)

	id, err := svc.SubmitDUI(context.Background(), validDUIRequest())
	require.NoError(t, err)
	assert.Equal(t, "DUI-1748779200000", id)

	require.Len(t, sink.dui, 1)
	rec := sink.dui[0]
	assert.Equal(t, "PIERCE_DEFENSE_DUI", rec.Source)
	assert.Equal(t, "Unknown", rec.Refusal, "unknowns default for intake staff")
	assert.Equal(t, "0", rec.PriorDUIs)
}

func TestSubmitDUIRequiresPhone(t *testing.T) {
	sink := &recordingSink{}
	svc := newTestService(sink)

	req := validDUIRequest()
	req.Contact.Phone = "123"

	_, err := svc.SubmitDUI(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeValidation, dErrors.CodeOf(err))
	assert.Empty(t, sink.dui)
}

func TestSubmitDUIDerivesSourceFromBrand(t *testing.T) {
	sink := &recordingSink{}
	svc := newTestService(sink)

	req := validDUIRequest()
	req.Source = ""
	ctx := requestcontext.WithBrandKey(context.Background(), brand.KeyRivercrest)

	_, err := svc.SubmitDUI(ctx, req)
	require.NoError(t, err)
	require.Len(t, sink.dui, 1)
	assert.Equal(t, "SEATTLE_DEFENSE_DUI", sink.dui[0].Source)
}
