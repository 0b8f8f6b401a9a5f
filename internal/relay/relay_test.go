package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"intake-gateway/internal/intake/models"
	"intake-gateway/internal/platform/metrics"
)

var testMetrics = metrics.New()

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleRecord() *models.CaseRecord {
	return &models.CaseRecord{
		Source:     "PIERCE_DEFENSE_WEBSITE",
		FirstName:  "John",
		LastName:   "Smith",
		Email:      "john@example.com",
		Phone:      "2535550123",
		CourtName:  "Tacoma Municipal Court",
		Violations: "Speeding 16-20 over",
		CaseStatus: models.CaseStatusNewIntake,
	}
}

func TestSheetClientPostsRecord(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewSheetClient(srv.URL, srv.Client())
	require.NoError(t, c.SubmitTraffic(context.Background(), sampleRecord()))

	assert.Equal(t, "PIERCE_DEFENSE_WEBSITE", got["source"])
	assert.Equal(t, "Tacoma Municipal Court", got["courtName"])
	assert.Equal(t, "NEW_INTAKE", got["caseStatus"])
}

func TestSheetClientNonOKIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewSheetClient(srv.URL, srv.Client())
	err := c.SubmitTraffic(context.Background(), sampleRecord())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

// countingSink records submissions and optionally fails.
type countingSink struct {
	mu      sync.Mutex
	traffic int
	dui     int
	err     error
}

func (s *countingSink) SubmitTraffic(context.Context, *models.CaseRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.traffic++
	return s.err
}

func (s *countingSink) SubmitDUI(context.Context, *models.DUIRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dui++
	return s.err
}

func TestFailoverPrefersPrimary(t *testing.T) {
	primary := &countingSink{}
	fallback := &countingSink{}
	f := NewFailover(primary, fallback, discardLogger(), testMetrics)

	require.NoError(t, f.SubmitTraffic(context.Background(), sampleRecord()))
	assert.Equal(t, 1, primary.traffic)
	assert.Equal(t, 0, fallback.traffic)
}

func TestFailoverFallsBackOnPrimaryError(t *testing.T) {
	primary := &countingSink{err: errors.New("webhook down")}
	fallback := &countingSink{}
	f := NewFailover(primary, fallback, discardLogger(), testMetrics)

	require.NoError(t, f.SubmitTraffic(context.Background(), sampleRecord()))
	assert.Equal(t, 1, primary.traffic)
	assert.Equal(t, 1, fallback.traffic)
}

func TestFailoverOpenBreakerSkipsPrimary(t *testing.T) {
	primary := &countingSink{err: errors.New("webhook down")}
	fallback := &countingSink{}
	f := NewFailover(primary, fallback, discardLogger(), testMetrics)

	// Default breaker threshold is 5 consecutive failures.
	for range 5 {
		require.NoError(t, f.SubmitDUI(context.Background(), &models.DUIRecord{}))
	}
	primaryCalls := primary.dui

	// With the breaker open, most submissions go straight to the fallback.
	for range 5 {
		require.NoError(t, f.SubmitDUI(context.Background(), &models.DUIRecord{}))
	}
	assert.Less(t, primary.dui-primaryCalls, 5, "open breaker should skip most primary calls")
	assert.Equal(t, 10, fallback.dui)
}

func TestFailoverSurfacesFallbackError(t *testing.T) {
	primary := &countingSink{err: errors.New("webhook down")}
	fallback := &countingSink{err: errors.New("disk full")}
	f := NewFailover(primary, fallback, discardLogger(), testMetrics)

	err := f.SubmitTraffic(context.Background(), sampleRecord())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestBestEffortSwallowsErrors(t *testing.T) {
	sink := &countingSink{err: errors.New("everything is broken")}
	be := &bestEffort{sink: sink, logger: discardLogger(), metrics: testMetrics}

	assert.NoError(t, be.SubmitTraffic(context.Background(), sampleRecord()))
	assert.NoError(t, be.SubmitDUI(context.Background(), &models.DUIRecord{}))
	assert.Equal(t, 1, sink.traffic)
	assert.Equal(t, 1, sink.dui)
}

func TestWorkbookAppendsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.xlsx")
	w := NewWorkbook(path)

	require.NoError(t, w.SubmitTraffic(context.Background(), sampleRecord()))
	second := sampleRecord()
	second.FirstName = "Jane"
	require.NoError(t, w.SubmitTraffic(context.Background(), second))
	require.NoError(t, w.SubmitDUI(context.Background(), &models.DUIRecord{
		Source: "PIERCE_DEFENSE_DUI", FirstName: "Jane", LastName: "Doe",
	}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(trafficSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two records")
	assert.Equal(t, "Source", rows[0][0])
	assert.Equal(t, "John", rows[1][1])
	assert.Equal(t, "Jane", rows[2][1])

	duiRows, err := f.GetRows(duiSheet)
	require.NoError(t, err)
	require.Len(t, duiRows, 2)
	assert.Equal(t, "PIERCE_DEFENSE_DUI", duiRows[1][0])
}

func TestStorageClientUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload UploadPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "citation_1.jpg", payload.FileName)
		assert.NotEmpty(t, payload.UploadedAt)
		_ = json.NewEncoder(w).Encode(map[string]string{"fileId": "drive-abc123"})
	}))
	defer srv.Close()

	c := NewStorageClient(srv.URL, srv.Client())
	id, err := c.Upload(context.Background(), &UploadPayload{
		ImageData: "aGVsbG8=",
		FileName:  "citation_1.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "drive-abc123", id)
}

func TestStorageClientErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "folder missing", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewStorageClient(srv.URL, srv.Client())
	_, err := c.Upload(context.Background(), &UploadPayload{ImageData: "aGVsbG8="})
	require.Error(t, err)
}

func TestResendClientSendsRetainer(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewResendClient("re_test_key", srv.Client())
	c.endpoint = srv.URL

	err := c.SendRetainer(context.Background(), RetainerEmail{
		To:             "john@example.com",
		From:           "Pierce Defense Law <noreply@piercedefenselaw.com>",
		BrandName:      "Pierce Defense Law",
		FirstName:      "John",
		LastName:       "Smith",
		CourtName:      "Tacoma Municipal Court",
		CitationNumber: "TC-449281",
		ViolationType:  "Speeding 16-20 over",
		Amount:         204,
		PaymentID:      "cs_test_123",
		Date:           time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "john@example.com", body["to"])
	assert.Equal(t, retainerBCC, body["bcc"])
	assert.Equal(t, "Retainer Agreement - Tacoma Municipal Court Defense", body["subject"])
	html, _ := body["html"].(string)
	assert.Contains(t, html, "John Smith")
	assert.Contains(t, html, "$204.00")
	assert.Contains(t, html, "cs_test_123")
}

func TestRetainerTemplateDefaults(t *testing.T) {
	v := retainerData(RetainerEmail{FirstName: "Jane", LastName: "Doe", Date: time.Now()})
	assert.Equal(t, "To Be Determined", v.CourtName)

	var buf bytes.Buffer
	require.NoError(t, retainerTmpl.Execute(&buf, v))
	assert.NotContains(t, buf.String(), "Citation #")
}
