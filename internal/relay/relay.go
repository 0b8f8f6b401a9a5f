// Package relay holds the best-effort clients that forward case data to the
// external case-management systems: the spreadsheet webhook, the fallback
// workbook, the retainer email sender, and the citation image store.
package relay

import (
	"context"
	"log/slog"
	"net/http"

	"intake-gateway/internal/intake/models"
	"intake-gateway/internal/platform/config"
	"intake-gateway/internal/platform/metrics"
)

// CaseSink receives flattened case records bound for case management.
type CaseSink interface {
	SubmitTraffic(ctx context.Context, rec *models.CaseRecord) error
	SubmitDUI(ctx context.Context, rec *models.DUIRecord) error
}

// RetainerSender sends the post-payment retainer agreement email.
type RetainerSender interface {
	SendRetainer(ctx context.Context, email RetainerEmail) error
}

// CitationStorage relays citation images to external document storage.
type CitationStorage interface {
	Upload(ctx context.Context, payload *UploadPayload) (fileID string, err error)
}

// NewCaseNotifier wires the production case sink: the sheet webhook guarded
// by a circuit breaker with the local workbook as fallback, or the workbook
// alone when the webhook URL is unset. The result is best-effort: it logs
// and counts failures but never returns them, because the caller's primary
// action (payment or submission) has already succeeded.
func NewCaseNotifier(cfg config.Config, logger *slog.Logger, m *metrics.Metrics) CaseSink {
	workbook := NewWorkbook(cfg.CaseWorkbookPath)

	var sink CaseSink = workbook
	if cfg.CaseSheetWebhookURL != "" {
		sheet := NewSheetClient(cfg.CaseSheetWebhookURL, &http.Client{Timeout: cfg.RelayTimeout})
		sink = NewFailover(sheet, workbook, logger, m)
	}
	return &bestEffort{sink: sink, logger: logger, metrics: m}
}

// bestEffort swallows sink errors after logging them. Relay failures must
// never surface as request failures.
type bestEffort struct {
	sink    CaseSink
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func (b *bestEffort) SubmitTraffic(ctx context.Context, rec *models.CaseRecord) error {
	if err := b.sink.SubmitTraffic(ctx, rec); err != nil {
		b.metrics.RelayFailures.WithLabelValues("sheet").Inc()
		b.logger.ErrorContext(ctx, "case relay failed", "error", err, "source", rec.Source)
	}
	return nil
}

func (b *bestEffort) SubmitDUI(ctx context.Context, rec *models.DUIRecord) error {
	if err := b.sink.SubmitDUI(ctx, rec); err != nil {
		b.metrics.RelayFailures.WithLabelValues("sheet").Inc()
		b.logger.ErrorContext(ctx, "DUI case relay failed", "error", err, "source", rec.Source)
	}
	return nil
}

// NoopSink drops every record. Used when no relay is configured in tests.
type NoopSink struct{}

func (NoopSink) SubmitTraffic(context.Context, *models.CaseRecord) error { return nil }
func (NoopSink) SubmitDUI(context.Context, *models.DUIRecord) error      { return nil }

// NoopRetainerSender drops every email.
type NoopRetainerSender struct{}

func (NoopRetainerSender) SendRetainer(context.Context, RetainerEmail) error { return nil }
