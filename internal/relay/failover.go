package relay

import (
	"context"
	"log/slog"
	"sync/atomic"

	"intake-gateway/internal/intake/models"
	"intake-gateway/internal/platform/metrics"
	"intake-gateway/pkg/platform/circuit"
)

// probeInterval is how many submissions are routed straight to the fallback
// between probes of an open primary.
const probeInterval = 10

// Failover routes records to the primary sink (the sheet webhook) and falls
// back to the secondary when the primary fails. After enough consecutive
// failures the breaker opens and submissions skip the primary's timeout,
// probing it occasionally so the breaker can close once the webhook recovers.
type Failover struct {
	primary  CaseSink
	fallback CaseSink
	breaker  *circuit.Breaker
	skipped  atomic.Uint64
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewFailover wires a breaker-guarded primary with a fallback sink.
func NewFailover(primary, fallback CaseSink, logger *slog.Logger, m *metrics.Metrics) *Failover {
	return &Failover{
		primary:  primary,
		fallback: fallback,
		breaker:  circuit.New("case-sheet"),
		logger:   logger,
		metrics:  m,
	}
}

func (f *Failover) SubmitTraffic(ctx context.Context, rec *models.CaseRecord) error {
	return f.submit(ctx, func(s CaseSink) error { return s.SubmitTraffic(ctx, rec) })
}

func (f *Failover) SubmitDUI(ctx context.Context, rec *models.DUIRecord) error {
	return f.submit(ctx, func(s CaseSink) error { return s.SubmitDUI(ctx, rec) })
}

func (f *Failover) submit(ctx context.Context, do func(CaseSink) error) error {
	if f.breaker.IsOpen() && f.skipped.Add(1)%probeInterval != 0 {
		return do(f.fallback)
	}

	err := do(f.primary)
	if err == nil {
		if _, change := f.breaker.RecordSuccess(); change.Closed {
			f.logger.InfoContext(ctx, "case sheet breaker closed")
		}
		return nil
	}

	f.metrics.RelayFailures.WithLabelValues("sheet_primary").Inc()
	if _, change := f.breaker.RecordFailure(); change.Opened {
		f.logger.WarnContext(ctx, "case sheet breaker opened")
	}
	f.logger.WarnContext(ctx, "case sheet relay failed, writing fallback workbook", "error", err)

	if fbErr := do(f.fallback); fbErr != nil {
		f.metrics.RelayFailures.WithLabelValues("workbook").Inc()
		return fbErr
	}
	return nil
}
