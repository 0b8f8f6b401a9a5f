// Package service accepts direct intake submissions from the marketing
// sites' standalone forms and relays them to case management.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"intake-gateway/internal/brand"
	"intake-gateway/internal/intake/models"
	"intake-gateway/internal/platform/metrics"
	"intake-gateway/internal/relay"
	dErrors "intake-gateway/pkg/domain-errors"
	"intake-gateway/pkg/requestcontext"
)

// Case ID prefixes as intake staff know them: PDL for traffic citations,
// DUI for consultation requests.
const (
	trafficCasePrefix = "PDL"
	duiCasePrefix     = "DUI"
)

type Service struct {
	brands  *brand.Registry
	cases   relay.CaseSink
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func New(brands *brand.Registry, cases relay.CaseSink, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		brands:  brands,
		cases:   cases,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// caseID stamps a prefix with the submission time in epoch milliseconds.
func caseID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d", prefix, now.UnixMilli())
}

// SubmitTraffic validates and relays a traffic-citation intake, returning
// the generated case ID. The relay is best-effort: a sheet outage never
// loses the submitter's confirmation.
func (s *Service) SubmitTraffic(ctx context.Context, req *models.TrafficIntakeRequest) (string, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return "", err
	}

	source := s.resolveSource(ctx, req.Source, false)
	now := s.now()
	id := caseID(trafficCasePrefix, now)

	rec := models.NewCaseRecord(req, source, now)
	if err := s.cases.SubmitTraffic(ctx, rec); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to submit intake")
	}

	s.metrics.IntakesSubmitted.WithLabelValues("traffic").Inc()
	s.logger.InfoContext(ctx, "traffic intake submitted", "case_id", id, "source", source)
	return id, nil
}

// SubmitDUI validates and relays a DUI consultation request.
func (s *Service) SubmitDUI(ctx context.Context, req *models.DUIIntakeRequest) (string, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return "", err
	}

	source := s.resolveSource(ctx, req.Source, true)
	now := s.now()
	id := caseID(duiCasePrefix, now)

	rec := models.NewDUIRecord(req, source, now)
	if err := s.cases.SubmitDUI(ctx, rec); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to submit consultation request")
	}

	s.metrics.IntakesSubmitted.WithLabelValues("dui").Inc()
	s.logger.InfoContext(ctx, "DUI intake submitted", "case_id", id, "source", source)
	return id, nil
}

// resolveSource keeps an explicit source tag, otherwise derives one from the
// brand the request was routed under.
func (s *Service) resolveSource(ctx context.Context, explicit string, dui bool) string {
	if explicit != "" {
		return explicit
	}
	b := s.brands.ByKey(requestcontext.BrandKey(ctx))
	if dui {
		return b.DUISourceTag
	}
	return b.SourceTag
}
