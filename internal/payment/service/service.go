// Package service owns payment initiation and webhook processing. Checkout
// sessions carry the whole case in metadata, so a completed payment can be
// relayed to case management without any server-side session state.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/stripe/stripe-go/v76"
	"golang.org/x/sync/errgroup"

	"intake-gateway/internal/brand"
	"intake-gateway/internal/intake/models"
	paymodels "intake-gateway/internal/payment/models"
	"intake-gateway/internal/platform/metrics"
	"intake-gateway/internal/relay"
	dErrors "intake-gateway/pkg/domain-errors"
)

type Service struct {
	checkout CheckoutClient
	brands   *brand.Registry
	cases    relay.CaseSink
	email    relay.RetainerSender
	logger   *slog.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

func New(checkout CheckoutClient, brands *brand.Registry, cases relay.CaseSink, email relay.RetainerSender, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		checkout: checkout,
		brands:   brands,
		cases:    cases,
		email:    email,
		logger:   logger,
		metrics:  m,
		now:      time.Now,
	}
}

// Configured reports whether a payment processor client is wired in.
func (s *Service) Configured() bool {
	return s.checkout != nil
}

// CreateCheckout validates the request and opens a hosted checkout session.
func (s *Service) CreateCheckout(ctx context.Context, req *paymodels.CheckoutRequest) (*paymodels.CheckoutResponse, error) {
	req.Normalize()

	if req.Price <= 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "a valid price is required")
	}
	if !models.ValidEmail(req.Contact.Email) {
		return nil, dErrors.New(dErrors.CodeValidation, "a valid email address is required")
	}
	if req.Contact.FirstName == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "first name is required")
	}
	if s.checkout == nil {
		return nil, dErrors.New(dErrors.CodeNotConfigured, "payment processing is not configured")
	}

	b := s.brands.BySource(req.Source)
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(req.Contact.Email),
		SuccessURL:    stripe.String(b.CheckoutBaseURL + "/fight-my-ticket?success=true&session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     stripe.String(b.CheckoutBaseURL + "/fight-my-ticket?canceled=true"),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(string(stripe.CurrencyUSD)),
				UnitAmount: stripe.Int64(int64(math.Round(req.Price * 100))),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String("Traffic Ticket Defense"),
					Description: stripe.String(checkoutDescription(req)),
				},
			},
		}},
	}
	for k, v := range req.Metadata() {
		params.AddMetadata(k, v)
	}

	session, err := s.checkout.CreateSession(ctx, params)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to create checkout session")
	}

	s.metrics.CheckoutsStarted.Inc()
	s.logger.InfoContext(ctx, "checkout session created",
		"session_id", session.ID, "brand", b.Key, "amount", req.Price)

	return &paymodels.CheckoutResponse{SessionID: session.ID, URL: session.URL}, nil
}

func checkoutDescription(req *paymodels.CheckoutRequest) string {
	court := req.Citation.CourtName
	if court == "" {
		court = "Washington State"
	}
	if req.Citation.CitationNumber == "" {
		return fmt.Sprintf("Flat-fee traffic infraction defense - %s", court)
	}
	return fmt.Sprintf("Flat-fee defense for citation %s - %s", req.Citation.CitationNumber, court)
}

// ProcessEvent handles a verified webhook event. Relay failures never fail
// the webhook: the charge has settled and a retry would double-process it.
func (s *Service) ProcessEvent(ctx context.Context, event stripe.Event) {
	switch event.Type {
	case "checkout.session.completed":
		s.handleCompleted(ctx, event)
	case "payment_intent.payment_failed":
		s.metrics.PaymentsFailed.Inc()
		s.logger.WarnContext(ctx, "payment failed", "event_id", event.ID)
	default:
		s.logger.DebugContext(ctx, "ignoring webhook event", "type", event.Type)
	}
}

func (s *Service) handleCompleted(ctx context.Context, event stripe.Event) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		s.logger.ErrorContext(ctx, "malformed checkout session payload", "event_id", event.ID, "error", err)
		return
	}

	md := session.Metadata
	b := s.brands.BySource(md["source"])
	now := s.now()
	amountPaid := float64(session.AmountTotal) / 100

	rec := &models.CaseRecord{
		Source:         b.SourceTag,
		FirstName:      md["firstName"],
		LastName:       md["lastName"],
		Email:          customerEmail(&session, md),
		Phone:          md["phone"],
		CourtName:      md["courtName"],
		CitationNumber: md["citationNumber"],
		CitationDate:   md["citationDate"],
		Violations:     md["violationType"],
		CourtDate:      md["hearingDate"],
		PaymentID:      session.ID,
		AmountPaid:     amountPaid,
		PaidAt:         now.Format(time.RFC3339),
		RequestDate:    now.Format(time.RFC3339),
		CaseStatus:     models.CaseStatusPaid,
	}

	// The two relays are independent: a sheet failure must not cancel the
	// in-flight email, so no shared-cancellation group here.
	var g errgroup.Group
	g.Go(func() error {
		return s.cases.SubmitTraffic(ctx, rec)
	})
	g.Go(func() error {
		if rec.Email == "" {
			s.logger.WarnContext(ctx, "no customer email on completed session", "session_id", session.ID)
			return nil
		}
		err := s.email.SendRetainer(ctx, relay.RetainerEmail{
			To:             rec.Email,
			From:           b.FromEmail,
			BrandName:      b.Name,
			FirstName:      rec.FirstName,
			LastName:       rec.LastName,
			CourtName:      rec.CourtName,
			CitationNumber: rec.CitationNumber,
			ViolationType:  rec.Violations,
			Amount:         amountPaid,
			PaymentID:      session.ID,
			Date:           now,
		})
		if err != nil {
			s.metrics.RelayFailures.WithLabelValues("email").Inc()
			s.logger.ErrorContext(ctx, "retainer email failed", "session_id", session.ID, "error", err)
		}
		return nil
	})
	_ = g.Wait()

	s.metrics.PaymentsCompleted.Inc()
	s.logger.InfoContext(ctx, "payment completed",
		"session_id", session.ID, "brand", b.Key, "amount_paid", amountPaid)
}

// customerEmail prefers the address the customer actually paid with.
func customerEmail(session *stripe.CheckoutSession, md map[string]string) string {
	if session.CustomerDetails != nil && session.CustomerDetails.Email != "" {
		return session.CustomerDetails.Email
	}
	if session.CustomerEmail != "" {
		return session.CustomerEmail
	}
	return md["email"]
}
