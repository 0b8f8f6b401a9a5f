package service

import (
	"context"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// CheckoutClient creates hosted checkout sessions. Wrapping the Stripe SDK
// behind an interface keeps the service testable without network calls.
type CheckoutClient interface {
	CreateSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// EventVerifier checks a webhook payload's signature and parses the event.
type EventVerifier interface {
	Verify(payload []byte, sigHeader string) (stripe.Event, error)
}

type stripeClient struct {
	api *client.API
}

// NewStripeClient returns the production CheckoutClient, or nil when no
// secret key is configured. timeout caps each API call; the SDK retries
// internally, so this bounds a whole attempt chain.
func NewStripeClient(secretKey string, timeout time.Duration) CheckoutClient {
	if secretKey == "" {
		return nil
	}
	backends := stripe.NewBackends(&http.Client{Timeout: timeout})
	api := &client.API{}
	api.Init(secretKey, backends)
	return &stripeClient{api: api}
}

func (c *stripeClient) CreateSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	params.Context = ctx
	return c.api.CheckoutSessions.New(params)
}

type signatureVerifier struct {
	secret string
}

// NewEventVerifier returns the production EventVerifier, or nil when no
// webhook secret is configured.
func NewEventVerifier(secret string) EventVerifier {
	if secret == "" {
		return nil
	}
	return &signatureVerifier{secret: secret}
}

func (v *signatureVerifier) Verify(payload []byte, sigHeader string) (stripe.Event, error) {
	// Tolerate API version skew between the SDK and the webhook endpoint
	// configuration; the fields read here are stable across versions.
	return webhook.ConstructEventWithOptions(payload, sigHeader, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
}
