// Package models defines the payment initiation contract. The checkout
// request carries the full case context so the webhook can rebuild the case
// record from session metadata alone.
package models

import (
	"strings"

	imodels "intake-gateway/internal/intake/models"
)

// CheckoutRequest starts a hosted checkout session for a flat-fee defense.
// The body mirrors the intake shape: citation and contact ride as nested
// objects so the funnel can post its wizard state unchanged.
type CheckoutRequest struct {
	// Price is the quoted flat fee in dollars.
	Price    float64             `json:"price"`
	Contact  imodels.ContactData  `json:"contact"`
	Citation imodels.CitationData `json:"citation"`

	// Source is the brand's submission tag; it rides along in session
	// metadata so the completed-payment record lands under the right brand.
	Source string `json:"source"`
}

// Normalize trims whitespace-sensitive fields in place.
func (r *CheckoutRequest) Normalize() {
	r.Contact.Email = strings.TrimSpace(r.Contact.Email)
	r.Contact.FirstName = strings.TrimSpace(r.Contact.FirstName)
	r.Contact.LastName = strings.TrimSpace(r.Contact.LastName)
	r.Contact.Phone = strings.TrimSpace(r.Contact.Phone)
	r.Citation.CourtName = strings.TrimSpace(r.Citation.CourtName)
	r.Citation.CitationNumber = strings.TrimSpace(r.Citation.CitationNumber)
}

// CheckoutResponse returns the hosted checkout session to redirect to.
type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// Metadata flattens the request into the string bag Stripe stores on the
// session. Keys match what the webhook reads back.
func (r *CheckoutRequest) Metadata() map[string]string {
	return map[string]string{
		"firstName":      r.Contact.FirstName,
		"lastName":       r.Contact.LastName,
		"email":          r.Contact.Email,
		"phone":          r.Contact.Phone,
		"courtName":      r.Citation.CourtName,
		"citationNumber": r.Citation.CitationNumber,
		"citationDate":   r.Citation.CitationDate,
		"violationType":  r.Citation.ViolationType,
		"hearingDate":    r.Citation.HearingDate,
		"source":         r.Source,
	}
}
