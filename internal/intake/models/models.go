package models

import (
	"strings"

	dErrors "intake-gateway/pkg/domain-errors"
)

// ContactData is the client's contact information collected by the funnel.
// Ephemeral: held in wizard state and relay payloads, never stored here.
type ContactData struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// CitationData describes the traffic citation being contested. ImageRef is a
// client-side reference only and never survives persistence.
type CitationData struct {
	ImageRef       string `json:"imageRef,omitempty"`
	CitationNumber string `json:"citationNumber"`
	CourtName      string `json:"courtName"`
	ViolationType  string `json:"violationType"`
	CitationDate   string `json:"citationDate"`
	HearingDate    string `json:"hearingDate"`
	FineAmount     string `json:"fineAmount"`
}

// ArrestData captures DUI consultation specifics.
type ArrestData struct {
	ArrestDate     string `json:"arrestDate"`
	ArrestLocation string `json:"arrestLocation"`
	BACLevel       string `json:"bacLevel"`
	Refusal        string `json:"refusal"`
	PriorDUIs      string `json:"priorDuis"`
	LicenseStatus  string `json:"licenseStatus"`
	CourtName      string `json:"courtName"`
	Notes          string `json:"notes"`
}

// TrafficIntakeRequest is the direct traffic-citation intake body.
type TrafficIntakeRequest struct {
	Contact   ContactData  `json:"contact"`
	Citation  CitationData `json:"citation"`
	PaymentID string       `json:"paymentId"`
	Price     float64      `json:"price"`
	Source    string       `json:"source"`
}

func (r *TrafficIntakeRequest) Normalize() {
	if r == nil {
		return
	}
	r.Contact.normalize()
	r.Citation.CourtName = strings.TrimSpace(r.Citation.CourtName)
	r.Source = strings.TrimSpace(r.Source)
}

func (r *TrafficIntakeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Contact.Email == "" || r.Contact.FirstName == "" || r.Contact.LastName == "" {
		return dErrors.New(dErrors.CodeValidation, "missing required contact information")
	}
	if r.Citation.CourtName == "" {
		return dErrors.New(dErrors.CodeValidation, "missing court information")
	}
	return nil
}

// DUIIntakeRequest is the direct DUI consultation body. Phone is mandatory
// because DOL hearing deadlines make callbacks time-critical.
type DUIIntakeRequest struct {
	Contact ContactData `json:"contact"`
	Arrest  ArrestData  `json:"arrest"`
	Source  string      `json:"source"`
}

func (r *DUIIntakeRequest) Normalize() {
	if r == nil {
		return
	}
	r.Contact.normalize()
	r.Source = strings.TrimSpace(r.Source)
}

func (r *DUIIntakeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Contact.Email == "" || r.Contact.FirstName == "" || r.Contact.LastName == "" {
		return dErrors.New(dErrors.CodeValidation, "missing required contact information")
	}
	if !ValidPhone(r.Contact.Phone) {
		return dErrors.New(dErrors.CodeValidation, "a valid phone number is required for DUI consultations")
	}
	return nil
}

func (c *ContactData) normalize() {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
}

// ValidEmail applies the funnel's intentionally loose email check.
func ValidEmail(s string) bool {
	return strings.Contains(s, "@")
}

// PhoneDigits strips every non-digit character.
func PhoneDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone requires at least 10 digits after stripping formatting.
func ValidPhone(s string) bool {
	return len(PhoneDigits(s)) >= 10
}
