package models

import "time"

// Case status strings as they appear in the external case sheet.
const (
	CaseStatusNewIntake = "NEW_INTAKE"
	CaseStatusPaid      = "PAID"
)

// CaseRecord is the flattened, relay-ready payload for traffic-citation
// cases. Key names and shape match the external case sheet's column order;
// optional fields default to empty string/zero. Constructed fresh per
// request, never stored here.
type CaseRecord struct {
	Source string `json:"source"`
	// Core client info
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	// Citation info
	CourtName      string `json:"courtName"`
	CitationNumber string `json:"citationNumber"`
	CitationDate   string `json:"citationDate"`
	Violations     string `json:"violations"`
	// Hearing info
	CourtDate string `json:"courtDate"`
	// Payment info
	PaymentID  string  `json:"paymentId"`
	AmountPaid float64 `json:"amountPaid"`
	PaidAt     string  `json:"paidAt,omitempty"`
	// Metadata
	RequestDate string `json:"requestDate"`
	CaseStatus  string `json:"caseStatus"`
}

// NewCaseRecord flattens a traffic intake for relay, tagging the source brand
// and stamping the request time.
func NewCaseRecord(req *TrafficIntakeRequest, source string, now time.Time) *CaseRecord {
	return &CaseRecord{
		Source:         source,
		FirstName:      req.Contact.FirstName,
		LastName:       req.Contact.LastName,
		Email:          req.Contact.Email,
		Phone:          req.Contact.Phone,
		CourtName:      req.Citation.CourtName,
		CitationNumber: req.Citation.CitationNumber,
		CitationDate:   req.Citation.CitationDate,
		Violations:     req.Citation.ViolationType,
		CourtDate:      req.Citation.HearingDate,
		PaymentID:      req.PaymentID,
		AmountPaid:     req.Price,
		RequestDate:    now.Format(time.RFC3339),
		CaseStatus:     CaseStatusNewIntake,
	}
}

// DUIRecord is the flattened relay payload for DUI consultations. Shaped for
// the separate DUI sheet; free consultations carry no payment info.
type DUIRecord struct {
	Source string `json:"source"`
	// Contact info
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	// Arrest info
	ArrestDate     string `json:"arrestDate"`
	ArrestLocation string `json:"arrestLocation"`
	BACLevel       string `json:"bacLevel"`
	Refusal        string `json:"refusal"`
	PriorDUIs      string `json:"priorDuis"`
	LicenseStatus  string `json:"licenseStatus"`
	CourtName      string `json:"courtName"`
	Notes          string `json:"notes"`
	// No payment for free consultations
	PaymentID   string  `json:"paymentId"`
	AmountPaid  float64 `json:"amountPaid"`
	RequestDate string  `json:"requestDate"`
}

// NewDUIRecord flattens a DUI intake for relay, default-filling unknowns the
// way intake staff expect them.
func NewDUIRecord(req *DUIIntakeRequest, source string, now time.Time) *DUIRecord {
	rec := &DUIRecord{
		Source:         source,
		FirstName:      req.Contact.FirstName,
		LastName:       req.Contact.LastName,
		Email:          req.Contact.Email,
		Phone:          req.Contact.Phone,
		ArrestDate:     req.Arrest.ArrestDate,
		ArrestLocation: req.Arrest.ArrestLocation,
		BACLevel:       req.Arrest.BACLevel,
		Refusal:        req.Arrest.Refusal,
		PriorDUIs:      req.Arrest.PriorDUIs,
		LicenseStatus:  req.Arrest.LicenseStatus,
		CourtName:      req.Arrest.CourtName,
		Notes:          req.Arrest.Notes,
		RequestDate:    now.Format(time.RFC3339),
	}
	if rec.Refusal == "" {
		rec.Refusal = "Unknown"
	}
	if rec.PriorDUIs == "" {
		rec.PriorDUIs = "0"
	}
	if rec.LicenseStatus == "" {
		rec.LicenseStatus = "Unknown"
	}
	return rec
}
