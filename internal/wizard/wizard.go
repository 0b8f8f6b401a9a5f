// Package wizard implements the five-step intake flow: upload → review →
// contact → payment → confirmation. Transitions are strictly forward/backward
// and each step gates advancement on its own validation.
package wizard

import (
	"time"

	"intake-gateway/internal/intake/models"
	"intake-gateway/internal/pricing"
	dErrors "intake-gateway/pkg/domain-errors"
)

// Step is one wizard state.
type Step string

const (
	StepUpload       Step = "upload"
	StepReview       Step = "review"
	StepContact      Step = "contact"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

var stepOrder = []Step{StepUpload, StepReview, StepContact, StepPayment, StepConfirmation}

func (s Step) index() int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

// IsValid reports whether s is a known step.
func (s Step) IsValid() bool { return s.index() >= 0 }

// Next returns the following step; ok is false at the terminal step.
func (s Step) Next() (Step, bool) {
	i := s.index()
	if i < 0 || i+1 >= len(stepOrder) {
		return s, false
	}
	return stepOrder[i+1], true
}

// Prev returns the preceding step; ok is false at the first step.
func (s Step) Prev() (Step, bool) {
	i := s.index()
	if i <= 0 {
		return s, false
	}
	return stepOrder[i-1], true
}

// State aggregates everything one wizard session holds. Confirmation is
// terminal: reaching it clears the persisted draft.
type State struct {
	ID       string              `json:"id"`
	BrandKey string              `json:"brand"`
	Step     Step                `json:"step"`
	Citation models.CitationData `json:"citation"`
	Contact  models.ContactData  `json:"contact"`
	// Price is the quoted flat fee in dollars, recomputed when the review
	// step advances.
	Price int `json:"price"`
	// PaymentRef is the opaque checkout session reference.
	PaymentRef string    `json:"paymentRef"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Input carries one step's form submission. Nil sub-structs leave the
// corresponding state untouched.
type Input struct {
	Citation   *models.CitationData `json:"citation,omitempty"`
	Contact    *models.ContactData  `json:"contact,omitempty"`
	PaymentRef string               `json:"paymentRef,omitempty"`
	// SkipPhoto advances past upload without a citation image.
	SkipPhoto bool `json:"skipPhoto,omitempty"`
}

// Advance applies in to the current step, validates it, and moves forward.
// Validation failures block the transition and are returned as validation
// errors for inline display; the state is left unchanged on failure.
func (s *State) Advance(in Input, table *pricing.Table, now time.Time) error {
	if s.Step == StepConfirmation {
		return dErrors.New(dErrors.CodeConflict, "intake is already complete")
	}

	next := *s
	next.apply(in)

	if err := next.validateStep(in); err != nil {
		return err
	}

	if next.Step == StepReview {
		next.Price = table.Calculate(next.Citation.CourtName, next.Citation.ViolationType).TotalPrice
	}

	step, ok := next.Step.Next()
	if !ok {
		return dErrors.New(dErrors.CodeConflict, "no further steps")
	}
	next.Step = step
	next.UpdatedAt = now
	*s = next
	return nil
}

// Back moves one step backward. Going back never validates; the user is
// allowed to retreat from a half-filled form.
func (s *State) Back(now time.Time) error {
	step, ok := s.Step.Prev()
	if !ok {
		return dErrors.New(dErrors.CodeConflict, "already at the first step")
	}
	s.Step = step
	s.UpdatedAt = now
	return nil
}

func (s *State) apply(in Input) {
	if in.Citation != nil {
		// Preserve an already-uploaded image unless the new input has one.
		img := s.Citation.ImageRef
		s.Citation = *in.Citation
		if s.Citation.ImageRef == "" {
			s.Citation.ImageRef = img
		}
	}
	if in.Contact != nil {
		s.Contact = *in.Contact
	}
	if in.PaymentRef != "" {
		s.PaymentRef = in.PaymentRef
	}
}

func (s *State) validateStep(in Input) error {
	switch s.Step {
	case StepUpload:
		if s.Citation.ImageRef == "" && !in.SkipPhoto {
			return dErrors.New(dErrors.CodeValidation, "upload a citation photo or choose to skip")
		}
	case StepReview:
		if s.Citation.CourtName == "" {
			return dErrors.New(dErrors.CodeValidation, "please select a court")
		}
	case StepContact:
		if s.Contact.FirstName == "" {
			return dErrors.New(dErrors.CodeValidation, "please enter your first name")
		}
		if s.Contact.LastName == "" {
			return dErrors.New(dErrors.CodeValidation, "please enter your last name")
		}
		if !models.ValidEmail(s.Contact.Email) {
			return dErrors.New(dErrors.CodeValidation, "please enter a valid email address")
		}
		if !models.ValidPhone(s.Contact.Phone) {
			return dErrors.New(dErrors.CodeValidation, "please enter a valid phone number")
		}
	case StepPayment:
		if s.PaymentRef == "" {
			return dErrors.New(dErrors.CodeValidation, "payment has not completed")
		}
	}
	return nil
}
