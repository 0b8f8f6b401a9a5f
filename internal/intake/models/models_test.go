package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "intake-gateway/pkg/domain-errors"
)

func validTraffic() *TrafficIntakeRequest {
	return &TrafficIntakeRequest{
		Contact: ContactData{
			FirstName: "John",
			LastName:  "Smith",
			Email:     "john@example.com",
			Phone:     "(253) 555-0123",
		},
		Citation: CitationData{
			CourtName:      "Tacoma Municipal Court",
			CitationNumber: "TC-449281",
			ViolationType:  "Speeding 16-20 over",
			HearingDate:    "2026-10-02",
		},
	}
}

func TestTrafficIntakeValidation(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, validTraffic().Validate())
	})

	t.Run("missing email rejected", func(t *testing.T) {
		req := validTraffic()
		req.Contact.Email = ""
		err := req.Validate()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("missing court rejected", func(t *testing.T) {
		req := validTraffic()
		req.Citation.CourtName = ""
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "court")
	})

	t.Run("normalize trims whitespace", func(t *testing.T) {
		req := validTraffic()
		req.Contact.Email = "  john@example.com "
		req.Citation.CourtName = " Tacoma Municipal Court "
		req.Normalize()
		assert.Equal(t, "john@example.com", req.Contact.Email)
		assert.Equal(t, "Tacoma Municipal Court", req.Citation.CourtName)
	})
}

func TestDUIIntakeValidation(t *testing.T) {
	valid := func() *DUIIntakeRequest {
		return &DUIIntakeRequest{
			Contact: ContactData{
				FirstName: "Jane",
				LastName:  "Doe",
				Email:     "jane@example.com",
				Phone:     "206-555-0100",
			},
		}
	}

	t.Run("valid request passes", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing phone rejected", func(t *testing.T) {
		req := valid()
		req.Contact.Phone = ""
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "phone")
	})

	t.Run("short phone rejected", func(t *testing.T) {
		req := valid()
		req.Contact.Phone = "123"
		err := req.Validate()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func TestPhoneHelpers(t *testing.T) {
	assert.Equal(t, "2535550123", PhoneDigits("(253) 555-0123"))
	assert.True(t, ValidPhone("(253) 555-0123"))
	assert.False(t, ValidPhone("123"))
	assert.False(t, ValidPhone("555-0123"))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("a@b"))
	assert.False(t, ValidEmail("nope"))
}

func TestNewCaseRecord(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	rec := NewCaseRecord(validTraffic(), "PIERCE_DEFENSE_WEBSITE", now)

	assert.Equal(t, "PIERCE_DEFENSE_WEBSITE", rec.Source)
	assert.Equal(t, "Tacoma Municipal Court", rec.CourtName)
	assert.Equal(t, "Speeding 16-20 over", rec.Violations)
	assert.Equal(t, "2026-10-02", rec.CourtDate)
	assert.Equal(t, CaseStatusNewIntake, rec.CaseStatus)
	assert.Equal(t, "2026-03-14T09:30:00Z", rec.RequestDate)
	assert.Empty(t, rec.PaymentID)
}

func TestNewDUIRecordDefaults(t *testing.T) {
	req := &DUIIntakeRequest{
		Contact: ContactData{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Phone: "2065550100"},
	}
	rec := NewDUIRecord(req, "PIERCE_DEFENSE_DUI", time.Now())

	assert.Equal(t, "Unknown", rec.Refusal)
	assert.Equal(t, "0", rec.PriorDUIs)
	assert.Equal(t, "Unknown", rec.LicenseStatus)
	assert.Zero(t, rec.AmountPaid)
}
