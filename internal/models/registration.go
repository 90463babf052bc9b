package models

import (
	"fmt"
	"time"
)

// Communication methods an attendee can choose for follow-up contact.
const (
	CommunicationEmail = "email"
	CommunicationPhone = "phone"
	CommunicationSMS   = "sms"
)

// Registration is a stored event sign-up. The numeric ID is assigned by the
// store, starts at 1, and is never reused. Optional fields stay nil when the
// attendee left them blank.
type Registration struct {
	ID                  int64     `json:"id"`
	FirstName           string    `json:"firstName"`
	LastName            string    `json:"lastName"`
	Email               string    `json:"email"`
	Phone               string    `json:"phone"`
	Company             *string   `json:"company"`
	JobTitle            *string   `json:"jobTitle"`
	DataConsent         bool      `json:"dataConsent"`
	MarketingConsent    bool      `json:"marketingConsent"`
	CommunicationMethod string    `json:"communicationMethod"`
	RegistrationCode    *string   `json:"registrationCode"`
	CreatedAt           time.Time `json:"createdAt"`
}

// FormattedID returns the human-facing registration ID: "GOV-" plus the
// numeric ID zero-padded to 6 digits (7 -> GOV-000007). IDs past 6 digits
// are never truncated.
func (r *Registration) FormattedID() string {
	return FormatRegistrationID(r.ID)
}

// FormatRegistrationID derives the display ID for a numeric registration ID.
func FormatRegistrationID(id int64) string {
	return fmt.Sprintf("GOV-%06d", id)
}
