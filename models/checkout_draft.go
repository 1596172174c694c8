package models

import "time"

// CheckoutDraft holds the shipping address collected between the address form
// and order placement. One row per user, overwritten on resubmission and
// discarded after ExpiresAt or a successful checkout.
type CheckoutDraft struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Name         string `json:"name"`
	PhoneNumber  string `json:"phone_number"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Landmark     string `json:"landmark"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// MissingFields reports which required address fields are empty.
func (d CheckoutDraft) MissingFields() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"address_line1", d.AddressLine1},
		{"city", d.City},
		{"state", d.State},
		{"pincode", d.Pincode},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Expired reports whether the draft is past its lifetime at the given instant.
func (d CheckoutDraft) Expired(now time.Time) bool {
	return !d.ExpiresAt.IsZero() && now.After(d.ExpiresAt)
}
