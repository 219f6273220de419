package domain

import "time"

// DonationType is what a donor gives.
type DonationType string

const (
	DonationCash    DonationType = "cash"
	DonationClothes DonationType = "clothes"
	DonationFood    DonationType = "food"
)

// DonationStatus tracks how far a donation has progressed.
type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationCompleted DonationStatus = "completed"
	DonationVerified  DonationStatus = "verified"
)

// ValidDonationType reports whether t is one of the accepted donation types.
func ValidDonationType(t DonationType) bool {
	switch t {
	case DonationCash, DonationClothes, DonationFood:
		return true
	}
	return false
}

// Donation is a single one-off contribution from a user to a recipient cause.
type Donation struct {
	ID             string         `json:"id"`
	UserID         string         `json:"user_id"`
	RecipientID    string         `json:"recipient_id"`
	Amount         float64        `json:"amount"`
	Currency       string         `json:"currency"`
	Type           DonationType   `json:"type"`
	Status         DonationStatus `json:"status"`
	Location       string         `json:"location,omitempty"`
	IdempotencyKey string         `json:"-"`
	CreatedAt      time.Time      `json:"created_at"`
}

// MonthlyDonation is a recurring pledge. Payment execution is out of scope;
// only the schedule is tracked.
type MonthlyDonation struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	RecipientType string    `json:"recipient_type"`
	IsActive      bool      `json:"is_active"`
	NextPayment   time.Time `json:"next_payment"`
	CreatedAt     time.Time `json:"created_at"`
}

// Feedback is a user rating of the platform, shown on the landing page.
type Feedback struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
