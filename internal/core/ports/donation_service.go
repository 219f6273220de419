package ports

import (
	"context"

	"github.com/givebridge/donation-platform/internal/core/domain"
)

// DonationInput is a single contribution submitted by an authenticated user.
// IdempotencyKey is optional; when present, resubmissions with the same key
// are rejected instead of recorded twice.
type DonationInput struct {
	UserID         string
	RecipientID    string
	Amount         float64
	Currency       string
	Type           domain.DonationType
	Location       string
	IdempotencyKey string
}

// MonthlyDonationInput is a recurring pledge request.
type MonthlyDonationInput struct {
	UserID        string
	Amount        float64
	Currency      string
	RecipientType string
}

type DonationService interface {
	Submit(ctx context.Context, in DonationInput) (*domain.Donation, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Donation, error)
	CreateMonthly(ctx context.Context, in MonthlyDonationInput) (*domain.MonthlyDonation, error)
	CancelMonthly(ctx context.Context, id, userID string) error
}
