package ports

import (
	"context"

	"github.com/givebridge/donation-platform/internal/core/domain"
)

// DonationRepository persists one-off donations and recurring pledges.
type DonationRepository interface {
	Insert(ctx context.Context, d *domain.Donation) (*domain.Donation, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Donation, error)
	InsertMonthly(ctx context.Context, m *domain.MonthlyDonation) (*domain.MonthlyDonation, error)
	// SetMonthlyActive flips is_active on a pledge owned by userID.
	// Returns domain.ErrDonationNotFound when no such pledge exists.
	SetMonthlyActive(ctx context.Context, id, userID string, active bool) error
}
