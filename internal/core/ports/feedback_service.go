package ports

import (
	"context"

	"github.com/givebridge/donation-platform/internal/core/domain"
)

// FeedbackSummary is what the landing page renders: the latest entries and
// their average rating.
type FeedbackSummary struct {
	Entries       []domain.Feedback `json:"entries"`
	AverageRating float64           `json:"average_rating"`
}

type FeedbackService interface {
	Submit(ctx context.Context, userID string, rating int, comment string) (*domain.Feedback, error)
	Recent(ctx context.Context, limit int) (*FeedbackSummary, error)
}
