package ports

import (
	"context"

	"github.com/givebridge/donation-platform/internal/core/domain"
)

// FeedbackRepository persists platform ratings. Recent entries come back
// newest first with the author name resolved.
type FeedbackRepository interface {
	Insert(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error)
	Recent(ctx context.Context, limit int) ([]domain.Feedback, error)
}
