package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/givebridge/donation-platform/internal/core/domain"
	"github.com/givebridge/donation-platform/internal/core/ports"
)

const defaultFeedbackLimit = 6

type feedbackService struct {
	repo ports.FeedbackRepository
	now  func() time.Time
}

func NewFeedbackService(repo ports.FeedbackRepository) ports.FeedbackService {
	return &feedbackService{repo: repo, now: time.Now}
}

func (s *feedbackService) Submit(ctx context.Context, userID string, rating int, comment string) (*domain.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("%w: comment is required", domain.ErrValidation)
	}

	created, err := s.repo.Insert(ctx, &domain.Feedback{
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return nil, persistenceError(err)
	}
	return created, nil
}

func (s *feedbackService) Recent(ctx context.Context, limit int) (*ports.FeedbackSummary, error) {
	if limit <= 0 {
		limit = defaultFeedbackLimit
	}

	entries, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, persistenceError(err)
	}

	summary := &ports.FeedbackSummary{Entries: entries}
	if len(entries) > 0 {
		var sum int
		for _, f := range entries {
			sum += f.Rating
		}
		summary.AverageRating = float64(sum) / float64(len(entries))
	}
	return summary, nil
}
