package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/givebridge/donation-platform/internal/core/domain"
	"github.com/givebridge/donation-platform/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, userID, key string) (bool, error)
	Mark(ctx context.Context, userID, key string) error
}

type donationService struct {
	repo  ports.DonationRepository
	dedup DedupChecker
	log   zerolog.Logger
	now   func() time.Time
}

// NewDonationService returns a DonationService backed by repo, with dedup
// guarding against double submission.
func NewDonationService(repo ports.DonationRepository, dedup DedupChecker, log zerolog.Logger) ports.DonationService {
	return &donationService{repo: repo, dedup: dedup, log: log, now: time.Now}
}

func (s *donationService) Submit(ctx context.Context, in ports.DonationInput) (*domain.Donation, error) {
	if !domain.ValidDonationType(in.Type) {
		return nil, fmt.Errorf("%w: unknown donation type %q", domain.ErrValidation, in.Type)
	}
	if in.Type == domain.DonationCash {
		if in.Amount <= 0 {
			return nil, fmt.Errorf("%w: cash donation amount must be positive", domain.ErrValidation)
		}
		if in.Currency == "" {
			return nil, fmt.Errorf("%w: cash donation requires a currency", domain.ErrValidation)
		}
	}
	if in.RecipientID == "" {
		return nil, fmt.Errorf("%w: recipient is required", domain.ErrValidation)
	}

	if in.IdempotencyKey != "" {
		isDup, err := s.dedup.IsDuplicate(ctx, in.UserID, in.IdempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", in.UserID).Msg("dedup check failed, processing anyway")
		} else if isDup {
			return nil, domain.ErrDuplicateDonation
		}
	}

	donation := &domain.Donation{
		UserID:         in.UserID,
		RecipientID:    in.RecipientID,
		Amount:         in.Amount,
		Currency:       in.Currency,
		Type:           in.Type,
		Status:         domain.DonationPending,
		Location:       in.Location,
		IdempotencyKey: in.IdempotencyKey,
		CreatedAt:      s.now().UTC(),
	}

	created, err := s.repo.Insert(ctx, donation)
	if err != nil {
		return nil, persistenceError(err)
	}

	if in.IdempotencyKey != "" {
		if err := s.dedup.Mark(ctx, in.UserID, in.IdempotencyKey); err != nil {
			s.log.Warn().Err(err).Str("donation_id", created.ID).Msg("dedup mark failed")
		}
	}

	return created, nil
}

func (s *donationService) ListByUser(ctx context.Context, userID string) ([]domain.Donation, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, persistenceError(err)
	}
	return list, nil
}

func (s *donationService) CreateMonthly(ctx context.Context, in ports.MonthlyDonationInput) (*domain.MonthlyDonation, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: pledge amount must be positive", domain.ErrValidation)
	}
	if in.Currency == "" || in.RecipientType == "" {
		return nil, fmt.Errorf("%w: currency and recipient type are required", domain.ErrValidation)
	}

	now := s.now().UTC()
	pledge := &domain.MonthlyDonation{
		UserID:        in.UserID,
		Amount:        in.Amount,
		Currency:      in.Currency,
		RecipientType: in.RecipientType,
		IsActive:      true,
		NextPayment:   now.AddDate(0, 1, 0),
		CreatedAt:     now,
	}

	created, err := s.repo.InsertMonthly(ctx, pledge)
	if err != nil {
		return nil, persistenceError(err)
	}
	return created, nil
}

func (s *donationService) CancelMonthly(ctx context.Context, id, userID string) error {
	if err := s.repo.SetMonthlyActive(ctx, id, userID, false); err != nil {
		if err == domain.ErrDonationNotFound {
			return err
		}
		return persistenceError(err)
	}
	return nil
}
