package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/givebridge/donation-platform/internal/core/credentials"
	"github.com/givebridge/donation-platform/internal/core/domain"
	"github.com/givebridge/donation-platform/internal/core/ports"
)

const defaultOpTimeout = 10 * time.Second

// identityService implements sign-up and sign-in against the user store.
type identityService struct {
	repo      ports.UserRepository
	opTimeout time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

// NewIdentityService returns an IdentityService. opTimeout bounds every
// persistence call; zero or negative falls back to 10s.
func NewIdentityService(repo ports.UserRepository, opTimeout time.Duration, log zerolog.Logger) ports.IdentityService {
	if opTimeout <= 0 {
		opTimeout = defaultOpTimeout
	}
	return &identityService{repo: repo, opTimeout: opTimeout, log: log, now: time.Now}
}

func (s *identityService) SignUp(ctx context.Context, in ports.SignUpInput) (*domain.Session, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: email, password and name are required", domain.ErrValidation)
	}

	hash, err := credentials.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	country := in.Country
	if country == "" {
		country = "US"
	}

	now := s.now().UTC()
	user := &domain.User{
		Email:             in.Email,
		Name:              in.Name,
		PasswordHash:      hash,
		Country:           country,
		PreferredCurrency: domain.CurrencyForCountry(country),
		CreatedAt:         now,
		LastLogin:         now,
	}

	opCtx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	created, err := s.repo.Create(opCtx, user)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, persistenceError(err)
	}

	return domain.NewSession(created), nil
}

func (s *identityService) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()

	user, err := s.repo.FindByEmail(lookupCtx, email)
	if err != nil {
		// An unknown account and a wrong password must be indistinguishable.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, persistenceError(err)
	}

	if !credentials.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	// Best effort: a failed last-login write never blocks sign-in.
	now := s.now().UTC()
	updateCtx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()
	if err := s.repo.UpdateLastLogin(updateCtx, user.ID, now); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("last_login update failed")
	}
	user.LastLogin = now

	return domain.NewSession(user), nil
}

// persistenceError folds any unexpected storage fault into the
// domain.ErrPersistence kind while keeping the cause in the chain.
func persistenceError(err error) error {
	if errors.Is(err, domain.ErrPersistence) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
}
