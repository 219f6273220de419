package ports

import (
	"context"
	"time"

	"github.com/givebridge/donation-platform/internal/core/domain"
)

// UserRepository is the persistence gateway contract for accounts. Email
// uniqueness is enforced by the store; Create surfaces a violation as
// domain.ErrDuplicateEmail.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
