package ports

import (
	"context"

	"github.com/givebridge/donation-platform/internal/core/domain"
)

// SignUpInput carries the fields of a registration request. Password arrives
// in plaintext and is hashed before anything is persisted.
type SignUpInput struct {
	Email    string
	Password string
	Name     string
	Country  string
}

// IdentityService owns account creation and credential verification. Both
// operations return the session snapshot the HTTP layer persists client-side;
// neither ever lets a hashing or storage failure escape as a panic.
type IdentityService interface {
	SignUp(ctx context.Context, in SignUpInput) (*domain.Session, error)
	SignIn(ctx context.Context, email, password string) (*domain.Session, error)
}
