package services

import (
	"context"

	"github.com/merpati-sia/bookkeeping/internal/core/domain"
)

// UserSvcFacade defines operator credential operations.
type UserSvcFacade interface {
	// Authenticate verifies a username/password pair and returns the user.
	// Failures surface as apperrors.ErrUnauthorized regardless of whether the
	// username or the password was wrong.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// EnsureDefaultOperator seeds the default operator credential when the
	// users table is empty. Called once at startup.
	EnsureDefaultOperator(ctx context.Context) error
}
