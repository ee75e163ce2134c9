package repositories

import (
	"context"

	"github.com/merpati-sia/bookkeeping/internal/core/domain"
)

// UserReader defines read operations for operator credentials.
type UserReader interface {
	// FindUserByUsername retrieves a user by exact username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// CountUsers returns the number of stored users, used for first-run seeding.
	CountUsers(ctx context.Context) (int, error)
}

// UserWriter defines write operations for operator credentials.
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
