package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/merpati-sia/bookkeeping/internal/apperrors"
	"github.com/merpati-sia/bookkeeping/internal/core/domain"
	portsrepo "github.com/merpati-sia/bookkeeping/internal/core/ports/repositories"
	portssvc "github.com/merpati-sia/bookkeeping/internal/core/ports/services"
	"github.com/merpati-sia/bookkeeping/internal/utils"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo        portsrepo.UserRepositoryFacade
	defaultUsername string
	defaultPassword string
}

// NewUserService creates a new user service. The default credential is seeded
// only when the users table is empty.
func NewUserService(repo portsrepo.UserRepositoryFacade, defaultUsername, defaultPassword string) portssvc.UserSvcFacade {
	return &userService{
		userRepo:        repo,
		defaultUsername: defaultUsername,
		defaultPassword: defaultPassword,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// Authenticate verifies a username/password pair. Both unknown usernames and
// wrong passwords surface as the same ErrUnauthorized so callers cannot probe
// for valid usernames.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for authentication")
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	s.LogInfo(ctx, "User authenticated", slog.String("user_id", user.UserID))
	return user, nil
}

// EnsureDefaultOperator seeds the default operator credential on first run.
func (s *userService) EnsureDefaultOperator(ctx context.Context) error {
	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users for seeding: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(s.defaultPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default operator password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     s.defaultUsername,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		// A concurrent boot may have seeded it already.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("failed to seed default operator: %w", err)
	}

	s.LogInfo(ctx, "Default operator seeded", slog.String("username", s.defaultUsername))
	return nil
}
