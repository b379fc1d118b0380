package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dermengr/Currency/internal/apperrors"
	"github.com/dermengr/Currency/internal/core/domain"
	portsrepo "github.com/dermengr/Currency/internal/core/ports/repositories"
	portssvc "github.com/dermengr/Currency/internal/core/ports/services"
	"github.com/dermengr/Currency/internal/dto"
	"github.com/dermengr/Currency/internal/utils"
	"github.com/google/uuid"
)

// UserService provides registration, authentication and lookup of users.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) *UserService {
	return &UserService{userRepo: userRepo}
}

// Ensure implementation matches interface
var _ portssvc.UserSvcFacade = (*UserService)(nil)

// RegisterUser validates the request and persists a new regular user.
// Whatever role the request carries, the stored role is always RoleUser.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	return s.createUser(ctx, req.Username, req.Password, domain.RoleUser)
}

// EnsureAdminUser provisions an admin account. Reserved for operational
// tooling; no HTTP route reaches it. When the username is free a fresh admin
// is created with the given password. When it is taken, the existing user is
// promoted instead and the password argument is ignored: the hash is only
// ever recomputed when the plaintext password itself changes.
func (s *UserService) EnsureAdminUser(ctx context.Context, username, password string) (*domain.User, bool, error) {
	trimmed := strings.TrimSpace(username)

	existing, err := s.userRepo.FindUserByUsername(ctx, trimmed)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, false, fmt.Errorf("failed to look up user for admin provisioning: %w", err)
		}
		user, err := s.createUser(ctx, trimmed, password, domain.RoleAdmin)
		if err != nil {
			return nil, false, err
		}
		return user, true, nil
	}

	if existing.IsAdmin() {
		return existing, false, nil
	}

	if err := s.userRepo.UpdateUserRole(ctx, existing.UserID, domain.RoleAdmin, existing.UserID); err != nil {
		return nil, false, fmt.Errorf("failed to promote user to admin: %w", err)
	}
	existing.Role = domain.RoleAdmin
	return existing, false, nil
}

func (s *UserService) createUser(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return nil, fmt.Errorf("%w: username must be at least 3 characters", apperrors.ErrValidation)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", apperrors.ErrValidation)
	}

	// Best-effort duplicate check; the unique index on username closes the
	// race between concurrent registrations.
	_, err := s.userRepo.FindUserByUsername(ctx, username)
	if err == nil {
		return nil, fmt.Errorf("%w: username %s is already taken", apperrors.ErrDuplicate, username)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	newUserID := uuid.NewString()
	user := domain.User{
		UserID:       newUserID,
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	return &user, nil
}

// AuthenticateUser checks a username/password combination. Lookup misses and
// password mismatches produce the same error so callers cannot tell which
// credential was wrong.
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}
	return user, nil
}

// GetUserByID retrieves a user by ID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}
