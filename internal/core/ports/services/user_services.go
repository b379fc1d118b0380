package services

import (
	"context"

	"github.com/dermengr/Currency/internal/core/domain"
	"github.com/dermengr/Currency/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new regular user. The role is always forced to
	// RoleUser, whatever the request claims.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// EnsureAdminUser provisions an admin account: it creates the account
	// when the username is free, and promotes the existing user otherwise
	// (leaving the stored password untouched). The boolean reports whether a
	// new account was created. Not reachable from the HTTP surface; used by
	// operational tooling only.
	EnsureAdminUser(ctx context.Context, username, password string) (*domain.User, bool, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser checks a username/password combination. The same error
	// covers a missing user and a wrong password.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
