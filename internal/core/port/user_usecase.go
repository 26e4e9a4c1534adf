package port

import (
	"context"
	"errors"

	"agency-hub/internal/core/domain"
)

// ErrInvalidCredentials is returned when a username/password pair does not
// match a stored user. It does not say which half was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserUseCase registers and authenticates dashboard users.
type UserUseCase interface {
	// Register hashes the password and stores the user. ErrUsernameTaken is
	// returned for a duplicate username.
	Register(ctx context.Context, in domain.NewUser) (*domain.User, error)

	// Authenticate returns the user matching the credentials or
	// ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}
