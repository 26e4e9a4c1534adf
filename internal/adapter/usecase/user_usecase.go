package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"agency-hub/internal/core/domain"
	"agency-hub/internal/core/port"
)

// UserUseCase registers users with bcrypt-hashed passwords and checks
// credentials against the stored hash.
type UserUseCase struct {
	repo port.UserStore
	cost int
}

// NewUserUseCase creates a usecase backed by repo using bcrypt.DefaultCost.
func NewUserUseCase(repo port.UserStore) *UserUseCase {
	return &UserUseCase{repo: repo, cost: bcrypt.DefaultCost}
}

// Register hashes the password and stores the user.
func (u *UserUseCase) Register(ctx context.Context, in domain.NewUser) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	in.Password = string(hash)
	user, err := u.repo.CreateUser(ctx, in)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate returns the user when the password matches its stored hash.
func (u *UserUseCase) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := u.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, port.ErrInvalidCredentials
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, port.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("compare password: %w", err)
	}
	return user, nil
}
