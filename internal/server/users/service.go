// Package users implements the credential store and the authentication
// service built on top of it: signup with salted password hashing and
// login with uniform failure reporting.
package users

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pulsedash/pulsedash/internal/common"
)

// hashCost is the bcrypt work factor applied to new passwords.
const hashCost = 10

// Service validates signup and login requests against a Repository.
type Service struct {
	repo Repository

	// now is an indirection over time.Now used for deterministic ids in tests.
	now func() time.Time
}

// NewService constructs a Service bound to the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// SignUp registers a new user. The email must not already be present in the
// store (exact, case-sensitive match); otherwise common.ErrEmailTaken is
// returned. On success the password is hashed with bcrypt, the record is
// appended, the whole collection is persisted, and the public projection of
// the new user is returned.
func (s *Service) SignUp(ctx context.Context, name, email, password string) (*PublicUser, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}

	for i := range all {
		if all[i].Email == email {
			return nil, common.ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := User{
		ID:           s.newID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	all = append(all, user)
	if err := s.repo.SaveAll(ctx, all); err != nil {
		return nil, fmt.Errorf("persisting users: %w", err)
	}

	return user.Public(), nil
}

// Login authenticates a user by email and password. An unknown email and a
// wrong password both yield common.ErrInvalidCredentials so the caller
// cannot tell which case occurred. Login never mutates the store.
func (s *Service) Login(ctx context.Context, email, password string) (*PublicUser, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}

	for i := range all {
		if all[i].Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(all[i].PasswordHash), []byte(password)); err != nil {
			return nil, common.ErrInvalidCredentials
		}
		return all[i].Public(), nil
	}

	return nil, common.ErrInvalidCredentials
}

// newID derives a unique identifier from the current time in Unix
// milliseconds, matching the historical id format of the store.
func (s *Service) newID() string {
	return strconv.FormatInt(s.now().UnixMilli(), 10)
}
