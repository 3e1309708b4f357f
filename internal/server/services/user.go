// Package services contains server-side business logic. UserService handles
// registration and login; DocumentService answers reference lookups.
package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/docport/internal/common"
	"github.com/dmitrijs2005/docport/internal/server/models"
	"github.com/dmitrijs2005/docport/internal/server/repositories/users"
)

const (
	// bcryptCost fixes the work factor at 10 rounds.
	bcryptCost = 10

	// saltPrefixLen is the length of the salt-bearing prefix of a bcrypt
	// hash: "$2a$10$" plus the 22-character encoded salt. That prefix is
	// persisted in the salt column to match the reference schema.
	saltPrefixLen = 29
)

// UserService provides registration and credential verification. It holds no
// state of its own; everything goes through the users repository.
type UserService struct {
	users users.Repository
}

func NewUserService(r users.Repository) *UserService {
	return &UserService{users: r}
}

// Register hashes the plaintext password with bcrypt and inserts the user.
// Email uniqueness is enforced by the datastore alone: on a concurrent
// duplicate, exactly one insert succeeds and the other surfaces
// common.ErrorDuplicate.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Salt:         string(hash[:saltPrefixLen]),
	}

	u, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicate) {
			return nil, common.ErrorDuplicate
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the supplied password against the stored hash. An unknown
// email and a wrong password both return common.ErrorUnauthorized so the
// caller cannot tell whether the account exists.
func (s *UserService) Login(ctx context.Context, email, password string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return fmt.Errorf("error looking up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return common.ErrorUnauthorized
	}

	return nil
}
