// Package users persists User rows. The only operations the service needs
// are inserting a new account and looking one up by email.
package users

import (
	"context"

	"github.com/dmitrijs2005/docport/internal/server/models"
)

type Repository interface {
	// Create inserts a new user and returns it with the datastore-assigned
	// ID. A duplicate email yields common.ErrorDuplicate.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with exactly this email, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
