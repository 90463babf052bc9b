// Package store defines the storage contract for registrations and users,
// with an in-memory implementation used by default and a PostgreSQL
// implementation selected when a database URL is configured.
package store

import (
	"context"
	"errors"

	"github.com/govtec-events/backend/internal/models"
)

// ErrUsernameTaken is returned by CreateUser when the username already exists.
var ErrUsernameTaken = errors.New("username already taken")

// Storage is the persistence contract. Lookups return (nil, nil) when the
// record does not exist; a missing record is an expected outcome, not a fault.
type Storage interface {
	// CreateRegistration assigns the next ID, applies defaults
	// (communicationMethod -> "email"), stamps CreatedAt and stores the
	// record. ID assignment is serialized: concurrent calls never share an
	// ID, and IDs are never reused.
	CreateRegistration(ctx context.Context, reg *models.Registration) error
	GetRegistration(ctx context.Context, id int64) (*models.Registration, error)
	// GetAllRegistrations returns records in creation order. Callers must
	// not rely on the ordering for anything beyond display.
	GetAllRegistrations(ctx context.Context) ([]*models.Registration, error)
	// VerifyRegistrationCode is an exact-case membership test against the
	// valid-code set. Callers normalize input (trim, uppercase) first.
	VerifyRegistrationCode(ctx context.Context, code string) (bool, error)

	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}
