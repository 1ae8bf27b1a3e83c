package i

import (
	"context"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(user *domain.User) error

	// ByID retrieves a user by their unique ID.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByID(id uuid.UUID) (*domain.User, error)

	// ByUsername retrieves a user by their username.
	// Returns an error if the user is not found or in case of an unexpected error.
	ByUsername(username string) (*domain.User, error)

	// IncrementWalksDone bumps the finished-walk counter of a user.
	IncrementWalksDone(id uuid.UUID) error
}

// WalkStore keeps walk sessions for a limited time.
type WalkStore interface {
	// Save stores the walk, resetting its time to live.
	Save(ctx context.Context, walk *domain.Walk, ttl time.Duration) error

	// Update overwrites an existing walk, resetting its time to live. It never recreates a
	// deleted or expired walk and returns domain.ErrWalkNotFound instead.
	Update(ctx context.Context, walk *domain.Walk, ttl time.Duration) error

	// ByID loads a walk. Returns domain.ErrWalkNotFound when it is missing or expired.
	ByID(ctx context.Context, id uuid.UUID) (*domain.Walk, error)

	// Delete removes a walk. Deleting a missing walk is not an error.
	Delete(ctx context.Context, id uuid.UUID) error

	// Lock serialises updates to one walk. The returned function releases the lock and
	// reports a lock that was lost before release, e.g. after it expired.
	Lock(ctx context.Context, id uuid.UUID) (func() error, error)
}
