package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/bizdesk-api/pkg/identity"
)

// ListOptions controls the ordering of a collection listing
type ListOptions struct {
	// OrderBy is the JSON name of the field to sort on. Empty uses the
	// collection default.
	OrderBy   string
	Ascending bool
}

// Collection is a handle on one collection, restricted to a single tenant.
// Every method fails with apperror.ErrUnauthorized when the handle was built
// without a caller.
type Collection[T any] interface {
	List(ctx context.Context, opts ListOptions) ([]T, error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	// Create assigns the id (when absent), owner and both timestamps.
	Create(ctx context.Context, doc *T) error
	// Update writes doc over the stored row, keeping its id, owner and
	// creation time, and stamps a new updatedAt.
	Update(ctx context.Context, doc *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Accessor hands out tenant-scoped handles for one collection
type Accessor[T any] interface {
	For(caller *identity.Caller) Collection[T]
}
