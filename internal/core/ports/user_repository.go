package ports

import (
	"context"

	"studel/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for platform accounts.
type UserRepository interface {
	// Add stores a new account. A duplicate phone number is a StateConflictError.
	Add(ctx context.Context, u *user.User) error

	// Update stores the approval flag of an existing account.
	Update(ctx context.Context, u *user.User) error

	// Get returns ObjectNotFoundError when no account has the id.
	Get(ctx context.Context, id string) (*user.User, error)

	// GetByPhone returns ObjectNotFoundError when no account has the phone number.
	GetByPhone(ctx context.Context, phone string) (*user.User, error)

	// ListByRole returns accounts of one role ordered by name.
	ListByRole(ctx context.Context, role user.Role) ([]*user.User, error)
}
