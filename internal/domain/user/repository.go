package user

import "context"

// Repository defines persistence operations for users.
type Repository interface {
	Create(ctx context.Context, u *User) error

	// GetByID returns the user, or ErrUserNotFound when no record
	// exists.
	GetByID(ctx context.Context, id string) (*User, error)

	Update(ctx context.Context, u *User) error
}
