package ports

import (
	"context"

	"github.com/foundever/reactions/internal/core/domain"
)

// ListUsersFilter narrows a user listing. An empty Username means no filter;
// a non-empty one is matched exactly.
type ListUsersFilter struct {
	Username string
}

// UserRepository defines persistence operations for users.
//
// Create, Update and Delete each run as one committed unit of work and
// refresh the passed user from the store on success.
type UserRepository interface {
	// UsernameExists reports whether a user with exactly this username is stored.
	UsernameExists(ctx context.Context, username string) (bool, error)
	// FindByUsername returns domain.ErrUserDoesNotExist when nothing matches.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, error)

	// Create returns *domain.UsernameAlreadyExistsError when the store's
	// unique constraint rejects the username.
	Create(ctx context.Context, user *domain.User) error
	// Update and Delete return domain.ErrUserDoesNotExist when the row is gone.
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, user *domain.User) error
}
