package ports

import (
	"context"
	"time"

	"github.com/foundever/reactions/internal/core/domain"
)

// CreateUserInput carries the data needed to create a user. Nil optional
// fields take their defaults: external role, zeroed reactions, no last reaction.
type CreateUserInput struct {
	Username       string
	Role           *domain.Role
	Reactions      *domain.Reactions
	LastReactionAt *time.Time
}

// UpdateUserInput identifies a user by Username. Only non-nil fields are
// applied; the transport layer guarantees at least one is set.
type UpdateUserInput struct {
	Username       string
	Role           *domain.Role
	Reactions      *domain.Reactions
	LastReactionAt *time.Time
}

// UserView is the fully materialized user returned by ListUsers, with
// timestamps rendered as RFC 3339 strings.
type UserView struct {
	ID             string
	Username       string
	Role           string
	Reactions      domain.Reactions
	LastReactionAt *string
	CreatedAt      string
	UpdatedAt      string
}

// UserService defines use-case operations for users.
type UserService interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, username string) error
	ListUsers(ctx context.Context, username string) ([]UserView, error)
}
