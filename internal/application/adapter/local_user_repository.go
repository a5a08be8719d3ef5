// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/lifeplan/backend/internal/domain/entity"
)

// LocalUser is a locally registered identity with its stored credential hash.
type LocalUser struct {
	Identity     entity.Identity
	PasswordHash string
}

// LocalUserRepository persists locally registered users when no remote
// identity provider is configured.
type LocalUserRepository interface {
	// Create stores a new local user.
	Create(ctx context.Context, user *LocalUser) error

	// FindByEmail returns the local user with the given email, or
	// domain ErrLocalUserNotFound when none is registered.
	FindByEmail(ctx context.Context, email string) (*LocalUser, error)

	// ExistsByEmail reports whether a local user with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
