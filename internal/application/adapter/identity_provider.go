// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/lifeplan/backend/internal/domain/entity"
)

// IdentityProvider abstracts credential issuance and validation. Two
// implementations exist: the Firebase-backed provider used when remote
// credentials are configured, and a local provider storing bcrypt-hashed
// credentials in the embedded database.
type IdentityProvider interface {
	// Register creates a new identity for the given credentials. DisplayName
	// is optional; providers fall back to a default planner name.
	Register(ctx context.Context, email, password, displayName string) (*entity.Identity, error)

	// Authenticate validates credentials and returns the matching identity.
	Authenticate(ctx context.Context, email, password string) (*entity.Identity, error)

	// Deauthenticate ends the provider-side session, if the provider keeps one.
	Deauthenticate(ctx context.Context) error
}

// RememberedIdentityStore persists the last authenticated identity so that a
// later process start can resume the session without re-authenticating.
// Only meaningful for the local backend, where there is no remote credential
// to validate.
type RememberedIdentityStore interface {
	// Remember stores identity as the remembered one, replacing any previous.
	Remember(ctx context.Context, identity entity.Identity) error

	// Recall returns the remembered identity, or nil when none is stored.
	Recall(ctx context.Context) (*entity.Identity, error)

	// Forget clears the remembered identity. Clearing when nothing is
	// remembered is not an error.
	Forget(ctx context.Context) error
}
