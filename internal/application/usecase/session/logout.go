// Package session contains the session lifecycle use cases.
package session

import (
	"context"
	"fmt"

	"github.com/lifeplan/backend/internal/application/adapter"
)

// LogoutInput represents the input for logging a user out.
type LogoutInput struct {
	UID string
}

// LogoutUseCase ends the session: it drops the in-memory state and clears any
// remembered identity. Persisted ledger state is never deleted.
type LogoutUseCase struct {
	provider   adapter.IdentityProvider
	manager    *Manager
	remembered adapter.RememberedIdentityStore // nil when the remote provider is configured
}

// NewLogoutUseCase creates a new LogoutUseCase instance.
func NewLogoutUseCase(
	provider adapter.IdentityProvider,
	manager *Manager,
	remembered adapter.RememberedIdentityStore,
) *LogoutUseCase {
	return &LogoutUseCase{
		provider:   provider,
		manager:    manager,
		remembered: remembered,
	}
}

// Execute performs the logout.
func (uc *LogoutUseCase) Execute(ctx context.Context, input LogoutInput) error {
	if err := uc.provider.Deauthenticate(ctx); err != nil {
		return fmt.Errorf("failed to deauthenticate: %w", err)
	}

	uc.manager.End(input.UID)

	if uc.remembered != nil {
		if err := uc.remembered.Forget(ctx); err != nil {
			return fmt.Errorf("failed to clear remembered identity: %w", err)
		}
	}

	return nil
}
