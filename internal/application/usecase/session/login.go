// Package session contains the session lifecycle use cases.
package session

import (
	"context"
	"fmt"

	"github.com/lifeplan/backend/internal/application/adapter"
	"github.com/lifeplan/backend/internal/domain/entity"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
)

// LoginInput represents the input for logging a user in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the output of a successful login.
type LoginOutput struct {
	Token    string
	Identity entity.Identity
	State    *entity.LedgerState
}

// LoginUseCase authenticates against the identity provider and hydrates the
// user's session from storage.
type LoginUseCase struct {
	provider   adapter.IdentityProvider
	manager    *Manager
	tokens     adapter.TokenService
	remembered adapter.RememberedIdentityStore // nil when the remote provider is configured
}

// NewLoginUseCase creates a new LoginUseCase instance.
func NewLoginUseCase(
	provider adapter.IdentityProvider,
	manager *Manager,
	tokens adapter.TokenService,
	remembered adapter.RememberedIdentityStore,
) *LoginUseCase {
	return &LoginUseCase{
		provider:   provider,
		manager:    manager,
		tokens:     tokens,
		remembered: remembered,
	}
}

// Execute performs the login. Provider failure leaves no session behind;
// hydration failure after provider success propagates so the caller can tell
// storage problems apart from bad credentials.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	identity, err := uc.provider.Authenticate(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	state, err := uc.manager.Begin(ctx, *identity)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeStoreUnreachable,
			"failed to load stored state",
			err,
		)
	}

	if uc.remembered != nil {
		if err := uc.remembered.Remember(ctx, *identity); err != nil {
			return nil, fmt.Errorf("failed to remember identity: %w", err)
		}
	}

	token, err := uc.tokens.GenerateToken(ctx, *identity)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginOutput{
		Token:    token,
		Identity: *identity,
		State:    state,
	}, nil
}
