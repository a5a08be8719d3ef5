// Package session contains the session lifecycle use cases.
package session

import (
	"context"
	"fmt"
	"regexp"

	"github.com/lifeplan/backend/internal/application/adapter"
	"github.com/lifeplan/backend/internal/domain/entity"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 8

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterInput represents the input for registering a new user.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

// RegisterOutput represents the output of a successful registration.
type RegisterOutput struct {
	Token    string
	Identity entity.Identity
	State    *entity.LedgerState
}

// RegisterUseCase creates an identity at the provider and hydrates a fresh
// session for it. A brand-new user has no stored state, so hydration yields
// the seed ledger with the new identity on it.
type RegisterUseCase struct {
	provider   adapter.IdentityProvider
	manager    *Manager
	tokens     adapter.TokenService
	remembered adapter.RememberedIdentityStore // nil when the remote provider is configured
}

// NewRegisterUseCase creates a new RegisterUseCase instance.
func NewRegisterUseCase(
	provider adapter.IdentityProvider,
	manager *Manager,
	tokens adapter.TokenService,
	remembered adapter.RememberedIdentityStore,
) *RegisterUseCase {
	return &RegisterUseCase{
		provider:   provider,
		manager:    manager,
		tokens:     tokens,
		remembered: remembered,
	}
}

// Execute performs the registration.
func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if !emailRegex.MatchString(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	if len(input.Password) < minPasswordLength {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	identity, err := uc.provider.Register(ctx, input.Email, input.Password, input.DisplayName)
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

	return &RegisterOutput{
		Token:    token,
		Identity: *identity,
		State:    state,
	}, nil
}
