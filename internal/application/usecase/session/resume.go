// Package session contains the session lifecycle use cases.
package session

import (
	"context"
	"fmt"

	"github.com/lifeplan/backend/internal/application/adapter"
	"github.com/lifeplan/backend/internal/domain/entity"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
)

// ResumeOutput represents the output of resuming a remembered session.
type ResumeOutput struct {
	Token    string
	Identity entity.Identity
	State    *entity.LedgerState
}

// ResumeUseCase re-enters Authenticated using the identity remembered by a
// previous login, without asking for credentials again. This trust-on-first-use
// shortcut is only wired for the local backend, where there is no remote
// credential to validate.
type ResumeUseCase struct {
	manager    *Manager
	tokens     adapter.TokenService
	remembered adapter.RememberedIdentityStore // nil when the remote provider is configured
}

// NewResumeUseCase creates a new ResumeUseCase instance.
func NewResumeUseCase(
	manager *Manager,
	tokens adapter.TokenService,
	remembered adapter.RememberedIdentityStore,
) *ResumeUseCase {
	return &ResumeUseCase{
		manager:    manager,
		tokens:     tokens,
		remembered: remembered,
	}
}

// Execute resumes the remembered session, if any.
func (uc *ResumeUseCase) Execute(ctx context.Context) (*ResumeOutput, error) {
	if uc.remembered == nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeNoRememberedIdentity,
			"session resume is only available without a remote identity provider",
			domainerror.ErrNoRememberedIdentity,
		)
	}

	identity, err := uc.remembered.Recall(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to recall remembered identity: %w", err)
	}
	if identity == nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeNoRememberedIdentity,
			"no remembered identity",
			domainerror.ErrNoRememberedIdentity,
		)
	}

	state, err := uc.manager.Begin(ctx, *identity)
	if err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeStoreUnreachable,
			"failed to load stored state",
			err,
		)
	}

	token, err := uc.tokens.GenerateToken(ctx, *identity)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &ResumeOutput{
		Token:    token,
		Identity: *identity,
		State:    state,
	}, nil
}
