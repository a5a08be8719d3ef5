// Package ledger contains the ledger mutation and read use cases.
package ledger

import (
	"context"

	"github.com/lifeplan/backend/internal/application/usecase/session"
)

// GetSyncStatusInput represents the input for reading the auto-save status.
type GetSyncStatusInput struct {
	UID string
}

// GetSyncStatusOutput represents the output of reading the auto-save status.
type GetSyncStatusOutput struct {
	Sync session.SyncStatus
}

// GetSyncStatusUseCase exposes the outcome of the most recent background
// save. Saves are fire-and-forget toward the caller, so this is how a failed
// save stays observable instead of being swallowed.
type GetSyncStatusUseCase struct {
	manager *session.Manager
}

// NewGetSyncStatusUseCase creates a new GetSyncStatusUseCase instance.
func NewGetSyncStatusUseCase(manager *session.Manager) *GetSyncStatusUseCase {
	return &GetSyncStatusUseCase{manager: manager}
}

// Execute reads the sync status.
func (uc *GetSyncStatusUseCase) Execute(_ context.Context, input GetSyncStatusInput) (*GetSyncStatusOutput, error) {
	status, err := uc.manager.SyncStatus(input.UID)
	if err != nil {
		return nil, err
	}
	return &GetSyncStatusOutput{Sync: status}, nil
}
