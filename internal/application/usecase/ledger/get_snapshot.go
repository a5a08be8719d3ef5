// Package ledger contains the ledger mutation and read use cases.
package ledger

import (
	"context"

	"github.com/lifeplan/backend/internal/application/usecase/session"
	"github.com/lifeplan/backend/internal/domain/entity"
)

// GetSnapshotInput represents the input for reading the raw ledger state.
type GetSnapshotInput struct {
	UID string
}

// GetSnapshotOutput represents the output of reading the raw ledger state.
type GetSnapshotOutput struct {
	State *entity.LedgerState
}

// GetSnapshotUseCase returns a copy of the user's current ledger aggregate.
type GetSnapshotUseCase struct {
	manager *session.Manager
}

// NewGetSnapshotUseCase creates a new GetSnapshotUseCase instance.
func NewGetSnapshotUseCase(manager *session.Manager) *GetSnapshotUseCase {
	return &GetSnapshotUseCase{manager: manager}
}

// Execute reads the snapshot.
func (uc *GetSnapshotUseCase) Execute(_ context.Context, input GetSnapshotInput) (*GetSnapshotOutput, error) {
	state, err := uc.manager.Snapshot(input.UID)
	if err != nil {
		return nil, err
	}
	return &GetSnapshotOutput{State: state}, nil
}
