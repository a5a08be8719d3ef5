// Package ledger contains the ledger mutation and read use cases.
package ledger

import (
	"context"

	"github.com/lifeplan/backend/internal/application/usecase/session"
	"github.com/lifeplan/backend/internal/domain/entity"
)

// AddEntryInput represents the input for recording a contribution. Amount and
// Date arrive as submitted text; malformed values coerce rather than fail.
type AddEntryInput struct {
	UID           string
	Amount        string
	Date          string
	InstitutionID string
	GoalID        string
	AssetClass    string
	Description   string
}

// AddEntryOutput represents the output of recording a contribution.
type AddEntryOutput struct {
	Entry entity.Entry
}

// AddEntryUseCase appends a contribution to the user's ledger. The entry is
// immutable once appended; the mutated aggregate is auto-saved in the
// background.
type AddEntryUseCase struct {
	manager *session.Manager
}

// NewAddEntryUseCase creates a new AddEntryUseCase instance.
func NewAddEntryUseCase(manager *session.Manager) *AddEntryUseCase {
	return &AddEntryUseCase{manager: manager}
}

// Execute records the contribution.
func (uc *AddEntryUseCase) Execute(_ context.Context, input AddEntryInput) (*AddEntryOutput, error) {
	entry := entity.NewEntry(
		coerceAmount(input.Amount),
		coerceDate(input.Date),
		input.InstitutionID,
		input.GoalID,
		input.AssetClass,
		input.Description,
	)

	if _, err := uc.manager.Mutate(input.UID, func(s *entity.LedgerState) {
		s.AppendEntry(entry)
	}); err != nil {
		return nil, err
	}

	return &AddEntryOutput{Entry: entry}, nil
}
