// Package ledger contains the ledger mutation and read use cases.
package ledger

import (
	"context"

	"github.com/lifeplan/backend/internal/application/usecase/session"
	"github.com/lifeplan/backend/internal/domain/entity"
)

// UpdateProfileInput represents the input for replacing the user's profile.
// Numeric fields arrive as submitted text and coerce to zero when malformed.
type UpdateProfileInput struct {
	UID              string
	Income           string
	Expenses         string
	MainGoalName     string
	MainGoalTarget   string
	MainGoalDeadline string
	PrimaryGoalID    string
}

// UpdateProfileOutput represents the output of replacing the profile.
type UpdateProfileOutput struct {
	Profile entity.Profile
}

// UpdateProfileUseCase overwrites the profile wholesale; the profile is a
// singleton with no merge semantics.
type UpdateProfileUseCase struct {
	manager *session.Manager
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(manager *session.Manager) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{manager: manager}
}

// Execute replaces the profile.
func (uc *UpdateProfileUseCase) Execute(_ context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	profile := entity.Profile{
		Income:           coerceAmount(input.Income),
		Expenses:         coerceAmount(input.Expenses),
		MainGoalName:     input.MainGoalName,
		MainGoalTarget:   coerceAmount(input.MainGoalTarget),
		MainGoalDeadline: coerceDate(input.MainGoalDeadline),
		PrimaryGoalID:    input.PrimaryGoalID,
	}

	if _, err := uc.manager.Mutate(input.UID, func(s *entity.LedgerState) {
		s.ReplaceProfile(profile)
	}); err != nil {
		return nil, err
	}

	return &UpdateProfileOutput{Profile: profile}, nil
}
