// Package ledger contains the ledger mutation and read use cases.
package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lifeplan/backend/internal/application/usecase/session"
	"github.com/lifeplan/backend/internal/domain/entity"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
)

// AddGoalInput represents the input for creating a savings goal.
type AddGoalInput struct {
	UID      string
	Name     string
	Target   string
	Due      string
	Priority string
}

// AddGoalOutput represents the output of creating a savings goal.
type AddGoalOutput struct {
	Goal entity.Goal
}

// AddGoalUseCase appends a savings goal to the user's ledger. Unlike entry
// amounts, the goal target is an invariant (strictly positive), so a
// malformed target is rejected instead of coerced.
type AddGoalUseCase struct {
	manager *session.Manager
}

// NewAddGoalUseCase creates a new AddGoalUseCase instance.
func NewAddGoalUseCase(manager *session.Manager) *AddGoalUseCase {
	return &AddGoalUseCase{manager: manager}
}

// Execute creates the goal.
func (uc *AddGoalUseCase) Execute(_ context.Context, input AddGoalInput) (*AddGoalOutput, error) {
	target, err := decimal.NewFromString(input.Target)
	if err != nil || !target.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidGoalTarget,
			"goal target must be a positive amount",
			domainerror.ErrInvalidGoalTarget,
		)
	}

	goal := entity.NewGoal(input.Name, target, coerceDate(input.Due), normalizePriority(input.Priority))

	if _, err := uc.manager.Mutate(input.UID, func(s *entity.LedgerState) {
		s.AppendGoal(goal)
	}); err != nil {
		return nil, err
	}

	return &AddGoalOutput{Goal: goal}, nil
}

// normalizePriority maps submitted text onto the priority enum, defaulting to
// media for anything unrecognized.
func normalizePriority(raw string) entity.GoalPriority {
	switch entity.GoalPriority(raw) {
	case entity.GoalPriorityAlta, entity.GoalPriorityMedia, entity.GoalPriorityBaixa:
		return entity.GoalPriority(raw)
	default:
		return entity.GoalPriorityMedia
	}
}
