// Package ledger contains the ledger mutation and read use cases.
package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifeplan/backend/internal/application/analytics"
	"github.com/lifeplan/backend/internal/application/usecase/session"
	"github.com/lifeplan/backend/internal/domain/entity"
)

// Sentinel labels for entries referencing an institution or goal that no
// longer resolves. Dangling references render, they never fail.
const (
	SentinelInstitutionName = "Instituição"
	SentinelNoGoal          = "Sem meta"
)

// GetDashboardInput represents the input for computing the dashboard.
type GetDashboardInput struct {
	UID string
}

// Bucket is one labeled share of a breakdown.
type Bucket struct {
	Key    string
	Label  string
	Amount decimal.Decimal
}

// GoalProgress is one goal with its accumulated progress.
type GoalProgress struct {
	ID       string
	Name     string
	Target   decimal.Decimal
	Progress decimal.Decimal
	Percent  int
	Priority entity.GoalPriority
	Due      time.Time
}

// GetDashboardOutput is the full derived view of a ledger snapshot: totals,
// tier recommendation, chart-ready breakdowns and the cumulative series.
type GetDashboardOutput struct {
	Total             decimal.Decimal
	Tier              analytics.Tier
	ByClass           []Bucket
	ByInstitution     []Bucket
	ClassSlices       []analytics.Slice
	InstitutionSlices []analytics.Slice
	Goals             []GoalProgress
	Series            []analytics.Point
	Sync              session.SyncStatus
}

// GetDashboardUseCase re-derives every aggregate from the current snapshot.
// Derivation is pure; nothing is cached between calls.
type GetDashboardUseCase struct {
	manager *session.Manager
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(manager *session.Manager) *GetDashboardUseCase {
	return &GetDashboardUseCase{manager: manager}
}

// Execute computes the dashboard for the user's current state.
func (uc *GetDashboardUseCase) Execute(_ context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	state, err := uc.manager.Snapshot(input.UID)
	if err != nil {
		return nil, err
	}

	syncStatus, err := uc.manager.SyncStatus(input.UID)
	if err != nil {
		return nil, err
	}

	totals := analytics.ComputeTotals(state)

	byClass := make([]Bucket, 0, len(totals.ByClass))
	for _, b := range totals.ByClass {
		byClass = append(byClass, Bucket{Key: b.Key, Label: b.Key, Amount: b.Amount})
	}

	byInstitution := make([]Bucket, 0, len(totals.ByInstitution))
	for _, b := range totals.ByInstitution {
		label := SentinelInstitutionName
		if inst := state.InstitutionByID(b.Key); inst != nil {
			label = inst.Name
		}
		byInstitution = append(byInstitution, Bucket{Key: b.Key, Label: label, Amount: b.Amount})
	}

	goals := make([]GoalProgress, 0, len(state.Goals))
	for _, g := range state.Goals {
		progress := analytics.Amount(totals.GoalProgress, g.ID)
		goals = append(goals, GoalProgress{
			ID:       g.ID,
			Name:     g.Name,
			Target:   g.Target,
			Progress: progress,
			Percent:  analytics.GoalCompletionPercent(g.Target, progress),
			Priority: g.Priority,
			Due:      g.Due,
		})
	}

	return &GetDashboardOutput{
		Total:             totals.Total,
		Tier:              analytics.ClassifyTier(totals.Total),
		ByClass:           byClass,
		ByInstitution:     byInstitution,
		ClassSlices:       analytics.ProportionalSlices(totals.ByClass),
		InstitutionSlices: analytics.ProportionalSlices(totals.ByInstitution),
		Goals:             goals,
		Series:            analytics.CumulativeSeries(state.Entries),
		Sync:              syncStatus,
	}, nil
}
