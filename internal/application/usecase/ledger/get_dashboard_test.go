// Package ledger contains the ledger mutation and read use cases.
package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lifeplan/backend/internal/application/usecase/session"
	"github.com/lifeplan/backend/internal/domain/entity"
	domainerror "github.com/lifeplan/backend/internal/domain/error"
)

// memoryStateRepository is an in-memory gateway honoring the seed-on-absence
// contract.
type memoryStateRepository struct {
	mu     sync.Mutex
	stored map[string]*entity.LedgerState
}

func newMemoryStateRepository() *memoryStateRepository {
	return &memoryStateRepository{stored: make(map[string]*entity.LedgerState)}
}

func (r *memoryStateRepository) Save(_ context.Context, identity entity.Identity, state *entity.LedgerState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stored[identity.UID] = state.Clone()
	return nil
}

func (r *memoryStateRepository) Load(_ context.Context, identity entity.Identity) (*entity.LedgerState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if state, ok := r.stored[identity.UID]; ok {
		return state.Clone(), nil
	}
	return entity.SeedState(identity), nil
}

func newTestSession(t *testing.T) (*session.Manager, entity.Identity) {
	t.Helper()
	identity := entity.Identity{UID: "u1", Name: "Planner", Email: "planner@lifeplan.app"}
	manager := session.NewManager(newMemoryStateRepository())
	if _, err := manager.Begin(context.Background(), identity); err != nil {
		t.Fatalf("unexpected error hydrating session: %v", err)
	}
	return manager, identity
}

func TestGetDashboardSeedState(t *testing.T) {
	manager, identity := newTestSession(t)
	uc := NewGetDashboardUseCase(manager)

	out, err := uc.Execute(context.Background(), GetDashboardInput{UID: identity.UID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := decimal.NewFromInt(2730); !out.Total.Equal(want) {
		t.Errorf("expected seed total %s, got %s", want, out.Total)
	}
	if out.Tier.Level != 1 {
		t.Errorf("expected tier 1 for seed total, got %d", out.Tier.Level)
	}
	if len(out.Series) != 4 {
		t.Errorf("expected 4 series points, got %d", len(out.Series))
	}

	// Seed institutions resolve to their names, in first-seen entry order.
	if len(out.ByInstitution) != 2 {
		t.Fatalf("expected 2 institution buckets, got %d", len(out.ByInstitution))
	}
	if out.ByInstitution[0].Label != "Nubank" || out.ByInstitution[1].Label != "XP Investimentos" {
		t.Errorf("unexpected institution labels: %q, %q", out.ByInstitution[0].Label, out.ByInstitution[1].Label)
	}

	// Reserva de Emergência accumulated 1200 + 450 against a 15000 target.
	var reserva *GoalProgress
	for i := range out.Goals {
		if out.Goals[i].Name == "Reserva de Emergência" {
			reserva = &out.Goals[i]
		}
	}
	if reserva == nil {
		t.Fatal("expected the reserva goal on the dashboard")
	}
	if want := decimal.NewFromInt(1650); !reserva.Progress.Equal(want) {
		t.Errorf("expected reserva progress %s, got %s", want, reserva.Progress)
	}
	if reserva.Percent != 11 {
		t.Errorf("expected reserva at 11%%, got %d%%", reserva.Percent)
	}
}

func TestGetDashboardDanglingInstitution(t *testing.T) {
	manager, identity := newTestSession(t)

	addEntry := NewAddEntryUseCase(manager)
	if _, err := addEntry.Execute(context.Background(), AddEntryInput{
		UID:           identity.UID,
		Amount:        "300",
		Date:          "2024-08-01",
		InstitutionID: "inst-deleted",
		AssetClass:    "Caixa",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := NewGetDashboardUseCase(manager).Execute(context.Background(), GetDashboardInput{UID: identity.UID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var dangling *Bucket
	for i := range out.ByInstitution {
		if out.ByInstitution[i].Key == "inst-deleted" {
			dangling = &out.ByInstitution[i]
		}
	}
	if dangling == nil {
		t.Fatal("expected a bucket for the dangling institution reference")
	}
	if dangling.Label != SentinelInstitutionName {
		t.Errorf("expected sentinel label %q, got %q", SentinelInstitutionName, dangling.Label)
	}
}

func TestGetDashboardEmptyLedger(t *testing.T) {
	identity := entity.Identity{UID: "u1", Email: "planner@lifeplan.app"}
	repo := newMemoryStateRepository()
	empty := entity.SeedState(identity)
	empty.Entries = nil
	empty.Goals = nil
	empty.Institutions = nil
	repo.stored[identity.UID] = empty

	manager := session.NewManager(repo)
	if _, err := manager.Begin(context.Background(), identity); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := NewGetDashboardUseCase(manager).Execute(context.Background(), GetDashboardInput{UID: identity.UID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Total.IsZero() {
		t.Errorf("expected zero total, got %s", out.Total)
	}
	if len(out.Series) != 0 {
		t.Errorf("expected empty series, got %d points", len(out.Series))
	}
	if len(out.ClassSlices) != 0 || len(out.InstitutionSlices) != 0 {
		t.Error("expected no slices for an empty ledger")
	}
	if out.Tier.Level != 1 {
		t.Errorf("expected tier 1 for zero balance, got %d", out.Tier.Level)
	}
}

func TestAddGoalValidatesTarget(t *testing.T) {
	manager, identity := newTestSession(t)
	uc := NewAddGoalUseCase(manager)

	for _, target := range []string{"0", "-100", "abc", ""} {
		if _, err := uc.Execute(context.Background(), AddGoalInput{UID: identity.UID, Name: "Viagem", Target: target}); !errors.Is(err, domainerror.ErrInvalidGoalTarget) {
			t.Errorf("target %q: expected ErrInvalidGoalTarget, got %v", target, err)
		}
	}

	out, err := uc.Execute(context.Background(), AddGoalInput{
		UID:      identity.UID,
		Name:     "Viagem",
		Target:   "8000",
		Due:      "2026-01-01",
		Priority: "urgente", // unrecognized, normalizes to media
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Goal.Priority != entity.GoalPriorityMedia {
		t.Errorf("expected media priority for unrecognized input, got %s", out.Goal.Priority)
	}
}

func TestAddInstitutionValidatesRisk(t *testing.T) {
	manager, identity := newTestSession(t)
	uc := NewAddInstitutionUseCase(manager)

	for _, risk := range []int{0, 6, -1} {
		if _, err := uc.Execute(context.Background(), AddInstitutionInput{UID: identity.UID, Name: "Inter", Risk: risk}); !errors.Is(err, domainerror.ErrInvalidRisk) {
			t.Errorf("risk %d: expected ErrInvalidRisk, got %v", risk, err)
		}
	}
}

func TestAddEntryCoercesMalformedInput(t *testing.T) {
	manager, identity := newTestSession(t)
	uc := NewAddEntryUseCase(manager)

	out, err := uc.Execute(context.Background(), AddEntryInput{
		UID:           identity.UID,
		Amount:        "not-a-number",
		Date:          "also-not-a-date",
		InstitutionID: "inst-nubank",
		AssetClass:    "Caixa",
	})
	if err != nil {
		t.Fatalf("malformed numeric input must coerce, not fail: %v", err)
	}
	if !out.Entry.Amount.IsZero() {
		t.Errorf("expected coerced zero amount, got %s", out.Entry.Amount)
	}
	if !out.Entry.Date.IsZero() {
		t.Errorf("expected coerced zero date, got %s", out.Entry.Date)
	}

	snapshot, err := NewGetSnapshotUseCase(manager).Execute(context.Background(), GetSnapshotInput{UID: identity.UID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(snapshot.State.Entries); got != 5 {
		t.Errorf("expected the coerced entry to be appended, got %d entries", got)
	}
}

func TestUpdateProfileReplacesWholesale(t *testing.T) {
	manager, identity := newTestSession(t)
	uc := NewUpdateProfileUseCase(manager)

	out, err := uc.Execute(context.Background(), UpdateProfileInput{
		UID:              identity.UID,
		Income:           "7000",
		Expenses:         "oops",
		MainGoalName:     "Apartamento",
		MainGoalTarget:   "90000",
		MainGoalDeadline: "2027-06-30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.Profile.Income.Equal(decimal.NewFromInt(7000)) {
		t.Errorf("expected income 7000, got %s", out.Profile.Income)
	}
	if !out.Profile.Expenses.IsZero() {
		t.Errorf("expected malformed expenses to coerce to zero, got %s", out.Profile.Expenses)
	}
	if out.Profile.PrimaryGoalID != "" {
		t.Errorf("expected primary goal to be cleared by wholesale replace, got %q", out.Profile.PrimaryGoalID)
	}

	snapshot, err := NewGetSnapshotUseCase(manager).Execute(context.Background(), GetSnapshotInput{UID: identity.UID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot.State.Profile.MainGoalName != "Apartamento" {
		t.Errorf("expected replaced profile in state, got %q", snapshot.State.Profile.MainGoalName)
	}
	if snapshot.State.Profile.MainGoalDeadline.IsZero() {
		t.Error("expected parsed deadline in replaced profile")
	}
}
