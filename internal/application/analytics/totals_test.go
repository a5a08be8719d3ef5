// Package analytics derives portfolio aggregates from a ledger snapshot.
package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifeplan/backend/internal/domain/entity"
)

func entry(amount int64, day time.Time, institutionID, goalID, assetClass string) entity.Entry {
	return entity.Entry{
		ID:            "e-" + assetClass,
		Amount:        decimal.NewFromInt(amount),
		Date:          day,
		InstitutionID: institutionID,
		GoalID:        goalID,
		AssetClass:    assetClass,
	}
}

func TestComputeTotals(t *testing.T) {
	june2 := time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC)
	june15 := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	july1 := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	t.Run("total equals sum over all entries", func(t *testing.T) {
		state := &entity.LedgerState{Entries: []entity.Entry{
			entry(1200, june2, "inst-a", "g1", "Renda Fixa"),
			entry(450, june15, "inst-a", "g1", "Renda Fixa"),
			entry(380, july1, "inst-b", "", "Caixa"),
		}}

		totals := ComputeTotals(state)
		if want := decimal.NewFromInt(2030); !totals.Total.Equal(want) {
			t.Errorf("expected total %s, got %s", want, totals.Total)
		}
	})

	t.Run("empty ledger yields zero total and no breakdowns", func(t *testing.T) {
		totals := ComputeTotals(&entity.LedgerState{})
		if !totals.Total.IsZero() {
			t.Errorf("expected zero total, got %s", totals.Total)
		}
		if len(totals.ByClass) != 0 || len(totals.ByInstitution) != 0 || len(totals.GoalProgress) != 0 {
			t.Error("expected empty breakdowns for empty ledger")
		}
	})

	t.Run("nil state is tolerated", func(t *testing.T) {
		totals := ComputeTotals(nil)
		if !totals.Total.IsZero() {
			t.Errorf("expected zero total, got %s", totals.Total)
		}
	})

	t.Run("missing amount contributes zero", func(t *testing.T) {
		state := &entity.LedgerState{Entries: []entity.Entry{
			{ID: "e1", Date: june2, InstitutionID: "inst-a", AssetClass: "Caixa"}, // zero-valued Amount
			entry(450, june15, "inst-a", "", "Caixa"),
		}}

		totals := ComputeTotals(state)
		if want := decimal.NewFromInt(450); !totals.Total.Equal(want) {
			t.Errorf("expected total %s, got %s", want, totals.Total)
		}
	})

	t.Run("breakdowns keep first-seen order", func(t *testing.T) {
		state := &entity.LedgerState{Entries: []entity.Entry{
			entry(100, june2, "inst-b", "", "Renda Fixa"),
			entry(200, june15, "inst-a", "", "Caixa"),
			entry(300, july1, "inst-b", "", "Renda Fixa"),
		}}

		totals := ComputeTotals(state)

		wantClasses := []string{"Renda Fixa", "Caixa"}
		if len(totals.ByClass) != len(wantClasses) {
			t.Fatalf("expected %d classes, got %d", len(wantClasses), len(totals.ByClass))
		}
		for i, want := range wantClasses {
			if totals.ByClass[i].Key != want {
				t.Errorf("class %d: expected %q, got %q", i, want, totals.ByClass[i].Key)
			}
		}

		if want := decimal.NewFromInt(400); !Amount(totals.ByClass, "Renda Fixa").Equal(want) {
			t.Errorf("expected Renda Fixa total %s, got %s", want, Amount(totals.ByClass, "Renda Fixa"))
		}
		if totals.ByInstitution[0].Key != "inst-b" || totals.ByInstitution[1].Key != "inst-a" {
			t.Errorf("unexpected institution order: %v", totals.ByInstitution)
		}
	})

	t.Run("goal progress only counts entries with a goal", func(t *testing.T) {
		state := &entity.LedgerState{Entries: []entity.Entry{
			entry(1200, june2, "inst-a", "g1", "Renda Fixa"),
			entry(450, june15, "inst-a", "g1", "Renda Fixa"),
			entry(380, july1, "inst-b", "", "Caixa"),
		}}

		totals := ComputeTotals(state)
		if len(totals.GoalProgress) != 1 {
			t.Fatalf("expected 1 goal bucket, got %d", len(totals.GoalProgress))
		}
		if want := decimal.NewFromInt(1650); !Amount(totals.GoalProgress, "g1").Equal(want) {
			t.Errorf("expected g1 progress %s, got %s", want, Amount(totals.GoalProgress, "g1"))
		}
	})
}

func TestGoalCompletionPercent(t *testing.T) {
	tests := []struct {
		name     string
		target   int64
		progress int64
		want     int
	}{
		{name: "partial progress rounds half up", target: 2000, progress: 1650, want: 83},
		{name: "exactly at target", target: 2000, progress: 2000, want: 100},
		{name: "progress beyond target is clamped", target: 2000, progress: 5000, want: 100},
		{name: "no progress", target: 2000, progress: 0, want: 0},
		{name: "one third", target: 3000, progress: 1000, want: 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GoalCompletionPercent(decimal.NewFromInt(tt.target), decimal.NewFromInt(tt.progress))
			if got != tt.want {
				t.Errorf("expected %d%%, got %d%%", tt.want, got)
			}
		})
	}
}

func TestAmountMissingKey(t *testing.T) {
	breakdown := []KeyedAmount{{Key: "Caixa", Amount: decimal.NewFromInt(10)}}
	if got := Amount(breakdown, "missing"); !got.IsZero() {
		t.Errorf("expected zero for missing key, got %s", got)
	}
}
