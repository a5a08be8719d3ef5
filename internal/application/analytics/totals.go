// Package analytics derives portfolio aggregates from a ledger snapshot.
// Every function here is pure and total: the same snapshot always yields the
// same aggregates, and partially-invalid user data degrades to a zero
// contribution instead of an error.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/lifeplan/backend/internal/domain/entity"
)

// KeyedAmount is one bucket of an insertion-ordered breakdown.
type KeyedAmount struct {
	Key    string
	Amount decimal.Decimal
}

// Totals holds the aggregates derived from a ledger snapshot. The breakdown
// slices keep first-seen order of their keys across entries; keys that never
// appear are omitted.
type Totals struct {
	Total         decimal.Decimal
	ByClass       []KeyedAmount
	ByInstitution []KeyedAmount
	GoalProgress  []KeyedAmount
}

// Amount returns the amount accumulated under key, or zero when the key is
// absent from the breakdown.
func Amount(breakdown []KeyedAmount, key string) decimal.Decimal {
	for _, b := range breakdown {
		if b.Key == key {
			return b.Amount
		}
	}
	return decimal.Zero
}

// accumulator sums amounts per key while preserving first-seen key order.
type accumulator struct {
	order   []string
	amounts map[string]decimal.Decimal
}

func newAccumulator() *accumulator {
	return &accumulator{amounts: make(map[string]decimal.Decimal)}
}

func (a *accumulator) add(key string, amount decimal.Decimal) {
	if _, seen := a.amounts[key]; !seen {
		a.order = append(a.order, key)
	}
	a.amounts[key] = a.amounts[key].Add(amount)
}

func (a *accumulator) result() []KeyedAmount {
	if len(a.order) == 0 {
		return nil
	}
	out := make([]KeyedAmount, 0, len(a.order))
	for _, key := range a.order {
		out = append(out, KeyedAmount{Key: key, Amount: a.amounts[key]})
	}
	return out
}

// ComputeTotals derives the total balance and the per-class, per-institution
// and per-goal breakdowns from the entries of the given snapshot. Goal
// progress considers only entries carrying a goal reference.
func ComputeTotals(state *entity.LedgerState) Totals {
	total := decimal.Zero
	byClass := newAccumulator()
	byInstitution := newAccumulator()
	goalProgress := newAccumulator()

	if state == nil {
		return Totals{Total: total}
	}

	for _, e := range state.Entries {
		total = total.Add(e.Amount)
		byClass.add(e.AssetClass, e.Amount)
		byInstitution.add(e.InstitutionID, e.Amount)
		if e.GoalID != "" {
			goalProgress.add(e.GoalID, e.Amount)
		}
	}

	return Totals{
		Total:         total,
		ByClass:       byClass.result(),
		ByInstitution: byInstitution.result(),
		GoalProgress:  goalProgress.result(),
	}
}

// GoalCompletionPercent returns how far progress has come toward target, as a
// whole percentage clamped to 100. Target is expected to be positive per the
// Goal invariant.
func GoalCompletionPercent(target, progress decimal.Decimal) int {
	if progress.GreaterThanOrEqual(target) {
		return 100
	}
	pct := progress.Div(target).Mul(decimal.NewFromInt(100)).Round(0)
	return int(pct.IntPart())
}
