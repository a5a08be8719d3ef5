// Package analytics derives portfolio aggregates from a ledger snapshot.
package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lifeplan/backend/internal/domain/entity"
)

// Point is one step of the cumulative-balance series.
type Point struct {
	Index      int
	Cumulative decimal.Decimal
}

// Slice is one proportional share of a 360-degree chart.
type Slice struct {
	Key     string
	Degrees int
}

// CumulativeSeries orders entries by date ascending (stable: entries with
// equal dates keep their original relative order) and produces a running sum
// keyed by position. Empty input yields an empty series, which callers render
// as an explicit "no history" state.
func CumulativeSeries(entries []entity.Entry) []Point {
	if len(entries) == 0 {
		return nil
	}

	sorted := make([]entity.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	points := make([]Point, 0, len(sorted))
	cumulative := decimal.Zero
	for i, e := range sorted {
		cumulative = cumulative.Add(e.Amount)
		points = append(points, Point{Index: i, Cumulative: cumulative})
	}
	return points
}

// ProportionalSlices converts a breakdown into whole-degree shares of a full
// circle, preserving breakdown order. A zero-sum breakdown yields no slices;
// callers render a neutral placeholder instead of dividing by zero.
func ProportionalSlices(breakdown []KeyedAmount) []Slice {
	total := decimal.Zero
	for _, b := range breakdown {
		total = total.Add(b.Amount)
	}
	if total.IsZero() {
		return nil
	}

	fullCircle := decimal.NewFromInt(360)
	slices := make([]Slice, 0, len(breakdown))
	for _, b := range breakdown {
		degrees := b.Amount.Mul(fullCircle).Div(total).Round(0)
		slices = append(slices, Slice{Key: b.Key, Degrees: int(degrees.IntPart())})
	}
	return slices
}
