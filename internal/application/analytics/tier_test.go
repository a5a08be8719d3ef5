// Package analytics derives portfolio aggregates from a ledger snapshot.
package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestClassifyTier(t *testing.T) {
	tests := []struct {
		name      string
		total     int64
		wantLevel int
	}{
		{name: "zero balance", total: 0, wantLevel: 1},
		{name: "just below first breakpoint", total: 4999, wantLevel: 1},
		{name: "first breakpoint belongs to upper band", total: 5000, wantLevel: 2},
		{name: "mid second band", total: 14999, wantLevel: 2},
		{name: "second breakpoint", total: 15000, wantLevel: 3},
		{name: "mid third band", total: 29999, wantLevel: 3},
		{name: "third breakpoint", total: 30000, wantLevel: 4},
		{name: "mid fourth band", total: 59999, wantLevel: 4},
		{name: "fourth breakpoint", total: 60000, wantLevel: 5},
		{name: "large balance", total: 1000000, wantLevel: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := ClassifyTier(decimal.NewFromInt(tt.total))
			if tier.Level != tt.wantLevel {
				t.Errorf("total %d: expected tier %d, got %d", tt.total, tt.wantLevel, tier.Level)
			}
		})
	}
}

func TestClassifyTierIsMonotonic(t *testing.T) {
	previous := 0
	for total := int64(0); total <= 70000; total += 250 {
		tier := ClassifyTier(decimal.NewFromInt(total))
		if tier.Level < previous {
			t.Fatalf("tier level decreased at total %d: %d -> %d", total, previous, tier.Level)
		}
		previous = tier.Level
	}
}

func TestClassifyTierCarriesRecommendations(t *testing.T) {
	for _, total := range []int64{0, 5000, 15000, 30000, 60000} {
		tier := ClassifyTier(decimal.NewFromInt(total))
		if tier.Title == "" || tier.Subtitle == "" {
			t.Errorf("total %d: tier is missing title or subtitle", total)
		}
		if len(tier.Bullets) != 3 {
			t.Errorf("total %d: expected 3 recommended actions, got %d", total, len(tier.Bullets))
		}
	}
}
