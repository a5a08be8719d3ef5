// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seed dataset shown to users with no stored ledger yet. IDs are stable so
// that the seed entries keep referencing their institutions and goals across
// hydrations.
const (
	seedInstitutionNubank = "inst-nubank"
	seedInstitutionXP     = "inst-xp"
	seedGoalMoto          = "goal-moto"
	seedGoalReserva       = "goal-reserva"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedState builds a fresh demo ledger for the given identity. It is used
// whenever a user logs in without any previously stored state.
func SeedState(user Identity) *LedgerState {
	return &LedgerState{
		Profile: Profile{
			Income:           decimal.NewFromInt(5500),
			Expenses:         decimal.NewFromInt(2600),
			MainGoalName:     "Reserva de Emergência",
			MainGoalTarget:   decimal.NewFromInt(15000),
			MainGoalDeadline: date(2025, time.December, 20),
			PrimaryGoalID:    seedGoalReserva,
		},
		Institutions: []Institution{
			{ID: seedInstitutionNubank, Name: "Nubank", Type: "Banco Digital", Yield: "115% do CDI", Liquidity: "D+0", Risk: 2},
			{ID: seedInstitutionXP, Name: "XP Investimentos", Type: "Corretora", Yield: "Tesouro / FIIs", Liquidity: "D+1", Risk: 3},
		},
		Goals: []Goal{
			{ID: seedGoalMoto, Name: "Moto", Target: decimal.NewFromInt(20000), Due: date(2026, time.February, 1), Priority: GoalPriorityAlta},
			{ID: seedGoalReserva, Name: "Reserva de Emergência", Target: decimal.NewFromInt(15000), Due: date(2025, time.December, 20), Priority: GoalPriorityAlta},
		},
		Entries: []Entry{
			{ID: "e1", Amount: decimal.NewFromInt(700), Date: date(2024, time.May, 15), InstitutionID: seedInstitutionNubank, GoalID: seedGoalMoto, AssetClass: "Caixa", Description: "Caixinha Moto"},
			{ID: "e2", Amount: decimal.NewFromInt(1200), Date: date(2024, time.June, 2), InstitutionID: seedInstitutionXP, GoalID: seedGoalReserva, AssetClass: "Renda Fixa", Description: "Tesouro Selic"},
			{ID: "e3", Amount: decimal.NewFromInt(450), Date: date(2024, time.June, 15), InstitutionID: seedInstitutionXP, GoalID: seedGoalReserva, AssetClass: "Renda Fixa", Description: "Aporte extra"},
			{ID: "e4", Amount: decimal.NewFromInt(380), Date: date(2024, time.July, 1), InstitutionID: seedInstitutionNubank, GoalID: seedGoalMoto, AssetClass: "Caixa", Description: "Caixinha"},
		},
		User: user,
	}
}
