// Package analytics derives portfolio aggregates from a ledger snapshot.
package analytics

import "github.com/shopspring/decimal"

// Tier is a qualitative recommendation band derived from the total
// accumulated amount.
type Tier struct {
	Level    int
	Title    string
	Subtitle string
	Bullets  []string
}

// tierBreakpoints are the lower bounds of tiers 2..5. Bands are half-open and
// lower-inclusive: a total sitting exactly on a breakpoint belongs to the
// upper band.
var tierBreakpoints = []decimal.Decimal{
	decimal.NewFromInt(5000),
	decimal.NewFromInt(15000),
	decimal.NewFromInt(30000),
	decimal.NewFromInt(60000),
}

var tiers = []Tier{
	{
		Level:    1,
		Title:    "Faixa 1 • Liquidez Máxima",
		Subtitle: "Foque em liquidez e promoções.",
		Bullets:  []string{"Produtos >110% do CDI", "Caixinhas e carteiras D+0", "Formar reserva de emergência inicial"},
	},
	{
		Level:    2,
		Title:    "Faixa 2 • Base sólida",
		Subtitle: "Construa fundamentos em renda fixa premium.",
		Bullets:  []string{"Tesouro Selic como pilar", "Fundos/LCI com liquidez", "Evite riscos desnecessários"},
	},
	{
		Level:    3,
		Title:    "Faixa 3 • Diversificação",
		Subtitle: "Inclua FIIs e ETFs internacionais.",
		Bullets:  []string{"10-20% em FIIs", "Exposição ao exterior via ETFs", "Mantenha colchão de liquidez"},
	},
	{
		Level:    4,
		Title:    "Faixa 4 • Crescimento",
		Subtitle: "Acelere com peso em FIIs + ETFs.",
		Bullets:  []string{"Aumente aportes mensais", "Rebalanceie trimestralmente", "Defina metas claras por bucket"},
	},
	{
		Level:    5,
		Title:    "Faixa 5 • Máquina financeira",
		Subtitle: "Foque em renda passiva e proteção.",
		Bullets:  []string{"Proteção cambial", "FIIs maduros + renda fixa longa", "Planeje sucessão e seguros"},
	},
}

// ClassifyTier maps a total balance onto exactly one of the five
// recommendation tiers.
func ClassifyTier(total decimal.Decimal) Tier {
	for i, breakpoint := range tierBreakpoints {
		if total.LessThan(breakpoint) {
			return tiers[i]
		}
	}
	return tiers[len(tiers)-1]
}
