package advisor

import "github.com/AjAce1234/Catering-Cost-Calculator/pkg/models/domain"

// Band is an inclusive acceptable range for one metric.
type Band struct {
	Min float64
	Max float64
}

func (b Band) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Clamp returns v pulled to the nearest band edge it violates.
func (b Band) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Bands is the rule table the advisor judges breakdowns against.
// Labor is per guest for any meal type; material is per guest, keyed
// by meal family; margin is a percentage.
type Bands struct {
	LaborPerGuest    Band
	MaterialPerGuest map[domain.MealFamily]Band
	ProfitMarginPct  Band
}

// DefaultBands returns the industry-standard acceptable ranges.
func DefaultBands() Bands {
	return Bands{
		LaborPerGuest: Band{Min: 80, Max: 120},
		MaterialPerGuest: map[domain.MealFamily]Band{
			domain.FamilyBreakfast: {Min: 60, Max: 90},
			domain.FamilyLunch:     {Min: 200, Max: 300},
			domain.FamilyDinner:    {Min: 250, Max: 400},
		},
		ProfitMarginPct: Band{Min: 30, Max: 50},
	}
}
