// Package adjust re-derives a breakdown after advisor adjustments are
// applied to it.
package adjust

import (
	"slices"

	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/models/domain"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/services/pricing"
)

// Applicator applies suggested adjustments to a breakdown and
// recomputes the whole dependent chain, misc expenses and grand total
// included, so the result is indistinguishable from a fresh
// calculation of the adjusted labor/material/margin triple.
type Applicator interface {
	// Apply returns a new breakdown; the original is never mutated.
	// Multipliers equal to 1 and an unchanged margin are no-ops.
	Apply(original domain.CostBreakdown, adjustments domain.Adjustments) domain.CostBreakdown
}

type applicator struct {
	rates pricing.Rates
}

func NewApplicator(rates pricing.Rates) Applicator {
	return &applicator{rates: rates}
}

func (a *applicator) Apply(
	original domain.CostBreakdown,
	adjustments domain.Adjustments,
) domain.CostBreakdown {
	labor := original.LaborCost
	material := original.MaterialCost
	marginPct := original.ProfitMarginPct
	meals := slices.Clone(original.Meals)

	if m := adjustments.LaborCostMultiplier; m != nil && *m != 1 {
		labor = pricing.Scale(labor, *m)
		for i, meal := range meals {
			newLabor := pricing.Scale(meal.LaborCost, *m)
			meals[i].Cost = meal.Cost - meal.LaborCost + newLabor
			meals[i].LaborCost = newLabor
		}
	}

	if m := adjustments.MaterialCostMultiplier; m != nil && *m != 1 {
		material = pricing.Scale(material, *m)
		for i, meal := range meals {
			newMaterial := pricing.Scale(meal.MaterialCost, *m)
			meals[i].Cost = meals[i].Cost - meal.MaterialCost + newMaterial
			meals[i].MaterialCost = newMaterial
		}
	}

	if p := adjustments.ProfitMarginPct; p != nil && *p != marginPct {
		marginPct = *p
	}

	adjusted := pricing.Derive(labor, material, marginPct, original.Guests, a.rates.MiscPct)
	adjusted.Meals = meals
	return adjusted
}
