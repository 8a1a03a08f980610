// Package advisor checks a computed breakdown against acceptable
// per-guest cost and margin bands and proposes corrective adjustments.
// Despite the product calling this "AI analysis", it is a fixed rule
// table.
package advisor

import "github.com/AjAce1234/Catering-Cost-Calculator/pkg/models/domain"

const (
	explanationReasonable = "Your calculation is within industry standards for catering costs."
	explanationOpening    = "We've identified some areas that could be adjusted to better align " +
		"with industry standards:"
	explanationNoGuests = "Guest count is zero, so per-guest costs cannot be evaluated " +
		"against industry standards."

	explanationLaborLow     = " Labor costs seem too low for quality service."
	explanationLaborHigh    = " Labor costs seem higher than typical market rates."
	explanationMaterialLow  = " Material costs may be too low for quality ingredients."
	explanationMaterialHigh = " Material costs are on the higher side compared to market rates."
	explanationMarginLow    = " Your profit margin is lower than industry average, which might not be sustainable."
	explanationMarginHigh   = " Your profit margin is quite high, which might price you out of competitive bids."
)

// Advisor evaluates breakdowns against a band table.
type Advisor interface {
	// Evaluate judges the breakdown's per-guest labor, per-guest
	// material (for the given meal type's family), and profit margin.
	// It is pure and side-effect free.
	Evaluate(b domain.CostBreakdown, mealType domain.MealType) domain.Advice
}

type advisor struct {
	bands Bands
}

func NewAdvisor(bands Bands) Advisor {
	return &advisor{bands: bands}
}

func (a *advisor) Evaluate(b domain.CostBreakdown, mealType domain.MealType) domain.Advice {
	// Zero guests would make every per-guest metric and correction
	// divide by zero; there is nothing sensible to suggest.
	if b.Guests <= 0 {
		return domain.Advice{
			Reasonable:  false,
			Explanation: explanationNoGuests,
		}
	}

	perGuestLabor := float64(b.LaborCost) / float64(b.Guests)
	perGuestMaterial := float64(b.MaterialCost) / float64(b.Guests)
	materialBand := a.bands.MaterialPerGuest[mealType.Family()]

	laborOK := a.bands.LaborPerGuest.Contains(perGuestLabor)
	materialOK := materialBand.Contains(perGuestMaterial)
	marginOK := a.bands.ProfitMarginPct.Contains(float64(b.ProfitMarginPct))

	var adjustments domain.Adjustments
	if !laborOK {
		if m, ok := correction(perGuestLabor, a.bands.LaborPerGuest); ok {
			adjustments.LaborCostMultiplier = &m
		}
	}
	if !materialOK {
		if m, ok := correction(perGuestMaterial, materialBand); ok {
			adjustments.MaterialCostMultiplier = &m
		}
	}
	if !marginOK {
		clamped := int(a.bands.ProfitMarginPct.Clamp(float64(b.ProfitMarginPct)))
		adjustments.ProfitMarginPct = &clamped
	}

	reasonable := laborOK && materialOK && marginOK

	explanation := explanationReasonable
	if !reasonable {
		explanation = explanationOpening
		if !laborOK {
			explanation += pick(perGuestLabor < a.bands.LaborPerGuest.Min,
				explanationLaborLow, explanationLaborHigh)
		}
		if !materialOK {
			explanation += pick(perGuestMaterial < materialBand.Min,
				explanationMaterialLow, explanationMaterialHigh)
		}
		if !marginOK {
			explanation += pick(float64(b.ProfitMarginPct) < a.bands.ProfitMarginPct.Min,
				explanationMarginLow, explanationMarginHigh)
		}
	}

	return domain.Advice{
		Reasonable:  reasonable,
		Adjustments: adjustments,
		Explanation: explanation,
	}
}

// correction returns the multiplier that moves an out-of-band metric
// to the nearest violated band edge. A zero metric has no finite
// correction, so none is offered.
func correction(v float64, band Band) (float64, bool) {
	if v == 0 {
		return 0, false
	}
	return band.Clamp(v) / v, true
}

func pick(cond bool, low, high string) string {
	if cond {
		return low
	}
	return high
}
