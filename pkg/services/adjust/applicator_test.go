package adjust

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/models/domain"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/services/advisor"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/services/pricing"
)

func TestApply_LaborMultiplier(t *testing.T) {
	app := NewApplicator(pricing.DefaultRates())
	calc := pricing.NewCalculator(pricing.DefaultRates())

	original := calc.EstimateMeal(domain.MealSpec{
		Type: domain.MealBreakfast, Guests: 50, Counters: 2, Items: 5,
	}, 40)
	// Shrink labor first so the advisor's 2.0 correction has something
	// to undo: 2000 labor is 40 per guest.
	original = pricing.Derive(2000, original.MaterialCost, 40, 50, 0.1)

	m := 2.0
	adjusted := app.Apply(original, domain.Adjustments{LaborCostMultiplier: &m})

	assert.Equal(t, 4000, adjusted.LaborCost)
	assert.Equal(t, original.MaterialCost, adjusted.MaterialCost)
	assert.Equal(t, adjusted.LaborCost+adjusted.MaterialCost, adjusted.BaseCost)
	assert.Equal(t, adjusted.BaseCost+adjusted.Profit, adjusted.TotalCost)
	assert.Equal(t, adjusted.TotalCost+adjusted.MiscExpenses, adjusted.GrandTotal)
}

func TestApply_FullChainMatchesFreshDerivation(t *testing.T) {
	rates := pricing.DefaultRates()
	app := NewApplicator(rates)
	calc := pricing.NewCalculator(rates)

	original := calc.EstimateMeal(domain.MealSpec{
		Type: domain.MealDinner, Guests: 80, Counters: 3,
	}, 40)

	m := 0.9
	margin := 35
	adjusted := app.Apply(original, domain.Adjustments{
		MaterialCostMultiplier: &m,
		ProfitMarginPct:        &margin,
	})

	fresh := pricing.Derive(adjusted.LaborCost, adjusted.MaterialCost, margin, 80, rates.MiscPct)
	assert.Equal(t, fresh, adjusted)
}

func TestApply_RescalesLineItems(t *testing.T) {
	rates := pricing.DefaultRates()
	app := NewApplicator(rates)
	calc := pricing.NewCalculator(rates)

	original, err := calc.EstimateEvent([]domain.MealSpec{
		{Type: domain.MealLunch, Guests: 75, Counters: 3},
		{Type: domain.MealBreakfast, Guests: 50, Counters: 2, Items: 5},
	}, domain.MealLunch, 40)
	require.NoError(t, err)

	m := 1.2
	adjusted := app.Apply(original, domain.Adjustments{LaborCostMultiplier: &m})

	require.Len(t, adjusted.Meals, 2)
	for i, meal := range adjusted.Meals {
		wantLabor := pricing.Scale(original.Meals[i].LaborCost, m)
		assert.Equal(t, wantLabor, meal.LaborCost)
		// Material contribution of each line is untouched.
		assert.Equal(t, original.Meals[i].MaterialCost, meal.MaterialCost)
		assert.Equal(t, original.Meals[i].Cost-original.Meals[i].LaborCost+wantLabor, meal.Cost)
	}
}

func TestApply_MarginReplacedNotMultiplied(t *testing.T) {
	app := NewApplicator(pricing.DefaultRates())

	original := pricing.Derive(5000, 3500, 60, 50, 0.1)
	margin := 50
	adjusted := app.Apply(original, domain.Adjustments{ProfitMarginPct: &margin})

	assert.Equal(t, 50, adjusted.ProfitMarginPct)
	assert.Equal(t, 4250, adjusted.Profit)
}

func TestApply_IdentityAdjustmentsAreNoOp(t *testing.T) {
	rates := pricing.DefaultRates()
	app := NewApplicator(rates)
	calc := pricing.NewCalculator(rates)

	original, err := calc.EstimateEvent([]domain.MealSpec{
		{Type: domain.MealDinner, Guests: 100, Counters: 4},
		{Type: domain.MealNextDayBreakfast, Guests: 60, Counters: 2, Items: 6},
	}, domain.MealDinner, 40)
	require.NoError(t, err)

	one := 1.0
	sameMargin := original.ProfitMarginPct
	adjusted := app.Apply(original, domain.Adjustments{
		LaborCostMultiplier:    &one,
		MaterialCostMultiplier: &one,
		ProfitMarginPct:        &sameMargin,
	})

	assert.Equal(t, original, adjusted)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	rates := pricing.DefaultRates()
	app := NewApplicator(rates)
	calc := pricing.NewCalculator(rates)

	original, err := calc.EstimateEvent([]domain.MealSpec{
		{Type: domain.MealLunch, Guests: 75, Counters: 3},
		{Type: domain.MealBreakfast, Guests: 50, Counters: 2},
	}, domain.MealLunch, 40)
	require.NoError(t, err)

	snapshot := original
	snapshotMeals := append([]domain.MealCost(nil), original.Meals...)

	m := 1.5
	margin := 30
	_ = app.Apply(original, domain.Adjustments{
		LaborCostMultiplier:    &m,
		MaterialCostMultiplier: &m,
		ProfitMarginPct:        &margin,
	})

	assert.Equal(t, snapshot.LaborCost, original.LaborCost)
	assert.Equal(t, snapshot.MaterialCost, original.MaterialCost)
	assert.Equal(t, snapshotMeals, original.Meals)
}

func TestAdvisorRoundTrip_ReasonableBreakdownIsUnchanged(t *testing.T) {
	rates := pricing.DefaultRates()
	calc := pricing.NewCalculator(rates)
	adv := advisor.NewAdvisor(advisor.DefaultBands())
	app := NewApplicator(rates)

	original := calc.EstimateMeal(domain.MealSpec{
		Type: domain.MealBreakfast, Guests: 50, Counters: 2, Items: 5,
	}, 40)

	advice := adv.Evaluate(original, domain.MealBreakfast)
	require.True(t, advice.Reasonable)
	require.True(t, advice.Adjustments.Empty())

	adjusted := app.Apply(original, advice.Adjustments)
	assert.Equal(t, original, adjusted)
}

func TestAdvisorRoundTrip_CorrectionLandsInBand(t *testing.T) {
	rates := pricing.DefaultRates()
	adv := advisor.NewAdvisor(advisor.DefaultBands())
	app := NewApplicator(rates)

	// 40 per guest labor, below the 80 floor.
	original := pricing.Derive(2000, 3500, 40, 50, rates.MiscPct)

	advice := adv.Evaluate(original, domain.MealBreakfast)
	require.False(t, advice.Reasonable)
	require.NotNil(t, advice.Adjustments.LaborCostMultiplier)

	adjusted := app.Apply(original, advice.Adjustments)
	assert.Equal(t, 4000, adjusted.LaborCost)

	again := adv.Evaluate(adjusted, domain.MealBreakfast)
	assert.True(t, again.Reasonable)
}
