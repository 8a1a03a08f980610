package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/models/domain"
)

func TestEstimateMeal_BreakfastBaseline(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	b := calc.EstimateMeal(domain.MealSpec{
		Type:     domain.MealBreakfast,
		Guests:   50,
		Counters: 2,
		Items:    5,
	}, 40)

	assert.Equal(t, 5000, b.LaborCost)
	assert.Equal(t, 3500, b.MaterialCost)
	assert.Equal(t, 8500, b.BaseCost)
	assert.Equal(t, 3400, b.Profit)
	assert.Equal(t, 11900, b.TotalCost)
	assert.Equal(t, 1190, b.MiscExpenses)
	assert.Equal(t, 13090, b.GrandTotal)
	assert.Equal(t, 238, b.PerPersonCost)
	assert.Nil(t, b.Meals)
}

func TestEstimateMeal_Lunch(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	b := calc.EstimateMeal(domain.MealSpec{
		Type:     domain.MealLunch,
		Guests:   100,
		Counters: 4,
	}, 40)

	assert.Equal(t, 10000, b.LaborCost)
	assert.Equal(t, 25000, b.MaterialCost)
	assert.Equal(t, 35000, b.BaseCost)
	assert.Equal(t, 14000, b.Profit)
	assert.Equal(t, 49000, b.TotalCost)
	assert.Equal(t, 490, b.PerPersonCost)
}

func TestEstimateMeal_BreakfastExtraItems(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	b := calc.EstimateMeal(domain.MealSpec{
		Type:     domain.MealBreakfast,
		Guests:   20,
		Counters: 1,
		Items:    8,
	}, 40)

	// 70*20 base material plus 10*20*3 for the three extra items.
	assert.Equal(t, 2000, b.MaterialCost)
}

func TestEstimateMeal_MaterialRates(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	tests := []struct {
		name         string
		spec         domain.MealSpec
		wantLabor    int
		wantMaterial int
	}{
		{
			name:         "breakfast items below baseline keep base rate",
			spec:         domain.MealSpec{Type: domain.MealBreakfast, Guests: 10, Counters: 1, Items: 3},
			wantLabor:    1000,
			wantMaterial: 700,
		},
		{
			name:         "breakfast zero items defaults to baseline",
			spec:         domain.MealSpec{Type: domain.MealBreakfast, Guests: 10, Counters: 1},
			wantLabor:    1000,
			wantMaterial: 700,
		},
		{
			name:         "next day breakfast prices like breakfast",
			spec:         domain.MealSpec{Type: domain.MealNextDayBreakfast, Guests: 10, Counters: 1, Items: 7},
			wantLabor:    1000,
			wantMaterial: 900,
		},
		{
			name:         "lunch",
			spec:         domain.MealSpec{Type: domain.MealLunch, Guests: 10, Counters: 1},
			wantLabor:    1000,
			wantMaterial: 2500,
		},
		{
			name:         "dinner",
			spec:         domain.MealSpec{Type: domain.MealDinner, Guests: 10, Counters: 1},
			wantLabor:    1000,
			wantMaterial: 3000,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := calc.EstimateMeal(tc.spec, 40)
			assert.Equal(t, tc.wantLabor, b.LaborCost)
			assert.Equal(t, tc.wantMaterial, b.MaterialCost)
		})
	}
}

func TestEstimateMeal_ChainInvariants(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	specs := []domain.MealSpec{
		{Type: domain.MealBreakfast, Guests: 1, Counters: 1, Items: 12},
		{Type: domain.MealLunch, Guests: 33, Counters: 2},
		{Type: domain.MealDinner, Guests: 250, Counters: 10},
		{Type: domain.MealNextDayBreakfast, Guests: 7, Counters: 1, Items: 6},
	}
	margins := []int{0, 17, 40, 100}

	for _, spec := range specs {
		for _, margin := range margins {
			b := calc.EstimateMeal(spec, margin)
			assert.Equal(t, b.LaborCost+b.MaterialCost, b.BaseCost)
			assert.Equal(t, b.BaseCost+b.Profit, b.TotalCost)
			assert.Equal(t, b.TotalCost+b.MiscExpenses, b.GrandTotal)
			assert.Equal(t, spec.Guests*100, b.LaborCost)
			assert.GreaterOrEqual(t, b.Profit, 0)
		}
	}
}

func TestEstimateMeal_CountersDoNotAffectCost(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	few := calc.EstimateMeal(domain.MealSpec{Type: domain.MealDinner, Guests: 40, Counters: 1}, 40)
	many := calc.EstimateMeal(domain.MealSpec{Type: domain.MealDinner, Guests: 40, Counters: 9}, 40)

	assert.Equal(t, few, many)
}

func TestEstimateEvent_MainAndSecondary(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	specs := []domain.MealSpec{
		{Type: domain.MealLunch, Guests: 75, Counters: 3},
		{Type: domain.MealBreakfast, Guests: 50, Counters: 2, Items: 5},
	}

	b, err := calc.EstimateEvent(specs, domain.MealLunch, 40)
	require.NoError(t, err)

	assert.Equal(t, 75, b.Guests)
	require.Len(t, b.Meals, 2)

	// Main meal first, full labor.
	assert.Equal(t, domain.MealLunch, b.Meals[0].Type)
	assert.True(t, b.Meals[0].IsMain)
	assert.Equal(t, 7500, b.Meals[0].LaborCost)
	assert.Equal(t, 18750, b.Meals[0].MaterialCost)

	// Secondary breakfast labor discounted to 70%.
	assert.Equal(t, domain.MealBreakfast, b.Meals[1].Type)
	assert.False(t, b.Meals[1].IsMain)
	assert.Equal(t, 3500, b.Meals[1].LaborCost)
	assert.Equal(t, 3500, b.Meals[1].MaterialCost)

	assert.Equal(t, 11000, b.LaborCost)
	assert.Equal(t, 22250, b.MaterialCost)
	assert.Equal(t, b.LaborCost+b.MaterialCost, b.BaseCost)
	assert.Equal(t, b.BaseCost+b.Profit, b.TotalCost)
	assert.Equal(t, b.TotalCost+b.MiscExpenses, b.GrandTotal)
}

func TestEstimateEvent_NextDayBreakfastKeepsFullLabor(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	specs := []domain.MealSpec{
		{Type: domain.MealDinner, Guests: 100, Counters: 4},
		{Type: domain.MealNextDayBreakfast, Guests: 60, Counters: 2, Items: 5},
	}

	b, err := calc.EstimateEvent(specs, domain.MealDinner, 40)
	require.NoError(t, err)
	require.Len(t, b.Meals, 2)

	assert.Equal(t, domain.MealNextDayBreakfast, b.Meals[1].Type)
	assert.Equal(t, 6000, b.Meals[1].LaborCost)
}

func TestEstimateEvent_TotalGuestsIsMaximum(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	specs := []domain.MealSpec{
		{Type: domain.MealBreakfast, Guests: 30, Counters: 1},
		{Type: domain.MealLunch, Guests: 120, Counters: 4},
		{Type: domain.MealDinner, Guests: 90, Counters: 3},
	}

	b, err := calc.EstimateEvent(specs, domain.MealLunch, 40)
	require.NoError(t, err)
	assert.Equal(t, 120, b.Guests)
}

func TestEstimateEvent_MainMealNotSelected(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	specs := []domain.MealSpec{
		{Type: domain.MealBreakfast, Guests: 30, Counters: 1},
	}

	_, err := calc.EstimateEvent(specs, domain.MealDinner, 40)
	assert.ErrorIs(t, err, ErrMainMealNotSelected)
}

func TestEstimateEvent_NoMeals(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	_, err := calc.EstimateEvent(nil, domain.MealLunch, 40)
	assert.ErrorIs(t, err, ErrNoMealsSelected)
}

func TestEstimateEvent_LineItemsSumToAggregates(t *testing.T) {
	calc := NewCalculator(DefaultRates())

	specs := []domain.MealSpec{
		{Type: domain.MealLunch, Guests: 80, Counters: 3},
		{Type: domain.MealBreakfast, Guests: 80, Counters: 2, Items: 7},
		{Type: domain.MealDinner, Guests: 65, Counters: 3},
		{Type: domain.MealNextDayBreakfast, Guests: 40, Counters: 1},
	}

	b, err := calc.EstimateEvent(specs, domain.MealDinner, 35)
	require.NoError(t, err)
	require.Len(t, b.Meals, 4)

	var labor, material int
	for _, meal := range b.Meals {
		assert.Equal(t, meal.LaborCost+meal.MaterialCost, meal.Cost)
		labor += meal.LaborCost
		material += meal.MaterialCost
	}
	assert.Equal(t, labor, b.LaborCost)
	assert.Equal(t, material, b.MaterialCost)
}

func TestDerive_ZeroGuests(t *testing.T) {
	b := Derive(1000, 2000, 40, 0, 0.1)
	assert.Equal(t, 0, b.PerPersonCost)
	assert.Equal(t, 3000, b.BaseCost)
	assert.Equal(t, 1200, b.Profit)
}

func TestScale_RoundsToNearestUnit(t *testing.T) {
	assert.Equal(t, 3500, Scale(5000, 0.7))
	assert.Equal(t, 67, Scale(95, 0.7))
	assert.Equal(t, 95, Scale(95, 1))
}
