package adapters

import (
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/models/api"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/models/domain"
)

func MapMealSpecApiToDomain(spec api.MealSpec) (domain.MealSpec, error) {
	mealType, err := domain.ParseMealType(spec.Type)
	if err != nil {
		return domain.MealSpec{}, err
	}
	return domain.MealSpec{
		Type:     mealType,
		Guests:   spec.Guests,
		Counters: spec.Counters,
		Items:    spec.Items,
	}, nil
}

func MapCostBreakdownDomainToApi(b domain.CostBreakdown) api.CostBreakdown {
	out := api.CostBreakdown{
		Guests:          b.Guests,
		LaborCost:       b.LaborCost,
		MaterialCost:    b.MaterialCost,
		BaseCost:        b.BaseCost,
		ProfitMarginPct: b.ProfitMarginPct,
		Profit:          b.Profit,
		TotalCost:       b.TotalCost,
		PerPersonCost:   b.PerPersonCost,
		MiscExpenses:    b.MiscExpenses,
		GrandTotal:      b.GrandTotal,
	}
	if len(b.Meals) > 0 {
		out.TotalGuests = b.Guests
		out.MealCosts = make([]api.MealCost, 0, len(b.Meals))
		for _, meal := range b.Meals {
			out.MealCosts = append(out.MealCosts, api.MealCost{
				Type:         string(meal.Type),
				Cost:         meal.Cost,
				IsMain:       meal.IsMain,
				LaborCost:    meal.LaborCost,
				MaterialCost: meal.MaterialCost,
			})
		}
	}
	return out
}

func MapCostBreakdownApiToDomain(b api.CostBreakdown) (domain.CostBreakdown, error) {
	guests := b.Guests
	if guests == 0 {
		guests = b.TotalGuests
	}
	out := domain.CostBreakdown{
		Guests:          guests,
		LaborCost:       b.LaborCost,
		MaterialCost:    b.MaterialCost,
		BaseCost:        b.BaseCost,
		ProfitMarginPct: b.ProfitMarginPct,
		Profit:          b.Profit,
		TotalCost:       b.TotalCost,
		PerPersonCost:   b.PerPersonCost,
		MiscExpenses:    b.MiscExpenses,
		GrandTotal:      b.GrandTotal,
	}
	for _, meal := range b.MealCosts {
		mealType, err := domain.ParseMealType(meal.Type)
		if err != nil {
			return domain.CostBreakdown{}, err
		}
		out.Meals = append(out.Meals, domain.MealCost{
			Type:         mealType,
			Cost:         meal.Cost,
			IsMain:       meal.IsMain,
			LaborCost:    meal.LaborCost,
			MaterialCost: meal.MaterialCost,
		})
	}
	return out, nil
}

func MapAdjustmentsApiToDomain(a api.Adjustments) domain.Adjustments {
	return domain.Adjustments{
		LaborCostMultiplier:    a.LaborCostMultiplier,
		MaterialCostMultiplier: a.MaterialCostMultiplier,
		ProfitMarginPct:        a.ProfitMarginPct,
	}
}

func MapAdviceDomainToApi(a domain.Advice) api.Advice {
	return api.Advice{
		IsReasonable: a.Reasonable,
		SuggestedAdjustments: api.Adjustments{
			LaborCostMultiplier:    a.Adjustments.LaborCostMultiplier,
			MaterialCostMultiplier: a.Adjustments.MaterialCostMultiplier,
			ProfitMarginPct:        a.Adjustments.ProfitMarginPct,
		},
		Explanation: a.Explanation,
	}
}
