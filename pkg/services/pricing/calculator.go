package pricing

import (
	"errors"

	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/models/domain"
)

// ErrNoMealsSelected is returned by EstimateEvent for an empty meal list.
var ErrNoMealsSelected = errors.New("no meals selected")

// ErrMainMealNotSelected is returned by EstimateEvent when the
// designated main meal does not appear among the selected meals.
var ErrMainMealNotSelected = errors.New("main meal is not among the selected meals")

// Calculator prices meal occasions. Both entry points trust their
// inputs: range validation (guests >= 1, margin in [0,100]) is the
// caller's responsibility.
type Calculator interface {
	// EstimateMeal prices a single meal occasion.
	EstimateMeal(spec domain.MealSpec, marginPct int) domain.CostBreakdown
	// EstimateEvent prices a multi-meal event. The meal matching
	// mainMeal is charged full labor; every other meal gets the
	// secondary labor discount unless it is a next-day breakfast.
	EstimateEvent(specs []domain.MealSpec, mainMeal domain.MealType, marginPct int) (domain.CostBreakdown, error)
}

type calculator struct {
	rates Rates
}

func NewCalculator(rates Rates) Calculator {
	return &calculator{rates: rates}
}

// mealComponents derives the undiscounted labor and material cost of
// one meal occasion.
func (c *calculator) mealComponents(spec domain.MealSpec) (labor, material int) {
	labor = spec.Guests * c.rates.LaborPerGuest

	switch spec.Type.Family() {
	case domain.FamilyBreakfast:
		material = spec.Guests * c.rates.BreakfastMaterial
		items := spec.Items
		if items == 0 {
			items = c.rates.BaselineItems
		}
		if items > c.rates.BaselineItems {
			material += spec.Guests * (items - c.rates.BaselineItems) * c.rates.BreakfastItemCharge
		}
	case domain.FamilyLunch:
		material = spec.Guests * c.rates.LunchMaterial
	case domain.FamilyDinner:
		material = spec.Guests * c.rates.DinnerMaterial
	}

	return labor, material
}

func (c *calculator) EstimateMeal(spec domain.MealSpec, marginPct int) domain.CostBreakdown {
	labor, material := c.mealComponents(spec)
	return Derive(labor, material, marginPct, spec.Guests, c.rates.MiscPct)
}

func (c *calculator) EstimateEvent(
	specs []domain.MealSpec,
	mainMeal domain.MealType,
	marginPct int,
) (domain.CostBreakdown, error) {
	if len(specs) == 0 {
		return domain.CostBreakdown{}, ErrNoMealsSelected
	}

	var main *domain.MealSpec
	totalGuests := 0
	for i := range specs {
		if specs[i].Guests > totalGuests {
			totalGuests = specs[i].Guests
		}
		if main == nil && specs[i].Type == mainMeal {
			main = &specs[i]
		}
	}
	if main == nil {
		return domain.CostBreakdown{}, ErrMainMealNotSelected
	}

	var totalLabor, totalMaterial int
	meals := make([]domain.MealCost, 0, len(specs))

	labor, material := c.mealComponents(*main)
	totalLabor += labor
	totalMaterial += material
	meals = append(meals, domain.MealCost{
		Type:         main.Type,
		Cost:         labor + material,
		IsMain:       true,
		LaborCost:    labor,
		MaterialCost: material,
	})

	for _, spec := range specs {
		if spec.Type == mainMeal {
			continue
		}

		labor, material := c.mealComponents(spec)
		// Same-day secondary service shares setup with the main meal,
		// so its labor is discounted. A next-day breakfast is a
		// separate day of service and keeps full labor.
		if spec.Type != domain.MealNextDayBreakfast {
			labor = Scale(labor, c.rates.SecondaryLaborFactor)
		}

		totalLabor += labor
		totalMaterial += material
		meals = append(meals, domain.MealCost{
			Type:         spec.Type,
			Cost:         labor + material,
			IsMain:       false,
			LaborCost:    labor,
			MaterialCost: material,
		})
	}

	breakdown := Derive(totalLabor, totalMaterial, marginPct, totalGuests, c.rates.MiscPct)
	breakdown.Meals = meals
	return breakdown, nil
}
