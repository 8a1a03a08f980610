package domain

// MealCost is one per-meal line item of a multi-meal breakdown.
// Cost is always LaborCost + MaterialCost for the line.
type MealCost struct {
	Type         MealType
	Cost         int
	IsMain       bool
	LaborCost    int
	MaterialCost int
}

// CostBreakdown is the fully derived set of cost figures for one
// estimation. Every figure downstream of LaborCost/MaterialCost is a
// function of those two plus ProfitMarginPct and Guests; they are
// never mutated independently, only re-derived.
//
// Guests is the per-person denominator: a single meal's own guest
// count, or the maximum guest count across a multi-meal event. Meals
// is nil for single-meal breakdowns.
type CostBreakdown struct {
	Guests          int
	LaborCost       int
	MaterialCost    int
	BaseCost        int
	ProfitMarginPct int
	Profit          int
	TotalCost       int
	PerPersonCost   int
	MiscExpenses    int
	GrandTotal      int
	Meals           []MealCost
}
