package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/models/domain"
)

// Derive builds the full dependent chain of a breakdown from its two
// cost components, the profit margin, and the per-person denominator.
// Every surfaced figure is the rounded value of its exact arithmetic
// definition; nothing is re-summed from already-rounded parts except
// where the contract says so (total = base + profit, grand = total +
// misc).
func Derive(laborCost, materialCost, marginPct, guests int, miscPct float64) domain.CostBreakdown {
	baseCost := laborCost + materialCost

	profit := decimal.NewFromInt(int64(baseCost)).
		Mul(decimal.NewFromInt(int64(marginPct))).
		Div(decimal.NewFromInt(100)).
		Round(0).IntPart()

	totalCost := int64(baseCost) + profit

	var perPersonCost int64
	if guests > 0 {
		perPersonCost = decimal.NewFromInt(totalCost).
			Div(decimal.NewFromInt(int64(guests))).
			Round(0).IntPart()
	}

	miscExpenses := decimal.NewFromInt(totalCost).
		Mul(decimal.NewFromFloat(miscPct)).
		Round(0).IntPart()

	return domain.CostBreakdown{
		Guests:          guests,
		LaborCost:       laborCost,
		MaterialCost:    materialCost,
		BaseCost:        baseCost,
		ProfitMarginPct: marginPct,
		Profit:          int(profit),
		TotalCost:       int(totalCost),
		PerPersonCost:   int(perPersonCost),
		MiscExpenses:    int(miscExpenses),
		GrandTotal:      int(totalCost + miscExpenses),
	}
}

// Scale multiplies a cost by a ratio and rounds to the nearest whole
// currency unit.
func Scale(cost int, factor float64) int {
	return int(decimal.NewFromInt(int64(cost)).
		Mul(decimal.NewFromFloat(factor)).
		Round(0).IntPart())
}
