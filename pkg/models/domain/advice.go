package domain

// Adjustments holds the corrective actions the advisor proposes.
// The multipliers are ratios applied to the existing cost components;
// ProfitMarginPct is an absolute replacement percentage. A nil field
// means the dimension needs no correction (or none is computable).
type Adjustments struct {
	LaborCostMultiplier    *float64
	MaterialCostMultiplier *float64
	ProfitMarginPct        *int
}

func (a Adjustments) Empty() bool {
	return a.LaborCostMultiplier == nil &&
		a.MaterialCostMultiplier == nil &&
		a.ProfitMarginPct == nil
}

// Advice is the advisor's verdict on a breakdown. Reasonable is true
// only when labor per guest, material per guest, and the profit margin
// are all inside their bands.
type Advice struct {
	Reasonable  bool
	Adjustments Adjustments
	Explanation string
}
