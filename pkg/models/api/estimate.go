package api

type MealSpec struct {
	Type     string `json:"type"`
	Guests   int    `json:"guests"`
	Counters int    `json:"counters"`
	Items    int    `json:"items,omitempty"`
}

type MealEstimateRequest struct {
	Meal            MealSpec `json:"meal"`
	ProfitMarginPct *int     `json:"profitMarginPercent,omitempty"`
}

type EventEstimateRequest struct {
	Meals           []MealSpec `json:"meals"`
	MainMealType    string     `json:"mainMealType"`
	ProfitMarginPct *int       `json:"profitMarginPercent,omitempty"`
}

type MealCost struct {
	Type         string `json:"type"`
	Cost         int    `json:"cost"`
	IsMain       bool   `json:"isMain"`
	LaborCost    int    `json:"laborCost"`
	MaterialCost int    `json:"materialCost"`
}

type CostBreakdown struct {
	Guests          int        `json:"guests"`
	LaborCost       int        `json:"laborCost"`
	MaterialCost    int        `json:"materialCost"`
	BaseCost        int        `json:"baseCost"`
	ProfitMarginPct int        `json:"profitMarginPercent"`
	Profit          int        `json:"profit"`
	TotalCost       int        `json:"totalCost"`
	PerPersonCost   int        `json:"perPersonCost"`
	MiscExpenses    int        `json:"miscExpenses"`
	GrandTotal      int        `json:"grandTotal"`
	MealCosts       []MealCost `json:"mealCosts,omitempty"`
	TotalGuests     int        `json:"totalGuests,omitempty"`
}

type AnalyzeRequest struct {
	MealType  string        `json:"mealType"`
	Breakdown CostBreakdown `json:"breakdown"`
}

type Adjustments struct {
	LaborCostMultiplier    *float64 `json:"laborCostMultiplier,omitempty"`
	MaterialCostMultiplier *float64 `json:"materialCostMultiplier,omitempty"`
	ProfitMarginPct        *int     `json:"profitMargin,omitempty"`
}

type Advice struct {
	IsReasonable         bool        `json:"isReasonable"`
	SuggestedAdjustments Adjustments `json:"suggestedAdjustments"`
	Explanation          string      `json:"explanation"`
}

type AdjustRequest struct {
	Breakdown   CostBreakdown `json:"breakdown"`
	Adjustments Adjustments   `json:"adjustments"`
}

type MealTypeInfo struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}
