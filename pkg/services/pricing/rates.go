package pricing

// Rates holds every pricing constant the calculator derives costs
// from. Values are currency units (whole rupees) unless noted.
type Rates struct {
	// LaborPerGuest is the flat labor rate charged per guest,
	// independent of meal type and counter count.
	LaborPerGuest int `mapstructure:"labor_per_guest"`
	// BreakfastMaterial is the per-guest material rate for the
	// breakfast family.
	BreakfastMaterial int `mapstructure:"breakfast_material"`
	// BreakfastItemCharge is the per-guest surcharge for each
	// breakfast item above BaselineItems.
	BreakfastItemCharge int `mapstructure:"breakfast_item_charge"`
	// BaselineItems is the number of breakfast items included in the
	// base material rate.
	BaselineItems int `mapstructure:"baseline_items"`
	// LunchMaterial and DinnerMaterial are per-guest material rates.
	LunchMaterial  int `mapstructure:"lunch_material"`
	DinnerMaterial int `mapstructure:"dinner_material"`
	// SecondaryLaborFactor scales the labor cost of non-main meals in
	// a multi-meal event. Next-day breakfasts are exempt.
	SecondaryLaborFactor float64 `mapstructure:"secondary_labor_factor"`
	// MiscPct is the contingency share added on top of the total cost.
	MiscPct float64 `mapstructure:"misc_pct"`
	// DefaultMarginPct is the profit margin used when the caller does
	// not supply one.
	DefaultMarginPct int `mapstructure:"default_margin_pct"`
}

// DefaultRates returns the standard industry rates.
func DefaultRates() Rates {
	return Rates{
		LaborPerGuest:        100,
		BreakfastMaterial:    70,
		BreakfastItemCharge:  10,
		BaselineItems:        5,
		LunchMaterial:        250,
		DinnerMaterial:       300,
		SecondaryLaborFactor: 0.7,
		MiscPct:              0.1,
		DefaultMarginPct:     40,
	}
}
