package pricing

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadRates reads a rates file and returns the resulting rate table.
// Keys missing from the file keep their default values, so a file can
// override a single rate.
func LoadRates(path string) (Rates, error) {
	defaults := DefaultRates()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("labor_per_guest", defaults.LaborPerGuest)
	v.SetDefault("breakfast_material", defaults.BreakfastMaterial)
	v.SetDefault("breakfast_item_charge", defaults.BreakfastItemCharge)
	v.SetDefault("baseline_items", defaults.BaselineItems)
	v.SetDefault("lunch_material", defaults.LunchMaterial)
	v.SetDefault("dinner_material", defaults.DinnerMaterial)
	v.SetDefault("secondary_labor_factor", defaults.SecondaryLaborFactor)
	v.SetDefault("misc_pct", defaults.MiscPct)
	v.SetDefault("default_margin_pct", defaults.DefaultMarginPct)

	if err := v.ReadInConfig(); err != nil {
		return Rates{}, fmt.Errorf("failed to read rates file: %w", err)
	}

	var rates Rates
	if err := v.Unmarshal(&rates); err != nil {
		return Rates{}, fmt.Errorf("failed to parse rates file: %w", err)
	}
	return rates, nil
}
