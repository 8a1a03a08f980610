package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/models/domain"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/runtime/terminal/export"
)

type EventCmd struct {
	meals  []string
	main   string
	margin int
	advise bool
	apply  bool

	services Services
	reporter *export.Reporter
}

func NewEventCmd(services Services, reporter *export.Reporter) *cobra.Command {
	ec := &EventCmd{services: services, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "event",
		Short: "Estimate the cost of a multi-meal event",
		Long: "Estimate a multi-meal event. Each --meal takes the form " +
			"type=guests[:counters[:items]], e.g. --meal lunch=75 --meal breakfast=50:2:6. " +
			"The meal named by --main is charged full labor; the others get the " +
			"same-day labor discount (next-day breakfasts excepted).",
		RunE: ec.run,
	}

	cmd.Flags().StringArrayVar(&ec.meals, "meal", nil, "Meal spec: type=guests[:counters[:items]] (repeatable)")
	cmd.Flags().StringVar(&ec.main, "main", "", "Main meal type")
	cmd.Flags().IntVar(&ec.margin, "margin", services.Rates.DefaultMarginPct, "Profit margin percentage")
	cmd.Flags().BoolVar(&ec.advise, "advise", false, "Check the estimate against industry bands")
	cmd.Flags().BoolVar(&ec.apply, "apply", false, "Apply suggested adjustments and print the revised estimate")

	_ = cmd.MarkFlagRequired("meal")
	_ = cmd.MarkFlagRequired("main")

	return cmd
}

func (ec *EventCmd) run(cmd *cobra.Command, args []string) error {
	mainMeal, err := domain.ParseMealType(ec.main)
	if err != nil {
		return err
	}
	if err := validateMargin(ec.margin); err != nil {
		return err
	}

	specs := make([]domain.MealSpec, 0, len(ec.meals))
	for _, raw := range ec.meals {
		spec, err := parseMealFlag(raw)
		if err != nil {
			return err
		}
		specs = append(specs, spec)
	}

	breakdown, err := ec.services.Calculator.EstimateEvent(specs, mainMeal, ec.margin)
	if err != nil {
		return err
	}

	if err := ec.reporter.Handle("Event Estimate", breakdown); err != nil {
		return err
	}

	if !ec.advise && !ec.apply {
		return nil
	}

	return reportAdvice(ec.services, ec.reporter, breakdown, mainMeal, ec.apply)
}

// parseMealFlag parses "type=guests[:counters[:items]]".
func parseMealFlag(raw string) (domain.MealSpec, error) {
	name, counts, found := strings.Cut(raw, "=")
	if !found {
		return domain.MealSpec{}, fmt.Errorf("invalid meal spec %q: expected type=guests[:counters[:items]]", raw)
	}

	mealType, err := domain.ParseMealType(name)
	if err != nil {
		return domain.MealSpec{}, err
	}

	parts := strings.Split(counts, ":")
	if len(parts) > 3 {
		return domain.MealSpec{}, fmt.Errorf("invalid meal spec %q: too many count fields", raw)
	}

	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return domain.MealSpec{}, fmt.Errorf("invalid meal spec %q: %w", raw, err)
		}
		nums[i] = n
	}

	spec := domain.MealSpec{Type: mealType, Guests: nums[0], Counters: 1}
	if len(nums) > 1 {
		spec.Counters = nums[1]
	}
	if len(nums) > 2 {
		spec.Items = nums[2]
	}

	if err := validateCounts(spec.Guests, spec.Counters, spec.Items); err != nil {
		return domain.MealSpec{}, fmt.Errorf("invalid meal spec %q: %w", raw, err)
	}
	return spec, nil
}
