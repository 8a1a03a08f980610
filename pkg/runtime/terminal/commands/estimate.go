package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/models/domain"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/runtime/terminal/export"
)

type EstimateCmd struct {
	mealType string
	guests   int
	counters int
	items    int
	margin   int
	advise   bool
	apply    bool

	services Services
	reporter *export.Reporter
}

func NewEstimateCmd(services Services, reporter *export.Reporter) *cobra.Command {
	ec := &EstimateCmd{services: services, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the cost of a single meal occasion",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.mealType, "meal", "", "Meal type (breakfast, lunch, dinner, nextDayBreakfast)")
	cmd.Flags().IntVar(&ec.guests, "guests", 0, "Number of guests")
	cmd.Flags().IntVar(&ec.counters, "counters", 1, "Number of service counters")
	cmd.Flags().IntVar(&ec.items, "items", 0, "Breakfast item count (breakfast family only)")
	cmd.Flags().IntVar(&ec.margin, "margin", services.Rates.DefaultMarginPct, "Profit margin percentage")
	cmd.Flags().BoolVar(&ec.advise, "advise", false, "Check the estimate against industry bands")
	cmd.Flags().BoolVar(&ec.apply, "apply", false, "Apply suggested adjustments and print the revised estimate")

	_ = cmd.MarkFlagRequired("meal")
	_ = cmd.MarkFlagRequired("guests")

	return cmd
}

func (ec *EstimateCmd) run(cmd *cobra.Command, args []string) error {
	mealType, err := domain.ParseMealType(ec.mealType)
	if err != nil {
		return err
	}
	if err := validateCounts(ec.guests, ec.counters, ec.items); err != nil {
		return err
	}
	if err := validateMargin(ec.margin); err != nil {
		return err
	}

	spec := domain.MealSpec{
		Type:     mealType,
		Guests:   ec.guests,
		Counters: ec.counters,
		Items:    ec.items,
	}
	breakdown := ec.services.Calculator.EstimateMeal(spec, ec.margin)

	if err := ec.reporter.Handle(fmt.Sprintf("%s Estimate", mealType.Label()), breakdown); err != nil {
		return err
	}

	if !ec.advise && !ec.apply {
		return nil
	}

	return reportAdvice(ec.services, ec.reporter, breakdown, mealType, ec.apply)
}

func reportAdvice(
	services Services,
	reporter *export.Reporter,
	breakdown domain.CostBreakdown,
	mealType domain.MealType,
	apply bool,
) error {
	advice := services.Advisor.Evaluate(breakdown, mealType)
	if err := reporter.HandleAdvice(advice); err != nil {
		return err
	}

	if !apply || advice.Adjustments.Empty() {
		return nil
	}

	adjusted := services.Applicator.Apply(breakdown, advice.Adjustments)
	return reporter.Handle("Adjusted Estimate", adjusted)
}

func validateCounts(guests, counters, items int) error {
	if guests < 1 {
		return fmt.Errorf("guest count must be at least 1, got %d", guests)
	}
	if counters < 1 {
		return fmt.Errorf("counter count must be at least 1, got %d", counters)
	}
	if items < 0 {
		return fmt.Errorf("item count must not be negative, got %d", items)
	}
	return nil
}

func validateMargin(margin int) error {
	if margin < 0 || margin > 100 {
		return fmt.Errorf("profit margin must be between 0 and 100, got %d", margin)
	}
	return nil
}
