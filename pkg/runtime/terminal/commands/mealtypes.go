package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/models/domain"
)

func NewMealTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "meal-types",
		Short: "List the supported meal types",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range domain.MealTypes() {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t, t.Label())
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
