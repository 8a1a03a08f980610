package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/runtime/terminal/commands"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/runtime/terminal/export"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/services/adjust"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/services/advisor"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/services/pricing"
)

// CLI represents the command-line interface
type CLI struct {
	services commands.Services
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Rates  *pricing.Rates
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	rates := pricing.DefaultRates()
	if opts.Rates != nil {
		rates = *opts.Rates
	}

	cli := &CLI{
		services: commands.Services{
			Rates:      rates,
			Calculator: pricing.NewCalculator(rates),
			Advisor:    advisor.NewAdvisor(advisor.DefaultBands()),
			Applicator: adjust.NewApplicator(rates),
		},
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catering",
		Short: "Catering event pricing calculator",
	}

	cmd.AddCommand(commands.NewEstimateCmd(cli.services, cli.reporter))
	cmd.AddCommand(commands.NewEventCmd(cli.services, cli.reporter))
	cmd.AddCommand(commands.NewMealTypesCmd())

	return cmd
}
