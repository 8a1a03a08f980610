package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/server"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/services/adjust"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/services/advisor"
	"github.com/AjAce1234/Catering-Cost-Calculator/pkg/services/pricing"
)

var ratesPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the catering estimate web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&ratesPath, "rates", "r", "",
		"Path to a rates file overriding the default pricing constants")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	rates := pricing.DefaultRates()
	if ratesPath != "" {
		loaded, err := pricing.LoadRates(ratesPath)
		if err != nil {
			return fmt.Errorf("failed to load rates: %w", err)
		}
		rates = loaded
		logger.Info().Msgf("Rates loaded from `%s`.", ratesPath)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Rates:      rates,
			Calculator: pricing.NewCalculator(rates),
			Advisor:    advisor.NewAdvisor(advisor.DefaultBands()),
			Applicator: adjust.NewApplicator(rates),
		},
	})

	return api.Start()
}
