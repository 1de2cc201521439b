package main

import (
	"fmt"
	"os"

	"github.com/de-tools/spot-atlas/pkg/server"
	"github.com/de-tools/spot-atlas/pkg/services/config"
	"github.com/de-tools/spot-atlas/pkg/services/spot"
	"github.com/de-tools/spot-atlas/pkg/store/pricing"
	"github.com/de-tools/spot-atlas/pkg/store/tariff"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Spot Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a YAML/JSON/TOML config file (defaults and SPOT_ATLAS_* variables apply without it)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	if err := godotenv.Load(); err != nil {
		logger.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	prices, err := pricing.DefaultRegistry().Create(cfg.Prices.Source, cfg.Prices.Path)
	if err != nil {
		return fmt.Errorf("failed to create price store: %w", err)
	}
	tariffs := tariff.NewDefaultStore()

	calculator, err := spot.NewCalculator(tariffs, prices,
		spot.WithDefaultExchangeRate(cfg.Calculation.ExchangeRate))
	if err != nil {
		return fmt.Errorf("failed to create calculator: %w", err)
	}

	logger.Info().
		Str("source", cfg.Prices.Source).
		Ints("years", calculator.Years(ctx)).
		Float64("exchange_rate", cfg.Calculation.ExchangeRate).
		Msg("price series loaded")

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Server.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Calculator: calculator,
			Tariffs:    tariffs,
			Logger:     logger,
		},
	})

	return api.Start(ctx)
}
