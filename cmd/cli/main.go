package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/spot-atlas/pkg/runtime/terminal"
	"github.com/de-tools/spot-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/spot-atlas/pkg/services/config"
	"github.com/de-tools/spot-atlas/pkg/store/pricing"
	"github.com/de-tools/spot-atlas/pkg/store/tariff"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// .env is optional for the CLI
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()

	cfg, err := config.Load(os.Getenv("SPOT_ATLAS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli := terminal.NewCLI(terminal.Options{
		Registry: pricing.DefaultRegistry(),
		Tariffs:  tariff.NewDefaultStore(),
		Defaults: commands.CalculateDefaults{
			ExchangeRate: cfg.Calculation.ExchangeRate,
			PricesSource: cfg.Prices.Source,
			PricesPath:   cfg.Prices.Path,
			RateMap:      cfg.Tariffs.RateMap,
		},
		Output: os.Stdout,
	})

	if err := cli.ExecuteContext(logger.WithContext(context.Background())); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
