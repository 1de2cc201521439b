package commands

import (
	"fmt"

	"github.com/de-tools/spot-atlas/pkg/adapters"
	"github.com/de-tools/spot-atlas/pkg/models/domain"
	"github.com/de-tools/spot-atlas/pkg/services/spot"
	"github.com/de-tools/spot-atlas/pkg/store/pricing"
	"github.com/de-tools/spot-atlas/pkg/store/tariff"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type CalculateDefaults struct {
	ExchangeRate float64
	PricesSource string
	PricesPath   string
	RateMap      string
}

type CalculateCmd struct {
	tariff       string
	consumption  float64
	year         int
	exchangeRate float64
	monthly      bool
	fixedPrice   float64
	pricesSource string
	pricesPath   string
	rate         string
	distributor  string
	rateMap      string

	defaults CalculateDefaults
	registry pricing.Registry
	tariffs  tariff.Store
	reporter ReporterFactory
}

func NewCalculateCmd(
	registry pricing.Registry,
	tariffs tariff.Store,
	defaults CalculateDefaults,
	reporter ReporterFactory,
) *cobra.Command {
	cc := &CalculateCmd{
		registry: registry,
		tariffs:  tariffs,
		defaults: defaults,
		reporter: reporter,
	}
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Estimate the yearly spot price for a tariff profile",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.tariff, "tariff", string(domain.DefaultTariff), "Tariff profile code (e.g., C02d)")
	cmd.Flags().Float64Var(&cc.consumption, "consumption", 0, "Yearly consumption in kWh")
	cmd.Flags().IntVar(&cc.year, "year", 0, "Year of the price series")
	cmd.Flags().Float64Var(&cc.exchangeRate, "exchange-rate", 0, "CZK per EUR (default from configuration)")
	cmd.Flags().BoolVar(&cc.monthly, "monthly", false, "Include the monthly breakdown")
	cmd.Flags().Float64Var(&cc.fixedPrice, "fixed-price", 0, "Fixed price in CZK/kWh to compare against")
	cmd.Flags().StringVar(&cc.pricesSource, "prices-source", defaults.PricesSource, "Price series source (static, ini, xlsx)")
	cmd.Flags().StringVar(&cc.pricesPath, "prices", defaults.PricesPath, "Path to the price series file")
	cmd.Flags().StringVar(&cc.rate, "rate", "", "Distribution rate (e.g., D02d) resolved to a tariff instead of --tariff")
	cmd.Flags().StringVar(&cc.distributor, "distributor", "", "Distributor used to resolve --rate")
	cmd.Flags().StringVar(&cc.rateMap, "rate-map", defaults.RateMap, "Path to the rate to TDD binding workbook")

	_ = cmd.MarkFlagRequired("consumption")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

func (cc *CalculateCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	tariffCode := cc.tariff
	if cc.rate != "" {
		mapping, err := resolveRate(cc.rateMap, cc.rate, cc.distributor)
		if err != nil {
			return err
		}
		tariffCode = mapping.TDD
	}
	code, err := domain.ParseTariffCode(tariffCode)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("exchange-rate") && cc.exchangeRate <= 0 {
		return fmt.Errorf("--exchange-rate must be greater than 0, got %v", cc.exchangeRate)
	}

	prices, err := cc.registry.Create(cc.pricesSource, cc.pricesPath)
	if err != nil {
		return fmt.Errorf("failed to load prices from %s source: %w", cc.pricesSource, err)
	}

	var opts []spot.Option
	if cc.defaults.ExchangeRate > 0 {
		opts = append(opts, spot.WithDefaultExchangeRate(cc.defaults.ExchangeRate))
	}
	calculator, err := spot.NewCalculator(cc.tariffs, prices, opts...)
	if err != nil {
		return fmt.Errorf("failed to create calculator: %w", err)
	}

	req := spot.Request{
		Input: domain.CalculationInput{
			TariffCode:        code,
			YearlyConsumption: cc.consumption,
			Year:              cc.year,
			ExchangeRate:      cc.exchangeRate,
		},
		IncludeMonthly: cc.monthly,
	}
	if cmd.Flags().Changed("fixed-price") {
		fixed := cc.fixedPrice
		req.FixedPrice = &fixed
	}

	calc, err := calculator.Run(ctx, req)
	if err != nil {
		return fmt.Errorf("calculation failed: %w", err)
	}

	logger.Debug().
		Str("tariff", string(code)).
		Int("year", cc.year).
		Float64("average_price", calc.Result.AveragePricePerUnit).
		Msg("calculation finished")

	return cc.reporter().Handle(adapters.MapCalculationDomainToReport(calc))
}
