package commands

import (
	"errors"
	"fmt"

	"github.com/de-tools/spot-atlas/pkg/adapters"
	"github.com/de-tools/spot-atlas/pkg/store/tariff"
	"github.com/spf13/cobra"
)

type RateCmd struct {
	rate        string
	distributor string
	rateMap     string
	reporter    ReporterFactory
}

func NewRateCmd(rateMap string, reporter ReporterFactory) *cobra.Command {
	rc := &RateCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Resolve a distribution rate to its TDD profile",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.rate, "rate", "", "Distribution rate (e.g., D02d)")
	cmd.Flags().StringVar(&rc.distributor, "distributor", "", "Distributor, matched before the rate alone")
	cmd.Flags().StringVar(&rc.rateMap, "rate-map", rateMap, "Path to the rate to TDD binding workbook")

	_ = cmd.MarkFlagRequired("rate")

	return cmd
}

func (rc *RateCmd) run(_ *cobra.Command, _ []string) error {
	mapping, err := resolveRate(rc.rateMap, rc.rate, rc.distributor)
	if err != nil {
		return err
	}
	return rc.reporter().Handle(adapters.MapRateMappingToReport(mapping))
}

func resolveRate(path, rate, distributor string) (tariff.RateMapping, error) {
	if path == "" {
		return tariff.RateMapping{}, errors.New("--rate-map is required to resolve a rate")
	}
	m, err := tariff.LoadRateMap(path)
	if err != nil {
		return tariff.RateMapping{}, fmt.Errorf("failed to load rate map: %w", err)
	}
	mapping, ok := m.Resolve(rate, distributor)
	if !ok {
		return tariff.RateMapping{}, fmt.Errorf("rate %q has no TDD binding", rate)
	}
	return mapping, nil
}
