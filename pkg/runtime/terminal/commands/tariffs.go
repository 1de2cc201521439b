package commands

import (
	"github.com/de-tools/spot-atlas/pkg/adapters"
	"github.com/de-tools/spot-atlas/pkg/store/tariff"
	"github.com/spf13/cobra"
)

func NewTariffsCmd(tariffs tariff.Store, reporter ReporterFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "tariffs",
		Short: "List supported tariff profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := tariffs.ListTariffs(cmd.Context())
			return reporter().Handle(adapters.MapTariffsDomainToReport(list))
		},
	}
}
