package commands

import (
	"github.com/de-tools/spot-atlas/pkg/adapters"
	"github.com/de-tools/spot-atlas/pkg/services/commodity"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type CommodityCmd struct {
	consumption float64
	price       float64
	standing    float64
	months      int
	total       float64
	reporter    ReporterFactory
}

func NewCommodityCmd(reporter ReporterFactory) *cobra.Command {
	cc := &CommodityCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "commodity",
		Short: "Estimate the commodity cost or derive consumption from an invoice",
		Args:  cobra.NoArgs,
		RunE:  cc.run,
	}

	cmd.Flags().Float64Var(&cc.consumption, "consumption", 0, "Yearly consumption in MWh")
	cmd.Flags().Float64Var(&cc.price, "price", 0, "Commodity price in CZK/MWh")
	cmd.Flags().Float64Var(&cc.standing, "standing-charge", 0, "Standing charge in CZK per month")
	cmd.Flags().IntVar(&cc.months, "months", 12, "Billing period in months")
	cmd.Flags().Float64Var(&cc.total, "total", 0, "Total payment in CZK")

	return cmd
}

func (cc *CommodityCmd) run(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	in := commodity.Input{
		ConsumptionMWh: changed(flags, "consumption", cc.consumption),
		PricePerMWh:    changed(flags, "price", cc.price),
		StandingCharge: changed(flags, "standing-charge", cc.standing),
		Total:          changed(flags, "total", cc.total),
	}
	if flags.Changed("months") {
		months := cc.months
		in.Months = &months
	}

	return cc.reporter().Handle(adapters.MapCommodityEstimateToReport(commodity.Calculate(in)))
}

func changed(flags *pflag.FlagSet, name string, value float64) *float64 {
	if !flags.Changed(name) {
		return nil
	}
	return &value
}
