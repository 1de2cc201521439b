package adapters

import (
	"github.com/de-tools/spot-atlas/pkg/models/api"
	"github.com/de-tools/spot-atlas/pkg/services/commodity"
)

func MapCommodityRequestApiToService(r api.CommodityRequest) commodity.Input {
	return commodity.Input{
		ConsumptionMWh: r.ConsumptionMWh,
		PricePerMWh:    r.PricePerMWh,
		StandingCharge: r.StandingCharge,
		Months:         r.Months,
		Total:          r.Total,
	}
}

func MapCommodityEstimateServiceToApi(e commodity.Estimate) api.CommodityEstimate {
	return api.CommodityEstimate{
		Status: string(e.Status),
		Result: e.Result,
		Breakdown: api.CommodityBreakdown{
			ConsumptionMWh: e.Breakdown.ConsumptionMWh,
			PricePerMWh:    e.Breakdown.PricePerMWh,
			StandingCharge: e.Breakdown.StandingCharge,
			Months:         e.Breakdown.Months,
			Total:          e.Breakdown.Total,
		},
		Missing: e.Missing,
	}
}
