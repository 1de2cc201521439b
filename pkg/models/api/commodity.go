package api

type CommodityRequest struct {
	ConsumptionMWh *float64 `json:"consumptionMWh,omitempty"`
	PricePerMWh    *float64 `json:"pricePerMWh,omitempty"`
	StandingCharge *float64 `json:"standingCharge,omitempty"`
	Months         *int     `json:"months,omitempty"`
	Total          *float64 `json:"total,omitempty"`
}

type CommodityBreakdown struct {
	ConsumptionMWh *float64 `json:"consumptionMWh"`
	PricePerMWh    *float64 `json:"pricePerMWh"`
	StandingCharge float64  `json:"standingCharge"`
	Months         int      `json:"months"`
	Total          *float64 `json:"total"`
}

type CommodityEstimate struct {
	Status    string             `json:"status"`
	Result    float64            `json:"result"`
	Breakdown CommodityBreakdown `json:"breakdown"`
	Missing   []string           `json:"missing,omitempty"`
}
