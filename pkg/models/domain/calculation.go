package domain

import "time"

// PriceSeries is a repeating daily market price curve in EUR/MWh.
type PriceSeries struct {
	Year         int
	HourlyPrices [HoursPerDay]float64
}

type CalculationInput struct {
	TariffCode        TariffCode
	YearlyConsumption float64 // kWh
	Year              int
	ExchangeRate      float64 // CZK per EUR, zero selects the calculator default
}

type CalculationResult struct {
	Input               CalculationInput
	ProfileCode         TariffCode // differs from Input.TariffCode after a fallback
	AveragePricePerUnit float64    // CZK/kWh, 2 decimals
	TotalCostPerYear    float64    // CZK, whole units
	CalculatedAt        time.Time
}

// ProfileFallback reports whether the default profile replaced the requested one.
func (r CalculationResult) ProfileFallback() bool {
	return r.ProfileCode != r.Input.TariffCode
}

type MonthlyResult struct {
	Month               int
	MonthName           string
	AveragePricePerUnit float64
	Consumption         float64
	TotalCost           float64
}

type ComparisonResult struct {
	Spot              CalculationResult
	FixedPrice        float64
	SavingsPerUnit    float64
	SavingsPerYear    float64
	SavingsPercentage float64
	IsSpotCheaper     bool
}

// Calculation bundles the optional views requested together with a result.
type Calculation struct {
	Result           CalculationResult
	MonthlyBreakdown []MonthlyResult
	Comparison       *ComparisonResult
}
