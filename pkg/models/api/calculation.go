package api

import "time"

// Response is the envelope of every JSON endpoint.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Details []string    `json:"details,omitempty"`
}

type Tariff struct {
	Code               string `json:"code"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Category           string `json:"category"`
	TypicalConsumption string `json:"typicalConsumption"`
}

type Years struct {
	Years []int `json:"years"`
}

type CalculationRequest struct {
	TariffCode        string   `json:"tariffCode"`
	YearlyConsumption float64  `json:"yearlyConsumption"`
	Year              int      `json:"year"`
	ExchangeRate      *float64 `json:"exchangeRate,omitempty"`
	IncludeMonthly    bool     `json:"includeMonthly,omitempty"`
	FixedPrice        *float64 `json:"fixedPrice,omitempty"`
}

type CalculationInput struct {
	TariffCode        string  `json:"tariffCode"`
	YearlyConsumption float64 `json:"yearlyConsumption"`
	Year              int     `json:"year"`
	ExchangeRate      float64 `json:"exchangeRate"`
}

type CalculationResult struct {
	Input               CalculationInput `json:"input"`
	ProfileCode         string           `json:"profileCode"`
	ProfileFallback     bool             `json:"profileFallback"`
	AveragePricePerUnit float64          `json:"averagePricePerUnit"`
	TotalCostPerYear    float64          `json:"totalCostPerYear"`
	CalculatedAt        time.Time        `json:"calculatedAt"`
}

type MonthlyResult struct {
	Month               int     `json:"month"`
	MonthName           string  `json:"monthName"`
	AveragePricePerUnit float64 `json:"averagePricePerUnit"`
	Consumption         float64 `json:"consumption"`
	TotalCost           float64 `json:"totalCost"`
}

type ComparisonResult struct {
	Spot              CalculationResult `json:"spot"`
	FixedPrice        float64           `json:"fixedPrice"`
	SavingsPerUnit    float64           `json:"savingsPerUnit"`
	SavingsPerYear    float64           `json:"savingsPerYear"`
	SavingsPercentage float64           `json:"savingsPercentage"`
	IsSpotCheaper     bool              `json:"isSpotCheaper"`
}

// Calculation is the data payload of POST /calculate. Optional parts are
// null when they were not requested.
type Calculation struct {
	Result           CalculationResult `json:"result"`
	MonthlyBreakdown []MonthlyResult   `json:"monthlyBreakdown"`
	Comparison       *ComparisonResult `json:"comparison"`
}
