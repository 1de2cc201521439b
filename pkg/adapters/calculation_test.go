package adapters

import (
	"testing"
	"time"

	"github.com/de-tools/spot-atlas/pkg/models/domain"
	"github.com/de-tools/spot-atlas/pkg/services/commodity"
	"github.com/de-tools/spot-atlas/pkg/services/realised"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(code domain.TariffCode) domain.CalculationResult {
	return domain.CalculationResult{
		Input: domain.CalculationInput{
			TariffCode:        code,
			YearlyConsumption: 3500,
			Year:              2024,
			ExchangeRate:      25,
		},
		ProfileCode:         domain.TariffC02d,
		AveragePricePerUnit: 2.24,
		TotalCostPerYear:    7847,
		CalculatedAt:        time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestMapCalculationDomainToApi(t *testing.T) {
	t.Run("optional parts stay nil", func(t *testing.T) {
		res := MapCalculationDomainToApi(domain.Calculation{Result: sampleResult(domain.TariffC02d)})

		assert.Nil(t, res.MonthlyBreakdown)
		assert.Nil(t, res.Comparison)
		assert.Equal(t, "C02d", res.Result.Input.TariffCode)
		assert.False(t, res.Result.ProfileFallback)
		assert.Equal(t, 7847.0, res.Result.TotalCostPerYear)
	})

	t.Run("fallback and optional parts", func(t *testing.T) {
		result := sampleResult("X99")
		res := MapCalculationDomainToApi(domain.Calculation{
			Result:           result,
			MonthlyBreakdown: []domain.MonthlyResult{{Month: 1, MonthName: "January", TotalCost: 654}},
			Comparison:       &domain.ComparisonResult{Spot: result, FixedPrice: 3, IsSpotCheaper: true},
		})

		assert.True(t, res.Result.ProfileFallback)
		assert.Equal(t, "C02d", res.Result.ProfileCode)
		require.Len(t, res.MonthlyBreakdown, 1)
		assert.Equal(t, "January", res.MonthlyBreakdown[0].MonthName)
		require.NotNil(t, res.Comparison)
		assert.True(t, res.Comparison.IsSpotCheaper)
		assert.Equal(t, 3.0, res.Comparison.FixedPrice)
	})
}

func TestMapCalculationDomainToReport(t *testing.T) {
	fixed := domain.ComparisonResult{FixedPrice: 2, SavingsPerYear: -847}
	report := MapCalculationDomainToReport(domain.Calculation{
		Result:           sampleResult(domain.TariffC02d),
		MonthlyBreakdown: make([]domain.MonthlyResult, 12),
		Comparison:       &fixed,
	})

	assert.Equal(t, 2024, report.Year)
	assert.Equal(t, 7847.0, report.TotalAmount)
	require.Len(t, report.Sections, 3)
	assert.Len(t, report.Sections[1].Details, 12)
	assert.Equal(t, "fixed price is cheaper", report.Sections[2].Summary["verdict"])
}

func TestMapCommodityEstimateToReport(t *testing.T) {
	q, p := 4.0, 2000.0
	report := MapCommodityEstimateToReport(commodity.Estimate{
		Status: commodity.StatusCost,
		Result: 8600,
		Breakdown: commodity.Breakdown{
			ConsumptionMWh: &q,
			PricePerMWh:    &p,
			StandingCharge: 50,
			Months:         12,
		},
	})
	assert.Equal(t, 8600.0, report.TotalAmount)
	require.Len(t, report.Sections, 1)
	assert.Len(t, report.Sections[0].Details, 4)

	report = MapCommodityEstimateToReport(commodity.Estimate{
		Status:  commodity.StatusNeedInput,
		Missing: []string{"period in months"},
	})
	assert.Zero(t, report.TotalAmount)
	assert.Equal(t, "need_input", report.Sections[0].Summary["status"])
}

func TestMapRealisedSummaryToReport(t *testing.T) {
	s := realised.Summary{
		Yearly: map[string]float64{"TDD5": 2100, "TDD4": 2000},
		Monthly: map[int]map[string]float64{
			1: {"TDD4": 2500},
			3: {"TDD4": 1500, "TDD5": 1700},
		},
	}

	report := MapRealisedSummaryToReport(s, "")
	require.Len(t, report.Sections, 1)
	assert.Equal(t, "TDD4", report.Sections[0].Details[0].Name)
	assert.Equal(t, "2000.00", report.Sections[0].Details[0].Value)

	report = MapRealisedSummaryToReport(s, "TDD4")
	require.Len(t, report.Sections, 2)
	months := report.Sections[1].Details
	require.Len(t, months, 2)
	assert.Equal(t, "January", months[0].Name)
	assert.Equal(t, "March", months[1].Name)
}
