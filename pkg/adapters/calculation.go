package adapters

import (
	"github.com/de-tools/spot-atlas/pkg/models/api"
	"github.com/de-tools/spot-atlas/pkg/models/domain"
)

func MapTariffMetadataDomainToApi(m domain.TariffMetadata) api.Tariff {
	return api.Tariff{
		Code:               string(m.Code),
		Name:               m.Name,
		Description:        m.Description,
		Category:           string(m.Category),
		TypicalConsumption: m.TypicalConsumption,
	}
}

func MapTariffsDomainToApi(tariffs []domain.TariffMetadata) []api.Tariff {
	res := make([]api.Tariff, 0, len(tariffs))
	for _, t := range tariffs {
		res = append(res, MapTariffMetadataDomainToApi(t))
	}
	return res
}

func MapCalculationInputDomainToApi(in domain.CalculationInput) api.CalculationInput {
	return api.CalculationInput{
		TariffCode:        string(in.TariffCode),
		YearlyConsumption: in.YearlyConsumption,
		Year:              in.Year,
		ExchangeRate:      in.ExchangeRate,
	}
}

func MapCalculationResultDomainToApi(r domain.CalculationResult) api.CalculationResult {
	return api.CalculationResult{
		Input:               MapCalculationInputDomainToApi(r.Input),
		ProfileCode:         string(r.ProfileCode),
		ProfileFallback:     r.ProfileFallback(),
		AveragePricePerUnit: r.AveragePricePerUnit,
		TotalCostPerYear:    r.TotalCostPerYear,
		CalculatedAt:        r.CalculatedAt,
	}
}

func MapMonthlyResultDomainToApi(m domain.MonthlyResult) api.MonthlyResult {
	return api.MonthlyResult{
		Month:               m.Month,
		MonthName:           m.MonthName,
		AveragePricePerUnit: m.AveragePricePerUnit,
		Consumption:         m.Consumption,
		TotalCost:           m.TotalCost,
	}
}

func MapComparisonDomainToApi(c domain.ComparisonResult) api.ComparisonResult {
	return api.ComparisonResult{
		Spot:              MapCalculationResultDomainToApi(c.Spot),
		FixedPrice:        c.FixedPrice,
		SavingsPerUnit:    c.SavingsPerUnit,
		SavingsPerYear:    c.SavingsPerYear,
		SavingsPercentage: c.SavingsPercentage,
		IsSpotCheaper:     c.IsSpotCheaper,
	}
}

func MapCalculationDomainToApi(c domain.Calculation) api.Calculation {
	res := api.Calculation{
		Result: MapCalculationResultDomainToApi(c.Result),
	}
	// keep the breakdown null unless it was requested
	if c.MonthlyBreakdown != nil {
		res.MonthlyBreakdown = make([]api.MonthlyResult, 0, len(c.MonthlyBreakdown))
		for _, m := range c.MonthlyBreakdown {
			res.MonthlyBreakdown = append(res.MonthlyBreakdown, MapMonthlyResultDomainToApi(m))
		}
	}
	if c.Comparison != nil {
		cmp := MapComparisonDomainToApi(*c.Comparison)
		res.Comparison = &cmp
	}
	return res
}
