package adapters

import (
	"fmt"
	"strconv"
	"time"

	"github.com/de-tools/spot-atlas/pkg/models/domain"
	"github.com/de-tools/spot-atlas/pkg/services/commodity"
	"github.com/de-tools/spot-atlas/pkg/services/realised"
	"github.com/de-tools/spot-atlas/pkg/store/tariff"
)

const Currency = "CZK"

func MapCalculationDomainToReport(c domain.Calculation) *domain.Report {
	r := c.Result
	report := &domain.Report{
		Title:       fmt.Sprintf("Spot price estimate for %s", r.Input.TariffCode),
		Year:        r.Input.Year,
		TotalAmount: r.TotalCostPerYear,
		Currency:    Currency,
	}

	summary := map[string]interface{}{
		"tariff":        string(r.Input.TariffCode),
		"profile":       string(r.ProfileCode),
		"exchange_rate": r.Input.ExchangeRate,
	}
	if r.ProfileFallback() {
		summary["fallback"] = true
	}
	report.Sections = append(report.Sections, domain.ReportSection{
		Title:   "Yearly result",
		Summary: summary,
		Details: []domain.ReportDetail{
			{Name: "Yearly consumption", Value: r.Input.YearlyConsumption, Unit: "kWh"},
			{Name: "Average price", Value: r.AveragePricePerUnit, Unit: Currency + "/kWh", Description: "consumption-weighted"},
			{Name: "Total cost", Value: r.TotalCostPerYear, Unit: Currency},
		},
	})

	if len(c.MonthlyBreakdown) > 0 {
		section := domain.ReportSection{Title: "Monthly breakdown"}
		for _, m := range c.MonthlyBreakdown {
			section.Details = append(section.Details, domain.ReportDetail{
				Name:        m.MonthName,
				Value:       m.AveragePricePerUnit,
				Unit:        Currency + "/kWh",
				Description: fmt.Sprintf("%.0f kWh, %.0f %s", m.Consumption, m.TotalCost, Currency),
			})
		}
		report.Sections = append(report.Sections, section)
	}

	if cmp := c.Comparison; cmp != nil {
		verdict := "fixed price is cheaper"
		if cmp.IsSpotCheaper {
			verdict = "spot is cheaper"
		}
		report.Sections = append(report.Sections, domain.ReportSection{
			Title:   "Fixed price comparison",
			Summary: map[string]interface{}{"verdict": verdict},
			Details: []domain.ReportDetail{
				{Name: "Fixed price", Value: cmp.FixedPrice, Unit: Currency + "/kWh"},
				{Name: "Savings per unit", Value: cmp.SavingsPerUnit, Unit: Currency + "/kWh"},
				{Name: "Savings per year", Value: cmp.SavingsPerYear, Unit: Currency},
				{Name: "Savings", Value: cmp.SavingsPercentage, Unit: "%"},
			},
		})
	}

	return report
}

func MapTariffsDomainToReport(tariffs []domain.TariffMetadata) *domain.Report {
	section := domain.ReportSection{Title: "Tariff profiles"}
	for _, t := range tariffs {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        string(t.Code),
			Value:       t.Name,
			Unit:        string(t.Category),
			Description: t.TypicalConsumption,
		})
	}
	return &domain.Report{
		Title:    "Supported tariffs",
		Sections: []domain.ReportSection{section},
		Currency: Currency,
	}
}

func MapCommodityEstimateToReport(e commodity.Estimate) *domain.Report {
	report := &domain.Report{
		Title:    "Commodity estimate",
		Currency: Currency,
	}

	var details []domain.ReportDetail
	if b := e.Breakdown; b.ConsumptionMWh != nil {
		details = append(details, domain.ReportDetail{Name: "Consumption", Value: *b.ConsumptionMWh, Unit: "MWh"})
	}
	if b := e.Breakdown; b.PricePerMWh != nil {
		details = append(details, domain.ReportDetail{Name: "Price", Value: *b.PricePerMWh, Unit: Currency + "/MWh"})
	}
	details = append(details,
		domain.ReportDetail{Name: "Standing charge", Value: e.Breakdown.StandingCharge, Unit: Currency + "/month"},
		domain.ReportDetail{Name: "Months", Value: e.Breakdown.Months},
	)
	for _, m := range e.Missing {
		details = append(details, domain.ReportDetail{Name: "Missing", Value: m})
	}

	if e.Status != commodity.StatusNeedInput {
		report.TotalAmount = e.Result
	}
	report.Sections = []domain.ReportSection{{
		Title:   "Estimate",
		Summary: map[string]interface{}{"status": string(e.Status)},
		Details: details,
	}}
	return report
}

// MapRealisedSummaryToReport renders the yearly averages and, when tariff is
// set, the monthly averages of that TDD.
func MapRealisedSummaryToReport(s realised.Summary, tariff string) *domain.Report {
	report := &domain.Report{
		Title:    "Realised day-ahead prices per TDD",
		Currency: Currency,
	}

	yearly := domain.ReportSection{Title: "Whole period"}
	for _, code := range s.Tariffs() {
		yearly.Details = append(yearly.Details, domain.ReportDetail{
			Name:        code,
			Value:       fmt.Sprintf("%.2f", s.Yearly[code]),
			Unit:        Currency + "/MWh",
			Description: "weighted by TDD coefficients",
		})
	}
	report.Sections = append(report.Sections, yearly)

	if tariff == "" {
		return report
	}
	monthly := domain.ReportSection{
		Title:   "Monthly " + tariff,
		Summary: map[string]interface{}{"tariff": tariff},
	}
	for m := 1; m <= 12; m++ {
		price, ok := s.Monthly[m][tariff]
		if !ok {
			continue
		}
		monthly.Details = append(monthly.Details, domain.ReportDetail{
			Name:        time.Month(m).String(),
			Value:       fmt.Sprintf("%.2f", price),
			Unit:        Currency + "/MWh",
			Description: "month " + strconv.Itoa(m),
		})
	}
	report.Sections = append(report.Sections, monthly)
	return report
}

func MapRateMappingToReport(m tariff.RateMapping) *domain.Report {
	distributor := m.Distributor
	if distributor == "" {
		distributor = "any"
	}
	return &domain.Report{
		Title:    "Rate binding",
		Currency: Currency,
		Sections: []domain.ReportSection{{
			Title: "Resolved TDD",
			Details: []domain.ReportDetail{
				{Name: "Rate", Value: m.Rate},
				{Name: "Distributor", Value: distributor},
				{Name: "TDD", Value: m.TDD},
			},
		}},
	}
}
