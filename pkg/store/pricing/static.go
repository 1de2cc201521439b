package pricing

import "github.com/de-tools/spot-atlas/pkg/models/domain"

// Averaged day-ahead hourly prices, EUR/MWh.
var (
	hourlyPrices2023 = [domain.HoursPerDay]float64{
		45, 40, 38, 37, 40, 55,
		85, 110, 105, 90, 80, 75,
		70, 72, 75, 80, 95, 115,
		120, 115, 100, 85, 70, 55,
	}

	hourlyPrices2024 = [domain.HoursPerDay]float64{
		50, 45, 42, 40, 45, 60,
		90, 115, 110, 95, 85, 80,
		75, 77, 80, 85, 100, 120,
		125, 120, 105, 90, 75, 60,
	}
)

func DefaultSeries() []domain.PriceSeries {
	return []domain.PriceSeries{
		{Year: 2023, HourlyPrices: hourlyPrices2023},
		{Year: 2024, HourlyPrices: hourlyPrices2024},
	}
}

// NewDefaultStore serves the built-in 2023 and 2024 tables.
func NewDefaultStore() Store {
	s, err := NewStore(DefaultSeries()...)
	if err != nil {
		panic(err)
	}
	return s
}
