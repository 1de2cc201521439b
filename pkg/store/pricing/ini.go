package pricing

import (
	"fmt"
	"strconv"

	"github.com/de-tools/spot-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

const hourlyKey = "hourly"

// LoadINI reads price series from an INI file with one section per year:
//
//	[2024]
//	hourly = 50, 45, 42, ...
//
// source may be a file path or raw bytes.
func LoadINI(source interface{}) (Store, error) {
	cfg, err := ini.Load(source)
	if err != nil {
		return nil, fmt.Errorf("load price series: %w", err)
	}

	var series []domain.PriceSeries
	for _, section := range cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}

		year, err := strconv.Atoi(section.Name())
		if err != nil {
			return nil, fmt.Errorf("section %q is not a year", section.Name())
		}
		if !section.HasKey(hourlyKey) {
			return nil, fmt.Errorf("year %d: missing %q key", year, hourlyKey)
		}

		values, err := section.Key(hourlyKey).StrictFloat64s(",")
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", year, err)
		}
		if len(values) != domain.HoursPerDay {
			return nil, fmt.Errorf("year %d: expected %d hourly prices, got %d", year, domain.HoursPerDay, len(values))
		}

		ps := domain.PriceSeries{Year: year}
		copy(ps.HourlyPrices[:], values)
		series = append(series, ps)
	}

	return NewStore(series...)
}
