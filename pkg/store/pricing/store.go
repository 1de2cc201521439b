package pricing

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/de-tools/spot-atlas/pkg/models/domain"
)

var ErrYearNotFound = errors.New("no price series for year")

// Store provides daily market price curves (EUR/MWh) keyed by year. A live
// market feed can satisfy the same interface.
type Store interface {
	HourlyPrices(ctx context.Context, year int) (domain.PriceSeries, error)
	// Years returns the supported years in ascending order.
	Years(ctx context.Context) []int
}

type seriesStore struct {
	series map[int]domain.PriceSeries
}

func NewStore(series ...domain.PriceSeries) (Store, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("at least one price series must be provided")
	}

	s := &seriesStore{series: make(map[int]domain.PriceSeries, len(series))}
	for _, ps := range series {
		if _, exists := s.series[ps.Year]; exists {
			return nil, fmt.Errorf("duplicate price series for year %d", ps.Year)
		}
		for h, p := range ps.HourlyPrices {
			if math.IsNaN(p) || math.IsInf(p, 0) {
				return nil, fmt.Errorf("year %d: invalid price at hour %d", ps.Year, h)
			}
		}
		s.series[ps.Year] = ps
	}
	return s, nil
}

func (s *seriesStore) HourlyPrices(_ context.Context, year int) (domain.PriceSeries, error) {
	ps, ok := s.series[year]
	if !ok {
		return domain.PriceSeries{}, fmt.Errorf("%w: %d", ErrYearNotFound, year)
	}
	return ps, nil
}

func (s *seriesStore) Years(_ context.Context) []int {
	return slices.Sorted(maps.Keys(s.series))
}
