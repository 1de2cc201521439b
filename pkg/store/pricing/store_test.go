package pricing

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/de-tools/spot-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStore(t *testing.T) {
	s := NewDefaultStore()
	ctx := context.Background()

	assert.Equal(t, []int{2023, 2024}, s.Years(ctx))

	ps, err := s.HourlyPrices(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 2024, ps.Year)
	assert.Equal(t, 50.0, ps.HourlyPrices[0])
	assert.Equal(t, 125.0, ps.HourlyPrices[18])

	_, err = s.HourlyPrices(ctx, 2022)
	assert.True(t, errors.Is(err, ErrYearNotFound))
}

func TestNewStore_Validation(t *testing.T) {
	tests := []struct {
		name   string
		series []domain.PriceSeries
	}{
		{name: "empty"},
		{
			name:   "duplicate year",
			series: []domain.PriceSeries{{Year: 2024}, {Year: 2024}},
		},
		{
			name:   "nan price",
			series: []domain.PriceSeries{{Year: 2024, HourlyPrices: [domain.HoursPerDay]float64{math.NaN()}}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewStore(tc.series...)
			assert.Error(t, err)
		})
	}
}

func TestNewStore_AllowsNegativePrices(t *testing.T) {
	ps := domain.PriceSeries{Year: 2025}
	ps.HourlyPrices[13] = -12.5

	s, err := NewStore(ps)
	require.NoError(t, err)

	got, err := s.HourlyPrices(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, -12.5, got.HourlyPrices[13])
}
