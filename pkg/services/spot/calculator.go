package spot

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/de-tools/spot-atlas/pkg/models/domain"
	"github.com/de-tools/spot-atlas/pkg/store/pricing"
	"github.com/de-tools/spot-atlas/pkg/store/tariff"
)

const (
	DefaultExchangeRate = 25.0

	// The model ignores leap years: every year has 365 days and February 28.
	DaysPerYear = 365
	SlotsPerDay = domain.HoursPerDay * QuarterHoursPerHour
)

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Calculator allocates a yearly consumption over quarter-hour slots following
// a tariff profile and prices it against a daily market price curve.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	profiles     tariff.Store
	prices       pricing.Store
	exchangeRate float64
	now          func() time.Time
}

type Option func(*Calculator)

func WithDefaultExchangeRate(rate float64) Option {
	return func(c *Calculator) {
		c.exchangeRate = rate
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		c.now = now
	}
}

func NewCalculator(profiles tariff.Store, prices pricing.Store, opts ...Option) (*Calculator, error) {
	if profiles == nil {
		return nil, errors.New("tariff store is nil")
	}
	if prices == nil {
		return nil, errors.New("price store is nil")
	}

	c := &Calculator{
		profiles:     profiles,
		prices:       prices,
		exchangeRate: DefaultExchangeRate,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !isPositive(c.exchangeRate) {
		return nil, fmt.Errorf("%w: default exchange rate must be positive", ErrInvalidInput)
	}
	return c, nil
}

// Years lists the years the price store can serve.
func (c *Calculator) Years(ctx context.Context) []int {
	return c.prices.Years(ctx)
}

// Calculate returns the consumption-weighted average price and the yearly cost.
func (c *Calculator) Calculate(ctx context.Context, in domain.CalculationInput) (domain.CalculationResult, error) {
	cv, err := c.resolve(ctx, in)
	if err != nil {
		return domain.CalculationResult{}, err
	}
	return c.yearly(cv)
}

// MonthlyBreakdown returns one result per calendar month, January first. The
// yearly consumption is split evenly across months and the daily curves are
// tiled over each month's days.
func (c *Calculator) MonthlyBreakdown(ctx context.Context, in domain.CalculationInput) ([]domain.MonthlyResult, error) {
	cv, err := c.resolve(ctx, in)
	if err != nil {
		return nil, err
	}
	return monthly(cv)
}

func (c *Calculator) yearly(cv curves) (domain.CalculationResult, error) {
	alloc, err := allocate(cv, DaysPerYear, cv.input.YearlyConsumption)
	if err != nil {
		return domain.CalculationResult{}, err
	}

	return domain.CalculationResult{
		Input:               cv.input,
		ProfileCode:         cv.profile,
		AveragePricePerUnit: Round(alloc.cost/cv.input.YearlyConsumption, 2),
		TotalCostPerYear:    Round(alloc.cost, 0),
		CalculatedAt:        c.now().UTC(),
	}, nil
}

func monthly(cv curves) ([]domain.MonthlyResult, error) {
	monthlyConsumption := cv.input.YearlyConsumption / 12

	results := make([]domain.MonthlyResult, 0, len(daysInMonth))
	for m, days := range daysInMonth {
		alloc, err := allocate(cv, days, monthlyConsumption)
		if err != nil {
			return nil, err
		}

		results = append(results, domain.MonthlyResult{
			Month:               m + 1,
			MonthName:           time.Month(m + 1).String(),
			AveragePricePerUnit: Round(alloc.cost/monthlyConsumption, 2),
			Consumption:         Round(monthlyConsumption, 0),
			TotalCost:           Round(alloc.cost, 0),
		})
	}
	return results, nil
}

// Compare prices the input on the spot market and sets it against a fixed
// contracted price per kWh.
func (c *Calculator) Compare(ctx context.Context, in domain.CalculationInput, fixedPrice float64) (domain.ComparisonResult, error) {
	if !isPositive(fixedPrice) {
		return domain.ComparisonResult{}, fmt.Errorf("%w: fixed price must be positive", ErrInvalidInput)
	}

	result, err := c.Calculate(ctx, in)
	if err != nil {
		return domain.ComparisonResult{}, err
	}
	return compare(result, fixedPrice)
}

// compare works on the rounded spot figures.
func compare(spot domain.CalculationResult, fixedPrice float64) (domain.ComparisonResult, error) {
	fixedTotal := fixedPrice * spot.Input.YearlyConsumption
	if !isFinite(fixedTotal) {
		return domain.ComparisonResult{}, fmt.Errorf("%w: fixed price total overflows", ErrInvalidInput)
	}
	savingsPerYear := fixedTotal - spot.TotalCostPerYear
	savingsPerUnit := fixedPrice - spot.AveragePricePerUnit
	savingsPercentage := savingsPerYear / fixedTotal * 100

	return domain.ComparisonResult{
		Spot:              spot,
		FixedPrice:        fixedPrice,
		SavingsPerUnit:    Round(savingsPerUnit, 2),
		SavingsPerYear:    Round(savingsPerYear, 0),
		SavingsPercentage: Round(savingsPercentage, 1),
		IsSpotCheaper:     spot.AveragePricePerUnit < fixedPrice,
	}, nil
}

type Request struct {
	Input          domain.CalculationInput
	IncludeMonthly bool
	FixedPrice     *float64
}

// Run performs a calculation together with the optional monthly breakdown
// and fixed-price comparison.
func (c *Calculator) Run(ctx context.Context, req Request) (domain.Calculation, error) {
	if req.FixedPrice != nil && !isPositive(*req.FixedPrice) {
		return domain.Calculation{}, fmt.Errorf("%w: fixed price must be positive", ErrInvalidInput)
	}

	// Resolve once so a fallback is logged once per request.
	cv, err := c.resolve(ctx, req.Input)
	if err != nil {
		return domain.Calculation{}, err
	}

	result, err := c.yearly(cv)
	if err != nil {
		return domain.Calculation{}, err
	}

	calc := domain.Calculation{Result: result}
	if req.IncludeMonthly {
		calc.MonthlyBreakdown, err = monthly(cv)
		if err != nil {
			return domain.Calculation{}, err
		}
	}
	if req.FixedPrice != nil {
		cmp, err := compare(result, *req.FixedPrice)
		if err != nil {
			return domain.Calculation{}, err
		}
		calc.Comparison = &cmp
	}
	return calc, nil
}

// curves holds one day of aligned quarter-hour weights and local prices.
type curves struct {
	input   domain.CalculationInput
	profile domain.TariffCode
	weights []float64
	prices  []float64
}

func (c *Calculator) resolve(ctx context.Context, in domain.CalculationInput) (curves, error) {
	if !isPositive(in.YearlyConsumption) {
		return curves{}, fmt.Errorf("%w: yearly consumption must be positive, got %v", ErrInvalidInput, in.YearlyConsumption)
	}
	switch {
	case in.ExchangeRate == 0:
		in.ExchangeRate = c.exchangeRate
	case !isPositive(in.ExchangeRate):
		return curves{}, fmt.Errorf("%w: exchange rate must be positive, got %v", ErrInvalidInput, in.ExchangeRate)
	}

	series, err := c.prices.HourlyPrices(ctx, in.Year)
	if err != nil {
		if errors.Is(err, pricing.ErrYearNotFound) {
			return curves{}, fmt.Errorf("%w: %d", ErrUnsupportedYear, in.Year)
		}
		return curves{}, fmt.Errorf("load prices for %d: %w", in.Year, err)
	}

	profile, _ := c.profiles.Resolve(ctx, in.TariffCode)

	prices := Expand(series.HourlyPrices[:], QuarterHoursPerHour)
	for i, p := range prices {
		prices[i] = ConvertPrice(p, in.ExchangeRate)
	}

	return curves{
		input:   in,
		profile: profile.Code,
		weights: Expand(profile.HourlyWeights[:], QuarterHoursPerHour),
		prices:  prices,
	}, nil
}

type allocation struct {
	consumption float64
	cost        float64
}

// allocate tiles the daily curves over days and distributes consumption
// across the slots in proportion to their weight. It folds slot by slot in
// calendar order instead of materialising the tiled series.
func allocate(cv curves, days int, consumption float64) (allocation, error) {
	var totalWeight float64
	for d := 0; d < days; d++ {
		for _, w := range cv.weights {
			totalWeight += w
		}
	}
	if !isFinite(totalWeight) {
		return allocation{}, fmt.Errorf("%w: tariff %s has a non-finite total weight", ErrInvalidProfile, cv.profile)
	}
	if totalWeight <= 0 {
		return allocation{}, fmt.Errorf("%w: tariff %s has zero total weight", ErrInvalidProfile, cv.profile)
	}

	var alloc allocation
	for d := 0; d < days; d++ {
		for i, w := range cv.weights {
			slot := (w / totalWeight) * consumption
			alloc.consumption += slot
			alloc.cost += slot * cv.prices[i]
		}
	}
	if !isFinite(alloc.cost) {
		return allocation{}, fmt.Errorf("%w: cost of %v kWh overflows", ErrInvalidInput, consumption)
	}
	return alloc, nil
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
