package spot

// QuarterHoursPerHour is the repeat factor between hourly curves and the
// quarter-hour slots used for allocation.
const QuarterHoursPerHour = 4

// Expand repeats every value factor times in place, so the value at index h
// occupies [h*factor, (h+1)*factor) of the result.
func Expand(values []float64, factor int) []float64 {
	if factor <= 0 {
		return nil
	}
	out := make([]float64, 0, len(values)*factor)
	for _, v := range values {
		for i := 0; i < factor; i++ {
			out = append(out, v)
		}
	}
	return out
}

// ConvertPrice turns EUR/MWh into CZK/kWh. No rounding is applied.
func ConvertPrice(eurPerMWh, exchangeRate float64) float64 {
	return (eurPerMWh / 1000) * exchangeRate
}
