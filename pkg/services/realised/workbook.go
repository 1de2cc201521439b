package realised

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	CoefficientSheet = "koef TDD"

	monthHeader  = "mesic"
	priceHeader  = "cena da"
	tariffPrefix = "TDD"
	headerRow    = 1
)

// Summary holds weighted average spot prices per TDD, for the whole period
// and for each calendar month. Prices keep the unit of the workbook.
type Summary struct {
	Yearly  map[string]float64
	Monthly map[int]map[string]float64
}

// Tariffs lists the TDD codes present in the yearly summary.
func (s Summary) Tariffs() []string {
	return slices.Sorted(maps.Keys(s.Yearly))
}

// LoadWorkbook reads quarter-hour TDD coefficients and day-ahead prices from
// the "koef TDD" sheet and aggregates them.
func LoadWorkbook(path string) (Summary, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open workbook: %w", err)
	}
	defer workbook.Close()

	// Coefficients are tiny; formatted text would round them away.
	rows, err := workbook.GetRows(CoefficientSheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return Summary{}, fmt.Errorf("read sheet %q: %w", CoefficientSheet, err)
	}
	return Summarize(rows)
}

type column struct {
	index int
	base  string
}

type bucket struct {
	weight float64
	cost   float64
}

// Summarize aggregates sheet rows. The header is expected on the second row.
// Rows with a non-numeric price or a month outside 1..12 are skipped and
// non-numeric weights count as zero.
func Summarize(rows [][]string) (Summary, error) {
	if len(rows) <= headerRow {
		return Summary{}, errors.New("sheet has no header row")
	}

	monthIdx, priceIdx, tariffs, err := parseHeader(rows[headerRow])
	if err != nil {
		return Summary{}, err
	}

	yearly := make([]bucket, len(tariffs))
	monthly := map[int][]bucket{}

	for _, row := range rows[headerRow+1:] {
		price, err := numeric(row, priceIdx)
		if err != nil {
			continue
		}
		monthValue, err := numeric(row, monthIdx)
		if err != nil {
			continue
		}
		month := int(monthValue)
		if float64(month) != monthValue || month < 1 || month > 12 {
			continue
		}

		if monthly[month] == nil {
			monthly[month] = make([]bucket, len(tariffs))
		}
		for i, col := range tariffs {
			w, err := numeric(row, col.index)
			if err != nil {
				w = 0
			}
			yearly[i].add(w, price)
			monthly[month][i].add(w, price)
		}
	}

	summary := Summary{
		Yearly:  averages(tariffs, yearly),
		Monthly: make(map[int]map[string]float64, len(monthly)),
	}
	for month, buckets := range monthly {
		summary.Monthly[month] = averages(tariffs, buckets)
	}
	return summary, nil
}

func parseHeader(header []string) (monthIdx, priceIdx int, tariffs []column, err error) {
	monthIdx, priceIdx = -1, -1
	for i, cell := range header {
		name := strings.TrimSpace(cell)
		switch {
		case strings.EqualFold(name, monthHeader):
			monthIdx = i
		case strings.EqualFold(name, priceHeader):
			priceIdx = i
		case strings.HasPrefix(strings.ToUpper(name), tariffPrefix):
			tariffs = append(tariffs, column{index: i, base: strings.ToUpper(strings.Fields(name)[0])})
		}
	}

	if monthIdx < 0 || priceIdx < 0 {
		return 0, 0, nil, fmt.Errorf("header must contain %q and %q columns", monthHeader, priceHeader)
	}
	if len(tariffs) == 0 {
		return 0, 0, nil, errors.New("no TDD columns found in header")
	}
	return monthIdx, priceIdx, tariffs, nil
}

func (b *bucket) add(weight, price float64) {
	b.weight += weight
	b.cost += weight * price
}

// averages merges columns sharing a base code. Columns whose total weight is
// not positive are ignored.
func averages(tariffs []column, buckets []bucket) map[string]float64 {
	merged := map[string]bucket{}
	for i, col := range tariffs {
		if buckets[i].weight <= 0 {
			continue
		}
		m := merged[col.base]
		m.weight += buckets[i].weight
		m.cost += buckets[i].cost
		merged[col.base] = m
	}

	result := make(map[string]float64, len(merged))
	for base, m := range merged {
		result[base] = m.cost / m.weight
	}
	return result
}

// numeric parses a finite number; NaN and infinities are rejected.
func numeric(row []string, idx int) (float64, error) {
	if idx >= len(row) {
		return 0, errors.New("missing cell")
	}
	value := strings.ReplaceAll(strings.TrimSpace(row[idx]), ",", ".")
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite value %q", value)
	}
	return v, nil
}
