package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/de-tools/spot-atlas/pkg/models/domain"
	"github.com/xuri/excelize/v2"
)

const PricesSheet = "prices"

// LoadXLSX reads price series from the "prices" sheet of a workbook. The
// first row is a header with year, hour and price columns; every year must
// provide all 24 hours exactly once.
func LoadXLSX(path string) (Store, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer workbook.Close()

	// Raw values: the display format may round prices.
	rows, err := workbook.GetRows(PricesSheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", PricesSheet, err)
	}

	return parsePriceRows(rows)
}

func parsePriceRows(rows [][]string) (Store, error) {
	if len(rows) == 0 {
		return nil, errors.New("price sheet is empty")
	}

	yearIdx, hourIdx, priceIdx, err := findPriceColumns(rows[0])
	if err != nil {
		return nil, err
	}

	byYear := map[int]*domain.PriceSeries{}
	seen := map[int]map[int]bool{}
	var order []int

	for i, row := range rows[1:] {
		line := i + 2
		if isBlankRow(row) {
			continue
		}

		year, err := cellInt(row, yearIdx)
		if err != nil {
			return nil, fmt.Errorf("row %d: year: %w", line, err)
		}
		hour, err := cellInt(row, hourIdx)
		if err != nil {
			return nil, fmt.Errorf("row %d: hour: %w", line, err)
		}
		if hour < 0 || hour >= domain.HoursPerDay {
			return nil, fmt.Errorf("row %d: hour %d out of range", line, hour)
		}
		price, err := cellFloat(row, priceIdx)
		if err != nil {
			return nil, fmt.Errorf("row %d: price: %w", line, err)
		}

		ps, ok := byYear[year]
		if !ok {
			ps = &domain.PriceSeries{Year: year}
			byYear[year] = ps
			seen[year] = map[int]bool{}
			order = append(order, year)
		}
		if seen[year][hour] {
			return nil, fmt.Errorf("row %d: duplicate hour %d for year %d", line, hour, year)
		}
		seen[year][hour] = true
		ps.HourlyPrices[hour] = price
	}

	series := make([]domain.PriceSeries, 0, len(order))
	for _, year := range order {
		if len(seen[year]) != domain.HoursPerDay {
			return nil, fmt.Errorf("year %d: expected %d hourly prices, got %d", year, domain.HoursPerDay, len(seen[year]))
		}
		series = append(series, *byYear[year])
	}

	return NewStore(series...)
}

func findPriceColumns(header []string) (yearIdx, hourIdx, priceIdx int, err error) {
	yearIdx, hourIdx, priceIdx = -1, -1, -1
	for i, cell := range header {
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case "year":
			yearIdx = i
		case "hour":
			hourIdx = i
		case "price":
			priceIdx = i
		}
	}
	if yearIdx < 0 || hourIdx < 0 || priceIdx < 0 {
		return 0, 0, 0, fmt.Errorf("header must contain year, hour and price columns, got %v", header)
	}
	return yearIdx, hourIdx, priceIdx, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cellString(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func cellInt(row []string, idx int) (int, error) {
	return strconv.Atoi(cellString(row, idx))
}

func cellFloat(row []string, idx int) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(cellString(row, idx), ",", "."), 64)
}
