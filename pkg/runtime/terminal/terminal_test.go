package terminal

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/spot-atlas/pkg/runtime/terminal/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func run(t *testing.T, opts Options, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	opts.Output = &out
	err := NewCLI(opts).ExecuteContext(context.Background(), args...)
	return out.String(), err
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		absent   []string
	}{
		{
			name:     "yearly only",
			args:     []string{"calculate", "--tariff", "C02d", "--consumption", "3500", "--year", "2024"},
			contains: []string{"Spot price estimate for C02d (2024)", "Total Amount: CZK 7847", "| Average price", "2.24"},
			absent:   []string{"Monthly breakdown", "Fixed price comparison"},
		},
		{
			name: "monthly and comparison",
			args: []string{
				"calculate", "--consumption", "3500", "--year", "2024",
				"--monthly", "--fixed-price", "3",
			},
			contains: []string{"=== Monthly breakdown ===", "| January", "| December", "verdict: spot is cheaper", "2653"},
		},
		{
			name:     "plain output",
			args:     []string{"--format", "plain", "calculate", "--consumption", "3500", "--year", "2023"},
			contains: []string{"- Average price: 2.12 CZK/kWh", "Total Amount: CZK 7415"},
			absent:   []string{"+---"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, Options{}, tc.args...)
			require.NoError(t, err)
			for _, s := range tc.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tc.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestCalculate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		errText string
	}{
		{
			name:    "unknown tariff",
			args:    []string{"calculate", "--tariff", "X99", "--consumption", "3500", "--year", "2024"},
			errText: "unknown tariff code",
		},
		{
			name:    "unsupported year",
			args:    []string{"calculate", "--consumption", "3500", "--year", "2030"},
			errText: "unsupported year",
		},
		{
			name:    "missing consumption",
			args:    []string{"calculate", "--year", "2024"},
			errText: "consumption",
		},
		{
			name:    "unknown source",
			args:    []string{"calculate", "--consumption", "3500", "--year", "2024", "--prices-source", "csv"},
			errText: "not registered",
		},
		{
			name:    "zero exchange rate",
			args:    []string{"calculate", "--consumption", "3500", "--year", "2024", "--exchange-rate", "0"},
			errText: "--exchange-rate must be greater than 0",
		},
		{
			name:    "negative exchange rate",
			args:    []string{"calculate", "--consumption", "3500", "--year", "2024", "--exchange-rate=-25"},
			errText: "--exchange-rate must be greater than 0",
		},
		{
			name:    "overflowing consumption",
			args:    []string{"calculate", "--consumption", "1e308", "--year", "2024"},
			errText: "invalid calculation input",
		},
		{
			name:    "unknown format",
			args:    []string{"--format", "json", "tariffs"},
			errText: "unknown output format",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, Options{}, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errText)
		})
	}
}

func TestCalculate_INIPricesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prices.ini")
	flat := "[2025]\nhourly = 80,80,80,80,80,80,80,80,80,80,80,80,80,80,80,80,80,80,80,80,80,80,80,80\n"
	require.NoError(t, os.WriteFile(path, []byte(flat), 0o644))

	opts := Options{Defaults: commands.CalculateDefaults{
		ExchangeRate: 25,
		PricesSource: "ini",
		PricesPath:   path,
	}}
	out, err := run(t, opts, "calculate", "--consumption", "1000", "--year", "2025")
	require.NoError(t, err)

	// 80 EUR/MWh at 25 CZK/EUR is 2 CZK/kWh regardless of the profile
	assert.Contains(t, out, "Total Amount: CZK 2000")
	assert.Contains(t, out, "exchange_rate: 25")
}

func TestTariffs(t *testing.T) {
	out, err := run(t, Options{}, "tariffs")
	require.NoError(t, err)

	assert.Contains(t, out, "Supported tariffs")
	for _, code := range []string{"C01d", "C02d", "C63d", "C03e"} {
		assert.Contains(t, out, "| "+code)
	}
}

func TestCommodity(t *testing.T) {
	out, err := run(t, Options{}, "commodity", "--consumption", "4", "--price", "2000", "--standing-charge", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "status: cost")
	assert.Contains(t, out, "Total Amount: CZK 8600")

	out, err = run(t, Options{}, "--format", "plain", "commodity", "--price", "2000")
	require.NoError(t, err)
	assert.Contains(t, out, "status: need_input")
	assert.Contains(t, out, "- Missing: yearly consumption or total payment")
}

func TestRealised_MissingWorkbook(t *testing.T) {
	_, err := run(t, Options{}, "realised", "--workbook", filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to summarise workbook")
}

func writeRateMap(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"Sazba", "Distributor", "TDD"},
		{"D02d", "ČEZ Distribuce", "C02d"},
		{"D02d", "EG.D", "C01d"},
		{"D57d", "EG.D", "TDD9"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "rates.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestRate(t *testing.T) {
	path := writeRateMap(t)

	out, err := run(t, Options{}, "--format", "plain", "rate", "--rate", "d02d", "--distributor", "eg.d", "--rate-map", path)
	require.NoError(t, err)
	assert.Contains(t, out, "- TDD: C01d")
	assert.Contains(t, out, "- Distributor: eg.d")

	opts := Options{Defaults: commands.CalculateDefaults{RateMap: path}}
	out, err = run(t, opts, "--format", "plain", "rate", "--rate", "D02d")
	require.NoError(t, err)
	assert.Contains(t, out, "- TDD: C02d")
	assert.Contains(t, out, "- Distributor: any")

	_, err = run(t, Options{}, "rate", "--rate", "D02d")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--rate-map is required")

	_, err = run(t, opts, "rate", "--rate", "D99x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no TDD binding")
}

func TestCalculate_ResolvesRate(t *testing.T) {
	path := writeRateMap(t)

	out, err := run(t, Options{}, "calculate", "--rate", "D02d", "--distributor", "EG.D",
		"--rate-map", path, "--consumption", "3500", "--year", "2024")
	require.NoError(t, err)
	assert.Contains(t, out, "Spot price estimate for C01d (2024)")

	_, err = run(t, Options{}, "calculate", "--rate", "D57d", "--rate-map", path,
		"--consumption", "3500", "--year", "2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tariff code")
}
