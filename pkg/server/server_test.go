package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/de-tools/spot-atlas/pkg/models/api"
	"github.com/de-tools/spot-atlas/pkg/services/spot"
	"github.com/de-tools/spot-atlas/pkg/store/pricing"
	"github.com/de-tools/spot-atlas/pkg/store/tariff"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()

	tariffs := tariff.NewDefaultStore()
	calc, err := spot.NewCalculator(tariffs, pricing.NewDefaultStore())
	require.NoError(t, err)

	return Config{
		Addr:            "127.0.0.1:0",
		ShutdownTimeout: time.Second,
		Dependencies: Dependencies{
			Calculator: calc,
			Tariffs:    tariffs,
			Logger:     zerolog.New(zerolog.NewTestWriter(t)),
		},
	}
}

func TestWebAPI_Endpoints(t *testing.T) {
	testServer := httptest.NewServer(ConfigureRouter(testConfig(t)))
	defer testServer.Close()

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		check          func(t *testing.T, body []byte)
	}{
		{
			name:           "Healthz",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				assert.Equal(t, "ok", string(body))
			},
		},
		{
			name:           "ListTariffs",
			method:         http.MethodGet,
			path:           "/api/v1/tariffs",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				res := unmarshalData[[]api.Tariff](t, body)
				require.Len(t, res, 15)
				assert.Equal(t, "C01d", res[0].Code)
			},
		},
		{
			name:           "ListYears",
			method:         http.MethodGet,
			path:           "/api/v1/years",
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				assert.Equal(t, []int{2023, 2024}, unmarshalData[api.Years](t, body).Years)
			},
		},
		{
			name:           "Calculate",
			method:         http.MethodPost,
			path:           "/api/v1/calculate",
			body:           `{"tariffCode":"C02d","yearlyConsumption":3500,"year":2024,"includeMonthly":true,"fixedPrice":3}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				res := unmarshalData[api.Calculation](t, body)
				assert.Equal(t, 2.24, res.Result.AveragePricePerUnit)
				assert.Equal(t, 7847.0, res.Result.TotalCostPerYear)
				assert.Equal(t, 25.0, res.Result.Input.ExchangeRate)
				assert.Len(t, res.MonthlyBreakdown, 12)
				require.NotNil(t, res.Comparison)
				assert.Equal(t, 2653.0, res.Comparison.SavingsPerYear)
				assert.True(t, res.Comparison.IsSpotCheaper)
			},
		},
		{
			name:           "Calculate_UnsupportedYear",
			method:         http.MethodPost,
			path:           "/api/v1/calculate",
			body:           `{"tariffCode":"C02d","yearlyConsumption":3500,"year":2030}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Calculate_OverflowingConsumption",
			method:         http.MethodPost,
			path:           "/api/v1/calculate",
			body:           `{"tariffCode":"C02d","yearlyConsumption":1e308,"year":2024}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Commodity",
			method:         http.MethodPost,
			path:           "/api/v1/commodity",
			body:           `{"pricePerMWh":2000,"standingCharge":50,"months":12,"total":8600}`,
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				res := unmarshalData[api.CommodityEstimate](t, body)
				assert.Equal(t, "consumption", res.Status)
				require.NotNil(t, res.Breakdown.ConsumptionMWh)
				assert.InDelta(t, 4.0, *res.Breakdown.ConsumptionMWh, 1e-9)
			},
		},
		{
			name:           "UnknownRoute",
			method:         http.MethodGet,
			path:           "/api/v1/unknown",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, testServer.URL+tc.path, bytes.NewBufferString(tc.body))
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			if tc.check != nil {
				tc.check(t, body)
			}
		})
	}
}

func TestWebAPI_StartStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := testConfig(t)
	cfg.Dependencies.Logger = zerolog.Nop()
	w := NewWebAPI(cfg)

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func unmarshalData[T any](t *testing.T, data []byte) T {
	t.Helper()
	var response struct {
		Success bool `json:"success"`
		Data    T    `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &response))
	require.True(t, response.Success)
	return response.Data
}
