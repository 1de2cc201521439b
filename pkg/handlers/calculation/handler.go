package calculation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/de-tools/spot-atlas/pkg/adapters"
	"github.com/de-tools/spot-atlas/pkg/models/api"
	"github.com/de-tools/spot-atlas/pkg/models/domain"
	"github.com/de-tools/spot-atlas/pkg/services/commodity"
	"github.com/de-tools/spot-atlas/pkg/services/spot"
	"github.com/rs/zerolog"
)

const maxBodyBytes = 1 << 20

type Calculator interface {
	Years(ctx context.Context) []int
	Run(ctx context.Context, req spot.Request) (domain.Calculation, error)
}

type TariffLister interface {
	ListTariffs(ctx context.Context) []domain.TariffMetadata
}

type Handler struct {
	calculator Calculator
	tariffs    TariffLister
}

func NewHandler(calculator Calculator, tariffs TariffLister) *Handler {
	return &Handler{
		calculator: calculator,
		tariffs:    tariffs,
	}
}

func (h *Handler) ListTariffs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(ctx, w, http.StatusOK, api.Response{
		Success: true,
		Data:    adapters.MapTariffsDomainToApi(h.tariffs.ListTariffs(ctx)),
	})
}

func (h *Handler) ListYears(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(ctx, w, http.StatusOK, api.Response{
		Success: true,
		Data:    api.Years{Years: h.calculator.Years(ctx)},
	})
}

func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.CalculationRequest
	if err := decode(w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	spotReq, details := h.validate(ctx, req)
	if len(details) > 0 {
		writeError(ctx, w, http.StatusBadRequest, "invalid input", details...)
		return
	}

	calc, err := h.calculator.Run(ctx, spotReq)
	if err != nil {
		if errors.Is(err, spot.ErrInvalidInput) || errors.Is(err, spot.ErrUnsupportedYear) {
			writeError(ctx, w, http.StatusBadRequest, "invalid input", err.Error())
			return
		}
		logger.Error().
			Err(err).
			Str("tariff", req.TariffCode).
			Int("year", req.Year).
			Msg("calculation failed")
		writeError(ctx, w, http.StatusInternalServerError, "calculation failed")
		return
	}

	writeJSON(ctx, w, http.StatusOK, api.Response{
		Success: true,
		Data:    adapters.MapCalculationDomainToApi(calc),
	})
}

func (h *Handler) Commodity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.CommodityRequest
	if err := decode(w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	estimate := commodity.Calculate(adapters.MapCommodityRequestApiToService(req))
	writeJSON(ctx, w, http.StatusOK, api.Response{
		Success: true,
		Data:    adapters.MapCommodityEstimateServiceToApi(estimate),
	})
}

func (h *Handler) validate(ctx context.Context, req api.CalculationRequest) (spot.Request, []string) {
	var details []string

	code, err := domain.ParseTariffCode(req.TariffCode)
	if err != nil {
		details = append(details, err.Error())
	}
	if req.YearlyConsumption <= 0 {
		details = append(details, "yearlyConsumption must be greater than 0")
	}
	if years := h.calculator.Years(ctx); !slices.Contains(years, req.Year) {
		details = append(details, fmt.Sprintf("year must be one of %v", years))
	}

	var rate float64
	if req.ExchangeRate != nil {
		rate = *req.ExchangeRate
		if rate <= 0 {
			details = append(details, "exchangeRate must be greater than 0")
		}
	}
	if req.FixedPrice != nil && *req.FixedPrice <= 0 {
		details = append(details, "fixedPrice must be greater than 0")
	}

	return spot.Request{
		Input: domain.CalculationInput{
			TariffCode:        code,
			YearlyConsumption: req.YearlyConsumption,
			Year:              req.Year,
			ExchangeRate:      rate,
		},
		IncludeMonthly: req.IncludeMonthly,
		FixedPrice:     req.FixedPrice,
	}, details
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeError(ctx context.Context, w http.ResponseWriter, status int, msg string, details ...string) {
	writeJSON(ctx, w, status, api.Response{
		Success: false,
		Error:   msg,
		Details: details,
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body api.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
