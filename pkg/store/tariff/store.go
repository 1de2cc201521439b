package tariff

import (
	"context"
	"fmt"
	"math"

	"github.com/de-tools/spot-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Store resolves tariff codes to hourly consumption curves.
type Store interface {
	// Resolve returns the profile for code. When the code is missing from the
	// registry the default profile is returned instead and ok is false.
	Resolve(ctx context.Context, code domain.TariffCode) (profile domain.TariffProfile, ok bool)
	// ListTariffs returns the metadata of every known code in canonical order.
	ListTariffs(ctx context.Context) []domain.TariffMetadata
}

type tariffStore struct {
	profiles map[domain.TariffCode][domain.HoursPerDay]float64
	metadata map[domain.TariffCode]domain.TariffMetadata
	fallback domain.TariffCode
}

// NewStore builds a registry from explicit tables. The fallback code must be
// present in profiles.
func NewStore(
	profiles map[domain.TariffCode][domain.HoursPerDay]float64,
	metadata map[domain.TariffCode]domain.TariffMetadata,
	fallback domain.TariffCode,
) (Store, error) {
	if _, ok := profiles[fallback]; !ok {
		return nil, fmt.Errorf("fallback tariff %q has no profile", fallback)
	}
	for code, weights := range profiles {
		for h, w := range weights {
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("tariff %q: non-finite weight %v at hour %d", code, w, h)
			}
			if w < 0 {
				return nil, fmt.Errorf("tariff %q: negative weight %v at hour %d", code, w, h)
			}
		}
	}
	if metadata == nil {
		metadata = map[domain.TariffCode]domain.TariffMetadata{}
	}
	return &tariffStore{
		profiles: profiles,
		metadata: metadata,
		fallback: fallback,
	}, nil
}

// NewDefaultStore returns the registry of the standardized profiles.
func NewDefaultStore() Store {
	s, err := NewStore(DefaultProfiles(), DefaultMetadata(), domain.DefaultTariff)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *tariffStore) Resolve(ctx context.Context, code domain.TariffCode) (domain.TariffProfile, bool) {
	if weights, ok := s.profiles[code]; ok {
		return domain.TariffProfile{Code: code, HourlyWeights: weights}, true
	}

	zerolog.Ctx(ctx).Warn().
		Str("tariff", string(code)).
		Str("fallback", string(s.fallback)).
		Msg("tariff profile not found, using fallback")

	return domain.TariffProfile{Code: s.fallback, HourlyWeights: s.profiles[s.fallback]}, false
}

func (s *tariffStore) ListTariffs(_ context.Context) []domain.TariffMetadata {
	result := make([]domain.TariffMetadata, 0, len(domain.TariffCodes))
	for _, code := range domain.TariffCodes {
		if _, ok := s.profiles[code]; !ok {
			continue
		}
		md, ok := s.metadata[code]
		if !ok {
			md = domain.TariffMetadata{Code: code, Name: string(code)}
		}
		result = append(result, md)
	}
	return result
}
