package tariff

import "github.com/de-tools/spot-atlas/pkg/models/domain"

// DefaultProfiles returns a fresh copy of the standardized hourly curves,
// hours 0..23.
func DefaultProfiles() map[domain.TariffCode][domain.HoursPerDay]float64 {
	return map[domain.TariffCode][domain.HoursPerDay]float64{
		domain.TariffC01d: {
			0.8, 0.7, 0.6, 0.6, 0.6, 0.7,
			1.0, 1.2, 1.1, 0.9, 0.8, 0.9,
			0.9, 0.8, 0.8, 0.9, 1.1, 1.3,
			1.4, 1.3, 1.2, 1.1, 1.0, 0.9,
		},
		domain.TariffC02d: {
			0.7, 0.6, 0.5, 0.5, 0.6, 0.8,
			1.2, 1.4, 1.2, 1.0, 0.9, 1.0,
			1.0, 0.9, 0.9, 1.0, 1.2, 1.5,
			1.6, 1.5, 1.3, 1.2, 1.0, 0.8,
		},
		domain.TariffC03d: {
			0.6, 0.5, 0.5, 0.5, 0.6, 0.9,
			1.3, 1.5, 1.3, 1.1, 1.0, 1.1,
			1.1, 1.0, 1.0, 1.1, 1.3, 1.6,
			1.7, 1.6, 1.4, 1.3, 1.1, 0.9,
		},
		// office hours
		domain.TariffC25d: {
			0.3, 0.2, 0.2, 0.2, 0.3, 0.5,
			0.8, 1.3, 1.5, 1.5, 1.4, 1.3,
			1.2, 1.4, 1.5, 1.4, 1.2, 0.8,
			0.6, 0.5, 0.4, 0.4, 0.3, 0.3,
		},
		// shops and restaurants, 6-20h
		domain.TariffC26d: {
			0.3, 0.2, 0.2, 0.2, 0.3, 0.6,
			1.0, 1.2, 1.3, 1.3, 1.2, 1.3,
			1.4, 1.5, 1.5, 1.4, 1.3, 1.2,
			1.1, 1.0, 0.9, 0.8, 0.5, 0.4,
		},
		domain.TariffC35d: {
			1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
			1.1, 1.2, 1.2, 1.2, 1.2, 1.1,
			1.1, 1.2, 1.2, 1.2, 1.2, 1.1,
			1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
		},
		domain.TariffC45d: {
			0.4, 0.3, 0.3, 0.3, 0.4, 0.7,
			1.2, 1.4, 1.5, 1.5, 1.4, 1.3,
			1.3, 1.4, 1.5, 1.5, 1.4, 1.3,
			1.2, 1.1, 1.0, 0.9, 0.7, 0.5,
		},
		domain.TariffC46d: {
			0.9, 0.9, 0.9, 0.9, 0.9, 1.0,
			1.2, 1.3, 1.3, 1.3, 1.2, 1.2,
			1.2, 1.3, 1.3, 1.3, 1.2, 1.1,
			1.0, 1.0, 1.0, 0.9, 0.9, 0.9,
		},
		domain.TariffC55d: {
			0.5, 0.4, 0.4, 0.4, 0.5, 0.8,
			1.3, 1.5, 1.6, 1.6, 1.5, 1.4,
			1.4, 1.5, 1.6, 1.6, 1.5, 1.4,
			1.3, 1.2, 1.0, 0.8, 0.6, 0.5,
		},
		domain.TariffC56d: {
			1.0, 1.0, 1.0, 1.0, 1.0, 1.1,
			1.3, 1.4, 1.4, 1.4, 1.3, 1.3,
			1.3, 1.4, 1.4, 1.4, 1.3, 1.2,
			1.1, 1.1, 1.0, 1.0, 1.0, 1.0,
		},
		domain.TariffC62d: {
			0.8, 0.8, 0.8, 0.8, 0.8, 0.9,
			1.2, 1.3, 1.4, 1.4, 1.3, 1.2,
			1.2, 1.3, 1.4, 1.4, 1.3, 1.2,
			1.1, 1.0, 0.9, 0.9, 0.8, 0.8,
		},
		// flat
		domain.TariffC63d: {
			1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
			1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
			1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
			1.0, 1.0, 1.0, 1.0, 1.0, 1.0,
		},
		// storage heating, charged during NT
		domain.TariffC01e: {
			2.0, 2.0, 2.0, 2.0, 2.0, 2.0,
			1.0, 0.5, 0.3, 0.3, 0.3, 0.3,
			0.3, 0.3, 0.3, 0.3, 0.3, 0.5,
			0.8, 1.0, 1.2, 1.5, 1.8, 2.0,
		},
		domain.TariffC02e: {
			1.5, 1.5, 1.5, 1.5, 1.5, 1.2,
			1.0, 1.2, 1.1, 0.9, 0.8, 0.9,
			0.9, 0.8, 0.8, 0.9, 1.1, 1.3,
			1.4, 1.5, 1.5, 1.5, 1.5, 1.5,
		},
		domain.TariffC03e: {
			1.8, 1.8, 1.8, 1.8, 1.8, 1.5,
			1.2, 1.0, 0.8, 0.7, 0.7, 0.8,
			0.8, 0.7, 0.7, 0.8, 1.0, 1.2,
			1.5, 1.6, 1.7, 1.7, 1.8, 1.8,
		},
	}
}

func DefaultMetadata() map[domain.TariffCode]domain.TariffMetadata {
	entries := []domain.TariffMetadata{
		meta(domain.TariffC01d, "C01d - Small household", "Flats, small households", domain.CategoryHousehold, "up to 1 800 kWh/year"),
		meta(domain.TariffC02d, "C02d - Common household", "Family houses, average consumption", domain.CategoryHousehold, "1 800 - 4 000 kWh/year"),
		meta(domain.TariffC03d, "C03d - High-consumption household", "Larger houses, electric heating", domain.CategoryHousehold, "over 4 000 kWh/year"),
		meta(domain.TariffC25d, "C25d - Business, office hours", "Offices, 8-17h", domain.CategorySmallBusiness, "up to 50 MWh/year"),
		meta(domain.TariffC26d, "C26d - Business, extended hours", "Shops, restaurants, 6-20h", domain.CategorySmallBusiness, "up to 50 MWh/year"),
		meta(domain.TariffC35d, "C35d - Continuous operation 24/7", "Production, servers, IT infrastructure", domain.CategoryMediumBusiness, "50 - 630 MWh/year"),
		meta(domain.TariffC45d, "C45d - Two-shift operation", "Production 6-22h", domain.CategoryMediumBusiness, "50 - 630 MWh/year"),
		meta(domain.TariffC46d, "C46d - Three-shift operation", "Industry including weekends", domain.CategoryMediumBusiness, "50 - 630 MWh/year"),
		meta(domain.TariffC55d, "C55d - Large production, two shifts", "Industrial production, two shifts", domain.CategoryLargeBusiness, "over 630 MWh/year"),
		meta(domain.TariffC56d, "C56d - Large production, three shifts", "Industrial production, three shifts", domain.CategoryLargeBusiness, "over 630 MWh/year"),
		meta(domain.TariffC62d, "C62d - Continuous industry", "Continuous operation, lower night load", domain.CategoryLargeBusiness, "over 630 MWh/year"),
		meta(domain.TariffC63d, "C63d - Uniform industry", "Constant consumption 24/7", domain.CategoryLargeBusiness, "over 630 MWh/year"),
		meta(domain.TariffC01e, "C01e - Storage heating", "Storage heaters, night tariff", domain.CategorySpecial, "variable"),
		meta(domain.TariffC02e, "C02e - Direct electric heating", "Electric heating, dual tariff VT/NT", domain.CategorySpecial, "variable"),
		meta(domain.TariffC03e, "C03e - Heat pump", "Heat pumps, triple tariff", domain.CategorySpecial, "variable"),
	}

	result := make(map[domain.TariffCode]domain.TariffMetadata, len(entries))
	for _, e := range entries {
		result[e.Code] = e
	}
	return result
}

func meta(code domain.TariffCode, name, description string, category domain.TariffCategory, typical string) domain.TariffMetadata {
	return domain.TariffMetadata{
		Code:               code,
		Name:               name,
		Description:        description,
		Category:           category,
		TypicalConsumption: typical,
	}
}
