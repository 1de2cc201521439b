package domain

import "fmt"

// TariffCode identifies a standardized consumption profile (TDD).
type TariffCode string

const (
	TariffC01d TariffCode = "C01d"
	TariffC02d TariffCode = "C02d"
	TariffC03d TariffCode = "C03d"

	TariffC25d TariffCode = "C25d"
	TariffC26d TariffCode = "C26d"

	TariffC35d TariffCode = "C35d"
	TariffC45d TariffCode = "C45d"
	TariffC46d TariffCode = "C46d"

	TariffC55d TariffCode = "C55d"
	TariffC56d TariffCode = "C56d"
	TariffC62d TariffCode = "C62d"
	TariffC63d TariffCode = "C63d"

	TariffC01e TariffCode = "C01e"
	TariffC02e TariffCode = "C02e"
	TariffC03e TariffCode = "C03e"
)

// DefaultTariff substitutes any code missing from a profile registry.
const DefaultTariff = TariffC02d

// TariffCodes lists the enumeration in its canonical order.
var TariffCodes = []TariffCode{
	TariffC01d, TariffC02d, TariffC03d,
	TariffC25d, TariffC26d,
	TariffC35d, TariffC45d, TariffC46d,
	TariffC55d, TariffC56d, TariffC62d, TariffC63d,
	TariffC01e, TariffC02e, TariffC03e,
}

func (c TariffCode) Valid() bool {
	for _, code := range TariffCodes {
		if code == c {
			return true
		}
	}
	return false
}

// ParseTariffCode accepts untyped input at the system boundary.
func ParseTariffCode(s string) (TariffCode, error) {
	code := TariffCode(s)
	if !code.Valid() {
		return "", fmt.Errorf("unknown tariff code %q", s)
	}
	return code, nil
}

type TariffCategory string

const (
	CategoryHousehold      TariffCategory = "household"
	CategorySmallBusiness  TariffCategory = "small-business"
	CategoryMediumBusiness TariffCategory = "medium-business"
	CategoryLargeBusiness  TariffCategory = "large-business"
	CategorySpecial        TariffCategory = "special"
)

// HoursPerDay is the length of every hourly curve.
const HoursPerDay = 24

// TariffProfile is a relative hourly consumption curve. Only ratios between
// the weights matter.
type TariffProfile struct {
	Code          TariffCode
	HourlyWeights [HoursPerDay]float64
}

type TariffMetadata struct {
	Code               TariffCode
	Name               string
	Description        string
	Category           TariffCategory
	TypicalConsumption string
}
