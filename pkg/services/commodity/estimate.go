package commodity

type Status string

const (
	StatusCost        Status = "cost"
	StatusConsumption Status = "consumption"
	StatusNeedInput   Status = "need_input"
)

const defaultMonths = 12

// Input carries the known figures of an invoice. Nil means unknown.
type Input struct {
	ConsumptionMWh *float64
	PricePerMWh    *float64 // CZK/MWh
	StandingCharge *float64 // CZK per month
	Months         *int
	Total          *float64 // CZK
}

type Breakdown struct {
	ConsumptionMWh *float64
	PricePerMWh    *float64
	StandingCharge float64
	Months         int
	Total          *float64
}

type Estimate struct {
	Status    Status
	Result    float64
	Breakdown Breakdown
	Missing   []string
}

// Calculate computes the commodity cost when consumption and price are known,
// or derives the consumption from a total and a price. Otherwise it reports
// which inputs are missing.
func Calculate(in Input) Estimate {
	b := Breakdown{
		ConsumptionMWh: in.ConsumptionMWh,
		PricePerMWh:    in.PricePerMWh,
		Months:         defaultMonths,
		Total:          in.Total,
	}
	if in.StandingCharge != nil {
		b.StandingCharge = *in.StandingCharge
	}
	if in.Months != nil && *in.Months != 0 {
		b.Months = *in.Months
	}
	fixed := b.StandingCharge * float64(b.Months)

	if known(in.ConsumptionMWh) && known(in.PricePerMWh) {
		total := *in.ConsumptionMWh**in.PricePerMWh + fixed
		b.Total = &total
		return Estimate{Status: StatusCost, Result: total, Breakdown: b}
	}

	if known(in.Total) && known(in.PricePerMWh) {
		variable := *in.Total - fixed
		if variable > 0 && *in.PricePerMWh > 0 {
			consumption := variable / *in.PricePerMWh
			b.ConsumptionMWh = &consumption
			return Estimate{Status: StatusConsumption, Result: *in.Total, Breakdown: b}
		}
	}

	var missing []string
	if !known(in.ConsumptionMWh) && !known(in.Total) {
		missing = append(missing, "yearly consumption or total payment")
	}
	if !known(in.PricePerMWh) {
		missing = append(missing, "commodity price in CZK/MWh or CZK/kWh")
	}
	if in.Months == nil {
		missing = append(missing, "period in months")
	}
	if in.StandingCharge == nil {
		missing = append(missing, "monthly standing charge")
	}
	return Estimate{Status: StatusNeedInput, Breakdown: b, Missing: missing}
}

func known(v *float64) bool {
	return v != nil && *v != 0
}
