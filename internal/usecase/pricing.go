package usecase

import (
	"github.com/ffp-planner/award-pricing-engine/internal/domain"
)

// PriceRoute prices one route on a selected chart. The outcome is always a
// value: a miles figure, the dynamic marker, or a reason the chart cannot
// price this route.
func PriceRoute(ref *domain.ReferenceData, chart *domain.Chart, origin, destination string, cabin domain.Cabin, distance int) domain.PriceOutcome {
	if chart == nil {
		return domain.ErrorOutcome(domain.ReasonNoChart)
	}

	switch chart.Type {
	case domain.ChartDynamic:
		return domain.DynamicOutcome()

	case domain.ChartDomesticOverwrite:
		return priceDomesticChart(ref, chart, origin, cabin)

	case domain.ChartDistanceBased:
		brackets, ok := chart.DistanceTables[cabin]
		if !ok {
			return domain.ErrorOutcome(domain.ReasonCabinUnavailable)
		}
		return priceBrackets(distance, brackets)

	case domain.ChartZoneBased:
		if out, done := priceSystemDomestic(ref, chart, origin, destination, cabin); done {
			return out
		}
		pairs, ok := chart.ZoneTables[cabin]
		if !ok {
			return domain.ErrorOutcome(domain.ReasonCabinUnavailable)
		}
		return priceZones(ref, chart, origin, destination, pairs)

	case domain.ChartHybridDistanceZone:
		if out, done := priceSystemDomestic(ref, chart, origin, destination, cabin); done {
			return out
		}
		table, ok := chart.HybridTables[cabin]
		if !ok {
			return domain.ErrorOutcome(domain.ReasonCabinUnavailable)
		}
		return priceHybrid(ref, chart, table, origin, destination, distance)

	default:
		return domain.ErrorOutcome(domain.ReasonWrongChart)
	}
}

// priceDomesticChart handles a domestic-overwrite chart: the per-country
// exception beats the default rate.
func priceDomesticChart(ref *domain.ReferenceData, chart *domain.Chart, origin string, cabin domain.Cabin) domain.PriceOutcome {
	country := ref.LocationOf(origin).Country
	if rates, ok := chart.DomesticExceptions[country]; ok {
		if miles, ok := rates[cabin]; ok {
			return domain.MilesOutcome(miles)
		}
	}
	if miles, ok := chart.DomesticDefault[cabin]; ok {
		return domain.MilesOutcome(miles)
	}
	return domain.ErrorOutcome(domain.ReasonCabinUnavailable)
}

// priceSystemDomestic applies a zone system's domestic override when the
// route stays in one country: Hawaii rate for routes touching Hawaii, then
// the per-country exception, then the system default. done is false when the
// system declares no override or the route is not domestic, in which case
// the normal lookup proceeds.
func priceSystemDomestic(ref *domain.ReferenceData, chart *domain.Chart, origin, destination string, cabin domain.Cabin) (domain.PriceOutcome, bool) {
	system, ok := ref.ZoneSystems[chart.ZoneSystemName]
	if !ok || system.Domestic == nil {
		return domain.PriceOutcome{}, false
	}
	if !ref.IsDomestic(origin, destination) {
		return domain.PriceOutcome{}, false
	}

	if touchesHawaii(ref, origin) || touchesHawaii(ref, destination) {
		if miles, ok := system.Domestic.HawaiiRate(cabin); ok {
			return domain.MilesOutcome(miles), true
		}
	}
	country := ref.LocationOf(origin).Country
	if miles, ok := system.Domestic.ExceptionRate(country, cabin); ok {
		return domain.MilesOutcome(miles), true
	}
	if miles, ok := system.Domestic.DefaultRate(cabin); ok {
		return domain.MilesOutcome(miles), true
	}
	return domain.ErrorOutcome(domain.ReasonCabinUnavailable), true
}

// touchesHawaii reports whether the location sits in the Hawaii region.
func touchesHawaii(ref *domain.ReferenceData, code string) bool {
	return ref.LocationOf(code).Region == "US-HI" || code == "HAWAII"
}

func priceBrackets(distance int, brackets []domain.DistanceBracket) domain.PriceOutcome {
	if miles, ok := domain.BracketLookup(distance, brackets); ok {
		return domain.MilesOutcome(miles)
	}
	if beyondBrackets(distance, brackets) {
		return domain.ErrorOutcome(domain.ReasonDistanceExceeded)
	}
	return domain.ErrorOutcome(domain.ReasonRouteUndefined)
}

// beyondBrackets reports whether the distance exceeds every declared bracket.
func beyondBrackets(distance int, brackets []domain.DistanceBracket) bool {
	max := -1
	for i := range brackets {
		if brackets[i].MaxMiles > max {
			max = brackets[i].MaxMiles
		}
	}
	return distance > max
}

func priceZones(ref *domain.ReferenceData, chart *domain.Chart, origin, destination string, pairs []domain.ZonePair) domain.PriceOutcome {
	system, ok := ref.ZoneSystems[chart.ZoneSystemName]
	if !ok {
		return domain.ErrorOutcome(domain.ReasonWrongChart)
	}
	fromZone, ok := system.ZoneOf(ref.LocationOf(origin))
	if !ok {
		return domain.ErrorOutcome(domain.ReasonRouteUndefined)
	}
	toZone, ok := system.ZoneOf(ref.LocationOf(destination))
	if !ok {
		return domain.ErrorOutcome(domain.ReasonRouteUndefined)
	}
	if miles, ok := domain.PairLookup(fromZone, toZone, pairs); ok {
		return domain.MilesOutcome(miles)
	}
	return domain.ErrorOutcome(domain.ReasonRouteUndefined)
}

// priceHybrid consults the distance brackets and zone pairs in the chart's
// declared priority, falling through to the other table on a miss.
func priceHybrid(ref *domain.ReferenceData, chart *domain.Chart, table domain.HybridTable, origin, destination string, distance int) domain.PriceOutcome {
	distanceLookup := func() (domain.PriceOutcome, bool) {
		if chart.DistanceThreshold > 0 && distance > chart.DistanceThreshold {
			return domain.PriceOutcome{}, false
		}
		if miles, ok := domain.BracketLookup(distance, table.Distance); ok {
			return domain.MilesOutcome(miles), true
		}
		return domain.PriceOutcome{}, false
	}
	zoneLookup := func() (domain.PriceOutcome, bool) {
		out := priceZones(ref, chart, origin, destination, table.Zones)
		return out, out.IsMiles()
	}

	first, second := distanceLookup, zoneLookup
	if chart.Priority == domain.ZoneFirst {
		first, second = zoneLookup, distanceLookup
	}
	if out, ok := first(); ok {
		return out
	}
	if out, ok := second(); ok {
		return out
	}
	if beyondBrackets(distance, table.Distance) && len(table.Zones) == 0 {
		return domain.ErrorOutcome(domain.ReasonDistanceExceeded)
	}
	return domain.ErrorOutcome(domain.ReasonRouteUndefined)
}

// PriceForProgram runs the full single-route pipeline for one program:
// chart selection, then pricing.
func PriceForProgram(ref *domain.ReferenceData, ffpCode, carrier, origin, destination string, cabin domain.Cabin, distance int) (domain.ProgramPrice, error) {
	program, ok := ref.Programs[ffpCode]
	if !ok {
		return domain.ProgramPrice{}, domain.NewUnknownProgramError(ffpCode)
	}
	price := domain.ProgramPrice{
		ProgramName: program.Name,
		FFPCode:     ffpCode,
	}

	chart, err := SelectChart(ref, ffpCode, carrier, origin, destination)
	if err != nil {
		return domain.ProgramPrice{}, err
	}
	if chart == nil {
		price.Outcome = domain.ErrorOutcome(domain.ReasonNoChart)
		return price, nil
	}
	price.ChartUsed = chart.Key
	price.Outcome = PriceRoute(ref, chart, origin, destination, cabin, distance)
	return price, nil
}

// PriceAllPrograms prices one route under every program reachable from the
// carrier, sorted for display.
func PriceAllPrograms(ref *domain.ReferenceData, carrier, origin, destination string, cabin domain.Cabin, distance int) ([]domain.ProgramPrice, error) {
	programs, err := ProgramsForCarrier(ref, carrier, domain.DirectionRedeem)
	if err != nil {
		return nil, err
	}
	prices := make([]domain.ProgramPrice, 0, len(programs))
	for _, ffpCode := range programs {
		price, err := PriceForProgram(ref, ffpCode, carrier, origin, destination, cabin, distance)
		if err != nil {
			return nil, err
		}
		prices = append(prices, price)
	}
	domain.SortProgramPrices(prices)
	return prices, nil
}
