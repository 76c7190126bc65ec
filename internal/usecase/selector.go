package usecase

import (
	"github.com/ffp-planner/award-pricing-engine/internal/domain"
)

// SelectChart walks the program's owned charts and returns the one that
// prices a flight on carrier between origin and destination. The cascade is
// a strict priority order, first success wins:
//
//  1. self chart, when the carrier is one of the program's own
//  2. special overwrite chart, when its route restriction matches
//  3. domestic overwrite chart, when the route stays in one country
//  4. specific-partner chart naming the carrier
//  5. route-restricted all-partners chart whose restriction matches
//  6. keyless all-partners catch-all chart
//
// A nil chart with a nil error means no chart applies; the caller renders
// that as a per-program outcome, not a failure. A non-nil error is always a
// configuration inconsistency.
func SelectChart(ref *domain.ReferenceData, ffpCode, carrier, origin, destination string) (*domain.Chart, error) {
	program, ok := ref.Programs[ffpCode]
	if !ok {
		return nil, domain.NewUnknownProgramError(ffpCode)
	}
	owned := ref.ChartsOwnedBy(ffpCode)
	isSelf := program.IsSelf(carrier)

	// Partner redemptions require a partnership; without one the program
	// has no chart for this carrier at all.
	if !isSelf && !contains(program.RedeemPartners, carrier) {
		return nil, nil
	}

	category := ref.RouteCategoryOf(origin, destination)

	if isSelf {
		for _, chart := range owned {
			if chart.AppliesTo != domain.AppliesSelf || chart.SpecialOverwrite || chart.DomesticOverwrite || chart.AppliesToMultiple {
				continue
			}
			if routeAllowed(ref, chart, origin, destination, category) {
				return chart, nil
			}
		}
	}

	special, err := overwriteChart(owned, ffpCode, func(c *domain.Chart) bool { return c.SpecialOverwrite })
	if err != nil {
		return nil, err
	}
	if special != nil && chartCoversCarrier(&program, special, carrier, isSelf) &&
		routeSpecificMatches(ref, special, origin, destination) {
		return special, nil
	}

	domestic, err := overwriteChart(owned, ffpCode, func(c *domain.Chart) bool { return c.DomesticOverwrite })
	if err != nil {
		return nil, err
	}
	if domestic != nil && chartCoversCarrier(&program, domestic, carrier, isSelf) &&
		ref.IsDomestic(origin, destination) {
		return domestic, nil
	}

	if !isSelf {
		for _, chart := range owned {
			if chart.AppliesTo != domain.AppliesSpecific || chart.SpecialOverwrite || chart.DomesticOverwrite || chart.AppliesToMultiple {
				continue
			}
			if !chart.CoversPartner(carrier) {
				continue
			}
			if routeAllowed(ref, chart, origin, destination, category) {
				return chart, nil
			}
		}
		// Route-restricted all-partners charts take precedence over the
		// keyless catch-all regardless of file order.
		for _, restricted := range []bool{true, false} {
			for _, chart := range owned {
				if chart.AppliesTo != domain.AppliesAllPartners || chart.SpecialOverwrite || chart.DomesticOverwrite || chart.AppliesToMultiple {
					continue
				}
				if routeRestricted(chart) != restricted {
					continue
				}
				if routeAllowed(ref, chart, origin, destination, category) {
					return chart, nil
				}
			}
		}
	}
	return nil, nil
}

// routeRestricted reports whether the chart declares any route restriction.
func routeRestricted(chart *domain.Chart) bool {
	return chart.HasRouteCategories || len(chart.RouteSpecific) > 0
}

// SelectMultiChart finds the program's whole-itinerary chart used for
// cumulative pricing of multi-carrier itineraries.
func SelectMultiChart(ref *domain.ReferenceData, ffpCode, origin, destination string) (*domain.Chart, error) {
	if _, ok := ref.Programs[ffpCode]; !ok {
		return nil, domain.NewUnknownProgramError(ffpCode)
	}
	category := ref.RouteCategoryOf(origin, destination)
	for _, chart := range ref.ChartsOwnedBy(ffpCode) {
		if !chart.AppliesToMultiple {
			continue
		}
		if routeAllowed(ref, chart, origin, destination, category) {
			return chart, nil
		}
	}
	return nil, nil
}

// overwriteChart returns the program's single chart matching pick. Two
// matches mean the corpus slipped past load validation; treat as fatal.
func overwriteChart(owned []*domain.Chart, ffpCode string, pick func(*domain.Chart) bool) (*domain.Chart, error) {
	var found *domain.Chart
	for _, chart := range owned {
		if !pick(chart) {
			continue
		}
		if found != nil {
			return nil, domain.NewConfigError("chart "+chart.Key,
				"program %s declares more than one overwrite chart", ffpCode)
		}
		found = chart
	}
	return found, nil
}

// chartCoversCarrier checks a chart's applicability scope against the
// carrier.
func chartCoversCarrier(program *domain.Program, chart *domain.Chart, carrier string, isSelf bool) bool {
	switch chart.AppliesTo {
	case domain.AppliesSelf:
		return isSelf
	case domain.AppliesSpecific:
		return chart.CoversPartner(carrier)
	case domain.AppliesAllPartners:
		return isSelf || contains(program.RedeemPartners, carrier)
	default:
		return false
	}
}

// routeAllowed applies a chart's route restrictions: the route-category gate
// and, when declared, the explicit route_specific pairs.
func routeAllowed(ref *domain.ReferenceData, chart *domain.Chart, origin, destination, category string) bool {
	if !chart.CoversRouteCategory(category) {
		return false
	}
	if len(chart.RouteSpecific) > 0 {
		return routeSpecificMatches(ref, chart, origin, destination)
	}
	return true
}

// routeSpecificMatches resolves both endpoints through the chart's zone
// system and checks the explicit pair list. Unresolvable endpoints never
// match.
func routeSpecificMatches(ref *domain.ReferenceData, chart *domain.Chart, origin, destination string) bool {
	if len(chart.RouteSpecific) == 0 {
		return false
	}
	system, ok := ref.ZoneSystems[chart.ZoneSystemName]
	if !ok {
		return false
	}
	fromZone, ok := system.ZoneOf(ref.LocationOf(origin))
	if !ok {
		return false
	}
	toZone, ok := system.ZoneOf(ref.LocationOf(destination))
	if !ok {
		return false
	}
	for i := range chart.RouteSpecific {
		if chart.RouteSpecific[i].Matches(fromZone, toZone) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
