// Package http provides the HTTP handler layer for the award pricing API.
package http

import (
	"github.com/ffp-planner/award-pricing-engine/internal/domain"
)

// ToDomainItinerary converts a validated SearchAwardsRequest to a
// domain.Itinerary. Cabins were already checked by Validate, so an
// unparseable value falls back to economy.
func ToDomainItinerary(req *SearchAwardsRequest) domain.Itinerary {
	it := domain.Itinerary{
		Segments: make([]domain.Segment, len(req.Segments)),
	}
	for i, s := range req.Segments {
		cabin, err := domain.ParseCabin(s.Cabin)
		if err != nil {
			cabin = domain.CabinEconomy
		}
		it.Segments[i] = domain.Segment{
			Origin:        s.Origin,
			Destination:   s.Destination,
			Carrier:       s.Carrier,
			Cabin:         cabin,
			DistanceMiles: s.DistanceMiles,
		}
	}
	return it
}

// ToDomainEarningRequest converts a validated CalculateEarningsRequest to a
// domain.EarningRequest.
func ToDomainEarningRequest(req *CalculateEarningsRequest) domain.EarningRequest {
	cabin, err := domain.ParseCabin(req.CabinClass)
	if err != nil {
		cabin = domain.CabinEconomy
	}
	return domain.EarningRequest{
		Carrier:       req.Carrier,
		CabinClass:    cabin,
		BookingCode:   req.BookingCode,
		DistanceMiles: req.DistanceMiles,
	}
}

// ToDomainValuationRequest converts a validated CompareValuationsRequest to a
// domain.ValuationRequest.
func ToDomainValuationRequest(req *CompareValuationsRequest) domain.ValuationRequest {
	entries := make([]domain.ValuationEntry, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = domain.ValuationEntry{
			FFPCode: e.FFP,
			Miles:   e.Miles,
		}
	}
	return domain.ValuationRequest{
		Entries:      entries,
		SurchargeUSD: req.SurchargeUSD,
	}
}
