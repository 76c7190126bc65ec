package http

// SegmentDTO is one flight segment in an award search request.
type SegmentDTO struct {
	// Origin is the IATA code of the departure airport, or a country or
	// region code known to the reference data (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport, or a country or
	// region code known to the reference data (e.g., "LHR")
	Destination string `json:"destination"`

	// Carrier is the two-letter IATA code of the operating airline
	Carrier string `json:"carrier" example:"AA"`

	// Cabin is the booked cabin: economy, premium_economy, business, first
	Cabin string `json:"cabin" example:"economy"`

	// DistanceMiles is the flown distance. Zero or absent means the
	// distance is computed from airport coordinates.
	DistanceMiles int `json:"distanceMiles,omitempty" example:"3451"`
}

// ValuationEntryDTO is one miles amount to value in a valuation request.
type ValuationEntryDTO struct {
	// FFP is the frequent flyer program code
	FFP string `json:"ffp" example:"AA"`

	// Miles is the award price in raw miles
	Miles int `json:"miles" example:"30000"`
}

// ReloadResponseDTO acknowledges a reference data reload.
type ReloadResponseDTO struct {
	Status string `json:"status" example:"reloaded"`
}
