package domain

import "time"

// RangeEvaluation holds the per-program prices for one contiguous segment
// range. Segment indices are 1-based and inclusive.
type RangeEvaluation struct {
	FromSegment int            `json:"from_segment"`
	ToSegment   int            `json:"to_segment"`
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Prices      []ProgramPrice `json:"prices"`
}

// PartChoice is one part of the cheapest cover: a segment range booked
// through one program.
type PartChoice struct {
	FromSegment int    `json:"from_segment"`
	ToSegment   int    `json:"to_segment"`
	FFPCode     string `json:"ffp"`
	ProgramName string `json:"program"`
	ChartUsed   string `json:"chart_used,omitempty"`
	Miles       int    `json:"miles"`
}

// Optimization is the cheapest partition of the itinerary into contiguous
// parts, each priced by its best program.
type Optimization struct {
	Feasible   bool         `json:"feasible"`
	Parts      []PartChoice `json:"parts,omitempty"`
	TotalMiles int          `json:"total_miles,omitempty"`

	// Reason is set when no combination of priceable ranges covers the
	// itinerary.
	Reason string `json:"reason,omitempty"`
}

// AwardSearchResult is the full outcome of one award search: whole-itinerary
// prices per program, every evaluated sub-range, and the cheapest cover.
// It doubles as the stored search context.
type AwardSearchResult struct {
	SearchID     string            `json:"search_id"`
	CreatedAt    time.Time         `json:"created_at"`
	Itinerary    Itinerary         `json:"itinerary"`
	Overall      []ProgramPrice    `json:"overall"`
	Ranges       []RangeEvaluation `json:"ranges,omitempty"`
	Optimization *Optimization     `json:"optimization,omitempty"`
}

// EarningRequest asks how many miles a flown segment earns across programs.
type EarningRequest struct {
	Carrier       string `json:"carrier"`
	CabinClass    Cabin  `json:"cabin"`
	BookingCode   string `json:"booking_code"`
	DistanceMiles int    `json:"distance_miles"`
}

// EarningResult is one program's accrual for a flown segment.
type EarningResult struct {
	FFPCode        string  `json:"ffp"`
	ProgramName    string  `json:"program"`
	Miles          int     `json:"miles"`
	EarningRate    float64 `json:"earning_rate"`
	MinimumApplied bool    `json:"minimum_applied"`
	FamilyPooling  bool    `json:"family_pooling"`
	Expiration     string  `json:"expiration"`
}

// ValuationEntry is one miles amount to value against a program's
// cents-per-point figure.
type ValuationEntry struct {
	FFPCode string `json:"ffp"`
	Miles   int    `json:"miles"`
}

// ValuationRequest compares the cash value of award prices, including the
// carrier-imposed surcharge paid alongside the miles.
type ValuationRequest struct {
	Entries      []ValuationEntry `json:"entries"`
	SurchargeUSD float64          `json:"surcharge_usd"`
}

// ValuationComparison is the cash-equivalent view of one award price.
type ValuationComparison struct {
	FFPCode       string  `json:"ffp"`
	ProgramName   string  `json:"program"`
	Miles         int     `json:"miles"`
	CentsPerPoint float64 `json:"cents_per_point"`
	MilesValueUSD float64 `json:"miles_value_usd"`
	TotalCostUSD  float64 `json:"total_cost_usd"`
}
