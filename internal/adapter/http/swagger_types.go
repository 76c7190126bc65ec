// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate proper documentation.
package http

// SwaggerAwardSearchResult represents the award search response for swagger documentation.
// @Description Award search results: whole-itinerary prices per program, evaluated sub-ranges, and the cheapest booking combination
type SwaggerAwardSearchResult struct {
	// SearchID is a unique identifier for this search
	SearchID string `json:"search_id" example:"8b7f2c1e-3d94-4a6b-9d21-5f0c8a7e6b3a"`

	// CreatedAt is the search timestamp
	CreatedAt string `json:"created_at" example:"2026-03-01T12:00:00Z"`

	// Overall contains the whole-itinerary price per program, cheapest first
	Overall []SwaggerProgramPrice `json:"overall"`

	// Ranges contains the per-sub-range price evaluations (multi-segment searches only)
	Ranges []SwaggerRangeEvaluation `json:"ranges,omitempty"`

	// Optimization is the cheapest partition of the itinerary (multi-segment searches only)
	Optimization *SwaggerOptimization `json:"optimization,omitempty"`
}

// SwaggerProgramPrice is one program's price for a route or itinerary.
// @Description One program's award price
type SwaggerProgramPrice struct {
	// ProgramName is the display name of the frequent flyer program
	ProgramName string `json:"program" example:"AAdvantage"`

	// FFPCode is the program code
	FFPCode string `json:"ffp" example:"AA"`

	// ChartUsed is the key of the award chart that priced the route
	ChartUsed string `json:"chart_used,omitempty" example:"AA_partner"`

	// Miles is the outcome: a number of miles, the literal "Dynamic", or an
	// error string such as "No applicable award chart"
	Miles interface{} `json:"miles" swaggertype:"string" example:"30000"`
}

// SwaggerRangeEvaluation holds the prices for one contiguous segment range.
// @Description Prices for one contiguous sub-range of the itinerary
type SwaggerRangeEvaluation struct {
	// FromSegment is the 1-based first segment of the range (inclusive)
	FromSegment int `json:"from_segment" example:"1"`

	// ToSegment is the 1-based last segment of the range (inclusive)
	ToSegment int `json:"to_segment" example:"2"`

	// Origin is the first segment's origin
	Origin string `json:"origin" example:"JFK"`

	// Destination is the last segment's destination
	Destination string `json:"destination" example:"LAX"`

	// Prices contains every program's outcome for the range, cheapest first
	Prices []SwaggerProgramPrice `json:"prices"`
}

// SwaggerOptimization is the cheapest partition of the itinerary.
// @Description Cheapest booking combination covering the whole itinerary
type SwaggerOptimization struct {
	// Feasible reports whether any combination of priceable ranges covers
	// the itinerary
	Feasible bool `json:"feasible" example:"true"`

	// Parts are the chosen ranges, in travel order
	Parts []SwaggerPartChoice `json:"parts,omitempty"`

	// TotalMiles is the summed cost of the chosen parts
	TotalMiles int `json:"total_miles,omitempty" example:"30000"`

	// Reason explains infeasibility
	Reason string `json:"reason,omitempty" example:"no valid combination"`
}

// SwaggerPartChoice is one booked part of the cheapest combination.
// @Description One part of the cheapest booking combination
type SwaggerPartChoice struct {
	// FromSegment is the 1-based first segment of the part (inclusive)
	FromSegment int `json:"from_segment" example:"1"`

	// ToSegment is the 1-based last segment of the part (inclusive)
	ToSegment int `json:"to_segment" example:"2"`

	// FFPCode is the program to book this part through
	FFPCode string `json:"ffp" example:"AA"`

	// ProgramName is the program's display name
	ProgramName string `json:"program" example:"AAdvantage"`

	// ChartUsed is the award chart that priced the part
	ChartUsed string `json:"chart_used,omitempty" example:"AA_domestic"`

	// Miles is the part's price in raw miles
	Miles int `json:"miles" example:"7500"`
}

// SwaggerEarningResult is one program's accrual for a flown segment.
// @Description Miles earned in one program
type SwaggerEarningResult struct {
	// FFPCode is the program code
	FFPCode string `json:"ffp" example:"AA"`

	// ProgramName is the program's display name
	ProgramName string `json:"program" example:"AAdvantage"`

	// Miles is the earned amount after the per-rule minimum
	Miles int `json:"miles" example:"3451"`

	// EarningRate is the rule's rate applied to the flown distance
	EarningRate float64 `json:"earning_rate" example:"1.0"`

	// MinimumApplied reports whether the rule's floor lifted the amount
	MinimumApplied bool `json:"minimum_applied" example:"false"`

	// FamilyPooling reports whether the program pools miles across a household
	FamilyPooling bool `json:"family_pooling" example:"false"`

	// Expiration is the program's symbolic expiration policy
	Expiration string `json:"expiration" example:"24_months_inactivity"`
}

// SwaggerValuationComparison is the cash-equivalent view of one award price.
// @Description Cash value of one award price
type SwaggerValuationComparison struct {
	// FFPCode is the program code
	FFPCode string `json:"ffp" example:"UA"`

	// ProgramName is the program's display name
	ProgramName string `json:"program" example:"MileagePlus"`

	// Miles is the award price in raw miles
	Miles int `json:"miles" example:"30000"`

	// CentsPerPoint is the program's valuation in cents per mile
	CentsPerPoint float64 `json:"cents_per_point" example:"1.2"`

	// MilesValueUSD is the cash value of the miles in dollars
	MilesValueUSD float64 `json:"miles_value_usd" example:"360.00"`

	// TotalCostUSD is the miles value plus the surcharge
	TotalCostUSD float64 `json:"total_cost_usd" example:"371.20"`
}

// SwaggerErrorResponse represents an error response.
// @Description Error response from the API
type SwaggerErrorResponse struct {
	// Success is always false for error responses
	Success bool `json:"success" example:"false"`

	// Error contains error details
	Error SwaggerErrorDetail `json:"error"`
}

// SwaggerErrorDetail contains structured error information.
// @Description Error details
type SwaggerErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
