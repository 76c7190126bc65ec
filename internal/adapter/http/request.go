// Package http provides the HTTP handler layer for the award pricing API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ffp-planner/award-pricing-engine/internal/domain"
)

// SearchAwardsRequest represents the request body for an award search.
type SearchAwardsRequest struct {
	// Segments are the flight segments of the itinerary, in travel order
	Segments []SegmentDTO `json:"segments"`
}

// CalculateEarningsRequest represents the request body for earning calculation.
type CalculateEarningsRequest struct {
	// Carrier is the two-letter IATA code of the operating airline
	Carrier string `json:"carrier" example:"AA"`

	// CabinClass is the booked cabin: economy, premium_economy, business, first
	CabinClass string `json:"cabinClass" example:"economy"`

	// BookingCode is the fare booking code (e.g., "Y")
	BookingCode string `json:"bookingCode" example:"Y"`

	// DistanceMiles is the flown distance in miles
	DistanceMiles int `json:"distanceMiles" example:"3451"`
}

// CompareValuationsRequest represents the request body for valuation comparison.
type CompareValuationsRequest struct {
	// Entries are the award prices to value, one per program
	Entries []ValuationEntryDTO `json:"entries"`

	// SurchargeUSD is the carrier-imposed cash surcharge paid alongside the
	// miles, applied identically to every entry
	SurchargeUSD float64 `json:"surchargeUsd" example:"11.20"`
}

// Validation regex patterns.
var (
	locationCodePattern = regexp.MustCompile(`^[A-Z0-9-]{2,10}$`)
	carrierCodePattern  = regexp.MustCompile(`^[A-Z0-9]{2,3}$`)
	bookingCodePattern  = regexp.MustCompile(`^[A-Z]$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
// Segment codes are normalized to uppercase in place.
func (r *SearchAwardsRequest) Validate() error {
	errs := &ValidationErrors{}

	if len(r.Segments) == 0 {
		errs.Add("segments", "at least one segment is required")
		return errs
	}
	if len(r.Segments) > domain.MaxSegments {
		errs.Add("segments", fmt.Sprintf("at most %d segments are supported", domain.MaxSegments))
		return errs
	}

	for i := range r.Segments {
		r.Segments[i].validate(i, errs)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (s *SegmentDTO) validate(idx int, errs *ValidationErrors) {
	field := func(name string) string {
		return fmt.Sprintf("segments[%d].%s", idx, name)
	}

	s.Origin = strings.ToUpper(strings.TrimSpace(s.Origin))
	s.Destination = strings.ToUpper(strings.TrimSpace(s.Destination))
	s.Carrier = strings.ToUpper(strings.TrimSpace(s.Carrier))
	s.Cabin = strings.ToLower(strings.TrimSpace(s.Cabin))

	if s.Origin == "" {
		errs.Add(field("origin"), "origin is required")
	} else if !locationCodePattern.MatchString(s.Origin) {
		errs.Add(field("origin"), "origin must be an airport, country, or region code")
	}

	if s.Destination == "" {
		errs.Add(field("destination"), "destination is required")
	} else if !locationCodePattern.MatchString(s.Destination) {
		errs.Add(field("destination"), "destination must be an airport, country, or region code")
	}

	if s.Origin != "" && s.Origin == s.Destination {
		errs.Add(field("destination"), "origin and destination must be different")
	}

	if s.Carrier == "" {
		errs.Add(field("carrier"), "carrier is required")
	} else if !carrierCodePattern.MatchString(s.Carrier) {
		errs.Add(field("carrier"), "carrier must be a 2 or 3 character airline code")
	}

	if s.Cabin == "" {
		s.Cabin = string(domain.CabinEconomy)
	} else if _, err := domain.ParseCabin(s.Cabin); err != nil {
		errs.Add(field("cabin"), "cabin must be one of: economy, premium_economy, business, first")
	}

	if s.DistanceMiles < 0 {
		errs.Add(field("distanceMiles"), "distanceMiles must not be negative")
	}
}

// Validate validates the earning calculation request.
func (r *CalculateEarningsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Carrier = strings.ToUpper(strings.TrimSpace(r.Carrier))
	r.CabinClass = strings.ToLower(strings.TrimSpace(r.CabinClass))
	r.BookingCode = strings.ToUpper(strings.TrimSpace(r.BookingCode))

	if r.Carrier == "" {
		errs.Add("carrier", "carrier is required")
	} else if !carrierCodePattern.MatchString(r.Carrier) {
		errs.Add("carrier", "carrier must be a 2 or 3 character airline code")
	}

	if r.CabinClass == "" {
		r.CabinClass = string(domain.CabinEconomy)
	} else if _, err := domain.ParseCabin(r.CabinClass); err != nil {
		errs.Add("cabinClass", "cabinClass must be one of: economy, premium_economy, business, first")
	}

	if r.BookingCode == "" {
		errs.Add("bookingCode", "bookingCode is required")
	} else if !bookingCodePattern.MatchString(r.BookingCode) {
		errs.Add("bookingCode", "bookingCode must be a single letter")
	}

	if r.DistanceMiles <= 0 {
		errs.Add("distanceMiles", "distanceMiles must be positive")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the valuation comparison request.
func (r *CompareValuationsRequest) Validate() error {
	errs := &ValidationErrors{}

	if len(r.Entries) == 0 {
		errs.Add("entries", "at least one entry is required")
	}
	for i := range r.Entries {
		e := &r.Entries[i]
		e.FFP = strings.ToUpper(strings.TrimSpace(e.FFP))
		if e.FFP == "" {
			errs.Add(fmt.Sprintf("entries[%d].ffp", i), "ffp is required")
		}
		if e.Miles <= 0 {
			errs.Add(fmt.Sprintf("entries[%d].miles", i), "miles must be positive")
		}
	}

	if r.SurchargeUSD < 0 {
		errs.Add("surchargeUsd", "surchargeUsd must not be negative")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
