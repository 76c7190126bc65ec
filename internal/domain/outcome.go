package domain

import (
	"encoding/json"
	"sort"
)

// OutcomeKind distinguishes the three shapes of a pricing result.
type OutcomeKind int

// Outcome kinds.
const (
	// OutcomeMiles is a concrete award cost in miles.
	OutcomeMiles OutcomeKind = iota

	// OutcomeDynamic marks programs that publish no fixed chart; the price
	// exists but is not computable offline.
	OutcomeDynamic

	// OutcomeError carries a human-readable reason the route could not be
	// priced under the program. These are per-program results, not request
	// failures.
	OutcomeError
)

// Pricing result reasons. These strings are part of the response format.
const (
	ReasonNoChart          = "No applicable award chart"
	ReasonDistanceExceeded = "Distance exceeds award chart maximum"
	ReasonCabinUnavailable = "This cabin is not available on this program"
	ReasonRouteUndefined   = "Route not defined in award chart"
	ReasonWrongChart       = "wrong chart selected"
	ReasonNoCombination    = "no valid combination"
	ReasonMixNotSupported  = "carrier combination not supported"
	ReasonMixNotAllowed    = "carrier mix not allowed across alliances"
)

// DynamicLabel is the symbolic price of dynamically priced programs.
const DynamicLabel = "Dynamic"

// PriceOutcome is the result of pricing one route under one program: a miles
// amount, the symbolic dynamic marker, or a reason string.
type PriceOutcome struct {
	Kind   OutcomeKind
	Miles  int
	Reason string
}

// MilesOutcome returns a concrete-cost outcome.
func MilesOutcome(miles int) PriceOutcome {
	return PriceOutcome{Kind: OutcomeMiles, Miles: miles}
}

// DynamicOutcome returns the symbolic dynamic-pricing outcome.
func DynamicOutcome() PriceOutcome {
	return PriceOutcome{Kind: OutcomeDynamic}
}

// ErrorOutcome returns a reason outcome.
func ErrorOutcome(reason string) PriceOutcome {
	return PriceOutcome{Kind: OutcomeError, Reason: reason}
}

// IsMiles reports whether the outcome is a concrete cost.
func (o PriceOutcome) IsMiles() bool { return o.Kind == OutcomeMiles }

// IsDynamic reports whether the outcome is the dynamic marker.
func (o PriceOutcome) IsDynamic() bool { return o.Kind == OutcomeDynamic }

// IsError reports whether the outcome is a reason string.
func (o PriceOutcome) IsError() bool { return o.Kind == OutcomeError }

// Display returns the outcome formatted for human consumption: the miles
// figure, "Dynamic", or the reason.
func (o PriceOutcome) Display() string {
	switch o.Kind {
	case OutcomeMiles:
		return formatMiles(o.Miles)
	case OutcomeDynamic:
		return DynamicLabel
	default:
		return o.Reason
	}
}

// MarshalJSON emits a JSON number for concrete costs and a JSON string for
// dynamic and error outcomes. Clients distinguish the cases by JSON type.
func (o PriceOutcome) MarshalJSON() ([]byte, error) {
	switch o.Kind {
	case OutcomeMiles:
		return json.Marshal(o.Miles)
	case OutcomeDynamic:
		return json.Marshal(DynamicLabel)
	default:
		return json.Marshal(o.Reason)
	}
}

// UnmarshalJSON is the inverse of MarshalJSON: a number is a concrete cost,
// "Dynamic" is the dynamic marker, any other string is a reason.
func (o *PriceOutcome) UnmarshalJSON(data []byte) error {
	var miles int
	if err := json.Unmarshal(data, &miles); err == nil {
		*o = MilesOutcome(miles)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == DynamicLabel {
		*o = DynamicOutcome()
	} else {
		*o = ErrorOutcome(s)
	}
	return nil
}

// formatMiles renders a miles figure with comma grouping ("57,500").
func formatMiles(miles int) string {
	s := []byte{}
	if miles < 0 {
		s = append(s, '-')
		miles = -miles
	}
	digits := []byte{}
	for {
		digits = append(digits, byte('0'+miles%10))
		miles /= 10
		if miles == 0 {
			break
		}
	}
	for i := len(digits) - 1; i >= 0; i-- {
		s = append(s, digits[i])
		if i > 0 && i%3 == 0 {
			s = append(s, ',')
		}
	}
	return string(s)
}

// ProgramPrice is one program's priced result for a route or itinerary.
type ProgramPrice struct {
	// ProgramName is the display name of the program.
	ProgramName string `json:"program"`

	// FFPCode is the program code.
	FFPCode string `json:"ffp"`

	// ChartUsed names the chart that produced the outcome, empty for error
	// and dynamic outcomes without a chart.
	ChartUsed string `json:"chart_used,omitempty"`

	// Outcome is the price, the dynamic marker, or a reason.
	Outcome PriceOutcome `json:"miles"`
}

// SortProgramPrices orders results for display: concrete costs ascending,
// then dynamic outcomes, then errors. Ties keep their existing order, which
// resolver output makes deterministic.
func SortProgramPrices(prices []ProgramPrice) {
	rank := func(o PriceOutcome) int {
		switch o.Kind {
		case OutcomeMiles:
			return 0
		case OutcomeDynamic:
			return 1
		default:
			return 2
		}
	}
	sort.SliceStable(prices, func(i, j int) bool {
		ri, rj := rank(prices[i].Outcome), rank(prices[j].Outcome)
		if ri != rj {
			return ri < rj
		}
		if ri == 0 {
			return prices[i].Outcome.Miles < prices[j].Outcome.Miles
		}
		return false
	})
}
