package domain

import "fmt"

// Cabin is a normalized cabin class.
type Cabin string

// Cabin classes, in standard display order.
const (
	CabinEconomy        Cabin = "economy"
	CabinPremiumEconomy Cabin = "premium_economy"
	CabinBusiness       Cabin = "business"
	CabinFirst          Cabin = "first"
)

// CabinOrder lists the cabin classes in standard display order.
var CabinOrder = []Cabin{CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst}

// ParseCabin normalizes a cabin string. It returns an error wrapping
// ErrInvalidRequest for unknown values.
func ParseCabin(s string) (Cabin, error) {
	c := Cabin(s)
	if !c.IsValid() {
		return "", fmt.Errorf("%w: unknown cabin class %q", ErrInvalidRequest, s)
	}
	return c, nil
}

// IsValid reports whether the cabin is a known class.
func (c Cabin) IsValid() bool {
	switch c {
	case CabinEconomy, CabinPremiumEconomy, CabinBusiness, CabinFirst:
		return true
	default:
		return false
	}
}

// MaxSegments caps itinerary length. The sub-itinerary optimizer enumerates
// contiguous ranges, so the cap keeps request cost bounded.
const MaxSegments = 8

// Segment is one flight leg of an itinerary.
type Segment struct {
	// Origin and Destination are location codes: IATA airport codes or
	// destination-region codes from the reference data.
	Origin      string `json:"origin"`
	Destination string `json:"destination"`

	// Carrier is the operating carrier's code.
	Carrier string `json:"carrier"`

	// Cabin is the requested cabin class.
	Cabin Cabin `json:"cabin"`

	// DistanceMiles is the flown distance of the leg in statute miles.
	DistanceMiles int `json:"distance_miles"`
}

// Validate checks a single segment. The carrier code is checked against
// reference data at the boundary, not here.
func (s *Segment) Validate() error {
	if s.Origin == "" {
		return fmt.Errorf("%w: segment origin is required", ErrInvalidRequest)
	}
	if s.Destination == "" {
		return fmt.Errorf("%w: segment destination is required", ErrInvalidRequest)
	}
	if s.Origin == s.Destination {
		return fmt.Errorf("%w: segment origin and destination must differ", ErrInvalidRequest)
	}
	if s.Carrier == "" {
		return fmt.Errorf("%w: segment carrier is required", ErrInvalidRequest)
	}
	if !s.Cabin.IsValid() {
		return fmt.Errorf("%w: unknown cabin class %q", ErrInvalidRequest, string(s.Cabin))
	}
	// Zero means "compute from airport coordinates"; only negatives are
	// rejected here.
	if s.DistanceMiles < 0 {
		return fmt.Errorf("%w: segment distance must not be negative", ErrInvalidRequest)
	}
	return nil
}

// Itinerary is an ordered list of segments priced as one journey.
type Itinerary struct {
	Segments []Segment `json:"segments"`
}

// Validate checks the itinerary shape and every segment.
func (it *Itinerary) Validate() error {
	if len(it.Segments) == 0 {
		return fmt.Errorf("%w: at least one segment is required", ErrInvalidRequest)
	}
	if len(it.Segments) > MaxSegments {
		return fmt.Errorf("%w: at most %d segments are supported", ErrInvalidRequest, MaxSegments)
	}
	for i := range it.Segments {
		if err := it.Segments[i].Validate(); err != nil {
			return fmt.Errorf("segment %d: %w", i+1, err)
		}
	}
	return nil
}

// Carriers returns the distinct carrier codes of the itinerary, in first
// appearance order.
func (it *Itinerary) Carriers() []string {
	var out []string
	for i := range it.Segments {
		if !containsString(out, it.Segments[i].Carrier) {
			out = append(out, it.Segments[i].Carrier)
		}
	}
	return out
}

// TotalDistance sums the flown distance of all segments.
func (it *Itinerary) TotalDistance() int {
	total := 0
	for i := range it.Segments {
		total += it.Segments[i].DistanceMiles
	}
	return total
}

// Slice returns the contiguous sub-itinerary covering segments [from, to).
func (it *Itinerary) Slice(from, to int) Itinerary {
	return Itinerary{Segments: it.Segments[from:to]}
}

// MixCase classifies the carrier composition of an itinerary relative to one
// program. The classification drives multi-segment pricing strategy.
type MixCase int

// Carrier-mix cases.
const (
	// CaseAllSelf means every segment is on a program self carrier.
	CaseAllSelf MixCase = iota + 1

	// CaseSinglePartner means every segment is on the same partner carrier.
	CaseSinglePartner

	// CaseSelfPlusPartner means segments mix self carriers with exactly one
	// distinct partner carrier.
	CaseSelfPlusPartner

	// CaseMultiplePartners means segments span two or more distinct partner
	// carriers, with or without self segments.
	CaseMultiplePartners
)

// String returns a short label for logs.
func (c MixCase) String() string {
	switch c {
	case CaseAllSelf:
		return "all_self"
	case CaseSinglePartner:
		return "single_partner"
	case CaseSelfPlusPartner:
		return "self_plus_partner"
	case CaseMultiplePartners:
		return "multiple_partners"
	default:
		return fmt.Sprintf("MixCase(%d)", int(c))
	}
}

// ClassifyMix determines the carrier-mix case of the itinerary for the given
// program.
func ClassifyMix(it *Itinerary, program *Program) MixCase {
	var partners []string
	selfSeen := false
	for i := range it.Segments {
		carrier := it.Segments[i].Carrier
		if program.IsSelf(carrier) {
			selfSeen = true
			continue
		}
		if !containsString(partners, carrier) {
			partners = append(partners, carrier)
		}
	}
	switch {
	case len(partners) == 0:
		return CaseAllSelf
	case len(partners) == 1 && !selfSeen:
		return CaseSinglePartner
	case len(partners) == 1:
		return CaseSelfPlusPartner
	default:
		return CaseMultiplePartners
	}
}
