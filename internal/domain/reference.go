// Package domain contains the core business entities and rules for the award
// pricing engine: carriers, alliances, frequent flyer programs, partnerships,
// zone systems, award charts and the itinerary/pricing types built on them.
// These entities are loaded once from the configuration corpus and are
// immutable for the life of the process.
package domain

// Carrier represents an airline that operates flights.
type Carrier struct {
	// Code is the unique two-letter IATA carrier code (e.g. "AA")
	Code string `json:"code"`

	// Name is the full carrier name (e.g. "American Airlines")
	Name string `json:"name"`

	// Country is the carrier's home country code
	Country string `json:"country"`

	// OperatingRegions tags the route categories the carrier operates in
	// (e.g. ["US", "US-EU"]). Used only for UI-side carrier filtering.
	OperatingRegions []string `json:"operating_region,omitempty"`
}

// Alliance represents an airline alliance with an ordered member list.
type Alliance struct {
	// Code is the alliance code (e.g. "SA", "OW", "ST")
	Code string `json:"code"`

	// Name is the display name (e.g. "Star Alliance")
	Name string `json:"name"`

	// Members lists member carrier codes in declaration order.
	Members []string `json:"members"`
}

// Contains reports whether the carrier is a member of the alliance.
func (a *Alliance) Contains(carrierCode string) bool {
	for _, m := range a.Members {
		if m == carrierCode {
			return true
		}
	}
	return false
}

// PartnerDirection selects which side of a partnership relationship applies.
type PartnerDirection string

// Partnership directions.
const (
	// DirectionRedeem covers relationships "both" and "redeem_only".
	DirectionRedeem PartnerDirection = "redeem"

	// DirectionEarn covers relationships "both" and "earn_only".
	DirectionEarn PartnerDirection = "earn"
)

// Relationship is the declared redemption/earning relationship of a
// partnership record.
type Relationship string

// Partnership relationships.
const (
	RelationshipBoth       Relationship = "both"
	RelationshipRedeemOnly Relationship = "redeem_only"
	RelationshipEarnOnly   Relationship = "earn_only"
)

// Allows reports whether the relationship permits the given direction.
func (r Relationship) Allows(dir PartnerDirection) bool {
	switch dir {
	case DirectionRedeem:
		return r == RelationshipBoth || r == RelationshipRedeemOnly
	case DirectionEarn:
		return r == RelationshipBoth || r == RelationshipEarnOnly
	default:
		return false
	}
}

// PartnershipType distinguishes alliance-wide partnerships from explicit
// carrier lists.
type PartnershipType string

// Partnership types.
const (
	PartnershipAlliance   PartnershipType = "alliance"
	PartnershipIndividual PartnershipType = "individual"
)

// Partnership declares that an FFP can redeem and/or earn on a set of
// carriers. Multiple records may exist per FFP.
type Partnership struct {
	// FFPCode is the owning program's code.
	FFPCode string `json:"ffp"`

	// Relationship is "both", "redeem_only" or "earn_only".
	Relationship Relationship `json:"relationship"`

	// Type is "alliance" or "individual".
	Type PartnershipType `json:"type"`

	// AllianceCode references an alliance when Type is "alliance".
	AllianceCode string `json:"alliance,omitempty"`

	// Carriers lists explicit carrier codes when Type is "individual".
	Carriers []string `json:"carriers,omitempty"`
}

// Program represents a frequent flyer program (FFP).
type Program struct {
	// Code is the program code, usually equal to its primary carrier's code.
	Code string `json:"code"`

	// Name is the display name (e.g. "AAdvantage").
	Name string `json:"name"`

	// SelfCarriers lists the carriers directly affiliated with the program;
	// no partnership record is needed to redeem or earn on them.
	SelfCarriers []string `json:"carriers"`

	// FamilyPooling reports whether the program supports pooling miles
	// across family members.
	FamilyPooling bool `json:"family_pooling"`

	// Expiration is the symbolic expiration policy (e.g. "18_months_inactivity").
	Expiration string `json:"expiration"`

	// SeparateSegmentPricing marks programs that price multi-segment
	// itineraries per segment rather than cumulatively.
	SeparateSegmentPricing bool `json:"seperate_Segment_pricing"`

	// RedeemPartners and EarnPartners are derived at load time: carrier codes
	// reachable through partnerships, excluding self carriers, deduplicated.
	RedeemPartners []string `json:"redeem_partner,omitempty"`
	EarnPartners   []string `json:"earn_partner,omitempty"`
}

// IsSelf reports whether the carrier is one of the program's self carriers
// or the program's own code.
func (p *Program) IsSelf(carrierCode string) bool {
	if carrierCode == p.Code {
		return true
	}
	for _, c := range p.SelfCarriers {
		if c == carrierCode {
			return true
		}
	}
	return false
}

// Airport holds airport reference data. Coordinates feed the great-circle
// distance utility; the pricing core itself never reads them.
type Airport struct {
	IATACode  string  `json:"iata_code"`
	Name      string  `json:"name"`
	Continent string  `json:"continent"`
	Country   string  `json:"iso_country"`
	Region    string  `json:"iso_region"`
	Latitude  float64 `json:"latitude_deg"`
	Longitude float64 `json:"longitude_deg"`
}

// DestinationType distinguishes single-country destination regions from
// groupings that span several countries.
type DestinationType string

// Destination region types.
const (
	DestinationCountry      DestinationType = "COUNTRY"
	DestinationMultiCountry DestinationType = "MULTI_COUNTRY"
)

// Destination is a named region grouping of location codes, used for
// domestic detection and location lookup.
type Destination struct {
	Code      string
	Name      string
	Type      DestinationType
	Locations []string
}

// contains reports whether the destination includes the location code.
func (d *Destination) contains(code string) bool {
	for _, l := range d.Locations {
		if l == code {
			return true
		}
	}
	return false
}

// RouteCategory describes a named route grouping (e.g. "US" for US domestic
// or "US-EU" for transatlantic) that distance charts may restrict to.
type RouteCategory struct {
	Code              string
	Name              string
	OriginRegion      string
	DestinationRegion string
}

// Location is the resolved view of a location code: the attributes the zone
// mapper matches include/exclude rules against.
type Location struct {
	Code      string
	Country   string
	Region    string
	Continent string
}

// AccrualRule defines how miles are earned for a set of booking codes
// within one cabin class on one carrier.
type AccrualRule struct {
	// BookingCodes lists the fare letters this rule applies to.
	BookingCodes []string `json:"booking_codes"`

	// Type is the earning method; only "distance" is currently defined.
	Type string `json:"type"`

	// EarningRate multiplies flown distance (1.0 = 100%).
	EarningRate float64 `json:"earning_rate"`

	// Minimum is the floor applied after the rate (minimum miles awarded).
	Minimum float64 `json:"minimum"`
}

// Matches reports whether the rule covers the booking code.
func (r *AccrualRule) Matches(bookingCode string) bool {
	for _, c := range r.BookingCodes {
		if c == bookingCode {
			return true
		}
	}
	return false
}

// ReferenceData is the immutable bundle of all reference tables the engine
// operates over. It is built once by the loader and passed explicitly into
// every resolver, selector and calculator; a manual reload replaces the
// bundle wholesale, never mutates it.
type ReferenceData struct {
	// Carriers keyed by code; CarrierOrder preserves file order.
	Carriers     map[string]Carrier
	CarrierOrder []string

	// Alliances in file order.
	Alliances []Alliance

	// Programs keyed by code; ProgramOrder preserves file order.
	Programs     map[string]Program
	ProgramOrder []string

	// Partnerships in file order (order is load-bearing for result ordering).
	Partnerships []Partnership

	// Charts keyed by chart key; ChartOrder preserves file order.
	Charts     map[string]*Chart
	ChartOrder []string

	// ZoneSystems keyed by name.
	ZoneSystems map[string]*ZoneSystem

	// Destinations keyed by region code.
	Destinations map[string]Destination

	// RouteCategories keyed by category code.
	RouteCategories map[string]RouteCategory

	// Valuations maps FFP code to cents-per-point.
	Valuations map[string]float64

	// Airports keyed by IATA code.
	Airports map[string]Airport

	// Countries maps country code to display name.
	Countries map[string]string

	// AccrualRules maps FFP code -> carrier code -> cabin class -> rules.
	AccrualRules map[string]map[string]map[Cabin][]AccrualRule

	// Policies maps (program, carrier-mix case) to the multi-segment
	// pricing strategy. Built at load time from program configuration plus
	// the program-specific override table.
	Policies PolicyTable
}

// AllianceOf returns the alliance the carrier belongs to, or nil.
// Load-time validation guarantees at most one match.
func (r *ReferenceData) AllianceOf(carrierCode string) *Alliance {
	for i := range r.Alliances {
		if r.Alliances[i].Contains(carrierCode) {
			return &r.Alliances[i]
		}
	}
	return nil
}

// AllianceByCode returns the alliance with the given code, or nil.
func (r *ReferenceData) AllianceByCode(code string) *Alliance {
	for i := range r.Alliances {
		if r.Alliances[i].Code == code {
			return &r.Alliances[i]
		}
	}
	return nil
}

// ChartsOwnedBy returns the charts owned by the program, in file order.
func (r *ReferenceData) ChartsOwnedBy(ffpCode string) []*Chart {
	var charts []*Chart
	for _, key := range r.ChartOrder {
		if c := r.Charts[key]; c.FFPCode == ffpCode {
			charts = append(charts, c)
		}
	}
	return charts
}

// HasCarrier reports whether the carrier code exists in the bundle.
func (r *ReferenceData) HasCarrier(code string) bool {
	_, ok := r.Carriers[code]
	return ok
}

// LocationOf resolves a location code to its zone-matchable attributes.
// Airports resolve through the airport table; destination-level codes
// (countries, multi-country regions) resolve through the destination table.
func (r *ReferenceData) LocationOf(code string) Location {
	if ap, ok := r.Airports[code]; ok {
		return Location{
			Code:      code,
			Country:   ap.Country,
			Region:    ap.Region,
			Continent: ap.Continent,
		}
	}
	for _, dest := range r.Destinations {
		if dest.contains(code) {
			loc := Location{Code: code, Region: dest.Code}
			if dest.Type == DestinationCountry {
				loc.Country = dest.Code
			} else {
				// Inside a multi-country region the code itself is the country.
				loc.Country = code
			}
			return loc
		}
	}
	return Location{Code: code}
}

// DestinationOf returns the destination region containing the location
// code, or the zero value and false.
func (r *ReferenceData) DestinationOf(code string) (Destination, bool) {
	for _, dest := range r.Destinations {
		if dest.contains(code) {
			return dest, true
		}
	}
	return Destination{}, false
}

// IsDomestic reports whether a route between the two location codes stays
// within one country. Airport codes resolve through their airport's country;
// region-level codes resolve as in LocationOf, so members of a multi-country
// region are domestic only against themselves.
func (r *ReferenceData) IsDomestic(origin, destination string) bool {
	oc := r.LocationOf(origin).Country
	dc := r.LocationOf(destination).Country
	return oc != "" && oc == dc
}

// AreaOf resolves a location code to the region code route categories are
// declared against: the destination region of the location's country when
// one exists, otherwise the continent.
func (r *ReferenceData) AreaOf(code string) string {
	loc := r.LocationOf(code)
	if loc.Country != "" {
		if d, ok := r.DestinationOf(loc.Country); ok {
			return d.Code
		}
	}
	if d, ok := r.DestinationOf(code); ok {
		return d.Code
	}
	return loc.Continent
}

// RouteCategoryOf returns the code of the route category covering the two
// locations, in either direction, or "" when none matches.
func (r *ReferenceData) RouteCategoryOf(origin, destination string) string {
	oa, da := r.AreaOf(origin), r.AreaOf(destination)
	if oa == "" || da == "" {
		return ""
	}
	for code, cat := range r.RouteCategories {
		if (cat.OriginRegion == oa && cat.DestinationRegion == da) ||
			(cat.OriginRegion == da && cat.DestinationRegion == oa) {
			return code
		}
	}
	return ""
}
