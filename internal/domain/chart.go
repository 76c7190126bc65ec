package domain

// ChartType tags the pricing encoding of an award chart.
type ChartType string

// Chart encodings.
const (
	// ChartDistanceBased prices from ordered distance brackets.
	ChartDistanceBased ChartType = "distance_based"

	// ChartZoneBased prices from symmetric zone-pair tables.
	ChartZoneBased ChartType = "zone_based"

	// ChartDynamic has no published prices; it always yields the
	// symbolic "Dynamic" outcome.
	ChartDynamic ChartType = "dynamic"

	// ChartHybridDistanceZone combines distance brackets and zone pairs
	// with a configurable priority.
	ChartHybridDistanceZone ChartType = "hybrid_distance_zone"

	// ChartDomesticOverwrite prices domestic routes from flat default or
	// per-country exception rates.
	ChartDomesticOverwrite ChartType = "domestic_overwrite"
)

// IsValid reports whether the chart type is a known encoding.
func (t ChartType) IsValid() bool {
	switch t {
	case ChartDistanceBased, ChartZoneBased, ChartDynamic,
		ChartHybridDistanceZone, ChartDomesticOverwrite:
		return true
	default:
		return false
	}
}

// Applicability scopes a chart to the carriers it can price.
type Applicability string

// Chart applicability scopes.
const (
	// AppliesSelf restricts the chart to the owning program's own carriers.
	AppliesSelf Applicability = "self"

	// AppliesSpecific restricts the chart to an explicit partner list.
	AppliesSpecific Applicability = "specific"

	// AppliesAllPartners opens the chart to every partner carrier.
	AppliesAllPartners Applicability = "all_partners"
)

// HybridPriority selects the lookup order of a hybrid chart.
type HybridPriority string

// Hybrid lookup orders.
const (
	// DistanceFirst tries distance brackets (within the threshold), then
	// falls through to zone pairs.
	DistanceFirst HybridPriority = "distance_first"

	// ZoneFirst tries zone pairs, then falls back to distance brackets.
	ZoneFirst HybridPriority = "zone_first"
)

// DistanceBracket is one row of a distance-based pricing table. Both bounds
// are inclusive.
type DistanceBracket struct {
	MinMiles   int `json:"min_miles"`
	MaxMiles   int `json:"max_miles"`
	AwardMiles int `json:"award_miles"`
}

// Contains reports whether the flown distance falls inside the bracket.
func (b *DistanceBracket) Contains(distance int) bool {
	return distance >= b.MinMiles && distance <= b.MaxMiles
}

// BracketLookup scans the ordered bracket list and returns the award cost of
// the first bracket containing the distance.
func BracketLookup(distance int, brackets []DistanceBracket) (int, bool) {
	for i := range brackets {
		if brackets[i].Contains(distance) {
			return brackets[i].AwardMiles, true
		}
	}
	return 0, false
}

// HybridTable holds the per-cabin pricing data of a hybrid chart: both a
// bracket list and a zone-pair list, consulted in the chart's priority order.
type HybridTable struct {
	Distance []DistanceBracket `json:"distance_based"`
	Zones    []ZonePair        `json:"zone_based"`
}

// Chart is a fully validated award chart. The loader decodes every field up
// front so that call sites never guess at missing keys; fields that do not
// apply to the chart's type are left zero.
type Chart struct {
	// Key identifies the chart in the corpus (e.g. "AA_self").
	Key string

	// FFPCode is the owning program.
	FFPCode string

	// AppliesTo scopes the chart to self, specific partners or all partners.
	AppliesTo Applicability

	// SpecificPartners lists the carriers covered when AppliesTo is
	// AppliesSpecific.
	SpecificPartners []string

	// Type selects the pricing encoding.
	Type ChartType

	// ZoneSystemName references the zone system used for zone lookups and
	// route restriction checks.
	ZoneSystemName string

	// RouteCategories restricts the chart to the listed route categories.
	// Nil means the chart is a catch-all; an empty non-nil list matches
	// nothing. HasRouteCategories distinguishes the two.
	RouteCategories    []string
	HasRouteCategories bool

	// RouteSpecific restricts the chart to explicit zone pairs, resolved
	// through the chart's zone system. Nil means no restriction.
	RouteSpecific []ZonePair

	// AppliesToMultiple marks charts used for whole-itinerary cumulative
	// pricing of multi-carrier itineraries.
	AppliesToMultiple bool

	// SpecialOverwrite marks the program's single special-case chart,
	// which beats normal selection when its route restriction matches.
	SpecialOverwrite bool

	// DomesticOverwrite marks the program's single domestic-override chart,
	// applicable only when origin and destination share a country.
	DomesticOverwrite bool

	// Priority and DistanceThreshold configure hybrid charts.
	Priority          HybridPriority
	DistanceThreshold int

	// DistanceTables holds per-cabin bracket lists for distance charts.
	DistanceTables map[Cabin][]DistanceBracket

	// ZoneTables holds per-cabin zone-pair lists for zone charts.
	ZoneTables map[Cabin][]ZonePair

	// HybridTables holds per-cabin bracket+pair tables for hybrid charts.
	HybridTables map[Cabin]HybridTable

	// DomesticDefault and DomesticExceptions hold the rates of a
	// domestic-overwrite chart. Exceptions are keyed by country code.
	DomesticDefault    map[Cabin]int
	DomesticExceptions map[string]map[Cabin]int
}

// CoversPartner reports whether the carrier appears in the chart's specific
// partner list.
func (c *Chart) CoversPartner(carrierCode string) bool {
	return containsString(c.SpecificPartners, carrierCode)
}

// CoversRouteCategory reports whether the chart admits the route category.
// A chart without a route_categories key is a catch-all.
func (c *Chart) CoversRouteCategory(category string) bool {
	if !c.HasRouteCategories {
		return true
	}
	return containsString(c.RouteCategories, category)
}

// HasCabin reports whether the chart publishes prices for the cabin.
func (c *Chart) HasCabin(cabin Cabin) bool {
	switch c.Type {
	case ChartDistanceBased:
		_, ok := c.DistanceTables[cabin]
		return ok
	case ChartZoneBased:
		_, ok := c.ZoneTables[cabin]
		return ok
	case ChartHybridDistanceZone:
		_, ok := c.HybridTables[cabin]
		return ok
	case ChartDomesticOverwrite:
		if _, ok := c.DomesticDefault[cabin]; ok {
			return true
		}
		for _, rates := range c.DomesticExceptions {
			if _, ok := rates[cabin]; ok {
				return true
			}
		}
		return false
	case ChartDynamic:
		// Dynamic charts price every cabin symbolically.
		return true
	default:
		return false
	}
}

// Cabins returns the cabins the chart publishes prices for, in standard
// cabin order.
func (c *Chart) Cabins() []Cabin {
	var cabins []Cabin
	for _, cab := range CabinOrder {
		if c.HasCabin(cab) {
			cabins = append(cabins, cab)
		}
	}
	return cabins
}
