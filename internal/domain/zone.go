package domain

// ZoneSystem is a named, ordered set of zone definitions used by zone-based
// award charts. Zone order is semantically load-bearing: more specific zones
// must be declared before broader ones in the source data, and the mapper
// performs a linear first-match scan with no specificity inference.
type ZoneSystem struct {
	// Name identifies the system (e.g. "AA_self").
	Name string

	// Zones in declaration order.
	Zones []ZoneDef

	// Domestic holds the optional domestic override rates.
	Domestic *DomesticOverride
}

// ZoneDef defines one zone's inclusion and exclusion rules. All reference
// aliases ($lcl_shared.X / $glb_shared.X) have been expanded to literal,
// deduplicated lists by the loader before a ZoneDef is constructed.
type ZoneDef struct {
	Name string

	// Inclusion rules. A location matches when its code appears in Airports
	// or Locations, or its country/region/continent appears in the
	// corresponding list.
	Continents []string
	Countries  []string
	Regions    []string
	Airports   []string
	Locations  []string

	// Exclusion rules. A location that matches an inclusion rule is still
	// rejected when any exclusion rule matches.
	CountriesExclude []string
	RegionsExclude   []string
	AirportsExclude  []string
}

// includes reports whether the location matches the zone's inclusion rules.
func (z *ZoneDef) includes(loc Location) bool {
	if containsString(z.Airports, loc.Code) || containsString(z.Locations, loc.Code) {
		return true
	}
	if loc.Country != "" && containsString(z.Countries, loc.Country) {
		return true
	}
	if loc.Region != "" && containsString(z.Regions, loc.Region) {
		return true
	}
	if loc.Continent != "" && containsString(z.Continents, loc.Continent) {
		return true
	}
	return false
}

// excludes reports whether the location matches the zone's exclusion rules.
func (z *ZoneDef) excludes(loc Location) bool {
	if containsString(z.AirportsExclude, loc.Code) {
		return true
	}
	if loc.Country != "" && containsString(z.CountriesExclude, loc.Country) {
		return true
	}
	if loc.Region != "" && containsString(z.RegionsExclude, loc.Region) {
		return true
	}
	return false
}

// ZoneOf returns the first zone (in declared order) whose include rules
// match the location and whose exclude rules do not. The boolean is false
// when no zone matches; callers must treat that as "chart inapplicable",
// never as an error or a free route.
func (s *ZoneSystem) ZoneOf(loc Location) (string, bool) {
	for i := range s.Zones {
		z := &s.Zones[i]
		if z.includes(loc) && !z.excludes(loc) {
			return z.Name, true
		}
	}
	return "", false
}

// DomesticOverride holds the flat rates a zone system applies to domestic
// routes, bypassing normal zone-pair lookup.
type DomesticOverride struct {
	// Default rates per cabin, applied to any domestic route.
	Default map[Cabin]int

	// Exceptions are per-country rates that beat the default.
	Exceptions map[string]map[Cabin]int

	// Hawaii rates apply to routes touching Hawaii for programs that rate
	// Hawaii separately from the mainland.
	Hawaii map[Cabin]int
}

// ExceptionRate returns the per-country exception rate, if declared.
func (d *DomesticOverride) ExceptionRate(country string, cabin Cabin) (int, bool) {
	rates, ok := d.Exceptions[country]
	if !ok {
		return 0, false
	}
	miles, ok := rates[cabin]
	return miles, ok
}

// DefaultRate returns the system-wide domestic rate, if declared.
func (d *DomesticOverride) DefaultRate(cabin Cabin) (int, bool) {
	miles, ok := d.Default[cabin]
	return miles, ok
}

// HawaiiRate returns the Hawaii rate, if declared.
func (d *DomesticOverride) HawaiiRate(cabin Cabin) (int, bool) {
	miles, ok := d.Hawaii[cabin]
	return miles, ok
}

// ZonePair is one row of a zone-pair pricing table. From and To each hold
// one or more zone names (a list is a broader group match). Pairs are
// symmetric: a pair matches (A,B) and (B,A) alike.
type ZonePair struct {
	From  []string `json:"from"`
	To    []string `json:"to"`
	Miles int      `json:"miles"`
}

// Matches reports whether the pair covers the route in either direction.
func (p *ZonePair) Matches(fromZone, toZone string) bool {
	if containsString(p.From, fromZone) && containsString(p.To, toZone) {
		return true
	}
	return containsString(p.From, toZone) && containsString(p.To, fromZone)
}

// PairLookup scans the pairs in declared order and returns the miles of the
// first pair matching the route in either direction. Pairs are not sorted
// by specificity; chart authors must order them, same as zone definitions.
func PairLookup(fromZone, toZone string, pairs []ZonePair) (int, bool) {
	for i := range pairs {
		if pairs[i].Matches(fromZone, toZone) {
			return pairs[i].Miles, true
		}
	}
	return 0, false
}

// containsString reports whether list contains s.
func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
