// Package refdata loads the hand-authored JSON configuration corpus into the
// immutable domain.ReferenceData bundle. All decoding, reference expansion
// and cross-file validation happens here, once, so the pricing core can
// assume a consistent bundle.
package refdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ffp-planner/award-pricing-engine/internal/domain"
)

// Corpus file names, fixed by convention.
const (
	FileCarriers     = "carriers.json"
	FileAlliances    = "alliance.json"
	FilePrograms     = "ffp.json"
	FilePartnerships = "partners.json"
	FileCharts       = "award_charts.json"
	FileZoneSystems  = "zone_systems.json"
	FileValuations   = "valuations.json"
	FileAirports     = "airports_filtered.json"
	FileCountries    = "countries.json"
	FileAccrualRules = "accrual_rules.json"
)

// Shared-group reference prefixes used inside zone definition lists.
const (
	localSharedPrefix  = "$lcl_shared."
	globalSharedPrefix = "$glb_shared."
)

// Load reads the corpus from dir and returns the validated bundle. Any
// inconsistency yields a domain.ConfigError; the caller must treat a failed
// load as fatal and keep serving the previous bundle, if any.
func Load(dir string) (*domain.ReferenceData, error) {
	ref := &domain.ReferenceData{
		Carriers:        make(map[string]domain.Carrier),
		Programs:        make(map[string]domain.Program),
		Charts:          make(map[string]*domain.Chart),
		ZoneSystems:     make(map[string]*domain.ZoneSystem),
		Destinations:    make(map[string]domain.Destination),
		RouteCategories: make(map[string]domain.RouteCategory),
		Valuations:      make(map[string]float64),
		Airports:        make(map[string]domain.Airport),
		Countries:       make(map[string]string),
		AccrualRules:    make(map[string]map[string]map[domain.Cabin][]domain.AccrualRule),
	}

	steps := []func(string, *domain.ReferenceData) error{
		loadCarriers,
		loadAlliances,
		loadPrograms,
		loadPartnerships,
		loadZoneSystems,
		loadCharts,
		loadValuations,
		loadAirports,
		loadCountries,
		loadAccrualRules,
	}
	for _, step := range steps {
		if err := step(dir, ref); err != nil {
			return nil, err
		}
	}

	if err := validate(ref); err != nil {
		return nil, err
	}
	derivePartnerLists(ref)
	ref.Policies = domain.BuildPolicyTable(ref.Programs, ref.ProgramOrder)
	return ref, nil
}

func readFile(dir, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, domain.NewConfigError(name, "reading: %v", err)
	}
	return data, nil
}

func loadCarriers(dir string, ref *domain.ReferenceData) error {
	data, err := readFile(dir, FileCarriers)
	if err != nil {
		return err
	}
	var file struct {
		Carriers []domain.Carrier `json:"carriers"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.NewConfigError(FileCarriers, "decoding: %v", err)
	}
	for _, c := range file.Carriers {
		if c.Code == "" {
			return domain.NewConfigError(FileCarriers, "carrier with empty code")
		}
		if _, dup := ref.Carriers[c.Code]; dup {
			return domain.NewConfigError(FileCarriers, "duplicate carrier %s", c.Code)
		}
		ref.Carriers[c.Code] = c
		ref.CarrierOrder = append(ref.CarrierOrder, c.Code)
	}
	return nil
}

func loadAlliances(dir string, ref *domain.ReferenceData) error {
	data, err := readFile(dir, FileAlliances)
	if err != nil {
		return err
	}
	var file struct {
		Alliances []domain.Alliance `json:"alliances"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.NewConfigError(FileAlliances, "decoding: %v", err)
	}
	ref.Alliances = file.Alliances
	return nil
}

func loadPrograms(dir string, ref *domain.ReferenceData) error {
	data, err := readFile(dir, FilePrograms)
	if err != nil {
		return err
	}
	var file struct {
		FFPs json.RawMessage `json:"ffps"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.NewConfigError(FilePrograms, "decoding: %v", err)
	}
	var programs map[string]domain.Program
	if err := json.Unmarshal(file.FFPs, &programs); err != nil {
		return domain.NewConfigError(FilePrograms, "decoding ffps: %v", err)
	}
	order, err := objectKeyOrder(file.FFPs)
	if err != nil {
		return domain.NewConfigError(FilePrograms, "reading ffp order: %v", err)
	}
	for _, code := range order {
		p := programs[code]
		p.Code = code
		ref.Programs[code] = p
		ref.ProgramOrder = append(ref.ProgramOrder, code)
	}
	return nil
}

func loadPartnerships(dir string, ref *domain.ReferenceData) error {
	data, err := readFile(dir, FilePartnerships)
	if err != nil {
		return err
	}
	var file struct {
		Programs []domain.Partnership `json:"programs"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.NewConfigError(FilePartnerships, "decoding: %v", err)
	}
	ref.Partnerships = file.Programs
	return nil
}

func loadValuations(dir string, ref *domain.ReferenceData) error {
	data, err := readFile(dir, FileValuations)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &ref.Valuations); err != nil {
		return domain.NewConfigError(FileValuations, "decoding: %v", err)
	}
	return nil
}

func loadAirports(dir string, ref *domain.ReferenceData) error {
	data, err := readFile(dir, FileAirports)
	if err != nil {
		return err
	}
	var airports []domain.Airport
	if err := json.Unmarshal(data, &airports); err != nil {
		return domain.NewConfigError(FileAirports, "decoding: %v", err)
	}
	for _, a := range airports {
		if a.IATACode == "" {
			continue
		}
		ref.Airports[a.IATACode] = a
	}
	return nil
}

func loadCountries(dir string, ref *domain.ReferenceData) error {
	data, err := readFile(dir, FileCountries)
	if err != nil {
		return err
	}
	var countries []struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &countries); err != nil {
		return domain.NewConfigError(FileCountries, "decoding: %v", err)
	}
	for _, c := range countries {
		ref.Countries[c.Code] = c.Name
	}
	return nil
}

func loadAccrualRules(dir string, ref *domain.ReferenceData) error {
	data, err := readFile(dir, FileAccrualRules)
	if err != nil {
		return err
	}
	var raw map[string]map[string]map[string][]domain.AccrualRule
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.NewConfigError(FileAccrualRules, "decoding: %v", err)
	}
	for ffp, byCarrier := range raw {
		ref.AccrualRules[ffp] = make(map[string]map[domain.Cabin][]domain.AccrualRule, len(byCarrier))
		for carrier, byCabin := range byCarrier {
			ref.AccrualRules[ffp][carrier] = make(map[domain.Cabin][]domain.AccrualRule, len(byCabin))
			for cabinName, rules := range byCabin {
				cabin, err := domain.ParseCabin(cabinName)
				if err != nil {
					return domain.NewConfigError(FileAccrualRules,
						"%s/%s: unknown cabin class %q", ffp, carrier, cabinName)
				}
				ref.AccrualRules[ffp][carrier][cabin] = rules
			}
		}
	}
	return nil
}

// stringList decodes a JSON value that may be a single string or a list of
// strings. Zone-pair tables use both forms interchangeably.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = stringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = stringList(many)
	return nil
}

type rawZonePair struct {
	From  stringList `json:"from"`
	To    stringList `json:"to"`
	Miles int        `json:"miles"`
}

func (p rawZonePair) toDomain() domain.ZonePair {
	return domain.ZonePair{From: []string(p.From), To: []string(p.To), Miles: p.Miles}
}

func toZonePairs(raw []rawZonePair) []domain.ZonePair {
	pairs := make([]domain.ZonePair, len(raw))
	for i, p := range raw {
		pairs[i] = p.toDomain()
	}
	return pairs
}

// objectKeyOrder returns the keys of a JSON object in document order.
// encoding/json maps lose ordering, and for programs, charts and zones the
// declaration order is semantically load-bearing.
func objectKeyOrder(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		keys = append(keys, tok.(string))
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// expandRefs resolves $lcl_shared.X and $glb_shared.X references to their
// literal member lists and deduplicates while preserving order.
func expandRefs(list []string, local, global map[string][]string, source string) ([]string, error) {
	if len(list) == 0 {
		return nil, nil
	}
	var out []string
	seen := make(map[string]bool)
	add := func(v string) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, entry := range list {
		switch {
		case strings.HasPrefix(entry, localSharedPrefix):
			name := strings.TrimPrefix(entry, localSharedPrefix)
			members, ok := local[name]
			if !ok {
				return nil, domain.NewConfigError(source, "unknown local shared group %q", name)
			}
			for _, m := range members {
				add(m)
			}
		case strings.HasPrefix(entry, globalSharedPrefix):
			name := strings.TrimPrefix(entry, globalSharedPrefix)
			members, ok := global[name]
			if !ok {
				return nil, domain.NewConfigError(source, "unknown global shared group %q", name)
			}
			for _, m := range members {
				add(m)
			}
		default:
			add(entry)
		}
	}
	return out, nil
}

type rawZoneDef struct {
	Continents    []string `json:"continents"`
	Countries     []string `json:"countries"`
	Regions       []string `json:"regions"`
	Airports      []string `json:"airports"`
	Locations     []string `json:"locations"`
	CountriesExcl []string `json:"countries_exclude"`
	RegionsExcl   []string `json:"regions_exclude"`
	AirportsExcl  []string `json:"airports_exclude"`
}

type rawDomesticOverride struct {
	Default    map[string]int            `json:"default"`
	Exceptions map[string]map[string]int `json:"exceptions"`
	Hawaii     map[string]int            `json:"hawaii"`
}

type rawZoneSystem struct {
	Zones             json.RawMessage      `json:"zones"`
	DomesticOverride  *rawDomesticOverride `json:"domestic_override"`
	LocalSharedGroups map[string][]string  `json:"local_shared_groups"`
}

type rawDestination struct {
	Name      string                     `json:"name"`
	Type      string                     `json:"type"`
	Locations map[string]json.RawMessage `json:"locations"`
}

type rawRouteCategory struct {
	Name              string `json:"name"`
	OriginRegion      string `json:"origin_region"`
	DestinationRegion string `json:"destination_region"`
}

func loadZoneSystems(dir string, ref *domain.ReferenceData) error {
	data, err := readFile(dir, FileZoneSystems)
	if err != nil {
		return err
	}
	var file struct {
		ZoneDefinitions map[string]rawZoneSystem    `json:"zone_definitions"`
		SharedGroups    map[string][]string         `json:"shared_groups"`
		Destinations    map[string]rawDestination   `json:"destinations"`
		RouteCategories map[string]rawRouteCategory `json:"route_categories"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.NewConfigError(FileZoneSystems, "decoding: %v", err)
	}

	for name, rawSys := range file.ZoneDefinitions {
		system, err := buildZoneSystem(name, rawSys, file.SharedGroups)
		if err != nil {
			return err
		}
		ref.ZoneSystems[name] = system
	}

	for code, rawDest := range file.Destinations {
		dtype := domain.DestinationType(rawDest.Type)
		if dtype != domain.DestinationCountry && dtype != domain.DestinationMultiCountry {
			return domain.NewConfigError(FileZoneSystems,
				"destination %s: unknown type %q", code, rawDest.Type)
		}
		locations := make([]string, 0, len(rawDest.Locations))
		for loc := range rawDest.Locations {
			locations = append(locations, loc)
		}
		sort.Strings(locations)
		ref.Destinations[code] = domain.Destination{
			Code:      code,
			Name:      rawDest.Name,
			Type:      dtype,
			Locations: locations,
		}
	}

	for code, rawCat := range file.RouteCategories {
		ref.RouteCategories[code] = domain.RouteCategory{
			Code:              code,
			Name:              rawCat.Name,
			OriginRegion:      rawCat.OriginRegion,
			DestinationRegion: rawCat.DestinationRegion,
		}
	}
	return nil
}

func buildZoneSystem(name string, raw rawZoneSystem, global map[string][]string) (*domain.ZoneSystem, error) {
	source := fmt.Sprintf("%s: zone system %s", FileZoneSystems, name)

	var zones map[string]rawZoneDef
	if err := json.Unmarshal(raw.Zones, &zones); err != nil {
		return nil, domain.NewConfigError(source, "decoding zones: %v", err)
	}
	order, err := objectKeyOrder(raw.Zones)
	if err != nil {
		return nil, domain.NewConfigError(source, "reading zone order: %v", err)
	}

	system := &domain.ZoneSystem{Name: name}
	for _, zoneName := range order {
		rz := zones[zoneName]
		def := domain.ZoneDef{Name: zoneName}
		fields := []struct {
			dst *[]string
			src []string
		}{
			{&def.Continents, rz.Continents},
			{&def.Countries, rz.Countries},
			{&def.Regions, rz.Regions},
			{&def.Airports, rz.Airports},
			{&def.Locations, rz.Locations},
			{&def.CountriesExclude, rz.CountriesExcl},
			{&def.RegionsExclude, rz.RegionsExcl},
			{&def.AirportsExclude, rz.AirportsExcl},
		}
		for _, f := range fields {
			expanded, err := expandRefs(f.src, raw.LocalSharedGroups, global, source)
			if err != nil {
				return nil, err
			}
			*f.dst = expanded
		}
		system.Zones = append(system.Zones, def)
	}

	if raw.DomesticOverride != nil {
		dom := &domain.DomesticOverride{}
		if dom.Default, err = cabinRates(raw.DomesticOverride.Default, source); err != nil {
			return nil, err
		}
		if dom.Hawaii, err = cabinRates(raw.DomesticOverride.Hawaii, source); err != nil {
			return nil, err
		}
		if len(raw.DomesticOverride.Exceptions) > 0 {
			dom.Exceptions = make(map[string]map[domain.Cabin]int, len(raw.DomesticOverride.Exceptions))
			for country, rates := range raw.DomesticOverride.Exceptions {
				if dom.Exceptions[country], err = cabinRates(rates, source); err != nil {
					return nil, err
				}
			}
		}
		system.Domestic = dom
	}
	return system, nil
}

// cabinRates converts a cabin-keyed rate map, validating cabin names.
func cabinRates(raw map[string]int, source string) (map[domain.Cabin]int, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[domain.Cabin]int, len(raw))
	for name, miles := range raw {
		cabin, err := domain.ParseCabin(name)
		if err != nil {
			return nil, domain.NewConfigError(source, "unknown cabin class %q", name)
		}
		out[cabin] = miles
	}
	return out, nil
}

type rawChart struct {
	FFPCode           string                     `json:"ffp_code"`
	AppliesTo         string                     `json:"applies_to"`
	SpecificPartners  []string                   `json:"specific_partners"`
	Type              string                     `json:"type"`
	Cabins            map[string]json.RawMessage `json:"cabins"`
	ZoneSystem        string                     `json:"zone_system"`
	RouteCategories   *[]string                  `json:"route_categories"`
	RouteSpecific     []rawZonePair              `json:"route_specific"`
	AppliesToMultiple bool                       `json:"applies_to_multiple"`
	SpecialOverwrite  bool                       `json:"is_special_overwrite"`
	DomesticOverwrite bool                       `json:"is_domestic_overwrite"`
	Priority          string                     `json:"priority"`
	DistanceThreshold int                        `json:"distance_threshold"`
	Default           map[string]int             `json:"default"`
	Exceptions        map[string]map[string]int  `json:"exceptions"`
}

func loadCharts(dir string, ref *domain.ReferenceData) error {
	data, err := readFile(dir, FileCharts)
	if err != nil {
		return err
	}
	var file struct {
		AwardCharts json.RawMessage `json:"award_charts"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.NewConfigError(FileCharts, "decoding: %v", err)
	}
	var rawCharts map[string]rawChart
	if err := json.Unmarshal(file.AwardCharts, &rawCharts); err != nil {
		return domain.NewConfigError(FileCharts, "decoding charts: %v", err)
	}
	order, err := objectKeyOrder(file.AwardCharts)
	if err != nil {
		return domain.NewConfigError(FileCharts, "reading chart order: %v", err)
	}

	for _, key := range order {
		chart, err := buildChart(key, rawCharts[key])
		if err != nil {
			return err
		}
		ref.Charts[key] = chart
		ref.ChartOrder = append(ref.ChartOrder, key)
	}
	return nil
}

func buildChart(key string, raw rawChart) (*domain.Chart, error) {
	source := fmt.Sprintf("%s: chart %s", FileCharts, key)

	ctype := domain.ChartType(raw.Type)
	if !ctype.IsValid() {
		return nil, domain.NewConfigError(source, "unknown chart type %q", raw.Type)
	}
	applies := domain.Applicability(raw.AppliesTo)
	switch applies {
	case domain.AppliesSelf, domain.AppliesSpecific, domain.AppliesAllPartners:
	default:
		return nil, domain.NewConfigError(source, "unknown applies_to %q", raw.AppliesTo)
	}

	chart := &domain.Chart{
		Key:               key,
		FFPCode:           raw.FFPCode,
		AppliesTo:         applies,
		SpecificPartners:  raw.SpecificPartners,
		Type:              ctype,
		ZoneSystemName:    raw.ZoneSystem,
		AppliesToMultiple: raw.AppliesToMultiple,
		SpecialOverwrite:  raw.SpecialOverwrite,
		DomesticOverwrite: raw.DomesticOverwrite,
		DistanceThreshold: raw.DistanceThreshold,
		RouteSpecific:     toZonePairs(raw.RouteSpecific),
	}
	if raw.RouteCategories != nil {
		chart.HasRouteCategories = true
		chart.RouteCategories = *raw.RouteCategories
	}

	var err error
	switch ctype {
	case domain.ChartDistanceBased:
		chart.DistanceTables, err = decodeCabinTables[[]domain.DistanceBracket](raw.Cabins, source)
	case domain.ChartZoneBased:
		var tables map[domain.Cabin][]rawZonePair
		tables, err = decodeCabinTables[[]rawZonePair](raw.Cabins, source)
		if err == nil {
			chart.ZoneTables = make(map[domain.Cabin][]domain.ZonePair, len(tables))
			for cabin, pairs := range tables {
				chart.ZoneTables[cabin] = toZonePairs(pairs)
			}
		}
	case domain.ChartHybridDistanceZone:
		chart.Priority = domain.HybridPriority(raw.Priority)
		if chart.Priority != domain.DistanceFirst && chart.Priority != domain.ZoneFirst {
			return nil, domain.NewConfigError(source, "unknown hybrid priority %q", raw.Priority)
		}
		var tables map[domain.Cabin]rawHybridTable
		tables, err = decodeCabinTables[rawHybridTable](raw.Cabins, source)
		if err == nil {
			chart.HybridTables = make(map[domain.Cabin]domain.HybridTable, len(tables))
			for cabin, t := range tables {
				chart.HybridTables[cabin] = domain.HybridTable{
					Distance: t.Distance,
					Zones:    toZonePairs(t.Zones),
				}
			}
		}
	case domain.ChartDomesticOverwrite:
		if chart.DomesticDefault, err = cabinRates(raw.Default, source); err != nil {
			return nil, err
		}
		if len(raw.Exceptions) > 0 {
			chart.DomesticExceptions = make(map[string]map[domain.Cabin]int, len(raw.Exceptions))
			for country, rates := range raw.Exceptions {
				if chart.DomesticExceptions[country], err = cabinRates(rates, source); err != nil {
					return nil, err
				}
			}
		}
	case domain.ChartDynamic:
		// No tables to decode.
	}
	if err != nil {
		return nil, err
	}
	return chart, nil
}

type rawHybridTable struct {
	Distance []domain.DistanceBracket `json:"distance_based"`
	Zones    []rawZonePair            `json:"zone_based"`
}

// decodeCabinTables decodes a cabins object into per-cabin values of type T,
// validating cabin names.
func decodeCabinTables[T any](raw map[string]json.RawMessage, source string) (map[domain.Cabin]T, error) {
	out := make(map[domain.Cabin]T, len(raw))
	for name, data := range raw {
		cabin, err := domain.ParseCabin(name)
		if err != nil {
			return nil, domain.NewConfigError(source, "unknown cabin class %q", name)
		}
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, domain.NewConfigError(source, "cabin %s: %v", name, err)
		}
		out[cabin] = v
	}
	return out, nil
}

// validate runs the cross-file consistency checks. All failures are fatal.
func validate(ref *domain.ReferenceData) error {
	// A carrier belongs to at most one alliance, and every member is known.
	memberOf := make(map[string]string)
	for _, a := range ref.Alliances {
		for _, m := range a.Members {
			if !ref.HasCarrier(m) {
				return domain.NewConfigError(FileAlliances,
					"alliance %s: unknown carrier %s", a.Code, m)
			}
			if prev, dup := memberOf[m]; dup {
				return domain.NewConfigError(FileAlliances,
					"carrier %s belongs to both %s and %s", m, prev, a.Code)
			}
			memberOf[m] = a.Code
		}
	}

	for _, code := range ref.ProgramOrder {
		p := ref.Programs[code]
		for _, c := range p.SelfCarriers {
			if !ref.HasCarrier(c) {
				return domain.NewConfigError(FilePrograms,
					"program %s: unknown self carrier %s", code, c)
			}
		}
	}

	for i, ps := range ref.Partnerships {
		if _, ok := ref.Programs[ps.FFPCode]; !ok {
			return domain.NewConfigError(FilePartnerships,
				"record %d: unknown program %s", i, ps.FFPCode)
		}
		switch ps.Type {
		case domain.PartnershipAlliance:
			if ref.AllianceByCode(ps.AllianceCode) == nil {
				return domain.NewConfigError(FilePartnerships,
					"record %d: unknown alliance %s", i, ps.AllianceCode)
			}
		case domain.PartnershipIndividual:
			for _, c := range ps.Carriers {
				if !ref.HasCarrier(c) {
					return domain.NewConfigError(FilePartnerships,
						"record %d: unknown carrier %s", i, c)
				}
			}
		default:
			return domain.NewConfigError(FilePartnerships,
				"record %d: unknown partnership type %q", i, ps.Type)
		}
	}

	specials := make(map[string]string)
	domestics := make(map[string]string)
	for _, key := range ref.ChartOrder {
		chart := ref.Charts[key]
		if _, ok := ref.Programs[chart.FFPCode]; !ok {
			return domain.NewConfigError(FileCharts,
				"chart %s: unknown program %s", key, chart.FFPCode)
		}
		if chart.ZoneSystemName != "" {
			if _, ok := ref.ZoneSystems[chart.ZoneSystemName]; !ok {
				return domain.NewConfigError(FileCharts,
					"chart %s: unknown zone system %s", key, chart.ZoneSystemName)
			}
		}
		if chart.SpecialOverwrite {
			if prev, dup := specials[chart.FFPCode]; dup {
				return domain.NewConfigError(FileCharts,
					"program %s has special overwrite charts %s and %s", chart.FFPCode, prev, key)
			}
			specials[chart.FFPCode] = key
		}
		if chart.DomesticOverwrite {
			if prev, dup := domestics[chart.FFPCode]; dup {
				return domain.NewConfigError(FileCharts,
					"program %s has domestic overwrite charts %s and %s", chart.FFPCode, prev, key)
			}
			domestics[chart.FFPCode] = key
		}
	}
	return nil
}

// derivePartnerLists fills Program.RedeemPartners and EarnPartners from the
// partnership records, in record order, excluding self carriers.
func derivePartnerLists(ref *domain.ReferenceData) {
	for _, code := range ref.ProgramOrder {
		p := ref.Programs[code]
		p.RedeemPartners = partnersFor(ref, &p, domain.DirectionRedeem)
		p.EarnPartners = partnersFor(ref, &p, domain.DirectionEarn)
		ref.Programs[code] = p
	}
}

func partnersFor(ref *domain.ReferenceData, p *domain.Program, dir domain.PartnerDirection) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(carrier string) {
		if p.IsSelf(carrier) || seen[carrier] {
			return
		}
		seen[carrier] = true
		out = append(out, carrier)
	}
	for _, ps := range ref.Partnerships {
		if ps.FFPCode != p.Code || !ps.Relationship.Allows(dir) {
			continue
		}
		if ps.Type == domain.PartnershipAlliance {
			if a := ref.AllianceByCode(ps.AllianceCode); a != nil {
				for _, m := range a.Members {
					add(m)
				}
			}
			continue
		}
		for _, c := range ps.Carriers {
			add(c)
		}
	}
	return out
}
