package domain

// Strategy is a multi-segment pricing strategy. The orchestrator dispatches
// on (program, carrier-mix case) through the policy table to pick one.
type Strategy string

// Multi-segment pricing strategies.
const (
	// StrategyCumulative sums segment distances and prices the whole journey
	// as one route on a single chart.
	StrategyCumulative Strategy = "cumulative"

	// StrategyPerSegment prices each segment independently and sums the
	// results.
	StrategyPerSegment Strategy = "per_segment"

	// StrategyMultiPart prices the aggregate itinerary on the program's
	// dedicated whole-itinerary chart.
	StrategyMultiPart Strategy = "multi_part"

	// StrategyAllianceCumulative prices cumulatively only when every
	// non-self carrier belongs to the program's partner alliance, and yields
	// an explicit not-allowed outcome otherwise.
	StrategyAllianceCumulative Strategy = "alliance_cumulative"

	// StrategyDynamicClosedList yields a dynamic outcome when every carrier
	// sits inside the program's closed partner list, and falls back to
	// multi-part aggregation otherwise.
	StrategyDynamicClosedList Strategy = "dynamic_closed_list"

	// StrategyReject marks carrier mixes the program does not publish awards
	// for at all.
	StrategyReject Strategy = "reject"
)

// PolicyKey identifies one cell of the policy table.
type PolicyKey struct {
	FFPCode string
	Case    MixCase
}

// PolicyTable maps (program, carrier-mix case) to a pricing strategy. It is
// derived once at load time and read-only afterwards.
type PolicyTable map[PolicyKey]Strategy

// Lookup returns the strategy for the program and case, defaulting to
// multi-part aggregation.
func (t PolicyTable) Lookup(ffpCode string, mixCase MixCase) Strategy {
	if s, ok := t[PolicyKey{FFPCode: ffpCode, Case: mixCase}]; ok {
		return s
	}
	return StrategyMultiPart
}

// policyOverrides holds program-specific strategy exceptions that the
// program configuration alone cannot express.
var policyOverrides = map[PolicyKey]Strategy{
	// Aeroplan prices dynamically whenever every carrier is inside its
	// closed dynamic-partner list, mixed itineraries included.
	{FFPCode: "AC", Case: CaseAllSelf}:          StrategyDynamicClosedList,
	{FFPCode: "AC", Case: CaseSinglePartner}:    StrategyDynamicClosedList,
	{FFPCode: "AC", Case: CaseSelfPlusPartner}:  StrategyDynamicClosedList,
	{FFPCode: "AC", Case: CaseMultiplePartners}: StrategyDynamicClosedList,
}

// BuildPolicyTable derives the policy table from program configuration.
// Programs flagged for separate segment pricing price every case per
// segment; all other programs aggregate every case on their whole-itinerary
// chart. Program-specific overrides are applied last.
func BuildPolicyTable(programs map[string]Program, order []string) PolicyTable {
	t := make(PolicyTable, len(programs)*4)
	cases := []MixCase{CaseAllSelf, CaseSinglePartner, CaseSelfPlusPartner, CaseMultiplePartners}
	for _, code := range order {
		s := StrategyMultiPart
		if programs[code].SeparateSegmentPricing {
			s = StrategyPerSegment
		}
		for _, c := range cases {
			t[PolicyKey{FFPCode: code, Case: c}] = s
		}
	}
	for key, s := range policyOverrides {
		if _, ok := programs[key.FFPCode]; ok {
			t[key] = s
		}
	}
	return t
}
