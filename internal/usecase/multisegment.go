package usecase

import (
	"strings"

	"github.com/ffp-planner/award-pricing-engine/internal/domain"
)

// itineraryCabin returns the highest cabin booked on any segment. Cumulative
// pricing charges the whole journey at the best cabin flown.
func itineraryCabin(it *domain.Itinerary) domain.Cabin {
	rank := func(c domain.Cabin) int {
		for i, v := range domain.CabinOrder {
			if v == c {
				return i
			}
		}
		return -1
	}
	best := it.Segments[0].Cabin
	for i := 1; i < len(it.Segments); i++ {
		if rank(it.Segments[i].Cabin) > rank(best) {
			best = it.Segments[i].Cabin
		}
	}
	return best
}

// PriceItinerary prices a whole itinerary under one program. Single segments
// go through the single-route pipeline; multi-segment itineraries dispatch
// on the program's strategy for the carrier mix.
func PriceItinerary(ref *domain.ReferenceData, ffpCode string, it *domain.Itinerary) (domain.ProgramPrice, error) {
	program, ok := ref.Programs[ffpCode]
	if !ok {
		return domain.ProgramPrice{}, domain.NewUnknownProgramError(ffpCode)
	}
	if len(it.Segments) == 1 {
		seg := it.Segments[0]
		return PriceForProgram(ref, ffpCode, seg.Carrier, seg.Origin, seg.Destination, seg.Cabin, seg.DistanceMiles)
	}

	price := domain.ProgramPrice{ProgramName: program.Name, FFPCode: ffpCode}

	// Every carrier must be reachable through the program at all.
	for _, carrier := range it.Carriers() {
		if !program.IsSelf(carrier) && !contains(program.RedeemPartners, carrier) {
			price.Outcome = domain.ErrorOutcome(domain.ReasonNoChart)
			return price, nil
		}
	}

	mixCase := domain.ClassifyMix(it, &program)
	switch ref.Policies.Lookup(ffpCode, mixCase) {
	case domain.StrategyCumulative:
		return priceCumulative(ref, &program, price, it)
	case domain.StrategyPerSegment:
		return pricePerSegment(ref, price, it)
	case domain.StrategyMultiPart:
		return priceMultiPart(ref, price, it)
	case domain.StrategyAllianceCumulative:
		return priceAllianceCumulative(ref, &program, price, it)
	case domain.StrategyDynamicClosedList:
		return priceDynamicClosedList(ref, &program, price, it)
	default:
		price.Outcome = domain.ErrorOutcome(domain.ReasonMixNotSupported)
		return price, nil
	}
}

// priceCumulative prices the journey as one route from first origin to last
// destination, summing distances. Valid only when one carrier (or the
// program's own carriers) flies every segment.
func priceCumulative(ref *domain.ReferenceData, program *domain.Program, price domain.ProgramPrice, it *domain.Itinerary) (domain.ProgramPrice, error) {
	carrier := it.Segments[0].Carrier
	for _, c := range it.Carriers() {
		if !program.IsSelf(c) {
			carrier = c
			break
		}
	}

	origin := it.Segments[0].Origin
	destination := it.Segments[len(it.Segments)-1].Destination
	chart, err := SelectChart(ref, price.FFPCode, carrier, origin, destination)
	if err != nil {
		return domain.ProgramPrice{}, err
	}
	if chart == nil {
		price.Outcome = domain.ErrorOutcome(domain.ReasonNoChart)
		return price, nil
	}
	price.ChartUsed = chart.Key
	price.Outcome = PriceRoute(ref, chart, origin, destination, itineraryCabin(it), it.TotalDistance())
	return price, nil
}

// pricePerSegment prices each segment independently and sums. Any segment
// that cannot be priced decides the whole outcome.
func pricePerSegment(ref *domain.ReferenceData, price domain.ProgramPrice, it *domain.Itinerary) (domain.ProgramPrice, error) {
	total := 0
	var charts []string
	for i := range it.Segments {
		seg := it.Segments[i]
		segPrice, err := PriceForProgram(ref, price.FFPCode, seg.Carrier, seg.Origin, seg.Destination, seg.Cabin, seg.DistanceMiles)
		if err != nil {
			return domain.ProgramPrice{}, err
		}
		if !segPrice.Outcome.IsMiles() {
			price.ChartUsed = segPrice.ChartUsed
			price.Outcome = segPrice.Outcome
			return price, nil
		}
		total += segPrice.Outcome.Miles
		if segPrice.ChartUsed != "" && !contains(charts, segPrice.ChartUsed) {
			charts = append(charts, segPrice.ChartUsed)
		}
	}
	price.ChartUsed = strings.Join(charts, "+")
	price.Outcome = domain.MilesOutcome(total)
	return price, nil
}

// priceMultiPart prices the aggregate journey on the program's
// whole-itinerary chart.
func priceMultiPart(ref *domain.ReferenceData, price domain.ProgramPrice, it *domain.Itinerary) (domain.ProgramPrice, error) {
	origin := it.Segments[0].Origin
	destination := it.Segments[len(it.Segments)-1].Destination
	chart, err := SelectMultiChart(ref, price.FFPCode, origin, destination)
	if err != nil {
		return domain.ProgramPrice{}, err
	}
	if chart == nil {
		price.Outcome = domain.ErrorOutcome(domain.ReasonNoChart)
		return price, nil
	}
	price.ChartUsed = chart.Key
	price.Outcome = PriceRoute(ref, chart, origin, destination, itineraryCabin(it), it.TotalDistance())
	return price, nil
}

// priceAllianceCumulative gates cumulative pricing on alliance membership:
// every non-self carrier must belong to the program's partner alliance, or
// the mix is explicitly not allowed.
func priceAllianceCumulative(ref *domain.ReferenceData, program *domain.Program, price domain.ProgramPrice, it *domain.Itinerary) (domain.ProgramPrice, error) {
	alliance := partnerAlliance(ref, program)
	if alliance == nil {
		price.Outcome = domain.ErrorOutcome(domain.ReasonMixNotAllowed)
		return price, nil
	}
	for _, carrier := range it.Carriers() {
		if program.IsSelf(carrier) {
			continue
		}
		if !alliance.Contains(carrier) {
			price.Outcome = domain.ErrorOutcome(domain.ReasonMixNotAllowed)
			return price, nil
		}
	}
	return priceCumulative(ref, program, price, it)
}

// partnerAlliance returns the alliance the program redeems through, or nil
// when it has no alliance-wide redemption partnership.
func partnerAlliance(ref *domain.ReferenceData, program *domain.Program) *domain.Alliance {
	for i := range ref.Partnerships {
		p := &ref.Partnerships[i]
		if p.FFPCode != program.Code || p.Type != domain.PartnershipAlliance {
			continue
		}
		if !p.Relationship.Allows(domain.DirectionRedeem) {
			continue
		}
		return ref.AllianceByCode(p.AllianceCode)
	}
	return nil
}

// priceDynamicClosedList implements the Aeroplan rule: when every carrier
// sits inside the program's closed dynamic list the price is Dynamic;
// otherwise the journey falls back to aggregate multi-part pricing.
func priceDynamicClosedList(ref *domain.ReferenceData, program *domain.Program, price domain.ProgramPrice, it *domain.Itinerary) (domain.ProgramPrice, error) {
	closed, chartKey := dynamicClosedList(ref, program)
	all := true
	for _, carrier := range it.Carriers() {
		if !contains(closed, carrier) {
			all = false
			break
		}
	}
	if all {
		price.ChartUsed = chartKey
		price.Outcome = domain.DynamicOutcome()
		return price, nil
	}
	return priceMultiPart(ref, price, it)
}

// dynamicClosedList collects the program's own carriers plus the specific
// partners of its dynamic partner chart.
func dynamicClosedList(ref *domain.ReferenceData, program *domain.Program) ([]string, string) {
	closed := append([]string{program.Code}, program.SelfCarriers...)
	chartKey := ""
	for _, chart := range ref.ChartsOwnedBy(program.Code) {
		if chart.Type != domain.ChartDynamic || chart.AppliesTo != domain.AppliesSpecific {
			continue
		}
		chartKey = chart.Key
		for _, c := range chart.SpecificPartners {
			if !contains(closed, c) {
				closed = append(closed, c)
			}
		}
		break
	}
	return closed, chartKey
}
