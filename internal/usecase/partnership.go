// Package usecase implements the award pricing operations: partnership
// resolution, chart selection, price calculation, multi-segment
// orchestration, earning calculation and the award search use case that ties
// them together. All functions operate over an immutable reference data
// bundle and are safe for concurrent use.
package usecase

import (
	"sort"

	"github.com/ffp-planner/award-pricing-engine/internal/domain"
)

// ProgramsForCarrier resolves the programs a flight on the carrier can be
// redeemed or earned through: programs whose self carriers include it first,
// then partner programs, both in data order, deduplicated.
func ProgramsForCarrier(ref *domain.ReferenceData, carrier string, dir domain.PartnerDirection) ([]string, error) {
	if !ref.HasCarrier(carrier) {
		return nil, domain.NewUnknownCarrierError(carrier)
	}

	var out []string
	seen := make(map[string]bool)
	add := func(code string) {
		if !seen[code] {
			seen[code] = true
			out = append(out, code)
		}
	}

	for _, code := range ref.ProgramOrder {
		p := ref.Programs[code]
		if p.IsSelf(carrier) {
			add(code)
		}
	}
	for _, code := range ref.ProgramOrder {
		p := ref.Programs[code]
		partners := p.RedeemPartners
		if dir == domain.DirectionEarn {
			partners = p.EarnPartners
		}
		for _, c := range partners {
			if c == carrier {
				add(code)
				break
			}
		}
	}
	return out, nil
}

// ProgramsForAllCarriers resolves the programs that cover every carrier in
// the list, sorted by program code for a deterministic result.
func ProgramsForAllCarriers(ref *domain.ReferenceData, carriers []string, dir domain.PartnerDirection) ([]string, error) {
	if len(carriers) == 0 {
		return nil, nil
	}

	counts := make(map[string]int)
	distinct := 0
	seen := make(map[string]bool)
	for _, carrier := range carriers {
		if seen[carrier] {
			continue
		}
		seen[carrier] = true
		distinct++
		programs, err := ProgramsForCarrier(ref, carrier, dir)
		if err != nil {
			return nil, err
		}
		for _, code := range programs {
			counts[code]++
		}
	}

	var out []string
	for code, n := range counts {
		if n == distinct {
			out = append(out, code)
		}
	}
	sort.Strings(out)
	return out, nil
}
