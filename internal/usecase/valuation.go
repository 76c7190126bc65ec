package usecase

import (
	"math"
	"sort"

	"github.com/ffp-planner/award-pricing-engine/internal/domain"
)

// CompareValuations turns award prices into cash-equivalent totals using
// each program's cents-per-point figure. The surcharge is the cash paid
// alongside the miles and is the same for every entry. Total cost is
// kilo-miles x 10 x cents-per-point plus the surcharge, in dollars.
// Results sort by total ascending.
func CompareValuations(ref *domain.ReferenceData, req domain.ValuationRequest) ([]domain.ValuationComparison, error) {
	results := make([]domain.ValuationComparison, 0, len(req.Entries))
	for _, entry := range req.Entries {
		program, ok := ref.Programs[entry.FFPCode]
		if !ok {
			return nil, domain.NewUnknownProgramError(entry.FFPCode)
		}
		cpp := ref.Valuations[entry.FFPCode]
		value := round2(float64(entry.Miles) / 1000.0 * 10.0 * cpp)
		results = append(results, domain.ValuationComparison{
			FFPCode:       entry.FFPCode,
			ProgramName:   program.Name,
			Miles:         entry.Miles,
			CentsPerPoint: cpp,
			MilesValueUSD: value,
			TotalCostUSD:  round2(value + req.SurchargeUSD),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalCostUSD < results[j].TotalCostUSD
	})
	return results, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
