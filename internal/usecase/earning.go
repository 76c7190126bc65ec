package usecase

import (
	"math"
	"sort"

	"github.com/ffp-planner/award-pricing-engine/internal/domain"
)

// CalculateEarnings computes the miles a flown segment accrues in every
// program with a matching accrual rule. Programs without a rule for the
// carrier, cabin and booking code are simply absent from the result.
// Results sort by miles descending; ties keep program data order.
func CalculateEarnings(ref *domain.ReferenceData, req domain.EarningRequest) ([]domain.EarningResult, error) {
	if !ref.HasCarrier(req.Carrier) {
		return nil, domain.NewUnknownCarrierError(req.Carrier)
	}

	var results []domain.EarningResult
	for _, ffpCode := range ref.ProgramOrder {
		rules := ref.AccrualRules[ffpCode][req.Carrier][req.CabinClass]
		rule, ok := matchRule(rules, req.BookingCode)
		if !ok {
			continue
		}
		program := ref.Programs[ffpCode]
		earned := float64(req.DistanceMiles) * rule.EarningRate
		minApplied := earned < rule.Minimum
		if minApplied {
			earned = rule.Minimum
		}
		results = append(results, domain.EarningResult{
			FFPCode:        ffpCode,
			ProgramName:    program.Name,
			Miles:          int(math.Round(earned)),
			EarningRate:    rule.EarningRate,
			MinimumApplied: minApplied,
			FamilyPooling:  program.FamilyPooling,
			Expiration:     program.Expiration,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Miles > results[j].Miles
	})
	return results, nil
}

// matchRule returns the first rule covering the booking code.
func matchRule(rules []domain.AccrualRule, bookingCode string) (domain.AccrualRule, bool) {
	for i := range rules {
		if rules[i].Matches(bookingCode) {
			return rules[i], true
		}
	}
	return domain.AccrualRule{}, false
}
