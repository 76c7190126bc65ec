package usecase

import (
	"context"
	"sync"

	"github.com/ffp-planner/award-pricing-engine/internal/domain"
)

// rangeWorkers bounds the fan-out when pricing sub-ranges concurrently.
const rangeWorkers = 4

// segmentRange identifies a contiguous run of segments, half-open [From, To).
type segmentRange struct {
	From, To int
}

// rangeOutcome pairs a range with its per-program prices.
type rangeOutcome struct {
	rng    segmentRange
	prices []domain.ProgramPrice
	err    error
}

// EvaluateRanges prices every contiguous sub-range of the itinerary under
// every program. Ranges are priced concurrently over the immutable bundle;
// the returned slice is in deterministic range order (by start, then end).
func EvaluateRanges(ctx context.Context, ref *domain.ReferenceData, it *domain.Itinerary) ([]domain.RangeEvaluation, error) {
	n := len(it.Segments)
	var ranges []segmentRange
	for i := 0; i < n; i++ {
		for j := i + 1; j <= n; j++ {
			ranges = append(ranges, segmentRange{From: i, To: j})
		}
	}

	outcomes := make([]rangeOutcome, len(ranges))
	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := rangeWorkers
	if len(ranges) < workers {
		workers = len(ranges)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				outcomes[idx] = evaluateRange(ref, it, ranges[idx])
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(jobs)
		for idx := range ranges {
			select {
			case jobs <- idx:
			case <-ctx.Done():
				return
			}
		}
	}()
	wg.Wait()
	<-done
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	evals := make([]domain.RangeEvaluation, 0, len(outcomes))
	for _, out := range outcomes {
		if out.err != nil {
			return nil, out.err
		}
		evals = append(evals, domain.RangeEvaluation{
			FromSegment: out.rng.From + 1,
			ToSegment:   out.rng.To,
			Origin:      it.Segments[out.rng.From].Origin,
			Destination: it.Segments[out.rng.To-1].Destination,
			Prices:      out.prices,
		})
	}
	return evals, nil
}

// evaluateRange prices one sub-range under every program, cheapest first.
func evaluateRange(ref *domain.ReferenceData, it *domain.Itinerary, rng segmentRange) rangeOutcome {
	sub := it.Slice(rng.From, rng.To)
	out := rangeOutcome{rng: rng}
	for _, ffpCode := range ref.ProgramOrder {
		price, err := PriceItinerary(ref, ffpCode, &sub)
		if err != nil {
			out.err = err
			return out
		}
		out.prices = append(out.prices, price)
	}
	domain.SortProgramPrices(out.prices)
	return out
}

// Optimize finds the cheapest partition of the itinerary into contiguous
// parts, each booked through its best program. Only numeric outcomes are
// edges; dynamic and error outcomes cannot participate in a cover.
func Optimize(it *domain.Itinerary, evals []domain.RangeEvaluation) *domain.Optimization {
	n := len(it.Segments)

	// cost[i][j] is the cheapest numeric price of segments [i, j), j > i.
	type edge struct {
		miles  int
		choice *domain.ProgramPrice
	}
	cost := make(map[segmentRange]edge, len(evals))
	for i := range evals {
		ev := &evals[i]
		for p := range ev.Prices {
			if ev.Prices[p].Outcome.IsMiles() {
				cost[segmentRange{From: ev.FromSegment - 1, To: ev.ToSegment}] = edge{
					miles:  ev.Prices[p].Outcome.Miles,
					choice: &ev.Prices[p],
				}
				break
			}
		}
	}

	const infeasible = -1
	best := make([]int, n+1)
	split := make([]int, n+1)
	best[n] = 0
	for i := n - 1; i >= 0; i-- {
		best[i] = infeasible
		// Ascending j keeps the first-encountered minimum on ties.
		for j := i + 1; j <= n; j++ {
			e, ok := cost[segmentRange{From: i, To: j}]
			if !ok || best[j] == infeasible {
				continue
			}
			if total := e.miles + best[j]; best[i] == infeasible || total < best[i] {
				best[i] = total
				split[i] = j
			}
		}
	}

	if best[0] == infeasible {
		return &domain.Optimization{Feasible: false, Reason: domain.ReasonNoCombination}
	}

	opt := &domain.Optimization{Feasible: true, TotalMiles: best[0]}
	for i := 0; i < n; {
		j := split[i]
		e := cost[segmentRange{From: i, To: j}]
		opt.Parts = append(opt.Parts, domain.PartChoice{
			FromSegment: i + 1,
			ToSegment:   j,
			FFPCode:     e.choice.FFPCode,
			ProgramName: e.choice.ProgramName,
			ChartUsed:   e.choice.ChartUsed,
			Miles:       e.miles,
		})
		i = j
	}
	return opt
}
