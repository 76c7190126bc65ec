package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ffp-planner/award-pricing-engine/internal/domain"
	"github.com/ffp-planner/award-pricing-engine/internal/infrastructure/geo"
	"github.com/ffp-planner/award-pricing-engine/internal/infrastructure/timeutil"
)

//go:generate mockgen -destination=../../test/mock/refdata.go -package=mock github.com/ffp-planner/award-pricing-engine/internal/usecase ReferenceProvider,ReferenceReloader

// ReferenceProvider hands out the active reference data bundle.
type ReferenceProvider interface {
	Current() (*domain.ReferenceData, error)
}

// ReferenceReloader reloads the reference data corpus from its source.
type ReferenceReloader interface {
	Reload() error
}

// AwardSearchUseCase defines the award pricing operations exposed to the
// transport layer.
type AwardSearchUseCase interface {
	// Search prices the itinerary under every program, evaluates all
	// contiguous sub-ranges and computes the cheapest cover. The result is
	// stored as the current search context.
	Search(ctx context.Context, it domain.Itinerary) (*domain.AwardSearchResult, error)

	// Earnings computes accrued miles for a flown segment across programs.
	Earnings(ctx context.Context, req domain.EarningRequest) ([]domain.EarningResult, error)

	// CompareValuations turns miles amounts into cash-equivalent totals.
	CompareValuations(ctx context.Context, req domain.ValuationRequest) ([]domain.ValuationComparison, error)

	// LastSearch returns the stored search context, or
	// domain.ErrNoSearchContext.
	LastSearch(ctx context.Context) (*domain.AwardSearchResult, error)

	// ClearSearch drops the stored search context.
	ClearSearch(ctx context.Context) error

	// ReloadData replaces the reference data bundle from its source.
	ReloadData(ctx context.Context) error
}

// awardSearchUseCase implements AwardSearchUseCase over an immutable
// reference bundle snapshot per call.
type awardSearchUseCase struct {
	provider ReferenceProvider
	reloader ReferenceReloader
	clock    timeutil.Clock
	log      zerolog.Logger

	mu   sync.RWMutex
	last *domain.AwardSearchResult
}

var _ AwardSearchUseCase = (*awardSearchUseCase)(nil)

// NewAwardSearchUseCase creates the use case. reloader may be nil when the
// deployment has no reload surface.
func NewAwardSearchUseCase(provider ReferenceProvider, reloader ReferenceReloader, clock timeutil.Clock, log zerolog.Logger) AwardSearchUseCase {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &awardSearchUseCase{
		provider: provider,
		reloader: reloader,
		clock:    clock,
		log:      log.With().Str("component", "award_search").Logger(),
	}
}

// Search implements AwardSearchUseCase.Search.
func (uc *awardSearchUseCase) Search(ctx context.Context, it domain.Itinerary) (*domain.AwardSearchResult, error) {
	if err := it.Validate(); err != nil {
		return nil, err
	}
	ref, err := uc.provider.Current()
	if err != nil {
		return nil, err
	}
	if err := uc.resolveDistances(ref, &it); err != nil {
		return nil, err
	}
	for _, carrier := range it.Carriers() {
		if !ref.HasCarrier(carrier) {
			return nil, domain.NewUnknownCarrierError(carrier)
		}
	}

	start := uc.clock.Now()
	result := &domain.AwardSearchResult{
		SearchID:  uuid.NewString(),
		CreatedAt: start,
		Itinerary: it,
	}

	for _, ffpCode := range ref.ProgramOrder {
		price, err := PriceItinerary(ref, ffpCode, &it)
		if err != nil {
			return nil, err
		}
		result.Overall = append(result.Overall, price)
	}
	domain.SortProgramPrices(result.Overall)

	if len(it.Segments) > 1 {
		evals, err := EvaluateRanges(ctx, ref, &it)
		if err != nil {
			return nil, err
		}
		result.Ranges = evals
		result.Optimization = Optimize(&it, evals)
	}

	uc.mu.Lock()
	uc.last = result
	uc.mu.Unlock()

	uc.log.Info().
		Str("search_id", result.SearchID).
		Int("segments", len(it.Segments)).
		Int("programs", len(result.Overall)).
		Dur("duration", uc.clock.Now().Sub(start)).
		Msg("award search completed")
	return result, nil
}

// resolveDistances fills zero segment distances from airport coordinates.
func (uc *awardSearchUseCase) resolveDistances(ref *domain.ReferenceData, it *domain.Itinerary) error {
	for i := range it.Segments {
		seg := &it.Segments[i]
		if seg.DistanceMiles > 0 {
			continue
		}
		from, okFrom := ref.Airports[seg.Origin]
		to, okTo := ref.Airports[seg.Destination]
		if !okFrom || !okTo {
			return fmt.Errorf("%w: segment %d: distance required when %s-%s are not airports",
				domain.ErrInvalidRequest, i+1, seg.Origin, seg.Destination)
		}
		seg.DistanceMiles = geo.DistanceMiles(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
	}
	return nil
}

// Earnings implements AwardSearchUseCase.Earnings.
func (uc *awardSearchUseCase) Earnings(ctx context.Context, req domain.EarningRequest) ([]domain.EarningResult, error) {
	if !req.CabinClass.IsValid() {
		return nil, fmt.Errorf("%w: unknown cabin class %q", domain.ErrInvalidRequest, string(req.CabinClass))
	}
	if req.BookingCode == "" {
		return nil, fmt.Errorf("%w: booking code is required", domain.ErrInvalidRequest)
	}
	if req.DistanceMiles <= 0 {
		return nil, fmt.Errorf("%w: distance must be positive", domain.ErrInvalidRequest)
	}
	ref, err := uc.provider.Current()
	if err != nil {
		return nil, err
	}
	return CalculateEarnings(ref, req)
}

// CompareValuations implements AwardSearchUseCase.CompareValuations.
func (uc *awardSearchUseCase) CompareValuations(ctx context.Context, req domain.ValuationRequest) ([]domain.ValuationComparison, error) {
	if len(req.Entries) == 0 {
		return nil, fmt.Errorf("%w: at least one entry is required", domain.ErrInvalidRequest)
	}
	if req.SurchargeUSD < 0 {
		return nil, fmt.Errorf("%w: surcharge must not be negative", domain.ErrInvalidRequest)
	}
	ref, err := uc.provider.Current()
	if err != nil {
		return nil, err
	}
	return CompareValuations(ref, req)
}

// LastSearch implements AwardSearchUseCase.LastSearch.
func (uc *awardSearchUseCase) LastSearch(ctx context.Context) (*domain.AwardSearchResult, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.last == nil {
		return nil, domain.ErrNoSearchContext
	}
	return uc.last, nil
}

// ClearSearch implements AwardSearchUseCase.ClearSearch.
func (uc *awardSearchUseCase) ClearSearch(ctx context.Context) error {
	uc.mu.Lock()
	uc.last = nil
	uc.mu.Unlock()
	return nil
}

// ReloadData implements AwardSearchUseCase.ReloadData.
func (uc *awardSearchUseCase) ReloadData(ctx context.Context) error {
	if uc.reloader == nil {
		return fmt.Errorf("%w: reload not configured", domain.ErrInvalidRequest)
	}
	if err := uc.reloader.Reload(); err != nil {
		return err
	}
	uc.log.Info().Msg("reference data reloaded")
	return nil
}
