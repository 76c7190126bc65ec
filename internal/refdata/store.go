package refdata

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/ffp-planner/award-pricing-engine/internal/domain"
)

// Provider hands out the current reference data bundle. Use cases depend on
// this interface so tests can supply a fixed bundle.
type Provider interface {
	// Current returns the active bundle, or domain.ErrNoReferenceData when
	// nothing has been loaded yet.
	Current() (*domain.ReferenceData, error)
}

// Store owns the active bundle and reloads it from disk on demand. Reload is
// all-or-nothing: a failed load leaves the previous bundle serving.
type Store struct {
	dir     string
	log     zerolog.Logger
	current atomic.Pointer[domain.ReferenceData]
}

var _ Provider = (*Store)(nil)

// NewStore creates a store reading from dir. No data is loaded until the
// first Reload call.
func NewStore(dir string, log zerolog.Logger) *Store {
	return &Store{
		dir: dir,
		log: log.With().Str("component", "refdata").Logger(),
	}
}

// Current implements Provider.
func (s *Store) Current() (*domain.ReferenceData, error) {
	ref := s.current.Load()
	if ref == nil {
		return nil, domain.ErrNoReferenceData
	}
	return ref, nil
}

// Reload loads the corpus from disk and swaps it in atomically. In-flight
// searches keep the bundle they started with.
func (s *Store) Reload() error {
	ref, err := Load(s.dir)
	if err != nil {
		s.log.Error().Err(err).Str("dir", s.dir).Msg("reference data load failed")
		return err
	}
	s.current.Store(ref)
	s.log.Info().
		Int("carriers", len(ref.Carriers)).
		Int("programs", len(ref.Programs)).
		Int("charts", len(ref.Charts)).
		Int("zone_systems", len(ref.ZoneSystems)).
		Msg("reference data loaded")
	return nil
}
