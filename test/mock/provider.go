// Package mock provides test doubles for the award pricing engine.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific bundles).
package mock

import (
	"sync"
	"time"

	"github.com/ffp-planner/award-pricing-engine/internal/domain"
	"github.com/ffp-planner/award-pricing-engine/internal/usecase"
)

// RefProvider is a configurable mock implementation of
// usecase.ReferenceProvider and usecase.ReferenceReloader. It supports
// configurable delays, errors, and bundles for testing reload behavior and
// concurrent access.
type RefProvider struct {
	bundle      *domain.ReferenceData
	err         error
	reloadErr   error
	delay       time.Duration
	callCount   int
	reloadCount int
	mu          sync.Mutex
}

// NewRefProvider creates a new mock provider.
// The provider is configured using the builder pattern methods.
func NewRefProvider() *RefProvider {
	return &RefProvider{}
}

// WithBundle configures the provider to hand out the given bundle.
func (p *RefProvider) WithBundle(ref *domain.ReferenceData) *RefProvider {
	p.bundle = ref
	return p
}

// WithError configures Current to return the given error.
func (p *RefProvider) WithError(err error) *RefProvider {
	p.err = err
	return p
}

// WithReloadError configures Reload to return the given error.
func (p *RefProvider) WithReloadError(err error) *RefProvider {
	p.reloadErr = err
	return p
}

// WithDelay configures the provider to wait the given duration before
// responding. This is useful for widening concurrency windows.
func (p *RefProvider) WithDelay(d time.Duration) *RefProvider {
	p.delay = d
	return p
}

// Current implements usecase.ReferenceProvider.
func (p *RefProvider) Current() (*domain.ReferenceData, error) {
	p.mu.Lock()
	p.callCount++
	delay, err, bundle := p.delay, p.err, p.bundle
	p.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if err != nil {
		return nil, err
	}
	if bundle == nil {
		return nil, domain.ErrNoReferenceData
	}
	return bundle, nil
}

// Reload implements usecase.ReferenceReloader. On success it keeps the
// configured bundle in place.
func (p *RefProvider) Reload() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reloadCount++
	return p.reloadErr
}

// Swap replaces the bundle, mimicking a successful live reload.
func (p *RefProvider) Swap(ref *domain.ReferenceData) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bundle = ref
}

// CallCount returns the number of times Current was called.
func (p *RefProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// ReloadCount returns the number of times Reload was called.
func (p *RefProvider) ReloadCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reloadCount
}

// Reset resets the call counts to zero.
func (p *RefProvider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
	p.reloadCount = 0
}

// Ensure RefProvider implements the use case interfaces at compile time.
var (
	_ usecase.ReferenceProvider = (*RefProvider)(nil)
	_ usecase.ReferenceReloader = (*RefProvider)(nil)
)
