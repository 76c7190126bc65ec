package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the award pricing engine.
// These are checked with errors.Is at the handler boundary and mapped
// to HTTP status codes.
var (
	// ErrInvalidRequest indicates the caller supplied malformed input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnknownCarrier indicates a carrier code that does not exist in the
	// loaded reference data. Raised at the boundary, not deep in resolution.
	ErrUnknownCarrier = errors.New("unknown carrier")

	// ErrUnknownProgram indicates an FFP code that does not exist in the
	// loaded reference data.
	ErrUnknownProgram = errors.New("unknown program")

	// ErrNoReferenceData indicates the engine was invoked before a data
	// bundle was loaded.
	ErrNoReferenceData = errors.New("reference data not loaded")

	// ErrNoSearchContext indicates no previous search is available.
	ErrNoSearchContext = errors.New("no previous search")
)

// ConfigError represents an inconsistency in the hand-authored reference
// data corpus: duplicate alliance membership, unknown carrier references,
// more than one special or domestic overwrite chart per program, and so on.
// Configuration errors are fatal - the application refuses to serve searches
// over inconsistent data.
type ConfigError struct {
	// Source names the data file or entity the inconsistency was found in
	// (e.g. "alliance.json", "chart AA_partner").
	Source string

	// Msg describes the inconsistency.
	Msg string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Source == "" {
		return "config: " + e.Msg
	}
	return fmt.Sprintf("config (%s): %s", e.Source, e.Msg)
}

// NewConfigError creates a ConfigError for the given source.
func NewConfigError(source, format string, args ...any) *ConfigError {
	return &ConfigError{
		Source: source,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// NewUnknownCarrierError wraps ErrUnknownCarrier with the offending code.
func NewUnknownCarrierError(code string) error {
	return fmt.Errorf("%w: %q", ErrUnknownCarrier, code)
}

// NewUnknownProgramError wraps ErrUnknownProgram with the offending code.
func NewUnknownProgramError(code string) error {
	return fmt.Errorf("%w: %q", ErrUnknownProgram, code)
}
