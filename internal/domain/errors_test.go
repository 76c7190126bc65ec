package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("alliance.json", "carrier %s belongs to %d alliances", "AA", 2)

	assert.Equal(t, "config (alliance.json): carrier AA belongs to 2 alliances", err.Error())
	assert.True(t, IsConfigError(err))
	assert.True(t, IsConfigError(fmt.Errorf("loading: %w", err)))
	assert.False(t, IsConfigError(errors.New("plain")))

	bare := &ConfigError{Msg: "no data directory"}
	assert.Equal(t, "config: no data directory", bare.Error())
}

func TestUnknownEntityErrors(t *testing.T) {
	err := NewUnknownCarrierError("ZZ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCarrier)
	assert.Contains(t, err.Error(), `"ZZ"`)

	err = NewUnknownProgramError("ZZ")
	assert.ErrorIs(t, err, ErrUnknownProgram)
}

func TestSentinelWrapping(t *testing.T) {
	err := fmt.Errorf("%w: segment 2: carrier is required", ErrInvalidRequest)
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.NotErrorIs(t, err, ErrUnknownCarrier)
}
