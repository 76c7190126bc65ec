package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffp-planner/award-pricing-engine/internal/domain"
)

func TestProgramsForCarrier(t *testing.T) {
	ref := loadRef(t)

	tests := []struct {
		name    string
		carrier string
		dir     domain.PartnerDirection
		want    []string
	}{
		{
			name:    "redeem on AA: own program first, then alliance partners",
			carrier: "AA",
			dir:     domain.DirectionRedeem,
			want:    []string{"AA", "BA"},
		},
		{
			name:    "earn on AA includes the earn-only partnership",
			carrier: "AA",
			dir:     domain.DirectionEarn,
			want:    []string{"AA", "BA", "UA"},
		},
		{
			name:    "redeem on UA spans Star Alliance programs",
			carrier: "UA",
			dir:     domain.DirectionRedeem,
			want:    []string{"UA", "AC", "TK"},
		},
		{
			name:    "redeem on NH: individual redeem-only partnership counts",
			carrier: "NH",
			dir:     domain.DirectionRedeem,
			want:    []string{"AA", "AC", "UA", "TK"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ProgramsForCarrier(ref, tt.carrier, tt.dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProgramsForCarrier_Unknown(t *testing.T) {
	ref := loadRef(t)

	_, err := ProgramsForCarrier(ref, "ZZ", domain.DirectionRedeem)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownCarrier)
}

func TestProgramsForAllCarriers(t *testing.T) {
	ref := loadRef(t)

	got, err := ProgramsForAllCarriers(ref, []string{"UA", "LH"}, domain.DirectionRedeem)
	require.NoError(t, err)
	assert.Equal(t, []string{"AC", "TK", "UA"}, got, "sorted intersection")

	got, err = ProgramsForAllCarriers(ref, []string{"AA", "UA"}, domain.DirectionRedeem)
	require.NoError(t, err)
	assert.Empty(t, got, "no program covers both an OW and a pure SA carrier")

	got, err = ProgramsForAllCarriers(ref, nil, domain.DirectionRedeem)
	require.NoError(t, err)
	assert.Empty(t, got)
}
