package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ffp-planner/award-pricing-engine/internal/domain"
	"github.com/ffp-planner/award-pricing-engine/internal/refdata"
)

// loadRef loads the fixture corpus shared by the pricing tests.
func loadRef(t *testing.T) *domain.ReferenceData {
	t.Helper()
	ref, err := refdata.Load("../../test/testdata/corpus")
	require.NoError(t, err)
	return ref
}

// seg builds a segment with the fixture's common defaults.
func seg(origin, destination, carrier string, cabin domain.Cabin, distance int) domain.Segment {
	return domain.Segment{
		Origin:        origin,
		Destination:   destination,
		Carrier:       carrier,
		Cabin:         cabin,
		DistanceMiles: distance,
	}
}
