package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffp-planner/award-pricing-engine/internal/domain"
)

func TestPriceRoute_DistanceBracket(t *testing.T) {
	ref := loadRef(t)
	chart := ref.Charts["AA_self"]

	// 1200 flown miles lands in the 501-1500 bracket.
	out := PriceRoute(ref, chart, "JFK", "LHR", domain.CabinEconomy, 1200)
	require.True(t, out.IsMiles())
	assert.Equal(t, 12500, out.Miles)

	out = PriceRoute(ref, chart, "JFK", "LHR", domain.CabinEconomy, 8001)
	require.True(t, out.IsError())
	assert.Equal(t, domain.ReasonDistanceExceeded, out.Reason)

	out = PriceRoute(ref, chart, "JFK", "LHR", domain.CabinFirst, 1200)
	require.True(t, out.IsError())
	assert.Equal(t, domain.ReasonCabinUnavailable, out.Reason)
}

func TestPriceRoute_ZoneSymmetry(t *testing.T) {
	ref := loadRef(t)
	chart := ref.Charts["AA_partner"]

	out := PriceRoute(ref, chart, "JFK", "LHR", domain.CabinBusiness, 3451)
	require.True(t, out.IsMiles())
	assert.Equal(t, 30000, out.Miles)

	// Reversed direction prices identically.
	back := PriceRoute(ref, chart, "LHR", "JFK", domain.CabinBusiness, 3451)
	assert.Equal(t, out, back)
}

func TestPriceRoute_ZoneRouteUndefined(t *testing.T) {
	ref := loadRef(t)
	chart := ref.Charts["UA_partner"]

	// The UA zone system has no asia zone, so HKG never resolves.
	out := PriceRoute(ref, chart, "JFK", "HKG", domain.CabinEconomy, 8054)
	require.True(t, out.IsError())
	assert.Equal(t, domain.ReasonRouteUndefined, out.Reason)
}

func TestPriceRoute_HybridDistanceFirst(t *testing.T) {
	ref := loadRef(t)
	chart := ref.Charts["UA_hybrid"]

	// Inside the threshold the brackets win.
	out := PriceRoute(ref, chart, "JFK", "FRA", domain.CabinEconomy, 3851)
	require.True(t, out.IsMiles())
	assert.Equal(t, 25000, out.Miles)

	// Beyond the threshold the lookup falls through to zone pairs.
	out = PriceRoute(ref, chart, "JFK", "FRA", domain.CabinEconomy, 5100)
	require.True(t, out.IsMiles())
	assert.Equal(t, 60000, out.Miles)

	// Beyond the threshold with unresolvable zones nothing can price it.
	out = PriceRoute(ref, chart, "JFK", "HKG", domain.CabinEconomy, 8054)
	require.True(t, out.IsError())
	assert.Equal(t, domain.ReasonRouteUndefined, out.Reason)
}

func TestPriceRoute_Dynamic(t *testing.T) {
	ref := loadRef(t)

	out := PriceRoute(ref, ref.Charts["AC_DynPart"], "JFK", "FRA", domain.CabinBusiness, 3851)
	assert.True(t, out.IsDynamic())
}

func TestPriceRoute_DomesticChart(t *testing.T) {
	ref := loadRef(t)
	chart := ref.Charts["AA_domestic"]

	// The per-country exception beats the chart default.
	out := PriceRoute(ref, chart, "JFK", "ORD", domain.CabinEconomy, 740)
	require.True(t, out.IsMiles())
	assert.Equal(t, 7500, out.Miles)

	out = PriceRoute(ref, chart, "JFK", "ORD", domain.CabinFirst, 740)
	require.True(t, out.IsError())
	assert.Equal(t, domain.ReasonCabinUnavailable, out.Reason)
}

func TestPriceRoute_SystemDomesticOverride(t *testing.T) {
	ref := loadRef(t)
	chart := ref.Charts["TK_self"]

	// Hawaii routes take the hawaii rate over everything else.
	out := PriceRoute(ref, chart, "HNL", "LAX", domain.CabinEconomy, 2556)
	require.True(t, out.IsMiles())
	assert.Equal(t, 22500, out.Miles)

	// Turkish domestic routes take the country exception.
	out = PriceRoute(ref, chart, "IST", "TR", domain.CabinEconomy, 200)
	require.True(t, out.IsMiles())
	assert.Equal(t, 10000, out.Miles)

	// US mainland domestic falls to the system default.
	out = PriceRoute(ref, chart, "JFK", "ORD", domain.CabinEconomy, 740)
	require.True(t, out.IsMiles())
	assert.Equal(t, 7500, out.Miles)
}

func TestPriceRoute_NilChart(t *testing.T) {
	ref := loadRef(t)

	out := PriceRoute(ref, nil, "JFK", "LHR", domain.CabinEconomy, 3451)
	require.True(t, out.IsError())
	assert.Equal(t, domain.ReasonNoChart, out.Reason)
}

func TestPriceForProgram(t *testing.T) {
	ref := loadRef(t)

	price, err := PriceForProgram(ref, "AA", "BA", "JFK", "LHR", domain.CabinBusiness, 3451)
	require.NoError(t, err)
	assert.Equal(t, "AAdvantage", price.ProgramName)
	assert.Equal(t, "AA_partner", price.ChartUsed)
	require.True(t, price.Outcome.IsMiles())
	assert.Equal(t, 30000, price.Outcome.Miles)

	// Unreachable carrier yields the no-chart outcome, not an error.
	price, err = PriceForProgram(ref, "AA", "LH", "JFK", "FRA", domain.CabinEconomy, 3851)
	require.NoError(t, err)
	assert.True(t, price.Outcome.IsError())
	assert.Equal(t, domain.ReasonNoChart, price.Outcome.Reason)
}

func TestPriceAllPrograms_Ordering(t *testing.T) {
	ref := loadRef(t)

	prices, err := PriceAllPrograms(ref, "UA", "JFK", "FRA", domain.CabinEconomy, 3851)
	require.NoError(t, err)
	require.NotEmpty(t, prices)

	// Numeric outcomes first in ascending order, dynamic after.
	require.True(t, prices[0].Outcome.IsMiles())
	for i := 1; i < len(prices); i++ {
		prev, cur := prices[i-1].Outcome, prices[i].Outcome
		if prev.IsMiles() && cur.IsMiles() {
			assert.LessOrEqual(t, prev.Miles, cur.Miles)
		}
		if prev.IsDynamic() {
			assert.False(t, cur.IsMiles(), "no numeric outcome after a dynamic one")
		}
	}
}
