package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffp-planner/award-pricing-engine/internal/domain"
)

func TestSelectChart_Cascade(t *testing.T) {
	ref := loadRef(t)

	tests := []struct {
		name        string
		ffp         string
		carrier     string
		origin      string
		destination string
		wantChart   string
	}{
		{
			name: "self chart for own carrier on a covered category",
			ffp:  "AA", carrier: "AA", origin: "JFK", destination: "LHR",
			wantChart: "AA_self",
		},
		{
			name: "domestic overwrite when the self chart skips the category",
			ffp:  "AA", carrier: "AA", origin: "JFK", destination: "ORD",
			wantChart: "AA_domestic",
		},
		{
			name: "special overwrite beats the partner chart on its route",
			ffp:  "AA", carrier: "CX", origin: "JFK", destination: "HKG",
			wantChart: "AA_special",
		},
		{
			name: "all-partners chart when the special route does not match",
			ffp:  "AA", carrier: "BA", origin: "JFK", destination: "LHR",
			wantChart: "AA_partner",
		},
		{
			name: "specific-partner dynamic chart",
			ffp:  "AC", carrier: "UA", origin: "JFK", destination: "FRA",
			wantChart: "AC_DynPart",
		},
		{
			name: "self catch-all hybrid chart",
			ffp:  "UA", carrier: "UA", origin: "JFK", destination: "FRA",
			wantChart: "UA_hybrid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chart, err := SelectChart(ref, tt.ffp, tt.carrier, tt.origin, tt.destination)
			require.NoError(t, err)
			require.NotNil(t, chart)
			assert.Equal(t, tt.wantChart, chart.Key)
		})
	}
}

func TestSelectChart_NoChart(t *testing.T) {
	ref := loadRef(t)

	// LH is not an AA partner: no chart, not an error.
	chart, err := SelectChart(ref, "AA", "LH", "JFK", "FRA")
	require.NoError(t, err)
	assert.Nil(t, chart)
}

func TestSelectChart_UnknownProgram(t *testing.T) {
	ref := loadRef(t)

	_, err := SelectChart(ref, "ZZ", "AA", "JFK", "LHR")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownProgram)
}

func TestSelectChart_DuplicateOverwriteFatal(t *testing.T) {
	ref := loadRef(t)

	// Sabotage the bundle after load to simulate a corrupt selection state.
	dup := *ref.Charts["AA_special"]
	dup.Key = "AA_special2"
	ref.Charts["AA_special2"] = &dup
	ref.ChartOrder = append(ref.ChartOrder, "AA_special2")

	_, err := SelectChart(ref, "AA", "CX", "JFK", "HKG")
	require.Error(t, err)
	assert.True(t, domain.IsConfigError(err))
}

func TestSelectChart_RestrictedAllPartnersBeatsCatchAll(t *testing.T) {
	ref := loadRef(t)

	// Add a transatlantic-only all-partners chart after the catch-all in
	// file order. Its restriction must still win on a matching route.
	eu := &domain.Chart{
		Key:                "TK_partner_eu",
		FFPCode:            "TK",
		AppliesTo:          domain.AppliesAllPartners,
		Type:               domain.ChartZoneBased,
		ZoneSystemName:     "TK_system",
		RouteCategories:    []string{"US-EU"},
		HasRouteCategories: true,
		ZoneTables: map[domain.Cabin][]domain.ZonePair{
			domain.CabinEconomy: {
				{From: []string{"north_america"}, To: []string{"europe"}, Miles: 40000},
			},
		},
	}
	ref.Charts[eu.Key] = eu
	ref.ChartOrder = append(ref.ChartOrder, eu.Key)

	chart, err := SelectChart(ref, "TK", "UA", "JFK", "FRA")
	require.NoError(t, err)
	require.NotNil(t, chart)
	assert.Equal(t, "TK_partner_eu", chart.Key)

	// Off the restricted route the catch-all still applies.
	chart, err = SelectChart(ref, "TK", "UA", "JFK", "NRT")
	require.NoError(t, err)
	require.NotNil(t, chart)
	assert.Equal(t, "TK_partner", chart.Key)
}

func TestSelectMultiChart(t *testing.T) {
	ref := loadRef(t)

	chart, err := SelectMultiChart(ref, "AC", "JFK", "FRA")
	require.NoError(t, err)
	require.NotNil(t, chart)
	assert.Equal(t, "AC_multi", chart.Key)

	chart, err = SelectMultiChart(ref, "AA", "JFK", "FRA")
	require.NoError(t, err)
	assert.Nil(t, chart, "AA publishes no whole-itinerary chart")
}
