package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceOutcome_MarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		outcome PriceOutcome
		want    string
	}{
		{name: "concrete cost is a number", outcome: MilesOutcome(57500), want: `57500`},
		{name: "dynamic is the marker string", outcome: DynamicOutcome(), want: `"Dynamic"`},
		{name: "error is the reason string", outcome: ErrorOutcome(ReasonNoChart), want: `"No applicable award chart"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.outcome)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestPriceOutcome_UnmarshalJSON(t *testing.T) {
	var o PriceOutcome

	require.NoError(t, json.Unmarshal([]byte(`30000`), &o))
	assert.True(t, o.IsMiles())
	assert.Equal(t, 30000, o.Miles)

	require.NoError(t, json.Unmarshal([]byte(`"Dynamic"`), &o))
	assert.True(t, o.IsDynamic())

	require.NoError(t, json.Unmarshal([]byte(`"Route not defined in award chart"`), &o))
	assert.True(t, o.IsError())
	assert.Equal(t, ReasonRouteUndefined, o.Reason)
}

func TestPriceOutcome_Display(t *testing.T) {
	assert.Equal(t, "57,500", MilesOutcome(57500).Display())
	assert.Equal(t, "7,500", MilesOutcome(7500).Display())
	assert.Equal(t, "500", MilesOutcome(500).Display())
	assert.Equal(t, "1,234,567", MilesOutcome(1234567).Display())
	assert.Equal(t, "Dynamic", DynamicOutcome().Display())
	assert.Equal(t, ReasonCabinUnavailable, ErrorOutcome(ReasonCabinUnavailable).Display())
}

func TestSortProgramPrices(t *testing.T) {
	prices := []ProgramPrice{
		{FFPCode: "UA", Outcome: ErrorOutcome(ReasonNoChart)},
		{FFPCode: "AC", Outcome: DynamicOutcome()},
		{FFPCode: "AA", Outcome: MilesOutcome(60000)},
		{FFPCode: "BA", Outcome: MilesOutcome(42500)},
		{FFPCode: "TK", Outcome: ErrorOutcome(ReasonRouteUndefined)},
		{FFPCode: "CX", Outcome: MilesOutcome(42500)},
	}

	SortProgramPrices(prices)

	got := make([]string, len(prices))
	for i, p := range prices {
		got[i] = p.FFPCode
	}
	// Numeric ascending first, dynamic next, errors last. Equal costs and
	// all non-numeric outcomes keep their input order.
	assert.Equal(t, []string{"BA", "CX", "AA", "AC", "UA", "TK"}, got)
}
