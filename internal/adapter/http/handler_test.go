package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffp-planner/award-pricing-engine/internal/adapter/http/response"
	"github.com/ffp-planner/award-pricing-engine/internal/domain"
)

// mockUseCase is a configurable implementation of AwardSearchUseCase for
// handler tests.
type mockUseCase struct {
	searchFunc     func(ctx context.Context, it domain.Itinerary) (*domain.AwardSearchResult, error)
	earningsFunc   func(ctx context.Context, req domain.EarningRequest) ([]domain.EarningResult, error)
	valuationsFunc func(ctx context.Context, req domain.ValuationRequest) ([]domain.ValuationComparison, error)
	lastFunc       func(ctx context.Context) (*domain.AwardSearchResult, error)
	clearFunc      func(ctx context.Context) error
	reloadFunc     func(ctx context.Context) error
}

func (m *mockUseCase) Search(ctx context.Context, it domain.Itinerary) (*domain.AwardSearchResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, it)
	}
	return &domain.AwardSearchResult{
		SearchID:  "test-search",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Itinerary: it,
		Overall: []domain.ProgramPrice{
			{ProgramName: "AAdvantage", FFPCode: "AA", ChartUsed: "AA_self",
				Outcome: domain.MilesOutcome(12500)},
		},
	}, nil
}

func (m *mockUseCase) Earnings(ctx context.Context, req domain.EarningRequest) ([]domain.EarningResult, error) {
	if m.earningsFunc != nil {
		return m.earningsFunc(ctx, req)
	}
	return []domain.EarningResult{{FFPCode: "AA", ProgramName: "AAdvantage", Miles: req.DistanceMiles}}, nil
}

func (m *mockUseCase) CompareValuations(ctx context.Context, req domain.ValuationRequest) ([]domain.ValuationComparison, error) {
	if m.valuationsFunc != nil {
		return m.valuationsFunc(ctx, req)
	}
	return []domain.ValuationComparison{{FFPCode: "AA", Miles: 30000}}, nil
}

func (m *mockUseCase) LastSearch(ctx context.Context) (*domain.AwardSearchResult, error) {
	if m.lastFunc != nil {
		return m.lastFunc(ctx)
	}
	return nil, domain.ErrNoSearchContext
}

func (m *mockUseCase) ClearSearch(ctx context.Context) error {
	if m.clearFunc != nil {
		return m.clearFunc(ctx)
	}
	return nil
}

func (m *mockUseCase) ReloadData(ctx context.Context) error {
	if m.reloadFunc != nil {
		return m.reloadFunc(ctx)
	}
	return nil
}

// setupTestHandler creates a test Echo instance with routes registered.
func setupTestHandler(uc *mockUseCase) *echo.Echo {
	e := echo.New()
	h := NewAwardHandler(uc)
	RegisterRoutes(e, h)
	return e
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func validSearchBody() map[string]interface{} {
	return map[string]interface{}{
		"segments": []map[string]interface{}{
			{"origin": "JFK", "destination": "LHR", "carrier": "AA",
				"cabin": "economy", "distanceMiles": 3451},
		},
	}
}

func TestSearchAwards_Success(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodPost, "/api/v1/awards/search", validSearchBody())
	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.AwardSearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "test-search", result.SearchID)
	require.Len(t, result.Overall, 1)
	assert.Equal(t, 12500, result.Overall[0].Outcome.Miles)
}

func TestSearchAwards_NormalizesInput(t *testing.T) {
	var got domain.Itinerary
	uc := &mockUseCase{
		searchFunc: func(ctx context.Context, it domain.Itinerary) (*domain.AwardSearchResult, error) {
			got = it
			return &domain.AwardSearchResult{SearchID: "x", Itinerary: it}, nil
		},
	}
	e := setupTestHandler(uc)

	body := map[string]interface{}{
		"segments": []map[string]interface{}{
			{"origin": "jfk", "destination": "lhr", "carrier": "aa"},
		},
	}
	rec := makeRequest(e, http.MethodPost, "/api/v1/awards/search", body)
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, got.Segments, 1)
	assert.Equal(t, "JFK", got.Segments[0].Origin)
	assert.Equal(t, "AA", got.Segments[0].Carrier)
	assert.Equal(t, domain.CabinEconomy, got.Segments[0].Cabin, "empty cabin defaults to economy")
}

func TestSearchAwards_InvalidBody(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/awards/search",
		bytes.NewBufferString("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeInvalidRequest, detail.Code)
}

func TestSearchAwards_ValidationError(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	tests := []struct {
		name  string
		body  map[string]interface{}
		field string
	}{
		{
			name:  "no segments",
			body:  map[string]interface{}{"segments": []map[string]interface{}{}},
			field: "segments",
		},
		{
			name: "too many segments",
			body: map[string]interface{}{"segments": func() []map[string]interface{} {
				segs := make([]map[string]interface{}, domain.MaxSegments+1)
				for i := range segs {
					segs[i] = map[string]interface{}{"origin": "JFK", "destination": "LHR", "carrier": "AA"}
				}
				return segs
			}()},
			field: "segments",
		},
		{
			name: "same origin and destination",
			body: map[string]interface{}{"segments": []map[string]interface{}{
				{"origin": "JFK", "destination": "JFK", "carrier": "AA"},
			}},
			field: "segments[0].destination",
		},
		{
			name: "unknown cabin",
			body: map[string]interface{}{"segments": []map[string]interface{}{
				{"origin": "JFK", "destination": "LHR", "carrier": "AA", "cabin": "suite"},
			}},
			field: "segments[0].cabin",
		},
		{
			name: "negative distance",
			body: map[string]interface{}{"segments": []map[string]interface{}{
				{"origin": "JFK", "destination": "LHR", "carrier": "AA", "distanceMiles": -10},
			}},
			field: "segments[0].distanceMiles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := makeRequest(e, http.MethodPost, "/api/v1/awards/search", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var detail response.ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
			assert.Equal(t, response.CodeValidationError, detail.Code)
			assert.Contains(t, detail.Details, tt.field)
		})
	}
}

func TestSearchAwards_NoReferenceData(t *testing.T) {
	uc := &mockUseCase{
		searchFunc: func(ctx context.Context, it domain.Itinerary) (*domain.AwardSearchResult, error) {
			return nil, domain.ErrNoReferenceData
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodPost, "/api/v1/awards/search", validSearchBody())
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeServiceUnavailable, detail.Code)
}

func TestSearchAwards_UnknownCarrier(t *testing.T) {
	uc := &mockUseCase{
		searchFunc: func(ctx context.Context, it domain.Itinerary) (*domain.AwardSearchResult, error) {
			return nil, domain.NewUnknownCarrierError("ZZ")
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodPost, "/api/v1/awards/search", validSearchBody())
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeUnknownEntity, detail.Code)
	assert.Contains(t, detail.Message, "ZZ")
}

func TestCalculateEarnings_Success(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	body := map[string]interface{}{
		"carrier": "AA", "cabinClass": "economy", "bookingCode": "Y", "distanceMiles": 3451,
	}
	rec := makeRequest(e, http.MethodPost, "/api/v1/earnings/calculate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var results []domain.EarningResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, 3451, results[0].Miles)
}

func TestCalculateEarnings_ValidationError(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	body := map[string]interface{}{
		"carrier": "AA", "cabinClass": "economy", "bookingCode": "", "distanceMiles": 0,
	}
	rec := makeRequest(e, http.MethodPost, "/api/v1/earnings/calculate", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeValidationError, detail.Code)
	assert.Contains(t, detail.Details, "bookingCode")
	assert.Contains(t, detail.Details, "distanceMiles")
}

func TestCompareValuations_Success(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	body := map[string]interface{}{
		"entries":      []map[string]interface{}{{"ffp": "AA", "miles": 30000}},
		"surchargeUsd": 11.2,
	}
	rec := makeRequest(e, http.MethodPost, "/api/v1/valuations/compare", body)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCompareValuations_ValidationError(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	body := map[string]interface{}{"entries": []map[string]interface{}{}, "surchargeUsd": -1}
	rec := makeRequest(e, http.MethodPost, "/api/v1/valuations/compare", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Contains(t, detail.Details, "entries")
	assert.Contains(t, detail.Details, "surchargeUsd")
}

func TestGetSearchContext(t *testing.T) {
	stored := &domain.AwardSearchResult{SearchID: "stored-search"}
	uc := &mockUseCase{
		lastFunc: func(ctx context.Context) (*domain.AwardSearchResult, error) {
			return stored, nil
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodGet, "/api/v1/search-context", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result domain.AwardSearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "stored-search", result.SearchID)
}

func TestGetSearchContext_NotFound(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodGet, "/api/v1/search-context", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeNotFound, detail.Code)
}

func TestClearSearchContext(t *testing.T) {
	cleared := false
	uc := &mockUseCase{
		clearFunc: func(ctx context.Context) error {
			cleared = true
			return nil
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodDelete, "/api/v1/search-context", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, cleared)
}

func TestReloadReferenceData(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodPost, "/api/v1/refdata/reload", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ReloadResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "reloaded", resp.Status)
}

func TestReloadReferenceData_Failure(t *testing.T) {
	uc := &mockUseCase{
		reloadFunc: func(ctx context.Context) error {
			return domain.NewConfigError("carriers.json", "missing required field")
		},
	}
	e := setupTestHandler(uc)

	rec := makeRequest(e, http.MethodPost, "/api/v1/refdata/reload", nil)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeInternalError, detail.Code)
}

func TestHealth(t *testing.T) {
	e := setupTestHandler(&mockUseCase{})

	rec := makeRequest(e, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
