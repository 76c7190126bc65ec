// Package integration provides helpers and integration tests for the award
// pricing engine. Integration tests verify that components work together
// correctly, including HTTP handlers, use cases, and the reference data store.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/ffp-planner/award-pricing-engine/internal/adapter/http"
	"github.com/ffp-planner/award-pricing-engine/internal/adapter/http/response"
	"github.com/ffp-planner/award-pricing-engine/internal/domain"
	"github.com/ffp-planner/award-pricing-engine/internal/infrastructure/timeutil"
	"github.com/ffp-planner/award-pricing-engine/internal/refdata"
	"github.com/ffp-planner/award-pricing-engine/internal/usecase"
	"github.com/ffp-planner/award-pricing-engine/test/testutil"
)

// FixedSearchTime is the mock clock instant used by all integration tests.
const FixedSearchTime = "2026-03-01T12:00:00Z"

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Store   *refdata.Store
	UseCase usecase.AwardSearchUseCase
}

// NewTestServer creates a test server backed by the real reference data
// corpus under test/testdata/corpus.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	store := refdata.NewStore(testutil.CorpusDir(t), zerolog.Nop())
	require.NoError(t, store.Reload())

	return newServerWithStore(t, store)
}

// NewEmptyTestServer creates a test server whose store has never loaded any
// data. Every data-dependent endpoint answers 503.
func NewEmptyTestServer(t *testing.T) *TestServer {
	t.Helper()

	store := refdata.NewStore(testutil.CorpusDir(t), zerolog.Nop())
	return newServerWithStore(t, store)
}

func newServerWithStore(t *testing.T, store *refdata.Store) *TestServer {
	t.Helper()

	clock := timeutil.NewMockClockFromString(FixedSearchTime)
	uc := usecase.NewAwardSearchUseCase(store, store, clock, zerolog.Nop())

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewAwardHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Store:   store,
		UseCase: uc,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts an award search with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/awards/search",
		Body:   body,
	})
}

// EarningsRequest posts an earnings calculation with the given body.
func (ts *TestServer) EarningsRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/earnings/calculate",
		Body:   body,
	})
}

// ValuationsRequest posts a valuation comparison with the given body.
func (ts *TestServer) ValuationsRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/valuations/compare",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSearchResult parses the response body as an AwardSearchResult.
func (r *Response) ParseSearchResult() (*domain.AwardSearchResult, error) {
	var result domain.AwardSearchResult
	if err := json.Unmarshal(r.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ParseError parses the response body as an error detail.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var detail response.ErrorDetail
	if err := json.Unmarshal(r.Body, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// DefaultSearchRequest returns a valid two-segment domestic itinerary. With
// the test corpus the whole journey prices to 24,000 miles through the
// per-segment program, and the optimizer books the legs separately at
// 7,500 miles each.
func DefaultSearchRequest() *httpAdapter.SearchAwardsRequest {
	return &httpAdapter.SearchAwardsRequest{
		Segments: []httpAdapter.SegmentDTO{
			{Origin: "JFK", Destination: "ORD", Carrier: "AA", Cabin: "economy", DistanceMiles: 740},
			{Origin: "ORD", Destination: "LAX", Carrier: "AA", Cabin: "economy", DistanceMiles: 1744},
		},
	}
}

// DefaultItinerary returns the domain form of DefaultSearchRequest for tests
// driving the use case directly.
func DefaultItinerary() domain.Itinerary {
	return domain.Itinerary{
		Segments: []domain.Segment{
			{Origin: "JFK", Destination: "ORD", Carrier: "AA", Cabin: domain.CabinEconomy, DistanceMiles: 740},
			{Origin: "ORD", Destination: "LAX", Carrier: "AA", Cabin: domain.CabinEconomy, DistanceMiles: 1744},
		},
	}
}

// LoadCorpus loads the reference data corpus directly.
func LoadCorpus(t *testing.T) *domain.ReferenceData {
	t.Helper()
	ref, err := refdata.Load(testutil.CorpusDir(t))
	require.NoError(t, err)
	return ref
}
