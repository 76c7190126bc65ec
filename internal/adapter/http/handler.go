// Package http provides the HTTP handler layer for the award pricing API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/ffp-planner/award-pricing-engine/internal/adapter/http/response"
	"github.com/ffp-planner/award-pricing-engine/internal/domain"
	"github.com/ffp-planner/award-pricing-engine/internal/usecase"
)

// AwardHandler handles HTTP requests for award pricing endpoints.
type AwardHandler struct {
	useCase usecase.AwardSearchUseCase
}

// NewAwardHandler creates a new AwardHandler with the given use case.
func NewAwardHandler(uc usecase.AwardSearchUseCase) *AwardHandler {
	return &AwardHandler{
		useCase: uc,
	}
}

// SearchAwards handles POST /api/v1/awards/search
//
// @Summary Price an itinerary across frequent flyer programs
// @Description Prices the itinerary under every program, evaluates all contiguous sub-ranges and returns the cheapest booking combination
// @Tags awards
// @Accept json
// @Produce json
// @Param request body SearchAwardsRequest true "Itinerary segments"
// @Success 200 {object} domain.AwardSearchResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Reference data not loaded"
// @Router /api/v1/awards/search [post]
func (h *AwardHandler) SearchAwards(c echo.Context) error {
	var req SearchAwardsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.Search(c.Request().Context(), ToDomainItinerary(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.SearchResults(c, result)
}

// CalculateEarnings handles POST /api/v1/earnings/calculate
//
// @Summary Calculate mileage accrual for a flown segment
// @Description Computes the miles earned in every program with an accrual rule matching the carrier, cabin class, and booking code
// @Tags earnings
// @Accept json
// @Produce json
// @Param request body CalculateEarningsRequest true "Flown segment"
// @Success 200 {array} domain.EarningResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Reference data not loaded"
// @Router /api/v1/earnings/calculate [post]
func (h *AwardHandler) CalculateEarnings(c echo.Context) error {
	var req CalculateEarningsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	results, err := h.useCase.Earnings(c.Request().Context(), ToDomainEarningRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, results)
}

// CompareValuations handles POST /api/v1/valuations/compare
//
// @Summary Compare the cash value of award prices
// @Description Converts award prices into cash-equivalent totals using each program's cents-per-point valuation
// @Tags valuations
// @Accept json
// @Produce json
// @Param request body CompareValuationsRequest true "Award prices to compare"
// @Success 200 {array} domain.ValuationComparison
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Reference data not loaded"
// @Router /api/v1/valuations/compare [post]
func (h *AwardHandler) CompareValuations(c echo.Context) error {
	var req CompareValuationsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	results, err := h.useCase.CompareValuations(c.Request().Context(), ToDomainValuationRequest(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, results)
}

// GetSearchContext handles GET /api/v1/search-context
//
// @Summary Get the stored search context
// @Description Returns the result of the most recent award search
// @Tags search-context
// @Produce json
// @Success 200 {object} domain.AwardSearchResult
// @Failure 404 {object} response.ErrorDetail "No search context stored"
// @Router /api/v1/search-context [get]
func (h *AwardHandler) GetSearchContext(c echo.Context) error {
	result, err := h.useCase.LastSearch(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, result)
}

// ClearSearchContext handles DELETE /api/v1/search-context
//
// @Summary Clear the stored search context
// @Tags search-context
// @Success 204 "Cleared"
// @Router /api/v1/search-context [delete]
func (h *AwardHandler) ClearSearchContext(c echo.Context) error {
	if err := h.useCase.ClearSearch(c.Request().Context()); err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}

// ReloadReferenceData handles POST /api/v1/refdata/reload
//
// @Summary Reload the reference data corpus
// @Description Re-reads the reference data files and atomically swaps the active bundle; on failure the previous bundle stays active
// @Tags refdata
// @Produce json
// @Success 200 {object} ReloadResponseDTO
// @Failure 500 {object} response.ErrorDetail "Reload failed"
// @Router /api/v1/refdata/reload [post]
func (h *AwardHandler) ReloadReferenceData(c echo.Context) error {
	if err := h.useCase.ReloadData(c.Request().Context()); err != nil {
		if domain.IsConfigError(err) {
			return response.InternalServerErrorWithMessage(c, err.Error())
		}
		return h.handleError(c, err)
	}
	return response.OK(c, &ReloadResponseDTO{Status: "reloaded"})
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *AwardHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *AwardHandler) handleError(c echo.Context, err error) error {
	// No reference data loaded yet (or reload never succeeded)
	if errors.Is(err, domain.ErrNoReferenceData) {
		return response.ServiceUnavailable(c)
	}

	// Requests naming a carrier or program the corpus does not know
	if errors.Is(err, domain.ErrUnknownCarrier) || errors.Is(err, domain.ErrUnknownProgram) {
		return response.UnknownEntity(c, err.Error())
	}

	// No stored search context
	if errors.Is(err, domain.ErrNoSearchContext) {
		return response.NotFound(c, response.MsgNoSearchContext)
	}

	// Check for context deadline exceeded (timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	// Check for context cancelled
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	// Check for invalid request (domain validation)
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Corrupt reference data surfacing past load validation
	if domain.IsConfigError(err) {
		return response.InternalServerErrorWithMessage(c, err.Error())
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *AwardHandler) Health(c echo.Context) error {
	return response.Health(c)
}
