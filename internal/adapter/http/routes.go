package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all award pricing API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *AwardHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	api.POST("/awards/search", h.SearchAwards)
	api.POST("/earnings/calculate", h.CalculateEarnings)
	api.POST("/valuations/compare", h.CompareValuations)
	api.GET("/search-context", h.GetSearchContext)
	api.DELETE("/search-context", h.ClearSearchContext)
	api.POST("/refdata/reload", h.ReloadReferenceData)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *AwardHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	api.POST("/awards/search", h.SearchAwards)
	api.POST("/earnings/calculate", h.CalculateEarnings)
	api.POST("/valuations/compare", h.CompareValuations)
	api.GET("/search-context", h.GetSearchContext)
	api.DELETE("/search-context", h.ClearSearchContext)
	api.POST("/refdata/reload", h.ReloadReferenceData)
}
