package api

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	apiContext "qrforge/internal/api/context"
	"qrforge/internal/api/handlers"
	"qrforge/internal/api/middleware"
	"qrforge/internal/pkg/errors"
)

type Dependencies struct {
	CatalogHandler *handlers.CatalogHandler
	ThemeHandler   *handlers.ThemeHandler
	QRHandler      *handlers.QRHandler
	HistoryHandler *handlers.HistoryHandler
	HealthHandler  *handlers.HealthHandler
	MetricsHandler *handlers.MetricsHandler
	RateLimiter    *middleware.RateLimiter

	// Requests per minute per client IP; zero disables the limit.
	RenderPerMinute int
	APIPerMinute    int
}

func NewRouter(deps *Dependencies) *httprouter.Router {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errors.WriteError(w, http.StatusNotFound, errors.ErrCodeNotFound, "Route not found", nil)
	})

	renderLimit := middleware.RateLimit(deps.RateLimiter, "render", deps.RenderPerMinute)
	apiLimit := middleware.RateLimit(deps.RateLimiter, "api", deps.APIPerMinute)

	router.GET("/health", wrap(deps.HealthHandler.Check))
	router.GET("/metrics", wrap(deps.MetricsHandler.Export))

	// Catalogs
	router.GET("/api/v1/types", chain(deps.CatalogHandler.Types, apiLimit))
	router.GET("/api/v1/themes", chain(deps.CatalogHandler.Themes, apiLimit))

	// Settings
	router.GET("/api/v1/settings/theme", chain(deps.ThemeHandler.Get, apiLimit))
	router.PUT("/api/v1/settings/theme", chain(deps.ThemeHandler.Set, apiLimit))

	// Generation
	router.POST("/api/v1/qr/payload", chain(deps.QRHandler.Payload, apiLimit))
	router.POST("/api/v1/qr/preview", chain(deps.QRHandler.Preview, renderLimit))
	router.POST("/api/v1/qr/download", chain(deps.QRHandler.Download, renderLimit))

	// History
	router.GET("/api/v1/history", chain(deps.HistoryHandler.List, apiLimit))
	router.DELETE("/api/v1/history", chain(deps.HistoryHandler.Clear, apiLimit))
	router.GET("/api/v1/history/:id", chain(deps.HistoryHandler.Get, apiLimit))
	router.GET("/api/v1/history/:id/image", chain(deps.HistoryHandler.Image, apiLimit))
	router.POST("/api/v1/history/:id/reuse", chain(deps.HistoryHandler.Reuse, renderLimit))
	router.DELETE("/api/v1/history/:id", chain(deps.HistoryHandler.Delete, apiLimit))

	return router
}

// Helper function to chain middlewares
func chain(handler http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) httprouter.Handle {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return wrap(handler)
}

// Convert http.HandlerFunc to httprouter.Handle
func wrap(handler http.HandlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		ctx := context.WithValue(r.Context(), apiContext.Params, ps)
		handler(w, r.WithContext(ctx))
	}
}
