package router

import (
	"net/http"

	"github.com/rs/zerolog"

	"adcraft/internal/delivery/http/handler"
	"adcraft/internal/delivery/http/middleware"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	Concept *handler.ConceptHandler
	Catalog *handler.CatalogHandler
}

// Options holds cross-cutting route settings
type Options struct {
	AllowedOrigins []string
	Logger         zerolog.Logger
}

// Setup configures all routes for the application
func Setup(handlers Handlers, opts Options) *http.ServeMux {
	mux := http.NewServeMux()

	// Middleware helpers
	cors := middleware.CORSFor(opts.AllowedOrigins)
	accessLog := middleware.AccessLog(opts.Logger)
	recoverPanics := middleware.Recover(opts.Logger)

	// Chain helper
	chain := func(h http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}
	api := func(h http.HandlerFunc) http.HandlerFunc {
		return chain(h, middleware.RequestID, accessLog, recoverPanics, cors)
	}

	// ==================
	// Catalog routes
	// ==================
	mux.HandleFunc("/api/health", api(handlers.Catalog.Health))
	mux.HandleFunc("/api/options", api(handlers.Catalog.Options))
	mux.HandleFunc("/api/presets", api(handlers.Catalog.ListPresets))
	mux.HandleFunc("/api/presets/{id}", api(handlers.Catalog.GetPreset))

	// ==================
	// Concept routes
	// ==================
	mux.HandleFunc("/api/concepts", api(handlers.Concept.Generate))
	mux.HandleFunc("/api/concepts/export", api(handlers.Concept.Export))

	return mux
}
