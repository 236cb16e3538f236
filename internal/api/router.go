package api

import (
	"net/http"
	"trip-optimizer-service/internal/api/handlers"
	"trip-optimizer-service/internal/services"
)

// NewRouter wires HTTP handlers with the optimization engine and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(engine *services.Optimizer) http.Handler {
	mux := http.NewServeMux()

	optimizeHandler := &handlers.OptimizeHandler{Engine: engine}
	modeHandler := &handlers.ModeHandler{Engine: engine}
	cacheHandler := &handlers.CacheHandler{Engine: engine}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/v1/optimize", optimizeHandler.Optimize)
	mux.HandleFunc("/v1/modes", modeHandler.List)
	mux.HandleFunc("/v1/modes/", modeHandler.Select)
	mux.HandleFunc("/v1/compare", modeHandler.Compare)
	mux.HandleFunc("/v1/cache", cacheHandler.Clear)

	return loggingMiddleware(mux)
}
