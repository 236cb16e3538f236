package handlers

import (
	"log"
	"net/http"
	"trip-optimizer-service/internal/services"
)

// CacheHandler exposes the explicit cache-clear call.
type CacheHandler struct {
	Engine *services.Optimizer
}

func (h *CacheHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", http.MethodDelete)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := h.Engine.ClearCache(r.Context()); err != nil {
		log.Printf("cache clear failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "cleared"})
}
