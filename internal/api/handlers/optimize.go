package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"trip-optimizer-service/internal/api/dto"
	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/services"
)

// OptimizeHandler exposes the package generation entry point.
type OptimizeHandler struct {
	Engine *services.Optimizer
}

// Optimize generates the three travel packages for one trip, serving from
// cache when a fresh result exists.
func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	result, err := h.Engine.Optimize(r.Context(), req.Origin, req.Destination, req.Preferences)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCoordinate):
			writeError(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrRouteUnavailable), errors.Is(err, domain.ErrBuildFailed):
			log.Printf("optimize build failed: %v", err)
			writeError(w, r, http.StatusBadGateway, "package build failed")
		default:
			log.Printf("optimize failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}
