package handlers

import (
	"errors"
	"net/http"
	"strings"
	"trip-optimizer-service/internal/api/dto"
	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/services"
)

// ModeHandler exposes mode listing, selection, and comparison over the most
// recent optimization result.
type ModeHandler struct {
	Engine *services.Optimizer
}

// List returns the currently available (non-disabled) modes.
func (h *ModeHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	modes, err := h.Engine.AvailableModes()
	if err != nil {
		if errors.Is(err, domain.ErrNoResult) {
			writeError(w, r, http.StatusNotFound, "no optimization result available")
			return
		}
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ModesResponse{Modes: modes})
}

// Select returns the package for the mode named in the path, or an error
// when the mode is disabled.
func (h *ModeHandler) Select(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	mode := domain.TravelMode(strings.TrimPrefix(r.URL.Path, "/v1/modes/"))
	if !mode.Valid() {
		writeError(w, r, http.StatusBadRequest, "unknown mode")
		return
	}

	pkg, err := h.Engine.SelectMode(mode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoResult):
			writeError(w, r, http.StatusNotFound, "no optimization result available")
		case errors.Is(err, domain.ErrModeDisabled):
			writeError(w, r, http.StatusConflict, err.Error())
		default:
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	res := dto.ModeResponse{Mode: mode}
	switch p := pkg.(type) {
	case *domain.EfficiencyPackage:
		res.Efficiency = p
	case *domain.ScenicPackage:
		res.Scenic = p
	case *domain.FoodiePackage:
		res.Foodie = p
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Compare returns the display comparison for the most recent result.
func (h *ModeHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	last, ok := h.Engine.LastResult()
	if !ok {
		writeError(w, r, http.StatusNotFound, "no optimization result available")
		return
	}

	writeJSON(w, r, http.StatusOK, services.Compare(last))
}
