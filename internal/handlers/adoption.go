package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"adoptme-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// AdoptionHandler handles adoption-related HTTP requests
type AdoptionHandler struct {
	adoptionService *services.AdoptionService
}

// NewAdoptionHandler creates a new adoption handler
func NewAdoptionHandler(adoptionService *services.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{adoptionService: adoptionService}
}

type adoptRequest struct {
	AdoptionDate string `json:"adoptionDate"` // YYYY-MM-DD, optional
}

// Adopt handles POST /api/adoptions/{uid}/{pid}
func (h *AdoptionHandler) Adopt(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "uid")
	petID := chi.URLParam(r, "pid")

	// Body is optional; it may carry the adoption date.
	var req adoptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var adoptionDate *time.Time
	if req.AdoptionDate != "" {
		t, err := time.Parse("2006-01-02", req.AdoptionDate)
		if err != nil {
			respondError(w, "adoptionDate must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		adoptionDate = &t
	}

	adoption, err := h.adoptionService.Adopt(r.Context(), userID, petID, adoptionDate)
	if err != nil {
		log.Warn().
			Err(err).
			Str("user_id", userID).
			Str("pet_id", petID).
			Msg("Adoption rejected")
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("adoption_id", adoption.ID).
		Str("user_id", userID).
		Str("pet_id", petID).
		Msg("Pet adopted")
	respondMessage(w, http.StatusOK, "Pet adopted")
}

// GetAdoption handles GET /api/adoptions/{aid}
func (h *AdoptionHandler) GetAdoption(w http.ResponseWriter, r *http.Request) {
	adoption, err := h.adoptionService.GetByID(r.Context(), chi.URLParam(r, "aid"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondPayload(w, http.StatusOK, adoption)
}

// ListAdoptions handles GET /api/adoptions
func (h *AdoptionHandler) ListAdoptions(w http.ResponseWriter, r *http.Request) {
	adoptions, err := h.adoptionService.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list adoptions")
		respondServiceError(w, err)
		return
	}
	respondPayload(w, http.StatusOK, adoptions)
}
