package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"adoptme-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const maxImageUploadBytes = 10 << 20 // 10 MiB

// PetHandler handles pet-related HTTP requests
type PetHandler struct {
	petService *services.PetService
}

// NewPetHandler creates a new pet handler
func NewPetHandler(petService *services.PetService) *PetHandler {
	return &PetHandler{petService: petService}
}

type createPetRequest struct {
	Name      string `json:"name"`
	Specie    string `json:"specie"`
	BirthDate string `json:"birthDate"` // YYYY-MM-DD, optional
}

type updatePetRequest struct {
	Name      *string `json:"name"`
	Specie    *string `json:"specie"`
	BirthDate *string `json:"birthDate"`
}

// CreatePet handles POST /api/pets
func (h *PetHandler) CreatePet(w http.ResponseWriter, r *http.Request) {
	var req createPetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	birthDate, ok := parseBirthDate(w, req.BirthDate)
	if !ok {
		return
	}

	pet, err := h.petService.Create(r.Context(), services.CreatePetInput{
		Name:      req.Name,
		Specie:    req.Specie,
		BirthDate: birthDate,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().Str("pet_id", pet.ID).Str("name", pet.Name).Msg("Pet created")
	respondPayload(w, http.StatusOK, pet)
}

// CreatePetWithImage handles POST /api/pets/withimage (multipart form)
func (h *PetHandler) CreatePetWithImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		respondError(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	birthDate, ok := parseBirthDate(w, r.FormValue("birthDate"))
	if !ok {
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	pet, err := h.petService.CreateWithImage(r.Context(), services.CreatePetInput{
		Name:      r.FormValue("name"),
		Specie:    r.FormValue("specie"),
		BirthDate: birthDate,
	}, header.Filename, contentType, file)
	if err != nil {
		log.Error().Err(err).Str("filename", header.Filename).Msg("Failed to create pet with image")
		respondServiceError(w, err)
		return
	}

	log.Info().Str("pet_id", pet.ID).Str("image", pet.Image).Msg("Pet created with image")
	respondPayload(w, http.StatusOK, pet)
}

// ListPets handles GET /api/pets
func (h *PetHandler) ListPets(w http.ResponseWriter, r *http.Request) {
	pets, err := h.petService.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list pets")
		respondServiceError(w, err)
		return
	}
	respondPayload(w, http.StatusOK, pets)
}

// GetPet handles GET /api/pets/{pid}
func (h *PetHandler) GetPet(w http.ResponseWriter, r *http.Request) {
	pet, err := h.petService.GetByID(r.Context(), chi.URLParam(r, "pid"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondPayload(w, http.StatusOK, pet)
}

// UpdatePet handles PUT /api/pets/{pid}
func (h *PetHandler) UpdatePet(w http.ResponseWriter, r *http.Request) {
	var req updatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	in := services.UpdatePetInput{
		Name:   req.Name,
		Specie: req.Specie,
	}
	if req.BirthDate != nil {
		birthDate, ok := parseBirthDate(w, *req.BirthDate)
		if !ok {
			return
		}
		in.BirthDate = birthDate
	}

	pet, err := h.petService.Update(r.Context(), chi.URLParam(r, "pid"), in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondPayload(w, http.StatusOK, pet)
}

// DeletePet handles DELETE /api/pets/{pid}
func (h *PetHandler) DeletePet(w http.ResponseWriter, r *http.Request) {
	if err := h.petService.Delete(r.Context(), chi.URLParam(r, "pid")); err != nil {
		respondServiceError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Pet deleted")
}

// parseBirthDate parses an optional YYYY-MM-DD value, writing a 400 on failure
func parseBirthDate(w http.ResponseWriter, value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		respondError(w, "birthDate must be YYYY-MM-DD", http.StatusBadRequest)
		return nil, false
	}
	return &t, true
}
