package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"adoptme-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// MockHandler exposes the mock-data endpoints
type MockHandler struct {
	mockService *services.MockService
}

// NewMockHandler creates a new mock handler
func NewMockHandler(mockService *services.MockService) *MockHandler {
	return &MockHandler{mockService: mockService}
}

type generateDataRequest struct {
	Users int `json:"users"`
	Pets  int `json:"pets"`
}

// MockPets handles GET /api/mocks/mockingpets
func (h *MockHandler) MockPets(w http.ResponseWriter, r *http.Request) {
	respondPayload(w, http.StatusOK, h.mockService.MockPets(countParam(r, 100)))
}

// MockUsers handles GET /api/mocks/mockingusers
func (h *MockHandler) MockUsers(w http.ResponseWriter, r *http.Request) {
	respondPayload(w, http.StatusOK, h.mockService.MockUsers(countParam(r, 50)))
}

// GenerateData handles POST /api/mocks/generatedata
func (h *MockHandler) GenerateData(w http.ResponseWriter, r *http.Request) {
	var req generateDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Users < 0 || req.Pets < 0 {
		respondError(w, "users and pets must be non-negative", http.StatusBadRequest)
		return
	}

	users, pets, err := h.mockService.GenerateData(r.Context(), req.Users, req.Pets)
	if err != nil {
		log.Error().Err(err).Msg("Failed to generate mock data")
		respondServiceError(w, err)
		return
	}

	respondPayload(w, http.StatusOK, map[string]int{"users": users, "pets": pets})
}

func countParam(r *http.Request, def int) int {
	if v := r.URL.Query().Get("count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}
