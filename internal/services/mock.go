package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"adoptme-backend/internal/models"

	"github.com/google/uuid"
)

var (
	mockPetNames   = []string{"Rambo", "Rex", "Michi", "Firulais", "Luna", "Toby", "Coco", "Manchas"}
	mockPetSpecies = []string{"Perro", "Gato", "Conejo", "Loro"}
	mockFirstNames = []string{"Cacho", "Pepe", "Moni", "Marta", "Ricardo", "Susana"}
	mockLastNames  = []string{"Castaña", "Argento", "Fuseneco", "Galvan"}
)

// MockService generates fake records, optionally persisting them through the
// regular services so they pass the same validation path as real requests.
type MockService struct {
	users *UserService
	pets  *PetService
}

// NewMockService creates a new mock-data service
func NewMockService(users *UserService, pets *PetService) *MockService {
	return &MockService{users: users, pets: pets}
}

// MockPets generates count fake pets without persisting them
func (s *MockService) MockPets(count int) []*models.Pet {
	out := make([]*models.Pet, 0, count)
	for i := 0; i < count; i++ {
		bd := time.Now().AddDate(-rand.Intn(10), -rand.Intn(12), 0)
		out = append(out, &models.Pet{
			ID:        uuid.New().String(),
			Name:      mockPetNames[rand.Intn(len(mockPetNames))],
			Specie:    mockPetSpecies[rand.Intn(len(mockPetSpecies))],
			BirthDate: &bd,
			Adopted:   false,
			CreatedAt: time.Now(),
		})
	}
	return out
}

// MockUsers generates count fake users without persisting them
func (s *MockService) MockUsers(count int) []*models.User {
	out := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		first := mockFirstNames[rand.Intn(len(mockFirstNames))]
		last := mockLastNames[rand.Intn(len(mockLastNames))]
		id := uuid.New().String()
		out = append(out, &models.User{
			ID:        id,
			FirstName: first,
			LastName:  last,
			Email:     fmt.Sprintf("user-%s@example.com", id[:8]),
			Pets:      []string{},
			CreatedAt: time.Now(),
		})
	}
	return out
}

// GenerateData persists the requested number of fake users and pets
func (s *MockService) GenerateData(ctx context.Context, users, pets int) (int, int, error) {
	created := 0
	for _, u := range s.MockUsers(users) {
		_, err := s.users.Register(ctx, RegisterInput{
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Password:  "coder123",
		})
		if err != nil {
			return created, 0, fmt.Errorf("failed to generate users: %w", err)
		}
		created++
	}

	petsCreated := 0
	for _, p := range s.MockPets(pets) {
		_, err := s.pets.Create(ctx, CreatePetInput{
			Name:      p.Name,
			Specie:    p.Specie,
			BirthDate: p.BirthDate,
		})
		if err != nil {
			return created, petsCreated, fmt.Errorf("failed to generate pets: %w", err)
		}
		petsCreated++
	}

	return created, petsCreated, nil
}
