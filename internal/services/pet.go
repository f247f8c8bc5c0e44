package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"adoptme-backend/internal/models"
	"adoptme-backend/internal/repository"
	"adoptme-backend/internal/storage"

	"github.com/google/uuid"
)

// PetService handles pet-related business logic
type PetService struct {
	store  repository.Store
	images storage.ImageStore
	now    func() time.Time
}

// NewPetService creates a new pet service
func NewPetService(store repository.Store, images storage.ImageStore) *PetService {
	return &PetService{
		store:  store,
		images: images,
		now:    time.Now,
	}
}

// CreatePetInput represents the data needed to create a pet
type CreatePetInput struct {
	Name      string
	Specie    string
	BirthDate *time.Time
}

// Create registers a new pet. Pets always start not adopted.
func (s *PetService) Create(ctx context.Context, in CreatePetInput) (*models.Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrInvalidInput)
	}

	pet := &models.Pet{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Specie:    strings.TrimSpace(in.Specie),
		BirthDate: in.BirthDate,
		Adopted:   false,
		CreatedAt: s.now(),
	}

	if err := s.store.Pets().Create(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// CreateWithImage stores the uploaded image first, then registers the pet
// with the resulting URL.
func (s *PetService) CreateWithImage(ctx context.Context, in CreatePetInput, filename, contentType string, body io.Reader) (*models.Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrInvalidInput)
	}
	if s.images == nil {
		return nil, fmt.Errorf("image storage is not configured")
	}

	url, err := s.images.Save(ctx, filename, contentType, body)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	pet := &models.Pet{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Specie:    strings.TrimSpace(in.Specie),
		BirthDate: in.BirthDate,
		Adopted:   false,
		Image:     url,
		CreatedAt: s.now(),
	}

	if err := s.store.Pets().Create(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// GetByID retrieves a pet by ID
func (s *PetService) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	return s.store.Pets().GetByID(ctx, id)
}

// List retrieves all pets
func (s *PetService) List(ctx context.Context) ([]*models.Pet, error) {
	return s.store.Pets().List(ctx)
}

// UpdatePetInput represents a partial pet update; nil fields are left untouched.
// Adoption state is owned by the adoption workflow and cannot be patched here.
type UpdatePetInput struct {
	Name      *string
	Specie    *string
	BirthDate *time.Time
	Image     *string
}

// Update applies a partial update to a pet
func (s *PetService) Update(ctx context.Context, id string, in UpdatePetInput) (*models.Pet, error) {
	pet, err := s.store.Pets().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", models.ErrInvalidInput)
		}
		pet.Name = strings.TrimSpace(*in.Name)
	}
	if in.Specie != nil {
		pet.Specie = strings.TrimSpace(*in.Specie)
	}
	if in.BirthDate != nil {
		pet.BirthDate = in.BirthDate
	}
	if in.Image != nil {
		pet.Image = *in.Image
	}

	if err := s.store.Pets().Update(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// Delete deletes a pet by ID
func (s *PetService) Delete(ctx context.Context, id string) error {
	return s.store.Pets().Delete(ctx, id)
}
