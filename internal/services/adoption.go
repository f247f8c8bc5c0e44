package services

import (
	"context"
	"time"

	"adoptme-backend/internal/models"
	"adoptme-backend/internal/repository"

	"github.com/google/uuid"
)

// AdoptionService coordinates the multi-entity adoption workflow
type AdoptionService struct {
	store repository.Store
	now   func() time.Time
}

// NewAdoptionService creates a new adoption service
func NewAdoptionService(store repository.Store) *AdoptionService {
	return &AdoptionService{
		store: store,
		now:   time.Now,
	}
}

// Adopt assigns a pet to a user and records the adoption. Validation runs
// fully before any write; the three writes (mark pet adopted, append to the
// user's pet list, insert the adoption record) happen inside one transaction,
// so a failure in any of them leaves no partial state behind.
//
// The pet update re-checks adopted = false inside the transaction, so two
// concurrent adoptions of the same pet resolve to exactly one winner; the
// loser gets ErrAlreadyAdopted.
func (s *AdoptionService) Adopt(ctx context.Context, userID, petID string, adoptionDate *time.Time) (*models.Adoption, error) {
	user, err := s.store.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	pet, err := s.store.Pets().GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}

	if pet.Adopted {
		return nil, models.ErrAlreadyAdopted
	}

	date := s.now()
	if adoptionDate != nil {
		date = *adoptionDate
	}

	adoption := &models.Adoption{
		ID:           uuid.New().String(),
		OwnerID:      user.ID,
		PetID:        pet.ID,
		AdoptionDate: date,
		CreatedAt:    s.now(),
	}

	err = s.store.WithTx(ctx, func(tx repository.Store) error {
		if err := tx.Pets().MarkAdopted(ctx, pet.ID, user.ID); err != nil {
			return err
		}
		if err := tx.Users().AppendPet(ctx, user.ID, pet.ID); err != nil {
			return err
		}
		return tx.Adoptions().Create(ctx, adoption)
	})
	if err != nil {
		return nil, err
	}

	return adoption, nil
}

// GetByID retrieves an adoption record by ID
func (s *AdoptionService) GetByID(ctx context.Context, id string) (*models.Adoption, error) {
	return s.store.Adoptions().GetByID(ctx, id)
}

// List retrieves all adoption records
func (s *AdoptionService) List(ctx context.Context) ([]*models.Adoption, error) {
	return s.store.Adoptions().List(ctx)
}
