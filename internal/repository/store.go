package repository

import (
	"context"

	"adoptme-backend/internal/models"
)

// UserRepository handles persistence for users
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error

	// AppendPet adds a pet id to the user's owned list.
	AppendPet(ctx context.Context, userID, petID string) error
}

// PetRepository handles persistence for pets
type PetRepository interface {
	Create(ctx context.Context, pet *models.Pet) error
	GetByID(ctx context.Context, id string) (*models.Pet, error)
	List(ctx context.Context) ([]*models.Pet, error)
	Update(ctx context.Context, pet *models.Pet) error
	Delete(ctx context.Context, id string) error

	// MarkAdopted flips adopted and sets the owner only if the pet is not
	// adopted yet (compare-and-set). Returns models.ErrAlreadyAdopted when
	// another adoption won the race.
	MarkAdopted(ctx context.Context, petID, ownerID string) error
}

// AdoptionRepository handles persistence for adoption records.
// Records are insert-only: no update or delete is exposed.
type AdoptionRepository interface {
	Create(ctx context.Context, adoption *models.Adoption) error
	GetByID(ctx context.Context, id string) (*models.Adoption, error)
	List(ctx context.Context) ([]*models.Adoption, error)
}

// Store gives access to all repositories and to transactional execution.
// WithTx runs fn against a Store whose repositories share one transaction;
// if fn returns an error every write made inside it is rolled back.
type Store interface {
	Users() UserRepository
	Pets() PetRepository
	Adoptions() AdoptionRepository

	WithTx(ctx context.Context, fn func(Store) error) error
}
