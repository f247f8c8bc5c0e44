package repository

import (
	"context"
	"errors"
	"fmt"

	"adoptme-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

// pgPetRepository handles database operations for pets
type pgPetRepository struct {
	db querier
}

// Create creates a new pet
func (r *pgPetRepository) Create(ctx context.Context, pet *models.Pet) error {
	query := `
		INSERT INTO pets (id, name, specie, birth_date, adopted, image, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		pet.ID, pet.Name, pet.Specie, pet.BirthDate, pet.Adopted, pet.Image, pet.OwnerID, pet.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

// GetByID retrieves a pet by ID
func (r *pgPetRepository) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	query := `
		SELECT id, name, specie, birth_date, adopted, image, owner_id, created_at
		FROM pets
		WHERE id = $1
	`
	var pet models.Pet
	err := r.db.QueryRow(ctx, query, id).Scan(
		&pet.ID, &pet.Name, &pet.Specie, &pet.BirthDate,
		&pet.Adopted, &pet.Image, &pet.OwnerID, &pet.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrPetNotFound
		}
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}
	return &pet, nil
}

// List retrieves all pets
func (r *pgPetRepository) List(ctx context.Context) ([]*models.Pet, error) {
	query := `
		SELECT id, name, specie, birth_date, adopted, image, owner_id, created_at
		FROM pets
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	defer rows.Close()

	pets := make([]*models.Pet, 0)
	for rows.Next() {
		var pet models.Pet
		if err := rows.Scan(
			&pet.ID, &pet.Name, &pet.Specie, &pet.BirthDate,
			&pet.Adopted, &pet.Image, &pet.OwnerID, &pet.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pet: %w", err)
		}
		pets = append(pets, &pet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pets: %w", err)
	}
	return pets, nil
}

// Update updates a pet
func (r *pgPetRepository) Update(ctx context.Context, pet *models.Pet) error {
	query := `
		UPDATE pets
		SET name = $2, specie = $3, birth_date = $4, adopted = $5, image = $6, owner_id = $7
		WHERE id = $1
	`
	result, err := r.db.Exec(ctx, query,
		pet.ID, pet.Name, pet.Specie, pet.BirthDate, pet.Adopted, pet.Image, pet.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update pet: %w", err)
	}
	if result.RowsAffected() == 0 {
		return models.ErrPetNotFound
	}
	return nil
}

// Delete deletes a pet by ID
func (r *pgPetRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pet: %w", err)
	}
	if result.RowsAffected() == 0 {
		return models.ErrPetNotFound
	}
	return nil
}

// MarkAdopted flips the adopted flag with a compare-and-set: the WHERE clause
// re-checks adopted = false so concurrent adoptions of the same pet cannot
// both succeed.
func (r *pgPetRepository) MarkAdopted(ctx context.Context, petID, ownerID string) error {
	query := `
		UPDATE pets
		SET adopted = true, owner_id = $2
		WHERE id = $1 AND adopted = false
	`
	result, err := r.db.Exec(ctx, query, petID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to mark pet adopted: %w", err)
	}
	if result.RowsAffected() == 0 {
		return models.ErrAlreadyAdopted
	}
	return nil
}
