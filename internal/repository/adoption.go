package repository

import (
	"context"
	"errors"
	"fmt"

	"adoptme-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

// pgAdoptionRepository handles database operations for adoption records
type pgAdoptionRepository struct {
	db querier
}

// Create inserts a new adoption record. The unique index on pet_id backs up
// the compare-and-set on pets: a duplicate insert surfaces as ErrAlreadyAdopted.
func (r *pgAdoptionRepository) Create(ctx context.Context, adoption *models.Adoption) error {
	query := `
		INSERT INTO adoptions (id, owner_id, pet_id, adoption_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query,
		adoption.ID, adoption.OwnerID, adoption.PetID, adoption.AdoptionDate, adoption.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: pet %s", models.ErrAlreadyAdopted, adoption.PetID)
		}
		return fmt.Errorf("failed to create adoption: %w", err)
	}
	return nil
}

// GetByID retrieves an adoption record by ID
func (r *pgAdoptionRepository) GetByID(ctx context.Context, id string) (*models.Adoption, error) {
	query := `
		SELECT id, owner_id, pet_id, adoption_date, created_at
		FROM adoptions
		WHERE id = $1
	`
	var adoption models.Adoption
	err := r.db.QueryRow(ctx, query, id).Scan(
		&adoption.ID, &adoption.OwnerID, &adoption.PetID,
		&adoption.AdoptionDate, &adoption.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrAdoptionNotFound
		}
		return nil, fmt.Errorf("failed to get adoption: %w", err)
	}
	return &adoption, nil
}

// List retrieves all adoption records
func (r *pgAdoptionRepository) List(ctx context.Context) ([]*models.Adoption, error) {
	query := `
		SELECT id, owner_id, pet_id, adoption_date, created_at
		FROM adoptions
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list adoptions: %w", err)
	}
	defer rows.Close()

	adoptions := make([]*models.Adoption, 0)
	for rows.Next() {
		var adoption models.Adoption
		if err := rows.Scan(
			&adoption.ID, &adoption.OwnerID, &adoption.PetID,
			&adoption.AdoptionDate, &adoption.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan adoption: %w", err)
		}
		adoptions = append(adoptions, &adoption)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating adoptions: %w", err)
	}
	return adoptions, nil
}
