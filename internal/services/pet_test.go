package services

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"adoptme-backend/internal/models"
	"adoptme-backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetCreate_DefaultsToNotAdopted(t *testing.T) {
	ctx := context.Background()
	svc := NewPetService(memory.NewStore(), nil)

	pet, err := svc.Create(ctx, CreatePetInput{Name: "Rex", Specie: "Perrito"})
	require.NoError(t, err)

	assert.NotEmpty(t, pet.ID)
	assert.False(t, pet.Adopted)
	assert.Nil(t, pet.OwnerID)
}

func TestPetCreate_NameRequired(t *testing.T) {
	ctx := context.Background()
	svc := NewPetService(memory.NewStore(), nil)

	_, err := svc.Create(ctx, CreatePetInput{Specie: "Gato"})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = svc.Create(ctx, CreatePetInput{Name: "   "})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestPetCreateWithImage(t *testing.T) {
	ctx := context.Background()
	svc := NewPetService(memory.NewStore(), fakeImageStore{})

	pet, err := svc.CreateWithImage(ctx, CreatePetInput{Name: "Michi", Specie: "Gatito Naranja"},
		"gato.jpg", "image/jpeg", strings.NewReader("not really a jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/gato.jpg", pet.Image)
}

type fakeImageStore struct{}

func (fakeImageStore) Save(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	return "/uploads/" + filename, nil
}

func TestPetUpdate_PartialPatch(t *testing.T) {
	ctx := context.Background()
	svc := NewPetService(memory.NewStore(), nil)

	birthDate := time.Date(2021, 3, 10, 0, 0, 0, 0, time.UTC)
	pet, err := svc.Create(ctx, CreatePetInput{Name: "Rambo", Specie: "Pichicho", BirthDate: &birthDate})
	require.NoError(t, err)

	newName := "Rambo I"
	newSpecie := "Perrazo"
	updated, err := svc.Update(ctx, pet.ID, UpdatePetInput{Name: &newName, Specie: &newSpecie})
	require.NoError(t, err)
	assert.Equal(t, "Rambo I", updated.Name)
	assert.Equal(t, "Perrazo", updated.Specie)
	require.NotNil(t, updated.BirthDate)
	assert.Equal(t, birthDate, *updated.BirthDate)

	_, err = svc.Update(ctx, "missing", UpdatePetInput{Name: &newName})
	assert.ErrorIs(t, err, models.ErrPetNotFound)
}

func TestPetDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewPetService(memory.NewStore(), nil)

	pet, err := svc.Create(ctx, CreatePetInput{Name: "mascota a borrar"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, pet.ID))

	_, err = svc.GetByID(ctx, pet.ID)
	assert.ErrorIs(t, err, models.ErrPetNotFound)
}
