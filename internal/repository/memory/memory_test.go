package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"adoptme-backend/internal/models"
	"adoptme-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPet(t *testing.T, s *Store, id string) {
	t.Helper()
	require.NoError(t, s.Pets().Create(context.Background(), &models.Pet{
		ID: id, Name: "Rex", CreatedAt: time.Now(),
	}))
}

func seedUser(t *testing.T, s *Store, id, email string) {
	t.Helper()
	require.NoError(t, s.Users().Create(context.Background(), &models.User{
		ID: id, FirstName: "Pepe", LastName: "Argento", Email: email,
		Pets: []string{}, CreatedAt: time.Now(),
	}))
}

func TestWithTx_RollsBackAllWritesOnError(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedUser(t, s, "u1", "u1@example.com")
	seedPet(t, s, "p1")

	boom := errors.New("boom")
	err := s.WithTx(ctx, func(tx repository.Store) error {
		require.NoError(t, tx.Pets().MarkAdopted(ctx, "p1", "u1"))
		require.NoError(t, tx.Users().AppendPet(ctx, "u1", "p1"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	pet, err := s.Pets().GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, pet.Adopted)

	user, err := s.Users().GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, user.Pets)
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedUser(t, s, "u1", "u1@example.com")
	seedPet(t, s, "p1")

	err := s.WithTx(ctx, func(tx repository.Store) error {
		if err := tx.Pets().MarkAdopted(ctx, "p1", "u1"); err != nil {
			return err
		}
		return tx.Users().AppendPet(ctx, "u1", "p1")
	})
	require.NoError(t, err)

	pet, err := s.Pets().GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, pet.Adopted)
	require.NotNil(t, pet.OwnerID)
	assert.Equal(t, "u1", *pet.OwnerID)
}

func TestMarkAdopted_CompareAndSet(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedPet(t, s, "p1")

	require.NoError(t, s.Pets().MarkAdopted(ctx, "p1", "u1"))
	assert.ErrorIs(t, s.Pets().MarkAdopted(ctx, "p1", "u2"), models.ErrAlreadyAdopted)
	assert.ErrorIs(t, s.Pets().MarkAdopted(ctx, "missing", "u1"), models.ErrPetNotFound)
}

func TestAdoptionCreate_OnePerPet(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	first := &models.Adoption{ID: "a1", OwnerID: "u1", PetID: "p1", AdoptionDate: time.Now(), CreatedAt: time.Now()}
	require.NoError(t, s.Adoptions().Create(ctx, first))

	dup := &models.Adoption{ID: "a2", OwnerID: "u2", PetID: "p1", AdoptionDate: time.Now(), CreatedAt: time.Now()}
	assert.ErrorIs(t, s.Adoptions().Create(ctx, dup), models.ErrAlreadyAdopted)
}

func TestUserCreate_UniqueEmail(t *testing.T) {
	s := NewStore()
	seedUser(t, s, "u1", "pepe@example.com")

	err := s.Users().Create(context.Background(), &models.User{
		ID: "u2", FirstName: "Moni", LastName: "Argento", Email: "pepe@example.com",
	})
	assert.ErrorIs(t, err, models.ErrEmailTaken)
}
