package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"adoptme-backend/internal/models"
	"adoptme-backend/internal/repository"
	"adoptme-backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, store repository.Store) *models.User {
	t.Helper()

	svc := NewUserService(store, "test-secret")
	user, err := svc.Register(context.Background(), RegisterInput{
		FirstName: "Cacho",
		LastName:  "Castaña",
		Email:     "cacho@debuenosaires.com",
		Password:  "1234",
	})
	require.NoError(t, err)
	return user
}

func newTestPet(t *testing.T, store repository.Store) *models.Pet {
	t.Helper()

	svc := NewPetService(store, nil)
	birthDate := time.Date(2019, 4, 12, 0, 0, 0, 0, time.UTC)
	pet, err := svc.Create(context.Background(), CreatePetInput{
		Name:      "Capitán",
		Specie:    "Perro",
		BirthDate: &birthDate,
	})
	require.NoError(t, err)
	return pet
}

func TestAdopt_Success(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	user := newTestUser(t, store)
	pet := newTestPet(t, store)

	svc := NewAdoptionService(store)
	adoption, err := svc.Adopt(ctx, user.ID, pet.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, user.ID, adoption.OwnerID)
	assert.Equal(t, pet.ID, adoption.PetID)
	assert.False(t, adoption.AdoptionDate.IsZero())

	// Pet is adopted and owned by the user
	gotPet, err := store.Pets().GetByID(ctx, pet.ID)
	require.NoError(t, err)
	assert.True(t, gotPet.Adopted)
	require.NotNil(t, gotPet.OwnerID)
	assert.Equal(t, user.ID, *gotPet.OwnerID)

	// User owns the pet exactly once
	gotUser, err := store.Users().GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{pet.ID}, gotUser.Pets)

	// Exactly one adoption record exists
	adoptions, err := store.Adoptions().List(ctx)
	require.NoError(t, err)
	require.Len(t, adoptions, 1)
	assert.Equal(t, adoption.ID, adoptions[0].ID)
}

func TestAdopt_CallerSuppliedDate(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	user := newTestUser(t, store)
	pet := newTestPet(t, store)

	date := time.Date(2024, 11, 19, 0, 0, 0, 0, time.UTC)
	svc := NewAdoptionService(store)
	adoption, err := svc.Adopt(ctx, user.ID, pet.ID, &date)
	require.NoError(t, err)
	assert.Equal(t, date, adoption.AdoptionDate)
}

func TestAdopt_UserNotFound(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	pet := newTestPet(t, store)

	svc := NewAdoptionService(store)
	_, err := svc.Adopt(ctx, "missing-user", pet.ID, nil)
	require.ErrorIs(t, err, models.ErrUserNotFound)

	// No mutation happened
	gotPet, err := store.Pets().GetByID(ctx, pet.ID)
	require.NoError(t, err)
	assert.False(t, gotPet.Adopted)

	adoptions, err := store.Adoptions().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, adoptions)
}

func TestAdopt_PetNotFound(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	user := newTestUser(t, store)

	svc := NewAdoptionService(store)
	_, err := svc.Adopt(ctx, user.ID, "missing-pet", nil)
	require.ErrorIs(t, err, models.ErrPetNotFound)

	gotUser, err := store.Users().GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, gotUser.Pets)
}

func TestAdopt_AlreadyAdopted(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	user := newTestUser(t, store)
	pet := newTestPet(t, store)

	svc := NewAdoptionService(store)
	_, err := svc.Adopt(ctx, user.ID, pet.ID, nil)
	require.NoError(t, err)

	// Second call fails and leaves the state of the first call untouched
	_, err = svc.Adopt(ctx, user.ID, pet.ID, nil)
	require.ErrorIs(t, err, models.ErrAlreadyAdopted)

	gotUser, err := store.Users().GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{pet.ID}, gotUser.Pets, "pet must not be appended twice")

	adoptions, err := store.Adoptions().List(ctx)
	require.NoError(t, err)
	assert.Len(t, adoptions, 1)
}

// failingAdoptionStore delegates everything to the wrapped store but makes
// every adoption insert fail, to exercise the rollback path.
type failingAdoptionStore struct {
	repository.Store
}

func (s *failingAdoptionStore) Adoptions() repository.AdoptionRepository {
	return failingAdoptionRepo{}
}

func (s *failingAdoptionStore) WithTx(ctx context.Context, fn func(repository.Store) error) error {
	return s.Store.WithTx(ctx, func(tx repository.Store) error {
		return fn(&failingAdoptionStore{Store: tx})
	})
}

type failingAdoptionRepo struct{}

var errInsertFailed = errors.New("adoption insert failed")

func (failingAdoptionRepo) Create(context.Context, *models.Adoption) error { return errInsertFailed }
func (failingAdoptionRepo) GetByID(context.Context, string) (*models.Adoption, error) {
	return nil, errInsertFailed
}
func (failingAdoptionRepo) List(context.Context) ([]*models.Adoption, error) {
	return nil, errInsertFailed
}

func TestAdopt_RollsBackWhenAdoptionInsertFails(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	user := newTestUser(t, store)
	pet := newTestPet(t, store)

	svc := NewAdoptionService(&failingAdoptionStore{Store: store})
	_, err := svc.Adopt(ctx, user.ID, pet.ID, nil)
	require.ErrorIs(t, err, errInsertFailed)

	// The pet and user updates made before the failing insert were rolled back
	gotPet, err := store.Pets().GetByID(ctx, pet.ID)
	require.NoError(t, err)
	assert.False(t, gotPet.Adopted, "pet must not stay flagged adopted without an adoption record")
	assert.Nil(t, gotPet.OwnerID)

	gotUser, err := store.Users().GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, gotUser.Pets)
}

func TestAdopt_ConcurrentSamePet(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	pet := newTestPet(t, store)

	userSvc := NewUserService(store, "test-secret")
	userA, err := userSvc.Register(ctx, RegisterInput{
		FirstName: "Moni", LastName: "Argento", Email: "moni@example.com", Password: "1234",
	})
	require.NoError(t, err)
	userB, err := userSvc.Register(ctx, RegisterInput{
		FirstName: "Pepe", LastName: "Argento", Email: "pepe@example.com", Password: "1234",
	})
	require.NoError(t, err)

	svc := NewAdoptionService(store)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, uid := range []string{userA.ID, userB.ID} {
		wg.Add(1)
		go func(i int, uid string) {
			defer wg.Done()
			_, results[i] = svc.Adopt(ctx, uid, pet.ID, nil)
		}(i, uid)
	}
	wg.Wait()

	// Exactly one of the two calls wins
	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			require.ErrorIs(t, err, models.ErrAlreadyAdopted)
		}
	}
	assert.Equal(t, 1, winners)

	adoptions, err := store.Adoptions().List(ctx)
	require.NoError(t, err)
	assert.Len(t, adoptions, 1)
}
