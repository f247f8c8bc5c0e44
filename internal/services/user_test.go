package services

import (
	"context"
	"testing"

	"adoptme-backend/internal/models"
	"adoptme-backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_HashesPasswordAndNormalizesEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.NewStore(), "test-secret")

	user, err := svc.Register(ctx, RegisterInput{
		FirstName: "  Pepe ",
		LastName:  "Argento",
		Email:     " Pepe@Zapateria.com ",
		Password:  "1234",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Pepe", user.FirstName)
	assert.Equal(t, "pepe@zapateria.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "1234", user.PasswordHash)
	assert.Equal(t, []string{}, user.Pets)
}

func TestRegister_MissingFields(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.NewStore(), "test-secret")

	cases := []RegisterInput{
		{LastName: "Argento", Email: "a@b.com", Password: "x"},
		{FirstName: "Pepe", Email: "a@b.com", Password: "x"},
		{FirstName: "Pepe", LastName: "Argento", Password: "x"},
		{FirstName: "Pepe", LastName: "Argento", Email: "a@b.com"},
	}
	for _, in := range cases {
		_, err := svc.Register(ctx, in)
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.NewStore(), "test-secret")

	in := RegisterInput{FirstName: "Pepe", LastName: "Argento", Email: "pepe@example.com", Password: "1234"}
	_, err := svc.Register(ctx, in)
	require.NoError(t, err)

	_, err = svc.Register(ctx, in)
	require.ErrorIs(t, err, models.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.NewStore(), "test-secret")

	registered, err := svc.Register(ctx, RegisterInput{
		FirstName: "Pepe", LastName: "Argento", Email: "pepe@example.com", Password: "1234",
	})
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "pepe@example.com", "1234")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	require.NotEmpty(t, token)

	// The issued token validates back to the same user
	userID, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)

	_, _, err = svc.Login(ctx, "pepe@example.com", "wrong")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "1234")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestValidateJWT_RejectsForeignToken(t *testing.T) {
	svcA := NewUserService(memory.NewStore(), "secret-a")
	svcB := NewUserService(memory.NewStore(), "secret-b")

	token, err := svcA.GenerateJWT("user-1")
	require.NoError(t, err)

	_, err = svcB.ValidateJWT(token)
	assert.Error(t, err)
}

func TestUserUpdate_PartialPatch(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.NewStore(), "test-secret")

	user, err := svc.Register(ctx, RegisterInput{
		FirstName: "Pepe", LastName: "Argento", Email: "pepe@example.com", Password: "1234",
	})
	require.NoError(t, err)

	newFirst := "José"
	updated, err := svc.Update(ctx, user.ID, UpdateInput{FirstName: &newFirst})
	require.NoError(t, err)
	assert.Equal(t, "José", updated.FirstName)
	assert.Equal(t, "Argento", updated.LastName)
	assert.Equal(t, "pepe@example.com", updated.Email)

	empty := ""
	_, err = svc.Update(ctx, user.ID, UpdateInput{Email: &empty})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = svc.Update(ctx, "missing", UpdateInput{FirstName: &newFirst})
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserDelete(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewUserService(store, "test-secret")

	user, err := svc.Register(ctx, RegisterInput{
		FirstName: "Pepe", LastName: "Argento", Email: "pepe@example.com", Password: "1234",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, user.ID))

	_, err = svc.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, user.ID), models.ErrUserNotFound)
}
