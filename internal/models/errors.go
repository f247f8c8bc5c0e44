package models

import "errors"

// Sentinel errors shared by repositories, services and handlers.
// Callers match them with errors.Is; wrapping preserves the cause.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPetNotFound      = errors.New("pet not found")
	ErrAdoptionNotFound = errors.New("adoption not found")

	// ErrAlreadyAdopted is the business conflict for a second adoption
	// attempt on the same pet.
	ErrAlreadyAdopted = errors.New("pet is already adopted")

	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
