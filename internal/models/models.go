package models

import "time"

// Pet represents an adoptable pet
type Pet struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Specie    string     `json:"specie,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty"`
	Adopted   bool       `json:"adopted"`
	Image     string     `json:"image,omitempty"`
	OwnerID   *string    `json:"owner,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// User represents a registered user
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Pets         []string  `json:"pets"`
	CreatedAt    time.Time `json:"created_at"`
}

// Adoption links a user and the pet they adopted.
// Records are immutable once created.
type Adoption struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner"`
	PetID        string    `json:"pet"`
	AdoptionDate time.Time `json:"adoptionDate"`
	CreatedAt    time.Time `json:"created_at"`
}
