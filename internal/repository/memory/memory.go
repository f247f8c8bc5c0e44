// Package memory implements repository.Store on plain maps. It is used in
// tests and when running without a database.
package memory

import (
	"context"
	"sync"

	"adoptme-backend/internal/models"
	"adoptme-backend/internal/repository"
)

type data struct {
	users     map[string]models.User
	pets      map[string]models.Pet
	adoptions map[string]models.Adoption
}

func (d *data) clone() *data {
	c := &data{
		users:     make(map[string]models.User, len(d.users)),
		pets:      make(map[string]models.Pet, len(d.pets)),
		adoptions: make(map[string]models.Adoption, len(d.adoptions)),
	}
	for id, u := range d.users {
		u.Pets = append([]string(nil), u.Pets...)
		c.users[id] = u
	}
	for id, p := range d.pets {
		c.pets[id] = p
	}
	for id, a := range d.adoptions {
		c.adoptions[id] = a
	}
	return c
}

// Store is the in-memory implementation of repository.Store.
type Store struct {
	mu   sync.RWMutex
	data *data

	// tx marks a transactional view: the outer WithTx already holds the
	// write lock, so nested locking is skipped.
	tx bool
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		data: &data{
			users:     make(map[string]models.User),
			pets:      make(map[string]models.Pet),
			adoptions: make(map[string]models.Adoption),
		},
	}
}

func (s *Store) Users() repository.UserRepository         { return &userRepo{s: s} }
func (s *Store) Pets() repository.PetRepository           { return &petRepo{s: s} }
func (s *Store) Adoptions() repository.AdoptionRepository { return &adoptionRepo{s: s} }

// WithTx serializes fn under the store's write lock and restores a snapshot
// of all collections when fn fails, matching the rollback semantics of the
// Postgres implementation.
func (s *Store) WithTx(ctx context.Context, fn func(repository.Store) error) error {
	if s.tx {
		return fn(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	txStore := &Store{data: s.data, tx: true}

	if err := fn(txStore); err != nil {
		*s.data = *snapshot
		return err
	}
	return nil
}

func (s *Store) lock() func() {
	if s.tx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) rlock() func() {
	if s.tx {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}
