package memory

import (
	"context"
	"fmt"
	"sort"

	"adoptme-backend/internal/models"
)

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(ctx context.Context, user *models.User) error {
	defer r.s.lock()()

	for _, u := range r.s.data.users {
		if u.Email == user.Email {
			return fmt.Errorf("%w: %s", models.ErrEmailTaken, user.Email)
		}
	}
	r.s.data.users[user.ID] = cloneUser(*user)
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	defer r.s.rlock()()

	u, ok := r.s.data.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	u = cloneUser(u)
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	defer r.s.rlock()()

	for _, u := range r.s.data.users {
		if u.Email == email {
			u = cloneUser(u)
			return &u, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (r *userRepo) List(ctx context.Context) ([]*models.User, error) {
	defer r.s.rlock()()

	out := make([]*models.User, 0, len(r.s.data.users))
	for _, u := range r.s.data.users {
		u := cloneUser(u)
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *userRepo) Update(ctx context.Context, user *models.User) error {
	defer r.s.lock()()

	if _, ok := r.s.data.users[user.ID]; !ok {
		return models.ErrUserNotFound
	}
	for id, u := range r.s.data.users {
		if id != user.ID && u.Email == user.Email {
			return fmt.Errorf("%w: %s", models.ErrEmailTaken, user.Email)
		}
	}
	r.s.data.users[user.ID] = cloneUser(*user)
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	defer r.s.lock()()

	if _, ok := r.s.data.users[id]; !ok {
		return models.ErrUserNotFound
	}
	delete(r.s.data.users, id)
	return nil
}

func (r *userRepo) AppendPet(ctx context.Context, userID, petID string) error {
	defer r.s.lock()()

	u, ok := r.s.data.users[userID]
	if !ok {
		return models.ErrUserNotFound
	}
	u.Pets = append(append([]string(nil), u.Pets...), petID)
	r.s.data.users[userID] = u
	return nil
}

type petRepo struct {
	s *Store
}

func (r *petRepo) Create(ctx context.Context, pet *models.Pet) error {
	defer r.s.lock()()

	r.s.data.pets[pet.ID] = *pet
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	defer r.s.rlock()()

	p, ok := r.s.data.pets[id]
	if !ok {
		return nil, models.ErrPetNotFound
	}
	return &p, nil
}

func (r *petRepo) List(ctx context.Context) ([]*models.Pet, error) {
	defer r.s.rlock()()

	out := make([]*models.Pet, 0, len(r.s.data.pets))
	for _, p := range r.s.data.pets {
		p := p
		out = append(out, &p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *petRepo) Update(ctx context.Context, pet *models.Pet) error {
	defer r.s.lock()()

	if _, ok := r.s.data.pets[pet.ID]; !ok {
		return models.ErrPetNotFound
	}
	r.s.data.pets[pet.ID] = *pet
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	defer r.s.lock()()

	if _, ok := r.s.data.pets[id]; !ok {
		return models.ErrPetNotFound
	}
	delete(r.s.data.pets, id)
	return nil
}

func (r *petRepo) MarkAdopted(ctx context.Context, petID, ownerID string) error {
	defer r.s.lock()()

	p, ok := r.s.data.pets[petID]
	if !ok {
		return models.ErrPetNotFound
	}
	if p.Adopted {
		return models.ErrAlreadyAdopted
	}
	p.Adopted = true
	p.OwnerID = &ownerID
	r.s.data.pets[petID] = p
	return nil
}

type adoptionRepo struct {
	s *Store
}

func (r *adoptionRepo) Create(ctx context.Context, adoption *models.Adoption) error {
	defer r.s.lock()()

	for _, a := range r.s.data.adoptions {
		if a.PetID == adoption.PetID {
			return fmt.Errorf("%w: pet %s", models.ErrAlreadyAdopted, adoption.PetID)
		}
	}
	r.s.data.adoptions[adoption.ID] = *adoption
	return nil
}

func (r *adoptionRepo) GetByID(ctx context.Context, id string) (*models.Adoption, error) {
	defer r.s.rlock()()

	a, ok := r.s.data.adoptions[id]
	if !ok {
		return nil, models.ErrAdoptionNotFound
	}
	return &a, nil
}

func (r *adoptionRepo) List(ctx context.Context) ([]*models.Adoption, error) {
	defer r.s.rlock()()

	out := make([]*models.Adoption, 0, len(r.s.data.adoptions))
	for _, a := range r.s.data.adoptions {
		a := a
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func cloneUser(u models.User) models.User {
	u.Pets = append([]string(nil), u.Pets...)
	if u.Pets == nil {
		u.Pets = []string{}
	}
	return u
}
