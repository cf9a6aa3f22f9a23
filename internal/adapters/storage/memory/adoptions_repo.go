package memory

import (
	"context"

	"pawbuddy-client/internal/domain/adoptions"
)

type adoptionRepo struct {
	t *table[adoptions.Adoption]
}

func NewAdoptionRepo() adoptions.Repository {
	return &adoptionRepo{
		t: newTable(
			func(a adoptions.Adoption) int { return a.ID },
			func(a *adoptions.Adoption, id int) { a.ID = id },
			adoptions.ErrNotFound,
		),
	}
}

// Create guarda solo las FKs; las copias se arman al leer.
func (r *adoptionRepo) Create(ctx context.Context, a adoptions.Adoption) (adoptions.Adoption, error) {
	a.User, a.Animal = nil, nil
	return r.t.insert(a), nil
}

func (r *adoptionRepo) GetByID(ctx context.Context, id int) (adoptions.Adoption, error) {
	return r.t.get(id)
}

func (r *adoptionRepo) GetByAnimal(ctx context.Context, animalID int) (adoptions.Adoption, error) {
	a, ok := r.t.find(func(a adoptions.Adoption) bool { return a.AnimalID == animalID })
	if !ok {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}
	return a, nil
}

func (r *adoptionRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	return r.t.list(nil), nil
}

func (r *adoptionRepo) ListByUser(ctx context.Context, userID int) ([]adoptions.Adoption, error) {
	return r.t.list(func(a adoptions.Adoption) bool { return a.UserID == userID }), nil
}

func (r *adoptionRepo) Delete(ctx context.Context, id int) error {
	return r.t.delete(id)
}
