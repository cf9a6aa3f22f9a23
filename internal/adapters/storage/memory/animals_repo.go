package memory

import (
	"context"

	"pawbuddy-client/internal/domain/animals"
)

type animalRepo struct {
	t *table[animals.Animal]
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		t: newTable(
			func(a animals.Animal) int { return a.ID },
			func(a *animals.Animal, id int) { a.ID = id },
			animals.ErrNotFound,
		),
	}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	a.Intents = nil
	return r.t.insert(a), nil
}

func (r *animalRepo) Update(ctx context.Context, a animals.Animal) error {
	a.Intents = nil
	return r.t.replace(a)
}

func (r *animalRepo) GetByID(ctx context.Context, id int) (animals.Animal, error) {
	return r.t.get(id)
}

func (r *animalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	return r.t.list(nil), nil
}

func (r *animalRepo) Delete(ctx context.Context, id int) error {
	return r.t.delete(id)
}
