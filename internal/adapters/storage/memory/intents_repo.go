package memory

import (
	"context"

	"pawbuddy-client/internal/domain/intents"
)

type intentRepo struct {
	t *table[intents.Intent]
}

func NewIntentRepo() intents.Repository {
	return &intentRepo{
		t: newTable(
			func(i intents.Intent) int { return i.ID },
			func(i *intents.Intent, id int) { i.ID = id },
			intents.ErrNotFound,
		),
	}
}

func (r *intentRepo) Create(ctx context.Context, i intents.Intent) (intents.Intent, error) {
	return r.t.insert(i), nil
}

func (r *intentRepo) Update(ctx context.Context, i intents.Intent) error {
	return r.t.replace(i)
}

func (r *intentRepo) GetByID(ctx context.Context, id int) (intents.Intent, error) {
	return r.t.get(id)
}

func (r *intentRepo) List(ctx context.Context) ([]intents.Intent, error) {
	return r.t.list(nil), nil
}

func (r *intentRepo) ListByUser(ctx context.Context, userID int) ([]intents.Intent, error) {
	return r.t.list(func(i intents.Intent) bool { return i.UserID == userID }), nil
}

func (r *intentRepo) ListByAnimal(ctx context.Context, animalID int) ([]intents.Intent, error) {
	return r.t.list(func(i intents.Intent) bool { return i.AnimalID == animalID }), nil
}

func (r *intentRepo) Delete(ctx context.Context, id int) error {
	return r.t.delete(id)
}
