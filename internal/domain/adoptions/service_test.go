package adoptions

import (
	"context"
	"errors"
	"testing"
	"time"

	"pawbuddy-client/internal/domain/animals"
	"pawbuddy-client/internal/domain/intents"
	"pawbuddy-client/internal/domain/users"
)

type testRepo struct {
	seq  int
	byID map[int]Adoption
}

func (r *testRepo) Create(ctx context.Context, a Adoption) (Adoption, error) {
	r.seq++
	a.ID = r.seq
	r.byID[a.ID] = a
	return a, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int) (Adoption, error) {
	a, ok := r.byID[id]
	if !ok {
		return Adoption{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) GetByAnimal(ctx context.Context, animalID int) (Adoption, error) {
	for _, a := range r.byID {
		if a.AnimalID == animalID {
			return a, nil
		}
	}
	return Adoption{}, ErrNotFound
}

func (r *testRepo) List(ctx context.Context) ([]Adoption, error) {
	out := make([]Adoption, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) ListByUser(ctx context.Context, userID int) ([]Adoption, error) {
	out := make([]Adoption, 0)
	for _, a := range r.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) Delete(ctx context.Context, id int) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func TestFromIntent(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{byID: map[int]Adoption{}}
	svc := NewService(repo, Deps{
		Animals: func(ctx context.Context, id int) (animals.Animal, error) {
			return animals.Animal{ID: id, Name: "Bobi"}, nil
		},
		Users: func(ctx context.Context, id int) (users.User, error) {
			return users.User{}, users.ErrNotFound
		},
	})
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC) }

	if err := svc.FromIntent(ctx, intents.Intent{ID: 1, UserID: 42, AnimalID: 7}); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if err := svc.FromIntent(ctx, intents.Intent{ID: 2, UserID: 43, AnimalID: 7}); !errors.Is(err, ErrAlreadyAdopted) {
		t.Fatalf("expected ErrAlreadyAdopted, got %v", err)
	}

	items, err := svc.List(ctx)
	if err != nil || len(items) != 1 {
		t.Fatalf("expected 1 adoption, got %d err=%v", len(items), err)
	}
	a := items[0]
	if a.Date.String() != "2025-06-01" || a.AnimalName() != "Bobi" || a.User != nil {
		t.Fatalf("unexpected adoption: %+v", a)
	}

	ids, _ := svc.AnimalIDsByUser(ctx, 42)
	if len(ids) != 1 || ids[0] != 7 {
		t.Fatalf("unexpected ids: %v", ids)
	}

	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
