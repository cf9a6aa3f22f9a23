package animals

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"pawbuddy-client/internal/domain/intents"
)

type testRepo struct {
	seq  int
	byID map[int]Animal
}

func newTestRepo() *testRepo { return &testRepo{byID: map[int]Animal{}} }

func (r *testRepo) Create(ctx context.Context, a Animal) (Animal, error) {
	r.seq++
	a.ID = r.seq
	r.byID[a.ID] = a
	return a, nil
}

func (r *testRepo) Update(ctx context.Context, a Animal) error {
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context) ([]Animal, error) {
	out := make([]Animal, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
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

type testImages struct {
	n     int
	saved map[string][]byte
}

func (s *testImages) Save(ctx context.Context, img Image) (string, error) {
	s.n++
	name := fmt.Sprintf("img-%d.jpg", s.n)
	s.saved[name] = img.Data
	return name, nil
}

func (s *testImages) Open(ctx context.Context, name string) ([]byte, error) {
	b, ok := s.saved[name]
	if !ok {
		return nil, ErrImageNotFound
	}
	return b, nil
}

func (s *testImages) Delete(ctx context.Context, name string) error {
	delete(s.saved, name)
	return nil
}

func TestService_CreateUpdateDelete(t *testing.T) {
	ctx := context.Background()
	images := &testImages{saved: map[string][]byte{}}
	var deleted []int
	svc := NewService(newTestRepo(), images, Deps{
		OnDeleted: func(ctx context.Context, id int) error {
			deleted = append(deleted, id)
			return nil
		},
	})

	a, err := svc.Create(ctx, validForm())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.ID != 1 || a.Image == "" {
		t.Fatalf("unexpected animal: %+v", a)
	}

	// Edición sin imagen conserva la actual.
	f := FormFrom(a)
	f.Name = "Bobi II"
	upd, err := svc.Update(ctx, a.ID, f)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if upd.Name != "Bobi II" || upd.Image != a.Image {
		t.Fatalf("unexpected update: %+v", upd)
	}

	// Con imagen nueva, la anterior se borra.
	f.Image = &Image{Filename: "new.jpg", Data: jpegBytes}
	upd2, err := svc.Update(ctx, a.ID, f)
	if err != nil {
		t.Fatalf("update with image: %v", err)
	}
	if upd2.Image == a.Image {
		t.Fatalf("expected new image name")
	}
	if _, err := svc.Image(ctx, a.Image); !errors.Is(err, ErrImageNotFound) {
		t.Fatalf("old image should be gone, got %v", err)
	}

	if err := svc.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(deleted) != 1 || deleted[0] != a.ID {
		t.Fatalf("expected delete hook, got %v", deleted)
	}
	if err := svc.Delete(ctx, a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_CreateRequiresImage(t *testing.T) {
	svc := NewService(newTestRepo(), &testImages{saved: map[string][]byte{}}, Deps{})

	f := validForm()
	f.Image = nil
	if _, err := svc.Create(context.Background(), f); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_ListByUserSkipsMissing(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestRepo(), &testImages{saved: map[string][]byte{}}, Deps{
		AdoptedBy: func(ctx context.Context, userID int) ([]int, error) { return []int{1, 99}, nil },
		IntentsOf: func(ctx context.Context, animalID int) ([]intents.Intent, error) {
			return []intents.Intent{{ID: 5, AnimalID: animalID}}, nil
		},
	})
	if _, err := svc.Create(ctx, validForm()); err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := svc.ListByUser(ctx, 42)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].ID != 1 {
		t.Fatalf("unexpected items: %+v", items)
	}

	withIntents, err := svc.GetWithIntents(ctx, 1)
	if err != nil || len(withIntents.Intents) != 1 {
		t.Fatalf("expected intents, got %+v err=%v", withIntents, err)
	}
}
