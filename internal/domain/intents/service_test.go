package intents

import (
	"context"
	"errors"
	"testing"
	"time"

	"pawbuddy-client/internal/ports/auth"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	seq  int
	byID map[int]Intent
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int]Intent{}}
}

func (r *testRepo) Create(ctx context.Context, i Intent) (Intent, error) {
	r.seq++
	i.ID = r.seq
	r.byID[i.ID] = i
	return i, nil
}

func (r *testRepo) Update(ctx context.Context, i Intent) error {
	if _, ok := r.byID[i.ID]; !ok {
		return ErrNotFound
	}
	r.byID[i.ID] = i
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id int) (Intent, error) {
	i, ok := r.byID[id]
	if !ok {
		return Intent{}, ErrNotFound
	}
	return i, nil
}

func (r *testRepo) List(ctx context.Context) ([]Intent, error) {
	out := make([]Intent, 0, len(r.byID))
	for _, i := range r.byID {
		out = append(out, i)
	}
	return out, nil
}

func (r *testRepo) ListByUser(ctx context.Context, userID int) ([]Intent, error) {
	out := make([]Intent, 0)
	for _, i := range r.byID {
		if i.UserID == userID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *testRepo) ListByAnimal(ctx context.Context, animalID int) ([]Intent, error) {
	out := make([]Intent, 0)
	for _, i := range r.byID {
		if i.AnimalID == animalID {
			out = append(out, i)
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

// -------------------------
// Helpers
// -------------------------

var (
	userClaims  = auth.Claims{UserID: 42}
	otherClaims = auth.Claims{UserID: 43}
	adminClaims = auth.Claims{UserID: 1, IsAdmin: true}
)

func newTestService(t *testing.T, completed *[]Intent) (*Service, *testRepo) {
	t.Helper()

	repo := newTestRepo()
	svc := NewService(repo, Deps{
		Animals: func(ctx context.Context, id int) (AnimalRef, error) {
			if id != 7 {
				return AnimalRef{}, errors.New("no such animal")
			}
			return AnimalRef{ID: 7, Name: "Bobi"}, nil
		},
		Users: func(ctx context.Context, id int) (UserRef, error) {
			return UserRef{ID: id, Name: "Ana"}, nil
		},
		OnCompleted: func(ctx context.Context, i Intent) error {
			*completed = append(*completed, i)
			return nil
		},
	})
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	return svc, repo
}

func mustCreate(t *testing.T, svc *Service) Intent {
	t.Helper()
	i, err := svc.Create(context.Background(), userClaims, Draft{
		AnimalID: 7, Profession: "Nurse", Residence: "House", Reason: "Love", HasPets: "no",
	}.Intent(0))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return i
}

// -------------------------
// Tests
// -------------------------

func TestCreate_ForcesReservedAndOwner(t *testing.T) {
	var completed []Intent
	svc, _ := newTestService(t, &completed)

	in := Draft{AnimalID: 7, Profession: "Nurse", Residence: "House", Reason: "Love", HasPets: "no"}.Intent(999)
	in.State = StateCompleted

	got, err := svc.Create(context.Background(), userClaims, in)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if got.ID == 0 || got.UserID != 42 || got.State != StateReserved {
		t.Fatalf("unexpected intent: %+v", got)
	}
	if got.Animal == nil || got.Animal.Name != "Bobi" {
		t.Fatalf("expected animal ref, got %+v", got.Animal)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("expected dataIA")
	}
}

func TestCreate_UnknownAnimal(t *testing.T) {
	var completed []Intent
	svc, _ := newTestService(t, &completed)

	in := Draft{AnimalID: 8, Profession: "Nurse", Residence: "House", Reason: "Love", HasPets: "no"}.Intent(0)
	_, err := svc.Create(context.Background(), userClaims, in)
	if !errors.Is(err, ErrRefNotFound) {
		t.Fatalf("expected ErrRefNotFound, got %v", err)
	}
}

func TestUpdate_UserCannotChangeState(t *testing.T) {
	var completed []Intent
	svc, _ := newTestService(t, &completed)
	i := mustCreate(t, svc)

	i.State = StateInProcess
	if _, err := svc.Update(context.Background(), userClaims, i.ID, i); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Update(context.Background(), otherClaims, i.ID, i); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for other user, got %v", err)
	}
}

func TestUpdate_AdminWalksStateMachine(t *testing.T) {
	var completed []Intent
	svc, _ := newTestService(t, &completed)
	i := mustCreate(t, svc)

	for _, next := range []State{StateInProcess, StateInValidation, StateCompleted} {
		i.State = next
		updated, err := svc.Update(context.Background(), adminClaims, i.ID, i)
		if err != nil {
			t.Fatalf("-> %s: %v", next, err)
		}
		i = updated
	}

	if len(completed) != 1 || completed[0].ID != i.ID {
		t.Fatalf("expected completion hook once, got %+v", completed)
	}

	// Concluido es terminal.
	i.State = StateRejected
	if _, err := svc.Update(context.Background(), adminClaims, i.ID, i); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestUpdate_SkippingStatesIsRejected(t *testing.T) {
	var completed []Intent
	svc, _ := newTestService(t, &completed)
	i := mustCreate(t, svc)

	i.State = StateCompleted
	if _, err := svc.Update(context.Background(), adminClaims, i.ID, i); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if len(completed) != 0 {
		t.Fatalf("hook must not run")
	}
}

func TestUpdate_KeepsImmutableFields(t *testing.T) {
	var completed []Intent
	svc, _ := newTestService(t, &completed)
	i := mustCreate(t, svc)

	in := i
	in.UserID = 99
	in.AnimalID = 100
	in.Reason = "Updated"
	got, err := svc.Update(context.Background(), userClaims, i.ID, in)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if got.UserID != 42 || got.AnimalID != 7 || got.Reason != "Updated" {
		t.Fatalf("unexpected intent: %+v", got)
	}
}

func TestList_ScopedByRole(t *testing.T) {
	var completed []Intent
	svc, _ := newTestService(t, &completed)
	mustCreate(t, svc)

	mine, _ := svc.List(context.Background(), userClaims)
	theirs, _ := svc.List(context.Background(), otherClaims)
	all, _ := svc.List(context.Background(), adminClaims)

	if len(mine) != 1 || len(theirs) != 0 || len(all) != 1 {
		t.Fatalf("mine=%d theirs=%d all=%d", len(mine), len(theirs), len(all))
	}
}

func TestDeleteByAnimal(t *testing.T) {
	var completed []Intent
	svc, repo := newTestService(t, &completed)
	mustCreate(t, svc)
	mustCreate(t, svc)

	if err := svc.DeleteByAnimal(context.Background(), 7); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected empty repo, got %d", len(repo.byID))
	}
}
