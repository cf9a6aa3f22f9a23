package animals

import (
	"context"
	"errors"
	"fmt"

	"pawbuddy-client/internal/domain/intents"
)

var (
	ErrNotFound      = errors.New("animal not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrImageNotFound = errors.New("image not found")
)

type (
	// AdoptedBy devuelve los ids de animales adoptados por el usuario.
	AdoptedBy func(ctx context.Context, userID int) ([]int, error)
	// IntentsOf lista las intenciones de un animal.
	IntentsOf func(ctx context.Context, animalID int) ([]intents.Intent, error)
	// DeletedHook limpia lo que cuelga del animal (intenciones).
	DeletedHook func(ctx context.Context, animalID int) error
)

type Deps struct {
	AdoptedBy AdoptedBy
	IntentsOf IntentsOf
	OnDeleted DeletedHook
}

type Service struct {
	repo   Repository
	images ImageStore
	deps   Deps
}

func NewService(repo Repository, images ImageStore, deps Deps) *Service {
	return &Service{
		repo:   repo,
		images: images,
		deps:   deps,
	}
}

func (s *Service) Create(ctx context.Context, f Form) (Animal, error) {
	if err := f.Validate(true); err != nil {
		return Animal{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	a := f.Animal()
	name, err := s.images.Save(ctx, *f.Image)
	if err != nil {
		return Animal{}, fmt.Errorf("save image: %w", err)
	}
	a.Image = name

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		_ = s.images.Delete(ctx, name)
		return Animal{}, err
	}
	return created, nil
}

// Update reemplaza los campos de texto. Sin imagen nueva se conserva la actual.
func (s *Service) Update(ctx context.Context, id int, f Form) (Animal, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}
	if err := f.Validate(false); err != nil {
		return Animal{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	next := f.Animal()
	next.ID = current.ID
	next.Image = current.Image

	if !f.Image.Empty() {
		name, err := s.images.Save(ctx, *f.Image)
		if err != nil {
			return Animal{}, fmt.Errorf("save image: %w", err)
		}
		next.Image = name
	}

	if err := s.repo.Update(ctx, next); err != nil {
		return Animal{}, err
	}
	if next.Image != current.Image && current.Image != "" {
		_ = s.images.Delete(ctx, current.Image)
	}
	return next, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (Animal, error) {
	return s.repo.GetByID(ctx, id)
}

// GetWithIntents agrega las intenciones del animal (vista de admin).
func (s *Service) GetWithIntents(ctx context.Context, id int) (Animal, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}
	if s.deps.IntentsOf != nil {
		items, err := s.deps.IntentsOf(ctx, id)
		if err != nil {
			return Animal{}, err
		}
		a.Intents = items
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

// ListByUser devuelve los animales adoptados por el usuario.
func (s *Service) ListByUser(ctx context.Context, userID int) ([]Animal, error) {
	if s.deps.AdoptedBy == nil {
		return []Animal{}, nil
	}
	ids, err := s.deps.AdoptedBy(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]Animal, 0, len(ids))
	for _, id := range ids {
		a, err := s.repo.GetByID(ctx, id)
		if errors.Is(err, ErrNotFound) {
			// tolera adopciones de animales ya borrados
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if current.Image != "" {
		_ = s.images.Delete(ctx, current.Image)
	}
	if s.deps.OnDeleted != nil {
		return s.deps.OnDeleted(ctx, id)
	}
	return nil
}

func (s *Service) Image(ctx context.Context, name string) ([]byte, error) {
	return s.images.Open(ctx, name)
}

// Ref es el lookup que usa el módulo de intenciones.
func (s *Service) Ref(ctx context.Context, id int) (intents.AnimalRef, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return intents.AnimalRef{}, err
	}
	return a.Ref(), nil
}
