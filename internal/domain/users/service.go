package users

import (
	"context"
	"errors"
	"fmt"

	"pawbuddy-client/internal/domain/intents"
	"pawbuddy-client/internal/ports/auth"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrEmailTaken   = errors.New("email already registered")
	ErrForbidden    = errors.New("forbidden")
)

type (
	IntentsOf   func(ctx context.Context, userID int) ([]intents.Intent, error)
	DeletedHook func(ctx context.Context, userID int) error
)

type Deps struct {
	IntentsOf IntentsOf
	OnDeleted DeletedHook
}

type Service struct {
	repo Repository
	deps Deps
}

func NewService(repo Repository, deps Deps) *Service {
	return &Service{repo: repo, deps: deps}
}

// Create lo usa el registro. Email único.
func (s *Service) Create(ctx context.Context, in User) (User, error) {
	in = in.Normalize()
	in.ID = 0
	in.Intents = nil
	if err := in.Validate(); err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}
	return s.repo.Create(ctx, in)
}

// Update reemplaza el perfil. Solo el propio usuario o un admin.
func (s *Service) Update(ctx context.Context, actor auth.Claims, id int, in User) (User, error) {
	if !actor.IsAdmin && actor.UserID != id {
		return User{}, ErrForbidden
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return User{}, err
	}

	in = in.Normalize()
	in.ID = id
	in.Intents = nil
	if err := in.Validate(); err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if other, err := s.repo.GetByEmail(ctx, in.Email); err == nil && other.ID != id {
		return User{}, ErrEmailTaken
	}

	if err := s.repo.Update(ctx, in); err != nil {
		return User{}, err
	}
	return in, nil
}

func (s *Service) GetByID(ctx context.Context, actor auth.Claims, id int) (User, error) {
	if !actor.IsAdmin && actor.UserID != id {
		return User{}, ErrForbidden
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	return s.withIntents(ctx, u)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.deps.OnDeleted != nil {
		return s.deps.OnDeleted(ctx, id)
	}
	return nil
}

// Ref es el lookup que usa el módulo de intenciones.
func (s *Service) Ref(ctx context.Context, id int) (intents.UserRef, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return intents.UserRef{}, err
	}
	return u.Ref(), nil
}

func (s *Service) withIntents(ctx context.Context, u User) (User, error) {
	if s.deps.IntentsOf == nil {
		return u, nil
	}
	items, err := s.deps.IntentsOf(ctx, u.ID)
	if err != nil {
		return User{}, err
	}
	u.Intents = items
	return u, nil
}
