package adoptions

import (
	"context"
	"errors"
	"time"

	"pawbuddy-client/internal/domain/animals"
	"pawbuddy-client/internal/domain/intents"
	"pawbuddy-client/internal/domain/users"
	"pawbuddy-client/internal/platform/jsontime"
)

var (
	ErrNotFound       = errors.New("adoption not found")
	ErrAlreadyAdopted = errors.New("animal already adopted")
)

type (
	AnimalLookup func(ctx context.Context, id int) (animals.Animal, error)
	UserLookup   func(ctx context.Context, id int) (users.User, error)
)

type Deps struct {
	Animals AnimalLookup
	Users   UserLookup
}

type Service struct {
	repo Repository
	deps Deps
	now  func() time.Time
}

func NewService(repo Repository, deps Deps) *Service {
	return &Service{
		repo: repo,
		deps: deps,
		now:  time.Now,
	}
}

// FromIntent crea la adopción de una intención concluida. Un animal se
// adopta una sola vez.
func (s *Service) FromIntent(ctx context.Context, i intents.Intent) error {
	if _, err := s.repo.GetByAnimal(ctx, i.AnimalID); err == nil {
		return ErrAlreadyAdopted
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	now := s.now().UTC()
	_, err := s.repo.Create(ctx, Adoption{
		Date:     jsontime.NewDate(now.Year(), now.Month(), now.Day()),
		UserID:   i.UserID,
		AnimalID: i.AnimalID,
	})
	return err
}

func (s *Service) GetByID(ctx context.Context, id int) (Adoption, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Adoption{}, err
	}
	s.denormalize(ctx, &a)
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]Adoption, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		s.denormalize(ctx, &items[i])
	}
	return items, nil
}

// AnimalIDsByUser alimenta /utilizadores/{id}/animais.
func (s *Service) AnimalIDsByUser(ctx context.Context, userID int) ([]int, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(items))
	for _, a := range items {
		ids = append(ids, a.AnimalID)
	}
	return ids, nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// denormalize agrega las copias para mostrar. Si el animal o el usuario ya
// no existen, la adopción se muestra igual sin ellos.
func (s *Service) denormalize(ctx context.Context, a *Adoption) {
	if s.deps.Animals != nil {
		if an, err := s.deps.Animals(ctx, a.AnimalID); err == nil {
			a.Animal = &an
		}
	}
	if s.deps.Users != nil {
		if u, err := s.deps.Users(ctx, a.UserID); err == nil {
			a.User = &u
		}
	}
}
