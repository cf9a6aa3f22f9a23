package intents

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pawbuddy-client/internal/platform/jsontime"
	"pawbuddy-client/internal/ports/auth"
)

var (
	ErrNotFound          = errors.New("intent not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrForbidden         = errors.New("forbidden")

	// ErrRefNotFound: el animal o el utilizador referido ya no existe.
	ErrRefNotFound = errors.New("referenced resource not found")
)

// Lookups hacia otros módulos; se inyectan desde el router para no importar
// animals/users desde acá.
type (
	UserLookup   func(ctx context.Context, id int) (UserRef, error)
	AnimalLookup func(ctx context.Context, id int) (AnimalRef, error)
	// CompletedHook corre cuando una intención llega a Concluido.
	CompletedHook func(ctx context.Context, i Intent) error
)

type Deps struct {
	Users       UserLookup
	Animals     AnimalLookup
	OnCompleted CompletedHook
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

// Create registra la intención del usuario autenticado. El estado inicial
// siempre es Reservado, venga lo que venga en el body.
func (s *Service) Create(ctx context.Context, actor auth.Claims, in Intent) (Intent, error) {
	if actor.UserID <= 0 {
		return Intent{}, ErrForbidden
	}

	in.ID = 0
	in.UserID = actor.UserID
	in.State = StateReserved
	in.CreatedAt = jsontime.Timestamp{Time: s.now().UTC()}
	normalize(&in)

	if err := in.Validate(); err != nil {
		return Intent{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.attachRefs(ctx, &in); err != nil {
		return Intent{}, err
	}

	return s.repo.Create(ctx, in)
}

// Update es un reemplazo completo. Ids, dueño, animal y fecha no cambian.
// Solo un admin cambia el estado, y solo por una transición válida.
func (s *Service) Update(ctx context.Context, actor auth.Claims, id int, in Intent) (Intent, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Intent{}, err
	}
	if !actor.IsAdmin && current.UserID != actor.UserID {
		return Intent{}, ErrForbidden
	}

	next := current
	next.Profession = in.Profession
	next.Residence = in.Residence
	next.Reason = in.Reason
	next.HasPets = in.HasPets
	next.WhichPets = in.WhichPets
	normalize(&next)

	if in.State != current.State {
		if !actor.IsAdmin {
			return Intent{}, ErrForbidden
		}
		if !current.State.CanTransition(in.State) {
			return Intent{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.State, in.State)
		}
		next.State = in.State
	} else if current.State.Terminal() && !actor.IsAdmin {
		return Intent{}, fmt.Errorf("%w: intent is %s", ErrInvalidTransition, current.State)
	}

	if err := next.Validate(); err != nil {
		return Intent{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	// La adopción se crea antes de persistir: si falla, la intención no
	// queda Concluida sin su adopción.
	if next.State == StateCompleted && current.State != StateCompleted && s.deps.OnCompleted != nil {
		if err := s.deps.OnCompleted(ctx, next); err != nil {
			return Intent{}, fmt.Errorf("%w: finalize adoption: %v", ErrInvalidTransition, err)
		}
	}

	if err := s.repo.Update(ctx, next); err != nil {
		return Intent{}, err
	}
	return next, nil
}

// GetByID: un usuario normal solo ve las suyas.
func (s *Service) GetByID(ctx context.Context, actor auth.Claims, id int) (Intent, error) {
	i, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Intent{}, err
	}
	if !actor.IsAdmin && i.UserID != actor.UserID {
		return Intent{}, ErrForbidden
	}
	return i, nil
}

// List: admin ve todas; usuario, las propias.
func (s *Service) List(ctx context.Context, actor auth.Claims) ([]Intent, error) {
	if actor.IsAdmin {
		return s.repo.List(ctx)
	}
	return s.repo.ListByUser(ctx, actor.UserID)
}

func (s *Service) ListByAnimal(ctx context.Context, animalID int) ([]Intent, error) {
	return s.repo.ListByAnimal(ctx, animalID)
}

func (s *Service) ListByUser(ctx context.Context, userID int) ([]Intent, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// DeleteByAnimal limpia las intenciones de un animal borrado.
func (s *Service) DeleteByAnimal(ctx context.Context, animalID int) error {
	items, err := s.repo.ListByAnimal(ctx, animalID)
	if err != nil {
		return err
	}
	for _, i := range items {
		if err := s.repo.Delete(ctx, i.ID); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	return nil
}

// DeleteByUser limpia las intenciones de un usuario borrado.
func (s *Service) DeleteByUser(ctx context.Context, userID int) error {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	for _, i := range items {
		if err := s.repo.Delete(ctx, i.ID); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}
	}
	return nil
}

func (s *Service) attachRefs(ctx context.Context, i *Intent) error {
	if s.deps.Animals != nil {
		a, err := s.deps.Animals(ctx, i.AnimalID)
		if err != nil {
			return fmt.Errorf("%w: animal %d: %v", ErrRefNotFound, i.AnimalID, err)
		}
		i.Animal = &a
	}
	if s.deps.Users != nil {
		u, err := s.deps.Users(ctx, i.UserID)
		if err != nil {
			return fmt.Errorf("%w: user %d: %v", ErrRefNotFound, i.UserID, err)
		}
		i.User = &u
	}
	return nil
}

func normalize(i *Intent) {
	i.Profession = strings.TrimSpace(i.Profession)
	i.Residence = strings.TrimSpace(i.Residence)
	i.Reason = strings.TrimSpace(i.Reason)
	i.WhichPets = strings.TrimSpace(i.WhichPets)
	if !i.HasPets {
		i.WhichPets = ""
	}
}
