package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"pawbuddy-client/internal/domain/users"
	"pawbuddy-client/internal/ports/auth"
)

var (
	ErrNotFound           = errors.New("account not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = users.ErrEmailTaken
)

const DefaultSessionTTL = 7 * 24 * time.Hour

// UserDirectory es lo que accounts necesita del módulo de usuarios.
type UserDirectory interface {
	Create(ctx context.Context, in users.User) (users.User, error)
	GetByEmail(ctx context.Context, email string) (users.User, error)
}

type Service struct {
	repo     Repository
	sessions SessionRepository
	users    UserDirectory

	ttl  time.Duration
	cost int
	now  func() time.Time
}

var _ auth.SessionResolver = (*Service)(nil)

func NewService(repo Repository, sessions SessionRepository, dir UserDirectory) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		users:    dir,
		ttl:      DefaultSessionTTL,
		cost:     bcrypt.DefaultCost,
		now:      time.Now,
	}
}

// Register crea perfil + credenciales y abre sesión.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (Identity, Session, error) {
	if err := req.Validate(); err != nil {
		return Identity{}, Session{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	u, err := s.users.Create(ctx, req.User)
	if err != nil {
		return Identity{}, Session{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return Identity{}, Session{}, fmt.Errorf("hash password: %w", err)
	}
	acc := Account{
		UserID:       u.ID,
		Email:        u.Email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, acc); err != nil {
		return Identity{}, Session{}, err
	}

	sess, err := s.openSession(ctx, u.ID)
	if err != nil {
		return Identity{}, Session{}, err
	}
	return identity(u, acc), sess, nil
}

// Login valida credenciales. Email inexistente y contraseña incorrecta
// devuelven el mismo error.
func (s *Service) Login(ctx context.Context, req LoginRequest) (Identity, Session, error) {
	if err := req.Validate(); err != nil {
		return Identity{}, Session{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	acc, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return Identity{}, Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Identity{}, Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(req.Password)); err != nil {
		return Identity{}, Session{}, ErrInvalidCredentials
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return Identity{}, Session{}, err
	}

	sess, err := s.openSession(ctx, acc.UserID)
	if err != nil {
		return Identity{}, Session{}, err
	}
	return identity(u, acc), sess, nil
}

// Logout es idempotente.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	err := s.sessions.Delete(ctx, sessionID)
	if errors.Is(err, auth.ErrSessionNotFound) {
		return nil
	}
	return err
}

// Resolve implementa auth.SessionResolver.
func (s *Service) Resolve(ctx context.Context, sessionID string) (auth.Claims, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return auth.Claims{}, err
	}
	if sess.Expired(s.now()) {
		_ = s.sessions.Delete(ctx, sessionID)
		return auth.Claims{}, auth.ErrSessionNotFound
	}

	acc, err := s.repo.GetByUserID(ctx, sess.UserID)
	if err != nil {
		// usuario borrado con la sesión viva
		_ = s.sessions.Delete(ctx, sessionID)
		return auth.Claims{}, auth.ErrSessionNotFound
	}
	return auth.Claims{
		SessionID: sess.ID,
		UserID:    acc.UserID,
		Email:     acc.Email,
		IsAdmin:   acc.IsAdmin,
	}, nil
}

// EnsureAdmin crea (o promueve) la cuenta admin sembrada al arrancar.
func (s *Service) EnsureAdmin(ctx context.Context, profile users.User, password string) (Identity, error) {
	email := strings.ToLower(strings.TrimSpace(profile.Email))

	if acc, err := s.repo.GetByEmail(ctx, email); err == nil {
		if !acc.IsAdmin {
			acc.IsAdmin = true
			if err := s.repo.Update(ctx, acc); err != nil {
				return Identity{}, err
			}
		}
		u, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			return Identity{}, err
		}
		return identity(u, acc), nil
	}

	req := RegisterRequest{User: profile, Password: password}
	if err := req.Validate(); err != nil {
		return Identity{}, fmt.Errorf("%w: admin seed: %v", ErrInvalidInput, err)
	}
	u, err := s.users.Create(ctx, profile)
	if err != nil {
		return Identity{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return Identity{}, fmt.Errorf("hash password: %w", err)
	}
	acc := Account{
		UserID:       u.ID,
		Email:        u.Email,
		PasswordHash: hash,
		IsAdmin:      true,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, acc); err != nil {
		return Identity{}, err
	}
	return identity(u, acc), nil
}

// DeleteUser borra credenciales y sesiones de un usuario eliminado.
func (s *Service) DeleteUser(ctx context.Context, userID int) error {
	if err := s.sessions.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, userID); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

func (s *Service) TTL() time.Duration { return s.ttl }

func (s *Service) openSession(ctx context.Context, userID int) (Session, error) {
	now := s.now().UTC()
	sess := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

func identity(u users.User, acc Account) Identity {
	return Identity{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: acc.IsAdmin,
	}
}
