package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pawbuddy-client/internal/domain/accounts"
	"pawbuddy-client/internal/ports/auth"
)

type accountRepo struct {
	mu       sync.RWMutex
	byUserID map[int]accounts.Account
}

func NewAccountRepo() accounts.Repository {
	return &accountRepo{byUserID: make(map[int]accounts.Account)}
}

func (r *accountRepo) Create(ctx context.Context, a accounts.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.UserID <= 0 {
		return errors.New("account user id required")
	}
	if _, exists := r.byUserID[a.UserID]; exists {
		return errors.New("account already exists")
	}
	for _, other := range r.byUserID {
		if strings.EqualFold(other.Email, a.Email) {
			return accounts.ErrEmailTaken
		}
	}
	r.byUserID[a.UserID] = a
	return nil
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (accounts.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byUserID {
		if strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return accounts.Account{}, accounts.ErrNotFound
}

func (r *accountRepo) GetByUserID(ctx context.Context, userID int) (accounts.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byUserID[userID]
	if !ok {
		return accounts.Account{}, accounts.ErrNotFound
	}
	return a, nil
}

func (r *accountRepo) Update(ctx context.Context, a accounts.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUserID[a.UserID]; !ok {
		return accounts.ErrNotFound
	}
	r.byUserID[a.UserID] = a
	return nil
}

func (r *accountRepo) Delete(ctx context.Context, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUserID[userID]; !ok {
		return accounts.ErrNotFound
	}
	delete(r.byUserID, userID)
	return nil
}

type sessionRepo struct {
	mu   sync.RWMutex
	byID map[string]accounts.Session
}

func NewSessionRepo() accounts.SessionRepository {
	return &sessionRepo{byID: make(map[string]accounts.Session)}
}

func (r *sessionRepo) Create(ctx context.Context, s accounts.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("session id required")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (accounts.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return accounts.Session{}, auth.ErrSessionNotFound
	}
	return s, nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return auth.ErrSessionNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *sessionRepo) DeleteByUser(ctx context.Context, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.byID {
		if s.UserID == userID {
			delete(r.byID, id)
		}
	}
	return nil
}
