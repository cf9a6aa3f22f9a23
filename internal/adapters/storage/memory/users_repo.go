package memory

import (
	"context"
	"strings"

	"pawbuddy-client/internal/domain/users"
)

type userRepo struct {
	t *table[users.User]
}

func NewUserRepo() users.Repository {
	return &userRepo{
		t: newTable(
			func(u users.User) int { return u.ID },
			func(u *users.User, id int) { u.ID = id },
			users.ErrNotFound,
		),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	u.Intents = nil
	return r.t.insert(u), nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	u.Intents = nil
	return r.t.replace(u)
}

func (r *userRepo) GetByID(ctx context.Context, id int) (users.User, error) {
	return r.t.get(id)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	u, ok := r.t.find(func(u users.User) bool { return strings.EqualFold(u.Email, email) })
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) List(ctx context.Context) ([]users.User, error) {
	return r.t.list(nil), nil
}

func (r *userRepo) Delete(ctx context.Context, id int) error {
	return r.t.delete(id)
}
