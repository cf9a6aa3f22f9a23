package users

import "context"

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, u User) error
	GetByID(ctx context.Context, id int) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, id int) error
}
