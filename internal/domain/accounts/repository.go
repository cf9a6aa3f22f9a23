package accounts

import "context"

type Repository interface {
	Create(ctx context.Context, a Account) error
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByUserID(ctx context.Context, userID int) (Account, error)
	Update(ctx context.Context, a Account) error
	Delete(ctx context.Context, userID int) error
}

type SessionRepository interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID int) error
}
