package intents

import "context"

// Repository asigna el id en Create.
type Repository interface {
	Create(ctx context.Context, i Intent) (Intent, error)
	Update(ctx context.Context, i Intent) error
	GetByID(ctx context.Context, id int) (Intent, error)
	List(ctx context.Context) ([]Intent, error)
	ListByUser(ctx context.Context, userID int) ([]Intent, error)
	ListByAnimal(ctx context.Context, animalID int) ([]Intent, error)
	Delete(ctx context.Context, id int) error
}
