package adoptions

import "context"

type Repository interface {
	Create(ctx context.Context, a Adoption) (Adoption, error)
	GetByID(ctx context.Context, id int) (Adoption, error)
	GetByAnimal(ctx context.Context, animalID int) (Adoption, error)
	List(ctx context.Context) ([]Adoption, error)
	ListByUser(ctx context.Context, userID int) ([]Adoption, error)
	Delete(ctx context.Context, id int) error
}
