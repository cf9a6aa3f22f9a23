package animals

import "context"

type Repository interface {
	Create(ctx context.Context, a Animal) (Animal, error)
	Update(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id int) (Animal, error)
	List(ctx context.Context) ([]Animal, error)
	Delete(ctx context.Context, id int) error
}

// ImageStore guarda los archivos de imagen subidos.
type ImageStore interface {
	Save(ctx context.Context, img Image) (name string, err error)
	Open(ctx context.Context, name string) ([]byte, error)
	Delete(ctx context.Context, name string) error
}
