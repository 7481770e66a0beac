package breeds

import "context"

// Repository devuelve docstore.ErrNotFound / docstore.ErrDuplicateKey
// tal cual los informa el store.
type Repository interface {
	List(ctx context.Context) ([]Breed, error)
	GetByID(ctx context.Context, id string) (Breed, error)
	GetByName(ctx context.Context, name string) (Breed, error)
	ExistsName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, b Breed) (string, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}
