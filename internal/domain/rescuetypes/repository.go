package rescuetypes

import "context"

// Repository devuelve docstore.ErrNotFound / docstore.ErrDuplicateKey
// tal cual los informa el store.
type Repository interface {
	List(ctx context.Context) ([]RescueType, error)
	GetByID(ctx context.Context, id string) (RescueType, error)
	GetByName(ctx context.Context, name string) (RescueType, error)
	ExistsName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, rt RescueType) (string, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}
