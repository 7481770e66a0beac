package dogs

import (
	"context"

	"animal-shelter-api/internal/platform/schema"
)

type Repository interface {
	List(ctx context.Context) ([]Dog, error)
	GetByID(ctx context.Context, id string) (Dog, error)
	GetByAnimalID(ctx context.Context, animalID string) (Dog, error)
	ExistsAnimalID(ctx context.Context, animalID string) (bool, error)
	Create(ctx context.Context, d Dog) (string, error)
	// Update escribe solo los campos presentes en fields.
	Update(ctx context.Context, id string, fields schema.Record) error
	Delete(ctx context.Context, id string) error
}

// NameResolver resuelve una referencia (nombre o id) al nombre canónico.
// Lo implementan breeds.Service y rescuetypes.Service; si no existe debe
// devolver un error que envuelva docstore.ErrNotFound.
type NameResolver interface {
	ResolveName(ctx context.Context, ref string) (string, error)
}
