// Package documents implementa los repositorios de dominio sobre cualquier
// docstore.Collection (Mongo, Postgres JSONB o memoria).
package documents

import (
	"context"
	"fmt"

	"animal-shelter-api/internal/ports/docstore"
)

const (
	BreedsCollection      = "breeds"
	RescueTypesCollection = "rescues"
	DogsCollection        = "dogs"
)

// EnsureIndexes crea los índices únicos que garantizan name (catálogos) y
// animal_id (perros). El pre-chequeo de los services es solo orientativo.
func EnsureIndexes(ctx context.Context, client docstore.Client) error {
	indexes := []struct {
		collection string
		field      string
	}{
		{BreedsCollection, "name"},
		{RescueTypesCollection, "name"},
		{DogsCollection, "animal_id"},
	}

	for _, ix := range indexes {
		if err := client.Collection(ix.collection).EnsureUniqueIndex(ctx, ix.field); err != nil {
			return fmt.Errorf("ensure unique index %s.%s: %w", ix.collection, ix.field, err)
		}
	}
	return nil
}
