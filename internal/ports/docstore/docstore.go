package docstore

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("docstore: document not found")
	ErrDuplicateKey = errors.New("docstore: duplicate value for unique field")
)

// IDField es la clave de identidad dentro de cada documento.
const IDField = "_id"

// Filter es un filtro por igualdad de campos de primer nivel.
type Filter map[string]any

// ByID arma el filtro por identidad.
func ByID(id string) Filter {
	return Filter{IDField: id}
}

type UpdateResult struct {
	Matched  int64
	Modified int64
}

// Collection expone las operaciones que usan los repositorios.
// Las implementaciones deben ser seguras para uso concurrente.
type Collection interface {
	// Find decodifica todos los documentos que matchean en out (puntero a slice),
	// en orden de inserción.
	Find(ctx context.Context, filter Filter, out any) error
	// FindOne devuelve ErrNotFound si no hay match.
	FindOne(ctx context.Context, filter Filter, out any) error
	Count(ctx context.Context, filter Filter) (int64, error)
	// InsertOne asigna _id si el documento no trae uno y lo devuelve.
	InsertOne(ctx context.Context, doc any) (string, error)
	// UpdateOne setea solo los campos indicados en el primer documento que matchea.
	UpdateOne(ctx context.Context, filter Filter, set map[string]any) (UpdateResult, error)
	DeleteOne(ctx context.Context, filter Filter) (int64, error)
	// EnsureUniqueIndex hace que el store rechace duplicados en field (ErrDuplicateKey).
	EnsureUniqueIndex(ctx context.Context, field string) error
}

type Client interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// NewID genera la identidad de un documento nuevo.
func NewID() string {
	return uuid.NewString()
}

// ValidID indica si id tiene forma de identidad asignada por el store.
func ValidID(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
