package rescuetypes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"animal-shelter-api/internal/platform/schema"
	"animal-shelter-api/internal/ports/docstore"
)

// ErrNotFound envuelve docstore.ErrNotFound para que dogs pueda reconocerlo
// sin importar este paquete.
var (
	ErrIDRequired = errors.New("rescue type id is required")
	ErrNotFound   = fmt.Errorf("rescue type: %w", docstore.ErrNotFound)
	ErrConflict   = errors.New("rescue type already exists")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]RescueType, error) {
	return s.repo.List(ctx)
}

// Create da de alta un tipo de rescate. El chequeo previo de nombre es solo para dar un
// 409 claro; quien garantiza la unicidad es el índice único del store.
func (s *Service) Create(ctx context.Context, payload map[string]any) (RescueType, error) {
	rec, err := Schema.Normalize(payload, schema.Create)
	if err != nil {
		return RescueType{}, err
	}
	name, _ := rec.String("name")

	exists, err := s.repo.ExistsName(ctx, name)
	if err != nil {
		return RescueType{}, err
	}
	if exists {
		return RescueType{}, ErrConflict
	}

	id, err := s.repo.Create(ctx, RescueType{Name: name})
	if err != nil {
		if errors.Is(err, docstore.ErrDuplicateKey) {
			return RescueType{}, ErrConflict
		}
		return RescueType{}, err
	}
	return RescueType{ID: id, Name: name}, nil
}

// Update renombra en el lugar. No se re-chequea el nombre nuevo contra otros
// tipos; si choca con el índice único vuelve ErrConflict.
func (s *Service) Update(ctx context.Context, id string, payload map[string]any) (RescueType, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return RescueType{}, ErrIDRequired
	}

	rec, err := Schema.Normalize(payload, schema.Create)
	if err != nil {
		return RescueType{}, err
	}
	name, _ := rec.String("name")

	if err := s.repo.Rename(ctx, id, name); err != nil {
		return RescueType{}, mapRepoErr(err)
	}
	return RescueType{ID: id, Name: name}, nil
}

// Delete borra sin mirar si hay perros que la referencian (sin cascada).
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrIDRequired
	}
	return mapRepoErr(s.repo.Delete(ctx, id))
}

// ResolveName devuelve el nombre canónico de ref, buscando primero por nombre
// y después por id. Lo usa dogs para validar referencias.
func (s *Service) ResolveName(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrNotFound
	}

	rt, err := s.repo.GetByName(ctx, ref)
	if err == nil {
		return rt.Name, nil
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		return "", err
	}

	if !docstore.ValidID(ref) {
		return "", ErrNotFound
	}
	rt, err = s.repo.GetByID(ctx, ref)
	if err != nil {
		return "", mapRepoErr(err)
	}
	return rt.Name, nil
}

func mapRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, docstore.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, docstore.ErrDuplicateKey):
		return ErrConflict
	default:
		return err
	}
}
