package dogs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"animal-shelter-api/internal/platform/schema"
	"animal-shelter-api/internal/ports/docstore"
)

var (
	ErrIDRequired = errors.New("dog id is required")
	ErrNotFound   = errors.New("dog not found")
	ErrConflict   = errors.New("dog with this animal_id already exists")
)

type Service struct {
	repo        Repository
	breeds      NameResolver
	rescueTypes NameResolver
}

func NewService(repo Repository, breeds, rescueTypes NameResolver) *Service {
	return &Service{
		repo:        repo,
		breeds:      breeds,
		rescueTypes: rescueTypes,
	}
}

func (s *Service) List(ctx context.Context) ([]Dog, error) {
	return s.repo.List(ctx)
}

// Get acepta animal_id o el id del store: prueba primero animal_id.
func (s *Service) Get(ctx context.Context, ref string) (Dog, error) {
	return s.resolve(ctx, ref)
}

func (s *Service) Create(ctx context.Context, payload map[string]any) (Dog, error) {
	rec, err := Schema.Normalize(payload, schema.Create)
	if err != nil {
		return Dog{}, err
	}
	if err := s.resolveRefs(ctx, rec); err != nil {
		return Dog{}, err
	}

	// La edad se deriva una sola vez, al crear; nunca se recalcula.
	if !rec.Has(FieldAge) {
		text, _ := rec.String(FieldAgeUponOutcome)
		if age, ok := AgeInYears(text); ok {
			rec[FieldAge] = age
		}
	}

	animalID, _ := rec.String(FieldAnimalID)

	// Pre-chequeo para un 409 claro; la garantía es el índice único.
	exists, err := s.repo.ExistsAnimalID(ctx, animalID)
	if err != nil {
		return Dog{}, err
	}
	if exists {
		return Dog{}, ErrConflict
	}

	var d Dog
	d.apply(rec)

	id, err := s.repo.Create(ctx, d)
	if err != nil {
		if errors.Is(err, docstore.ErrDuplicateKey) {
			return Dog{}, ErrConflict
		}
		return Dog{}, err
	}
	d.ID = id
	return d, nil
}

// Update aplica un patch parcial: solo cambian los campos enviados.
func (s *Service) Update(ctx context.Context, ref string, payload map[string]any) (Dog, error) {
	current, err := s.resolve(ctx, ref)
	if err != nil {
		return Dog{}, err
	}

	rec, err := Schema.Normalize(payload, schema.Patch)
	if err != nil {
		return Dog{}, err
	}
	if err := s.resolveRefs(ctx, rec); err != nil {
		return Dog{}, err
	}

	if animalID, ok := rec.String(FieldAnimalID); ok && animalID != current.AnimalID {
		other, err := s.repo.GetByAnimalID(ctx, animalID)
		switch {
		case err == nil && other.ID != current.ID:
			return Dog{}, ErrConflict
		case err != nil && !errors.Is(err, docstore.ErrNotFound):
			return Dog{}, err
		}
	}

	if len(rec) > 0 {
		if err := s.repo.Update(ctx, current.ID, rec); err != nil {
			return Dog{}, mapRepoErr(err)
		}
	}

	current.apply(rec)
	return current, nil
}

func (s *Service) Delete(ctx context.Context, ref string) (Dog, error) {
	current, err := s.resolve(ctx, ref)
	if err != nil {
		return Dog{}, err
	}
	if err := s.repo.Delete(ctx, current.ID); err != nil {
		return Dog{}, mapRepoErr(err)
	}
	return current, nil
}

func (s *Service) resolve(ctx context.Context, ref string) (Dog, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Dog{}, ErrIDRequired
	}

	d, err := s.repo.GetByAnimalID(ctx, ref)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		return Dog{}, err
	}

	if !docstore.ValidID(ref) {
		return Dog{}, schema.NewValidationError(Schema.Entity, "id", fmt.Sprintf("%q is not a known animal_id nor a valid dog id", ref))
	}

	d, err = s.repo.GetByID(ctx, ref)
	if err != nil {
		return Dog{}, mapRepoErr(err)
	}
	return d, nil
}

// resolveRefs valida breed y rescue_type contra sus catálogos y los deja
// con el nombre canónico.
func (s *Service) resolveRefs(ctx context.Context, rec schema.Record) error {
	refs := []struct {
		field    string
		label    string
		resolver NameResolver
	}{
		{FieldBreed, "breed", s.breeds},
		{FieldRescueType, "rescue type", s.rescueTypes},
	}

	errs := schema.FieldErrors{}
	for _, ref := range refs {
		v, ok := rec.String(ref.field)
		if !ok || v == "" || ref.resolver == nil {
			continue
		}

		name, err := ref.resolver.ResolveName(ctx, v)
		if err != nil {
			if errors.Is(err, docstore.ErrNotFound) {
				errs[ref.field] = fmt.Sprintf("unknown %s %q", ref.label, v)
				continue
			}
			return err
		}
		rec[ref.field] = name
	}

	if len(errs) > 0 {
		return &schema.ValidationError{Entity: Schema.Entity, Fields: errs}
	}
	return nil
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
