package breeds_test

import (
	"context"
	"errors"
	"testing"

	"animal-shelter-api/internal/adapters/storage/documents"
	"animal-shelter-api/internal/adapters/storage/memory"
	"animal-shelter-api/internal/domain/breeds"
	"animal-shelter-api/internal/platform/schema"
	"animal-shelter-api/internal/ports/docstore"
)

func newService(t *testing.T) *breeds.Service {
	t.Helper()

	store := memory.NewClient()
	if err := documents.EnsureIndexes(context.Background(), store); err != nil {
		t.Fatalf("EnsureIndexes error: %v", err)
	}
	return breeds.NewService(documents.NewBreedsRepo(store.Collection(documents.BreedsCollection)))
}

func TestService_Create_TwiceYieldsConflict(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	b, err := svc.Create(ctx, map[string]any{"name": "Labrador"})
	if err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}
	if b.ID == "" {
		t.Fatalf("expected generated id")
	}

	_, err = svc.Create(ctx, map[string]any{"name": "Labrador"})
	if !errors.Is(err, breeds.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected exactly one breed, got %d", len(items))
	}
}

func TestService_Create_RequiresName(t *testing.T) {
	svc := newService(t)

	for _, payload := range []map[string]any{{}, {"name": "  "}, {"name": 12}} {
		_, err := svc.Create(context.Background(), payload)

		var verr *schema.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError for %v, got %v", payload, err)
		}
		if _, ok := verr.Fields["name"]; !ok {
			t.Fatalf("expected error on name, got %#v", verr.Fields)
		}
	}
}

func TestService_Update_RenamesInPlace(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	b, _ := svc.Create(ctx, map[string]any{"name": "Labrador"})

	updated, err := svc.Update(ctx, b.ID, map[string]any{"name": "Labrador Retriever"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.ID != b.ID || updated.Name != "Labrador Retriever" {
		t.Fatalf("unexpected updated breed: %#v", updated)
	}

	name, err := svc.ResolveName(ctx, b.ID)
	if err != nil || name != "Labrador Retriever" {
		t.Fatalf("expected rename visible by id, got %q err=%v", name, err)
	}
}

func TestService_Update_Errors(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	if _, err := svc.Update(ctx, "", map[string]any{"name": "x"}); !errors.Is(err, breeds.ErrIDRequired) {
		t.Fatalf("expected ErrIDRequired, got %v", err)
	}
	if _, err := svc.Update(ctx, docstore.NewID(), map[string]any{"name": "x"}); !errors.Is(err, breeds.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	b, _ := svc.Create(ctx, map[string]any{"name": "Beagle"})
	var verr *schema.ValidationError
	if _, err := svc.Update(ctx, b.ID, map[string]any{}); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError without name, got %v", err)
	}
}

func TestService_Update_RenameIntoExistingNameIsRejectedByStore(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, _ = svc.Create(ctx, map[string]any{"name": "Beagle"})
	b, _ := svc.Create(ctx, map[string]any{"name": "Poodle"})

	if _, err := svc.Update(ctx, b.ID, map[string]any{"name": "Beagle"}); !errors.Is(err, breeds.ErrConflict) {
		t.Fatalf("expected ErrConflict from unique index, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	b, _ := svc.Create(ctx, map[string]any{"name": "Boxer"})

	if err := svc.Delete(ctx, b.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := svc.Delete(ctx, b.ID); !errors.Is(err, breeds.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if err := svc.Delete(ctx, "not-a-uuid"); !errors.Is(err, breeds.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestService_ResolveName(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	b, _ := svc.Create(ctx, map[string]any{"name": "Husky"})

	if name, err := svc.ResolveName(ctx, "Husky"); err != nil || name != "Husky" {
		t.Fatalf("resolve by name: %q %v", name, err)
	}
	if name, err := svc.ResolveName(ctx, b.ID); err != nil || name != "Husky" {
		t.Fatalf("resolve by id: %q %v", name, err)
	}

	_, err := svc.ResolveName(ctx, "Dachshund")
	if !errors.Is(err, docstore.ErrNotFound) {
		t.Fatalf("expected error wrapping docstore.ErrNotFound, got %v", err)
	}
}
