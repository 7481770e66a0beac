package rescuetypes_test

import (
	"context"
	"errors"
	"testing"

	"animal-shelter-api/internal/adapters/storage/documents"
	"animal-shelter-api/internal/adapters/storage/memory"
	"animal-shelter-api/internal/domain/rescuetypes"
	"animal-shelter-api/internal/platform/schema"
	"animal-shelter-api/internal/ports/docstore"
)

func newService(t *testing.T) *rescuetypes.Service {
	t.Helper()

	store := memory.NewClient()
	if err := documents.EnsureIndexes(context.Background(), store); err != nil {
		t.Fatalf("EnsureIndexes error: %v", err)
	}
	return rescuetypes.NewService(documents.NewRescueTypesRepo(store.Collection(documents.RescueTypesCollection)))
}

func TestService_Create_TwiceYieldsConflict(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	rt, err := svc.Create(ctx, map[string]any{"name": "Stray"})
	if err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}
	if rt.ID == "" {
		t.Fatalf("expected generated id")
	}

	_, err = svc.Create(ctx, map[string]any{"name": "Stray"})
	if !errors.Is(err, rescuetypes.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	items, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected exactly one rescue type, got %d", len(items))
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

	rt, _ := svc.Create(ctx, map[string]any{"name": "Stray"})

	updated, err := svc.Update(ctx, rt.ID, map[string]any{"name": "Owner Surrender Final"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.ID != rt.ID || updated.Name != "Owner Surrender Final" {
		t.Fatalf("unexpected updated rescue type: %#v", updated)
	}

	name, err := svc.ResolveName(ctx, rt.ID)
	if err != nil || name != "Owner Surrender Final" {
		t.Fatalf("expected rename visible by id, got %q err=%v", name, err)
	}
}

func TestService_Update_Errors(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	if _, err := svc.Update(ctx, "", map[string]any{"name": "x"}); !errors.Is(err, rescuetypes.ErrIDRequired) {
		t.Fatalf("expected ErrIDRequired, got %v", err)
	}
	if _, err := svc.Update(ctx, docstore.NewID(), map[string]any{"name": "x"}); !errors.Is(err, rescuetypes.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	rt, _ := svc.Create(ctx, map[string]any{"name": "Transfer"})
	var verr *schema.ValidationError
	if _, err := svc.Update(ctx, rt.ID, map[string]any{}); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError without name, got %v", err)
	}
}

func TestService_Update_RenameIntoExistingNameIsRejectedByStore(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, _ = svc.Create(ctx, map[string]any{"name": "Transfer"})
	rt, _ := svc.Create(ctx, map[string]any{"name": "Seized"})

	if _, err := svc.Update(ctx, rt.ID, map[string]any{"name": "Transfer"}); !errors.Is(err, rescuetypes.ErrConflict) {
		t.Fatalf("expected ErrConflict from unique index, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	rt, _ := svc.Create(ctx, map[string]any{"name": "Return"})

	if err := svc.Delete(ctx, rt.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if err := svc.Delete(ctx, rt.ID); !errors.Is(err, rescuetypes.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if err := svc.Delete(ctx, "not-a-uuid"); !errors.Is(err, rescuetypes.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestService_ResolveName(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	rt, _ := svc.Create(ctx, map[string]any{"name": "Owner Surrender"})

	if name, err := svc.ResolveName(ctx, "Owner Surrender"); err != nil || name != "Owner Surrender" {
		t.Fatalf("resolve by name: %q %v", name, err)
	}
	if name, err := svc.ResolveName(ctx, rt.ID); err != nil || name != "Owner Surrender" {
		t.Fatalf("resolve by id: %q %v", name, err)
	}

	_, err := svc.ResolveName(ctx, "Abandoned")
	if !errors.Is(err, docstore.ErrNotFound) {
		t.Fatalf("expected error wrapping docstore.ErrNotFound, got %v", err)
	}
}
