package documents

import (
	"context"

	"animal-shelter-api/internal/domain/breeds"
	"animal-shelter-api/internal/domain/rescuetypes"
	"animal-shelter-api/internal/ports/docstore"
)

// namedDocument es la forma de breeds y rescues: {_id, name}.
type namedDocument struct {
	ID   string `json:"_id,omitempty" bson:"_id,omitempty"`
	Name string `json:"name" bson:"name"`
}

type namedRepo struct {
	col docstore.Collection
}

func (r namedRepo) list(ctx context.Context) ([]namedDocument, error) {
	docs := make([]namedDocument, 0)
	if err := r.col.Find(ctx, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r namedRepo) findOne(ctx context.Context, f docstore.Filter) (namedDocument, error) {
	var doc namedDocument
	if err := r.col.FindOne(ctx, f, &doc); err != nil {
		return namedDocument{}, err
	}
	return doc, nil
}

func (r namedRepo) existsName(ctx context.Context, name string) (bool, error) {
	n, err := r.col.Count(ctx, docstore.Filter{"name": name})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r namedRepo) create(ctx context.Context, name string) (string, error) {
	return r.col.InsertOne(ctx, namedDocument{Name: name})
}

func (r namedRepo) rename(ctx context.Context, id, name string) error {
	res, err := r.col.UpdateOne(ctx, docstore.ByID(id), map[string]any{"name": name})
	if err != nil {
		return err
	}
	if res.Matched == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (r namedRepo) delete(ctx context.Context, id string) error {
	n, err := r.col.DeleteOne(ctx, docstore.ByID(id))
	if err != nil {
		return err
	}
	if n == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

// BreedsRepo implementa breeds.Repository.
type BreedsRepo struct {
	named namedRepo
}

func NewBreedsRepo(col docstore.Collection) *BreedsRepo {
	return &BreedsRepo{named: namedRepo{col: col}}
}

func (r *BreedsRepo) List(ctx context.Context) ([]breeds.Breed, error) {
	docs, err := r.named.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]breeds.Breed, 0, len(docs))
	for _, d := range docs {
		out = append(out, breeds.Breed{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

func (r *BreedsRepo) GetByID(ctx context.Context, id string) (breeds.Breed, error) {
	d, err := r.named.findOne(ctx, docstore.ByID(id))
	return breeds.Breed{ID: d.ID, Name: d.Name}, err
}

func (r *BreedsRepo) GetByName(ctx context.Context, name string) (breeds.Breed, error) {
	d, err := r.named.findOne(ctx, docstore.Filter{"name": name})
	return breeds.Breed{ID: d.ID, Name: d.Name}, err
}

func (r *BreedsRepo) ExistsName(ctx context.Context, name string) (bool, error) {
	return r.named.existsName(ctx, name)
}

func (r *BreedsRepo) Create(ctx context.Context, b breeds.Breed) (string, error) {
	return r.named.create(ctx, b.Name)
}

func (r *BreedsRepo) Rename(ctx context.Context, id, name string) error {
	return r.named.rename(ctx, id, name)
}

func (r *BreedsRepo) Delete(ctx context.Context, id string) error {
	return r.named.delete(ctx, id)
}

// RescueTypesRepo implementa rescuetypes.Repository.
type RescueTypesRepo struct {
	named namedRepo
}

func NewRescueTypesRepo(col docstore.Collection) *RescueTypesRepo {
	return &RescueTypesRepo{named: namedRepo{col: col}}
}

func (r *RescueTypesRepo) List(ctx context.Context) ([]rescuetypes.RescueType, error) {
	docs, err := r.named.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]rescuetypes.RescueType, 0, len(docs))
	for _, d := range docs {
		out = append(out, rescuetypes.RescueType{ID: d.ID, Name: d.Name})
	}
	return out, nil
}

func (r *RescueTypesRepo) GetByID(ctx context.Context, id string) (rescuetypes.RescueType, error) {
	d, err := r.named.findOne(ctx, docstore.ByID(id))
	return rescuetypes.RescueType{ID: d.ID, Name: d.Name}, err
}

func (r *RescueTypesRepo) GetByName(ctx context.Context, name string) (rescuetypes.RescueType, error) {
	d, err := r.named.findOne(ctx, docstore.Filter{"name": name})
	return rescuetypes.RescueType{ID: d.ID, Name: d.Name}, err
}

func (r *RescueTypesRepo) ExistsName(ctx context.Context, name string) (bool, error) {
	return r.named.existsName(ctx, name)
}

func (r *RescueTypesRepo) Create(ctx context.Context, rt rescuetypes.RescueType) (string, error) {
	return r.named.create(ctx, rt.Name)
}

func (r *RescueTypesRepo) Rename(ctx context.Context, id, name string) error {
	return r.named.rename(ctx, id, name)
}

func (r *RescueTypesRepo) Delete(ctx context.Context, id string) error {
	return r.named.delete(ctx, id)
}
