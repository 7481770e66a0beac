package documents

import (
	"context"

	"animal-shelter-api/internal/domain/dogs"
	"animal-shelter-api/internal/platform/schema"
	"animal-shelter-api/internal/ports/docstore"
)

// dogDocument es el documento de la colección dogs. Los tags coinciden con
// los nombres de campo de dogs.Schema, así un patch se puede aplicar tal cual.
type dogDocument struct {
	ID       string `json:"_id,omitempty" bson:"_id,omitempty"`
	AnimalID string `json:"animal_id" bson:"animal_id"`
	No       *int   `json:"no,omitempty" bson:"no,omitempty"`

	Name           string `json:"name" bson:"name"`
	AnimalType     string `json:"animal_type" bson:"animal_type"`
	Breed          string `json:"breed" bson:"breed"`
	RescueType     string `json:"rescue_type" bson:"rescue_type"`
	Color          string `json:"color" bson:"color"`
	SexUponOutcome string `json:"sex_upon_outcome" bson:"sex_upon_outcome"`

	DateOfBirth           string   `json:"date_of_birth" bson:"date_of_birth"`
	DateTime              string   `json:"datetime" bson:"datetime"`
	MonthYear             string   `json:"monthyear" bson:"monthyear"`
	AgeUponOutcome        string   `json:"age_upon_outcome" bson:"age_upon_outcome"`
	AgeUponOutcomeInWeeks *float64 `json:"age_upon_outcome_in_weeks,omitempty" bson:"age_upon_outcome_in_weeks,omitempty"`
	Age                   *int     `json:"age,omitempty" bson:"age,omitempty"`
	Weight                *int     `json:"weight,omitempty" bson:"weight,omitempty"`

	OutcomeType    string `json:"outcome_type" bson:"outcome_type"`
	OutcomeSubtype string `json:"outcome_subtype" bson:"outcome_subtype"`

	LocationLat  *float64 `json:"location_lat,omitempty" bson:"location_lat,omitempty"`
	LocationLong *float64 `json:"location_long,omitempty" bson:"location_long,omitempty"`

	Description string `json:"description" bson:"description"`
	Status      string `json:"status" bson:"status"`
}

// DogsRepo implementa dogs.Repository.
type DogsRepo struct {
	col docstore.Collection
}

func NewDogsRepo(col docstore.Collection) *DogsRepo {
	return &DogsRepo{col: col}
}

func (r *DogsRepo) List(ctx context.Context) ([]dogs.Dog, error) {
	docs := make([]dogDocument, 0)
	if err := r.col.Find(ctx, nil, &docs); err != nil {
		return nil, err
	}

	out := make([]dogs.Dog, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *DogsRepo) GetByID(ctx context.Context, id string) (dogs.Dog, error) {
	return r.findOne(ctx, docstore.ByID(id))
}

func (r *DogsRepo) GetByAnimalID(ctx context.Context, animalID string) (dogs.Dog, error) {
	return r.findOne(ctx, docstore.Filter{dogs.FieldAnimalID: animalID})
}

func (r *DogsRepo) ExistsAnimalID(ctx context.Context, animalID string) (bool, error) {
	n, err := r.col.Count(ctx, docstore.Filter{dogs.FieldAnimalID: animalID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *DogsRepo) Create(ctx context.Context, d dogs.Dog) (string, error) {
	return r.col.InsertOne(ctx, fromDomain(d))
}

func (r *DogsRepo) Update(ctx context.Context, id string, fields schema.Record) error {
	res, err := r.col.UpdateOne(ctx, docstore.ByID(id), fields)
	if err != nil {
		return err
	}
	if res.Matched == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (r *DogsRepo) Delete(ctx context.Context, id string) error {
	n, err := r.col.DeleteOne(ctx, docstore.ByID(id))
	if err != nil {
		return err
	}
	if n == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (r *DogsRepo) findOne(ctx context.Context, f docstore.Filter) (dogs.Dog, error) {
	var doc dogDocument
	if err := r.col.FindOne(ctx, f, &doc); err != nil {
		return dogs.Dog{}, err
	}
	return doc.toDomain(), nil
}

func fromDomain(d dogs.Dog) dogDocument {
	return dogDocument{
		ID:                    d.ID,
		AnimalID:              d.AnimalID,
		No:                    d.No,
		Name:                  d.Name,
		AnimalType:            d.AnimalType,
		Breed:                 d.Breed,
		RescueType:            d.RescueType,
		Color:                 d.Color,
		SexUponOutcome:        d.SexUponOutcome,
		DateOfBirth:           d.DateOfBirth,
		DateTime:              d.DateTime,
		MonthYear:             d.MonthYear,
		AgeUponOutcome:        d.AgeUponOutcome,
		AgeUponOutcomeInWeeks: d.AgeUponOutcomeInWeeks,
		Age:                   d.Age,
		Weight:                d.Weight,
		OutcomeType:           d.OutcomeType,
		OutcomeSubtype:        d.OutcomeSubtype,
		LocationLat:           d.LocationLat,
		LocationLong:          d.LocationLong,
		Description:           d.Description,
		Status:                string(d.Status),
	}
}

func (d dogDocument) toDomain() dogs.Dog {
	return dogs.Dog{
		ID:                    d.ID,
		AnimalID:              d.AnimalID,
		No:                    d.No,
		Name:                  d.Name,
		AnimalType:            d.AnimalType,
		Breed:                 d.Breed,
		RescueType:            d.RescueType,
		Color:                 d.Color,
		SexUponOutcome:        d.SexUponOutcome,
		DateOfBirth:           d.DateOfBirth,
		DateTime:              d.DateTime,
		MonthYear:             d.MonthYear,
		AgeUponOutcome:        d.AgeUponOutcome,
		AgeUponOutcomeInWeeks: d.AgeUponOutcomeInWeeks,
		Age:                   d.Age,
		Weight:                d.Weight,
		OutcomeType:           d.OutcomeType,
		OutcomeSubtype:        d.OutcomeSubtype,
		LocationLat:           d.LocationLat,
		LocationLong:          d.LocationLong,
		Description:           d.Description,
		Status:                dogs.Status(d.Status),
	}
}
