package rescuetypes

import "animal-shelter-api/internal/platform/schema"

// RescueType clasifica el origen del rescate (Stray, Owner Surrender, ...).
// El nombre se trata como único, igual que en Breed.
type RescueType struct {
	ID   string
	Name string
}

// Schema del payload de alta/edición.
var Schema = schema.Schema{
	Entity: "rescue_type",
	Fields: []schema.Field{
		{Name: "name", Kind: schema.String, Rules: "required,max=100"},
	},
}
