package breeds

import "animal-shelter-api/internal/platform/schema"

// Breed es una entrada del catálogo de razas. El nombre es único.
type Breed struct {
	ID   string
	Name string
}

// Schema del payload de alta/edición.
var Schema = schema.Schema{
	Entity: "breed",
	Fields: []schema.Field{
		{Name: "name", Kind: schema.String, Rules: "required,max=100"},
	},
}
