package dogs

import "animal-shelter-api/internal/platform/schema"

// Status define el estado de adopción.
// @Enum available, adopted, pending
type Status string

const (
	StatusAvailable Status = "available"
	StatusAdopted   Status = "adopted"
	StatusPending   Status = "pending"
)

const (
	DefaultAnimalType  = "Dog"
	DefaultOutcomeType = "Adoption"
)

// Nombres de campo: son los mismos en el payload, en la respuesta y en el documento.
const (
	FieldAnimalID              = "animal_id"
	FieldName                  = "name"
	FieldAnimalType            = "animal_type"
	FieldBreed                 = "breed"
	FieldRescueType            = "rescue_type"
	FieldColor                 = "color"
	FieldSexUponOutcome        = "sex_upon_outcome"
	FieldDateOfBirth           = "date_of_birth"
	FieldDateTime              = "datetime"
	FieldMonthYear             = "monthyear"
	FieldAgeUponOutcome        = "age_upon_outcome"
	FieldAgeUponOutcomeInWeeks = "age_upon_outcome_in_weeks"
	FieldAge                   = "age"
	FieldWeight                = "weight"
	FieldNo                    = "no"
	FieldOutcomeType           = "outcome_type"
	FieldOutcomeSubtype        = "outcome_subtype"
	FieldLocationLat           = "location_lat"
	FieldLocationLong          = "location_long"
	FieldDescription           = "description"
	FieldStatus                = "status"
)

// Dog es el registro de un perro del refugio.
//
// Breed y RescueType guardan el nombre (string embebido) resuelto al momento
// de escribir; renombrar o borrar una raza no reescribe perros.
type Dog struct {
	ID       string
	AnimalID string
	No       *int

	Name           string
	AnimalType     string
	Breed          string
	RescueType     string
	Color          string
	SexUponOutcome string

	DateOfBirth           string
	DateTime              string
	MonthYear             string
	AgeUponOutcome        string
	AgeUponOutcomeInWeeks *float64
	Age                   *int // años; se deriva una sola vez al crear

	Weight *int

	OutcomeType    string
	OutcomeSubtype string

	LocationLat  *float64
	LocationLong *float64

	Description string
	Status      Status
}

// Schema: solo animal_id, name, breed y rescue_type son obligatorios.
// Strings opcionales ausentes => "", numéricos opcionales ausentes => nil.
var Schema = schema.Schema{
	Entity: "dog",
	Fields: []schema.Field{
		{Name: FieldAnimalID, Kind: schema.String, Rules: "required,max=20"},
		{Name: FieldName, Kind: schema.String, Rules: "required,max=100"},
		{Name: FieldAnimalType, Kind: schema.String, Rules: "omitempty,max=30", Default: DefaultAnimalType},
		{Name: FieldBreed, Kind: schema.String, Rules: "required,max=100"},
		{Name: FieldRescueType, Kind: schema.String, Rules: "required,max=100"},
		{Name: FieldColor, Kind: schema.String, Rules: "omitempty,max=100"},
		{Name: FieldSexUponOutcome, Kind: schema.String, Rules: "omitempty,max=50"},
		{Name: FieldDateOfBirth, Kind: schema.String, Rules: "omitempty,max=20"},
		{Name: FieldDateTime, Kind: schema.String, Rules: "omitempty,max=50"},
		{Name: FieldMonthYear, Kind: schema.String, Rules: "omitempty,max=50"},
		{Name: FieldAgeUponOutcome, Kind: schema.String, Rules: "omitempty,max=50"},
		{Name: FieldAgeUponOutcomeInWeeks, Kind: schema.Float},
		{Name: FieldAge, Kind: schema.Int, Rules: "omitempty,gte=0"},
		{Name: FieldWeight, Kind: schema.Int, Rules: "omitempty,gte=0"},
		{Name: FieldNo, Kind: schema.Int, Rules: "omitempty,gte=0"},
		{Name: FieldOutcomeType, Kind: schema.String, Rules: "omitempty,max=50", Default: DefaultOutcomeType},
		{Name: FieldOutcomeSubtype, Kind: schema.String, Rules: "omitempty,max=50"},
		{Name: FieldLocationLat, Kind: schema.Float},
		{Name: FieldLocationLong, Kind: schema.Float},
		{Name: FieldDescription, Kind: schema.String, Rules: "omitempty,max=500"},
		{
			Name:    FieldStatus,
			Kind:    schema.Enum,
			Rules:   "oneof=" + string(StatusAvailable) + " " + string(StatusAdopted) + " " + string(StatusPending),
			Default: string(StatusAvailable),
		},
	},
}

// apply copia al Dog los campos presentes en rec.
func (d *Dog) apply(rec schema.Record) {
	for name := range rec {
		switch name {
		case FieldAnimalID:
			d.AnimalID, _ = rec.String(name)
		case FieldName:
			d.Name, _ = rec.String(name)
		case FieldAnimalType:
			d.AnimalType, _ = rec.String(name)
		case FieldBreed:
			d.Breed, _ = rec.String(name)
		case FieldRescueType:
			d.RescueType, _ = rec.String(name)
		case FieldColor:
			d.Color, _ = rec.String(name)
		case FieldSexUponOutcome:
			d.SexUponOutcome, _ = rec.String(name)
		case FieldDateOfBirth:
			d.DateOfBirth, _ = rec.String(name)
		case FieldDateTime:
			d.DateTime, _ = rec.String(name)
		case FieldMonthYear:
			d.MonthYear, _ = rec.String(name)
		case FieldAgeUponOutcome:
			d.AgeUponOutcome, _ = rec.String(name)
		case FieldAgeUponOutcomeInWeeks:
			d.AgeUponOutcomeInWeeks = rec.Float(name)
		case FieldAge:
			d.Age = rec.Int(name)
		case FieldWeight:
			d.Weight = rec.Int(name)
		case FieldNo:
			d.No = rec.Int(name)
		case FieldOutcomeType:
			d.OutcomeType, _ = rec.String(name)
		case FieldOutcomeSubtype:
			d.OutcomeSubtype, _ = rec.String(name)
		case FieldLocationLat:
			d.LocationLat = rec.Float(name)
		case FieldLocationLong:
			d.LocationLong = rec.Float(name)
		case FieldDescription:
			d.Description, _ = rec.String(name)
		case FieldStatus:
			s, _ := rec.String(name)
			d.Status = Status(s)
		}
	}
}
