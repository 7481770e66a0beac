// Package schema valida payloads JSON "sueltos" (map[string]any) contra la
// definición de campos de una entidad y devuelve un Record normalizado.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Kind int

const (
	String Kind = iota
	Float
	Int
	Enum
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Int:
		return "int"
	case Enum:
		return "enum"
	default:
		return "string"
	}
}

// Mode define cómo se tratan los campos ausentes.
type Mode int

const (
	// Create: exige requeridos y aplica defaults.
	Create Mode = iota
	// Patch: solo devuelve los campos presentes.
	Patch
)

// Field describe un campo del payload. Rules son tags de
// go-playground/validator ("required,max=20", "omitempty,gte=0",
// "oneof=a b"); se evalúan sobre el valor ya convertido a su Kind.
type Field struct {
	Name    string
	Kind    Kind
	Rules   string
	Default any
}

type Schema struct {
	Entity string
	Fields []Field
}

// Record son los valores normalizados: string, float64 o int según Kind.
type Record map[string]any

// FieldErrors indexa un mensaje por campo.
type FieldErrors map[string]string

// ValidationError es el error de validación con detalle por campo.
type ValidationError struct {
	Entity string
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(parts, "; "))
}

// NewValidationError arma un error de un solo campo.
func NewValidationError(entity, field, msg string) *ValidationError {
	return &ValidationError{Entity: entity, Fields: FieldErrors{field: msg}}
}

// Field devuelve la definición de name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

var validate = validator.New()

// Normalize valida raw. Las claves desconocidas se ignoran y null cuenta como
// "no enviado". En modo Create los strings opcionales ausentes quedan en ""
// y los numéricos opcionales ausentes quedan fuera del Record. En modo Patch
// no se aplica ningún default.
func (s Schema) Normalize(raw map[string]any, mode Mode) (Record, error) {
	out := Record{}
	errs := FieldErrors{}

	for _, f := range s.Fields {
		v, present := raw[f.Name]
		if present && v == nil {
			present = false
		}

		if !present {
			if mode == Patch {
				continue
			}
			if f.Default != nil {
				out[f.Name] = f.Default
				continue
			}
			// nil solo pasa si las reglas no exigen el campo.
			if msg := f.check(nil, false); msg != "" {
				errs[f.Name] = msg
				continue
			}
			if f.Kind == String || f.Kind == Enum {
				out[f.Name] = ""
			}
			continue
		}

		val, msg := f.coerce(v, mode)
		if msg == "" {
			msg = f.check(val, true)
		}
		if msg != "" {
			errs[f.Name] = msg
			continue
		}
		out[f.Name] = val
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Entity: s.Entity, Fields: errs}
	}
	return out, nil
}

// coerce convierte v al tipo de Kind. Las reglas de valor (requerido,
// longitud, rango, opciones) quedan para check.
func (f Field) coerce(v any, mode Mode) (any, string) {
	switch f.Kind {
	case Float:
		n, ok := toFloat(v)
		if !ok {
			return nil, "a valid number is required"
		}
		return n, ""

	case Int:
		n, ok := toFloat(v)
		if !ok || n != math.Trunc(n) || n > math.MaxInt32 || n < math.MinInt32 {
			return nil, "a valid integer is required"
		}
		return int(n), ""

	default:
		str, ok := v.(string)
		if !ok {
			return nil, "not a valid string"
		}
		str = strings.TrimSpace(str)
		// Un enum en blanco toma el default solo al crear.
		if f.Kind == Enum && str == "" && mode == Create && f.Default != nil {
			return f.Default, ""
		}
		return str, ""
	}
}

// check corre f.Rules con el validator y traduce el primer error a mensaje.
func (f Field) check(val any, present bool) string {
	if f.Rules == "" {
		return ""
	}
	err := validate.Var(val, f.Rules)
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	return message(verrs[0], val, present)
}

func message(fe validator.FieldError, val any, present bool) string {
	switch fe.Tag() {
	case "required":
		if present {
			return "this field may not be blank"
		}
		return "this field is required"
	case "max":
		return fmt.Sprintf("ensure this field has no more than %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("ensure this field has at least %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice (%s)", fmt.Sprint(val), strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

// toFloat acepta números JSON (float64 o json.Number) y strings numéricos.
func toFloat(v any) (float64, bool) {
	var (
		n   float64
		err error
	)
	switch x := v.(type) {
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	case json.Number:
		n, err = x.Float64()
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		n, err = strconv.ParseFloat(s, 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// String devuelve el valor string de name si está en el Record.
func (r Record) String(name string) (string, bool) {
	v, ok := r[name].(string)
	return v, ok
}

// Float devuelve un puntero al valor (nil si no está).
func (r Record) Float(name string) *float64 {
	v, ok := r[name].(float64)
	if !ok {
		return nil
	}
	return &v
}

// Int devuelve un puntero al valor (nil si no está).
func (r Record) Int(name string) *int {
	v, ok := r[name].(int)
	if !ok {
		return nil
	}
	return &v
}

// Has indica si name vino en el Record.
func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}
