// Package httpx junta los helpers de request/response JSON que antes estaban
// duplicados en cada handler.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"animal-shelter-api/internal/platform/schema"
)

const maxBodyBytes = 1 << 20 // 1MB

var ErrInvalidJSON = errors.New("invalid json")

type ErrorResponse struct {
	Error  string             `json:"error"`
	Fields schema.FieldErrors `json:"fields,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{Error: msg})
}

// WriteValidation responde 400 con el detalle por campo.
func WriteValidation(w http.ResponseWriter, verr *schema.ValidationError) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:  "validation failed",
		Fields: verr.Fields,
	})
}

// DecodePayload lee el body como objeto JSON suelto. Body vacío => mapa vacío.
// Los números quedan como json.Number para que schema los convierta.
func DecodePayload(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	if r.Body == nil {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if payload == nil {
		payload = map[string]any{}
	}
	return payload, nil
}

// PayloadID toma el id del body ("_id" o "id"), para PUT/DELETE sin id en la ruta.
func PayloadID(payload map[string]any) string {
	for _, k := range []string{"_id", "id"} {
		if s, ok := payload[k].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// TargetID prioriza el id de la ruta y cae al del body.
func TargetID(pathID string, payload map[string]any) string {
	if id := strings.TrimSpace(pathID); id != "" {
		return id
	}
	return PayloadID(payload)
}
